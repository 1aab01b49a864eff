package batch

import (
	"errors"
	"strings"
	"testing"

	"Cablesize/internal/calc/conductor"
	"Cablesize/internal/calc/sizing"
)

func line(length, current float64) sizing.Input {
	return sizing.Input{
		LineType:    conductor.SinglePhase,
		Material:    conductor.Copper,
		LengthM:     length,
		CurrentA:    current,
		PowerFactor: 0.95,
	}
}

func TestSizeKeepsOrder(t *testing.T) {
	in := Input{}
	for i := 1; i <= 40; i++ {
		in.Items = append(in.Items, line(float64(5*i), 10+float64(i)))
	}
	res, err := Size(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Results) != len(in.Items) {
		t.Fatalf("expected %d results, got %d", len(in.Items), len(res.Results))
	}
	for i, item := range in.Items {
		want, err := sizing.Calculate(item)
		if err != nil {
			t.Fatalf("item %d: %v", i, err)
		}
		if res.Results[i] != want {
			t.Errorf("item %d out of order: got %+v", i, res.Results[i])
		}
	}
}

func TestSizeReportsFailingItem(t *testing.T) {
	in := Input{Items: []sizing.Input{line(50, 30), line(-1, 30), line(20, 10)}}
	_, err := Size(in)
	if !errors.Is(err, conductor.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "item 1") {
		t.Errorf("expected the failing index in %q", err)
	}
}

func TestSizeLimits(t *testing.T) {
	if _, err := Size(Input{}); !errors.Is(err, conductor.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty batch, got %v", err)
	}
	big := Input{Items: make([]sizing.Input, MaxItems+1)}
	if _, err := Size(big); !errors.Is(err, conductor.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for oversized batch, got %v", err)
	}
}
