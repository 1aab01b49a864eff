package optimize

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Cablesize/internal/calc/catalog"
	"Cablesize/internal/calc/compliance"
	"Cablesize/internal/calc/conductor"
	"Cablesize/internal/calc/lifecycle"
	"Cablesize/internal/calc/sizing"
)

func params(current float64) lifecycle.Params {
	return lifecycle.Params{
		LineType:     conductor.ThreePhase,
		LengthM:      120,
		CurrentA:     current,
		PowerFactor:  0.9,
		Conductivity: 56,
		Years:        20,
		HoursPerYear: 4000,
		CostPerKWh:   0.15,
	}
}

func copperTable(t *testing.T) []catalog.Entry {
	t.Helper()
	table, err := catalog.Table(conductor.Copper)
	if err != nil {
		t.Fatalf("copper table: %v", err)
	}
	return table
}

func TestOptimizePicksMinimumTotal(t *testing.T) {
	res, err := Optimize(copperTable(t), 16, DefaultWindow, params(80))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Breakdowns) != DefaultWindow+1 {
		t.Fatalf("expected %d candidates, got %d", DefaultWindow+1, len(res.Breakdowns))
	}
	lowest := math.Inf(1)
	for _, b := range res.Breakdowns {
		lowest = math.Min(lowest, b.TotalCost)
	}
	if res.MinCost != lowest {
		t.Errorf("expected min cost %v, got %v", lowest, res.MinCost)
	}
	if res.TechnicalSectionMM2 != 16 {
		t.Errorf("expected technical section 16, got %v", res.TechnicalSectionMM2)
	}
	if res.OptimalSectionMM2 < res.TechnicalSectionMM2 {
		t.Errorf("optimal %v below technical %v", res.OptimalSectionMM2, res.TechnicalSectionMM2)
	}
	if math.Abs(res.Savings-(res.TechnicalCost-res.MinCost)) > 1e-9 || res.Savings < 0 {
		t.Errorf("inconsistent savings: %+v", res)
	}
	// heavy continuous load over 20 years pays for a larger section
	if res.IsTechnicalMinimum {
		t.Errorf("expected a larger section to win, got %v", res.OptimalSectionMM2)
	}
}

func TestOptimizeTieKeepsSmallerSection(t *testing.T) {
	table := []catalog.Entry{
		{SectionMM2: 4, AmpacityA: 40, CostPerM: 1},
		{SectionMM2: 6, AmpacityA: 54, CostPerM: 1},
		{SectionMM2: 10, AmpacityA: 75, CostPerM: 2},
	}
	// no current, so the total is the cable cost alone
	res, err := Optimize(table, 4, 2, params(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OptimalSectionMM2 != 4 || !res.IsTechnicalMinimum {
		t.Errorf("expected the first of the tied sections, got %v", res.OptimalSectionMM2)
	}
}

func TestOptimizeWindowClampedToTable(t *testing.T) {
	table := copperTable(t)
	res, err := Optimize(table, 95, 10, params(50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Breakdowns) != 2 {
		t.Errorf("expected 95 and 120 only, got %d candidates", len(res.Breakdowns))
	}
}

func TestOptimizeZeroWindow(t *testing.T) {
	res, err := Optimize(copperTable(t), 10, 0, params(50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Breakdowns) != 1 || res.OptimalSectionMM2 != 10 {
		t.Errorf("expected only 10 mm², got %+v", res.Breakdowns)
	}
}

func TestOptimizeStartNotInTable(t *testing.T) {
	res, err := Optimize(copperTable(t), 3, 2, params(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Breakdowns[0].SectionMM2 != 1.5 {
		t.Errorf("expected evaluation to start at the smallest section, got %v", res.Breakdowns[0].SectionMM2)
	}
}

func TestOptimizeSkipsUnderratedSections(t *testing.T) {
	res, err := Optimize(copperTable(t), 1.5, 3, params(35))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Skipped) != 2 || res.Skipped[0] != 1.5 || res.Skipped[1] != 2.5 {
		t.Errorf("expected 1.5 and 2.5 skipped, got %v", res.Skipped)
	}
	if res.TechnicalSectionMM2 != 4 {
		t.Errorf("expected 4 mm² as first feasible section, got %v", res.TechnicalSectionMM2)
	}
	for _, b := range res.Breakdowns {
		if b.SectionMM2 < 4 {
			t.Errorf("underrated section %v evaluated", b.SectionMM2)
		}
	}
}

func TestOptimizeErrors(t *testing.T) {
	if _, err := Optimize(nil, 6, 4, params(10)); !errors.Is(err, conductor.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty table, got %v", err)
	}
	if _, err := Optimize(copperTable(t), 6, -1, params(10)); !errors.Is(err, conductor.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for negative window, got %v", err)
	}
	if _, err := Optimize(copperTable(t), 1.5, 1, params(100)); !errors.Is(err, conductor.ErrNoCompliantSection) {
		t.Errorf("expected ErrNoCompliantSection, got %v", err)
	}
}

func TestPlan(t *testing.T) {
	res, err := Plan(PlanInput{
		Sizing: sizing.Input{
			LineType:    conductor.ThreePhase,
			Material:    conductor.Copper,
			LengthM:     120,
			CurrentA:    80,
			PowerFactor: 0.9,
			Circuit:     compliance.Power,
		},
		Economics: Economics{Years: 20, HoursPerYear: 4000, CostPerKWh: 0.15},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Optimization.TechnicalSectionMM2 != res.Sizing.TechnicalSectionMM2 {
		t.Errorf("optimization starts at %v, sizing chose %v",
			res.Optimization.TechnicalSectionMM2, res.Sizing.TechnicalSectionMM2)
	}
	if len(res.Optimization.Breakdowns) == 0 || len(res.Optimization.Breakdowns) > DefaultWindow+1 {
		t.Errorf("unexpected candidate count %d", len(res.Optimization.Breakdowns))
	}
}

func TestPlanWindow(t *testing.T) {
	line := sizing.Input{
		LineType:    conductor.ThreePhase,
		Material:    conductor.Copper,
		LengthM:     120,
		CurrentA:    80,
		PowerFactor: 0.9,
		Circuit:     compliance.Power,
	}
	zero, two := 0, 2
	tests := []struct {
		name   string
		window *int
		want   int
	}{
		{"default", nil, DefaultWindow + 1},
		{"technical only", &zero, 1},
		{"two larger", &two, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Plan(PlanInput{
				Sizing:    line,
				Economics: Economics{Years: 20, HoursPerYear: 4000, CostPerKWh: 0.15, Window: tt.window},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := len(res.Optimization.Breakdowns); got != tt.want {
				t.Errorf("expected %d candidates, got %d", tt.want, got)
			}
		})
	}
}

func TestHandlerZeroWindow(t *testing.T) {
	body := `{"sizing":{"line_type":"three-phase","material":"copper","length_m":120,"current_a":80,"power_factor":0.9,"circuit":"power"},"economics":{"years":20,"hours_per_year":4000,"cost_per_kwh":0.15,"window":0}}`
	rec := httptest.NewRecorder()
	(&Handler{}).Calc(rec, httptest.NewRequest(http.MethodPost, "/tools-premium/optimize", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res PlanResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	o := res.Optimization
	if len(o.Breakdowns) != 1 || !o.IsTechnicalMinimum || o.OptimalSectionMM2 != res.Sizing.TechnicalSectionMM2 {
		t.Errorf("expected the technical section alone, got %+v", o)
	}
}
