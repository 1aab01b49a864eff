package report

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Cablesize/internal/calc/compliance"
	"Cablesize/internal/calc/conductor"
	"Cablesize/internal/calc/premium/optimize"
	"Cablesize/internal/calc/sizing"
)

func plan(t *testing.T) optimize.PlanResult {
	t.Helper()
	res, err := optimize.Plan(optimize.PlanInput{
		Sizing: sizing.Input{
			LineType:    conductor.ThreePhase,
			Material:    conductor.Copper,
			LengthM:     120,
			CurrentA:    80,
			PowerFactor: 0.9,
			Circuit:     compliance.Power,
		},
		Economics: optimize.Economics{Years: 20, HoursPerYear: 4000, CostPerKWh: 0.15},
	})
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	return res
}

func TestMoney(t *testing.T) {
	tests := map[float64]string{
		0:        "0.00",
		1.005:    "1.01",
		1234.5:   "1234.50",
		-12.3456: "-12.35",
	}
	for in, want := range tests {
		if got := Money(in); got != want {
			t.Errorf("Money(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestCostCurvePNG(t *testing.T) {
	png, err := CostCurve(plan(t).Optimization.Breakdowns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("expected PNG output")
	}
	if _, err := CostCurve(nil); err == nil {
		t.Error("expected an error without points")
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	meta := Meta{Project: "Workshop feeder", Author: "J. Doe", Notes: "Conduit on cable tray."}
	if err := Render(&buf, meta, plan(t), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("expected a PDF document")
	}
}

func TestHandlerGenerate(t *testing.T) {
	body := `{"project":"Feeder","plan":{"sizing":{"line_type":"three-phase","material":"copper","length_m":120,"current_a":80,"power_factor":0.9,"circuit":"power"},"economics":{"years":20,"hours_per_year":4000,"cost_per_kwh":0.15}}}`
	rec := httptest.NewRecorder()
	(&Handler{}).Generate(rec, httptest.NewRequest(http.MethodPost, "/tools/report/pdf", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Error("expected a PDF body")
	}
}

func TestHandlerGenerateInvalidLine(t *testing.T) {
	body := `{"plan":{"sizing":{"line_type":"dc","length_m":1,"current_a":1,"power_factor":1}}}`
	rec := httptest.NewRecorder()
	(&Handler{}).Generate(rec, httptest.NewRequest(http.MethodPost, "/tools/report/pdf", strings.NewReader(body)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
