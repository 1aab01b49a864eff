package optimize

import (
	"fmt"

	"Cablesize/internal/calc/catalog"
	"Cablesize/internal/calc/conductor"
	"Cablesize/internal/calc/lifecycle"
	"Cablesize/internal/calc/sizing"

	"gonum.org/v1/gonum/floats"
)

// DefaultWindow is the number of larger standard sections evaluated above the
// technical minimum.
const DefaultWindow = 4

// Economics are the tariff and horizon of the optimization. A nil Window
// evaluates DefaultWindow larger sections; 0 evaluates the technical section
// alone.
type Economics struct {
	Years        float64 `json:"years"`
	HoursPerYear float64 `json:"hours_per_year"`
	CostPerKWh   float64 `json:"cost_per_kwh"`
	Window       *int    `json:"window,omitempty"`
}

type PlanInput struct {
	Sizing    sizing.Input `json:"sizing"`
	Economics Economics    `json:"economics"`
}

type Result struct {
	TechnicalSectionMM2 float64               `json:"technical_section_mm2"`
	TechnicalCost       float64               `json:"technical_cost"`
	OptimalSectionMM2   float64               `json:"optimal_section_mm2"`
	MinCost             float64               `json:"min_cost"`
	Savings             float64               `json:"savings"`
	IsTechnicalMinimum  bool                  `json:"is_technical_minimum"`
	Breakdowns          []lifecycle.Breakdown `json:"breakdowns"`
	Skipped             []float64             `json:"skipped_sections,omitempty"`
	Notes               string                `json:"notes"`
}

type PlanResult struct {
	Sizing       sizing.Result `json:"sizing"`
	Optimization Result        `json:"optimization"`
}

// Optimize evaluates the lifecycle cost of the technical minimum and of up to
// window larger sections, and returns the cheapest. Ties go to the smaller
// section. Candidates that cannot carry the load current are skipped.
func Optimize(table []catalog.Entry, startMM2 float64, window int, p lifecycle.Params) (Result, error) {
	if len(table) == 0 {
		return Result{}, fmt.Errorf("%w: empty catalog", conductor.ErrInvalidInput)
	}
	if window < 0 {
		return Result{}, fmt.Errorf("%w: negative window", conductor.ErrInvalidInput)
	}
	start, found := catalog.IndexOf(table, startMM2)
	if !found {
		start = 0
	}
	end := min(start+window+1, len(table))

	var (
		breakdowns []lifecycle.Breakdown
		totals     []float64
		skipped    []float64
	)
	for _, e := range table[start:end] {
		if e.AmpacityA < p.CurrentA {
			skipped = append(skipped, e.SectionMM2)
			continue
		}
		b, err := lifecycle.Evaluate(e, p)
		if err != nil {
			return Result{}, err
		}
		breakdowns = append(breakdowns, b)
		totals = append(totals, b.TotalCost)
	}
	if len(breakdowns) == 0 {
		return Result{}, fmt.Errorf("%w: no section in the window carries %.1f A", conductor.ErrNoCompliantSection, p.CurrentA)
	}

	best := floats.MinIdx(totals)
	res := Result{
		TechnicalSectionMM2: breakdowns[0].SectionMM2,
		TechnicalCost:       breakdowns[0].TotalCost,
		OptimalSectionMM2:   breakdowns[best].SectionMM2,
		MinCost:             totals[best],
		Savings:             breakdowns[0].TotalCost - totals[best],
		IsTechnicalMinimum:  best == 0,
		Breakdowns:          breakdowns,
		Skipped:             skipped,
		Notes:               "The technical minimum is also the cheapest over the horizon.",
	}
	if !res.IsTechnicalMinimum {
		res.Notes = "A larger section is cheaper over the horizon: lower losses outweigh the extra cable cost."
	}
	return res, nil
}

// Plan sizes the line and optimizes from the technical section.
func Plan(in PlanInput) (PlanResult, error) {
	s, err := sizing.Calculate(in.Sizing)
	if err != nil {
		return PlanResult{}, err
	}
	table, err := catalog.Table(s.Material)
	if err != nil {
		return PlanResult{}, err
	}
	window := DefaultWindow
	if in.Economics.Window != nil {
		window = *in.Economics.Window
	}
	p := lifecycle.Params{
		LineType:     s.LineType,
		LengthM:      in.Sizing.LengthM,
		CurrentA:     in.Sizing.CurrentA,
		PowerFactor:  in.Sizing.PowerFactor,
		Conductivity: s.Conductivity,
		Years:        in.Economics.Years,
		HoursPerYear: in.Economics.HoursPerYear,
		CostPerKWh:   in.Economics.CostPerKWh,
	}
	o, err := Optimize(table, s.TechnicalSectionMM2, window, p)
	if err != nil {
		return PlanResult{}, err
	}
	return PlanResult{Sizing: s, Optimization: o}, nil
}
