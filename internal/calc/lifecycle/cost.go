package lifecycle

import (
	"fmt"

	"Cablesize/internal/calc/catalog"
	"Cablesize/internal/calc/conductor"
)

// Params are the line and tariff values shared by every evaluated section.
type Params struct {
	LineType     conductor.LineType `json:"line_type"`
	LengthM      float64            `json:"length_m"`
	CurrentA     float64            `json:"current_a"`
	PowerFactor  float64            `json:"power_factor"`
	Conductivity float64            `json:"conductivity"`
	Years        float64            `json:"years"`
	HoursPerYear float64            `json:"hours_per_year"`
	CostPerKWh   float64            `json:"cost_per_kwh"`
}

type Breakdown struct {
	SectionMM2    float64 `json:"section_mm2"`
	ResistanceOhm float64 `json:"resistance_ohm"`
	PowerLossW    float64 `json:"power_loss_w"`
	EnergyKWh     float64 `json:"energy_kwh"`
	CableCost     float64 `json:"cable_cost"`
	LossCost      float64 `json:"loss_cost"`
	TotalCost     float64 `json:"total_cost"`
}

type Input struct {
	Entry  catalog.Entry `json:"entry"`
	Params Params        `json:"params"`
}

func (p Params) validate() error {
	switch {
	case p.LengthM < 0:
		return fmt.Errorf("%w: negative length", conductor.ErrInvalidInput)
	case p.CurrentA < 0:
		return fmt.Errorf("%w: negative current", conductor.ErrInvalidInput)
	case p.Conductivity <= 0:
		return fmt.Errorf("%w: conductivity must be positive", conductor.ErrInvalidInput)
	case p.Years < 0, p.HoursPerYear < 0, p.CostPerKWh < 0:
		return fmt.Errorf("%w: negative economic parameter", conductor.ErrInvalidInput)
	}
	return nil
}

// Evaluate returns the purchase cost plus the cost of the energy dissipated in
// the conductors over the amortization horizon.
func Evaluate(e catalog.Entry, p Params) (Breakdown, error) {
	n, err := conductor.ConductorCount(p.LineType)
	if err != nil {
		return Breakdown{}, err
	}
	if err := p.validate(); err != nil {
		return Breakdown{}, err
	}
	if e.SectionMM2 <= 0 {
		return Breakdown{}, fmt.Errorf("%w: section must be positive", conductor.ErrInvalidInput)
	}
	count := float64(n)

	cable := p.LengthM * e.CostPerM * count
	r := p.LengthM / (p.Conductivity * e.SectionMM2)
	loss := count * p.CurrentA * p.CurrentA * r
	energy := loss / 1000 * p.HoursPerYear * p.Years
	lossCost := energy * p.CostPerKWh

	return Breakdown{
		SectionMM2:    e.SectionMM2,
		ResistanceOhm: r,
		PowerLossW:    loss,
		EnergyKWh:     energy,
		CableCost:     cable,
		LossCost:      lossCost,
		TotalCost:     cable + lossCost,
	}, nil
}
