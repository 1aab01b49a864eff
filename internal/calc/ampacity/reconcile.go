package ampacity

import (
	"fmt"

	"Cablesize/internal/calc/catalog"
	"Cablesize/internal/calc/conductor"
)

type Input struct {
	Material   conductor.Material `json:"material"`
	SectionMM2 float64            `json:"section_mm2"`
	CurrentA   float64            `json:"current_a"`
}

type Result struct {
	Selected  catalog.Entry `json:"selected"`
	Escalated bool          `json:"escalated"`
	Notes     string        `json:"notes"`
}

// Reconcile makes sure the voltage-drop selection also carries the load
// current. When it does not, the first entry of the ascending table with
// enough ampacity is taken and the larger of the two sections wins.
func Reconcile(selected catalog.Entry, currentA float64, table []catalog.Entry) (catalog.Entry, bool, error) {
	if selected.AmpacityA >= currentA {
		return selected, false, nil
	}
	for _, e := range table {
		if e.AmpacityA < currentA {
			continue
		}
		if e.SectionMM2 < selected.SectionMM2 {
			return selected, false, nil
		}
		return e, true, nil
	}
	return catalog.Entry{}, false, fmt.Errorf("%w: no section carries %.1f A", conductor.ErrNoCompliantSection, currentA)
}

func Calculate(in Input) (Result, error) {
	if in.CurrentA <= 0 {
		return Result{}, fmt.Errorf("%w: current must be positive", conductor.ErrInvalidInput)
	}
	sel, err := catalog.Lookup(in.Material, in.SectionMM2)
	if err != nil {
		return Result{}, err
	}
	t, err := catalog.Table(in.Material)
	if err != nil {
		return Result{}, err
	}
	e, escalated, err := Reconcile(sel, in.CurrentA, t)
	if err != nil {
		return Result{}, err
	}
	notes := "Voltage-drop section carries the load current."
	if escalated {
		notes = "Section increased to carry the load current."
	}
	return Result{Selected: e, Escalated: escalated, Notes: notes}, nil
}
