package catalog

import (
	"fmt"
	"sort"

	"Cablesize/internal/calc/conductor"
)

// Entry is one standard conductor size.
type Entry struct {
	SectionMM2 float64 `json:"section_mm2"`
	AmpacityA  float64 `json:"ampacity_a"`
	CostPerM   float64 `json:"cost_per_m"`
}

type ResolveInput struct {
	Material           conductor.Material `json:"material"`
	RequiredSectionMM2 float64            `json:"required_section_mm2"`
}

type ResolveResult struct {
	Selected Entry   `json:"selected"`
	Table    []Entry `json:"table"`
	Notes    string  `json:"notes"`
}

// Table returns a copy of the catalog for the material, ascending by section.
func Table(m conductor.Material) ([]Entry, error) {
	t, ok := tables[m]
	if !ok {
		return nil, fmt.Errorf("%w: unknown material %q", conductor.ErrInvalidInput, m)
	}
	out := make([]Entry, len(t))
	copy(out, t)
	return out, nil
}

// Ceiling returns the index of the smallest entry whose section is at least
// requiredMM2, or len(table) when the table is exhausted.
func Ceiling(table []Entry, requiredMM2 float64) int {
	return sort.Search(len(table), func(i int) bool {
		return table[i].SectionMM2 >= requiredMM2
	})
}

// IndexOf returns the position of the entry with exactly the given section.
func IndexOf(table []Entry, sectionMM2 float64) (int, bool) {
	i := Ceiling(table, sectionMM2)
	if i < len(table) && table[i].SectionMM2 == sectionMM2 {
		return i, true
	}
	return 0, false
}

// Lookup finds the catalog entry with exactly the given section.
func Lookup(m conductor.Material, sectionMM2 float64) (Entry, error) {
	t, err := Table(m)
	if err != nil {
		return Entry{}, err
	}
	i, ok := IndexOf(t, sectionMM2)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %g mm² is not a standard %s section", conductor.ErrInvalidInput, sectionMM2, m)
	}
	return t[i], nil
}

// Resolve picks the smallest standard section not below requiredMM2.
func Resolve(requiredMM2 float64, m conductor.Material) (Entry, []Entry, error) {
	t, err := Table(m)
	if err != nil {
		return Entry{}, nil, err
	}
	i := Ceiling(t, requiredMM2)
	if i == len(t) {
		return Entry{}, nil, fmt.Errorf("%w: %.2f mm² exceeds the largest %s section (%g mm²)",
			conductor.ErrNoSuitableSection, requiredMM2, m, t[len(t)-1].SectionMM2)
	}
	return t[i], t, nil
}

func Calculate(in ResolveInput) (ResolveResult, error) {
	if in.RequiredSectionMM2 < 0 {
		return ResolveResult{}, fmt.Errorf("%w: negative section", conductor.ErrInvalidInput)
	}
	sel, t, err := Resolve(in.RequiredSectionMM2, in.Material)
	if err != nil {
		return ResolveResult{}, err
	}
	return ResolveResult{
		Selected: sel,
		Table:    t,
		Notes:    "Next standard section at or above the required section.",
	}, nil
}
