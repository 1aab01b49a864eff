package compliance

import (
	"fmt"
	"strings"

	"Cablesize/internal/calc/conductor"
)

type Circuit string

const (
	Lighting Circuit = "lighting"
	Power    Circuit = "power"
)

type Input struct {
	Circuit     Circuit `json:"circuit"`
	DropPercent float64 `json:"drop_percent"`
}

type Result struct {
	Circuit      Circuit `json:"circuit"`
	LimitPercent float64 `json:"limit_percent"`
	MarginPct    float64 `json:"margin_percent"`
	OK           bool    `json:"ok"`
	Notes        string  `json:"notes"`
}

// Limit returns the maximum admissible voltage drop in percent of the source
// voltage for the circuit type.
func Limit(c Circuit) (float64, error) {
	switch normalize(c) {
	case Lighting:
		return 4.5, nil
	case Power:
		return 6.5, nil
	}
	return 0, fmt.Errorf("%w: unknown circuit type %q", conductor.ErrInvalidInput, c)
}

func Check(c Circuit, dropPercent float64) (Result, error) {
	limit, err := Limit(c)
	if err != nil {
		return Result{}, err
	}
	ok := dropPercent <= limit
	notes := "Voltage drop within the admissible limit."
	if !ok {
		notes = "Voltage drop exceeds the admissible limit."
	}
	return Result{
		Circuit:      normalize(c),
		LimitPercent: limit,
		MarginPct:    limit - dropPercent,
		OK:           ok,
		Notes:        notes,
	}, nil
}

func normalize(c Circuit) Circuit {
	return Circuit(strings.ToLower(strings.TrimSpace(string(c))))
}
