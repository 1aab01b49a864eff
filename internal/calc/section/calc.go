package section

import (
	"fmt"

	"Cablesize/internal/calc/conductor"
)

type RequiredInput struct {
	LineType     conductor.LineType `json:"line_type"`
	LengthM      float64            `json:"length_m"`
	CurrentA     float64            `json:"current_a"`
	PowerFactor  float64            `json:"power_factor"`
	Conductivity float64            `json:"conductivity"`
	MaxDropV     float64            `json:"max_drop_v"`
}

type RequiredResult struct {
	SectionMM2 float64 `json:"section_mm2"`
	Notes      string  `json:"notes"`
}

type VerifyInput struct {
	LineType       conductor.LineType `json:"line_type"`
	LengthM        float64            `json:"length_m"`
	CurrentA       float64            `json:"current_a"`
	PowerFactor    float64            `json:"power_factor"`
	Conductivity   float64            `json:"conductivity"`
	SectionMM2     float64            `json:"section_mm2"`
	SourceVoltageV float64            `json:"source_voltage_v"`
}

type VerifyResult struct {
	DropV       float64 `json:"drop_v"`
	DropPercent float64 `json:"drop_percent"`
	Notes       string  `json:"notes"`
}

// Required returns the theoretical minimum cross-section in mm² that keeps the
// voltage drop at or below maxDropV.
//
//	S = k * L * I * cosφ / (σ * ΔU)
func Required(t conductor.LineType, lengthM, currentA, pf, sigma, maxDropV float64) (float64, error) {
	k, err := conductor.PhaseFactor(t)
	if err != nil {
		return 0, err
	}
	if maxDropV == 0 {
		return 0, fmt.Errorf("%w: max voltage drop is zero", conductor.ErrInvalidInput)
	}
	if sigma == 0 {
		return 0, fmt.Errorf("%w: conductivity is zero", conductor.ErrInvalidInput)
	}
	return k * lengthM * currentA * pf / (sigma * maxDropV), nil
}

// DropVolts is the resistive voltage drop of a line with the given section.
func DropVolts(t conductor.LineType, lengthM, currentA, pf, sigma, sectionMM2 float64) (float64, error) {
	k, err := conductor.PhaseFactor(t)
	if err != nil {
		return 0, err
	}
	if sectionMM2 == 0 {
		return 0, fmt.Errorf("%w: section is zero", conductor.ErrInvalidInput)
	}
	if sigma == 0 {
		return 0, fmt.Errorf("%w: conductivity is zero", conductor.ErrInvalidInput)
	}
	return k * lengthM * currentA * pf / (sigma * sectionMM2), nil
}

// Verify recomputes the drop for the chosen section as a percentage of the
// source voltage.
func Verify(t conductor.LineType, lengthM, currentA, pf, sigma, sectionMM2, sourceV float64) (float64, error) {
	dv, err := DropVolts(t, lengthM, currentA, pf, sigma, sectionMM2)
	if err != nil {
		return 0, err
	}
	if sourceV == 0 {
		return 0, fmt.Errorf("%w: source voltage is zero", conductor.ErrInvalidInput)
	}
	return 100 * dv / sourceV, nil
}

func CalculateRequired(in RequiredInput) (RequiredResult, error) {
	s, err := Required(in.LineType, in.LengthM, in.CurrentA, in.PowerFactor, in.Conductivity, in.MaxDropV)
	if err != nil {
		return RequiredResult{}, err
	}
	return RequiredResult{
		SectionMM2: s,
		Notes:      "Theoretical section from the voltage-drop limit (resistive formula).",
	}, nil
}

func CalculateVerify(in VerifyInput) (VerifyResult, error) {
	dv, err := DropVolts(in.LineType, in.LengthM, in.CurrentA, in.PowerFactor, in.Conductivity, in.SectionMM2)
	if err != nil {
		return VerifyResult{}, err
	}
	pct, err := Verify(in.LineType, in.LengthM, in.CurrentA, in.PowerFactor, in.Conductivity, in.SectionMM2, in.SourceVoltageV)
	if err != nil {
		return VerifyResult{}, err
	}
	return VerifyResult{
		DropV:       dv,
		DropPercent: pct,
		Notes:       "Voltage drop recomputed for the selected section.",
	}, nil
}
