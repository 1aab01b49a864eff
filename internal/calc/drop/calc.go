package drop

import (
	"fmt"
	"math"

	"Cablesize/internal/calc/conductor"
	"Cablesize/internal/calc/section"
)

type Method string

const (
	MethodSimplified Method = "simplified"
	MethodBlondel    Method = "blondel"
)

// DefaultReactanceOhmKM is the usual reactance of a low-voltage cable.
const DefaultReactanceOhmKM = 0.08

type Input struct {
	Method         Method             `json:"method"`
	LineType       conductor.LineType `json:"line_type"`
	LengthM        float64            `json:"length_m"`
	CurrentA       float64            `json:"current_a"`
	PowerFactor    float64            `json:"power_factor"`
	Conductivity   float64            `json:"conductivity"`
	SectionMM2     float64            `json:"section_mm2"`
	ReactanceOhmKM *float64           `json:"reactance_ohm_km,omitempty"`
	SourceVoltageV float64            `json:"source_voltage_v"`
}

type Result struct {
	DropV       float64 `json:"drop_v"`
	DropPercent float64 `json:"drop_percent"`
	MethodUsed  Method  `json:"method_used"`
	Notes       string  `json:"notes"`
}

// Blondel includes the reactive part of the line impedance:
//
//	ΔU = k * L * I * (R'·cosφ + X'·sinφ),  R' = 1/(σ·S) Ω/m
func Blondel(t conductor.LineType, lengthM, currentA, pf, sigma, sectionMM2, reactanceOhmKM float64) (float64, error) {
	k, err := conductor.PhaseFactor(t)
	if err != nil {
		return 0, err
	}
	if sectionMM2 == 0 || sigma == 0 {
		return 0, fmt.Errorf("%w: section and conductivity must be non-zero", conductor.ErrInvalidInput)
	}
	if pf < 0 || pf > 1 {
		return 0, fmt.Errorf("%w: power factor must be within [0, 1]", conductor.ErrInvalidInput)
	}
	r := 1 / (sigma * sectionMM2)
	x := reactanceOhmKM / 1000
	sin := math.Sqrt(1 - pf*pf)
	return k * lengthM * currentA * (r*pf + x*sin), nil
}

func Calculate(in Input) (Result, error) {
	if in.Method == "" {
		in.Method = MethodSimplified
	}
	if in.SourceVoltageV <= 0 {
		in.SourceVoltageV = conductor.DefaultVoltage(in.LineType)
	}

	var dv float64
	var err error
	notes := ""
	switch in.Method {
	case MethodSimplified:
		dv, err = section.DropVolts(in.LineType, in.LengthM, in.CurrentA, in.PowerFactor, in.Conductivity, in.SectionMM2)
		notes = "Resistive-only voltage drop."
	case MethodBlondel:
		x := DefaultReactanceOhmKM
		if in.ReactanceOhmKM != nil {
			x = *in.ReactanceOhmKM
		}
		dv, err = Blondel(in.LineType, in.LengthM, in.CurrentA, in.PowerFactor, in.Conductivity, in.SectionMM2, x)
		notes = "Blondel voltage drop (resistance and reactance)."
	default:
		return Result{}, fmt.Errorf("%w: unknown method %q", conductor.ErrInvalidInput, in.Method)
	}
	if err != nil {
		return Result{}, err
	}
	return Result{
		DropV:       dv,
		DropPercent: 100 * dv / in.SourceVoltageV,
		MethodUsed:  in.Method,
		Notes:       notes,
	}, nil
}
