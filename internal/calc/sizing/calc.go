package sizing

import (
	"fmt"

	"Cablesize/internal/calc/ampacity"
	"Cablesize/internal/calc/catalog"
	"Cablesize/internal/calc/compliance"
	"Cablesize/internal/calc/conductor"
	"Cablesize/internal/calc/section"
)

type Input struct {
	LineType       conductor.LineType `json:"line_type"`
	Material       conductor.Material `json:"material"`
	LengthM        float64            `json:"length_m"`
	CurrentA       float64            `json:"current_a"`
	PowerFactor    float64            `json:"power_factor"`
	Conductivity   float64            `json:"conductivity"`
	SourceVoltageV float64            `json:"source_voltage_v"`
	Circuit        compliance.Circuit `json:"circuit"`
	MaxDropPercent float64            `json:"max_drop_percent"`
}

type Result struct {
	LineType            conductor.LineType `json:"line_type"`
	Material            conductor.Material `json:"material"`
	Conductivity        float64            `json:"conductivity"`
	SourceVoltageV      float64            `json:"source_voltage_v"`
	LimitPercent        float64            `json:"limit_percent"`
	MaxDropV            float64            `json:"max_drop_v"`
	RequiredSectionMM2  float64            `json:"required_section_mm2"`
	SelectedSectionMM2  float64            `json:"selected_section_mm2"`
	TechnicalSectionMM2 float64            `json:"technical_section_mm2"`
	AmpacityA           float64            `json:"ampacity_a"`
	Escalated           bool               `json:"escalated"`
	VerifiedDropV       float64            `json:"verified_drop_v"`
	VerifiedDropPercent float64            `json:"verified_drop_percent"`
	OK                  bool               `json:"ok"`
	Notes               string             `json:"notes"`
}

// withDefaults fills conductivity, source voltage and the drop limit when the
// caller leaves them at zero. Negative values are rejected.
func withDefaults(in Input) (Input, error) {
	switch {
	case in.Conductivity < 0:
		return in, fmt.Errorf("%w: negative conductivity", conductor.ErrInvalidInput)
	case in.SourceVoltageV < 0:
		return in, fmt.Errorf("%w: negative source voltage", conductor.ErrInvalidInput)
	case in.MaxDropPercent < 0:
		return in, fmt.Errorf("%w: negative drop limit", conductor.ErrInvalidInput)
	}
	if in.Material == "" {
		in.Material = conductor.Copper
	}
	if in.Conductivity == 0 {
		sigma, err := in.Material.Conductivity()
		if err != nil {
			return in, err
		}
		in.Conductivity = sigma
	}
	if in.SourceVoltageV == 0 {
		in.SourceVoltageV = conductor.DefaultVoltage(in.LineType)
	}
	if in.MaxDropPercent == 0 {
		if in.Circuit == "" {
			in.Circuit = compliance.Power
		}
		limit, err := compliance.Limit(in.Circuit)
		if err != nil {
			return in, err
		}
		in.MaxDropPercent = limit
	}
	return in, nil
}

// Calculate runs one sizing: theoretical section from the drop limit, next
// standard section, ampacity check and final drop verification.
func Calculate(in Input) (Result, error) {
	line := conductor.Line{Type: in.LineType, LengthM: in.LengthM, CurrentA: in.CurrentA, PowerFactor: in.PowerFactor}
	if err := line.Validate(); err != nil {
		return Result{}, err
	}
	in, err := withDefaults(in)
	if err != nil {
		return Result{}, err
	}
	if in.MaxDropPercent > 100 {
		return Result{}, fmt.Errorf("%w: drop limit above 100%%", conductor.ErrInvalidInput)
	}

	maxDropV := in.MaxDropPercent * in.SourceVoltageV / 100
	required, err := section.Required(in.LineType, in.LengthM, in.CurrentA, in.PowerFactor, in.Conductivity, maxDropV)
	if err != nil {
		return Result{}, err
	}
	selected, table, err := catalog.Resolve(required, in.Material)
	if err != nil {
		return Result{}, err
	}
	technical, escalated, err := ampacity.Reconcile(selected, in.CurrentA, table)
	if err != nil {
		return Result{}, err
	}
	dropV, err := section.DropVolts(in.LineType, in.LengthM, in.CurrentA, in.PowerFactor, in.Conductivity, technical.SectionMM2)
	if err != nil {
		return Result{}, err
	}
	dropPct, err := section.Verify(in.LineType, in.LengthM, in.CurrentA, in.PowerFactor, in.Conductivity, technical.SectionMM2, in.SourceVoltageV)
	if err != nil {
		return Result{}, err
	}

	ok := dropPct <= in.MaxDropPercent
	if in.Circuit != "" {
		check, err := compliance.Check(in.Circuit, dropPct)
		if err != nil {
			return Result{}, err
		}
		ok = ok && check.OK
	}

	notes := "Section set by the voltage-drop limit."
	if escalated {
		notes = "Section increased beyond the voltage-drop selection to carry the load current."
	}
	return Result{
		LineType:            in.LineType,
		Material:            in.Material,
		Conductivity:        in.Conductivity,
		SourceVoltageV:      in.SourceVoltageV,
		LimitPercent:        in.MaxDropPercent,
		MaxDropV:            maxDropV,
		RequiredSectionMM2:  required,
		SelectedSectionMM2:  selected.SectionMM2,
		TechnicalSectionMM2: technical.SectionMM2,
		AmpacityA:           technical.AmpacityA,
		Escalated:           escalated,
		VerifiedDropV:       dropV,
		VerifiedDropPercent: dropPct,
		OK:                  ok,
		Notes:               notes,
	}, nil
}
