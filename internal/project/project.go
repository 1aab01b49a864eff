package project

import (
	"fmt"
	"os"

	"Cablesize/internal/calc/compliance"
	"Cablesize/internal/calc/conductor"
	"Cablesize/internal/calc/premium/optimize"
	"Cablesize/internal/calc/report"
	"Cablesize/internal/calc/sizing"

	"gopkg.in/yaml.v3"
)

// Project is the YAML description of one line to size.
type Project struct {
	Name         string             `yaml:"name"`
	Author       string             `yaml:"author"`
	Notes        string             `yaml:"notes"`
	Material     conductor.Material `yaml:"material"`
	Conductivity float64            `yaml:"conductivity"`
	Line         LineDef            `yaml:"line"`
	Economics    EconomicsDef       `yaml:"economics"`
}

type LineDef struct {
	Type           conductor.LineType `yaml:"type"`
	LengthM        float64            `yaml:"length_m"`
	CurrentA       float64            `yaml:"current_a"`
	PowerFactor    float64            `yaml:"power_factor"`
	SourceVoltageV float64            `yaml:"source_voltage_v"`
	Circuit        compliance.Circuit `yaml:"circuit"`
	MaxDropPercent float64            `yaml:"max_drop_percent"`
}

type EconomicsDef struct {
	Years        float64 `yaml:"years"`
	HoursPerYear float64 `yaml:"hours_per_year"`
	CostPerKWh   float64 `yaml:"cost_per_kwh"`
	Window       *int    `yaml:"window"`
}

// Load reads a project from a YAML file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project YAML: %w", err)
	}
	return &p, nil
}

func (p *Project) Sizing() sizing.Input {
	return sizing.Input{
		LineType:       p.Line.Type,
		Material:       p.Material,
		LengthM:        p.Line.LengthM,
		CurrentA:       p.Line.CurrentA,
		PowerFactor:    p.Line.PowerFactor,
		Conductivity:   p.Conductivity,
		SourceVoltageV: p.Line.SourceVoltageV,
		Circuit:        p.Line.Circuit,
		MaxDropPercent: p.Line.MaxDropPercent,
	}
}

func (p *Project) Plan() optimize.PlanInput {
	return optimize.PlanInput{
		Sizing: p.Sizing(),
		Economics: optimize.Economics{
			Years:        p.Economics.Years,
			HoursPerYear: p.Economics.HoursPerYear,
			CostPerKWh:   p.Economics.CostPerKWh,
			Window:       p.Economics.Window,
		},
	}
}

func (p *Project) Meta() report.Meta {
	return report.Meta{Project: p.Name, Author: p.Author, Notes: p.Notes}
}
