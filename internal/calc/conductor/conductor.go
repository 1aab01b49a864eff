package conductor

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidLineType    = errors.New("invalid line type")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNoSuitableSection  = errors.New("no suitable section")
	ErrNoCompliantSection = errors.New("no compliant section")
)

type LineType string

const (
	SinglePhase LineType = "single-phase"
	ThreePhase  LineType = "three-phase"
)

// ParseLineType accepts the canonical names and the short forms used in
// spreadsheets ("1", "mono", "3", "tri").
func ParseLineType(s string) (LineType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single-phase", "single", "1", "mono", "monophase":
		return SinglePhase, nil
	case "three-phase", "three", "3", "tri", "triphase":
		return ThreePhase, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLineType, s)
}

// PhaseFactor is 2 for single-phase (go and return) and √3 for three-phase.
func PhaseFactor(t LineType) (float64, error) {
	switch t {
	case SinglePhase:
		return 2, nil
	case ThreePhase:
		return math.Sqrt(3), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLineType, t)
}

// ConductorCount is the number of current-carrying conductors of the line.
func ConductorCount(t LineType) (int, error) {
	switch t {
	case SinglePhase:
		return 2, nil
	case ThreePhase:
		return 3, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLineType, t)
}

// DefaultVoltage is the nominal source voltage for the line type.
func DefaultVoltage(t LineType) float64 {
	if t == ThreePhase {
		return 400
	}
	return 230
}

type Material string

const (
	Copper   Material = "copper"
	Aluminum Material = "aluminum"
)

func ParseMaterial(s string) (Material, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "copper", "cu":
		return Copper, nil
	case "aluminum", "aluminium", "al":
		return Aluminum, nil
	}
	return "", fmt.Errorf("%w: unknown material %q", ErrInvalidInput, s)
}

// Conductivity returns the default conductivity in S·m/mm².
func (m Material) Conductivity() (float64, error) {
	switch m {
	case Copper:
		return 56, nil
	case Aluminum:
		return 35, nil
	}
	return 0, fmt.Errorf("%w: unknown material %q", ErrInvalidInput, m)
}

// Line describes the circuit being sized.
type Line struct {
	Type        LineType `json:"line_type"`
	LengthM     float64  `json:"length_m"`
	CurrentA    float64  `json:"current_a"`
	PowerFactor float64  `json:"power_factor"`
}

func (l Line) Validate() error {
	if _, err := PhaseFactor(l.Type); err != nil {
		return err
	}
	if l.LengthM <= 0 {
		return fmt.Errorf("%w: length must be positive", ErrInvalidInput)
	}
	if l.CurrentA <= 0 {
		return fmt.Errorf("%w: current must be positive", ErrInvalidInput)
	}
	if l.PowerFactor < 0 || l.PowerFactor > 1 {
		return fmt.Errorf("%w: power factor must be within [0, 1]", ErrInvalidInput)
	}
	return nil
}

// UnmarshalText normalizes aliases. Unknown names are kept as given so the
// calculators can reject them with ErrInvalidLineType.
func (t *LineType) UnmarshalText(b []byte) error {
	if p, err := ParseLineType(string(b)); err == nil {
		*t = p
		return nil
	}
	*t = LineType(b)
	return nil
}

func (m *Material) UnmarshalText(b []byte) error {
	if p, err := ParseMaterial(string(b)); err == nil {
		*m = p
		return nil
	}
	*m = Material(b)
	return nil
}
