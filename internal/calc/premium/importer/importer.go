package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"Cablesize/internal/calc/compliance"
	"Cablesize/internal/calc/conductor"
	"Cablesize/internal/calc/sizing"

	"github.com/xuri/excelize/v2"
)

var ErrEmptySheet = errors.New("empty sheet")

type RowResult struct {
	Row    int           `json:"row"`
	Result sizing.Result `json:"result"`
}

type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type Result struct {
	Count   int         `json:"count"`
	Results []RowResult `json:"results"`
	Errors  []RowError  `json:"errors"`
}

// Read sizes every data row of the first sheet. Rows are numbered as in the
// spreadsheet, so the first data row is 2.
func Read(r io.Reader) (Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return Result{}, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return Result{}, ErrEmptySheet
	}

	out := Result{Results: []RowResult{}, Errors: []RowError{}}
	for i := 1; i < len(rows); i++ {
		n := i + 1
		if blank(rows[i]) {
			continue
		}
		input, err := parseRow(rows[i])
		if err != nil {
			out.Errors = append(out.Errors, RowError{Row: n, Error: err.Error()})
			continue
		}
		res, err := sizing.Calculate(input)
		if err != nil {
			out.Errors = append(out.Errors, RowError{Row: n, Error: err.Error()})
			continue
		}
		out.Results = append(out.Results, RowResult{Row: n, Result: res})
	}
	out.Count = len(out.Results)
	return out, nil
}

func parseRow(row []string) (sizing.Input, error) {
	// expected: line_type, material, length_m, current_a, power_factor,
	// then optional source_voltage_v, circuit, max_drop_percent
	if len(row) < 5 {
		return sizing.Input{}, fmt.Errorf("bad row: %d columns, want at least 5", len(row))
	}
	lt, err := conductor.ParseLineType(row[0])
	if err != nil {
		return sizing.Input{}, err
	}
	m, err := conductor.ParseMaterial(row[1])
	if err != nil {
		return sizing.Input{}, err
	}
	nums := make([]float64, 3)
	for i, name := range []string{"length_m", "current_a", "power_factor"} {
		v, err := toFloat(row[2+i])
		if err != nil {
			return sizing.Input{}, fmt.Errorf("%s: %w", name, err)
		}
		nums[i] = v
	}
	in := sizing.Input{
		LineType:    lt,
		Material:    m,
		LengthM:     nums[0],
		CurrentA:    nums[1],
		PowerFactor: nums[2],
	}
	if in.SourceVoltageV, err = optionalFloat(row, 5); err != nil {
		return sizing.Input{}, fmt.Errorf("source_voltage_v: %w", err)
	}
	if len(row) > 6 && strings.TrimSpace(row[6]) != "" {
		in.Circuit = compliance.Circuit(strings.TrimSpace(row[6]))
	}
	if in.MaxDropPercent, err = optionalFloat(row, 7); err != nil {
		return sizing.Input{}, fmt.Errorf("max_drop_percent: %w", err)
	}
	return in, nil
}

// optionalFloat parses column i, or returns 0 so sizing applies its default
// when the cell is missing or blank.
func optionalFloat(row []string, i int) (float64, error) {
	if len(row) <= i || strings.TrimSpace(row[i]) == "" {
		return 0, nil
	}
	return toFloat(row[i])
}

// toFloat accepts a decimal comma as written by European spreadsheets.
func toFloat(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return v, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
