package report

import (
	"bytes"
	"fmt"

	"Cablesize/internal/calc/lifecycle"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// CostCurve renders total, cable and loss cost against the section as PNG.
func CostCurve(breakdowns []lifecycle.Breakdown) ([]byte, error) {
	if len(breakdowns) == 0 {
		return nil, fmt.Errorf("no cost points")
	}
	total := make(plotter.XYs, len(breakdowns))
	cable := make(plotter.XYs, len(breakdowns))
	loss := make(plotter.XYs, len(breakdowns))
	for i, b := range breakdowns {
		total[i] = plotter.XY{X: b.SectionMM2, Y: b.TotalCost}
		cable[i] = plotter.XY{X: b.SectionMM2, Y: b.CableCost}
		loss[i] = plotter.XY{X: b.SectionMM2, Y: b.LossCost}
	}

	p := plot.New()
	p.Title.Text = "Lifecycle cost"
	p.X.Label.Text = "Section (mm2)"
	p.Y.Label.Text = "Cost"
	p.Add(plotter.NewGrid())
	if err := plotutil.AddLinePoints(p, "Total", total, "Cable", cable, "Losses", loss); err != nil {
		return nil, fmt.Errorf("plot lines: %w", err)
	}

	wt, err := p.WriterTo(6*vg.Inch, 3.5*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("plot writer: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render plot: %w", err)
	}
	return buf.Bytes(), nil
}
