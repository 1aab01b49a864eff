package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"Cablesize/internal/calc/premium/optimize"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
)

type Meta struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

type Input struct {
	Meta
	Plan optimize.PlanInput `json:"plan"`
}

// Money formats an amount with two decimals.
func Money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Render writes the sizing and cost report as PDF.
func Render(w io.Writer, meta Meta, res optimize.PlanResult, date time.Time) error {
	if meta.Title == "" {
		meta.Title = "Conductor Sizing Report"
	}
	s := res.Sizing
	o := res.Optimization

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", date.Format("2006-01-02")))
	pdf.Ln(10)

	heading(pdf, "Sizing")
	rows := [][2]string{
		{"Line", fmt.Sprintf("%s, %s, sigma %.1f S*m/mm2", s.LineType, s.Material, s.Conductivity)},
		{"Source voltage", fmt.Sprintf("%.0f V", s.SourceVoltageV)},
		{"Drop limit", fmt.Sprintf("%.2f %% (%.2f V)", s.LimitPercent, s.MaxDropV)},
		{"Required section", fmt.Sprintf("%.2f mm2", s.RequiredSectionMM2)},
		{"Voltage-drop section", fmt.Sprintf("%g mm2", s.SelectedSectionMM2)},
		{"Technical section", fmt.Sprintf("%g mm2 (%.0f A)", s.TechnicalSectionMM2, s.AmpacityA)},
		{"Verified drop", fmt.Sprintf("%.2f V (%.2f %%)", s.VerifiedDropV, s.VerifiedDropPercent)},
		{"Compliant", yesNo(s.OK)},
	}
	for _, r := range rows {
		pdf.CellFormat(60, 6, r[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, r[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	heading(pdf, "Lifecycle cost")
	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range []string{"Section (mm2)", "Loss (W)", "Cable", "Losses", "Total"} {
		pdf.CellFormat(38, 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for _, b := range o.Breakdowns {
		fill := b.SectionMM2 == o.OptimalSectionMM2
		if fill {
			pdf.SetFillColor(220, 235, 220)
		}
		pdf.CellFormat(38, 6, fmt.Sprintf("%g", b.SectionMM2), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(38, 6, fmt.Sprintf("%.1f", b.PowerLossW), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(38, 6, Money(b.CableCost), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(38, 6, Money(b.LossCost), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(38, 6, Money(b.TotalCost), "1", 1, "R", fill, 0, "")
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Optimal section: %g mm2, total %s, savings %s against the technical section.",
		o.OptimalSectionMM2, Money(o.MinCost), Money(o.Savings)))
	pdf.Ln(8)

	png, err := CostCurve(o.Breakdowns)
	if err != nil {
		return err
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("costcurve", opts, bytes.NewReader(png))
	pdf.ImageOptions("costcurve", 10, pdf.GetY(), 180, 0, true, opts, 0, "")

	if meta.Notes != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 6, meta.Notes, "", "L", false)
	}
	return pdf.Output(w)
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, text)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
