package main

import (
	"fmt"
	"strconv"
	"strings"

	"Cablesize/internal/calc/catalog"
	"Cablesize/internal/calc/premium/importer"
	"Cablesize/internal/calc/premium/optimize"
	"Cablesize/internal/calc/report"
	"Cablesize/internal/calc/sizing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func title(s string) string {
	if s == "" {
		s = "Line"
	}
	return titleStyle.Render(s)
}

func newTable(headers ...string) *table.Table {
	return table.New().Border(lipgloss.NormalBorder()).Headers(headers...)
}

func mm2(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64) + " mm²"
}

func formatSizing(r sizing.Result) string {
	verdict := passStyle.Render("✓ compliant")
	if !r.OK {
		verdict = failStyle.Render("✗ drop limit exceeded")
	}
	t := newTable("Quantity", "Value").Rows(
		[]string{"Line", fmt.Sprintf("%s, %s", r.LineType, r.Material)},
		[]string{"Conductivity", fmt.Sprintf("%.1f S·m/mm²", r.Conductivity)},
		[]string{"Drop limit", fmt.Sprintf("%.2f %% of %.0f V (%.2f V)", r.LimitPercent, r.SourceVoltageV, r.MaxDropV)},
		[]string{"Required section", fmt.Sprintf("%.2f mm²", r.RequiredSectionMM2)},
		[]string{"Voltage-drop section", mm2(r.SelectedSectionMM2)},
		[]string{"Technical section", fmt.Sprintf("%s (%.0f A)", mm2(r.TechnicalSectionMM2), r.AmpacityA)},
		[]string{"Verified drop", fmt.Sprintf("%.2f V (%.2f %%)", r.VerifiedDropV, r.VerifiedDropPercent)},
	)
	return t.String() + "\n" + verdict + "  " + r.Notes
}

func formatCosts(o optimize.Result) string {
	t := newTable("Section", "Loss (W)", "Energy (kWh)", "Cable", "Losses", "Total")
	for _, b := range o.Breakdowns {
		mark := ""
		if b.SectionMM2 == o.OptimalSectionMM2 {
			mark = " *"
		}
		t.Row(
			mm2(b.SectionMM2)+mark,
			fmt.Sprintf("%.1f", b.PowerLossW),
			fmt.Sprintf("%.0f", b.EnergyKWh),
			report.Money(b.CableCost),
			report.Money(b.LossCost),
			report.Money(b.TotalCost),
		)
	}
	return t.String()
}

func formatVerdict(o optimize.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Optimal section: %s, lifecycle cost %s", mm2(o.OptimalSectionMM2), report.Money(o.MinCost))
	if !o.IsTechnicalMinimum {
		fmt.Fprintf(&b, " (saves %s against %s)", report.Money(o.Savings), mm2(o.TechnicalSectionMM2))
	}
	if len(o.Skipped) > 0 {
		fmt.Fprintf(&b, "\nSkipped for ampacity: %v mm²", o.Skipped)
	}
	return b.String()
}

func formatCatalog(entries []catalog.Entry) string {
	t := newTable("Section", "Ampacity (A)", "Cost per m")
	for _, e := range entries {
		t.Row(mm2(e.SectionMM2), fmt.Sprintf("%.0f", e.AmpacityA), report.Money(e.CostPerM))
	}
	return t.String()
}

func formatImport(res importer.Result) string {
	t := newTable("Row", "Line", "Required", "Technical", "Drop %", "OK")
	for _, r := range res.Results {
		ok := "yes"
		if !r.Result.OK {
			ok = "no"
		}
		t.Row(
			strconv.Itoa(r.Row),
			fmt.Sprintf("%s %s", r.Result.LineType, r.Result.Material),
			fmt.Sprintf("%.2f mm²", r.Result.RequiredSectionMM2),
			mm2(r.Result.TechnicalSectionMM2),
			fmt.Sprintf("%.2f", r.Result.VerifiedDropPercent),
			ok,
		)
	}
	var b strings.Builder
	b.WriteString(t.String())
	fmt.Fprintf(&b, "\n%d line(s) sized", res.Count)
	for _, e := range res.Errors {
		fmt.Fprintf(&b, "\n%s row %d: %s", failStyle.Render("✗"), e.Row, e.Error)
	}
	return b.String()
}
