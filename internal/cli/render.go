package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/klimatkalk/klimatkalk/internal/screening"
)

// Human-readable labels for the breakdown categories.
var categoryLabels = map[screening.Category]string{ //nolint:gochecknoglobals // Static lookup table
	screening.CategoryStructure:     "Structure",
	screening.CategoryFoundation:    "Foundation",
	screening.CategoryEnvelope:      "Envelope",
	screening.CategoryInteriorWalls: "Interior walls",
	screening.CategoryFinishes:      "Finishes & installations",
}

// renderStyles bundles the lipgloss styles used by the table renderers.
// With color disabled every style is a no-op, so output stays pipe-safe.
type renderStyles struct {
	header lipgloss.Style
	label  lipgloss.Style
	below  lipgloss.Style
	above  lipgloss.Style
	note   lipgloss.Style
}

// newRenderStyles returns the style set, plain when color is off.
func newRenderStyles(color bool) renderStyles {
	if !color {
		return renderStyles{}
	}
	return renderStyles{
		header: lipgloss.NewStyle().Bold(true),
		label:  lipgloss.NewStyle().Faint(true),
		below:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
		above:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red
		note:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
	}
}

// printer groups large numbers per English locale conventions.
var printer = message.NewPrinter(language.English) //nolint:gochecknoglobals // Shared formatter

// formatKg renders a kg CO2e/m² value with one decimal.
func formatKg(v float64) string {
	return printer.Sprintf("%.1f", v)
}

// formatDelta renders a signed delta with an explicit plus for values above
// the reference.
func formatDelta(v float64) string {
	if v > 0 {
		return "+" + printer.Sprintf("%.1f", v)
	}
	return printer.Sprintf("%.1f", v)
}

// deltaStyle picks the style for a delta value: green below the reference,
// red above.
func (s renderStyles) deltaStyle(delta float64) lipgloss.Style {
	if delta > 0 {
		return s.above
	}
	return s.below
}

// renderResult writes the breakdown table, totals, reference comparison,
// timber estimate and notes for one estimate.
func renderResult(w io.Writer, name string, res screening.ModelResult, styles renderStyles) {
	if name != "" {
		fmt.Fprintf(w, "%s\n\n", styles.header.Render("SCENARIO: "+name))
	}

	fmt.Fprintln(w, styles.header.Render("BREAKDOWN (kg CO2e/m² BTA)"))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, category := range screening.CategoryOrder() {
		value, ok := res.Breakdown[category]
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "  %s\t%s\n", categoryLabels[category], formatKg(value))
	}
	fmt.Fprintf(tw, "  %s\t%s\n", styles.header.Render("Total"), styles.header.Render(formatKg(res.TotalKgPerM2)))
	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s kg CO2e/m² BTA (%.3f t)\n",
		styles.label.Render("Total:"), formatKg(res.TotalKgPerM2), res.TotalTonPerM2)
	fmt.Fprintf(w, "%s %s kg CO2e/m² BTA\n",
		styles.label.Render("Reference:"), formatKg(res.ReferenceKgPerM2))

	deltaText := fmt.Sprintf("%s kg (%s%%)", formatDelta(res.DeltaKg), formatDelta(res.DeltaPercent))
	fmt.Fprintf(w, "%s %s\n",
		styles.label.Render("Vs reference:"), styles.deltaStyle(res.DeltaKg).Render(deltaText))
	fmt.Fprintf(w, "%s %.3f ton/m² BTA\n",
		styles.label.Render("Timber mass:"), res.TimberTonPerM2)

	if len(res.Notes) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styles.header.Render("NOTES"))
		for _, note := range res.Notes {
			fmt.Fprintf(w, "  - %s\n", styles.note.Render(note))
		}
	}
}

// comparedScenario pairs a scenario name with its estimate for the
// comparison table.
type comparedScenario struct {
	Name   string
	Result screening.ModelResult
}

// renderComparison writes one row per scenario with totals, deltas and note
// counts, in the given order.
func renderComparison(w io.Writer, rows []comparedScenario, styles renderStyles) {
	fmt.Fprintln(w, styles.header.Render("SCENARIO COMPARISON (kg CO2e/m² BTA)"))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  SCENARIO\tTOTAL\tVS REF\tVS REF %\tTIMBER t/m²\tNOTES")
	for _, row := range rows {
		res := row.Result
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s%%\t%.3f\t%d\n",
			row.Name,
			formatKg(res.TotalKgPerM2),
			formatDelta(res.DeltaKg),
			formatDelta(res.DeltaPercent),
			res.TimberTonPerM2,
			len(res.Notes),
		)
	}
	tw.Flush()
}
