package viz

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/san-kum/mycodecay/internal/decay"
)

// RiskScale explains how to read the risk score.
const RiskScale = "(lower = safer)"

// Artifacts names the files written for a run.
type Artifacts struct {
	Plot   string
	Report string
}

var printer = message.NewPrinter(language.English)

// Summary renders the end-of-run report.
func Summary(run *decay.Run, a Artifacts, t Theme) string {
	s := newStyles(t)

	row := func(label, value string) string {
		return s.label.Render(fmt.Sprintf("%-17s", label)) + s.value.Render(value)
	}

	lines := []string{
		s.title.Render(printer.Sprintf("%s · %d days", run.Strain.DisplayName, run.Days)),
		"",
		row("Initial fibers:", formatFibers(run.InitialFibers)),
		row("Remaining:", printer.Sprintf("%.2f", run.Remaining())),
		row("Final Reduction:", printer.Sprintf("%.1f%%", run.FinalReductionPercent)) +
			"  " + s.bar.Render(ProgressBar(run.FinalReductionPercent/100, 20)),
		row("Risk Score:", printer.Sprintf("%.3f", run.RiskScore)) + " " + s.hint.Render(RiskScale),
	}
	if a.Plot != "" || a.Report != "" {
		lines = append(lines, "")
	}
	if a.Plot != "" {
		lines = append(lines, row("Plot saved:", a.Plot))
	}
	if a.Report != "" {
		lines = append(lines, row("CSV saved:", a.Report))
	}

	return s.panel.Render(strings.Join(lines, "\n"))
}

// formatFibers groups digits and drops the fraction for whole counts.
func formatFibers(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < math.MaxInt64 {
		return printer.Sprintf("%d", int64(v))
	}
	return printer.Sprintf("%.2f", v)
}
