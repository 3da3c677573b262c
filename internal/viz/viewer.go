package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/mycodecay/internal/decay"
	"github.com/san-kum/mycodecay/internal/plot"
	"github.com/san-kum/mycodecay/internal/report"
)

const (
	minGraphWidth  = 20
	minGraphHeight = 5
)

// Viewer is a Bubble Tea model that shows the decay curve of a finished
// run and lets the user walk a day cursor along it.
type Viewer struct {
	run       *decay.Run
	artifacts Artifacts
	theme     Theme
	day       int
	width     int
	height    int
}

func NewViewer(run *decay.Run, a Artifacts, theme Theme) Viewer {
	return Viewer{
		run:       run,
		artifacts: a,
		theme:     theme,
		width:     80,
		height:    24,
	}
}

// Day returns the day under the cursor.
func (v Viewer) Day() int { return v.day }

func (v Viewer) Theme() Theme { return v.theme }

func (v Viewer) Init() tea.Cmd { return nil }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
	}
	return v, nil
}

func (v Viewer) handleKey(msg tea.KeyMsg) (Viewer, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return v, tea.Interrupt
	case "q", "esc":
		return v, tea.Quit
	case "left", "h":
		v.moveTo(v.day - 1)
	case "right", "l":
		v.moveTo(v.day + 1)
	case "pgup":
		v.moveTo(v.day - report.Stride)
	case "pgdown":
		v.moveTo(v.day + report.Stride)
	case "home":
		v.moveTo(0)
	case "end":
		v.moveTo(v.run.Days)
	case "t":
		v.theme = nextTheme(v.theme)
	}
	return v, nil
}

func (v *Viewer) moveTo(day int) {
	if day < 0 {
		day = 0
	}
	if day > v.run.Days {
		day = v.run.Days
	}
	v.day = day
}

func (v Viewer) View() string {
	s := newStyles(v.theme)

	// Leave room for axis labels, the cursor line and the summary panel.
	graphWidth := max(v.width-12, minGraphWidth)
	graphHeight := max(v.height-16, minGraphHeight)

	var b strings.Builder
	b.WriteString(s.title.Render(plot.Title(v.run)))
	b.WriteString("\n\n")
	b.WriteString(plot.Preview(v.run, graphWidth, graphHeight))
	b.WriteString("\n\n")
	b.WriteString(s.cursor.Render(fmt.Sprintf("Day %d: %.2f fibers remaining (%.2f%% reduced)",
		v.day, v.run.Series[v.day], v.run.ReductionAt(v.day))))
	b.WriteString("\n")
	b.WriteString(Summary(v.run, v.artifacts, v.theme))
	b.WriteString("\n")
	b.WriteString(s.hint.Render("←/→ day · PgUp/PgDn 30 days · Home/End · t theme · q quit"))
	b.WriteString("\n")
	return b.String()
}
