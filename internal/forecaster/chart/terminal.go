package chart

import (
	"math"
	"strings"
	"sync"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// TerminalSurface draws charts with braille lines for a terminal.
type TerminalSurface struct {
	Width  int
	Height int
}

// TerminalChart is a rendered terminal chart.
type TerminalChart struct {
	mu        sync.Mutex
	view      string
	destroyed bool
}

// View returns the rendered chart, or "" once destroyed.
func (t *TerminalChart) View() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.view
}

// Destroy releases the rendered view.
func (t *TerminalChart) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.view = ""
	t.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (t *TerminalChart) Destroyed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.destroyed
}

var (
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#334155"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
)

// NewChart implements Surface.
func (s TerminalSurface) NewChart(cfg Config) (Instance, error) {
	var b strings.Builder
	if cfg.Options.LegendDisplay {
		b.WriteString(legend(cfg))
		b.WriteString("\n")
	}

	lo, hi, ok := cfg.ValueRange()
	if !ok || len(cfg.Labels) == 0 {
		b.WriteString(labelStyle.Render("no data"))
		return &TerminalChart{view: b.String()}, nil
	}

	if line := seamLine(cfg); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}

	minY, _ := lo.Float64()
	maxY, _ := hi.Float64()
	margin := (maxY - minY) * 0.05
	if margin == 0 {
		margin = 1
	}
	maxX := float64(len(cfg.Labels) - 1)
	if maxX < 1 {
		maxX = 1
	}

	labels := cfg.Labels
	xLabelFormatter := func(index int, value float64) string {
		idx := int(math.Round(value))
		if idx < 0 || idx >= len(labels) {
			return ""
		}
		return labels[idx]
	}
	yLabelFormatter := func(index int, value float64) string {
		return cfg.Options.FormatValue(decimal.NewFromFloat(value))
	}

	xSteps := cfg.Options.MaxXTicks
	if xSteps <= 0 {
		xSteps = 8
	}

	lc := linechart.New(s.Width, s.Height,
		0, maxX,
		minY-margin, maxY+margin,
		linechart.WithXYSteps(xSteps, 4),
		linechart.WithXLabelFormatter(xLabelFormatter),
		linechart.WithYLabelFormatter(yLabelFormatter),
		linechart.WithStyles(axisStyle, labelStyle, lipgloss.NewStyle()),
	)

	for _, ds := range cfg.Datasets {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(ds.Color.Hex()))
		drawDataset(&lc, ds, style)
	}
	lc.DrawXYAxisAndLabel()

	b.WriteString(lc.View())
	return &TerminalChart{view: b.String()}, nil
}

// drawDataset connects consecutive valid points. Dashed datasets skip every
// other segment.
func drawDataset(lc *linechart.Model, ds Dataset, style lipgloss.Style) {
	prev := -1
	segment := 0
	for i, v := range ds.Values {
		if !v.Valid {
			prev = -1
			continue
		}
		y, _ := v.Decimal.Float64()
		p2 := canvas.Float64Point{X: float64(i), Y: y}
		if prev < 0 {
			lc.DrawBrailleLineWithStyle(p2, p2, style)
			prev = i
			continue
		}
		py, _ := ds.Values[prev].Decimal.Float64()
		p1 := canvas.Float64Point{X: float64(prev), Y: py}
		if !ds.Dashed() || segment%2 == 0 {
			lc.DrawBrailleLineWithStyle(p1, p2, style)
		}
		segment++
		prev = i
	}
}

// seamLine is the index tooltip at the last observed point, where the
// forecast takes over.
func seamLine(cfg Config) string {
	if cfg.Seam < 0 || cfg.Seam >= len(cfg.Labels) {
		return ""
	}
	values := cfg.TooltipLines(cfg.Seam)
	if len(values) == 0 {
		return ""
	}
	return labelStyle.Render(cfg.Labels[cfg.Seam]+"  ") + strings.Join(values, "   ")
}

func legend(cfg Config) string {
	parts := make([]string, 0, len(cfg.Datasets))
	for _, ds := range cfg.Datasets {
		mark := "━━"
		if ds.Dashed() {
			mark = "╍╍"
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(ds.Color.Hex()))
		parts = append(parts, style.Render(mark)+" "+ds.Label)
	}
	return strings.Join(parts, "   ")
}
