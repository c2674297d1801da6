// Package console renders the forecast form regions as lines of text for the
// one-shot command line client.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"golang-stock-forecast/internal/entity"
	"golang-stock-forecast/internal/forecaster/ui"
	"golang-stock-forecast/pkg/common"

	"github.com/charmbracelet/lipgloss"
)

var (
	busyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b5cf6")).Italic(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6366f1")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")).Width(18)
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981")).Bold(true)
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)
)

// Regions writes region changes to an io.Writer. Only changes a reader cares
// about are written: the busy indicator, errors, results and stock info.
type Regions struct {
	mu  sync.Mutex
	out io.Writer

	busy          bool
	submitEnabled bool
	errorMessage  string
	summary       *ui.Summary
	info          *entity.StockInfo
}

// NewRegions creates console regions writing to out.
func NewRegions(out io.Writer) *Regions {
	return &Regions{out: out}
}

func (r *Regions) SetSubmitEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submitEnabled = enabled
}

func (r *Regions) SetBusy(busy bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if busy && !r.busy {
		r.println(busyStyle.Render("Generating prediction..."))
	}
	r.busy = busy
}

func (r *Regions) ShowError(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errorMessage = message
	r.println(errorStyle.Render("Error: " + message))
}

func (r *Regions) HideError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errorMessage = ""
}

func (r *Regions) ShowResults(summary ui.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summary = &summary

	change := negativeStyle.Render(summary.Change)
	if summary.Positive {
		change = positiveStyle.Render(summary.Change)
	}
	r.println(titleStyle.Render(fmt.Sprintf("%s prediction", summary.Ticker)))
	r.println(row("Current price", summary.CurrentPrice))
	r.println(row(fmt.Sprintf("Predicted (%dd)", summary.Days), summary.PredictedPrice))
	r.println(row("Change", change))
	if !summary.GeneratedAt.IsZero() {
		r.println(row("Generated", summary.GeneratedAt.Format(common.DateLayout+" 15:04:05")))
	}
}

func (r *Regions) HideResults() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summary = nil
}

func (r *Regions) ShowInfo(info entity.StockInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.info = &info

	r.println(titleStyle.Render(infoTitle(info)))
	for _, kv := range [][2]string{
		{"Sector", info.Sector},
		{"Industry", info.Industry},
		{"Market cap", info.MarketCap},
	} {
		if kv[1] != "" {
			r.println(row(kv[0], kv[1]))
		}
	}
	if info.Description != "" {
		r.println(info.Description)
	}
}

func (r *Regions) HideInfo() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.info = nil
}

// PrintChart writes a chart view below the results.
func (r *Regions) PrintChart(view string) {
	if strings.TrimSpace(view) == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.println(view)
}

// ErrorMessage returns the message currently in the error banner.
func (r *Regions) ErrorMessage() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errorMessage
}

// ResultsVisible reports whether the results panel is shown.
func (r *Regions) ResultsVisible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.summary != nil
}

func (r *Regions) println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

func row(label, value string) string {
	return labelStyle.Render(label) + value
}

func infoTitle(info entity.StockInfo) string {
	if info.Name == "" {
		return info.Ticker
	}
	if info.Ticker == "" {
		return info.Name
	}
	return fmt.Sprintf("%s (%s)", info.Name, info.Ticker)
}
