// Package tui is the interactive terminal front end of the forecast client.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang-stock-forecast/internal/forecaster/service"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tickerCharLimit = 10
	daysCharLimit   = 2
	formHeight      = 8
)

type field int

const (
	tickerField field = iota
	daysField
)

// refreshMsg asks the program to redraw after a region changed.
type refreshMsg struct{}

// submitDoneMsg carries the outcome of one submission.
type submitDoneMsg struct {
	err error
}

// Model is the bubbletea model of the forecast form.
type Model struct {
	ctx       context.Context
	orch      service.Orchestrator
	regions   *Regions
	chartView func() string

	ticker   textinput.Model
	days     textinput.Model
	focus    field
	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	width  int
	height int
}

// NewModel creates the form. chartView returns the current chart drawing.
func NewModel(ctx context.Context, orch service.Orchestrator, regions *Regions, chartView func() string, defaultDays int) Model {
	ticker := textinput.New()
	ticker.Placeholder = "AAPL"
	ticker.CharLimit = tickerCharLimit
	ticker.Width = tickerCharLimit + 2
	ticker.Prompt = ""
	ticker.Focus()

	days := textinput.New()
	days.Placeholder = strconv.Itoa(defaultDays)
	days.CharLimit = daysCharLimit
	days.Width = daysCharLimit + 2
	days.Prompt = ""
	days.SetValue(strconv.Itoa(defaultDays))

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(busyStyle))

	if chartView == nil {
		chartView = func() string { return "" }
	}

	return Model{
		ctx:       ctx,
		orch:      orch,
		regions:   regions,
		chartView: chartView,
		ticker:    ticker,
		days:      days,
		focus:     tickerField,
		spinner:   sp,
		viewport:  viewport.New(80, 20),
		help:      help.New(),
		keys:      defaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m, m.submit()
		case key.Matches(msg, m.keys.NextField):
			return m, m.switchField()
		case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown):
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m.updateInput(msg)

	case refreshMsg, submitDoneMsg:
		m.syncContent()
		return m, nil

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-formHeight, 1)
		m.syncContent()
		return m, nil

	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case tickerField:
		m.ticker, cmd = m.ticker.Update(msg)
		m.ticker.SetValue(service.NormalizeTickerInput(m.ticker.Value()))
	case daysField:
		if msg.Type == tea.KeyRunes {
			msg.Runes = digitsOnly(msg.Runes)
			if len(msg.Runes) == 0 {
				return m, nil
			}
		}
		m.days, cmd = m.days.Update(msg)
	}
	return m, cmd
}

func (m *Model) switchField() tea.Cmd {
	if m.focus == tickerField {
		m.focus = daysField
		m.ticker.Blur()
		return m.days.Focus()
	}
	m.focus = tickerField
	m.days.Blur()
	return m.ticker.Focus()
}

// submit is a no-op while the submit control is disabled.
func (m Model) submit() tea.Cmd {
	if !m.regions.SubmitEnabled() {
		return nil
	}
	ctx, orch := m.ctx, m.orch
	ticker, days := m.ticker.Value(), m.days.Value()
	return func() tea.Msg {
		return submitDoneMsg{err: orch.Submit(ctx, ticker, days)}
	}
}

func (m *Model) syncContent() {
	f := m.regions.snapshot()
	m.viewport.SetContent(renderPanels(f, m.chartView, m.viewport.Width))
	if m.regions.takeScroll() {
		m.viewport.GotoTop()
	}
}

func (m Model) View() string {
	f := m.regions.snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Stock Price Forecast"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Ticker") + inputStyle(m.focus == tickerField).Render(m.ticker.View()))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Days") + inputStyle(m.focus == daysField).Render(m.days.View()))
	b.WriteString("\n\n")
	b.WriteString(submitLabel(f, m.spinner.View()))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func submitLabel(f frame, spin string) string {
	switch {
	case f.busy:
		return busyStyle.Render(spin + " Generating prediction...")
	case f.submitEnabled:
		return buttonStyle.Render("Predict")
	default:
		return disabledButtonStyle.Render("Predict")
	}
}

func renderPanels(f frame, chartView func() string, width int) string {
	var sections []string
	if f.errorVisible {
		sections = append(sections, errorStyle.Render(f.errorMessage))
	}
	if f.infoShown {
		sections = append(sections, renderInfo(f))
	}
	if f.resultsShown {
		sections = append(sections, renderSummary(f))
		if view := chartView(); view != "" {
			sections = append(sections, view)
		}
	}
	return lipgloss.NewStyle().MaxWidth(max(width, 1)).Render(strings.Join(sections, "\n\n"))
}

func renderInfo(f frame) string {
	info := f.info
	lines := []string{panelTitleStyle.Render(strings.TrimSpace(info.Name + " " + info.Ticker))}
	if info.Sector != "" {
		lines = append(lines, labelStyle.Render("Sector")+info.Sector)
	}
	if info.Industry != "" {
		lines = append(lines, labelStyle.Render("Industry")+info.Industry)
	}
	if info.MarketCap != "" {
		lines = append(lines, labelStyle.Render("Market cap")+info.MarketCap)
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func renderSummary(f frame) string {
	s := f.summary
	change := negativeStyle.Render(s.Change)
	if s.Positive {
		change = positiveStyle.Render(s.Change)
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render(labelStyle.Render("Current")+"\n"+s.CurrentPrice),
		cardStyle.Render(labelStyle.Render(fmt.Sprintf("Predicted (%dd)", s.Days))+"\n"+s.PredictedPrice),
		cardStyle.Render(labelStyle.Render("Change")+"\n"+change),
	)
	return panelTitleStyle.Render(s.Ticker+" forecast") + "\n" + cards
}

func digitsOnly(runes []rune) []rune {
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return out
}
