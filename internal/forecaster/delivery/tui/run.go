package tui

import (
	"context"

	"golang-stock-forecast/internal/forecaster/service"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the program and blocks until the user quits or ctx is done.
// regions must be the same Regions the orchestrator's UI manager drives.
func Run(ctx context.Context, orch service.Orchestrator, regions *Regions, chartView func() string, defaultDays int) error {
	model := NewModel(ctx, orch, regions, chartView, defaultDays)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	regions.SetNotify(func() { p.Send(refreshMsg{}) })
	defer regions.SetNotify(nil)

	_, err := p.Run()
	orch.Wait()
	return err
}
