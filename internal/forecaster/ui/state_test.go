package ui_test

import (
	"testing"
	"time"

	"golang-stock-forecast/internal/entity"
	"golang-stock-forecast/internal/forecaster/ui"
	"golang-stock-forecast/internal/forecaster/ui/uitest"
	"golang-stock-forecast/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)

func newManager(t *testing.T) (*ui.Manager, *uitest.Regions, *uitest.Clock) {
	t.Helper()
	regions := &uitest.Regions{}
	clock := uitest.NewClock(epoch)
	m := ui.NewManager(regions, clock, 5*time.Second, logger.NewNop())
	t.Cleanup(m.Close)
	return m, regions, clock
}

func sampleResult() entity.PredictionResult {
	return entity.PredictionResult{
		Ticker:         "AAPL",
		CurrentPrice:   decimal.RequireFromString("150"),
		PredictedPrice: decimal.RequireFromString("145.5"),
		PriceChange:    decimal.RequireFromString("-4.5"),
		PercentChange:  decimal.RequireFromString("-3"),
		Future:         entity.TimeSeries{Dates: []string{"a", "b"}, Prices: []decimal.Decimal{decimal.Zero, decimal.Zero}},
	}
}

func TestNewManager_StartsIdleAndEnabled(t *testing.T) {
	m, regions, _ := newManager(t)

	assert.Equal(t, ui.Idle, m.State())
	view := regions.Snapshot()
	assert.True(t, view.SubmitEnabled)
	assert.False(t, view.Busy)
}

func TestEnterLoading_IsIdempotent(t *testing.T) {
	m, regions, _ := newManager(t)

	m.EnterLoading()
	m.EnterLoading()

	assert.Equal(t, ui.Loading, m.State())
	assert.Equal(t, 1, regions.Count("disable"))
	assert.Equal(t, 1, regions.Count("busy"))
	view := regions.Snapshot()
	assert.False(t, view.SubmitEnabled)
	assert.True(t, view.Busy)
}

func TestLoadingCoincidesWithDisabledSubmit(t *testing.T) {
	m, regions, _ := newManager(t)

	check := func() {
		snap := m.Snapshot()
		view := regions.Snapshot()
		assert.Equal(t, snap.State == ui.Loading, !view.SubmitEnabled)
		assert.Equal(t, snap.Busy, view.Busy)
	}

	check()
	m.BeginCycle()
	check()
	m.EnterLoading()
	check()
	m.EnterError("boom")
	check()
	m.Reset()
	check()
	m.EnterLoading()
	m.EnterSuccess(sampleResult())
	check()
	m.Reset()
	check()
}

func TestReset_RestoresSubmit(t *testing.T) {
	m, regions, _ := newManager(t)
	m.EnterLoading()
	m.Reset()

	view := regions.Snapshot()
	assert.True(t, view.SubmitEnabled)
	assert.False(t, view.Busy)
	assert.Equal(t, ui.Idle, m.State())
}

func TestEnterError_AutoDismissesAfterFiveSeconds(t *testing.T) {
	m, regions, clock := newManager(t)

	m.EnterError("Unknown ticker")
	snap := m.Snapshot()
	assert.Equal(t, ui.Error, snap.State)
	assert.Equal(t, epoch.Add(5*time.Second), snap.ErrorDeadline)
	assert.True(t, regions.Snapshot().ErrorVisible)

	clock.Advance(4999 * time.Millisecond)
	assert.True(t, regions.Snapshot().ErrorVisible)

	clock.Advance(time.Millisecond)
	assert.False(t, regions.Snapshot().ErrorVisible)
	assert.Equal(t, ui.Idle, m.State())
	assert.Empty(t, m.Snapshot().ErrorMessage)
}

func TestEnterError_SecondErrorReplacesFirstAndItsTimer(t *testing.T) {
	m, regions, clock := newManager(t)

	m.EnterError("first")
	clock.Advance(3 * time.Second)
	m.EnterError("second")

	assert.Equal(t, 1, clock.Pending(), "the first timer is cancelled")

	// the first error's deadline passes; the second stays
	clock.Advance(2 * time.Second)
	view := regions.Snapshot()
	assert.True(t, view.ErrorVisible)
	assert.Equal(t, "second", view.ErrorMessage)

	// the second error's own 5s elapse
	clock.Advance(3 * time.Second)
	assert.False(t, regions.Snapshot().ErrorVisible)
}

func TestEnterError_StaleCallbackIgnored(t *testing.T) {
	regions := &uitest.Regions{}
	var callbacks []func()
	clock := &capturingClock{Clock: uitest.NewClock(epoch), captured: &callbacks}
	m := ui.NewManager(regions, clock, 5*time.Second, logger.NewNop())
	defer m.Close()

	m.EnterError("first")
	m.EnterError("second")
	require.Len(t, callbacks, 2)

	callbacks[0]()

	view := regions.Snapshot()
	assert.True(t, view.ErrorVisible)
	assert.Equal(t, "second", view.ErrorMessage)
	assert.Equal(t, ui.Error, m.State())

	callbacks[1]()
	assert.False(t, regions.Snapshot().ErrorVisible)
}

// capturingClock hands out timers that never fire on their own and records
// their callbacks so a test can invoke them in any order.
type capturingClock struct {
	*uitest.Clock
	captured *[]func()
}

type inertTimer struct{}

func (inertTimer) Stop() bool { return true }

func (c *capturingClock) AfterFunc(_ time.Duration, f func()) ui.Timer {
	*c.captured = append(*c.captured, f)
	return inertTimer{}
}

func TestEnterSuccess_HidesExistingErrorAndShowsResults(t *testing.T) {
	m, regions, clock := newManager(t)

	m.EnterError("old")
	m.EnterSuccess(sampleResult())

	view := regions.Snapshot()
	assert.False(t, view.ErrorVisible)
	assert.True(t, view.ResultsVisible)
	assert.Equal(t, 1, regions.ScrollCount)
	assert.Equal(t, ui.Success, m.State())
	assert.Equal(t, 0, clock.Pending())

	assert.Equal(t, "$150.00", view.Summary.CurrentPrice)
	assert.Equal(t, "$145.50", view.Summary.PredictedPrice)
	assert.Equal(t, "$4.50 (-3.00%)", view.Summary.Change)
	assert.False(t, view.Summary.Positive)
	assert.Equal(t, 2, view.Summary.Days)
}

func TestEnterSuccess_LeavesInfoPanelAlone(t *testing.T) {
	m, regions, _ := newManager(t)

	cycle := m.BeginCycle()
	require.True(t, m.ShowInfo(cycle, entity.StockInfo{Name: "Apple Inc."}))
	m.EnterSuccess(sampleResult())

	assert.True(t, regions.Snapshot().InfoVisible)
}

func TestErrorAndResultsNeverBothVisible(t *testing.T) {
	m, regions, _ := newManager(t)

	m.EnterSuccess(sampleResult())
	m.EnterError("Please enter a stock ticker symbol")

	view := regions.Snapshot()
	assert.True(t, view.ErrorVisible)
	assert.False(t, view.ResultsVisible)

	m.EnterSuccess(sampleResult())
	view = regions.Snapshot()
	assert.False(t, view.ErrorVisible)
	assert.True(t, view.ResultsVisible)
}

func TestBeginCycle_ClearsPreviousOutcome(t *testing.T) {
	m, regions, clock := newManager(t)

	first := m.BeginCycle()
	m.ShowInfo(first, entity.StockInfo{Name: "Apple Inc."})
	m.EnterSuccess(sampleResult())
	m.EnterError("late")

	second := m.BeginCycle()
	assert.Greater(t, second, first)

	view := regions.Snapshot()
	assert.False(t, view.ErrorVisible)
	assert.False(t, view.ResultsVisible)
	assert.False(t, view.InfoVisible)
	assert.Equal(t, ui.Idle, m.State())
	assert.Equal(t, 0, clock.Pending())
}

func TestShowInfo_DropsStaleCycle(t *testing.T) {
	m, regions, _ := newManager(t)

	stale := m.BeginCycle()
	m.BeginCycle()

	assert.False(t, m.ShowInfo(stale, entity.StockInfo{Name: "Old Co."}))
	assert.False(t, regions.Snapshot().InfoVisible)
}

func TestSummarize_PositiveChange(t *testing.T) {
	s := ui.Summarize(entity.PredictionResult{
		Ticker:         "MSFT",
		CurrentPrice:   decimal.RequireFromString("1000"),
		PredictedPrice: decimal.RequireFromString("1025.5"),
		PriceChange:    decimal.RequireFromString("25.5"),
		PercentChange:  decimal.RequireFromString("2.55"),
		PredictionDays: 30,
	})

	assert.Equal(t, "$1,000.00", s.CurrentPrice)
	assert.Equal(t, "$1,025.50", s.PredictedPrice)
	assert.Equal(t, "$25.50 (+2.55%)", s.Change)
	assert.True(t, s.Positive)
	assert.Equal(t, 30, s.Days)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", ui.Idle.String())
	assert.Equal(t, "loading", ui.Loading.String())
	assert.Equal(t, "success", ui.Success.String())
	assert.Equal(t, "error", ui.Error.String())
}
