// Package ui owns the request lifecycle state of the forecast form and
// drives the display regions from it.
//
// The manager serializes all region updates under one mutex. Error banners
// dismiss themselves after a fixed delay; each banner carries a generation
// number so that a timer scheduled for an older banner never hides a newer one.
package ui

import (
	"sync"
	"time"

	"golang-stock-forecast/internal/entity"
	"golang-stock-forecast/pkg/logger"
)

// State is the lifecycle state of the form.
type State int

const (
	Idle State = iota
	Loading
	Success
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time copy of the manager state.
type Snapshot struct {
	State          State
	Busy           bool
	ErrorMessage   string
	ErrorDeadline  time.Time
	ResultsVisible bool
	InfoVisible    bool
	Cycle          uint64
}

// Manager is the UI state machine.
type Manager struct {
	mu           sync.Mutex
	regions      Regions
	clock        Clock
	dismissAfter time.Duration
	log          *logger.Logger

	phase          State
	busy           bool
	errMessage     string
	errDeadline    time.Time
	errGeneration  uint64
	errTimer       Timer
	resultsVisible bool
	infoVisible    bool
	cycle          uint64
}

// NewManager creates a manager in the Idle state with submission enabled.
func NewManager(regions Regions, clock Clock, dismissAfter time.Duration, log *logger.Logger) *Manager {
	if clock == nil {
		clock = SystemClock{}
	}
	m := &Manager{
		regions:      regions,
		clock:        clock,
		dismissAfter: dismissAfter,
		log:          log,
		phase:        Idle,
	}
	regions.SetSubmitEnabled(true)
	regions.SetBusy(false)
	return m
}

// BeginCycle hides any leftover error, results and stock info from a previous
// request and returns the id of the new request cycle.
func (m *Manager) BeginCycle() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hideErrorLocked()
	m.regions.HideResults()
	m.resultsVisible = false
	m.regions.HideInfo()
	m.infoVisible = false
	m.phase = Idle
	m.cycle++
	return m.cycle
}

// EnterLoading disables submission and shows the busy indicator. Calling it
// while already loading has no effect.
func (m *Manager) EnterLoading() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.busy {
		return
	}
	m.busy = true
	m.regions.SetSubmitEnabled(false)
	m.regions.SetBusy(true)
}

// EnterError shows message in the error banner and schedules it to hide after
// the dismiss delay. A newer error replaces both the message and the timer.
func (m *Manager) EnterError(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.errTimer != nil {
		m.errTimer.Stop()
		m.errTimer = nil
	}
	m.errGeneration++
	generation := m.errGeneration

	if m.resultsVisible {
		m.regions.HideResults()
		m.resultsVisible = false
	}

	m.errMessage = message
	m.errDeadline = m.clock.Now().Add(m.dismissAfter)
	m.phase = Error
	m.regions.ShowError(message)
	m.errTimer = m.clock.AfterFunc(m.dismissAfter, func() {
		m.expireError(generation)
	})
}

func (m *Manager) expireError(generation uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if generation != m.errGeneration || m.phase != Error {
		return
	}
	m.hideErrorLocked()
	m.phase = Idle
	if m.log != nil {
		m.log.Debug("Error banner dismissed", logger.Field("generation", generation))
	}
}

// EnterSuccess hides a pre-existing error and reveals the results panel.
// The stock-info panel is left as it is.
func (m *Manager) EnterSuccess(result entity.PredictionResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hideErrorLocked()
	m.regions.ShowResults(Summarize(result))
	m.resultsVisible = true
	m.phase = Success
}

// Reset re-enables submission and hides the busy indicator.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.busy = false
	m.regions.SetSubmitEnabled(true)
	m.regions.SetBusy(false)
}

// ShowInfo reveals the stock-info panel if cycle is still the current request
// cycle. It reports whether the info was shown.
func (m *Manager) ShowInfo(cycle uint64, info entity.StockInfo) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cycle != m.cycle {
		return false
	}
	m.regions.ShowInfo(info)
	m.infoVisible = true
	return true
}

// State returns the current lifecycle state. Loading takes precedence while
// a request is in flight.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.busy {
		return Loading
	}
	return m.phase
}

// Snapshot returns a copy of the manager state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := m.phase
	if m.busy {
		state = Loading
	}
	return Snapshot{
		State:          state,
		Busy:           m.busy,
		ErrorMessage:   m.errMessage,
		ErrorDeadline:  m.errDeadline,
		ResultsVisible: m.resultsVisible,
		InfoVisible:    m.infoVisible,
		Cycle:          m.cycle,
	}
}

// Close cancels a pending error dismissal.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.errTimer != nil {
		m.errTimer.Stop()
		m.errTimer = nil
	}
}

func (m *Manager) hideErrorLocked() {
	if m.errTimer != nil {
		m.errTimer.Stop()
		m.errTimer = nil
	}
	if m.errMessage == "" {
		return
	}
	m.errGeneration++
	m.errMessage = ""
	m.errDeadline = time.Time{}
	m.regions.HideError()
}
