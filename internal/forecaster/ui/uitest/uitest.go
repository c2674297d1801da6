// Package uitest provides in-memory Regions and Clock implementations for tests.
package uitest

import (
	"sort"
	"sync"
	"time"

	"golang-stock-forecast/internal/entity"
	"golang-stock-forecast/internal/forecaster/ui"
)

// Regions records the visible state of every display region.
type Regions struct {
	mu sync.Mutex

	SubmitEnabled  bool
	Busy           bool
	ErrorVisible   bool
	ErrorMessage   string
	ResultsVisible bool
	Summary        ui.Summary
	InfoVisible    bool
	Info           entity.StockInfo

	ScrollCount int
	Calls       []string
}

func (r *Regions) record(call string) {
	r.Calls = append(r.Calls, call)
}

func (r *Regions) SetSubmitEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.SubmitEnabled = enabled
	if enabled {
		r.record("enable")
	} else {
		r.record("disable")
	}
}

func (r *Regions) SetBusy(busy bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Busy = busy
	if busy {
		r.record("busy")
	} else {
		r.record("idle")
	}
}

func (r *Regions) ShowError(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ErrorVisible = true
	r.ErrorMessage = message
	r.record("show-error")
}

func (r *Regions) HideError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ErrorVisible = false
	r.record("hide-error")
}

func (r *Regions) ShowResults(summary ui.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ResultsVisible = true
	r.Summary = summary
	r.ScrollCount++
	r.record("show-results")
}

func (r *Regions) HideResults() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ResultsVisible = false
	r.record("hide-results")
}

func (r *Regions) ShowInfo(info entity.StockInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.InfoVisible = true
	r.Info = info
	r.record("show-info")
}

func (r *Regions) HideInfo() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.InfoVisible = false
	r.record("hide-info")
}

// View is a copy of the recorded region state.
type View struct {
	SubmitEnabled  bool
	Busy           bool
	ErrorVisible   bool
	ErrorMessage   string
	ResultsVisible bool
	Summary        ui.Summary
	InfoVisible    bool
	Info           entity.StockInfo
}

// Snapshot returns a copy of the region state.
func (r *Regions) Snapshot() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return View{
		SubmitEnabled:  r.SubmitEnabled,
		Busy:           r.Busy,
		ErrorVisible:   r.ErrorVisible,
		ErrorMessage:   r.ErrorMessage,
		ResultsVisible: r.ResultsVisible,
		Summary:        r.Summary,
		InfoVisible:    r.InfoVisible,
		Info:           r.Info,
	}
}

// Count returns how many times call was recorded.
func (r *Regions) Count(call string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.Calls {
		if c == call {
			n++
		}
	}
	return n
}

// Clock is a manual clock. Timers fire only when Advance moves past their deadline.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*timer
}

type timer struct {
	clock    *Clock
	deadline time.Time
	f        func()
	stopped  bool
	fired    bool
}

func (t *timer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// NewClock returns a clock starting at start.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) AfterFunc(d time.Duration, f func()) ui.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &timer{clock: c, deadline: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward and runs due timers in deadline order.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*timer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.deadline.After(c.now) {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].deadline.Before(due[j].deadline) })
	for _, t := range due {
		t.f()
	}
}

// FireStale runs every timer, including stopped ones, as a late-firing
// timer would. Used to check that stale callbacks are ignored.
func (c *Clock) FireStale() {
	c.mu.Lock()
	all := append([]*timer(nil), c.timers...)
	c.mu.Unlock()
	for _, t := range all {
		t.f()
	}
}

// Pending returns the number of timers that are neither stopped nor fired.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}
