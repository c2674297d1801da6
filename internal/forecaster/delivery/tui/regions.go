package tui

import (
	"sync"

	"golang-stock-forecast/internal/entity"
	"golang-stock-forecast/internal/forecaster/ui"
)

// Regions holds the visible state of the form between renders. Every change
// calls the notify hook so the program redraws.
type Regions struct {
	mu     sync.Mutex
	notify func()

	submitEnabled bool
	busy          bool
	errorMessage  string
	errorVisible  bool
	summary       ui.Summary
	resultsShown  bool
	info          entity.StockInfo
	infoShown     bool
	scrollToTop   bool
}

// NewRegions creates regions with the submit control enabled.
func NewRegions() *Regions {
	return &Regions{submitEnabled: true}
}

// SetNotify installs the redraw hook. It is called outside the lock.
func (r *Regions) SetNotify(notify func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notify = notify
}

func (r *Regions) update(f func()) {
	r.mu.Lock()
	f()
	notify := r.notify
	r.mu.Unlock()

	if notify != nil {
		notify()
	}
}

func (r *Regions) SetSubmitEnabled(enabled bool) {
	r.update(func() { r.submitEnabled = enabled })
}

func (r *Regions) SetBusy(busy bool) {
	r.update(func() { r.busy = busy })
}

func (r *Regions) ShowError(message string) {
	r.update(func() {
		r.errorMessage = message
		r.errorVisible = true
	})
}

func (r *Regions) HideError() {
	r.update(func() { r.errorVisible = false })
}

func (r *Regions) ShowResults(summary ui.Summary) {
	r.update(func() {
		r.summary = summary
		r.resultsShown = true
		r.scrollToTop = true
	})
}

func (r *Regions) HideResults() {
	r.update(func() { r.resultsShown = false })
}

func (r *Regions) ShowInfo(info entity.StockInfo) {
	r.update(func() {
		r.info = info
		r.infoShown = true
	})
}

func (r *Regions) HideInfo() {
	r.update(func() { r.infoShown = false })
}

// frame is a consistent copy of the region state used for one render.
type frame struct {
	submitEnabled bool
	busy          bool
	errorMessage  string
	errorVisible  bool
	summary       ui.Summary
	resultsShown  bool
	info          entity.StockInfo
	infoShown     bool
}

// snapshot copies the state.
func (r *Regions) snapshot() frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return frame{
		submitEnabled: r.submitEnabled,
		busy:          r.busy,
		errorMessage:  r.errorMessage,
		errorVisible:  r.errorVisible,
		summary:       r.summary,
		resultsShown:  r.resultsShown,
		info:          r.info,
		infoShown:     r.infoShown,
	}
}

// takeScroll reports and clears a pending request to bring the results into view.
func (r *Regions) takeScroll() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	scroll := r.scrollToTop
	r.scrollToTop = false
	return scroll
}

// SubmitEnabled reports whether the submit control accepts input.
func (r *Regions) SubmitEnabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.submitEnabled
}
