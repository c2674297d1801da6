package chart

import (
	"errors"
	"fmt"
	"sync"

	"golang-stock-forecast/internal/forecaster/series"
)

// Instance is one live chart on a surface.
type Instance interface {
	Destroy()
}

// Viewer is implemented by instances that can be shown as text.
type Viewer interface {
	View() string
}

// Surface creates chart instances from a config.
type Surface interface {
	NewChart(cfg Config) (Instance, error)
}

// Slot owns at most one live Instance.
type Slot struct {
	mu      sync.Mutex
	current Instance
}

// Replace destroys the current instance, if any, and then installs the one
// returned by create. If create fails the slot is left empty.
func (s *Slot) Replace(create func() (Instance, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.current.Destroy()
		s.current = nil
	}

	next, err := create()
	if err != nil {
		return err
	}
	s.current = next
	return nil
}

// Current returns the live instance, or nil.
func (s *Slot) Current() Instance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Clear destroys the live instance.
func (s *Slot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.current.Destroy()
		s.current = nil
	}
}

// Renderer draws composed series onto a surface, keeping exactly one live chart.
type Renderer struct {
	surface Surface
	slot    Slot
}

// NewRenderer creates a renderer for the given surface.
func NewRenderer(surface Surface) *Renderer {
	return &Renderer{surface: surface}
}

// Render replaces the current chart with one built from c.
func (r *Renderer) Render(title string, c series.Composed) error {
	if r.surface == nil {
		return errors.New("chart: no surface configured")
	}
	cfg := BuildConfig(title, c)
	if err := r.slot.Replace(func() (Instance, error) { return r.surface.NewChart(cfg) }); err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	return nil
}

// Current returns the live chart instance, or nil.
func (r *Renderer) Current() Instance {
	return r.slot.Current()
}

// View returns the text view of the live chart, or "" when it has none.
func (r *Renderer) View() string {
	if v, ok := r.slot.Current().(Viewer); ok {
		return v.View()
	}
	return ""
}

// Close destroys the live chart.
func (r *Renderer) Close() {
	r.slot.Clear()
}

// MultiSurface draws the same config on several surfaces.
type MultiSurface []Surface

type multiInstance []Instance

func (m multiInstance) Destroy() {
	for _, inst := range m {
		inst.Destroy()
	}
}

func (m multiInstance) View() string {
	for _, inst := range m {
		if v, ok := inst.(Viewer); ok {
			return v.View()
		}
	}
	return ""
}

// NewChart implements Surface. A failure on any surface destroys the
// instances already created.
func (ms MultiSurface) NewChart(cfg Config) (Instance, error) {
	created := make(multiInstance, 0, len(ms))
	for _, s := range ms {
		inst, err := s.NewChart(cfg)
		if err != nil {
			created.Destroy()
			return nil, err
		}
		created = append(created, inst)
	}
	return created, nil
}
