// Package tui hosts the dial in a terminal. It delivers periodic ticks,
// turns key presses into reveal triggers and pumps animation frames while
// a reveal runs.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/daydial/pkg/display"
	"github.com/go-drift/daydial/pkg/render"
)

// Options configures Run.
type Options struct {
	// Speed fast-forwards the dial clock. Values <= 0 mean real time.
	Speed float64
	// Now overrides the wall clock, mainly for tests.
	Now func() time.Time
}

// Run launches the watch view for state, which must draw into raster.
// It blocks until the user quits.
func Run(state *display.State, raster *render.Raster, opts Options) error {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	speed := opts.Speed
	if speed <= 0 {
		speed = 1
	}
	m := newModel(state, raster, newSpeedClock(speed, now), speed)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}
