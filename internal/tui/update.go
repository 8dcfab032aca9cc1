package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/daydial/pkg/animation"
	"github.com/go-drift/daydial/pkg/errors"
	"github.com/go-drift/daydial/pkg/reveal"
)

// Message types for the Bubbletea update loop.
type tickMsg time.Time
type frameMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Init ticks the dial once and starts the tick loop.
func (m model) Init() tea.Cmd {
	return m.tick()
}

// tick re-projects the dial and schedules the next tick on the following
// boundary.
func (m model) tick() tea.Cmd {
	now := m.clock.Now()
	m.state.Tick(now)
	return tickCmd(m.tickDelay(now))
}

// Update handles all Bubbletea update logic for the watch view.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		return m, m.tick()
	case frameMsg:
		return m.handleFrame()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		m.state.Close()
		return m, tea.Quit
	case " ", "enter", "t":
		if !m.state.Trigger() {
			m.dropped++
			return m, nil
		}
		m.reveals++
		if m.animating {
			return m, nil
		}
		m.animating = true
		return m, frameCmd()
	}
	return m, nil
}

// handleFrame steps timelines and keeps the frame loop alive until the
// reveal returns to idle. A panicking timeline stops the loop.
func (m model) handleFrame() (next tea.Model, cmd tea.Cmd) {
	defer errors.RecoverWithCallback("tui.frame", func(any) {
		m.animating = false
		m.stalled = true
		next, cmd = m, nil
	})
	animation.StepTickers()
	if m.state.Phase() == reveal.PhaseIdle && !animation.HasActiveTickers() {
		m.animating = false
		return m, nil
	}
	return m, frameCmd()
}
