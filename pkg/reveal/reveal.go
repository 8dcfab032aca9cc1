// Package reveal animates the date label on and off the screen.
//
// A reveal cycle slides the label in, holds it, and slides it back out.
// Only one cycle runs at a time: triggers that arrive while a cycle is in
// flight are dropped, so the label never has two timelines competing for
// its frame.
package reveal

import (
	"fmt"
	"time"

	"github.com/go-drift/daydial/pkg/animation"
	"github.com/go-drift/daydial/pkg/dial"
	"github.com/go-drift/daydial/pkg/errors"
	"github.com/go-drift/daydial/pkg/graphics"
)

// Phase is the animator's position in the reveal cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSlidingIn
	PhaseHolding
	PhaseSlidingOut
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSlidingIn:
		return "sliding-in"
	case PhaseHolding:
		return "holding"
	case PhaseSlidingOut:
		return "sliding-out"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Timing holds the durations of one reveal cycle.
type Timing struct {
	SlideIn  time.Duration
	Hold     time.Duration
	SlideOut time.Duration
}

// DefaultTiming keeps a short date legible for four seconds.
var DefaultTiming = Timing{
	SlideIn:  400 * time.Millisecond,
	Hold:     4 * time.Second,
	SlideOut: 200 * time.Millisecond,
}

// Validate rejects negative durations.
func (t Timing) Validate() error {
	if t.SlideIn < 0 || t.Hold < 0 || t.SlideOut < 0 {
		return errors.Errorf("reveal.Timing.Validate", errors.KindConfig,
			"negative duration in %v/%v/%v", t.SlideIn, t.Hold, t.SlideOut)
	}
	return nil
}

// Cycle returns the total length of a reveal cycle.
func (t Timing) Cycle() time.Duration {
	return t.SlideIn + t.Hold + t.SlideOut
}

// Animator runs reveal cycles for one label.
type Animator struct {
	sched   animation.Scheduler
	geom    dial.RevealGeometry
	timing  Timing
	apply   func(graphics.Rect)
	onPhase func(Phase)

	phase   Phase
	current *animation.Handle
	closed  bool
}

// New returns an idle animator. apply receives every label frame the
// animator produces.
func New(sched animation.Scheduler, geom dial.RevealGeometry, timing Timing, apply func(graphics.Rect)) *Animator {
	return &Animator{
		sched:  sched,
		geom:   geom,
		timing: timing,
		apply:  apply,
	}
}

// OnPhase registers fn to be called after every phase change.
func (a *Animator) OnPhase(fn func(Phase)) {
	a.onPhase = fn
}

// Phase returns the current phase.
func (a *Animator) Phase() Phase {
	return a.phase
}

// Busy reports whether a reveal cycle is in flight.
func (a *Animator) Busy() bool {
	return a.phase != PhaseIdle
}

// Timing returns the animator's durations.
func (a *Animator) Timing() Timing {
	return a.timing
}

// Trigger starts a reveal cycle if none is in flight and reports whether
// it did. Triggers while busy are dropped, not queued.
func (a *Animator) Trigger() bool {
	if a.closed || a.phase != PhaseIdle {
		return false
	}
	a.setPhase(PhaseSlidingIn)
	a.current = a.sched.Schedule(animation.Timeline{
		From:       a.geom.Offscreen,
		To:         a.geom.Onscreen,
		Duration:   a.timing.SlideIn,
		Curve:      animation.EaseInOut,
		OnFrame:    a.apply,
		OnComplete: a.slideInDone,
	})
	return true
}

func (a *Animator) slideInDone() {
	a.apply(a.geom.Onscreen)
	a.setPhase(PhaseHolding)
	// The hold is the slide-out's delay; its start marks the end of the hold.
	a.current = a.sched.Schedule(animation.Timeline{
		From:       a.geom.Onscreen,
		To:         a.geom.Offscreen,
		Duration:   a.timing.SlideOut,
		Delay:      a.timing.Hold,
		Curve:      animation.EaseIn,
		OnFrame:    a.apply,
		OnStart:    func() { a.setPhase(PhaseSlidingOut) },
		OnComplete: a.slideOutDone,
	})
}

func (a *Animator) slideOutDone() {
	a.apply(a.geom.Offscreen)
	a.current = nil
	a.setPhase(PhaseIdle)
}

// Close cancels any in-flight timeline and disables further triggers.
// The label is left wherever the cancelled timeline put it.
func (a *Animator) Close() {
	a.closed = true
	if a.current != nil {
		a.current.Cancel()
		a.current = nil
	}
}

func (a *Animator) setPhase(p Phase) {
	if a.phase == p {
		return
	}
	a.phase = p
	if a.onPhase != nil {
		a.onPhase(p)
	}
}
