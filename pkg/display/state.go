// Package display wires the dial's projector, date label and reveal
// animator to a render tree.
//
// A host owns one [State] per screen. It forwards its periodic tick and its
// discrete trigger (a tap, a key press) to [State.Tick] and [State.Trigger]
// on its event thread, and steps animation tickers once per frame.
package display

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-drift/daydial/pkg/animation"
	"github.com/go-drift/daydial/pkg/dial"
	"github.com/go-drift/daydial/pkg/errors"
	"github.com/go-drift/daydial/pkg/graphics"
	"github.com/go-drift/daydial/pkg/render"
	"github.com/go-drift/daydial/pkg/reveal"
)

// TickUnit is how often the host delivers ticks.
type TickUnit int

const (
	TickMinute TickUnit = iota
	TickSecond
)

// Interval returns the tick period.
func (u TickUnit) Interval() time.Duration {
	if u == TickSecond {
		return time.Second
	}
	return time.Minute
}

func (u TickUnit) String() string {
	if u == TickSecond {
		return "second"
	}
	return "minute"
}

// ParseTickUnit parses "minute" or "second". The empty string is a minute.
func ParseTickUnit(s string) (TickUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "minute", "min", "m":
		return TickMinute, nil
	case "second", "sec", "s":
		return TickSecond, nil
	default:
		return TickMinute, fmt.Errorf("unknown tick unit %q (use minute or second)", s)
	}
}

type options struct {
	timing   reveal.Timing
	weekdays dial.WeekdayNames
	logger   *slog.Logger
	unit     TickUnit
}

// Option configures a State.
type Option func(*options)

// WithTiming overrides the reveal durations.
func WithTiming(t reveal.Timing) Option {
	return func(o *options) { o.timing = t }
}

// WithWeekdays overrides the weekday abbreviations used in the label.
func WithWeekdays(names dial.WeekdayNames) Option {
	return func(o *options) { o.weekdays = names }
}

// WithLogger sets the logger for label and phase changes.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTickUnit selects the tick granularity. Second ticks also advance the
// strip once per second.
func WithTickUnit(u TickUnit) Option {
	return func(o *options) { o.unit = u }
}

// State is the per-screen dial state owned by the host.
type State struct {
	profile   dial.ScreenProfile
	placement dial.Placement
	tree      render.Tree
	animator  *reveal.Animator
	weekdays  dial.WeekdayNames
	logger    *slog.Logger
	unit      TickUnit

	label string
	last  dial.TimeOfDay
}

// New validates profile, places the needle and the hidden label in tree,
// and returns an idle State. Call Tick once before the first frame.
func New(profile dial.ScreenProfile, tree render.Tree, sched animation.Scheduler, opts ...Option) (*State, error) {
	const op = "display.New"
	o := options{
		timing:   reveal.DefaultTiming,
		weekdays: dial.EnglishWeekdays,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if tree == nil || sched == nil {
		return nil, errors.Errorf(op, errors.KindConfig, "render tree and scheduler are required")
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := o.timing.Validate(); err != nil {
		return nil, err
	}

	res := dial.ResolutionMinute
	if o.unit == TickSecond {
		res = dial.ResolutionSecond
	}
	s := &State{
		profile:   profile,
		placement: profile.Placement(res),
		tree:      tree,
		weekdays:  o.weekdays,
		logger:    o.logger.With(slog.String("profile", profile.Name)),
		unit:      o.unit,
	}

	if profile.ShowNeedle {
		tree.SetFrame(render.Needle, profile.NeedleFrame())
	}
	geom := profile.RevealGeometry()
	tree.SetFrame(render.Label, geom.Offscreen)

	s.animator = reveal.New(sched, geom, o.timing, s.setLabelFrame)
	s.animator.OnPhase(func(p reveal.Phase) {
		s.logger.Debug("reveal phase", slog.String("phase", p.String()))
	})
	return s, nil
}

func (s *State) setLabelFrame(r graphics.Rect) {
	s.tree.SetFrame(render.Label, r)
}

// Tick repositions the tiles for now and refreshes the label text. The
// label is updated whether or not it is visible.
func (s *State) Tick(now time.Time) {
	defer errors.Recover("display.Tick")

	t := dial.FromTime(now)
	s.last = t
	for i, frame := range dial.Project(t, s.placement) {
		s.tree.SetFrame(render.Tile(i), frame)
	}

	label := dial.FormatDate(t, s.weekdays)
	if label != s.label {
		s.logger.Debug("date label", slog.String("text", label))
		s.label = label
	}
	s.tree.SetText(render.Label, label)
}

// Trigger starts a date reveal and reports whether one started.
func (s *State) Trigger() (started bool) {
	defer errors.Recover("display.Trigger")
	started = s.animator.Trigger()
	if !started {
		s.logger.Debug("reveal trigger dropped", slog.String("phase", s.animator.Phase().String()))
	}
	return started
}

// Phase returns the reveal phase.
func (s *State) Phase() reveal.Phase {
	return s.animator.Phase()
}

// Label returns the most recent label text.
func (s *State) Label() string {
	return s.label
}

// Last returns the time of the most recent tick.
func (s *State) Last() dial.TimeOfDay {
	return s.last
}

// Profile returns the screen profile.
func (s *State) Profile() dial.ScreenProfile {
	return s.profile
}

// TickUnit returns the tick granularity the host should deliver.
func (s *State) TickUnit() TickUnit {
	return s.unit
}

// Timing returns the reveal durations.
func (s *State) Timing() reveal.Timing {
	return s.animator.Timing()
}

// Close cancels any running reveal. The State ignores triggers afterwards.
func (s *State) Close() {
	s.animator.Close()
}
