package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/daydial/pkg/animation"
	"github.com/go-drift/daydial/pkg/dial"
	"github.com/go-drift/daydial/pkg/display"
	"github.com/go-drift/daydial/pkg/graphics"
	"github.com/go-drift/daydial/pkg/render"
	"github.com/go-drift/daydial/pkg/reveal"
)

// FrameInterval is how far PumpAndSettle advances the clock per frame.
const FrameInterval = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: reveal did not settle")

// DialTester drives a display.State against a recording tree and a fake
// clock. Timelines run on the real FrameScheduler, so slide and hold
// durations elapse only when the test advances the clock and pumps.
type DialTester struct {
	clock     *FakeClock
	prevClock animation.Clock
	recorder  *render.Recorder
	state     *display.State
}

// NewDialTester creates a tester for profile. Call Cleanup when done, or
// use NewDialTesterWithT instead.
func NewDialTester(profile dial.ScreenProfile, opts ...display.Option) (*DialTester, error) {
	clk := NewFakeClock()
	rec := render.NewRecorder()
	prev := animation.SetClock(clk)
	state, err := display.New(profile, rec, animation.NewFrameScheduler(), opts...)
	if err != nil {
		animation.SetClock(prev)
		return nil, err
	}
	return &DialTester{
		clock:     clk,
		prevClock: prev,
		recorder:  rec,
		state:     state,
	}, nil
}

// NewDialTesterWithT creates a tester that cleans up via t.Cleanup and
// fails the test if the profile is rejected. The dial is ticked once.
func NewDialTesterWithT(t *testing.T, profile dial.ScreenProfile, opts ...display.Option) *DialTester {
	t.Helper()
	tester, err := NewDialTester(profile, opts...)
	if err != nil {
		t.Fatalf("NewDialTester(%s): %v", profile.Name, err)
	}
	t.Cleanup(tester.Cleanup)
	tester.Tick()
	return tester
}

// Cleanup cancels any running reveal and restores the animation clock.
func (t *DialTester) Cleanup() {
	t.state.Close()
	animation.SetClock(t.prevClock)
}

// Clock returns the fake clock.
func (t *DialTester) Clock() *FakeClock {
	return t.clock
}

// Recorder returns the recording render tree.
func (t *DialTester) Recorder() *render.Recorder {
	return t.recorder
}

// State returns the dial state under test.
func (t *DialTester) State() *display.State {
	return t.state
}

// Phase returns the reveal phase.
func (t *DialTester) Phase() reveal.Phase {
	return t.state.Phase()
}

// Tick delivers a host tick at the clock's current time.
func (t *DialTester) Tick() {
	t.state.Tick(t.clock.Now())
}

// Trigger delivers a host trigger.
func (t *DialTester) Trigger() bool {
	return t.state.Trigger()
}

// Pump runs one animation frame.
func (t *DialTester) Pump() {
	animation.StepTickers()
}

// Advance moves the clock forward by d and runs one frame.
func (t *DialTester) Advance(d time.Duration) {
	t.clock.Advance(d)
	t.Pump()
}

// PumpAndSettle runs frames until no timeline is active or the timeout is
// reached. Each frame advances the clock by FrameInterval.
func (t *DialTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !animation.HasActiveTickers() {
			return nil
		}
		t.clock.Advance(FrameInterval)
		elapsed += FrameInterval
	}
	return ErrSettleTimeout
}

// LabelFrame returns the label's current frame.
func (t *DialTester) LabelFrame() graphics.Rect {
	r, _ := t.recorder.Frame(render.Label)
	return r
}

// LabelText returns the label's current text.
func (t *DialTester) LabelText() string {
	return t.recorder.Text(render.Label)
}

// TileFrames returns the current tile frames in index order.
func (t *DialTester) TileFrames() []graphics.Rect {
	n := t.state.Profile().TileCount
	out := make([]graphics.Rect, n)
	for i := range out {
		out[i], _ = t.recorder.Frame(render.Tile(i))
	}
	return out
}
