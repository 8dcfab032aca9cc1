package animation

import (
	"time"

	"github.com/go-drift/daydial/pkg/graphics"
)

// Timeline describes one frame animation: move an element from From to To
// over Duration after waiting Delay, shaped by Curve.
type Timeline struct {
	From     graphics.Rect
	To       graphics.Rect
	Duration time.Duration
	Delay    time.Duration
	// Curve eases progress. Nil means linear.
	Curve func(float64) float64

	// OnFrame receives each interpolated frame.
	OnFrame func(graphics.Rect)
	// OnStart runs once when the delay has elapsed and motion begins.
	OnStart func()
	// OnComplete runs once when the element has reached To. It does not
	// run for cancelled timelines.
	OnComplete func()
}

// Scheduler runs timelines. Implementations invoke a timeline's callbacks
// on the host's event thread, never concurrently with each other.
type Scheduler interface {
	Schedule(tl Timeline) *Handle
}

// Handle tracks a scheduled timeline. The zero value is not usable; build
// one with NewHandle.
type Handle struct {
	done       chan struct{}
	onStart    func()
	onComplete func()
	cancel     func()
	started    bool
	finished   bool
	canceled   bool
}

// NewHandle returns a handle for tl. cancel, if non-nil, is called when the
// handle is cancelled so the scheduler can stop driving the timeline.
// Scheduler implementations call Start and Finish as the timeline progresses.
func NewHandle(tl Timeline, cancel func()) *Handle {
	return &Handle{
		done:       make(chan struct{}),
		onStart:    tl.OnStart,
		onComplete: tl.OnComplete,
		cancel:     cancel,
	}
}

// Start marks the end of the delay and runs OnStart. Later calls do nothing.
func (h *Handle) Start() {
	if h.started || h.canceled {
		return
	}
	h.started = true
	if h.onStart != nil {
		h.onStart()
	}
}

// Finish marks the timeline complete and runs OnComplete exactly once.
// OnStart runs first if it has not already.
func (h *Handle) Finish() {
	if h.finished || h.canceled {
		return
	}
	h.Start()
	h.finished = true
	close(h.done)
	if h.onComplete != nil {
		h.onComplete()
	}
}

// Cancel stops a pending or running timeline without running OnComplete.
// It returns false if the timeline had already finished or been cancelled.
func (h *Handle) Cancel() bool {
	if h.finished || h.canceled {
		return false
	}
	h.canceled = true
	close(h.done)
	if h.cancel != nil {
		h.cancel()
	}
	return true
}

// Done returns a channel closed when the timeline finishes or is cancelled.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Started reports whether the timeline's delay has elapsed.
func (h *Handle) Started() bool { return h.started }

// Finished reports whether the timeline ran to completion.
func (h *Handle) Finished() bool { return h.finished }

// Canceled reports whether the timeline was cancelled.
func (h *Handle) Canceled() bool { return h.canceled }

// FrameScheduler runs each timeline on its own AnimationController, so
// timelines advance whenever the host calls StepTickers.
type FrameScheduler struct{}

// NewFrameScheduler returns a scheduler driven by StepTickers.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Schedule starts tl and returns its handle.
func (s *FrameScheduler) Schedule(tl Timeline) *Handle {
	c := NewAnimationController(tl.Duration)
	c.Delay = tl.Delay
	if tl.Curve != nil {
		c.Curve = tl.Curve
	}
	tween := TweenRect(tl.From, tl.To)
	h := NewHandle(tl, c.Dispose)

	c.AddListener(func() {
		if tl.OnFrame != nil {
			tl.OnFrame(tween.Transform(c))
		}
	})
	c.AddStatusListener(func(status AnimationStatus) {
		switch status {
		case AnimationForward:
			h.Start()
		case AnimationCompleted:
			c.Dispose()
			h.Finish()
		}
	})
	c.Forward()
	return h
}
