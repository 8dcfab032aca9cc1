package testing

import (
	"github.com/go-drift/daydial/pkg/animation"
	"github.com/go-drift/daydial/pkg/graphics"
)

// ScheduledTimeline is a timeline captured by a ManualScheduler. The test
// drives it explicitly instead of waiting on a clock.
type ScheduledTimeline struct {
	animation.Timeline
	Handle *animation.Handle
}

// Start ends the delay: it emits the From frame and runs OnStart.
func (s *ScheduledTimeline) Start() {
	if s.Handle.Canceled() || s.Handle.Started() {
		return
	}
	s.emit(s.From)
	s.Handle.Start()
}

// Progress emits the frame at linear progress t without applying Curve.
// It starts the timeline first if needed.
func (s *ScheduledTimeline) Progress(t float64) {
	if s.Handle.Canceled() || s.Handle.Finished() {
		return
	}
	s.Start()
	s.emit(animation.LerpRect(s.From, s.To, t))
}

// Complete emits the To frame and finishes the timeline. Cancelled
// timelines are left alone.
func (s *ScheduledTimeline) Complete() {
	if s.Handle.Canceled() || s.Handle.Finished() {
		return
	}
	s.Start()
	s.emit(s.To)
	s.Handle.Finish()
}

func (s *ScheduledTimeline) emit(r graphics.Rect) {
	if s.OnFrame != nil {
		s.OnFrame(r)
	}
}

// ManualScheduler records timelines without running them.
type ManualScheduler struct {
	Timelines []*ScheduledTimeline
}

// NewManualScheduler returns an empty scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule records tl and returns its handle.
func (m *ManualScheduler) Schedule(tl animation.Timeline) *animation.Handle {
	st := &ScheduledTimeline{Timeline: tl}
	st.Handle = animation.NewHandle(tl, nil)
	m.Timelines = append(m.Timelines, st)
	return st.Handle
}

// Last returns the most recently scheduled timeline, or nil.
func (m *ManualScheduler) Last() *ScheduledTimeline {
	if len(m.Timelines) == 0 {
		return nil
	}
	return m.Timelines[len(m.Timelines)-1]
}

// Pending returns the timelines that have neither finished nor been
// cancelled.
func (m *ManualScheduler) Pending() []*ScheduledTimeline {
	var out []*ScheduledTimeline
	for _, st := range m.Timelines {
		if !st.Handle.Finished() && !st.Handle.Canceled() {
			out = append(out, st)
		}
	}
	return out
}

// Drain completes pending timelines, including ones scheduled by earlier
// completions, until none remain. It returns how many it completed.
func (m *ManualScheduler) Drain() int {
	n := 0
	for {
		pending := m.Pending()
		if len(pending) == 0 {
			return n
		}
		for _, st := range pending {
			st.Complete()
			n++
		}
	}
}
