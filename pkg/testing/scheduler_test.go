package testing

import (
	"testing"

	"github.com/go-drift/daydial/pkg/animation"
	"github.com/go-drift/daydial/pkg/graphics"
)

func TestManualScheduler_Drive(t *testing.T) {
	sched := NewManualScheduler()
	var frames []graphics.Rect
	var events []string
	h := sched.Schedule(animation.Timeline{
		From:       graphics.RectFromLTWH(0, 0, 10, 10),
		To:         graphics.RectFromLTWH(0, 100, 10, 10),
		OnFrame:    func(r graphics.Rect) { frames = append(frames, r) },
		OnStart:    func() { events = append(events, "start") },
		OnComplete: func() { events = append(events, "complete") },
	})

	if len(frames) != 0 || len(events) != 0 {
		t.Fatal("Schedule should not run the timeline")
	}
	if sched.Last().Handle != h {
		t.Fatal("Last should return the scheduled timeline")
	}

	sched.Last().Progress(0.25)
	if len(frames) != 2 || frames[0].Top != 0 || frames[1].Top != 25 {
		t.Errorf("frames after Progress = %v", frames)
	}

	sched.Last().Complete()
	if frames[len(frames)-1].Top != 100 {
		t.Errorf("final frame = %v", frames[len(frames)-1])
	}
	if len(events) != 2 || events[0] != "start" || events[1] != "complete" {
		t.Errorf("events = %v", events)
	}
	if !h.Finished() {
		t.Error("handle should be finished")
	}
	if len(sched.Pending()) != 0 {
		t.Error("expected no pending timelines")
	}
}

func TestManualScheduler_CanceledIsInert(t *testing.T) {
	sched := NewManualScheduler()
	completed := false
	h := sched.Schedule(animation.Timeline{OnComplete: func() { completed = true }})

	if !h.Cancel() {
		t.Fatal("Cancel should succeed on a pending timeline")
	}
	sched.Last().Complete()
	if completed {
		t.Error("cancelled timeline should not complete")
	}
	if n := sched.Drain(); n != 0 {
		t.Errorf("Drain completed %d timelines, want 0", n)
	}
}

func TestManualScheduler_DrainFollowsChains(t *testing.T) {
	sched := NewManualScheduler()
	remaining := 3
	var next func()
	next = func() {
		remaining--
		if remaining > 0 {
			sched.Schedule(animation.Timeline{OnComplete: next})
		}
	}
	sched.Schedule(animation.Timeline{OnComplete: next})

	if n := sched.Drain(); n != 3 {
		t.Errorf("Drain completed %d timelines, want 3", n)
	}
	if sched.Last() == nil || len(sched.Timelines) != 3 {
		t.Errorf("recorded %d timelines, want 3", len(sched.Timelines))
	}
}

func TestManualScheduler_LastEmpty(t *testing.T) {
	if NewManualScheduler().Last() != nil {
		t.Error("expected nil Last on an empty scheduler")
	}
}
