package animation

import (
	"testing"
	"time"

	"github.com/go-drift/daydial/pkg/graphics"
)

func tweenFrame(top int) graphics.Rect {
	return graphics.RectFromLTWH(74, top, 70, 15)
}

func TestFrameSchedulerRunsTimeline(t *testing.T) {
	clk := installClock(t)
	sched := NewFrameScheduler()

	var frames []graphics.Rect
	starts, completions := 0, 0
	h := sched.Schedule(Timeline{
		From:       tweenFrame(-50),
		To:         tweenFrame(20),
		Duration:   400 * time.Millisecond,
		Curve:      EaseInOut,
		OnFrame:    func(r graphics.Rect) { frames = append(frames, r) },
		OnStart:    func() { starts++ },
		OnComplete: func() { completions++ },
	})

	if starts != 1 {
		t.Errorf("undelayed timeline should start immediately, starts = %d", starts)
	}
	for i := 0; i < 10; i++ {
		clk.advance(100 * time.Millisecond)
	}

	if completions != 1 {
		t.Errorf("OnComplete ran %d times, want 1", completions)
	}
	if !h.Finished() {
		t.Error("handle should be finished")
	}
	select {
	case <-h.Done():
	default:
		t.Error("Done channel should be closed")
	}
	if len(frames) == 0 || frames[len(frames)-1] != tweenFrame(20) {
		t.Errorf("last frame = %v, want %v", frames, tweenFrame(20))
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].Top < frames[i-1].Top {
			t.Errorf("frame %d moved backwards: %v -> %v", i, frames[i-1], frames[i])
		}
	}
	if HasActiveTickers() {
		t.Error("tickers left running")
	}
}

func TestFrameSchedulerDelayedStart(t *testing.T) {
	clk := installClock(t)
	sched := NewFrameScheduler()

	started := false
	h := sched.Schedule(Timeline{
		From:     tweenFrame(20),
		To:       tweenFrame(-50),
		Duration: 200 * time.Millisecond,
		Delay:    4 * time.Second,
		Curve:    EaseIn,
		OnStart:  func() { started = true },
	})

	clk.advance(2 * time.Second)
	if started || h.Started() {
		t.Fatal("timeline started before its delay elapsed")
	}
	clk.advance(2*time.Second + 10*time.Millisecond)
	if !started {
		t.Fatal("timeline should start once the delay elapses")
	}
	clk.advance(300 * time.Millisecond)
	if !h.Finished() {
		t.Error("timeline should finish after delay + duration")
	}
}

func TestHandleCancel(t *testing.T) {
	clk := installClock(t)
	sched := NewFrameScheduler()

	completed := false
	h := sched.Schedule(Timeline{
		From:       tweenFrame(-50),
		To:         tweenFrame(20),
		Duration:   time.Second,
		OnComplete: func() { completed = true },
	})

	clk.advance(100 * time.Millisecond)
	if !h.Cancel() {
		t.Fatal("Cancel should succeed on a running timeline")
	}
	if h.Cancel() {
		t.Error("second Cancel should report false")
	}
	clk.advance(2 * time.Second)
	if completed || h.Finished() {
		t.Error("cancelled timeline must not complete")
	}
	if !h.Canceled() {
		t.Error("Canceled() = false")
	}
	if HasActiveTickers() {
		t.Error("cancel should stop the ticker")
	}
}

func TestHandleFinishRunsStartFirstAndOnce(t *testing.T) {
	var order []string
	h := NewHandle(Timeline{
		OnStart:    func() { order = append(order, "start") },
		OnComplete: func() { order = append(order, "complete") },
	}, nil)

	h.Finish()
	h.Finish()
	h.Start()
	if h.Cancel() {
		t.Error("Cancel after Finish should report false")
	}

	if len(order) != 2 || order[0] != "start" || order[1] != "complete" {
		t.Errorf("callbacks = %v, want [start complete]", order)
	}
}
