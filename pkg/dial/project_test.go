package dial

import (
	"reflect"
	"testing"
	"time"
)

func examplePlacement() Placement {
	return Placement{
		ScreenWidth:  144,
		ScreenHeight: 168,
		TileWidth:    1366,
		TileCount:    2,
		CycleSpan:    2732,
		Anchor:       AnchorCenter,
		CenterIndex:  0,
	}
}

func TestProjectNoon(t *testing.T) {
	p := examplePlacement()
	noon := TimeOfDay{Hour: 12}

	if got := noon.MinutesSinceMidnight(); got != 720 {
		t.Fatalf("MinutesSinceMidnight() = %d, want 720", got)
	}
	if got := Offset(noon, p); got != 1366 {
		t.Fatalf("Offset() = %d, want 1366", got)
	}

	frames := Project(noon, p)
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	if frames[0].Left != -1294 {
		t.Errorf("tile 0 x = %d, want -1294", frames[0].Left)
	}
	if frames[1].Left != 72 {
		t.Errorf("tile 1 x = %d, want 72", frames[1].Left)
	}
	for i, f := range frames {
		if f.Top != 0 || f.Height() != 168 || f.Width() != 1366 {
			t.Errorf("tile %d frame = %+v, want full-height 1366 wide", i, f)
		}
	}
}

func TestProjectMatchesQuadLayout(t *testing.T) {
	// Four tiles shift around tile 1: x = 72 - offset + 1366*(i-1).
	p := DefaultProfile().Placement(ResolutionMinute)
	frames := Project(TimeOfDay{Hour: 6}, p)
	want := []int{72 - 683 - 1366, 72 - 683, 72 - 683 + 1366, 72 - 683 + 2732}
	for i, f := range frames {
		if f.Left != want[i] {
			t.Errorf("tile %d x = %d, want %d", i, f.Left, want[i])
		}
	}
}

func TestOffsetMidnightIsZero(t *testing.T) {
	for _, p := range Presets() {
		for _, res := range []Resolution{ResolutionMinute, ResolutionSecond} {
			if got := Offset(TimeOfDay{}, p.Placement(res)); got != 0 {
				t.Errorf("%s: Offset(00:00) = %d, want 0", p.Name, got)
			}
		}
	}
}

func TestOffsetMonotonic(t *testing.T) {
	for _, p := range Presets() {
		pl := p.Placement(ResolutionMinute)
		prev := int64(-1)
		for m := 0; m < MinutesPerDay; m++ {
			off := Offset(TimeOfDay{Hour: m / 60, Minute: m % 60}, pl)
			if off < prev {
				t.Fatalf("%s: offset decreased at minute %d: %d < %d", p.Name, m, off, prev)
			}
			prev = off
		}
	}
}

func TestOffsetWrap(t *testing.T) {
	p := examplePlacement()
	last := Offset(TimeOfDay{Hour: 23, Minute: 59}, p)
	if last >= int64(p.CycleSpan) {
		t.Errorf("Offset(23:59) = %d, want < %d", last, p.CycleSpan)
	}
	// Extrapolating one minute past the end of the day lands on a full cycle.
	next := int64(MinutesPerDay) * int64(p.CycleSpan) / MinutesPerDay
	if last >= next {
		t.Errorf("Offset(23:59) = %d, want < %d", last, next)
	}
	if got := Offset(TimeOfDay{Hour: 23, Minute: 59, Second: 59}, Placement{CycleSpan: p.CycleSpan, Resolution: ResolutionSecond}); got >= int64(p.CycleSpan) {
		t.Errorf("second resolution Offset(23:59:59) = %d, want < %d", got, p.CycleSpan)
	}
}

func TestOffsetSecondResolution(t *testing.T) {
	p := examplePlacement()
	p.Resolution = ResolutionSecond

	half := TimeOfDay{Hour: 12, Minute: 0, Second: 30}
	if got, want := Offset(half, p), int64(43230*2732/86400); got != want {
		t.Errorf("Offset(12:00:30) = %d, want %d", got, want)
	}

	p.Resolution = ResolutionMinute
	if got := Offset(half, p); got != 1366 {
		t.Errorf("minute resolution ignores seconds, got %d", got)
	}
}

func TestProjectIsPure(t *testing.T) {
	p := DefaultProfile().Placement(ResolutionMinute)
	tod := TimeOfDay{Hour: 17, Minute: 42, Weekday: 2, Day: 9}
	a := Project(tod, p)
	b := Project(tod, p)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Project not idempotent: %v vs %v", a, b)
	}
	a[0].Left = 0
	if c := Project(tod, p); reflect.DeepEqual(a, c) {
		t.Error("Project must return a fresh slice per call")
	}
}

func TestProjectCoversScreenAllDay(t *testing.T) {
	for _, p := range Presets() {
		t.Run(p.Name, func(t *testing.T) {
			pl := p.Placement(ResolutionMinute)
			for m := 0; m < MinutesPerDay; m++ {
				frames := Project(TimeOfDay{Hour: m / 60, Minute: m % 60}, pl)
				if !Covers(frames, p.Width) {
					t.Fatalf("gap on screen at minute %d: %v", m, frames)
				}
			}
		})
	}
}

func TestProjectTilesAreContiguous(t *testing.T) {
	for _, p := range Presets() {
		frames := Project(TimeOfDay{Hour: 9, Minute: 13}, p.Placement(ResolutionMinute))
		for i := 1; i < len(frames); i++ {
			if frames[i].Left != frames[i-1].Right {
				t.Errorf("%s: tile %d starts at %d, previous ends at %d", p.Name, i, frames[i].Left, frames[i-1].Right)
			}
		}
	}
}

func TestCovers(t *testing.T) {
	p := examplePlacement()
	// The example geometry is centred on tile 0, so midnight leaves the
	// left half of the screen uncovered.
	if Covers(Project(TimeOfDay{}, p), p.ScreenWidth) {
		t.Error("expected a gap at midnight for the centred two-tile layout")
	}
	if !Covers(Project(TimeOfDay{Hour: 12}, p), p.ScreenWidth) {
		t.Error("expected full coverage at noon")
	}
}

func TestFromTime(t *testing.T) {
	ts := time.Date(2026, time.October, 14, 21, 5, 33, 0, time.UTC)
	got := FromTime(ts)
	want := TimeOfDay{Hour: 21, Minute: 5, Second: 33, Weekday: 3, Day: 14}
	if got != want {
		t.Errorf("FromTime = %+v, want %+v", got, want)
	}
	if got.SecondsSinceMidnight() != 21*3600+5*60+33 {
		t.Errorf("SecondsSinceMidnight() = %d", got.SecondsSinceMidnight())
	}
}

func TestDefaultCenterIndex(t *testing.T) {
	tests := map[int]int{1: 0, 2: 0, 4: 1}
	for count, want := range tests {
		if got := DefaultCenterIndex(count); got != want {
			t.Errorf("DefaultCenterIndex(%d) = %d, want %d", count, got, want)
		}
	}
}
