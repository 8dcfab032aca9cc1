package dial

import "github.com/go-drift/daydial/pkg/graphics"

// Anchor selects the horizontal reference point tiles are laid out from.
type Anchor int

const (
	// AnchorCenter places the day's origin under the middle of the screen.
	AnchorCenter Anchor = iota
	// AnchorLeft places the day's origin at the left screen edge.
	AnchorLeft
)

func (a Anchor) String() string {
	switch a {
	case AnchorLeft:
		return "left"
	default:
		return "center"
	}
}

// Resolution selects how finely the strip advances.
type Resolution int

const (
	// ResolutionMinute advances the strip once per minute.
	ResolutionMinute Resolution = iota
	// ResolutionSecond advances the strip once per second.
	ResolutionSecond
)

// Placement is the geometry ClockProjector needs to lay out the tile set.
type Placement struct {
	ScreenWidth  int
	ScreenHeight int
	TileWidth    int
	TileCount    int
	// CycleSpan is how far, in pixels, the strip travels over 24 hours.
	CycleSpan int
	Anchor    Anchor
	// CenterIndex is the tile whose left edge sits on the anchor at midnight.
	CenterIndex int
	Resolution  Resolution
}

// DefaultCenterIndex returns the centre tile used for tileCount tiles: the
// first tile for one or two tiles, and the tile left of the middle otherwise.
func DefaultCenterIndex(tileCount int) int {
	if tileCount <= 2 {
		return 0
	}
	return (tileCount - 1) / 2
}

// Offset returns how far the strip has scrolled left at t. The result is
// 0 at midnight, non-decreasing through the day and always below CycleSpan.
func Offset(t TimeOfDay, p Placement) int64 {
	span := int64(p.CycleSpan)
	if p.Resolution == ResolutionSecond {
		return t.SecondsSinceMidnight() * span / SecondsPerDay
	}
	return t.MinutesSinceMidnight() * span / MinutesPerDay
}

// anchorX returns the screen x coordinate of the anchor.
func (p Placement) anchorX() int64 {
	if p.Anchor == AnchorLeft {
		return 0
	}
	return int64(p.ScreenWidth / 2)
}

// Project returns one frame per tile for time t. Tile i is placed at
// anchor - offset + TileWidth*(i-CenterIndex), spans the full screen height
// and is TileWidth wide. Project has no side effects.
func Project(t TimeOfDay, p Placement) []graphics.Rect {
	offset := Offset(t, p)
	frames := make([]graphics.Rect, p.TileCount)
	for i := range frames {
		x := p.anchorX() - offset + int64(p.TileWidth)*int64(i-p.CenterIndex)
		frames[i] = graphics.RectFromLTWH(int(x), 0, p.TileWidth, p.ScreenHeight)
	}
	return frames
}

// Covers reports whether frames together cover [0, width) horizontally
// without a gap.
func Covers(frames []graphics.Rect, width int) bool {
	reach := 0
	for {
		advanced := false
		for _, f := range frames {
			if f.Left <= reach && f.Right > reach {
				reach = f.Right
				advanced = true
			}
		}
		if reach >= width {
			return true
		}
		if !advanced {
			return false
		}
	}
}
