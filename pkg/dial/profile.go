package dial

import (
	"fmt"
	"sort"

	"github.com/go-drift/daydial/pkg/errors"
	"github.com/go-drift/daydial/pkg/graphics"
)

// Shape is the physical outline of the screen.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeRound
)

func (s Shape) String() string {
	if s == ShapeRound {
		return "round"
	}
	return "rect"
}

// BackgroundWidth is the width of the stock dial artwork.
const BackgroundWidth = 1366

// ScreenProfile describes one device's screen and how the dial is laid out
// on it. Profiles are resolved once at startup and treated as read-only.
type ScreenProfile struct {
	Name   string
	Shape  Shape
	Width  int
	Height int

	TileWidth   int
	TileCount   int
	CycleSpan   int
	Anchor      Anchor
	CenterIndex int

	// Date label layout. The label slides vertically between LabelTop
	// (visible) and HiddenTop (above the screen).
	LabelLeft   int
	LabelTop    int
	LabelWidth  int
	LabelHeight int
	HiddenTop   int

	ShowNeedle bool
	// NeedleWidth is the needle thickness in pixels.
	NeedleWidth int
	// NeedleHeightPercent is the needle length as a percentage of Height.
	NeedleHeightPercent int
}

// RevealGeometry holds the two label frames the reveal animation moves between.
type RevealGeometry struct {
	Onscreen  graphics.Rect
	Offscreen graphics.Rect
}

func rectProfile(name string, tileCount, span int, anchor Anchor) ScreenProfile {
	const width, height = 144, 168
	return ScreenProfile{
		Name:                name,
		Shape:               ShapeRect,
		Width:               width,
		Height:              height,
		TileWidth:           BackgroundWidth,
		TileCount:           tileCount,
		CycleSpan:           span,
		Anchor:              anchor,
		CenterIndex:         DefaultCenterIndex(tileCount),
		LabelLeft:           width/2 + 2,
		LabelTop:            20,
		LabelWidth:          width/2 - 2,
		LabelHeight:         15,
		HiddenTop:           -50,
		ShowNeedle:          true,
		NeedleWidth:         2,
		NeedleHeightPercent: 60,
	}
}

var presets = map[string]ScreenProfile{}

func init() {
	quadRound := rectProfile("quad-round", 4, 2*BackgroundWidth, AnchorCenter)
	quadRound.Shape = ShapeRound
	quadRound.Width, quadRound.Height = 180, 180
	quadRound.LabelLeft = quadRound.Width/2 + 2
	quadRound.LabelTop = 30
	quadRound.LabelWidth = 67

	for _, p := range []ScreenProfile{
		rectProfile("quad-rect", 4, 2*BackgroundWidth, AnchorCenter),
		quadRound,
		rectProfile("duo-rect", 2, BackgroundWidth, AnchorLeft),
		rectProfile("mono-rect", 1, BackgroundWidth-144, AnchorLeft),
	} {
		presets[p.Name] = p
	}
}

// DefaultProfileName names the preset used when nothing else is configured.
const DefaultProfileName = "quad-rect"

// DefaultProfile returns the four-tile rectangular preset.
func DefaultProfile() ScreenProfile {
	return presets[DefaultProfileName]
}

// Lookup returns the preset with the given name.
func Lookup(name string) (ScreenProfile, bool) {
	p, ok := presets[name]
	return p, ok
}

// Presets returns all presets sorted by name.
func Presets() []ScreenProfile {
	out := make([]ScreenProfile, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Bounds returns the visible screen rectangle.
func (p ScreenProfile) Bounds() graphics.Rect {
	return graphics.RectFromLTWH(0, 0, p.Width, p.Height)
}

// Placement returns the projector geometry for this profile.
func (p ScreenProfile) Placement(res Resolution) Placement {
	return Placement{
		ScreenWidth:  p.Width,
		ScreenHeight: p.Height,
		TileWidth:    p.TileWidth,
		TileCount:    p.TileCount,
		CycleSpan:    p.CycleSpan,
		Anchor:       p.Anchor,
		CenterIndex:  p.CenterIndex,
		Resolution:   res,
	}
}

// RevealGeometry returns the label's visible and hidden frames.
func (p ScreenProfile) RevealGeometry() RevealGeometry {
	on := graphics.RectFromLTWH(p.LabelLeft, p.LabelTop, p.LabelWidth, p.LabelHeight)
	return RevealGeometry{
		Onscreen:  on,
		Offscreen: on.WithOrigin(p.LabelLeft, p.HiddenTop),
	}
}

// NeedleFrame returns the frame of the fixed marker at the screen centre.
func (p ScreenProfile) NeedleFrame() graphics.Rect {
	return graphics.RectFromLTWH(
		p.Width/2-p.NeedleWidth/2, 0,
		p.NeedleWidth, p.Height*p.NeedleHeightPercent/100,
	)
}

// Validate reports configuration mistakes: unsupported tile counts,
// non-positive sizes, tile sets that leave a gap on screen at some time of
// day, and label frames that break the reveal layout.
func (p ScreenProfile) Validate() error {
	const op = "dial.ScreenProfile.Validate"
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return errors.Errorf(op, errors.KindConfig, "profile %q: screen size %dx%d must be positive", p.Name, p.Width, p.Height)
	case p.TileCount != 1 && p.TileCount != 2 && p.TileCount != 4:
		return errors.Errorf(op, errors.KindConfig, "profile %q: tile count %d not in {1, 2, 4}", p.Name, p.TileCount)
	case p.TileWidth <= 0:
		return errors.Errorf(op, errors.KindConfig, "profile %q: tile width %d must be positive", p.Name, p.TileWidth)
	case p.CycleSpan <= 0:
		return errors.Errorf(op, errors.KindConfig, "profile %q: cycle span %d must be positive", p.Name, p.CycleSpan)
	case p.CenterIndex < 0 || p.CenterIndex >= p.TileCount:
		return errors.Errorf(op, errors.KindConfig, "profile %q: center index %d out of range for %d tiles", p.Name, p.CenterIndex, p.TileCount)
	}

	// Offsets only grow through the day, so checking the two extremes
	// covers every minute and second in between.
	for _, res := range []Resolution{ResolutionMinute, ResolutionSecond} {
		pl := p.Placement(res)
		for _, t := range []TimeOfDay{{}, {Hour: 23, Minute: 59, Second: 59}} {
			if frames := Project(t, pl); !Covers(frames, p.Width) {
				return errors.Errorf(op, errors.KindConfig,
					"profile %q: tiles leave a gap at %02d:%02d:%02d (offset %d)",
					p.Name, t.Hour, t.Minute, t.Second, Offset(t, pl))
			}
		}
	}

	g := p.RevealGeometry()
	if g.Onscreen.IsEmpty() {
		return errors.Errorf(op, errors.KindConfig, "profile %q: empty label frame", p.Name)
	}
	if !p.Bounds().Contains(g.Onscreen) {
		return errors.Errorf(op, errors.KindConfig, "profile %q: label frame %v outside screen", p.Name, g.Onscreen)
	}
	if p.Bounds().Overlaps(g.Offscreen) {
		return errors.Errorf(op, errors.KindConfig, "profile %q: hidden label frame %v is visible", p.Name, g.Offscreen)
	}
	if p.ShowNeedle && (p.NeedleWidth <= 0 || p.NeedleHeightPercent <= 0 || p.NeedleHeightPercent > 100) {
		return errors.New(op, errors.KindConfig, fmt.Errorf("profile %q: invalid needle %dpx at %d%%", p.Name, p.NeedleWidth, p.NeedleHeightPercent))
	}
	return nil
}
