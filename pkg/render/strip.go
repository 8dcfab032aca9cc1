package render

import (
	"image"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/daydial/pkg/dial"
	"github.com/go-drift/daydial/pkg/graphics"
)

// StripPalette holds the colours of the generated dial artwork.
type StripPalette struct {
	Face  graphics.Color
	Major graphics.Color
	Minor graphics.Color
	Text  graphics.Color
}

// DefaultStripPalette is light ticks and numerals on dark gray.
var DefaultStripPalette = StripPalette{
	Face:  graphics.ColorDarkGray,
	Major: graphics.ColorWhite,
	Minor: graphics.ColorLightGray,
	Text:  graphics.ColorWhite,
}

// DialStrip draws one background tile for p: an hour tick with a numeral
// every hour and a short tick every quarter hour, placed so the needle at
// the screen centre points at the current time. When a tile spans half a
// day or less the numerals count 1-12, otherwise 0-23.
func DialStrip(p dial.ScreenProfile, pal StripPalette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.TileWidth, p.Height))
	fill(img, img.Bounds(), pal.Face)

	// The needle sits at the screen centre; tile pixel u is under it when
	// offset+shift == u (mod TileWidth).
	shift := p.Width / 2
	if p.Anchor == dial.AnchorCenter {
		shift = 0
	}
	twelveHour := 2*p.TileWidth <= p.CycleSpan

	majorLen := p.Height * 35 / 100
	minorLen := p.Height * 20 / 100
	d := &font.Drawer{Dst: img, Src: image.NewUniform(pal.Text.NRGBA()), Face: basicfont.Face7x13}

	for m := 0; m < dial.MinutesPerDay; m += 15 {
		u := int(int64(m)*int64(p.CycleSpan)/dial.MinutesPerDay) + shift
		u = ((u % p.TileWidth) + p.TileWidth) % p.TileWidth
		if m%60 != 0 {
			fill(img, image.Rect(u, 0, u+1, minorLen), pal.Minor)
			continue
		}
		fill(img, image.Rect(u-1, 0, u+1, majorLen), pal.Major)

		hour := m / 60
		if twelveHour {
			hour %= 12
			if hour == 0 {
				hour = 12
			}
		}
		text := strconv.Itoa(hour)
		width := d.MeasureString(text).Ceil()
		d.Dot = fixed.P(u-width/2, majorLen+16)
		d.DrawString(text)
	}
	return img
}
