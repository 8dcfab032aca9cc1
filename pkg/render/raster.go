package render

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/daydial/pkg/dial"
	"github.com/go-drift/daydial/pkg/graphics"
)

// Palette holds the colours a Raster paints with.
type Palette struct {
	Background graphics.Color
	Needle     graphics.Color
	LabelFill  graphics.Color
	LabelText  graphics.Color
}

// DefaultPalette is a black screen with an orange needle and a white on
// black date label.
var DefaultPalette = Palette{
	Background: graphics.ColorBlack,
	Needle:     graphics.ColorOrange,
	LabelFill:  graphics.ColorBlack,
	LabelText:  graphics.ColorWhite,
}

// Raster is a Tree that composites the dial into an RGBA image. Tiles are
// painted first, then the needle, then the label, matching the layer order
// of the watch face.
type Raster struct {
	Palette Palette

	size   graphics.Size
	round  bool
	tile   image.Image
	face   font.Face
	frames map[Element]graphics.Rect
	texts  map[Element]string
}

// NewRaster returns a raster sized for p that paints tile for every
// background tile element.
func NewRaster(p dial.ScreenProfile, tile image.Image) *Raster {
	return &Raster{
		Palette: DefaultPalette,
		size:    graphics.Size{Width: p.Width, Height: p.Height},
		round:   p.Shape == dial.ShapeRound,
		tile:    tile,
		face:    basicfont.Face7x13,
		frames:  make(map[Element]graphics.Rect),
		texts:   make(map[Element]string),
	}
}

// SetFrame positions an element.
func (r *Raster) SetFrame(el Element, frame graphics.Rect) {
	r.frames[el] = frame
}

// SetText sets an element's text.
func (r *Raster) SetText(el Element, text string) {
	r.texts[el] = text
}

// Size returns the screen size in pixels.
func (r *Raster) Size() graphics.Size {
	return r.size
}

// Render composites the current tree into a new image.
func (r *Raster) Render() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, r.size.Width, r.size.Height))
	fill(dst, dst.Bounds(), r.Palette.Background)

	var needle, label *graphics.Rect
	for el, frame := range r.frames {
		switch el.Kind {
		case ElementTile:
			if r.tile != nil {
				draw.Draw(dst, toImageRect(frame), r.tile, r.tile.Bounds().Min, draw.Over)
			}
		case ElementNeedle:
			needle = &frame
		case ElementLabel:
			label = &frame
		}
	}
	if needle != nil {
		fill(dst, toImageRect(*needle), r.Palette.Needle)
	}
	if label != nil {
		box := toImageRect(*label)
		fill(dst, box, r.Palette.LabelFill)
		r.drawText(dst, box, r.texts[Label], r.Palette.LabelText)
	}
	if r.round {
		maskRound(dst, r.Palette.Background)
	}
	return dst
}

func (r *Raster) drawText(dst *image.RGBA, box image.Rectangle, text string, c graphics.Color) {
	clip := box.Intersect(dst.Bounds())
	if text == "" || clip.Empty() {
		return
	}
	d := &font.Drawer{
		Dst:  dst.SubImage(clip).(*image.RGBA),
		Src:  image.NewUniform(c.NRGBA()),
		Face: r.face,
	}
	m := r.face.Metrics()
	width := d.MeasureString(text).Ceil()
	height := (m.Ascent + m.Descent).Ceil()
	x := box.Min.X + (box.Dx()-width)/2
	y := box.Min.Y + (box.Dy()-height)/2 + m.Ascent.Ceil()
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}

// Scale returns img enlarged by an integer factor with nearest-neighbour
// sampling, keeping pixel edges crisp.
func Scale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func toImageRect(r graphics.Rect) image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom)
}

func fill(dst draw.Image, r image.Rectangle, c graphics.Color) {
	draw.Draw(dst, r, image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// maskRound paints everything outside the inscribed circle with c.
func maskRound(dst *image.RGBA, c graphics.Color) {
	b := dst.Bounds()
	cx, cy := b.Dx()/2, b.Dy()/2
	radius := min(cx, cy)
	col := c.NRGBA()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > radius*radius {
				dst.Set(x, y, col)
			}
		}
	}
}
