package render

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/go-drift/daydial/pkg/dial"
	"github.com/go-drift/daydial/pkg/errors"
)

// LoadBackground decodes a PNG, JPEG, BMP or WebP tile image from path.
func LoadBackground(path string) (image.Image, error) {
	const op = "render.LoadBackground"
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(op, errors.KindRender, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.New(op, errors.KindRender, fmt.Errorf("decode %s: %w", path, err))
	}
	return img, nil
}

// Background returns the tile artwork for p: the image at path when set,
// otherwise a generated DialStrip.
func Background(p dial.ScreenProfile, path string) (image.Image, error) {
	if path == "" {
		return DialStrip(p, DefaultStripPalette), nil
	}
	img, err := LoadBackground(path)
	if err != nil {
		return nil, err
	}
	if got := img.Bounds().Dx(); got != p.TileWidth {
		return nil, errors.Errorf("render.Background", errors.KindConfig,
			"background %s is %dpx wide, profile %q expects %dpx tiles", path, got, p.Name, p.TileWidth)
	}
	return img, nil
}
