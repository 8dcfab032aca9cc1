// Package render defines the render tree the dial draws into and ships two
// implementations: a Recorder for tests and hosts that diff frames, and a
// Raster that composites the dial into an image.
package render

import (
	"fmt"

	"github.com/go-drift/daydial/pkg/graphics"
)

// ElementKind identifies what an element draws.
type ElementKind int

const (
	// ElementTile is one background tile of the scrolling strip.
	ElementTile ElementKind = iota
	// ElementNeedle is the fixed time marker.
	ElementNeedle
	// ElementLabel is the date label.
	ElementLabel
)

func (k ElementKind) String() string {
	switch k {
	case ElementTile:
		return "tile"
	case ElementNeedle:
		return "needle"
	case ElementLabel:
		return "label"
	default:
		return fmt.Sprintf("ElementKind(%d)", int(k))
	}
}

// Element addresses one visual element in the tree. Index distinguishes
// tiles and is zero for the needle and label.
type Element struct {
	Kind  ElementKind
	Index int
}

// Tile returns the element for background tile i.
func Tile(i int) Element { return Element{Kind: ElementTile, Index: i} }

var (
	// Needle is the fixed marker element.
	Needle = Element{Kind: ElementNeedle}
	// Label is the date label element.
	Label = Element{Kind: ElementLabel}
)

func (e Element) String() string {
	if e.Kind == ElementTile {
		return fmt.Sprintf("tile[%d]", e.Index)
	}
	return e.Kind.String()
}

// Tree receives positioning and text updates. The dial only writes to the
// tree; it never reads frames back.
type Tree interface {
	SetFrame(el Element, r graphics.Rect)
	SetText(el Element, text string)
}
