package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-drift/daydial/pkg/graphics"
)

// Call is one recorded tree update.
type Call struct {
	Op    string // "frame" or "text"
	El    Element
	Frame graphics.Rect
	Text  string
}

func (c Call) String() string {
	if c.Op == "text" {
		return fmt.Sprintf("text %s %q", c.El, c.Text)
	}
	r := c.Frame
	return fmt.Sprintf("frame %s (%d,%d %dx%d)", c.El, r.Left, r.Top, r.Width(), r.Height())
}

// Recorder is a Tree that keeps the latest frame and text per element and
// a log of every call.
type Recorder struct {
	frames map[Element]graphics.Rect
	texts  map[Element]string
	calls  []Call
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		frames: make(map[Element]graphics.Rect),
		texts:  make(map[Element]string),
	}
}

// SetFrame records a frame update.
func (r *Recorder) SetFrame(el Element, frame graphics.Rect) {
	r.frames[el] = frame
	r.calls = append(r.calls, Call{Op: "frame", El: el, Frame: frame})
}

// SetText records a text update.
func (r *Recorder) SetText(el Element, text string) {
	r.texts[el] = text
	r.calls = append(r.calls, Call{Op: "text", El: el, Text: text})
}

// Frame returns the latest frame of el.
func (r *Recorder) Frame(el Element) (graphics.Rect, bool) {
	f, ok := r.frames[el]
	return f, ok
}

// Text returns the latest text of el.
func (r *Recorder) Text(el Element) string {
	return r.texts[el]
}

// Elements returns every element with a frame, tiles first in index order.
func (r *Recorder) Elements() []Element {
	out := make([]Element, 0, len(r.frames))
	for el := range r.frames {
		out = append(out, el)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Index < out[j].Index
	})
	return out
}

// Calls returns the call log.
func (r *Recorder) Calls() []Call {
	return r.calls
}

// CallsFor returns the logged calls that touched el.
func (r *Recorder) CallsFor(el Element) []Call {
	var out []Call
	for _, c := range r.calls {
		if c.El == el {
			out = append(out, c)
		}
	}
	return out
}

// Reset clears the call log but keeps the latest frames and texts.
func (r *Recorder) Reset() {
	r.calls = nil
}

// Dump formats the current frames and texts one element per line.
func (r *Recorder) Dump() string {
	var sb strings.Builder
	for _, el := range r.Elements() {
		sb.WriteString(Call{Op: "frame", El: el, Frame: r.frames[el]}.String())
		if text, ok := r.texts[el]; ok {
			fmt.Fprintf(&sb, " %q", text)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
