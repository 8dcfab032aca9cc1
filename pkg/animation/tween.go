package animation

import (
	"math"

	"github.com/go-drift/daydial/pkg/graphics"
)

// Tween interpolates between Begin and End values based on animation progress.
//
// Tween maps the 0-1 range of an [AnimationController] to another value
// range or type. [TweenRect] covers label frames; other types can supply
// their own Lerp.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp interpolates between Begin and End for progress t.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value using the controller's current value.
func (tw *Tween[T]) Transform(controller *AnimationController) T {
	return tw.Evaluate(controller.Value)
}

// LerpInt interpolates between two pixel coordinates, rounding to the
// nearest pixel. t = 0 and t = 1 return a and b exactly.
func LerpInt(a, b int, t float64) int {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return a + int(math.Round(float64(b-a)*t))
}

// LerpRect interpolates each edge of two rectangles.
func LerpRect(a, b graphics.Rect, t float64) graphics.Rect {
	return graphics.Rect{
		Left:   LerpInt(a.Left, b.Left, t),
		Top:    LerpInt(a.Top, b.Top, t),
		Right:  LerpInt(a.Right, b.Right, t),
		Bottom: LerpInt(a.Bottom, b.Bottom, t),
	}
}

// TweenRect creates a tween for frame rectangles.
func TweenRect(begin, end graphics.Rect) *Tween[graphics.Rect] {
	return &Tween[graphics.Rect]{
		Begin: begin,
		End:   end,
		Lerp:  LerpRect,
	}
}
