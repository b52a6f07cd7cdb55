package section

import "math"

// Rect is a vertical extent in document coordinates.
type Rect struct {
	Top    float64
	Height float64
}

// Bottom returns the first coordinate below r.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// IntersectionRatio returns the fraction of el that lies inside view, in
// [0, 1]. Elements with no height never intersect.
func IntersectionRatio(el, view Rect) float64 {
	if el.Height <= 0 {
		return 0
	}
	top := math.Max(el.Top, view.Top)
	bottom := math.Min(el.Bottom(), view.Bottom())
	if bottom <= top {
		return 0
	}
	return math.Min(1, (bottom-top)/el.Height)
}

// SmoothPath returns the scroll positions of an eased scroll from one offset
// to another, ending exactly at to. steps below 1 yield a single jump.
func SmoothPath(from, to float64, steps int) []float64 {
	if steps < 1 {
		steps = 1
	}
	path := make([]float64, steps)
	for i := 1; i <= steps; i++ {
		p := easeInOutCubic(float64(i) / float64(steps))
		path[i-1] = from + (to-from)*p
	}
	path[steps-1] = to
	return path
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}
