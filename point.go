package colorpick

// Point is a position on a rendering surface, in surface units with the
// origin at the top-left corner.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Size is the extent of a rendering surface. Sizes belong to the host UI;
// a Model only remembers the last one it was given.
type Size struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size. Negative extents become 0.
func Sz(w, h float64) Size {
	return Size{Width: nonNegative(w), Height: nonNegative(h)}
}

// Empty reports whether the size has no area.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Clamp restricts p to [0, Width] × [0, Height].
func (s Size) Clamp(p Point) Point {
	return Point{X: clampRange(p.X, s.Width), Y: clampRange(p.Y, s.Height)}
}

// Rect is an axis-aligned rectangle, closed on all edges.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r, edges included.
// A rectangle without area contains nothing.
func (r Rect) Contains(p Point) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// ratio returns v/extent, or 0 when the extent is not positive.
func ratio(v, extent float64) float64 {
	if extent <= 0 {
		return 0
	}
	return v / extent
}

// clampRange restricts v to [0, limit]; a non-positive limit yields 0.
func clampRange(v, limit float64) float64 {
	if v < 0 || limit <= 0 || v != v {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}

func nonNegative(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	return v
}
