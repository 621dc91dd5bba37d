package colorpick

import (
	"sort"
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  Color   // Color at this position
}

// LinearGradient is a color transition between two points, the same shape a
// canvas linear gradient has. Stops are interpolated in sRGB space and the
// edge colors extend beyond the ends.
//
// Example:
//
//	g := colorpick.NewLinearGradient(0, 0, 100, 0).
//	    AddColorStop(0, colorpick.White).
//	    AddColorStop(1, colorpick.Black)
//	c := g.ColorAt(50, 0) // mid gray
type LinearGradient struct {
	Start Point       // Start point of the gradient
	End   Point       // End point of the gradient
	Stops []ColorStop // Color stops defining the gradient
}

// NewLinearGradient creates a new linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{
		Start: Point{X: x0, Y: y0},
		End:   Point{X: x1, Y: y1},
	}
}

// AddColorStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (g *LinearGradient) AddColorStop(offset float64, c Color) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// ColorAt returns the color at the given point.
func (g *LinearGradient) ColorAt(x, y float64) Color {
	d := g.End.Sub(g.Start)
	lengthSq := d.LengthSquared()
	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	// Project point onto the gradient line
	// t = dot(P - Start, End - Start) / |End - Start|^2
	t := Pt(x, y).Sub(g.Start).Dot(d) / lengthSq

	return colorAtOffset(g.Stops, t)
}

// sortStops returns a copy of stops ordered by offset.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// firstStopColor returns the lowest-offset stop's color or Transparent if empty.
func firstStopColor(stops []ColorStop) Color {
	if len(stops) == 0 {
		return Transparent
	}
	return sortStops(stops)[0].Color
}

// colorAtOffset returns the interpolated color at offset t, padding the edge
// colors outside [0, 1].
func colorAtOffset(stops []ColorStop, t float64) Color {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = clampUnit(t)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return stop1.Color.Lerp(stop2.Color, localT)
}
