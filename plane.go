package colorpick

import (
	"errors"

	"github.com/crayonbox/colorpick/internal/blend"
)

// ErrEmptySurface is returned when a surface without area is encoded.
var ErrEmptySurface = errors.New("colorpick: empty surface")

// Plane is the saturation/value selection surface for one hue.
//
// Its background is a three-layer composite:
//  1. the left half is filled with the pure hue,
//  2. the right half blends horizontally from the pure hue to black,
//  3. a vertical blend from opaque white to transparent white covers it all.
//
// Layers hands this recipe to a host that paints the plane itself; ColorAt,
// Sample and Render evaluate the same recipe, so a repaint can never disagree
// with the color read back at a point.
type Plane struct {
	Hue  float64
	Size Size
}

// NewPlane creates the plane for hue at the given size.
func NewPlane(hue float64, size Size) Plane {
	return Plane{Hue: hue, Size: Sz(size.Width, size.Height)}
}

// Layer is one paint step of the plane recipe: fill Rect with Gradient,
// composited source-over onto the layers before it.
type Layer struct {
	Rect     Rect
	Gradient *LinearGradient
}

// Layers returns the paint recipe, bottom layer first.
func (p Plane) Layers() []Layer {
	w, h := p.Size.Width, p.Size.Height
	hue := HueColor(p.Hue).Color()

	return []Layer{
		{
			Rect: Rect{X: 0, Y: 0, W: w / 2, H: h},
			Gradient: NewLinearGradient(0, 0, w/2, 0).
				AddColorStop(0, hue).
				AddColorStop(1, hue),
		},
		{
			Rect: Rect{X: w / 2, Y: 0, W: w / 2, H: h},
			Gradient: NewLinearGradient(w/2, 0, w, 0).
				AddColorStop(0, hue).
				AddColorStop(1, Black),
		},
		{
			Rect: Rect{X: 0, Y: 0, W: w, H: h},
			Gradient: NewLinearGradient(0, 0, 0, h).
				AddColorStop(0, White).
				AddColorStop(1, White.WithAlpha(0)),
		},
	}
}

// ColorAt returns the composited color at pt without clamping. Points outside
// the plane are Transparent.
func (p Plane) ColorAt(pt Point) Color {
	return flatten(p.Layers(), pt)
}

// Sample clamps pt to the plane and returns the 8-bit color painted there.
// A plane without area paints nothing and samples as black.
func (p Plane) Sample(pt Point) RGB {
	c := p.ColorAt(p.Size.Clamp(pt))
	if c.A == 0 {
		return RGB{}
	}
	return c.RGB()
}

// Render rasterizes the plane into a width×height pixmap. Each pixel holds
// the plane color at its center, scaled to the plane size, so at native size
// pixel (i, j) equals Sample(Pt(i+0.5, j+0.5)).
func (p Plane) Render(width, height int) *Pixmap {
	pm := NewPixmap(width, height)
	if p.Size.Empty() {
		return pm
	}

	layers := p.Layers()
	sx := p.Size.Width / float64(pm.Width())
	sy := p.Size.Height / float64(pm.Height())
	for j := 0; j < pm.Height(); j++ {
		y := (float64(j) + 0.5) * sy
		for i := 0; i < pm.Width(); i++ {
			pm.SetPixel(i, j, flatten(layers, Pt((float64(i)+0.5)*sx, y)))
		}
	}
	return pm
}

// Position returns where c sits on the plane, the inverse of Sample. The
// plane hue is assumed to be c's hue.
//
// The flat left half makes the inverse ambiguous for full-strength colors;
// Position picks the boundary x = Width/2. White maps to the top-left corner.
func (p Plane) Position(c RGB) Point {
	if p.Size.Empty() {
		return Point{}
	}

	f := c.Color()
	hi := max(f.R, f.G, f.B)
	lo := min(f.R, f.G, f.B)

	// Composite channel = hue*shade*(y/H) + (1 - y/H), and the pure hue
	// always has one channel at 0 and one at 1, so lo fixes y and hi-lo
	// fixes the horizontal shade.
	fy := 1 - lo
	if fy <= 0 {
		return Point{}
	}
	shade := clampUnit((hi - lo) / fy)

	return p.Size.Clamp(Point{
		X: p.Size.Width * (1 - shade/2),
		Y: p.Size.Height * fy,
	})
}

// flatten composites the layers covering pt, bottom first.
func flatten(layers []Layer, pt Point) Color {
	var dst Color
	for _, l := range layers {
		if !l.Rect.Contains(pt) {
			continue
		}
		src := l.Gradient.ColorAt(pt.X, pt.Y)
		dst.R, dst.G, dst.B, dst.A = blend.SourceOver(
			src.R, src.G, src.B, src.A,
			dst.R, dst.G, dst.B, dst.A,
		)
	}
	return dst
}
