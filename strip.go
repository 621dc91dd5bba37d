package colorpick

import "math"

// MaxHue is the largest hue a strip offset maps to. Hue stays strictly below
// 360 so the far end of the strip is still monotonic with the rest of it.
var MaxHue = math.Nextafter(360, 0)

// hueStops are the strip colors at k/6, red through magenta back to red.
var hueStops = []RGB{
	{R: 255, G: 0, B: 0},
	{R: 255, G: 255, B: 0},
	{R: 0, G: 255, B: 0},
	{R: 0, G: 255, B: 255},
	{R: 0, G: 0, B: 255},
	{R: 255, G: 0, B: 255},
	{R: 255, G: 0, B: 0},
}

// HueStrip is the 1-D hue selection control of the given width.
type HueStrip struct {
	Width float64
}

// Gradient returns the horizontal paint recipe of the strip.
func (s HueStrip) Gradient() *LinearGradient {
	g := NewLinearGradient(0, 0, s.Width, 0)
	for i, c := range hueStops {
		g.AddColorStop(float64(i)/float64(len(hueStops)-1), c.Color())
	}
	return g
}

// ColorAt returns the strip color at offset x.
func (s HueStrip) ColorAt(x float64) Color {
	if s.Width <= 0 {
		return Transparent
	}
	return s.Gradient().ColorAt(clampRange(x, s.Width), 0)
}

// Render rasterizes the strip into a width×height pixmap, one gradient
// sample per column center scaled to the strip width.
func (s HueStrip) Render(width, height int) *Pixmap {
	pm := NewPixmap(width, height)
	if s.Width <= 0 {
		return pm
	}

	g := s.Gradient()
	sx := s.Width / float64(pm.Width())
	for i := 0; i < pm.Width(); i++ {
		c := g.ColorAt((float64(i)+0.5)*sx, 0)
		for j := 0; j < pm.Height(); j++ {
			pm.SetPixel(i, j, c)
		}
	}
	return pm
}

// HueAt maps a strip offset to a hue in [0, 360). The offset is clamped to
// [0, Width]; a strip without width maps everything to 0.
func (s HueStrip) HueAt(offset float64) float64 {
	h := ratio(clampRange(offset, s.Width), s.Width) * 360
	return math.Min(h, MaxHue)
}

// OffsetFor maps a hue to the strip offset of its handle.
func (s HueStrip) OffsetFor(hue float64) float64 {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	return clampRange(hue/360*s.Width, s.Width)
}
