package colorpick

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque 8-bit color. It is the canonical representation held by
// a Model; every other color space is derived from it on demand.
type RGB struct {
	R, G, B uint8
}

// NewRGB creates an RGB color, clamping each channel to [0, 255].
func NewRGB(r, g, b int) RGB {
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// RGBA implements the color.Color interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Color returns c as an opaque float color.
func (c RGB) Color() Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: 1,
	}
}

// Hex returns c as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return RGBToHex(c)
}

// HSV is a color in the hue/saturation/value space.
// H is in degrees [0, 360), S and V are percentages [0, 100].
type HSV struct {
	H, S, V float64
}

// RGBA implements the color.Color interface.
func (c HSV) RGBA() (r, g, b, a uint32) {
	return HSVToRGB(c).RGBA()
}

// HSL is a color in the hue/saturation/lightness space, rounded to integers.
// H is in degrees [0, 360), S and L are percentages [0, 100].
type HSL struct {
	H, S, L int
}

// RGBA implements the color.Color interface.
func (c HSL) RGBA() (r, g, b, a uint32) {
	h := wrapHue(float64(c.H))
	s := clampUnit(float64(c.S) / 100)
	l := clampUnit(float64(c.L) / 100)
	return fromColorful(colorful.Hsl(h, s, l)).RGBA()
}

// CMYK is a color as integer ink percentages [0, 100].
type CMYK struct {
	C, M, Y, K int
}

// RGBA implements the color.Color interface.
func (c CMYK) RGBA() (r, g, b, a uint32) {
	k := 1 - float64(c.K)/100
	return RGB{
		R: quantize((1 - float64(c.C)/100) * k),
		G: quantize((1 - float64(c.M)/100) * k),
		B: quantize((1 - float64(c.Y)/100) * k),
	}.RGBA()
}

// Color models for the picker color spaces, in the manner of image/color.
var (
	RGBModel  = color.ModelFunc(rgbModel)
	HSVModel  = color.ModelFunc(hsvModel)
	HSLModel  = color.ModelFunc(hslModel)
	CMYKModel = color.ModelFunc(cmykModel)
)

func toRGB(c color.Color) RGB {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

func rgbModel(c color.Color) color.Color {
	return toRGB(c)
}

func hsvModel(c color.Color) color.Color {
	if _, ok := c.(HSV); ok {
		return c
	}
	return RGBToHSV(toRGB(c))
}

func hslModel(c color.Color) color.Color {
	if _, ok := c.(HSL); ok {
		return c
	}
	return RGBToHSL(toRGB(c))
}

func cmykModel(c color.Color) color.Color {
	if _, ok := c.(CMYK); ok {
		return c
	}
	return RGBToCMYK(toRGB(c))
}

// RGBToHSV converts an RGB color to HSV.
//
// Hue is 0 for achromatic colors. When two channels tie for the maximum the
// first of r, g, b wins.
func RGBToHSV(c RGB) HSV {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	d := maxC - minC

	var h, s float64
	if maxC != 0 {
		s = d / maxC
	}
	if maxC != minC {
		h = hueSector(r, g, b, maxC, d)
	}

	return HSV{H: h * 360, S: s * 100, V: maxC * 100}
}

// RGBToHSL converts an RGB color to HSL with every component rounded.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	var h, s float64
	if maxC != minC {
		d := maxC - minC
		if l > 0.5 {
			s = d / (2 - maxC - minC)
		} else {
			s = d / (maxC + minC)
		}
		h = hueSector(r, g, b, maxC, d)
	}

	return HSL{
		H: int(math.Round(h * 360)),
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// hueSector returns hue as a fraction of a full turn. d must be non-zero.
func hueSector(r, g, b, maxC, d float64) float64 {
	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	return h / 6
}

// RGBToCMYK converts an RGB color to integer CMYK percentages.
// Pure black maps to {0, 0, 0, 100}.
func RGBToCMYK(c RGB) CMYK {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return CMYK{K: 100}
	}

	cy := 1 - float64(c.R)/255
	mg := 1 - float64(c.G)/255
	ye := 1 - float64(c.B)/255
	k := math.Min(cy, math.Min(mg, ye))

	return CMYK{
		C: inkPercent(cy, k),
		M: inkPercent(mg, k),
		Y: inkPercent(ye, k),
		K: int(math.Round(k * 100)),
	}
}

// inkPercent renormalizes one ink channel against black; 0/0 yields 0.
func inkPercent(ch, k float64) int {
	if k >= 1 {
		return 0
	}
	v := math.Round((ch - k) / (1 - k) * 100)
	if math.IsNaN(v) {
		return 0
	}
	return int(v)
}

// HSVToRGB converts an HSV color to RGB. Hue wraps modulo 360; S and V are
// clamped to [0, 100].
func HSVToRGB(c HSV) RGB {
	return fromColorful(colorful.Hsv(wrapHue(c.H), clampUnit(c.S/100), clampUnit(c.V/100)))
}

// HueColor returns the fully saturated color of hue h, the same color as
// CSS hsl(h, 100%, 50%).
func HueColor(h float64) RGB {
	return HSVToRGB(HSV{H: h, S: 100, V: 100})
}

// wrapHue maps h into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Color is a straight-alpha color with components in [0, 1].
// It is the paint type of gradient stops and plane layers.
type Color struct {
	R, G, B, A float64
}

// Common paints.
var (
	Transparent = Color{}
	Black       = Color{A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
)

// RGBA implements the color.Color interface (alpha-premultiplied).
func (c Color) RGBA() (r, g, b, a uint32) {
	al := clampUnit(c.A)
	r = uint32(math.Round(clampUnit(c.R) * al * 0xffff))
	g = uint32(math.Round(clampUnit(c.G) * al * 0xffff))
	b = uint32(math.Round(clampUnit(c.B) * al * 0xffff))
	a = uint32(math.Round(al * 0xffff))
	return r, g, b, a
}

// RGB drops alpha and quantizes to 8 bits, rounding half away from zero.
func (c Color) RGB() RGB {
	return RGB{R: quantize(c.R), G: quantize(c.G), B: quantize(c.B)}
}

// WithAlpha returns c with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Lerp performs linear interpolation between two colors in sRGB space.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

func quantize(x float64) uint8 {
	return uint8(math.Round(clampUnit(x) * 255))
}

func clampUnit(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
