package colorpick

import (
	"image/color"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

// Verify at compile time that the picker types implement color.Color.
var (
	_ color.Color = RGB{}
	_ color.Color = HSV{}
	_ color.Color = HSL{}
	_ color.Color = CMYK{}
	_ color.Color = Color{}
)

const hsvEpsilon = 1e-9

func hsvEqual(a, b HSV) bool {
	return math.Abs(a.H-b.H) < hsvEpsilon &&
		math.Abs(a.S-b.S) < hsvEpsilon &&
		math.Abs(a.V-b.V) < hsvEpsilon
}

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want HSV
	}{
		{"red", RGB{255, 0, 0}, HSV{0, 100, 100}},
		{"black", RGB{0, 0, 0}, HSV{0, 0, 0}},
		{"white", RGB{255, 255, 255}, HSV{0, 0, 100}},
		{"green", RGB{0, 255, 0}, HSV{120, 100, 100}},
		{"blue", RGB{0, 0, 255}, HSV{240, 100, 100}},
		{"yellow tie r and g", RGB{255, 255, 0}, HSV{60, 100, 100}},
		{"magenta tie r and b", RGB{255, 0, 255}, HSV{300, 100, 100}},
		{"cyan tie g and b", RGB{0, 255, 255}, HSV{180, 100, 100}},
		{"half red", RGB{128, 0, 0}, HSV{0, 100, 128.0 / 255 * 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSV(tt.in)
			if !hsvEqual(got, tt.want) {
				t.Errorf("RGBToHSV(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBToHSVHueRange(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 5 {
				hsv := RGBToHSV(NewRGB(r, g, b))
				if hsv.H < 0 || hsv.H >= 360 {
					t.Fatalf("RGBToHSV(%d,%d,%d).H = %v, want [0,360)", r, g, b, hsv.H)
				}
				if hsv.S < 0 || hsv.S > 100 || hsv.V < 0 || hsv.V > 100 {
					t.Fatalf("RGBToHSV(%d,%d,%d) = %+v out of range", r, g, b, hsv)
				}
			}
		}
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want HSL
	}{
		{"white", RGB{255, 255, 255}, HSL{0, 0, 100}},
		{"black", RGB{0, 0, 0}, HSL{0, 0, 0}},
		{"red", RGB{255, 0, 0}, HSL{0, 100, 50}},
		{"gray", RGB{128, 128, 128}, HSL{0, 0, 50}},
		{"preset blue", RGB{0x33, 0x57, 0xff}, HSL{229, 100, 60}},
		{"dark teal", RGB{0, 128, 128}, HSL{180, 100, 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBToHSL(tt.in); got != tt.want {
				t.Errorf("RGBToHSL(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBToCMYK(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want CMYK
	}{
		{"black", RGB{0, 0, 0}, CMYK{0, 0, 0, 100}},
		{"white", RGB{255, 255, 255}, CMYK{0, 0, 0, 0}},
		{"red", RGB{255, 0, 0}, CMYK{0, 100, 100, 0}},
		{"gray", RGB{128, 128, 128}, CMYK{0, 0, 0, 50}},
		{"preset red", RGB{0xff, 0x57, 0x33}, CMYK{0, 66, 80, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBToCMYK(tt.in); got != tt.want {
				t.Errorf("RGBToCMYK(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHueColor(t *testing.T) {
	tests := []struct {
		hue  float64
		want RGB
	}{
		{0, RGB{255, 0, 0}},
		{60, RGB{255, 255, 0}},
		{120, RGB{0, 255, 0}},
		{180, RGB{0, 255, 255}},
		{240, RGB{0, 0, 255}},
		{300, RGB{255, 0, 255}},
		{360, RGB{255, 0, 0}},
		{-60, RGB{255, 0, 255}},
		{30, RGB{255, 128, 0}},
	}

	for _, tt := range tests {
		if got := HueColor(tt.hue); got != tt.want {
			t.Errorf("HueColor(%v) = %v, want %v", tt.hue, got, tt.want)
		}
	}
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		name string
		in   HSV
		want RGB
	}{
		{"black", HSV{0, 0, 0}, RGB{0, 0, 0}},
		{"white", HSV{123, 0, 100}, RGB{255, 255, 255}},
		{"half value", HSV{0, 0, 50}, RGB{128, 128, 128}},
		{"steel", HSV{210, 50, 80}, RGB{102, 153, 204}},
		{"wraps hue", HSV{480, 100, 100}, RGB{0, 255, 0}},
		{"tiny negative hue", HSV{-1e-20, 100, 100}, RGB{255, 0, 0}},
		{"clamps s and v", HSV{0, 150, -20}, RGB{0, 0, 0}},
		{"clamps v above", HSV{240, 100, 250}, RGB{0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSVToRGB(tt.in); got != tt.want {
				t.Errorf("HSVToRGB(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHSLRendersRGB(t *testing.T) {
	tests := []struct {
		in   HSL
		want RGB
	}{
		{HSL{0, 100, 50}, RGB{255, 0, 0}},
		{HSL{120, 100, 25}, RGB{0, 128, 0}},
		{HSL{240, 100, 50}, RGB{0, 0, 255}},
		{HSL{0, 0, 100}, RGB{255, 255, 255}},
		{HSL{77, 0, 0}, RGB{0, 0, 0}},
		{HSL{420, 100, 50}, RGB{255, 255, 0}},
	}

	for _, tt := range tests {
		if got := RGBModel.Convert(tt.in); got != tt.want {
			t.Errorf("HSL%+v renders %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				in := NewRGB(r, g, b)
				if got := HSVToRGB(RGBToHSV(in)); got != in {
					t.Fatalf("HSVToRGB(RGBToHSV(%v)) = %v", in, got)
				}
			}
		}
	}
}

func TestNewRGBClamps(t *testing.T) {
	if got := NewRGB(-10, 300, 128); got != (RGB{0, 255, 128}) {
		t.Errorf("NewRGB(-10, 300, 128) = %v, want {0 255 128}", got)
	}
}

func TestColorModels(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}

	if got := RGBModel.Convert(red); got != (RGB{255, 0, 0}) {
		t.Errorf("RGBModel.Convert = %v", got)
	}
	if got := HSVModel.Convert(red).(HSV); !hsvEqual(got, HSV{0, 100, 100}) {
		t.Errorf("HSVModel.Convert = %+v", got)
	}
	if got := HSLModel.Convert(red); got != (HSL{0, 100, 50}) {
		t.Errorf("HSLModel.Convert = %v", got)
	}
	if got := CMYKModel.Convert(red); got != (CMYK{0, 100, 100, 0}) {
		t.Errorf("CMYKModel.Convert = %v", got)
	}

	// Values already in the model pass through unchanged.
	in := HSV{H: 12.5, S: 33, V: 44}
	if got := HSVModel.Convert(in); got != in {
		t.Errorf("HSVModel.Convert(HSV) = %v, want %v", got, in)
	}
}

func TestDerivedColorsRenderBack(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
	}{
		{"hsl", HSL{0, 100, 50}},
		{"cmyk", CMYK{0, 100, 100, 0}},
		{"hsv", HSV{0, 100, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want opaque red", r, g, b, a)
			}
		})
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color{R: 1, G: 0, B: 0, A: 0.5}.RGBA()
	if r != 32768 || g != 0 || b != 0 || a != 32768 {
		t.Errorf("RGBA() = (%d, %d, %d, %d), want premultiplied half red", r, g, b, a)
	}
}

func TestColorRGBRounding(t *testing.T) {
	// 0.5*255 = 127.5 rounds half away from zero.
	if got := (Color{R: 0.5, G: 1.5, B: -1, A: 1}).RGB(); got != (RGB{128, 255, 0}) {
		t.Errorf("RGB() = %v, want {128 255 0}", got)
	}
}

func TestRGBToHSV_MatchesColorful(t *testing.T) {
	for _, c := range []RGB{
		{255, 87, 51}, {51, 255, 87}, {51, 87, 255}, {255, 51, 245},
		{245, 183, 0}, {139, 51, 255}, {12, 200, 199}, {128, 128, 128},
	} {
		got := RGBToHSV(c)
		h, s, v := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hsv()
		if math.Abs(got.H-h) > 1e-6 || math.Abs(got.S-s*100) > 1e-6 || math.Abs(got.V-v*100) > 1e-6 {
			t.Errorf("RGBToHSV(%v) = %+v, colorful gives (%v, %v, %v)", c, got, h, s*100, v*100)
		}
	}
}
