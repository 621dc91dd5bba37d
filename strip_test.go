package colorpick

import "testing"

func TestHueStrip_HueAt(t *testing.T) {
	s := HueStrip{Width: 300}

	tests := []struct {
		name   string
		offset float64
		want   float64
	}{
		{"start", 0, 0},
		{"middle", 150, 180},
		{"before start clamps", -20, 0},
		{"far end stays below 360", 300, MaxHue},
		{"past end clamps", 900, MaxHue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.HueAt(tt.offset); got != tt.want {
				t.Errorf("HueAt(%v) = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestHueStrip_HueAtMonotonic(t *testing.T) {
	for _, width := range []float64{1, 37, 300, 1024} {
		s := HueStrip{Width: width}
		prev := -1.0
		for o := 0.0; o <= width; o += width / 997 {
			h := s.HueAt(o)
			if h < 0 || h >= 360 {
				t.Fatalf("width %v: HueAt(%v) = %v, want [0,360)", width, o, h)
			}
			if h < prev {
				t.Fatalf("width %v: HueAt(%v) = %v decreased from %v", width, o, h, prev)
			}
			prev = h
		}
		if h := s.HueAt(width); h < prev || h >= 360 {
			t.Fatalf("width %v: HueAt(width) = %v", width, h)
		}
	}
}

func TestHueStrip_ZeroWidth(t *testing.T) {
	s := HueStrip{}
	if got := s.HueAt(10); got != 0 {
		t.Errorf("HueAt on zero width = %v, want 0", got)
	}
	if got := s.OffsetFor(200); got != 0 {
		t.Errorf("OffsetFor on zero width = %v, want 0", got)
	}
	if got := s.ColorAt(0); got != Transparent {
		t.Errorf("ColorAt on zero width = %+v, want Transparent", got)
	}
}

func TestHueStrip_OffsetFor(t *testing.T) {
	s := HueStrip{Width: 360}
	tests := []struct {
		hue  float64
		want float64
	}{
		{0, 0},
		{180, 180},
		{-90, 270},
		{450, 90},
	}
	for _, tt := range tests {
		if got := s.OffsetFor(tt.hue); got != tt.want {
			t.Errorf("OffsetFor(%v) = %v, want %v", tt.hue, got, tt.want)
		}
	}
}

func TestHueStrip_ColorAt(t *testing.T) {
	s := HueStrip{Width: 600}
	tests := []struct {
		x    float64
		want RGB
	}{
		{0, RGB{255, 0, 0}},
		{100, RGB{255, 255, 0}},
		{200, RGB{0, 255, 0}},
		{300, RGB{0, 255, 255}},
		{400, RGB{0, 0, 255}},
		{500, RGB{255, 0, 255}},
		{600, RGB{255, 0, 0}},
		{50, RGB{255, 128, 0}},
	}
	for _, tt := range tests {
		got := s.ColorAt(tt.x)
		if !colorsEqual(got, tt.want.Color(), gradientEpsilon) {
			t.Errorf("ColorAt(%v) = %+v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestHueStrip_Render(t *testing.T) {
	s := HueStrip{Width: 6}
	pm := s.Render(6, 2)
	for i := 0; i < 6; i++ {
		top, bottom := pm.RGBAt(i, 0), pm.RGBAt(i, 1)
		if top != bottom {
			t.Errorf("column %d differs between rows: %v vs %v", i, top, bottom)
		}
		want := s.ColorAt(float64(i) + 0.5).RGB()
		if top != want {
			t.Errorf("column %d = %v, want %v", i, top, want)
		}
	}
}
