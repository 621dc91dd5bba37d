package colorpick

import "testing"

func TestPresets(t *testing.T) {
	if len(Presets) != 7 {
		t.Fatalf("len(Presets) = %d, want 7", len(Presets))
	}
	for _, p := range Presets {
		if norm, err := NormalizeHex(p.Hex); !IsHex(p.Hex) || err != nil || norm != p.Hex {
			t.Errorf("preset %s has non-canonical hex %q", p.Label, p.Hex)
		}
	}
}

func TestRainbow_Deterministic(t *testing.T) {
	a := NewRainbow(7).Colors(50, "#123456")
	b := NewRainbow(7).Colors(50, "#123456")
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded rainbows differ at %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestRainbow_Colors(t *testing.T) {
	const n = 10000
	const current = "#123456"

	valid := map[string]bool{current: true}
	for _, p := range Presets {
		valid[p.Hex] = true
	}

	colors := NewRainbow(42).Colors(n, current)
	if len(colors) != n {
		t.Fatalf("len(Colors()) = %d, want %d", len(colors), n)
	}

	kept := 0
	for _, c := range colors {
		if !valid[c] {
			t.Fatalf("unexpected rainbow color %q", c)
		}
		if c == current {
			kept++
		}
	}
	if frac := float64(kept) / n; frac < 0.25 || frac > 0.35 {
		t.Errorf("current color fraction = %.3f, want about 0.3", frac)
	}
}

func TestRainbow_NonPositive(t *testing.T) {
	if got := NewRainbow(1).Colors(-3, "#000000"); len(got) != 0 {
		t.Errorf("Colors(-3) = %v, want empty", got)
	}
}
