package colorpick

import "math/rand/v2"

// Swatch is a named preset color.
type Swatch struct {
	Hex   string `json:"hex"`
	Label string `json:"label"`
}

// Presets are the quick-pick swatches shown next to the custom picker.
var Presets = []Swatch{
	{Hex: "#ff5733", Label: "Red"},
	{Hex: "#33ff57", Label: "Green"},
	{Hex: "#3357ff", Label: "Blue"},
	{Hex: "#ff33f5", Label: "Pink"},
	{Hex: "#f5b700", Label: "Yellow"},
	{Hex: "#8b33ff", Label: "Purple"},
	{Hex: "#000000", Label: "Black"},
}

// rainbowKeepCurrent is the chance a rainbow letter reuses the current color.
const rainbowKeepCurrent = 0.3

// Rainbow picks per-letter colors for rainbow mode: usually a random preset,
// sometimes the color currently selected in the picker.
type Rainbow struct {
	rng *rand.Rand
}

// NewRainbow creates a Rainbow with a deterministic seed.
func NewRainbow(seed uint64) *Rainbow {
	return &Rainbow{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next returns the color for one new letter.
func (r *Rainbow) Next(current string) string {
	if r.rng.Float64() < rainbowKeepCurrent {
		return current
	}
	return Presets[r.rng.IntN(len(Presets))].Hex
}

// Colors returns n letter colors.
func (r *Rainbow) Colors(n int, current string) []string {
	out := make([]string, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, r.Next(current))
	}
	return out
}
