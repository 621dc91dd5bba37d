package colorpick

import (
	"fmt"
	"math"
)

// Readout is the value panel of a picker: the selected color written out in
// every supported space.
type Readout struct {
	Hex  string `json:"hex"`
	RGB  string `json:"rgb"`
	CMYK string `json:"cmyk"`
	HSV  string `json:"hsv"`
	HSL  string `json:"hsl"`
	Name string `json:"name"`
}

// ReadoutRow is one labelled line of a Readout.
type ReadoutRow struct {
	Label string
	Value string
}

// NewReadout formats c.
func NewReadout(c RGB) Readout {
	hsv := RGBToHSV(c)
	hsl := RGBToHSL(c)
	cmyk := RGBToCMYK(c)

	return Readout{
		Hex:  RGBToHex(c),
		RGB:  fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B),
		CMYK: fmt.Sprintf("%d%%, %d%%, %d%%, %d%%", cmyk.C, cmyk.M, cmyk.Y, cmyk.K),
		HSV: fmt.Sprintf("%d°, %d%%, %d%%",
			int(math.Round(hsv.H)), int(math.Round(hsv.S)), int(math.Round(hsv.V))),
		HSL:  fmt.Sprintf("%d°, %d%%, %d%%", hsl.H, hsl.S, hsl.L),
		Name: Name(c),
	}
}

// Rows returns the copyable lines in panel order.
func (r Readout) Rows() []ReadoutRow {
	return []ReadoutRow{
		{Label: "HEX", Value: r.Hex},
		{Label: "RGB", Value: r.RGB},
		{Label: "CMYK", Value: r.CMYK},
		{Label: "HSV", Value: r.HSV},
		{Label: "HSL", Value: r.HSL},
	}
}
