package colorpick

import (
	"math"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

type namedColor struct {
	name string
	rgb  RGB
	lab  colorful.Color
}

var (
	namesOnce   sync.Once
	namedColors []namedColor
)

// loadNames builds the lookup table in colornames.Names order, which is
// alphabetical.
func loadNames() {
	namedColors = make([]namedColor, 0, len(colornames.Names))
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		rgb := RGB{R: c.R, G: c.G, B: c.B}
		lab, _ := colorful.MakeColor(rgb)
		namedColors = append(namedColors, namedColor{name: name, rgb: rgb, lab: lab})
	}
}

// Name returns the CSS color name closest to c by CIEDE2000 distance.
// Exact matches win; among equally close names the alphabetically first is
// returned ("aqua" rather than "cyan").
func Name(c RGB) string {
	namesOnce.Do(loadNames)

	target, _ := colorful.MakeColor(c)
	best := ""
	bestDist := math.Inf(1)
	for _, nc := range namedColors {
		if nc.rgb == c {
			return nc.name
		}
		if d := target.DistanceCIEDE2000(nc.lab); d < bestDist {
			best, bestDist = nc.name, d
		}
	}
	return best
}
