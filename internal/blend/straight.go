// Package blend implements Porter-Duff source-over compositing on
// straight (non-premultiplied) alpha colors with float components in [0, 1].
//
// Straight alpha matches what a canvas readback returns, so a flattened layer
// stack can be compared directly against sampled pixels.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// SourceOver composites source (sr, sg, sb, sa) over destination
// (dr, dg, db, da). Result alpha: Sa + Da*(1-Sa).
//
// A fully transparent result returns all zeros.
func SourceOver(sr, sg, sb, sa, dr, dg, db, da float64) (r, g, b, a float64) {
	sa = clamp01(sa)
	da = clamp01(da)

	a = sa + da*(1-sa)
	if a == 0 {
		return 0, 0, 0, 0
	}

	dw := da * (1 - sa)
	r = (sr*sa + dr*dw) / a
	g = (sg*sa + dg*dw) / a
	b = (sb*sa + db*dw) / a
	return r, g, b, a
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
