// Package colorpick provides the color model behind an interactive color
// picker: conversions between hex, RGB, HSV, HSL and CMYK, and the mapping
// between pointer positions and colors on a hue strip and a gradient plane.
//
// # Overview
//
// A host UI holds the current text color as a "#rrggbb" string. It creates a
// Model from that string, forwards pointer events to it, and receives every
// committed change through a callback:
//
//	m := colorpick.New("#ff5733",
//	    colorpick.WithOnChange(func(hex string) { textColor = hex }),
//	)
//
//	// pointer pressed on the plane at (x, y)
//	m.PressPlane(colorpick.Pt(x, y), planeW, planeH)
//	// pointer moved
//	m.Move(colorpick.Pt(x, y))
//	// pointer released
//	m.Release()
//
// # Conversions
//
// HexToRGB, RGBToHex, RGBToHSV, RGBToHSL, RGBToCMYK and HSVToRGB are pure
// and total. HexToRGB never fails: malformed input yields FallbackRGB, and
// callers that need validation use IsHex or ParseHex.
//
// # Rendering
//
// The plane and strip can be painted by the host from their recipes
// (Plane.Layers, HueStrip.Gradient) or rasterized here (Plane.Render,
// HueStrip.Render). Sampling reads the same recipe, so what is painted and
// what is picked always agree.
//
// # Coordinate System
//
// Surface coordinates have the origin at the top-left, X increasing right
// and Y increasing down, in whatever unit the host measures its surfaces.
// Positions are clamped to the surface, never wrapped.
package colorpick
