package colorpick

// DragTarget identifies the surface a drag gesture is armed on.
type DragTarget int

const (
	// DragNone means no drag is in progress.
	DragNone DragTarget = iota
	// DragPlane means the crosshair follows the pointer.
	DragPlane
	// DragStrip means the hue handle follows the pointer.
	DragStrip
)

// String returns the name of the drag target.
func (d DragTarget) String() string {
	switch d {
	case DragPlane:
		return "plane"
	case DragStrip:
		return "strip"
	default:
		return "none"
	}
}

// PressPlane arms a plane drag and selects the color under p.
func (m *Model) PressPlane(p Point, width, height float64) RGB {
	m.drag = DragPlane
	return m.SetColorFromPlanePosition(p, width, height)
}

// PressStrip arms a strip drag and selects the hue under offset.
func (m *Model) PressStrip(offset, width float64) RGB {
	m.drag = DragStrip
	return m.SetHueFromStripOffset(offset, width)
}

// Move follows the pointer while a drag is armed. p is relative to the armed
// surface; for the strip only p.X is used. Without an armed drag Move does
// nothing.
func (m *Model) Move(p Point) RGB {
	switch m.drag {
	case DragPlane:
		return m.SetColorFromPlanePosition(p, m.plane.Width, m.plane.Height)
	case DragStrip:
		return m.SetHueFromStripOffset(p.X, m.stripWidth)
	}
	return m.rgb
}

// Release ends the drag. Hosts call it on pointer release and when the
// pointer leaves the window.
func (m *Model) Release() {
	m.drag = DragNone
}

// Dragging returns the armed drag target.
func (m *Model) Dragging() DragTarget {
	return m.drag
}
