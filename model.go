package colorpick

// Model is the state of one color picker: the selected hue, the selected
// color, and where the plane crosshair and strip handle sit.
//
// The four stay consistent after every mutation. Surface sizes are owned by
// the host; every pointer operation passes the current size in and the Model
// keeps the last one for drag moves and LoadHex.
//
// Model is not safe for concurrent use. It is meant to be driven from the
// UI event loop that owns the picker widget.
type Model struct {
	hue    float64
	rgb    RGB
	pos    Point
	offset float64

	plane      Size
	stripWidth float64

	drag  DragTarget
	dirty bool

	onChange func(hex string)
}

// New creates a Model showing hex. Malformed hex falls back as HexToRGB does.
func New(hex string, opts ...Option) *Model {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := &Model{
		plane:      o.plane,
		stripWidth: o.stripWidth,
		onChange:   o.onChange,
		dirty:      true,
	}
	m.LoadHex(hex)
	return m
}

// SetOnChange replaces the change callback. Nil disables it.
func (m *Model) SetOnChange(fn func(hex string)) {
	m.onChange = fn
}

// Hue returns the selected hue in degrees [0, 360).
func (m *Model) Hue() float64 { return m.hue }

// RGB returns the selected color.
func (m *Model) RGB() RGB { return m.rgb }

// Hex returns the selected color as "#rrggbb".
func (m *Model) Hex() string { return RGBToHex(m.rgb) }

// HSV returns the selected color in HSV.
func (m *Model) HSV() HSV { return RGBToHSV(m.rgb) }

// HSL returns the selected color in HSL.
func (m *Model) HSL() HSL { return RGBToHSL(m.rgb) }

// CMYK returns the selected color in CMYK.
func (m *Model) CMYK() CMYK { return RGBToCMYK(m.rgb) }

// Readout returns the formatted values of the selected color.
func (m *Model) Readout() Readout { return NewReadout(m.rgb) }

// PlanePosition returns the crosshair position on the plane.
func (m *Model) PlanePosition() Point { return m.pos }

// StripOffset returns the handle offset on the hue strip.
func (m *Model) StripOffset() float64 { return m.offset }

// PlaneSize returns the last plane size the Model was given.
func (m *Model) PlaneSize() Size { return m.plane }

// StripWidth returns the last strip width the Model was given.
func (m *Model) StripWidth() float64 { return m.stripWidth }

// HandleColor returns the fill of the strip handle: the pure selected hue.
func (m *Model) HandleColor() RGB { return HueColor(m.hue) }

// Plane returns the plane recipe for the selected hue and current size.
func (m *Model) Plane() Plane { return NewPlane(m.hue, m.plane) }

// Strip returns the hue strip at its current width.
func (m *Model) Strip() HueStrip { return HueStrip{Width: m.stripWidth} }

// PlaneDirty reports whether the plane background changed since the last
// RenderPlane call.
func (m *Model) PlaneDirty() bool { return m.dirty }

// RenderPlane rasterizes the current plane and clears the dirty flag.
func (m *Model) RenderPlane(width, height int) *Pixmap {
	m.dirty = false
	return m.Plane().Render(width, height)
}

// SetHueFromStripOffset selects the hue under a strip offset. The offset is
// clamped to [0, stripWidth] and hue = offset/stripWidth*360.
//
// The plane background depends on hue alone, so it is repainted and the
// existing crosshair point is read again: moving the hue changes the selected
// color even though the crosshair did not move.
func (m *Model) SetHueFromStripOffset(offset, stripWidth float64) RGB {
	m.stripWidth = nonNegative(stripWidth)
	m.offset = clampRange(offset, m.stripWidth)

	hue := m.Strip().HueAt(m.offset)
	if hue != m.hue {
		m.hue = hue
		m.dirty = true
	}
	Logger().Debug("colorpick: hue set",
		"offset", m.offset, "width", m.stripWidth, "hue", m.hue)

	m.commit(m.Plane().Sample(m.pos))
	return m.rgb
}

// SetColorFromPlanePosition selects the color under a plane position. The
// position is clamped to [0, planeWidth] × [0, planeHeight].
func (m *Model) SetColorFromPlanePosition(p Point, planeWidth, planeHeight float64) RGB {
	size := Sz(planeWidth, planeHeight)
	if size != m.plane {
		m.plane = size
		m.dirty = true
	}
	m.pos = m.plane.Clamp(p)

	c := m.Plane().Sample(m.pos)
	Logger().Debug("colorpick: plane sampled",
		"x", m.pos.X, "y", m.pos.Y, "hex", RGBToHex(c))

	m.commit(c)
	return m.rgb
}

// LoadHex pushes a color from the host into the picker. It moves the strip
// handle and the crosshair to match the color without emitting a change.
func (m *Model) LoadHex(hex string) {
	c := HexToRGB(hex)
	hue := RGBToHSV(c).H
	if hue != m.hue {
		m.dirty = true
	}

	m.hue = hue
	m.rgb = c
	m.offset = m.Strip().OffsetFor(hue)
	m.pos = m.Plane().Position(c)
}

// Resize records new surface sizes from the host. The handles keep their
// relative place so the selected hue and color do not change.
func (m *Model) Resize(plane Size, stripWidth float64) {
	plane = Sz(plane.Width, plane.Height)
	stripWidth = nonNegative(stripWidth)

	if m.plane.Empty() {
		m.pos = NewPlane(m.hue, plane).Position(m.rgb)
	} else {
		m.pos = plane.Clamp(Point{
			X: ratio(m.pos.X, m.plane.Width) * plane.Width,
			Y: ratio(m.pos.Y, m.plane.Height) * plane.Height,
		})
	}
	m.offset = HueStrip{Width: stripWidth}.OffsetFor(m.hue)

	if plane != m.plane {
		m.dirty = true
	}
	m.plane = plane
	m.stripWidth = stripWidth
}

// commit stores c and notifies the host when it differs from the previous
// selection.
func (m *Model) commit(c RGB) {
	if c == m.rgb {
		return
	}
	m.rgb = c
	if m.onChange != nil {
		m.onChange(RGBToHex(c))
	}
}
