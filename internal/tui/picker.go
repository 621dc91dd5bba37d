// Package tui is a terminal color picker built on tcell.
//
// The screen is split into the gradient plane, a one-row hue strip and the
// readout panel. Every terminal cell is one plane unit, so the Model works in
// cell coordinates and the mouse drives its drag gesture directly.
package tui

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/crayonbox/colorpick"
)

// ErrCanceled is returned by Run when the user leaves without accepting.
var ErrCanceled = errors.New("tui: canceled")

// Rows below the plane: gap, strip, gap, six readout lines, help.
const (
	stripGap     = 1
	readoutLines = 6
	footerRows   = stripGap + 1 + 1 + readoutLines + 1
)

const helpText = "drag to pick  1-7 presets  enter accept  esc cancel"

// layout places the picker parts on a screen of the given size.
type layout struct {
	width    int
	planeH   int
	stripRow int
	textRow  int
}

func newLayout(w, h int) layout {
	w = max(w, 1)
	planeH := max(h-footerRows, 1)
	return layout{
		width:    w,
		planeH:   planeH,
		stripRow: planeH + stripGap,
		textRow:  planeH + stripGap + 2,
	}
}

func (l layout) planeSize() colorpick.Size {
	return colorpick.Sz(float64(l.width), float64(l.planeH))
}

// Picker draws a Model on a tcell screen and routes mouse and key events to
// it.
type Picker struct {
	screen tcell.Screen
	model  *colorpick.Model
	layout layout

	plane *colorpick.Pixmap
	strip *colorpick.Pixmap

	done     bool
	accepted bool
}

// New creates a picker on an initialized screen, starting from hex.
func New(screen tcell.Screen, hex string) *Picker {
	w, h := screen.Size()
	l := newLayout(w, h)
	p := &Picker{
		screen: screen,
		layout: l,
		model: colorpick.New(hex,
			colorpick.WithPlaneSize(float64(l.width), float64(l.planeH)),
			colorpick.WithStripWidth(float64(l.width)),
		),
	}
	return p
}

// Model returns the picker state.
func (p *Picker) Model() *colorpick.Model {
	return p.model
}

// Run shows the picker until the user accepts or cancels. It returns the
// accepted hex, or ErrCanceled.
func (p *Picker) Run() (string, error) {
	p.screen.EnableMouse(tcell.MouseDragEvents)
	defer p.screen.DisableMouse()

	for !p.done {
		p.Draw()
		ev := p.screen.PollEvent()
		if ev == nil {
			return "", ErrCanceled
		}
		p.HandleEvent(ev)
	}
	if !p.accepted {
		return "", ErrCanceled
	}
	colorpick.Logger().Info("tui: accepted", "hex", p.model.Hex())
	return p.model.Hex(), nil
}

// HandleEvent applies one event. It reports whether the screen needs a
// redraw.
func (p *Picker) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return p.handleKey(ev)
	case *tcell.EventMouse:
		return p.handleMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		p.resize(w, h)
		p.screen.Sync()
		return true
	}
	return false
}

func (p *Picker) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnter:
		p.done, p.accepted = true, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		p.done = true
	case tcell.KeyLeft:
		p.nudgeHue(-1)
	case tcell.KeyRight:
		p.nudgeHue(1)
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == 'q':
			p.done = true
		case r >= '1' && r < '1'+rune(len(colorpick.Presets)):
			p.model.LoadHex(colorpick.Presets[r-'1'].Hex)
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// nudgeHue moves the strip handle by whole cells.
func (p *Picker) nudgeHue(cells int) {
	off := p.model.StripOffset() + float64(cells)
	p.model.SetHueFromStripOffset(off, float64(p.layout.width))
}

func (p *Picker) handleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	if ev.Buttons()&tcell.Button1 == 0 {
		if p.model.Dragging() == colorpick.DragNone {
			return false
		}
		p.model.Release()
		return true
	}

	l := p.layout
	switch p.model.Dragging() {
	case colorpick.DragPlane:
		p.model.Move(cellCenter(x, y))
	case colorpick.DragStrip:
		p.model.Move(cellCenter(x, 0))
	default:
		switch {
		case y < l.planeH:
			s := l.planeSize()
			p.model.PressPlane(cellCenter(x, y), s.Width, s.Height)
		case y == l.stripRow:
			p.model.PressStrip(cellCenter(x, 0).X, float64(l.width))
		default:
			return false
		}
	}
	return true
}

func cellCenter(x, y int) colorpick.Point {
	return colorpick.Pt(float64(x)+0.5, float64(y)+0.5)
}

func (p *Picker) resize(w, h int) {
	l := newLayout(w, h)
	if l == p.layout {
		return
	}
	p.layout = l
	p.strip = nil
	p.model.Resize(l.planeSize(), float64(l.width))
}

// Draw paints the picker and shows it.
func (p *Picker) Draw() {
	l := p.layout
	s := p.screen
	s.Clear()

	if p.plane == nil || p.model.PlaneDirty() || p.plane.Width() != l.width || p.plane.Height() != l.planeH {
		p.plane = p.model.RenderPlane(l.width, l.planeH)
	}
	if p.strip == nil {
		p.strip = p.model.Strip().Render(l.width, 1)
	}

	for y := 0; y < l.planeH; y++ {
		for x := 0; x < l.width; x++ {
			s.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(cellColor(p.plane.RGBAt(x, y))))
		}
	}
	for x := 0; x < l.width; x++ {
		s.SetContent(x, l.stripRow, ' ', nil, tcell.StyleDefault.Background(cellColor(p.strip.RGBAt(x, 0))))
	}

	cx, cy := p.crosshairCell()
	under := p.plane.RGBAt(cx, cy)
	s.SetContent(cx, cy, '+', nil, tcell.StyleDefault.
		Background(cellColor(under)).
		Foreground(contrast(under)))

	hx := p.handleCell()
	handle := p.model.HandleColor()
	s.SetContent(hx, l.stripRow, '|', nil, tcell.StyleDefault.
		Background(cellColor(handle)).
		Foreground(contrast(handle)))

	p.drawReadout()
	s.Show()
}

func (p *Picker) crosshairCell() (int, int) {
	pos := p.model.PlanePosition()
	return clampCell(pos.X, p.layout.width), clampCell(pos.Y, p.layout.planeH)
}

func (p *Picker) handleCell() int {
	return clampCell(p.model.StripOffset(), p.layout.width)
}

// clampCell returns the cell containing v on an axis of n cells.
func clampCell(v float64, n int) int {
	return min(max(int(v), 0), n-1)
}

func (p *Picker) drawReadout() {
	r := p.model.Readout()
	row := p.layout.textRow
	swatch := tcell.StyleDefault.Background(cellColor(p.model.RGB()))

	for i, line := range r.Rows() {
		p.text(0, row+i, line.Label, tcell.StyleDefault.Bold(true))
		p.text(6, row+i, line.Value, tcell.StyleDefault)
	}
	p.text(0, row+len(r.Rows()), "NAME", tcell.StyleDefault.Bold(true))
	p.text(6, row+len(r.Rows()), r.Name, tcell.StyleDefault)

	for x := p.layout.width - 4; x < p.layout.width; x++ {
		for y := row; y < row+2; y++ {
			p.screen.SetContent(x, y, ' ', nil, swatch)
		}
	}
	p.text(0, row+readoutLines, helpText, tcell.StyleDefault.Dim(true))
}

func (p *Picker) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		p.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func cellColor(c colorpick.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// contrast picks black or white text for a background.
func contrast(c colorpick.RGB) tcell.Color {
	if 299*int(c.R)+587*int(c.G)+114*int(c.B) > 128_000 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}
