package fynepicker

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// surface wraps a raster and turns its pointer events into press, move and
// release calls.
type surface struct {
	widget.BaseWidget
	raster *canvas.Raster

	onPress   func(pos fyne.Position)
	onMove    func(pos fyne.Position)
	onRelease func()
}

var (
	_ fyne.Draggable    = (*surface)(nil)
	_ desktop.Mouseable = (*surface)(nil)
)

func newSurface(raster *canvas.Raster) *surface {
	s := &surface{raster: raster}
	s.ExtendBaseWidget(s)
	return s
}

func (s *surface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.raster)
}

// MouseDown arms the drag on a primary press.
func (s *surface) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary || s.onPress == nil {
		return
	}
	s.onPress(ev.Position)
}

// MouseUp ends the drag when the button is released without moving.
func (s *surface) MouseUp(*desktop.MouseEvent) {
	if s.onRelease != nil {
		s.onRelease()
	}
}

// Dragged follows the pointer, also outside the surface bounds.
func (s *surface) Dragged(ev *fyne.DragEvent) {
	if s.onMove != nil {
		s.onMove(ev.Position)
	}
}

// DragEnd ends the drag.
func (s *surface) DragEnd() {
	if s.onRelease != nil {
		s.onRelease()
	}
}
