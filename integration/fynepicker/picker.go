package fynepicker

import (
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/crayonbox/colorpick"
)

const (
	stripHeight    = 24
	handleRadius   = 7
	minPlaneHeight = 120
	minWidth       = 240
)

type readoutRow struct {
	value *widget.Label
	copy  *widget.Button
}

// Picker is a fyne widget that lets the user pick a color on a gradient
// plane and a hue strip.
type Picker struct {
	widget.BaseWidget

	// OnChanged is called with "#rrggbb" whenever the user selects a new
	// color. SetHex does not call it.
	OnChanged func(hex string)

	model *colorpick.Model

	planeRaster *canvas.Raster
	stripRaster *canvas.Raster
	plane       *surface
	strip       *surface
	crosshair   *canvas.Circle
	handle      *canvas.Circle

	swatch *canvas.Rectangle
	name   *widget.Label
	rows   []readoutRow
	entry  *widget.Entry
	info   *fyne.Container
}

// New creates a picker showing hex.
func New(hex string) *Picker {
	p := &Picker{}
	p.model = colorpick.New(hex, colorpick.WithOnChange(p.changed))

	p.planeRaster = canvas.NewRaster(p.drawPlane)
	p.planeRaster.ScaleMode = canvas.ImageScalePixels
	p.stripRaster = canvas.NewRaster(p.drawStrip)

	p.plane = newSurface(p.planeRaster)
	p.plane.onPress = func(pos fyne.Position) {
		s := p.plane.Size()
		p.model.PressPlane(point(pos), float64(s.Width), float64(s.Height))
		p.update()
	}
	p.plane.onMove = p.move
	p.plane.onRelease = p.model.Release

	p.strip = newSurface(p.stripRaster)
	p.strip.onPress = func(pos fyne.Position) {
		p.model.PressStrip(float64(pos.X), float64(p.strip.Size().Width))
		p.update()
	}
	p.strip.onMove = p.move
	p.strip.onRelease = p.model.Release

	p.crosshair = canvas.NewCircle(color.Transparent)
	p.crosshair.StrokeColor = color.White
	p.crosshair.StrokeWidth = 2
	p.handle = canvas.NewCircle(p.model.HandleColor())
	p.handle.StrokeColor = color.White
	p.handle.StrokeWidth = 2

	p.info = p.buildInfo()
	p.ExtendBaseWidget(p)
	p.update()
	return p
}

func (p *Picker) buildInfo() *fyne.Container {
	p.swatch = canvas.NewRectangle(p.model.RGB())
	p.swatch.SetMinSize(fyne.NewSize(48, 48))
	p.name = widget.NewLabel("")

	var lines []fyne.CanvasObject
	for _, row := range p.model.Readout().Rows() {
		value := widget.NewLabel(row.Value)
		copyBtn := widget.NewButtonWithIcon("", theme.ContentCopyIcon(), func() {
			p.copyValue(value.Text)
		})
		p.rows = append(p.rows, readoutRow{value: value, copy: copyBtn})

		label := widget.NewLabelWithStyle(row.Label, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		lines = append(lines, container.NewBorder(nil, nil, label, copyBtn, value))
	}

	p.entry = widget.NewEntry()
	p.entry.SetPlaceHolder("#rrggbb")
	p.entry.Validator = validateHex
	p.entry.OnSubmitted = func(s string) {
		if validateHex(s) == nil {
			p.selectHex(s)
		}
	}

	var presets []fyne.CanvasObject
	for _, s := range colorpick.Presets {
		presets = append(presets, widget.NewButton(s.Label, func() { p.selectHex(s.Hex) }))
	}

	header := container.NewBorder(nil, nil, p.swatch, nil, p.name)
	return container.NewVBox(
		header,
		container.NewVBox(lines...),
		p.entry,
		container.NewGridWithColumns(4, presets...),
	)
}

// SetHex shows hex without calling OnChanged. Malformed hex falls back to
// red the same way colorpick.HexToRGB does.
func (p *Picker) SetHex(hex string) {
	p.model.LoadHex(hex)
	p.update()
}

// Hex returns the selected color.
func (p *Picker) Hex() string {
	return p.model.Hex()
}

// Model returns the state behind the widget.
func (p *Picker) Model() *colorpick.Model {
	return p.model
}

func (p *Picker) CreateRenderer() fyne.WidgetRenderer {
	return &pickerRenderer{
		picker:  p,
		objects: []fyne.CanvasObject{p.plane, p.strip, p.crosshair, p.handle, p.info},
	}
}

// selectHex is a color chosen by the user outside the surfaces: a preset or
// the hex entry.
func (p *Picker) selectHex(hex string) {
	before := p.model.Hex()
	p.model.LoadHex(hex)
	p.update()
	if after := p.model.Hex(); after != before {
		p.changed(after)
	}
}

func (p *Picker) move(pos fyne.Position) {
	p.model.Move(point(pos))
	p.update()
}

func (p *Picker) changed(hex string) {
	if p.OnChanged != nil {
		p.OnChanged(hex)
	}
}

func (p *Picker) copyValue(s string) {
	a := fyne.CurrentApp()
	if a == nil {
		return
	}
	a.Clipboard().SetContent(s)
	colorpick.Logger().Debug("fynepicker: copied", "value", s)
}

// update pushes the Model state into the canvas objects.
func (p *Picker) update() {
	if p.model.PlaneDirty() {
		p.planeRaster.Refresh()
	}
	p.placeHandles()

	p.handle.FillColor = p.model.HandleColor()
	p.handle.Refresh()
	p.swatch.FillColor = p.model.RGB()
	p.swatch.Refresh()

	r := p.model.Readout()
	for i, row := range r.Rows() {
		p.rows[i].value.SetText(row.Value)
	}
	p.name.SetText(r.Name)
	if p.entry.Text != r.Hex {
		p.entry.SetText(r.Hex)
	}
}

// placeHandles centers the crosshair and the strip handle on the Model
// positions.
func (p *Picker) placeHandles() {
	d := fyne.NewSize(2*handleRadius, 2*handleRadius)

	pos := p.model.PlanePosition()
	p.crosshair.Resize(d)
	p.crosshair.Move(p.plane.Position().AddXY(float32(pos.X)-handleRadius, float32(pos.Y)-handleRadius))

	off := p.model.StripOffset()
	p.handle.Resize(d)
	p.handle.Move(p.strip.Position().AddXY(float32(off)-handleRadius, stripHeight/2-handleRadius))
}

func (p *Picker) drawPlane(w, h int) image.Image {
	return p.model.RenderPlane(w, h)
}

func (p *Picker) drawStrip(w, h int) image.Image {
	return p.model.Strip().Render(w, h)
}

func point(pos fyne.Position) colorpick.Point {
	return colorpick.Pt(float64(pos.X), float64(pos.Y))
}

func validateHex(s string) error {
	if !colorpick.IsHex(s) {
		return fmt.Errorf("%w: want #rrggbb", colorpick.ErrInvalidHex)
	}
	return nil
}

type pickerRenderer struct {
	picker  *Picker
	objects []fyne.CanvasObject
}

// Layout stacks the plane, the strip and the info panel. The plane takes the
// height the others leave.
func (r *pickerRenderer) Layout(size fyne.Size) {
	p := r.picker
	pad := theme.Padding()
	info := p.info.MinSize()
	planeH := fyne.Max(size.Height-info.Height-stripHeight-2*pad, 0)

	p.plane.Move(fyne.NewPos(0, 0))
	p.plane.Resize(fyne.NewSize(size.Width, planeH))
	p.strip.Move(fyne.NewPos(0, planeH+pad))
	p.strip.Resize(fyne.NewSize(size.Width, stripHeight))
	p.info.Move(fyne.NewPos(0, planeH+pad+stripHeight+pad))
	p.info.Resize(fyne.NewSize(size.Width, info.Height))

	p.model.Resize(colorpick.Sz(float64(size.Width), float64(planeH)), float64(size.Width))
	if p.model.PlaneDirty() {
		p.planeRaster.Refresh()
	}
	p.stripRaster.Refresh()
	p.placeHandles()
}

func (r *pickerRenderer) MinSize() fyne.Size {
	info := r.picker.info.MinSize()
	return fyne.NewSize(
		fyne.Max(info.Width, minWidth),
		info.Height+stripHeight+minPlaneHeight+2*theme.Padding(),
	)
}

func (r *pickerRenderer) Refresh() {
	r.picker.update()
	canvas.Refresh(r.picker)
}

func (r *pickerRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *pickerRenderer) Destroy() {}
