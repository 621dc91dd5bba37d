// Package fynepicker provides the color picker as a fyne widget.
//
// The widget draws a colorpick.Model: the gradient plane and the hue strip are
// canvas.Raster objects filled from Plane.Render and HueStrip.Render, and the
// pointer events of both surfaces drive the Model's drag gesture. The data
// flow is:
//
//	pointer (MouseDown, Dragged, MouseUp) -> Model -> OnChanged(hex) -> host
//
// # Usage
//
//	picker := fynepicker.New("#ff5733")
//	picker.OnChanged = func(hex string) {
//		editor.SetTextColor(hex)
//	}
//	w.SetContent(picker)
//
// Below the surfaces the widget shows the readout rows with copy buttons, a
// strict "#rrggbb" entry and the preset swatches.
//
// # Thread Safety
//
// Picker must only be used from the fyne event goroutine. Hosts running work
// elsewhere hand results back with fyne.Do before calling SetHex.
package fynepicker
