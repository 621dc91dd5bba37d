package colorpick

// Default surface sizes, matching the editor's picker popover.
const (
	DefaultPlaneWidth  = 448
	DefaultPlaneHeight = 256
	DefaultStripWidth  = 448
)

// Option configures a Model during creation.
// Use functional options to customize Model behavior.
//
// Example:
//
//	m := colorpick.New("#ff5733",
//	    colorpick.WithPlaneSize(300, 200),
//	    colorpick.WithStripWidth(300),
//	    colorpick.WithOnChange(func(hex string) { editor.SetTextColor(hex) }),
//	)
type Option func(*options)

// options holds optional configuration for Model creation.
type options struct {
	plane      Size
	stripWidth float64
	onChange   func(hex string)
}

// defaultOptions returns the default model options.
func defaultOptions() options {
	return options{
		plane:      Size{Width: DefaultPlaneWidth, Height: DefaultPlaneHeight},
		stripWidth: DefaultStripWidth,
	}
}

// WithPlaneSize sets the initial gradient plane size.
func WithPlaneSize(width, height float64) Option {
	return func(o *options) {
		o.plane = Sz(width, height)
	}
}

// WithStripWidth sets the initial hue strip width.
func WithStripWidth(width float64) Option {
	return func(o *options) {
		o.stripWidth = nonNegative(width)
	}
}

// WithOnChange sets the callback that receives every committed color change
// as a "#rrggbb" string.
func WithOnChange(fn func(hex string)) Option {
	return func(o *options) {
		o.onChange = fn
	}
}
