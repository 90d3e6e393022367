package port

import "context"

// Icon names the glyph a module wants drawn next to its value.
type Icon int

const (
	IconNone Icon = iota
	IconBrightness
	IconVolume
)

// String returns the icon name.
func (i Icon) String() string {
	switch i {
	case IconBrightness:
		return "brightness"
	case IconVolume:
		return "volume"
	default:
		return "none"
	}
}

// Slider is a readable and settable scalar in [0, 1].
type Slider interface {
	Value() float64

	// SetValue writes the value to the backing device. Implementations clamp
	// the input and keep the clamped value even when the write fails.
	SetValue(ctx context.Context, value float64) error

	Icon() Icon
}

// Module is a shell module shown in the drawer and panel.
type Module interface {
	Name() string

	// Slider returns the module's slider capability, if it has one.
	Slider() (Slider, bool)
}

// ModuleWatcher is implemented by modules whose value changes outside the
// shell. Watch runs until ctx is done; post must be used to hand changes to
// the main loop.
type ModuleWatcher interface {
	Watch(ctx context.Context, post func(func())) error
}
