package wayland

import (
	"image"
	"image/color"
	"time"

	"github.com/bnema/shade/internal/domain/entity"
)

// fromFixed converts a wl_fixed_t (24.8 signed fixed point) value.
func fromFixed(v int32) float64 {
	return float64(v) / 256
}

// pollTimeout converts a dispatch timeout to poll(2) milliseconds, rounding
// up so a deadline is never reported early. Negative timeouts return 0.
func pollTimeout(timeout time.Duration) int {
	if timeout <= 0 {
		return 0
	}
	ms := (timeout + time.Millisecond - 1) / time.Millisecond
	const maxPoll = 1<<31 - 1
	if ms > maxPoll {
		return maxPoll
	}
	return int(ms)
}

// surfaceScale returns the buffer scale for a surface shown on outputs with
// the given scales: the largest one, at least 1.
func surfaceScale(scales []int) int {
	scale := 1
	for _, s := range scales {
		scale = max(scale, s)
	}
	return scale
}

// eglSize replaces unset dimensions with 1. wl_egl_window_create rejects
// empty windows and layer surfaces learn their size only after configure.
func eglSize(size entity.Size) entity.Size {
	return entity.NewSize(max(size.Width, 1), max(size.Height, 1))
}

// glColor converts c to premultiplied GL channel values.
func glColor(c color.NRGBA) (r, g, b, a float32) {
	a = float32(c.A) / 255
	r = float32(c.R) / 255 * a
	g = float32(c.G) / 255 * a
	b = float32(c.B) / 255 * a
	return r, g, b, a
}

// scissorRect converts a top-left origin rectangle to GL window coordinates
// with a bottom-left origin. ok is false when nothing of r is visible.
func scissorRect(r image.Rectangle, size entity.Size) (x, y, w, h int, ok bool) {
	r = r.Intersect(image.Rect(0, 0, size.Width, size.Height))
	if r.Empty() {
		return 0, 0, 0, 0, false
	}
	return r.Min.X, size.Height - r.Max.Y, r.Dx(), r.Dy(), true
}
