// Package entity defines domain entities for the shell.
package entity

// Size is a width/height pair. Depending on context it holds logical
// (compositor) units or physical pixels.
type Size struct {
	Width  int
	Height int
}

// NewSize creates a size from its dimensions.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Scale converts a logical size into pixels for the given integer scale factor.
func (s Size) Scale(factor int) Size {
	if factor < 1 {
		factor = 1
	}
	return Size{Width: s.Width * factor, Height: s.Height * factor}
}

// IsZero reports whether either dimension is unset.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Merge fills zero dimensions of s from fallback.
// Layer surfaces receive 0 for dimensions the client is expected to choose.
func (s Size) Merge(fallback Size) Size {
	if s.Width <= 0 {
		s.Width = fallback.Width
	}
	if s.Height <= 0 {
		s.Height = fallback.Height
	}
	return s
}

// Point is a position in logical surface coordinates.
type Point struct {
	X float64
	Y float64
}
