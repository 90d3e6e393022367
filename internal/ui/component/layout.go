// Package component draws the panel and drawer contents with the flat fill
// primitives of port.Canvas.
package component

import (
	"image"
)

// Logical layout metrics, multiplied by the buffer scale when drawing.
const (
	contentPadding = 24
	rowHeight      = 56
	rowGap         = 16
	trackHeight    = 12
	handleWidthDiv = 5
	handleHeight   = 4

	indicatorWidth   = 6
	indicatorGap     = 4
	indicatorPadding = 6
)

// sliderRow is the geometry of one slider row relative to the drawer
// content top.
type sliderRow struct {
	Icon  image.Rectangle
	Track image.Rectangle
}

func sliderRows(width, count, scale int) []sliderRow {
	pad := contentPadding * scale
	row := rowHeight * scale
	gap := rowGap * scale
	track := trackHeight * scale

	rows := make([]sliderRow, 0, count)
	for i := 0; i < count; i++ {
		y := pad + i*(row+gap)
		icon := image.Rect(pad, y, pad+row, y+row)

		trackX := icon.Max.X + gap
		trackY := y + (row-track)/2
		rows = append(rows, sliderRow{
			Icon:  icon,
			Track: image.Rect(trackX, trackY, max(trackX, width-pad), trackY+track),
		})
	}
	return rows
}

// fillWidth returns the filled part of a track for value in [0,1].
func fillWidth(track image.Rectangle, value float64) int {
	value = min(max(value, 0), 1)
	return int(float64(track.Dx())*value + 0.5)
}
