package render

import "image/color"

// Canvas is a 2D drawing surface in pixel coordinates. Colours may carry
// alpha; implementations composite over what is already drawn.
type Canvas interface {
	Clear()
	FillCircle(cx, cy, r float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}
