package viz

import (
	"image"
	"image/color"
)

// Canvas is a mutable pixel buffer the renderers draw on.
//
// Implementations draw in place. Coordinates outside the buffer are clipped by the
// implementation, not rejected.
type Canvas interface {
	// Size returns the width and height of the buffer.
	Size() (width, height int)
	// Rectangle draws r with the given stroke thickness, or fills it when thickness
	// is Filled.
	Rectangle(r image.Rectangle, c color.RGBA, thickness int)
	// Text draws text with its bottom-left corner at origin.
	Text(text string, origin image.Point, scale float64, c color.RGBA)
}
