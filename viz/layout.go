package viz

import (
	"fmt"
	"image"

	"github.com/piggy2008/deep-diver-following/geometry"
)

// Layout holds the positions of everything drawn for one box.
type Layout struct {
	// Box is the detection clamped to the image.
	Box geometry.Box
	// Band is the filled label background above the box.
	Band image.Rectangle
	// LabelOrigin is the bottom-left origin of the class label.
	LabelOrigin image.Point
	// CoordsOrigin is the bottom-left origin of the center coordinates text.
	CoordsOrigin image.Point
	// Coords is the center coordinates text, "x=<cx> y=<cy>".
	Coords string
}

// Layout computes where a box and its label go on an imW x imH image.
//
// The box is clamped first. The band spans from (left-pad, top-BandHeight) to
// (right+pad, top), with its corners clamped again so it never leaves the image.
// The label row sits LabelOffset above the box top, or at 0 when the box top is
// closer than that to the image edge.
//
// Arguments:
// - box: The unclamped detection.
// - imW, imH: The image dimensions.
//
// Returns:
// - The computed layout.
func (s Style) Layout(box geometry.Box, imW, imH int) Layout {
	b := box.Clamp(imW, imH)

	bandL, bandR, bandT, _ := geometry.HandleBadCorners(
		b.Left-s.BandPadding, b.Right+s.BandPadding, b.Top-s.BandHeight, b.Bottom, imW, imH)

	row := b.Top - s.LabelOffset
	if b.Top < s.LabelOffset {
		row = 0
	}

	center := b.Center()

	return Layout{
		Box: b,
		Band: image.Rectangle{
			Min: image.Point{X: bandL, Y: bandT},
			Max: image.Point{X: bandR, Y: b.Top},
		},
		LabelOrigin:  image.Point{X: b.Left, Y: row},
		CoordsOrigin: image.Point{X: b.Left, Y: row + s.LineSpacing},
		Coords:       fmt.Sprintf("x=%d y=%d", center.X, center.Y),
	}
}
