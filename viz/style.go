// Package viz - Draws detection boxes and their labels onto images.
package viz

import "image/color"

// Filled is the thickness value that makes Canvas.Rectangle fill the rectangle
// instead of stroking its outline.
const Filled = -1

// DefaultLabel is the label DrawBoxLabel callers pass when the detector only has
// one class.
const DefaultLabel = "diver"

var (
	// DefaultBoxColor is red.
	DefaultBoxColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	// DefaultBatchColor is yellow, used for multi-box rendering.
	DefaultBatchColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	// DefaultTextColor is black.
	DefaultTextColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Style defines the fixed geometry and fonts used when drawing a box.
type Style struct {
	// Thickness is the outline stroke width in pixels.
	Thickness int
	// BandHeight is how far above the box top the label background starts.
	BandHeight int
	// BandPadding widens the label background on both sides of the box.
	BandPadding int
	// LabelOffset is the distance from the box top up to the label baseline.
	LabelOffset int
	// LineSpacing is the distance between the label baseline and the coordinates baseline.
	LineSpacing int
	// LabelScale is the font scale of the class label.
	LabelScale float64
	// CoordsScale is the font scale of the "x=.. y=.." line.
	CoordsScale float64
	// TextColor is the color of both text lines.
	TextColor color.RGBA
}

// DefaultStyle returns the style used by the package-level draw functions.
//
// Returns:
// - A 4px outline, a 40px label band padded by 2px, the label 25px above the box
// at scale 0.5 and the coordinates 20px below it at scale 0.4, in black.
func DefaultStyle() Style {
	return Style{
		Thickness:   4,
		BandHeight:  40,
		BandPadding: 2,
		LabelOffset: 25,
		LineSpacing: 20,
		LabelScale:  0.5,
		CoordsScale: 0.4,
		TextColor:   DefaultTextColor,
	}
}
