package viz

import (
	"image/color"
	"log"

	"github.com/piggy2008/deep-diver-following/geometry"
)

// Detection is a box tagged with the id of the class it was detected as.
type Detection struct {
	ClassID int
	Box     geometry.Box
}

// Renderer draws boxes and labels with a fixed Style.
//
// A Renderer is not modified by drawing, so one value can serve concurrent calls on
// different canvases once SetLogger, if used, has been called.
type Renderer struct {
	style  Style
	logger *log.Logger
}

var defaultRenderer = NewRenderer(DefaultStyle())

// NewRenderer creates a renderer drawing with style.
func NewRenderer(style Style) *Renderer {
	return &Renderer{style: style}
}

// SetLogger enables a debug trace of every box drawn. A nil logger disables it.
func (r *Renderer) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// Style returns the renderer's style.
func (r *Renderer) Style() Style {
	return r.style
}

// DrawBoxLabel draws one box, and optionally its label, onto img.
//
// A nil box means there is nothing to draw and img is returned untouched.
// Otherwise the box is clamped to the image and outlined, and when showLabel is set
// a filled band is drawn above it holding the label and the box center.
//
// Arguments:
// - img: The canvas to draw on, modified in place.
// - box: The detection, or nil.
// - label: The text of the first label line.
// - c: The box and band color.
// - showLabel: Whether to draw the band and the two text lines.
//
// Returns:
// - img itself.
func (r *Renderer) DrawBoxLabel(img Canvas, box *geometry.Box, label string, c color.RGBA, showLabel bool) Canvas {
	if box == nil {
		return img
	}

	r.draw(img, *box, label, c, showLabel)

	return img
}

// DrawBoxesAndLabels draws every detection in order with its class label.
//
// All boxes share color c. Later boxes are drawn over earlier ones where they
// overlap. The label is looked up before each box is drawn: an id missing from
// classes stops the call with ErrKeyNotFound, leaving the boxes before it drawn
// and the failing one untouched.
//
// Arguments:
// - img: The canvas to draw on, modified in place.
// - detections: The boxes and their class ids.
// - classes: The labels by class id.
// - c: The color of every box and band.
//
// Returns:
// - img itself.
// - An error wrapping ErrKeyNotFound if a class id has no label.
func (r *Renderer) DrawBoxesAndLabels(img Canvas, detections []Detection, classes ClassMap, c color.RGBA) (Canvas, error) {
	for _, det := range detections {
		label, err := classes.Lookup(det.ClassID)
		if err != nil {
			return img, err
		}
		r.draw(img, det.Box, label, c, true)
	}

	return img, nil
}

func (r *Renderer) draw(img Canvas, box geometry.Box, label string, c color.RGBA, showLabel bool) {
	w, h := img.Size()
	l := r.style.Layout(box, w, h)

	if r.logger != nil {
		r.logger.Printf("[DEBUG] box %s clamped to %s on %dx%d, label %q", box, l.Box, w, h, label)
	}

	img.Rectangle(l.Box.Rect(), c, r.style.Thickness)
	if !showLabel {
		return
	}

	img.Rectangle(l.Band, c, Filled)
	img.Text(label, l.LabelOrigin, r.style.LabelScale, r.style.TextColor)
	img.Text(l.Coords, l.CoordsOrigin, r.style.CoordsScale, r.style.TextColor)
}

// DrawBoxLabel draws one box with DefaultStyle. See Renderer.DrawBoxLabel.
func DrawBoxLabel(img Canvas, box *geometry.Box, label string, c color.RGBA, showLabel bool) Canvas {
	return defaultRenderer.DrawBoxLabel(img, box, label, c, showLabel)
}

// DrawBoxesAndLabels draws detections with DefaultStyle. See
// Renderer.DrawBoxesAndLabels.
func DrawBoxesAndLabels(img Canvas, detections []Detection, classes ClassMap, c color.RGBA) (Canvas, error) {
	return defaultRenderer.DrawBoxesAndLabels(img, detections, classes, c)
}
