// Package cvcanvas - OpenCV backend for the viz renderers.
//
// It lives apart from viz so that callers drawing on plain Go images do not need
// cgo or OpenCV.
package cvcanvas

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Canvas draws on an OpenCV Mat and implements viz.Canvas.
//
// gocv converts color.RGBA to the Mat's BGR channel order, so colors are given in
// RGB like everywhere else in viz.
type Canvas struct {
	// Mat is the image being annotated. It is owned by the caller.
	Mat *gocv.Mat
	// Font is the Hershey face used for text.
	Font gocv.HersheyFont
}

// New wraps mat for drawing with the Hershey simplex font.
//
// Arguments:
// - mat: The image to draw on. It must stay open while the canvas is used.
//
// Returns:
// - A canvas drawing directly into mat.
//
// @example
// img := gocv.IMRead("frame.jpg", gocv.IMReadColor)
// defer img.Close()
// viz.DrawBoxLabel(cvcanvas.New(&img), &box, viz.DefaultLabel, viz.DefaultBoxColor, true)
func New(mat *gocv.Mat) *Canvas {
	return &Canvas{Mat: mat, Font: gocv.FontHersheySimplex}
}

// Size returns the number of columns and rows of the Mat.
func (c *Canvas) Size() (int, int) {
	return c.Mat.Cols(), c.Mat.Rows()
}

// Rectangle draws r onto the Mat. A thickness of viz.Filled fills it.
func (c *Canvas) Rectangle(r image.Rectangle, col color.RGBA, thickness int) {
	gocv.Rectangle(c.Mat, r, col, thickness)
}

// Text draws anti-aliased text with a stroke of one pixel.
func (c *Canvas) Text(text string, origin image.Point, scale float64, col color.RGBA) {
	gocv.PutTextWithParams(c.Mat, text, origin, c.Font, scale, col, 1, gocv.LineAA, false)
}
