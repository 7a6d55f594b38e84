// Package geometry - Box coordinate helpers shared by the renderers.
package geometry

import (
	"fmt"
	"image"
)

// Box is an axis-aligned box in pixel coordinates.
//
// Field order follows the detector output: left, right, top, bottom. Callers are
// expected to keep Left <= Right and Top <= Bottom but nothing here enforces it,
// and coordinates may lie outside the image.
type Box struct {
	Left, Right, Top, Bottom int
}

// NewBox creates a box from its four edges.
func NewBox(left, right, top, bottom int) Box {
	return Box{Left: left, Right: right, Top: top, Bottom: bottom}
}

// FromRect converts an image.Rectangle to a Box.
func FromRect(r image.Rectangle) Box {
	return Box{Left: r.Min.X, Right: r.Max.X, Top: r.Min.Y, Bottom: r.Max.Y}
}

// Rect returns the box as an image.Rectangle.
//
// The rectangle is not canonicalised: an inverted box stays inverted so the drawing
// primitive sees the same corners the caller supplied.
func (b Box) Rect() image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: b.Left, Y: b.Top},
		Max: image.Point{X: b.Right, Y: b.Bottom},
	}
}

// Width returns Right - Left. It is negative for an inverted box.
func (b Box) Width() int {
	return b.Right - b.Left
}

// Height returns Bottom - Top. It is negative for an inverted box.
func (b Box) Height() int {
	return b.Bottom - b.Top
}

// Area returns Width * Height without taking absolute values.
func (b Box) Area() int {
	return b.Width() * b.Height()
}

// Empty reports whether the box has zero width or zero height.
func (b Box) Empty() bool {
	return b.Left == b.Right || b.Top == b.Bottom
}

// Center returns the box center using truncating integer division.
//
// Returns:
// - The point ((Left+Right)/2, (Top+Bottom)/2).
//
// @example
// b := Box{Left: 10, Right: 21, Top: 0, Bottom: 5}
// c := b.Center() // (15, 2)
func (b Box) Center() image.Point {
	return image.Point{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2}
}

// Clamp returns the box with its corners moved inside an imW x imH image.
// See HandleBadCorners.
func (b Box) Clamp(imW, imH int) Box {
	l, r, t, bt := HandleBadCorners(b.Left, b.Right, b.Top, b.Bottom, imW, imH)
	return Box{Left: l, Right: r, Top: t, Bottom: bt}
}

func (b Box) String() string {
	return fmt.Sprintf("[l=%d r=%d t=%d b=%d]", b.Left, b.Right, b.Top, b.Bottom)
}

// HandleBadCorners clamps box edges that fall outside the image onto its boundary.
//
// Every edge is clamped into the image: left and right into [0, imW], top and
// bottom into [0, imH]. The edges are not reordered, so a box lying entirely
// outside the image collapses to a zero-width or zero-height box on the boundary
// instead of failing.
//
// Arguments:
// - left, right, top, bottom: The box edges.
// - imW, imH: The image width and height.
//
// Returns:
// - The clamped left, right, top and bottom edges, in that order.
//
// @example
// l, r, t, b := HandleBadCorners(-5, 700, 10, 500, 640, 480) // 0, 640, 10, 480
// l, r, t, b = HandleBadCorners(700, 800, -90, -40, 640, 480) // 640, 640, 0, 0
func HandleBadCorners(left, right, top, bottom, imW, imH int) (int, int, int, int) {
	return clamp(left, imW), clamp(right, imW), clamp(top, imH), clamp(bottom, imH)
}

func clamp(v, hi int) int {
	return min(max(v, 0), hi)
}
