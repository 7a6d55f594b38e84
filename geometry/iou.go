package geometry

import "github.com/pkg/errors"

// ErrDivisionByZero is returned by BoxIoU when the union of the two boxes has zero
// area, which happens for identical degenerate boxes.
var ErrDivisionByZero = errors.New("division by zero")

// BoxIoU computes the intersection over union of two boxes.
//
// The intersection width and height are clamped to be non-negative, then
//
//	IoU = inter / (area(a) + area(b) - inter)
//
// No epsilon is added to the denominator. When it is exactly zero the call fails
// with ErrDivisionByZero rather than returning NaN or a coerced 0, so callers that
// feed degenerate boxes have to decide what that means for them.
//
// Arguments:
// - a, b: The boxes to compare.
//
// Returns:
// - The IoU score, in [0, 1] for well-formed boxes.
// - An error wrapping ErrDivisionByZero if the union is empty.
//
// @example
// a := Box{Left: 0, Right: 10, Top: 0, Bottom: 10}
// b := Box{Left: 5, Right: 15, Top: 5, Bottom: 15}
// iou, err := BoxIoU(a, b) // 25 / 175 = 0.142857
func BoxIoU(a, b Box) (float64, error) {
	interW := max(0, min(a.Right, b.Right)-max(a.Left, b.Left))
	interH := max(0, min(a.Bottom, b.Bottom)-max(a.Top, b.Top))
	inter := interW * interH

	union := a.Area() + b.Area() - inter
	if union == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "iou of %s and %s", a, b)
	}

	return float64(inter) / float64(union), nil
}
