package util

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gorgonia.org/tensor"
)

var (
	// ErrEmptyInput is returned by SoftmaxTensor for a tensor with no elements.
	ErrEmptyInput = errors.New("empty input")
	// ErrNotVector is returned by SoftmaxTensor for a tensor that is not 1-D.
	ErrNotVector = errors.New("tensor is not a vector")
	// ErrUnsupportedDtype is returned by SoftmaxTensor for non-float tensors.
	ErrUnsupportedDtype = errors.New("unsupported dtype")
)

// Softmax computes a numerically stable softmax of x.
//
// The maximum of x is subtracted from every element before exponentiating, so
// large logits do not overflow. The input is not modified.
//
// Arguments:
// - x: The logits.
//
// Returns:
// - A new slice of the same length whose entries are non-negative and sum to 1.
// An empty x gives an empty slice.
//
// @example
// p := Softmax([]float32{1, 1, 1}) // [0.3333, 0.3333, 0.3333]
func Softmax(x []float32) []float32 {
	out := make([]float32, len(x))
	if len(x) == 0 {
		return out
	}

	m := x[0]
	for _, v := range x[1:] {
		m = math32.Max(m, v)
	}

	var sum float32
	for i, v := range x {
		out[i] = math32.Exp(v - m)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}

	return out
}

// Softmax64 is Softmax for float64 logits.
func Softmax64(x []float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}

	copy(out, x)
	floats.AddConst(-floats.Max(x), out)
	for i, v := range out {
		out[i] = math.Exp(v)
	}
	floats.Scale(1/floats.Sum(out), out)

	return out
}

// SoftmaxTensor computes the softmax of a 1-D float32 or float64 tensor, such as
// a row of class scores read from a model output.
//
// Arguments:
// - t: The logits vector.
//
// Returns:
// - A new dense tensor of the same shape and dtype.
// - An error if t is empty, not 1-D, or not a float tensor.
func SoftmaxTensor(t tensor.Tensor) (*tensor.Dense, error) {
	if t.Dims() != 1 {
		return nil, errors.Wrapf(ErrNotVector, "shape %v", t.Shape())
	}
	if t.Shape().TotalSize() == 0 {
		return nil, ErrEmptyInput
	}

	// A sliced view shares the strided backing store of its parent, so Data would
	// return the parent's elements.
	if v, ok := t.(tensor.View); ok && v.IsView() {
		t = v.Materialize()
	}

	switch data := t.Data().(type) {
	case []float32:
		out := Softmax(data)
		return tensor.New(tensor.WithShape(len(out)), tensor.WithBacking(out)), nil
	case []float64:
		out := Softmax64(data)
		return tensor.New(tensor.WithShape(len(out)), tensor.WithBacking(out)), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedDtype, "dtype %v", t.Dtype())
	}
}
