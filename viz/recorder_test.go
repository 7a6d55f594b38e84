package viz

import (
	"image"
	"image/color"
)

// call is one drawing operation captured by recorder.
type call struct {
	op        string
	rect      image.Rectangle
	thickness int
	text      string
	origin    image.Point
	scale     float64
	color     color.RGBA
}

// recorder is a Canvas that records drawing calls instead of touching pixels.
type recorder struct {
	width, height int
	calls         []call
}

func newRecorder(width, height int) *recorder {
	return &recorder{width: width, height: height}
}

func (r *recorder) Size() (int, int) {
	return r.width, r.height
}

func (r *recorder) Rectangle(rect image.Rectangle, c color.RGBA, thickness int) {
	r.calls = append(r.calls, call{op: "rect", rect: rect, color: c, thickness: thickness})
}

func (r *recorder) Text(text string, origin image.Point, scale float64, c color.RGBA) {
	r.calls = append(r.calls, call{op: "text", text: text, origin: origin, scale: scale, color: c})
}

func (r *recorder) texts() []call {
	var out []call
	for _, c := range r.calls {
		if c.op == "text" {
			out = append(out, c)
		}
	}
	return out
}
