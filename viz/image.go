package viz

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// pointsPerScale converts a Hershey font scale to a TrueType point size so that
// text on an ImageCanvas is about as tall as on an OpenCV canvas.
const pointsPerScale = 30.0

var font *truetype.Font

// init parses the embedded Go Regular font.
func init() {
	var err error
	font, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

// ImageCanvas draws on an *image.RGBA without OpenCV.
//
// The image is expected to have its origin at (0, 0).
type ImageCanvas struct {
	img *image.RGBA
	dc  *gg.Context
}

// NewImageCanvas wraps img. Drawing writes straight into img.Pix.
func NewImageCanvas(img *image.RGBA) *ImageCanvas {
	return &ImageCanvas{img: img, dc: gg.NewContextForRGBA(img)}
}

// Image returns the wrapped image.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

// Size returns the image bounds' width and height.
func (c *ImageCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Rectangle strokes r centered on its edges, or fills it when thickness is Filled.
func (c *ImageCanvas) Rectangle(r image.Rectangle, col color.RGBA, thickness int) {
	x, y := float64(r.Min.X), float64(r.Min.Y)
	w, h := float64(r.Max.X-r.Min.X), float64(r.Max.Y-r.Min.Y)

	c.dc.SetColor(col)
	c.dc.DrawRectangle(x, y, w, h)
	if thickness == Filled {
		c.dc.Fill()
		return
	}
	c.dc.SetLineWidth(float64(thickness))
	c.dc.Stroke()
}

// Text draws text with its baseline at origin.Y.
func (c *ImageCanvas) Text(text string, origin image.Point, scale float64, col color.RGBA) {
	c.dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: scale * pointsPerScale}))
	c.dc.SetColor(col)
	c.dc.DrawString(text, float64(origin.X), float64(origin.Y))
}
