package cvcanvas

import (
	"crypto/md5"
	"fmt"
	"testing"

	"github.com/piggy2008/deep-diver-following/geometry"
	"github.com/piggy2008/deep-diver-following/viz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

// matChecksum returns a hex MD5 of the Mat's pixel data.
func matChecksum(t *testing.T, mat gocv.Mat) string {
	t.Helper()
	if mat.Empty() {
		return "empty"
	}
	data, err := mat.DataPtrUint8()
	require.NoError(t, err)
	return fmt.Sprintf("%x", md5.Sum(data))
}

func newGrayMat(rows, cols int) gocv.Mat {
	mat := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8UC3)
	mat.SetTo(gocv.NewScalar(128, 128, 128, 0))
	return mat
}

func TestCanvas_Size(t *testing.T) {
	mat := newGrayMat(48, 64)
	defer mat.Close()

	w, h := New(&mat).Size()
	assert.Equal(t, 64, w)
	assert.Equal(t, 48, h)
}

func TestCanvas_NilBoxUnchanged(t *testing.T) {
	mat := newGrayMat(480, 640)
	defer mat.Close()
	before := matChecksum(t, mat)

	canvas := New(&mat)
	out := viz.DrawBoxLabel(canvas, nil, viz.DefaultLabel, viz.DefaultBoxColor, true)

	assert.Same(t, canvas, out)
	assert.Equal(t, before, matChecksum(t, mat))
}

func TestCanvas_DrawBoxLabel(t *testing.T) {
	mat := newGrayMat(480, 640)
	defer mat.Close()
	before := matChecksum(t, mat)

	box := geometry.NewBox(100, 200, 100, 300)
	viz.DrawBoxLabel(New(&mat), &box, viz.DefaultLabel, viz.DefaultBoxColor, true)

	assert.NotEqual(t, before, matChecksum(t, mat))
	// Mats are BGR.
	red := gocv.Vecb{0, 0, 255}
	assert.Equal(t, red, mat.GetVecbAt(200, 100), "left edge")
	assert.Equal(t, red, mat.GetVecbAt(65, 190), "label band")
	assert.Equal(t, gocv.Vecb{128, 128, 128}, mat.GetVecbAt(200, 150), "box interior")
}

func TestCanvas_DrawBoxesAndLabels(t *testing.T) {
	mat := newGrayMat(240, 320)
	defer mat.Close()

	dets := []viz.Detection{
		{ClassID: 2, Box: geometry.NewBox(-20, 60, 80, 150)},
		{ClassID: 5, Box: geometry.NewBox(250, 400, 100, 300)},
	}
	_, err := viz.DrawBoxesAndLabels(New(&mat), dets, viz.ClassMap{2: "diver", 5: "robot"}, viz.DefaultBatchColor)
	require.NoError(t, err)

	yellow := gocv.Vecb{0, 255, 255}
	assert.Equal(t, yellow, mat.GetVecbAt(120, 60))
	assert.Equal(t, yellow, mat.GetVecbAt(200, 250))
}

// Canvas must satisfy the renderer interface.
var _ viz.Canvas = (*Canvas)(nil)
