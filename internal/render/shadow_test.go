package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/maskblur"
)

func opaqueSquare(t *testing.T, size int) *image.RGBA {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 50, B: 50, A: 255})
		}
	}
	return img
}

func TestDropShadowExpandsCanvas(t *testing.T) {
	src := opaqueSquare(t, 32)
	opts := DefaultShadowOptions()

	res, err := DropShadow(src, opts)
	require.NoError(t, err)
	require.NotNil(t, res.Image)

	bounds := res.Image.Bounds()
	require.Equal(t, image.Point{}, bounds.Min, "canvas is rebased to the origin")
	require.Greater(t, bounds.Dx(), 32, "canvas grows to hold the shadow")
	require.Greater(t, bounds.Dy(), 32)

	// The source content is redrawn intact at the reported offset.
	at := res.Image.RGBAAt(res.Offset.X+16, res.Offset.Y+16)
	require.Equal(t, color.RGBA{R: 200, G: 50, B: 50, A: 255}, at)
}

func TestDropShadowPaintsBelowAndRight(t *testing.T) {
	src := opaqueSquare(t, 32)
	opts := ShadowOptions{
		Radius:  6,
		Offset:  image.Pt(10, 10),
		Color:   color.NRGBA{A: 200},
		Quality: maskblur.QualityLow,
	}

	res, err := DropShadow(src, opts)
	require.NoError(t, err)

	// Just past the bottom-right corner of the content the shadow shows.
	corner := res.Offset.Add(image.Pt(36, 36))
	require.NotZero(t, res.Image.RGBAAt(corner.X, corner.Y).A,
		"shadow expected below and right of the content")

	// The top-right corner of the canvas is beyond both the content and
	// the shadow's reach.
	topRight := res.Image.Bounds().Max.X - 1
	require.Zero(t, res.Image.RGBAAt(topRight, 0).A)
}

func TestDropShadowNoOp(t *testing.T) {
	src := opaqueSquare(t, 8)

	res, err := DropShadow(src, ShadowOptions{Radius: 4})
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 8, 8), res.Image.Bounds(),
		"transparent shadow color keeps the original canvas")
	require.Equal(t, image.Point{}, res.Offset)

	_, err = DropShadow(nil, DefaultShadowOptions())
	require.Error(t, err)
}
