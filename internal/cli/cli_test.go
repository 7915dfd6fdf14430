package cli

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/maskblur"
)

func TestParseStyle(t *testing.T) {
	for name, want := range map[string]maskblur.Style{
		"normal": maskblur.StyleNormal,
		"solid":  maskblur.StyleSolid,
		"outer":  maskblur.StyleOuter,
		"inner":  maskblur.StyleInner,
	} {
		got, err := parseStyle(name)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := parseStyle("fuzzy")
	require.Error(t, err)
}

func TestNoiseMaskDeterministic(t *testing.T) {
	a, err := noiseMask(64, 48, 16, 42, 128)
	require.NoError(t, err)
	b, err := noiseMask(64, 48, 16, 42, 128)
	require.NoError(t, err)
	require.Equal(t, a.Image, b.Image, "same seed, same mask")

	c, err := noiseMask(64, 48, 16, 43, 128)
	require.NoError(t, err)
	require.NotEqual(t, a.Image, c.Image, "different seed, different mask")

	// Thresholding leaves only 0 and 255.
	for _, v := range a.Image {
		require.True(t, v == 0 || v == 255)
	}
}

func TestRectCommandWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "rect.png")
	rootCmd.SetArgs([]string{"rect", "--out", out, "--width", "40", "--height", "30", "--radius", "5"})
	require.NoError(t, rootCmd.Execute())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Greater(t, img.Bounds().Dx(), 40, "output includes the blur margin")
}

func TestShadowCommandRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")

	src := image.NewRGBA(image.Rect(0, 0, 24, 24))
	for y := 4; y < 20; y++ {
		for x := 4; x < 20; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	require.NoError(t, savePNG(in, src))

	rootCmd.SetArgs([]string{"shadow", "--in", in, "--out", out, "--radius", "4"})
	require.NoError(t, rootCmd.Execute())

	img, err := loadPNG(out)
	require.NoError(t, err)
	require.Greater(t, img.Bounds().Dx(), 24, "canvas grew to hold the shadow")
}
