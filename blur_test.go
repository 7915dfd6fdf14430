package maskblur

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func opaqueMask(t *testing.T, w, h int) *Mask {
	t.Helper()
	m, err := NewMask(image.Rect(0, 0, w, h))
	require.NoError(t, err)
	for i := range m.Image {
		m.Image[i] = 255
	}
	return m
}

func TestBlurRejectsBadInput(t *testing.T) {
	src := opaqueMask(t, 8, 8)

	dst, _, err := Blur(nil, 4, StyleNormal)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	require.Nil(t, dst)

	bad := &Mask{Image: make([]uint8, 64), Bounds: image.Rect(0, 0, 8, 8), RowBytes: 8, Format: Format(9)}
	dst, _, err = Blur(bad, 4, StyleNormal)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	require.Nil(t, dst)

	for _, radius := range []float64{0, -1} {
		dst, _, err = Blur(src, radius, StyleNormal)
		require.ErrorIs(t, err, ErrInvalidRadius)
		require.Nil(t, dst)
	}
}

func TestBlurMarginAndBounds(t *testing.T) {
	src := opaqueMask(t, 10, 10)

	dst, margin, err := Blur(src, 5, StyleNormal, WithQuality(QualityLow))
	require.NoError(t, err)
	require.Equal(t, image.Pt(5, 5), margin, "low quality pads by one window radius")
	require.Equal(t, src.Bounds.Inset(-5), dst.Bounds)
	require.Equal(t, dst.Bounds.Dx(), dst.RowBytes)

	dst, margin, err = Blur(src, 6, StyleNormal, WithQuality(QualityHigh))
	require.NoError(t, err)
	require.Equal(t, margin.X*2, dst.Bounds.Dx()-src.Bounds.Dx(),
		"high quality pads by three pass radii")
	require.Greater(t, margin.X, ceilInt(6*blurRadiusFudge),
		"three passes pad more than one window radius")
}

func TestBlurOpaqueSquare(t *testing.T) {
	src := opaqueMask(t, 40, 40)

	for _, strategy := range []Strategy{StrategySeparable, StrategySumTable} {
		dst, _, err := Blur(src, 5, StyleNormal, WithStrategy(strategy))
		require.NoError(t, err)

		// Deep interior stays at (or within one count of) full coverage.
		require.GreaterOrEqual(t, int(dst.At(20, 20)), 254, "strategy %d", strategy)

		// Coverage decays monotonically along the center row toward the
		// right edge of the padded output.
		prev := dst.At(20, 20)
		for x := 20; x < dst.Bounds.Max.X; x++ {
			cur := dst.At(x, 20)
			require.LessOrEqual(t, cur, prev, "strategy %d at x=%d", strategy, x)
			prev = cur
		}
	}
}

// For an integer window the two strategies compute the same box sums and
// differ only in when they round (per axis versus per pass), so they must
// agree within a couple of counts.
func TestStrategiesAgree(t *testing.T) {
	src, err := NewMask(image.Rect(0, 0, 31, 23))
	require.NoError(t, err)
	copy(src.Image, randomRow(t, len(src.Image), 21))

	sep, _, err := Blur(src, 4, StyleNormal, WithStrategy(StrategySeparable))
	require.NoError(t, err)
	tab, _, err := Blur(src, 4, StyleNormal, WithStrategy(StrategySumTable))
	require.NoError(t, err)

	require.Equal(t, sep.Bounds, tab.Bounds)
	require.LessOrEqual(t, maxAbsError(t, sep, tab), 2)
}

// Sub-pixel radius steps may only move the output by a few counts; a jump
// at an integer window boundary means the two-window blend is broken.
func TestFractionalRadiusContinuity(t *testing.T) {
	src, err := NewMask(image.Rect(0, 0, 33, 25))
	require.NoError(t, err)
	copy(src.Image, randomRow(t, len(src.Image), 22))

	const step = 1.0 / 512
	a, _, err := Blur(src, 4, StyleNormal, WithQuality(QualityLow))
	require.NoError(t, err)
	b, _, err := Blur(src, 4+step, StyleNormal, WithQuality(QualityLow))
	require.NoError(t, err)

	require.LessOrEqual(t, maxAbsError(t, a, b), 3,
		"radius step of 1/512 moved a pixel too far")
}

func TestBlurStyles(t *testing.T) {
	src, err := NewMask(image.Rect(0, 0, 24, 24))
	require.NoError(t, err)
	// Opaque square with a soft border so Solid and Normal actually differ.
	for y := 4; y < 20; y++ {
		for x := 4; x < 20; x++ {
			src.Image[y*src.RowBytes+x] = 255
		}
	}

	normal, _, err := Blur(src, 4, StyleNormal)
	require.NoError(t, err)
	solid, _, err := Blur(src, 4, StyleSolid)
	require.NoError(t, err)
	outer, _, err := Blur(src, 4, StyleOuter)
	require.NoError(t, err)
	inner, _, err := Blur(src, 4, StyleInner)
	require.NoError(t, err)

	require.Equal(t, normal.Bounds, solid.Bounds)
	require.Equal(t, normal.Bounds, outer.Bounds)
	require.Equal(t, src.Bounds, inner.Bounds, "inner keeps the source geometry")
	require.Equal(t, src.RowBytes, inner.RowBytes)

	for y := normal.Bounds.Min.Y; y < normal.Bounds.Max.Y; y++ {
		for x := normal.Bounds.Min.X; x < normal.Bounds.Max.X; x++ {
			s := src.At(x, y)

			// Solid is the blur re-unioned with the original shape.
			require.GreaterOrEqual(t, solid.At(x, y), normal.At(x, y), "solid < blur at (%d,%d)", x, y)
			require.GreaterOrEqual(t, solid.At(x, y), s, "solid < src at (%d,%d)", x, y)

			// Outer is fully punched out where the original is opaque.
			if s == 255 {
				require.Zero(t, outer.At(x, y), "outer inside opaque src at (%d,%d)", x, y)
			}

			// Inner never exceeds the blur under the original shape.
			if (image.Pt(x, y)).In(src.Bounds) {
				require.LessOrEqual(t, inner.At(x, y), normal.At(x, y), "inner > blur at (%d,%d)", x, y)
			}
		}
	}
}

func TestBlurBoundsOnly(t *testing.T) {
	src := opaqueMask(t, 16, 16)

	full, fullMargin, err := Blur(src, 5, StyleNormal)
	require.NoError(t, err)

	sized, margin, err := Blur(src, 5, StyleNormal, WithBoundsOnly())
	require.NoError(t, err)
	require.Nil(t, sized.Image)
	require.Equal(t, full.Bounds, sized.Bounds)
	require.Equal(t, full.RowBytes, sized.RowBytes)
	require.Equal(t, fullMargin, margin)

	// A nil pixel buffer behaves the same as the explicit option.
	shell := &Mask{Bounds: src.Bounds, RowBytes: src.RowBytes, Format: FormatA8}
	sized2, margin2, err := Blur(shell, 5, StyleNormal)
	require.NoError(t, err)
	require.Nil(t, sized2.Image)
	require.Equal(t, sized.Bounds, sized2.Bounds)
	require.Equal(t, margin, margin2)

	inner, _, err := Blur(shell, 5, StyleInner)
	require.NoError(t, err)
	require.Nil(t, inner.Image)
	require.Equal(t, src.Bounds, inner.Bounds)
	require.Equal(t, src.RowBytes, inner.RowBytes)
}

func TestBlurSeparableIgnoresStrategyOption(t *testing.T) {
	src, err := NewMask(image.Rect(0, 0, 19, 17))
	require.NoError(t, err)
	copy(src.Image, randomRow(t, len(src.Image), 23))

	pinned, _, err := BlurSeparable(src, 4, StyleNormal, WithStrategy(StrategySumTable))
	require.NoError(t, err)
	plain, _, err := Blur(src, 4, StyleNormal, WithStrategy(StrategySeparable))
	require.NoError(t, err)

	require.Equal(t, plain.Image, pinned.Image)
}

func TestBlurSmallRadiusForcesLowQuality(t *testing.T) {
	src := opaqueMask(t, 12, 12)

	high, marginHigh, err := Blur(src, 2, StyleNormal, WithQuality(QualityHigh))
	require.NoError(t, err)
	low, marginLow, err := Blur(src, 2, StyleNormal, WithQuality(QualityLow))
	require.NoError(t, err)

	require.Equal(t, marginLow, marginHigh, "radius < 3 always runs the single-pass pipeline")
	require.Equal(t, low.Image, high.Image)
}

func BenchmarkBlurLow(b *testing.B) {
	src, _ := NewMask(image.Rect(0, 0, 256, 256))
	for i := range src.Image {
		src.Image[i] = uint8(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Blur(src, 8, StyleNormal, WithQuality(QualityLow))
	}
}

func BenchmarkBlurHigh(b *testing.B) {
	src, _ := NewMask(image.Rect(0, 0, 256, 256))
	for i := range src.Image {
		src.Image[i] = uint8(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Blur(src, 8, StyleNormal, WithQuality(QualityHigh))
	}
}

func BenchmarkBlurSumTable(b *testing.B) {
	src, _ := NewMask(image.Rect(0, 0, 256, 256))
	for i := range src.Image {
		src.Image[i] = uint8(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Blur(src, 8, StyleNormal, WithStrategy(StrategySumTable))
	}
}

func BenchmarkBlurRect(b *testing.B) {
	r := Rect{Left: 0, Top: 0, Right: 256, Bottom: 256}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BlurRect(r, 8, StyleNormal)
	}
}
