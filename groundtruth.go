package maskblur

import (
	"image"
	"math"
)

// BlurGroundTruth is a direct separable convolution with an explicitly
// normalized discrete Gaussian window. It takes no fixed-point shortcuts
// and is far too slow for production use; it exists as the correctness
// oracle the fast approximations are validated against.
func BlurGroundTruth(src *Mask, radius float64, style Style) (*Mask, image.Point, error) {
	if src == nil || src.Format != FormatA8 {
		return nil, image.Point{}, ErrUnsupportedFormat
	}
	if radius <= 0 {
		return nil, image.Point{}, ErrInvalidRadius
	}

	adjusted := radius * blurRadiusFudge
	stddev := adjusted / 2.0
	variance := stddev * stddev

	// Window of ~4 standard deviations, rounded up to odd.
	windowSize := ceilInt(stddev*4) | 1

	gaussWindow := make([]float64, windowSize)
	halfWindow := windowSize >> 1

	gaussWindow[halfWindow] = 1
	windowSum := 1.0
	for x := 1; x <= halfWindow; x++ {
		g := math.Exp(float64(-x*x) / variance)
		gaussWindow[halfWindow+x] = g
		gaussWindow[halfWindow-x] = g
		windowSum += 2 * g
	}
	// The window stays un-normalized; each output divides by windowSum.

	pad := halfWindow
	margin := image.Pt(pad, pad)

	dst := &Mask{
		Bounds: src.Bounds.Inset(-pad),
		Format: FormatA8,
	}
	dst.RowBytes = dst.Bounds.Dx()

	if src.Image == nil {
		if style == StyleInner {
			dst.Bounds = src.Bounds
			dst.RowBytes = src.RowBytes
		}
		return dst, margin, nil
	}

	dstSize := dst.imageSize()
	if dstSize == 0 {
		return nil, image.Point{}, ErrAllocationTooLarge
	}

	srcWidth := src.Bounds.Dx()
	srcHeight := src.Bounds.Dy()
	dstWidth := dst.Bounds.Dx()

	dstPixels := make([]uint8, dstSize)

	// Double-padded copy of the source, so neither pass ever has to test
	// whether the window hangs outside the row.
	padWidth := srcWidth + 4*pad
	padHeight := srcHeight
	padPixels := make([]uint8, padWidth*padHeight)
	for y := 0; y < srcHeight; y++ {
		copy(padPixels[y*padWidth+2*pad:y*padWidth+2*pad+srcWidth],
			src.Image[y*src.RowBytes:y*src.RowBytes+srcWidth])
	}

	// Blur in X, transposing into a float buffer that is itself
	// double-padded for the second pass.
	tmpWidth := padHeight + 4*pad
	tmpHeight := padWidth - 2*pad
	tmpImage := make([]float64, tmpWidth*tmpHeight)

	for y := 0; y < padHeight; y++ {
		row := padPixels[y*padWidth:]
		for x := pad; x < padWidth-pad; x++ {
			var sum float64
			for i := -pad; i <= pad; i++ {
				sum += gaussWindow[pad+i] * float64(row[x+i])
			}
			tmpImage[(x-pad)*tmpWidth+y+2*pad] = sum / windowSum
		}
	}

	// Blur in Y, transposing again so both passes read memory linearly,
	// filling in the actual destination.
	for y := 0; y < tmpHeight; y++ {
		row := tmpImage[y*tmpWidth:]
		for x := pad; x < tmpWidth-pad; x++ {
			var sum float64
			for i := -pad; i <= pad; i++ {
				sum += gaussWindow[pad+i] * row[x+i]
			}
			v := int(sum/windowSum + 0.5)
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			dstPixels[(x-pad)*dstWidth+y] = uint8(v)
		}
	}

	dst.Image = dstPixels

	switch style {
	case StyleInner:
		srcSize := src.imageSize()
		if srcSize == 0 {
			return nil, image.Point{}, ErrAllocationTooLarge
		}
		inner := make([]uint8, srcSize)
		mergeSrcWithBlur(inner, src.RowBytes, src.Image, src.RowBytes,
			dstPixels[pad*dst.RowBytes+pad:], dst.RowBytes, srcWidth, srcHeight)
		dst.Image = inner
		dst.Bounds = src.Bounds
		dst.RowBytes = src.RowBytes
	case StyleSolid, StyleOuter:
		clampWithOrig(dstPixels[pad*dst.RowBytes+pad:], dst.RowBytes,
			src.Image, src.RowBytes, srcWidth, srcHeight, style)
	}

	return dst, margin, nil
}
