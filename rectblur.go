package maskblur

import "image"

/*
Convolving a box with itself three times gives a piecewise quadratic kernel:

	0                             x <= -1.5
	9/8 + 3/2 x + 1/2 x^2  -1.5 < x <= -0.5
	3/4 - x^2              -0.5 < x <=  0.5
	9/8 - 3/2 x + 1/2 x^2   0.5 < x <=  1.5
	0                       1.5 < x

The profile curve of a blurred step edge is its indefinite integral, a
piecewise cubic running from 1 (fully inside) down to 0 (fully outside):

	1                                       x <= -1.5
	9/16 + 9/8 x + 3/4 x^2 + 1/6 x^3 -1.5 < x <= -0.5
	1/2 + 3/4 x - 1/3 x^3            -0.5 < x <=  0.5
	7/16 + 9/8 x - 3/4 x^2 + 1/6 x^3  0.5 < x <=  1.5
	0                                 1.5 < x
*/

// gaussianIntegral evaluates the step-response curve above for x measured
// in radii from the edge (positive = outside).
func gaussianIntegral(x float64) float64 {
	if x > 1.5 {
		return 0.0
	}
	if x < -1.5 {
		return 1.0
	}

	x2 := x * x
	x3 := x2 * x

	if x > 0.5 {
		return 0.5625 - (x3/6.0 - 3.0*x2*0.25 + 1.125*x)
	}
	if x > -0.5 {
		return 0.5 - (0.75*x - x3/3.0)
	}
	return 0.4375 + (-x3/6.0 - 3.0*x2*0.25 - 1.125*x)
}

// profileSize returns the length of the profile table for a radius.
func profileSize(radius float64) int {
	return roundInt(radius * 3)
}

// computeProfile fills in the profile signature of a blurred half-plane
// with the given radius. The values are stored pre-inverted (255 - x)
// because consumers composite with screened multiplications all the time.
// Values run monotonically from 255 (deep inside) toward 0 (far outside).
func computeProfile(radius float64) []uint8 {
	size := profileSize(radius)
	center := size >> 1
	profile := make([]uint8, size)

	invr := 1.0 / radius

	profile[0] = 255
	for x := 1; x < size; x++ {
		scaledX := (float64(center) - float64(x) - 0.5) * invr
		gi := gaussianIntegral(scaledX)
		profile[x] = 255 - uint8(255.0*gi)
	}
	return profile
}

// profileLookup maps a destination coordinate to a profile entry by its
// distance from the nearer original edge.
//
// Implementation adapted from Michael Herf's shadow-rectangle approach:
// http://stereopsis.com/shadowrect/
func profileLookup(profile []uint8, loc, blurredWidth, sharpWidth int) uint8 {
	dx := abs((loc<<1)+1-blurredWidth) - sharpWidth
	ox := dx >> 1
	if ox < 0 {
		ox = 0
	}
	if ox >= len(profile) {
		// Fractional bounds rounding can push the first pixel one step
		// past the table; pin it.
		ox = len(profile) - 1
	}
	return profile[ox]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// BlurRect blurs an axis-aligned rectangle analytically: the blurred mask
// of a rectangle is separable into an independent horizontal and vertical
// step-response profile, so each output pixel is
// horizontal[x]*vertical[y]/255 with no 2D convolution at all. This is the
// fast path for the common "blur a rectangle" case (drop shadows).
//
// When the kernel is wider than the rectangle itself the profile table no
// longer applies and the curve is evaluated directly as the difference of
// the two opposing edge integrals.
//
// Normal and Solid are identical for analytic rectangles (the interior is
// already fully opaque), so Solid needs no special handling.
func BlurRect(r Rect, radius float64, style Style, opts ...Option) (*Mask, image.Point, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if radius <= 0 {
		return nil, image.Point{}, ErrInvalidRadius
	}

	// Match the radius interpretation of the box-filter pipeline.
	adjusted := radius * blurRadiusFudge
	adjusted = (adjusted + 0.5) * 2.0

	size := profileSize(adjusted)
	pad := size / 2
	margin := image.Pt(pad, pad)

	dst := &Mask{
		Bounds: image.Rect(roundInt(r.Left)-pad, roundInt(r.Top)-pad,
			roundInt(r.Right)+pad, roundInt(r.Bottom)+pad),
		Format: FormatA8,
	}
	dst.RowBytes = dst.Bounds.Dx()

	sw := floorInt(r.Width())
	sh := floorInt(r.Height())

	sharpBounds := image.Rect(roundInt(r.Left), roundInt(r.Top),
		roundInt(r.Right), roundInt(r.Bottom))

	if cfg.boundsOnly {
		if style == StyleInner {
			dst.Bounds = sharpBounds
			dst.RowBytes = sw
		}
		return dst, margin, nil
	}

	profile := computeProfile(adjusted)

	dstSize := dst.imageSize()
	if dstSize == 0 {
		return nil, image.Point{}, ErrAllocationTooLarge
	}
	dp := make([]uint8, dstSize)
	dst.Image = dp

	dstWidth := dst.Bounds.Dx()
	dstHeight := dst.Bounds.Dy()

	// Nearest odd number below the profile size marks the center of the
	// (2x scaled) profile.
	center := (size &^ 1) - 1
	w := sw - center
	h := sh - center

	horizontal := make([]uint8, dstWidth)
	for x := 0; x < dstWidth; x++ {
		if size <= sw {
			horizontal[x] = profileLookup(profile, x, dstWidth, w)
		} else {
			span := float64(sw) / adjusted
			giX := 1.5 - (float64(x)+0.5)/adjusted
			horizontal[x] = uint8(255.0 * (gaussianIntegral(giX) - gaussianIntegral(giX+span)))
		}
	}

	di := 0
	for y := 0; y < dstHeight; y++ {
		var profileY uint8
		if size <= sh {
			profileY = profileLookup(profile, y, dstHeight, h)
		} else {
			span := float64(sh) / adjusted
			giY := 1.5 - (float64(y)+0.5)/adjusted
			profileY = uint8(255.0 * (gaussianIntegral(giY) - gaussianIntegral(giY+span)))
		}

		for x := 0; x < dstWidth; x++ {
			dp[di] = uint8(mulDiv255Round(uint32(horizontal[x]), uint32(profileY)))
			di++
		}
	}

	switch style {
	case StyleInner:
		// The real destination mirrors the sharp rectangle.
		if sw <= 0 || sh <= 0 {
			return nil, image.Point{}, ErrAllocationTooLarge
		}
		inner := make([]uint8, sw*sh)
		for y := 0; y < sh; y++ {
			copy(inner[y*sw:(y+1)*sw], dp[(y+pad)*dstWidth+pad:])
		}
		dst.Image = inner
		dst.Bounds = sharpBounds
		dst.RowBytes = sw
	case StyleOuter:
		for y := pad; y < dstHeight-pad; y++ {
			row := dp[y*dstWidth+pad : y*dstWidth+pad+sw]
			for i := range row {
				row[i] = 0
			}
		}
	}

	return dst, margin, nil
}
