package maskblur

// boxBlur performs a 1D box blur in X of the given radii over every row of
// src. If transpose is true, pixels are transposed on write so that X and Y
// swap; reads always stream contiguous memory in X. dst must hold at least
// (width + leftRadius + rightRadius) * height bytes.
//
// The window sum is normalized in 24-bit fixed point: scale = 2^24/kernel
// size, with an optional half bias (2^23, passed by the caller) added
// before the shift to round to nearest.
//
// Each row splits into three regions: a left border where the window grows,
// a center where the window slides at full size, and a right border where
// it shrinks. When width < diameter the growing and shrinking windows
// overlap and there is no center stretch, so that case gets its own branch
// with a hold region between the two borders. Rows whose radii differ are
// zero-filled on the short side to keep the output centered.
//
// Returns the widened row length and the OR of every end-of-row window sum.
// A correct pass drains its window completely, so the residual is zero;
// callers ignore it and tests assert it.
func boxBlur(src []uint8, srcStride int, dst []uint8,
	leftRadius, rightRadius, width, height int,
	transpose bool, half uint32) (newWidth int, residual uint32) {

	diameter := leftRadius + rightRadius
	kernelSize := diameter + 1
	scale := uint32(1<<24) / uint32(kernelSize)
	newWidth = width + 2*max(leftRadius, rightRadius)

	dstXStride, dstYStride := 1, newWidth
	if transpose {
		dstXStride, dstYStride = height, 1
	}

	for y := 0; y < height; y++ {
		var sum uint32
		di := y * dstYStride
		row := src[y*srcStride:]
		right, left := 0, 0

		for x := 0; x < rightRadius-leftRadius; x++ {
			dst[di] = 0
			di += dstXStride
		}

		if width < diameter {
			for x := 0; x < width; x++ {
				sum += uint32(row[right])
				right++
				dst[di] = uint8((sum*scale + half) >> 24)
				di += dstXStride
			}
			// Window covers the whole row: hold the full sum.
			for x := width; x < diameter; x++ {
				dst[di] = uint8((sum*scale + half) >> 24)
				di += dstXStride
			}
			for x := 0; x < width; x++ {
				dst[di] = uint8((sum*scale + half) >> 24)
				sum -= uint32(row[left])
				left++
				di += dstXStride
			}
		} else {
			for x := 0; x < diameter; x++ {
				sum += uint32(row[right])
				right++
				dst[di] = uint8((sum*scale + half) >> 24)
				di += dstXStride
			}
			for x := diameter; x < width; x++ {
				sum += uint32(row[right])
				right++
				dst[di] = uint8((sum*scale + half) >> 24)
				sum -= uint32(row[left])
				left++
				di += dstXStride
			}
			for x := 0; x < diameter; x++ {
				dst[di] = uint8((sum*scale + half) >> 24)
				sum -= uint32(row[left])
				left++
				di += dstXStride
			}
		}

		for x := 0; x < leftRadius-rightRadius; x++ {
			dst[di] = 0
			di += dstXStride
		}

		residual |= sum
	}
	return newWidth, residual
}

// boxBlurInterp is the box blur variant for non-integer radii. It keeps two
// running sums, an outer one for the rounded-up window (diameter 2*radius)
// and an inner one for the window two pixels narrower, and blends them per
// pixel with fixed-point weights outerWeight/255 and (255-outerWeight)/255.
// In float the result would be
//
//	outerWeight*outerSum/kernelSize + (1-outerWeight)*innerSum/(kernelSize-2)
//
// Weights above 127 are rounded up so the pair still sums to one after the
// 8-bit squeeze. Requires radius >= 1 (the inner window must be non-empty).
//
// Region structure, transpose handling and the residual return match
// boxBlur.
func boxBlurInterp(src []uint8, srcStride int, dst []uint8,
	radius, width, height int,
	transpose bool, outerWeight uint8, half uint32) (newWidth int, residual uint32) {

	diameter := radius * 2
	kernelSize := diameter + 1

	outer := int(outerWeight)
	inner := 255 - outer
	outer += outer >> 7
	inner += inner >> 7
	outerScale := uint32(outer<<16) / uint32(kernelSize)
	innerScale := uint32(inner<<16) / uint32(kernelSize-2)

	newWidth = width + diameter
	dstXStride, dstYStride := 1, newWidth
	if transpose {
		dstXStride, dstYStride = height, 1
	}

	for y := 0; y < height; y++ {
		var outerSum, innerSum uint32
		di := y * dstYStride
		row := src[y*srcStride:]
		right, left := 0, 0

		if width < diameter {
			for x := 0; x < width; x++ {
				innerSum = outerSum
				outerSum += uint32(row[right])
				right++
				dst[di] = uint8((outerSum*outerScale + innerSum*innerScale + half) >> 24)
				di += dstXStride
			}
			for x := width; x < diameter; x++ {
				dst[di] = uint8((outerSum*outerScale + innerSum*innerScale + half) >> 24)
				di += dstXStride
			}
			for x := 0; x < width; x++ {
				innerSum = outerSum - uint32(row[left])
				left++
				dst[di] = uint8((outerSum*outerScale + innerSum*innerScale + half) >> 24)
				di += dstXStride
				outerSum = innerSum
			}
		} else {
			for x := 0; x < diameter; x++ {
				innerSum = outerSum
				outerSum += uint32(row[right])
				right++
				dst[di] = uint8((outerSum*outerScale + innerSum*innerScale + half) >> 24)
				di += dstXStride
			}
			for x := diameter; x < width; x++ {
				innerSum = outerSum - uint32(row[left])
				outerSum += uint32(row[right])
				right++
				dst[di] = uint8((outerSum*outerScale + innerSum*innerScale + half) >> 24)
				di += dstXStride
				outerSum -= uint32(row[left])
				left++
			}
			for x := 0; x < diameter; x++ {
				innerSum = outerSum - uint32(row[left])
				left++
				dst[di] = uint8((outerSum*outerScale + innerSum*innerScale + half) >> 24)
				di += dstXStride
				outerSum = innerSum
			}
		}

		residual |= outerSum | innerSum
	}
	return newWidth, residual
}

// adjustedRadii splits a fractional pass radius into the lo/hi integer pair
// used by the non-interpolated high-quality schedule. Both start at
// ceil(passRadius); when the ceiling overshoots by more than half a pixel
// the lo radius drops by one so the pass triple stays centered.
func adjustedRadii(passRadius float64) (lo, hi int) {
	hi = ceilInt(passRadius)
	lo = hi
	if float64(hi)-passRadius > 0.5 {
		lo = hi - 1
	}
	return lo, hi
}
