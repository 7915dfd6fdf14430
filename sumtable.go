package maskblur

// buildSumBuffer fills sum with the summed-area table (integral image) of
// src in one raster-order pass. The table has an extra row and column of
// zeros at index 0, so
//
//	sum[y+1][x+1] = sum over src[0..y][0..x]
//	sum[0][*] == sum[*][0] == 0
//
// and in-bounds window queries never need edge branches. The table stride
// is srcW+1 and entries are uint32, which holds 255*srcW*srcH as long as
// the source stays under ~16.8M pixels; the orchestrator enforces that
// before allocating the table.
func buildSumBuffer(sum []uint32, srcW, srcH int, src []uint8, srcRB int) {
	sumW := srcW + 1

	for i := 0; i < sumW; i++ {
		sum[i] = 0
	}
	for y := 0; y < srcH; y++ {
		row := src[y*srcRB : y*srcRB+srcW]
		si := (y + 1) * sumW
		sum[si] = 0
		for x := 0; x < srcW; x++ {
			sum[si+1+x] = uint32(row[x]) + sum[si+1+x-sumW] + sum[si+x] - sum[si+x-sumW]
		}
	}
}

// clampPos clamps a coordinate to be non-negative.
func clampPos(x int) int {
	if x < 0 {
		return 0
	}
	return x
}

// kernelClamped is the applyKernel path for kernels wider than the source
// (2*rx > sw). Every lookup clamps on both sides, possibly more than once,
// which the fast path's incremental index arithmetic cannot express.
func kernelClamped(dst []uint8, rx, ry int, sum []uint32, sw, sh int, half uint32) {
	scale := uint32(1<<24) / uint32((2*rx+1)*(2*ry+1))

	sumStride := sw + 1
	dw := sw + 2*rx
	dh := sh + 2*ry

	prevY, nextY := -2*ry, 1
	di := 0

	for y := 0; y < dh; y++ {
		py := clampPos(prevY) * sumStride
		ny := min(nextY, sh) * sumStride

		prevX, nextX := -2*rx, 1
		for x := 0; x < dw; x++ {
			px := clampPos(prevX)
			nx := min(nextX, sw)

			tmp := sum[px+py] + sum[nx+ny] - sum[nx+py] - sum[px+ny]
			dst[di] = uint8((tmp*scale + half) >> 24)
			di++

			prevX++
			nextX++
		}
		prevY++
		nextY++
	}
}

// applyKernel box-blurs the source described by sum into dst using
// inclusion-exclusion over four table lookups per destination pixel. The
// window is (2*rx+1) x (2*ry+1) and out-of-range coordinates clamp to the
// table edge (replicate boundary). sw and sh are the source width and
// height; since the table carries the leading zero row/column they double
// as the max pinned coordinates.
//
// Each row splits into a left section (prev_x pinned to 0), a center
// section with no pinning where the four indices just increment, and a
// right section (next_x pinned to sw).
func applyKernel(dst []uint8, rx, ry int, sum []uint32, sw, sh int, half uint32) {
	if 2*rx > sw {
		kernelClamped(dst, rx, ry, sum, sw, sh, half)
		return
	}

	scale := uint32(1<<24) / uint32((2*rx+1)*(2*ry+1))

	sumStride := sw + 1
	dw := sw + 2*rx
	dh := sh + 2*ry

	prevY, nextY := -2*ry, 1
	di := 0

	for y := 0; y < dh; y++ {
		py := clampPos(prevY) * sumStride
		ny := min(nextY, sh) * sumStride

		prevX, nextX := -2*rx, 1
		x := 0

		for ; x < 2*rx; x++ {
			nx := nextX
			tmp := sum[py] + sum[nx+ny] - sum[nx+py] - sum[ny]
			dst[di] = uint8((tmp*scale + half) >> 24)
			di++
			prevX++
			nextX++
		}

		i0 := prevX + py
		i1 := nextX + ny
		i2 := nextX + py
		i3 := prevX + ny
		for ; x < dw-2*rx; x++ {
			tmp := sum[i0] + sum[i1] - sum[i2] - sum[i3]
			i0++
			i1++
			i2++
			i3++
			dst[di] = uint8((tmp*scale + half) >> 24)
			di++
		}

		prevX = i0 - py
		for ; x < dw; x++ {
			px := prevX
			nx := sw
			tmp := sum[px+py] + sum[nx+ny] - sum[nx+py] - sum[px+ny]
			dst[di] = uint8((tmp*scale + half) >> 24)
			di++
			prevX++
		}

		prevY++
		nextY++
	}
}

// kernelInterpClamped is the applyKernelInterp path for kernels wider than
// the source, mirroring kernelClamped for both the outer and inner windows.
func kernelInterpClamped(dst []uint8, rx, ry int, sum []uint32, sw, sh int,
	outerWeight uint8, half uint32) {

	outer := int(outerWeight)
	inner := 255 - outer
	outer += outer >> 7
	inner += inner >> 7
	outerScale := uint32(outer<<16) / uint32((2*rx+1)*(2*ry+1))
	innerScale := uint32(inner<<16) / uint32((2*rx-1)*(2*ry-1))

	sumStride := sw + 1
	dw := sw + 2*rx
	dh := sh + 2*ry

	prevY, nextY := -2*ry, 1
	di := 0

	for y := 0; y < dh; y++ {
		py := clampPos(prevY) * sumStride
		ny := min(nextY, sh) * sumStride
		ipy := clampPos(prevY+1) * sumStride
		iny := min(nextY-1, sh) * sumStride

		prevX, nextX := -2*rx, 1
		for x := 0; x < dw; x++ {
			px := clampPos(prevX)
			nx := min(nextX, sw)
			ipx := clampPos(prevX + 1)
			inx := min(nextX-1, sw)

			outerSum := sum[px+py] + sum[nx+ny] - sum[nx+py] - sum[px+ny]
			innerSum := sum[ipx+ipy] + sum[inx+iny] - sum[inx+ipy] - sum[ipx+iny]
			dst[di] = uint8((outerSum*outerScale + innerSum*innerScale + half) >> 24)
			di++

			prevX++
			nextX++
		}
		prevY++
		nextY++
	}
}

// applyKernelInterp is the fractional-radius variant of applyKernel. It
// evaluates an outer (2*rx+1)^2 window and an inner (2*rx-1)^2 window per
// pixel and blends them with the outerWeight/255 split, weights above 127
// rounded up, exactly like boxBlurInterp. Requires rx, ry >= 1 and
// outerWeight <= 255.
func applyKernelInterp(dst []uint8, rx, ry int, sum []uint32, sw, sh int,
	outerWeight uint8, half uint32) {

	if 2*rx > sw {
		kernelInterpClamped(dst, rx, ry, sum, sw, sh, outerWeight, half)
		return
	}

	outer := int(outerWeight)
	inner := 255 - outer
	outer += outer >> 7
	inner += inner >> 7
	outerScale := uint32(outer<<16) / uint32((2*rx+1)*(2*ry+1))
	innerScale := uint32(inner<<16) / uint32((2*rx-1)*(2*ry-1))

	sumStride := sw + 1
	dw := sw + 2*rx
	dh := sh + 2*ry

	prevY, nextY := -2*ry, 1
	di := 0

	for y := 0; y < dh; y++ {
		py := clampPos(prevY) * sumStride
		ny := min(nextY, sh) * sumStride
		ipy := clampPos(prevY+1) * sumStride
		iny := min(nextY-1, sh) * sumStride

		prevX, nextX := -2*rx, 1
		x := 0

		for ; x < 2*rx; x++ {
			nx := nextX
			inx := nextX - 1

			outerSum := sum[py] + sum[nx+ny] - sum[nx+py] - sum[ny]
			innerSum := sum[ipy] + sum[inx+iny] - sum[inx+ipy] - sum[iny]
			dst[di] = uint8((outerSum*outerScale + innerSum*innerScale + half) >> 24)
			di++
			prevX++
			nextX++
		}

		i0 := prevX + py
		i1 := nextX + ny
		i2 := nextX + py
		i3 := prevX + ny
		i4 := prevX + 1 + ipy
		i5 := nextX - 1 + iny
		i6 := nextX - 1 + ipy
		i7 := prevX + 1 + iny
		for ; x < dw-2*rx; x++ {
			outerSum := sum[i0] + sum[i1] - sum[i2] - sum[i3]
			innerSum := sum[i4] + sum[i5] - sum[i6] - sum[i7]
			i0++
			i1++
			i2++
			i3++
			i4++
			i5++
			i6++
			i7++
			dst[di] = uint8((outerSum*outerScale + innerSum*innerScale + half) >> 24)
			di++
		}

		prevX = i0 - py
		for ; x < dw; x++ {
			px := prevX
			nx := sw
			ipx := prevX + 1
			inx := sw

			outerSum := sum[px+py] + sum[nx+ny] - sum[nx+py] - sum[px+ny]
			innerSum := sum[ipx+ipy] + sum[inx+iny] - sum[inx+ipy] - sum[ipx+iny]
			dst[di] = uint8((outerSum*outerScale + innerSum*innerScale + half) >> 24)
			di++
			prevX++
		}

		prevY++
		nextY++
	}
}
