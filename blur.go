package maskblur

import (
	"image"
	"math"
)

// blurRadiusFudge scales the requested radius so the three-pass box blur
// matches the spread of a true Gaussian of the same nominal radius. The
// magic constant is 1/sqrt(3).
const blurRadiusFudge = 0.57735

func ceilInt(x float64) int  { return int(math.Ceil(x)) }
func floorInt(x float64) int { return int(math.Floor(x)) }
func roundInt(x float64) int { return int(math.Round(x)) }

// Blur computes a blurred coverage mask from src and returns it together
// with the margin (dx, dy) by which the destination bounds outgrow the
// source bounds. The source is read-only; the returned mask is newly
// allocated and owned by the caller.
//
// The radius is fractional: sub-pixel radii are realized by blending two
// adjacent integer window sizes rather than by a fractional window, so the
// output varies continuously across integer radii.
//
// A nil src.Image (or WithBoundsOnly) computes bounds, stride and margin
// without touching pixels.
func Blur(src *Mask, radius float64, style Style, opts ...Option) (*Mask, image.Point, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return blurMask(src, radius, style, cfg)
}

// BlurSeparable is Blur pinned to the separable strategy, kept as a named
// entry point for callers that never want the summed-area table's O(w*h)
// scratch footprint.
func BlurSeparable(src *Mask, radius float64, style Style, opts ...Option) (*Mask, image.Point, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	cfg.strategy = StrategySeparable
	return blurMask(src, radius, style, cfg)
}

func blurMask(src *Mask, radius float64, style Style, cfg config) (*Mask, image.Point, error) {
	if src == nil || src.Format != FormatA8 {
		return nil, image.Point{}, ErrUnsupportedFormat
	}
	if radius <= 0 {
		return nil, image.Point{}, ErrInvalidRadius
	}

	quality := cfg.quality
	if radius < 3 {
		// High quality buys nothing at small radii; keep it cheap.
		quality = QualityLow
	}

	// High quality approximates a Gaussian with three box-blur passes.
	passCount := 1
	passRadius := radius
	if quality == QualityHigh {
		passCount = 3
		passRadius = radius * blurRadiusFudge
	}

	rx := ceilInt(passRadius)
	outerWeight := 255 - roundInt((float64(rx)-passRadius)*255)
	if rx <= 0 {
		return nil, image.Point{}, ErrInvalidRadius
	}
	ry := rx // square blur only

	padX := passCount * rx
	padY := passCount * ry
	margin := image.Pt(padX, padY)

	dst := &Mask{
		Bounds: image.Rect(src.Bounds.Min.X-padX, src.Bounds.Min.Y-padY,
			src.Bounds.Max.X+padX, src.Bounds.Max.Y+padY),
		Format: FormatA8,
	}
	dst.RowBytes = dst.Bounds.Dx()

	if cfg.boundsOnly || src.Image == nil {
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

	sw := src.Bounds.Dx()
	sh := src.Bounds.Dy()
	sp := src.Image
	half := cfg.half()

	Logger().Debug("maskblur: blur",
		"radius", radius, "style", style.String(),
		"passes", passCount, "window", rx, "outerWeight", outerWeight)

	dp := make([]uint8, dstSize)
	dst.Image = dp

	if cfg.strategy == StrategySeparable {
		tmp := make([]uint8, dstSize)
		w, h := sw, sh

		if outerWeight == 255 {
			loRadius, hiRadius := adjustedRadii(passRadius)
			if quality == QualityHigh {
				// Three X blurs, with a transpose on the final one.
				w, _ = boxBlur(sp, src.RowBytes, tmp, loRadius, hiRadius, w, h, false, half)
				w, _ = boxBlur(tmp, w, dp, hiRadius, loRadius, w, h, false, half)
				w, _ = boxBlur(dp, w, tmp, hiRadius, hiRadius, w, h, true, half)
				// Three Y blurs, with a transpose on the final one.
				h, _ = boxBlur(tmp, h, dp, loRadius, hiRadius, h, w, false, half)
				h, _ = boxBlur(dp, h, tmp, hiRadius, loRadius, h, w, false, half)
				h, _ = boxBlur(tmp, h, dp, hiRadius, hiRadius, h, w, true, half)
			} else {
				w, _ = boxBlur(sp, src.RowBytes, tmp, rx, rx, w, h, true, half)
				h, _ = boxBlur(tmp, h, dp, ry, ry, h, w, true, half)
			}
		} else {
			if quality == QualityHigh {
				w, _ = boxBlurInterp(sp, src.RowBytes, tmp, rx, w, h, false, uint8(outerWeight), half)
				w, _ = boxBlurInterp(tmp, w, dp, rx, w, h, false, uint8(outerWeight), half)
				w, _ = boxBlurInterp(dp, w, tmp, rx, w, h, true, uint8(outerWeight), half)
				h, _ = boxBlurInterp(tmp, h, dp, ry, h, w, false, uint8(outerWeight), half)
				h, _ = boxBlurInterp(dp, h, tmp, ry, h, w, false, uint8(outerWeight), half)
				h, _ = boxBlurInterp(tmp, h, dp, ry, h, w, true, uint8(outerWeight), half)
			} else {
				w, _ = boxBlurInterp(sp, src.RowBytes, tmp, rx, w, h, true, uint8(outerWeight), half)
				h, _ = boxBlurInterp(tmp, h, dp, ry, h, w, true, uint8(outerWeight), half)
			}
		}
	} else {
		// One summed-area arena sized for the largest pass, rebuilt in
		// place for each of the (up to three) passes.
		storageW := sw + 2*(passCount-1)*rx + 1
		storageH := sh + 2*(passCount-1)*ry + 1
		if int64(255)*int64(storageW)*int64(storageH) > math.MaxUint32 {
			// uint32 table entries must hold the whole-image sum.
			return nil, image.Point{}, ErrAllocationTooLarge
		}
		sum := make([]uint32, storageW*storageH)

		// Pass 1: src -> dp.
		buildSumBuffer(sum, sw, sh, sp, src.RowBytes)
		if outerWeight == 255 {
			applyKernel(dp, rx, ry, sum, sw, sh, half)
		} else {
			applyKernelInterp(dp, rx, ry, sum, sw, sh, uint8(outerWeight), half)
		}

		if quality == QualityHigh {
			// Pass 2: dp -> tmp.
			tmpSW := sw + 2*rx
			tmpSH := sh + 2*ry
			tmp := make([]uint8, dstSize)
			buildSumBuffer(sum, tmpSW, tmpSH, dp, tmpSW)
			if outerWeight == 255 {
				applyKernel(tmp, rx, ry, sum, tmpSW, tmpSH, half)
			} else {
				applyKernelInterp(tmp, rx, ry, sum, tmpSW, tmpSH, uint8(outerWeight), half)
			}

			// Pass 3: tmp -> dp.
			tmpSW += 2 * rx
			tmpSH += 2 * ry
			buildSumBuffer(sum, tmpSW, tmpSH, tmp, tmpSW)
			if outerWeight == 255 {
				applyKernel(dp, rx, ry, sum, tmpSW, tmpSH, half)
			} else {
				applyKernelInterp(dp, rx, ry, sum, tmpSW, tmpSH, uint8(outerWeight), half)
			}
		}
	}

	switch style {
	case StyleInner:
		// The real destination mirrors the source size; the blur is read
		// from the sub-window sitting over the original bounds.
		srcSize := src.imageSize()
		if srcSize == 0 {
			return nil, image.Point{}, ErrAllocationTooLarge
		}
		inner := make([]uint8, srcSize)
		mergeSrcWithBlur(inner, src.RowBytes, sp, src.RowBytes,
			dp[padY*dst.RowBytes+padX:], dst.RowBytes, sw, sh)
		dst.Image = inner
		dst.Bounds = src.Bounds
		dst.RowBytes = src.RowBytes
	case StyleSolid, StyleOuter:
		clampWithOrig(dp[padY*dst.RowBytes+padX:], dst.RowBytes,
			sp, src.RowBytes, sw, sh, style)
	}

	return dst, margin, nil
}
