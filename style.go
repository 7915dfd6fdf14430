package maskblur

// Style governs how the blurred coverage is composited with the source
// shape. Only these four behaviors exist, so styles are a tagged enum with
// a dispatch switch rather than an interface.
type Style uint8

const (
	// StyleNormal returns the blurred mask alone.
	StyleNormal Style = iota

	// StyleSolid screens the source over the blur: dst = s + d - s*d/255.
	// The result is at least as opaque as both operands, giving a solid
	// interior with a soft edge.
	StyleSolid

	// StyleOuter zeroes the blur under the opaque parts of the source,
	// leaving a glow outside the shape only.
	StyleOuter

	// StyleInner keeps the blur inside the shape: the result is trimmed
	// back to the source's original bounds and multiplied by the
	// normalized source alpha.
	StyleInner
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleSolid:
		return "solid"
	case StyleOuter:
		return "outer"
	case StyleInner:
		return "inner"
	}
	return "unknown"
}

// mulDiv255Round returns round(a*b/255) for a, b in [0, 255].
func mulDiv255Round(a, b uint32) uint32 {
	prod := a*b + 128
	return (prod + (prod >> 8)) >> 8
}

// alpha255To256 maps alpha in [0, 255] to a multiplier in [1, 256], so that
// a subsequent >>8 divides by 255 with no error at the endpoints.
func alpha255To256(a uint8) uint32 { return uint32(a) + 1 }

// alphaMul scales x by a [0, 256] factor.
func alphaMul(x uint8, scale256 uint32) uint8 {
	return uint8((uint32(x) * scale256) >> 8)
}

// clampWithOrig composites the original source into the blurred destination
// in place, for the Solid and Outer styles. dst addresses the sub-window of
// the blurred mask that sits exactly over the source bounds.
func clampWithOrig(dst []uint8, dstRB int, src []uint8, srcRB int, sw, sh int, style Style) {
	for y := 0; y < sh; y++ {
		d := dst[y*dstRB : y*dstRB+sw]
		s := src[y*srcRB : y*srcRB+sw]
		switch style {
		case StyleSolid:
			for x := 0; x < sw; x++ {
				sv := uint32(s[x])
				dv := uint32(d[x])
				d[x] = uint8(sv + dv - mulDiv255Round(sv, dv))
			}
		case StyleOuter:
			for x := 0; x < sw; x++ {
				if s[x] != 0 {
					d[x] = alphaMul(d[x], alpha255To256(255-s[x]))
				}
			}
		}
	}
}

// mergeSrcWithBlur writes blur*src/255 into dst, for the Inner style.
// dst is sized to the source's original bounds; blur addresses the
// sub-window of the blurred mask over those bounds.
func mergeSrcWithBlur(dst []uint8, dstRB int, src []uint8, srcRB int,
	blur []uint8, blurRB int, sw, sh int) {
	for y := 0; y < sh; y++ {
		d := dst[y*dstRB : y*dstRB+sw]
		s := src[y*srcRB : y*srcRB+sw]
		b := blur[y*blurRB : y*blurRB+sw]
		for x := 0; x < sw; x++ {
			d[x] = alphaMul(b[x], alpha255To256(s[x]))
		}
	}
}
