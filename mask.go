package maskblur

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// Format identifies the pixel layout of a Mask.
type Format uint8

const (
	// FormatA8 is a single-channel 8-bit coverage buffer, the only format
	// the blur engine accepts.
	FormatA8 Format = iota
)

// Mask is a rectangle-bounded 8-bit coverage buffer.
// Values range from 0 (fully transparent) to 255 (fully opaque).
//
// Image holds RowBytes bytes per row; RowBytes may exceed the bounds width.
// A Mask produced by the engine is newly allocated and owned by the caller.
// A nil Image with valid Bounds is legal and means "bounds only".
type Mask struct {
	Image    []uint8
	Bounds   image.Rectangle
	RowBytes int
	Format   Format
}

// NewMask creates a zeroed A8 mask covering bounds.
// It returns ErrAllocationTooLarge when the pixel count is not representable.
func NewMask(bounds image.Rectangle) (*Mask, error) {
	m := &Mask{
		Bounds:   bounds,
		RowBytes: bounds.Dx(),
		Format:   FormatA8,
	}
	size := m.imageSize()
	if size == 0 {
		return nil, ErrAllocationTooLarge
	}
	m.Image = make([]uint8, size)
	return m, nil
}

// FromAlpha extracts the alpha channel of an image into an A8 mask.
// The mask keeps the image's bounds.
func FromAlpha(img image.Image) *Mask {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	m := &Mask{
		Image:    make([]uint8, w*h),
		Bounds:   bounds,
		RowBytes: w,
		Format:   FormatA8,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// a is 0-65535, shift by 8 to get 0-255
			m.Image[y*w+x] = uint8(a >> 8)
		}
	}
	return m
}

// Rect is an axis-aligned rectangle with fractional edges, used by the
// analytic entry points BlurRect and FromRect.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// FromRect rasterizes a rectangle into an A8 coverage mask, with proper
// anti-aliased coverage on fractional edges. The mask bounds are the
// smallest integer rectangle containing r.
func FromRect(r Rect) (*Mask, error) {
	if r.Width() <= 0 || r.Height() <= 0 {
		return nil, ErrAllocationTooLarge
	}
	minX := int(math.Floor(r.Left))
	minY := int(math.Floor(r.Top))
	maxX := int(math.Ceil(r.Right))
	maxY := int(math.Ceil(r.Bottom))

	m, err := NewMask(image.Rect(minX, minY, maxX, maxY))
	if err != nil {
		return nil, err
	}
	w, h := m.Bounds.Dx(), m.Bounds.Dy()

	z := vector.NewRasterizer(w, h)
	z.MoveTo(float32(r.Left-float64(minX)), float32(r.Top-float64(minY)))
	z.LineTo(float32(r.Right-float64(minX)), float32(r.Top-float64(minY)))
	z.LineTo(float32(r.Right-float64(minX)), float32(r.Bottom-float64(minY)))
	z.LineTo(float32(r.Left-float64(minX)), float32(r.Bottom-float64(minY)))
	z.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	for y := 0; y < h; y++ {
		copy(m.Image[y*m.RowBytes:y*m.RowBytes+w], dst.Pix[y*dst.Stride:y*dst.Stride+w])
	}
	return m, nil
}

// Gray exports the mask as an *image.Gray sharing the mask's bounds.
func (m *Mask) Gray() *image.Gray {
	w, h := m.Bounds.Dx(), m.Bounds.Dy()
	img := image.NewGray(m.Bounds)
	if m.Image == nil {
		return img
	}
	for y := 0; y < h; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+w], m.Image[y*m.RowBytes:y*m.RowBytes+w])
	}
	return img
}

// At returns the coverage at absolute coordinates (x, y), or 0 outside the
// mask bounds. Handy for comparing masks with different margins.
func (m *Mask) At(x, y int) uint8 {
	if m.Image == nil || !(image.Point{X: x, Y: y}).In(m.Bounds) {
		return 0
	}
	return m.Image[(y-m.Bounds.Min.Y)*m.RowBytes+(x-m.Bounds.Min.X)]
}

// imageSize returns the byte size of the mask's pixel buffer, or 0 when the
// dimensions are empty, the stride is short, or the size overflows int.
func (m *Mask) imageSize() int {
	w, h := m.Bounds.Dx(), m.Bounds.Dy()
	if w <= 0 || h <= 0 || m.RowBytes < w {
		return 0
	}
	size := int64(m.RowBytes) * int64(h)
	if size > math.MaxInt32 {
		return 0
	}
	return int(size)
}
