// Package render composites blurred coverage masks into pictures. It is the
// glue between the mask engine and image/draw: the engine produces alpha,
// render turns it into pixels.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/maskblur"
)

// ShadowOptions configures the drop shadow applied to an image.
type ShadowOptions struct {
	// Radius is the blur radius in pixels.
	Radius float64

	// Offset translates the shadow relative to the source content.
	Offset image.Point

	// Color is the shadow color, typically black with partial alpha.
	Color color.NRGBA

	// Quality selects the blur pipeline for the shadow mask.
	Quality maskblur.Quality
}

// DefaultShadowOptions returns a conservative drop shadow configuration.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  12,
		Offset:  image.Pt(8, 8),
		Color:   color.NRGBA{A: 140},
		Quality: maskblur.QualityHigh,
	}
}

// ShadowResult is the output of DropShadow.
type ShadowResult struct {
	// Image is the composited picture including the blurred shadow. Its
	// bounds start at the origin.
	Image *image.RGBA

	// Offset reports where the source content's top-left corner landed on
	// the expanded canvas, so callers can keep the content visually fixed.
	Offset image.Point
}

// DropShadow draws a blurred, offset shadow of img's alpha channel and
// composites the original on top of it. The canvas grows by the blur margin
// plus the shadow offset so nothing is clipped.
func DropShadow(img image.Image, opts ShadowOptions) (ShadowResult, error) {
	if img == nil || img.Bounds().Empty() {
		return ShadowResult{}, maskblur.ErrUnsupportedFormat
	}
	if opts.Color.A == 0 || opts.Radius <= 0 {
		// Nothing to draw; rebase the source onto a fresh canvas.
		srcBounds := img.Bounds()
		dst := image.NewRGBA(srcBounds.Sub(srcBounds.Min))
		draw.Draw(dst, dst.Bounds(), img, srcBounds.Min, draw.Src)
		return ShadowResult{Image: dst}, nil
	}

	mask := maskblur.FromAlpha(img)
	blurred, _, err := maskblur.Blur(mask, opts.Radius, maskblur.StyleNormal,
		maskblur.WithQuality(opts.Quality))
	if err != nil {
		return ShadowResult{}, err
	}

	srcBounds := img.Bounds()
	shadowBounds := blurred.Bounds.Add(opts.Offset)
	compositeBounds := srcBounds.Union(shadowBounds)

	dst := image.NewRGBA(compositeBounds.Sub(compositeBounds.Min))
	shift := srcBounds.Min.Sub(compositeBounds.Min)
	shadowOrigin := shadowBounds.Min.Sub(compositeBounds.Min)

	alpha := maskToAlpha(blurred)
	tint := image.NewUniform(opts.Color)
	draw.DrawMask(dst, alpha.Bounds().Add(shadowOrigin), tint, image.Point{},
		alpha, alpha.Bounds().Min, draw.Over)
	draw.Draw(dst, srcBounds.Sub(compositeBounds.Min), img, srcBounds.Min, draw.Over)

	return ShadowResult{Image: dst, Offset: shift}, nil
}

// maskToAlpha wraps a mask's pixels in an *image.Alpha rebased at the origin
// for use as a draw mask. The pixel buffer is shared, not copied.
func maskToAlpha(m *maskblur.Mask) *image.Alpha {
	return &image.Alpha{
		Pix:    m.Image,
		Stride: m.RowBytes,
		Rect:   m.Bounds.Sub(m.Bounds.Min),
	}
}
