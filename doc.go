// Package maskblur computes blurred 8-bit coverage masks for effects such
// as drop shadows and glows.
//
// # Overview
//
// maskblur is a pure Go, CPU-only companion to the gg drawing library. It
// takes an alpha (coverage) mask, or an axis-aligned rectangle, and
// produces a new, larger mask containing the blurred coverage, plus the
// margin by which the bounds grew. Color never enters the picture: the
// engine operates on single-channel 8-bit opacity only.
//
// # Quick Start
//
//	import "github.com/gogpu/maskblur"
//
//	src := maskblur.FromAlpha(img)
//	dst, margin, err := maskblur.Blur(src, 8, maskblur.StyleNormal,
//	    maskblur.WithQuality(maskblur.QualityHigh))
//	if err != nil {
//	    // ErrUnsupportedFormat, ErrInvalidRadius or ErrAllocationTooLarge
//	}
//	// dst.Bounds is src.Bounds outset by margin.
//
// # Strategies
//
// Two O(w·h) strategies are available and the choice is the caller's, not a
// heuristic:
//
//   - StrategySeparable (default): sliding-window box blur per axis with
//     O(radius) extra memory per row.
//   - StrategySumTable: a summed-area table enabling O(1) box sums, with
//     O(w·h) extra memory.
//
// High quality runs three successive box blurs, which by the central limit
// effect closely approximates a true Gaussian. BlurRect short-circuits the
// common "blur a rectangle" case with an analytic edge profile and no 2D
// convolution at all. BlurGroundTruth is a slow, fully normalized reference
// convolution kept only for validating the fast paths.
//
// # Concurrency
//
// The engine is stateless and reentrant. All scratch memory is call-scoped,
// so independent blurs (one per shadow, say) may run concurrently without
// synchronization.
package maskblur

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
