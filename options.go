package maskblur

// Quality selects how closely the blur approximates a true Gaussian.
type Quality uint8

const (
	// QualityLow runs a single box-blur pass per axis.
	QualityLow Quality = iota

	// QualityHigh runs three successive box-blur passes per axis, which by
	// superposition closely approximates a Gaussian. Forced down to
	// QualityLow when the radius is below 3.
	QualityHigh
)

// Strategy selects the convolution machinery. Both are O(w*h) in time; the
// trade-off is scratch memory (O(radius) per row for the separable passes,
// O(w*h) for the summed-area table), so the choice belongs to the caller.
type Strategy uint8

const (
	// StrategySeparable runs 1D sliding-window box blurs per axis.
	StrategySeparable Strategy = iota

	// StrategySumTable builds a summed-area table and applies a square
	// box kernel through O(1) rectangular-sum queries.
	StrategySumTable
)

// Option configures a blur invocation.
// Use functional options to customize behavior.
//
// Example:
//
//	dst, margin, err := maskblur.Blur(src, 8, maskblur.StyleOuter,
//	    maskblur.WithQuality(maskblur.QualityHigh),
//	    maskblur.WithStrategy(maskblur.StrategySumTable))
type Option func(*config)

// config holds the resolved per-call configuration.
type config struct {
	quality    Quality
	strategy   Strategy
	rounding   bool
	boundsOnly bool
}

// defaultConfig returns the default blur configuration.
func defaultConfig() config {
	return config{
		quality:  QualityLow,
		strategy: StrategySeparable,
		rounding: true,
	}
}

// half returns the fixed-point rounding bias applied before the 24-bit
// shift: 2^23 when half-bias rounding is on, 0 when it is off.
func (c *config) half() uint32 {
	if c.rounding {
		return 1 << 23
	}
	return 0
}

// WithQuality sets the blur quality. The default is QualityLow.
func WithQuality(q Quality) Option {
	return func(c *config) { c.quality = q }
}

// WithStrategy sets the convolution strategy. The default is
// StrategySeparable.
func WithStrategy(s Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// WithRounding toggles the half-bias rounding of the fixed-point pipeline
// (adding 2^23 before the 24-bit normalization shift). It defaults to on.
// Downstream pixel-exact comparisons may depend on either setting, so the
// constant is a per-call option rather than a build flag.
func WithRounding(enabled bool) Option {
	return func(c *config) { c.rounding = enabled }
}

// WithBoundsOnly makes Blur and BlurRect compute the destination bounds,
// row stride and margin without allocating or writing a pixel buffer. The
// returned mask has a nil Image. Useful for sizing layout ahead of
// committing to the blur.
func WithBoundsOnly() Option {
	return func(c *config) { c.boundsOnly = true }
}
