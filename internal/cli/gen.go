package cli

import (
	"image"

	"github.com/aquilax/go-perlin"
	"github.com/spf13/cobra"

	"github.com/gogpu/maskblur"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a blurred procedural noise mask",
	Long: `Generate a thresholded Perlin noise mask, blur it, and write the
result as a grayscale PNG. Handy for eyeballing the pipelines on organic
shapes instead of rectangles.`,
	RunE: runGen,
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().StringP("out", "o", "noise.png", "Output PNG")
	genCmd.Flags().Int("width", 256, "Mask width in pixels")
	genCmd.Flags().Int("height", 256, "Mask height in pixels")
	genCmd.Flags().Float64("scale", 48, "Noise feature size (larger = smoother blobs)")
	genCmd.Flags().Int64("seed", 1337, "Deterministic noise seed")
	genCmd.Flags().Uint8("threshold", 128, "Coverage threshold before blurring")
	genCmd.Flags().Float64P("radius", "r", 6, "Blur radius in pixels")
	genCmd.Flags().String("style", "normal", "Blur style: normal, solid, outer or inner")
}

func runGen(cmd *cobra.Command, _ []string) error {
	out, _ := cmd.Flags().GetString("out")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	scale, _ := cmd.Flags().GetFloat64("scale")
	seed, _ := cmd.Flags().GetInt64("seed")
	threshold, _ := cmd.Flags().GetUint8("threshold")
	radius, _ := cmd.Flags().GetFloat64("radius")
	styleName, _ := cmd.Flags().GetString("style")

	style, err := parseStyle(styleName)
	if err != nil {
		return err
	}
	q, err := quality()
	if err != nil {
		return err
	}

	src, err := noiseMask(width, height, scale, seed, threshold)
	if err != nil {
		return err
	}

	blurred, _, err := maskblur.Blur(src, radius, style, maskblur.WithQuality(q))
	if err != nil {
		return err
	}
	return savePNG(out, blurred.Gray())
}

// noiseMask rasterizes thresholded Perlin noise into a coverage mask.
func noiseMask(width, height int, scale float64, seed int64, threshold uint8) (*maskblur.Mask, error) {
	m, err := maskblur.NewMask(image.Rect(0, 0, width, height))
	if err != nil {
		return nil, err
	}

	p := perlin.NewPerlin(2.0, 2.0, 3, seed)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := p.Noise2D(float64(x)/scale, float64(y)/scale)
			// Noise2D is roughly in [-1, 1]; map onto coverage.
			c := (v + 1) / 2 * 255
			if c < 0 {
				c = 0
			} else if c > 255 {
				c = 255
			}
			if uint8(c) >= threshold {
				m.Image[y*m.RowBytes+x] = 255
			}
		}
	}
	return m, nil
}
