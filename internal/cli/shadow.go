package cli

import (
	"image"
	"image/color"

	"github.com/disintegration/gift"
	"github.com/spf13/cobra"

	"github.com/gogpu/maskblur"
	"github.com/gogpu/maskblur/internal/render"
)

var shadowCmd = &cobra.Command{
	Use:   "shadow",
	Short: "Add a drop shadow to a PNG image",
	Long: `Blur the input's alpha channel, tint it, and composite the original
on top, growing the canvas so the shadow is never clipped.`,
	RunE: runShadow,
}

func init() {
	rootCmd.AddCommand(shadowCmd)

	shadowCmd.Flags().StringP("in", "i", "", "Input PNG (required)")
	shadowCmd.Flags().StringP("out", "o", "shadow.png", "Output PNG")
	shadowCmd.Flags().Float64P("radius", "r", 12, "Blur radius in pixels")
	shadowCmd.Flags().Int("offset-x", 8, "Horizontal shadow offset")
	shadowCmd.Flags().Int("offset-y", 8, "Vertical shadow offset")
	shadowCmd.Flags().Float64("opacity", 0.55, "Shadow opacity in [0, 1]")
	shadowCmd.Flags().Float64("scale", 1, "Pre-scale factor applied to the input")
	shadowCmd.Flags().String("reference", "", "Also write the input's alpha blurred by an independent Gaussian (for eyeballing the engine)")

	_ = shadowCmd.MarkFlagRequired("in")
}

func runShadow(cmd *cobra.Command, _ []string) error {
	in, _ := cmd.Flags().GetString("in")
	out, _ := cmd.Flags().GetString("out")
	radius, _ := cmd.Flags().GetFloat64("radius")
	offsetX, _ := cmd.Flags().GetInt("offset-x")
	offsetY, _ := cmd.Flags().GetInt("offset-y")
	opacity, _ := cmd.Flags().GetFloat64("opacity")
	scale, _ := cmd.Flags().GetFloat64("scale")

	q, err := quality()
	if err != nil {
		return err
	}

	img, err := loadPNG(in)
	if err != nil {
		return err
	}
	if scale != 1 && scale > 0 {
		img = resize(img, scale)
	}

	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}

	res, err := render.DropShadow(img, render.ShadowOptions{
		Radius:  radius,
		Offset:  image.Pt(offsetX, offsetY),
		Color:   color.NRGBA{A: uint8(opacity*255 + 0.5)},
		Quality: q,
	})
	if err != nil {
		return err
	}

	maskblur.Logger().Debug("maskblur: shadow",
		"in", in, "out", out, "radius", radius, "offset", res.Offset)

	if ref, _ := cmd.Flags().GetString("reference"); ref != "" {
		if err := saveReference(ref, img, radius); err != nil {
			return err
		}
	}

	return savePNG(out, res.Image)
}

// saveReference blurs the input's alpha mask with gift's Gaussian instead of
// the engine and writes it as a grayscale PNG, as an independent picture to
// compare shadow masks against.
func saveReference(path string, img image.Image, radius float64) error {
	gray := maskblur.FromAlpha(img).Gray()
	g := gift.New(gift.GaussianBlur(float32(radius)))
	dst := image.NewGray(g.Bounds(gray.Bounds()))
	g.Draw(dst, gray)
	return savePNG(path, dst)
}

func resize(img image.Image, scale float64) image.Image {
	g := gift.New(gift.Resize(
		int(float64(img.Bounds().Dx())*scale+0.5), 0, gift.LanczosResampling))
	dst := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}
