package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/maskblur"
)

var rectCmd = &cobra.Command{
	Use:   "rect",
	Short: "Render a blurred rectangle mask to a grayscale PNG",
	Long: `Blur an axis-aligned rectangle with the analytic fast path and write
the resulting coverage mask as a grayscale PNG.`,
	RunE: runRect,
}

func init() {
	rootCmd.AddCommand(rectCmd)

	rectCmd.Flags().StringP("out", "o", "rect.png", "Output PNG")
	rectCmd.Flags().Float64("width", 128, "Rectangle width in pixels")
	rectCmd.Flags().Float64("height", 96, "Rectangle height in pixels")
	rectCmd.Flags().Float64P("radius", "r", 10, "Blur radius in pixels")
	rectCmd.Flags().String("style", "normal", "Blur style: normal, solid, outer or inner")
}

func runRect(cmd *cobra.Command, _ []string) error {
	out, _ := cmd.Flags().GetString("out")
	width, _ := cmd.Flags().GetFloat64("width")
	height, _ := cmd.Flags().GetFloat64("height")
	radius, _ := cmd.Flags().GetFloat64("radius")
	styleName, _ := cmd.Flags().GetString("style")

	style, err := parseStyle(styleName)
	if err != nil {
		return err
	}

	mask, _, err := maskblur.BlurRect(
		maskblur.Rect{Right: width, Bottom: height}, radius, style)
	if err != nil {
		return err
	}
	return savePNG(out, mask.Gray())
}
