// Package cli implements the maskblur command line tool, a small demo and
// debugging surface over the blur engine.
package cli

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/maskblur"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "maskblur",
	Short: "Blur 8-bit coverage masks",
	Long: `maskblur blurs 8-bit alpha masks and composites the results.

It exposes the engine's entry points as subcommands: drop shadows for PNG
images, analytic rectangle blurs, and procedural sample masks for eyeballing
the pipelines.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./maskblur.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("quality", "high", "Blur quality: low or high")

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
	if err := viper.BindPFlag("quality", rootCmd.PersistentFlags().Lookup("quality")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("maskblur")
	}

	viper.SetEnvPrefix("MASKBLUR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}

	if viper.GetBool("verbose") {
		maskblur.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}
}

// quality resolves the configured quality name.
func quality() (maskblur.Quality, error) {
	switch viper.GetString("quality") {
	case "low":
		return maskblur.QualityLow, nil
	case "high":
		return maskblur.QualityHigh, nil
	}
	return 0, fmt.Errorf("unknown quality %q (want low or high)", viper.GetString("quality"))
}

// parseStyle resolves a style name used by the rect and gen subcommands.
func parseStyle(name string) (maskblur.Style, error) {
	switch name {
	case "normal":
		return maskblur.StyleNormal, nil
	case "solid":
		return maskblur.StyleSolid, nil
	case "outer":
		return maskblur.StyleOuter, nil
	case "inner":
		return maskblur.StyleInner, nil
	}
	return 0, fmt.Errorf("unknown style %q (want normal, solid, outer or inner)", name)
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
