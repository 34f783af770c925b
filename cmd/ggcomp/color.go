package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggcomp"
)

var colorCmd = &cobra.Command{
	Use:   "color",
	Short: "Generate a solid or linear-gradient image",
	RunE:  runColor,
}

func init() {
	def := ggcomp.DefaultColorConfig()
	colorCmd.Flags().Int("width", def.Width, "Image width")
	colorCmd.Flags().Int("height", def.Height, "Image height")
	colorCmd.Flags().String("color", def.ColorHex, "Fill color (hex)")
	colorCmd.Flags().Bool("gradient", def.GradientEnabled, "Draw a linear gradient instead of a fill")
	colorCmd.Flags().String("start", def.GradientStartHex, "Gradient start color (hex)")
	colorCmd.Flags().String("end", def.GradientEndHex, "Gradient end color (hex)")
	colorCmd.Flags().Float64("angle", def.GradientAngle, "Gradient angle in degrees (0 = left to right)")
	colorCmd.Flags().StringP("output", "o", "", "Output PNG file")
	colorCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(colorCmd)
}

func runColor(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")

	var cfg ggcomp.ColorConfig
	cfg.Width, _ = cmd.Flags().GetInt("width")
	cfg.Height, _ = cmd.Flags().GetInt("height")
	cfg.ColorHex, _ = cmd.Flags().GetString("color")
	cfg.GradientEnabled, _ = cmd.Flags().GetBool("gradient")
	cfg.GradientStartHex, _ = cmd.Flags().GetString("start")
	cfg.GradientEndHex, _ = cmd.Flags().GetString("end")
	cfg.GradientAngle, _ = cmd.Flags().GetFloat64("angle")

	out, err := ggcomp.Color(cfg)
	if err != nil {
		return err
	}
	if err := ggcomp.SavePNG(out, outputPath); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Generated %dx%d → %s\n", cfg.Width, cfg.Height, outputPath)
	return nil
}
