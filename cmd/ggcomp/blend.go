package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggcomp"
)

var blendCmd = &cobra.Command{
	Use:   "blend",
	Short: "Cut an image out with a punch-through mask (white = transparent)",
	RunE:  runBlend,
}

func init() {
	blendCmd.Flags().StringP("image", "i", "", "Input image file")
	blendCmd.Flags().StringP("alpha", "a", "", "Mask image file")
	blendCmd.Flags().StringP("output", "o", "", "Output PNG file")
	blendCmd.MarkFlagRequired("image")
	blendCmd.MarkFlagRequired("alpha")
	blendCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(blendCmd)
}

func runBlend(cmd *cobra.Command, args []string) error {
	imagePath, _ := cmd.Flags().GetString("image")
	alphaPath, _ := cmd.Flags().GetString("alpha")
	outputPath, _ := cmd.Flags().GetString("output")

	img, err := ggcomp.LoadTensor(imagePath)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}
	alpha, err := ggcomp.LoadMaskTensor(alphaPath)
	if err != nil {
		return fmt.Errorf("reading alpha: %w", err)
	}

	out, err := ggcomp.BlendWithAlpha(img, alpha)
	if err != nil {
		return err
	}
	if err := ggcomp.SavePNG(out, outputPath); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Blended %s → %s\n", out, outputPath)
	return nil
}
