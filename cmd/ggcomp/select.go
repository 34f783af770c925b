package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggcomp"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Load an image from a library directory",
	RunE:  runSelect,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the images of a library directory",
	RunE:  runList,
}

func init() {
	selectCmd.Flags().StringP("dir", "d", "input", "Library directory")
	selectCmd.Flags().StringP("file", "f", "", "Image file name in the library")
	selectCmd.Flags().StringP("output", "o", "", "Output PNG file for the color data")
	selectCmd.Flags().String("mask-out", "", "Optional output PNG file for the inverted alpha mask")
	selectCmd.MarkFlagRequired("file")
	selectCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(selectCmd)

	listCmd.Flags().StringP("dir", "d", "input", "Library directory")
	rootCmd.AddCommand(listCmd)
}

func runSelect(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	file, _ := cmd.Flags().GetString("file")
	outputPath, _ := cmd.Flags().GetString("output")
	maskPath, _ := cmd.Flags().GetString("mask-out")

	sel, err := ggcomp.NewSelector(dir)
	if err != nil {
		return err
	}
	img, mask, err := sel.Select(file)
	if err != nil {
		return err
	}
	if err := ggcomp.SavePNG(img, outputPath); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	fmt.Printf("Selected %s %s → %s\n", file, img, outputPath)

	if maskPath != "" {
		if err := ggcomp.SavePNG(mask, maskPath); err != nil {
			return fmt.Errorf("writing mask: %w", err)
		}
		fmt.Printf("Mask:    %s\n", maskPath)
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")

	sel, err := ggcomp.NewSelector(dir)
	if err != nil {
		return err
	}
	for _, name := range sel.Choices() {
		fmt.Println(name)
	}
	return nil
}
