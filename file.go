package ggcomp

import (
	"fmt"

	"github.com/gogpu/ggcomp/internal/mask"
	"github.com/gogpu/ggcomp/internal/raster"
)

// LoadTensor decodes an image file (PNG, JPEG, GIF or WebP) into a
// (1, H, W, 4) buffer.
func LoadTensor(path string) (*Tensor, error) {
	img, err := raster.Load(path)
	if err != nil {
		return nil, classify(err)
	}
	return FromRaster(img), nil
}

// LoadMaskTensor decodes an image file into a (1, H, W) mask. Color files
// are reduced to luma; alpha is ignored.
func LoadMaskTensor(path string) (*Tensor, error) {
	img, err := raster.Load(path)
	if err != nil {
		return nil, classify(err)
	}
	return MaskToTensor(mask.FromImage(img)), nil
}

// SavePNG encodes t as a PNG file. Single-channel buffers are written as
// 8-bit gray.
func SavePNG(t *Tensor, path string) error {
	img, err := ToRaster(t)
	if err != nil {
		return err
	}
	if err := img.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
