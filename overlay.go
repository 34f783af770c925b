package ggcomp

import (
	"fmt"

	"github.com/gogpu/ggcomp/internal/compose"
	"github.com/gogpu/ggcomp/internal/logging"
	"github.com/gogpu/ggcomp/internal/mask"
	"github.com/gogpu/ggcomp/internal/raster"
	"github.com/gogpu/ggcomp/internal/transform"
)

// Overlay composites layer onto background.
//
// The layer's opacity comes from its alpha channel, or from layerMask when
// it is non-nil (resized to the layer, and inverted when its values span
// exactly 0..255). The layer and its mask are scaled, mirrored and rotated
// per cfg, then placed with their top-left corner at (cfg.X, cfg.Y) and
// cropped to the background.
//
// The result has the background's size and is opaque: (1, H, W, 3).
func Overlay(layer, background, layerMask *Tensor, cfg OverlayConfig) (*Tensor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bg, err := ToRaster(background)
	if err != nil {
		return nil, fmt.Errorf("overlay: background: %w", err)
	}
	lyr, err := ToRaster(layer)
	if err != nil {
		return nil, fmt.Errorf("overlay: layer: %w", err)
	}
	if lyr.Format() != raster.FormatRGBA8 {
		lyr = lyr.Convert(raster.FormatRGBA8)
	}

	var ext *mask.Mask
	if layerMask != nil {
		if ext, err = MaskFromTensor(layerMask); err != nil {
			return nil, fmt.Errorf("overlay: mask: %w", err)
		}
	}
	m := mask.ForOverlay(lyr, ext)

	lyr, m, err = transform.Apply(lyr, m, cfg.params())
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", classify(err))
	}
	logging.Get().Debug("overlay layer transformed",
		"scale", cfg.Scale, "mirror", cfg.Mirror.String(), "rotation", cfg.Rotation,
		"width", lyr.Width(), "height", lyr.Height())

	out, err := compose.Overlay(bg, lyr, m, cfg.X, cfg.Y)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", classify(err))
	}
	return FromRaster(out), nil
}
