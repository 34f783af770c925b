// Package compose implements the two compositing operators of the nodes:
// overlay of a transformed layer onto a background, and extraction of an
// image through a punch-through mask.
package compose

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggcomp/internal/blend"
	"github.com/gogpu/ggcomp/internal/logging"
	"github.com/gogpu/ggcomp/internal/mask"
	"github.com/gogpu/ggcomp/internal/raster"
)

// ErrEmptyImage is returned when an operand is missing or has zero area.
var ErrEmptyImage = errors.New("compose: zero-area image")

func usable(img *raster.Image) bool {
	return img != nil && img.Width() > 0 && img.Height() > 0
}

// Overlay places layer on bg with its top-left corner at (x, y) and blends
// it through layerMask (255 = layer visible). layerMask must match the
// layer's size; nil selects the layer's own alpha.
//
// Offsets may be negative or beyond bg; the layer is cropped to bg. When
// the placed mask is zero everywhere on the canvas, a fully opaque mask is
// used instead, so the result is the layer pasted unmasked onto an empty
// canvas.
//
// The result is always opaque RGB8.
func Overlay(bg, layer *raster.Image, layerMask *mask.Mask, x, y int) (*raster.Image, error) {
	if !usable(bg) || !usable(layer) {
		return nil, ErrEmptyImage
	}
	if layerMask == nil {
		layerMask = mask.FromAlpha(layer)
	}
	if !layerMask.SameSize(layer.Width(), layer.Height()) {
		return nil, fmt.Errorf("compose: layer mask %dx%d for layer %dx%d: %w",
			layerMask.Width(), layerMask.Height(), layer.Width(), layer.Height(), blend.ErrSizeMismatch)
	}

	log := logging.Get()
	w, h := bg.Width(), bg.Height()

	scratch, err := raster.New(w, h, raster.FormatRGBA8)
	if err != nil {
		return nil, err
	}
	box := blend.Paste(scratch, layer, x, y)

	canvasMask := mask.New(w, h)
	blend.PasteMask(canvasMask, layerMask, x, y)
	log.Debug("overlay placement",
		"x", x, "y", y, "layer_w", layer.Width(), "layer_h", layer.Height(),
		"box", box.String(), "bg_w", w, "bg_h", h)

	if canvasMask.IsZero() {
		log.Warn("overlay mask is fully transparent, using an opaque mask",
			"box", box.String())
		canvasMask = mask.Filled(w, h, 255)
	}

	out, err := blend.Composite(scratch, bg, canvasMask)
	if err != nil {
		return nil, err
	}
	return blend.Flatten(out), nil
}

// ExtractByMask keeps the parts of img selected by a punch-through mask
// (0 = keep, 255 = discard) and makes the rest transparent.
//
// The mask is resized to img when needed, inverted, and img is pasted
// through it onto a transparent canvas: every channel, alpha included,
// is scaled by the inverted mask. The result is RGBA8.
func ExtractByMask(img *raster.Image, external *mask.Mask) (*raster.Image, error) {
	if !usable(img) || external == nil || external.Width() == 0 || external.Height() == 0 {
		return nil, ErrEmptyImage
	}
	w, h := img.Width(), img.Height()
	src := img
	if src.Format() != raster.FormatRGB8 {
		src = img.Convert(raster.FormatRGB8)
	}

	m := mask.ForPunchThrough(external, w, h)
	lo, hi := m.MinMax()
	logging.Get().Debug("extract by mask", "width", w, "height", h, "alpha_min", lo, "alpha_max", hi)

	canvas, err := raster.New(w, h, raster.FormatRGBA8)
	if err != nil {
		return nil, err
	}
	if _, err := blend.PasteMasked(canvas, src, m, 0, 0); err != nil {
		return nil, err
	}
	return canvas, nil
}
