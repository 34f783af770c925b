package mask

import (
	"github.com/gogpu/ggcomp/internal/logging"
	"github.com/gogpu/ggcomp/internal/raster"
)

// ForOverlay derives the layer opacity mask used by the overlay node.
//
// Without an external mask the layer's own alpha is used (255 = visible).
// An external mask is resized to the layer first; if its values span exactly
// 0..255 it is inverted, otherwise it is used as is.
//
// The range test keeps compatibility with existing node graphs. It reads like
// accidental range sniffing: a mask that happens to touch both extremes flips
// polarity while one that does not keeps it.
func ForOverlay(layer *raster.Image, external *Mask) *Mask {
	if external == nil {
		return FromAlpha(layer)
	}

	m := external.Resize(layer.Width(), layer.Height())
	lo, hi := m.MinMax()
	inverted := lo == 0 && hi == 255
	logging.Get().Debug("overlay mask",
		"width", m.width, "height", m.height,
		"min", lo, "max", hi, "inverted", inverted)
	if inverted {
		return m.Inverted()
	}
	return m
}

// ForPunchThrough prepares an external mask for extract-by-mask
// compositing: resized to width x height, then always inverted, so that
// 0 keeps a pixel and 255 discards it.
func ForPunchThrough(external *Mask, width, height int) *Mask {
	if !external.SameSize(width, height) {
		logging.Get().Debug("resizing punch-through mask",
			"from_w", external.width, "from_h", external.height,
			"to_w", width, "to_h", height)
	}
	return external.Resize(width, height).Inverted()
}

// ExportAlpha turns an image's alpha channel into the host mask layout:
// normalized to [0,1] and inverted, so opaque regions export as 0.
func ExportAlpha(img *raster.Image) []float32 {
	return FromAlpha(img).Inverted().Normalized()
}
