// Package transform applies the overlay node's geometric stage to a layer
// image and its mask as one unit: scale, then mirror, then rotate.
package transform

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/gift"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/ggcomp/internal/logging"
	"github.com/gogpu/ggcomp/internal/mask"
	"github.com/gogpu/ggcomp/internal/raster"
)

// Errors returned by Apply.
var (
	// ErrInvalidScale is returned for a non-positive or non-finite scale.
	ErrInvalidScale = errors.New("transform: scale must be positive and finite")

	// ErrShapeMismatch is returned when image and mask sizes differ.
	ErrShapeMismatch = errors.New("transform: image and mask sizes differ")
)

// Mirror selects an optional flip.
type Mirror uint8

const (
	// MirrorNone leaves the layer as is.
	MirrorNone Mirror = iota
	// MirrorHorizontal flips left to right.
	MirrorHorizontal
	// MirrorVertical flips top to bottom.
	MirrorVertical
)

// String returns the host-facing name of the mirror mode.
func (m Mirror) String() string {
	switch m {
	case MirrorNone:
		return "None"
	case MirrorHorizontal:
		return "Horizontal"
	case MirrorVertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// Params describes the geometric stage.
type Params struct {
	Scale    float64 // uniform factor, > 0
	Mirror   Mirror
	Rotation float64 // degrees, counter-clockwise
}

// Apply runs scale, mirror and rotation over img and m in that order.
// Neither input is modified; the returned pair always has identical size.
func Apply(img *raster.Image, m *mask.Mask, p Params) (*raster.Image, *mask.Mask, error) {
	if !m.SameSize(img.Width(), img.Height()) {
		return nil, nil, fmt.Errorf("%w: image %dx%d, mask %dx%d",
			ErrShapeMismatch, img.Width(), img.Height(), m.Width(), m.Height())
	}

	img, m, err := Scale(img, m, p.Scale)
	if err != nil {
		return nil, nil, err
	}
	img, m = Flip(img, m, p.Mirror)
	img, m = RotatePair(img, m, p.Rotation)
	return img, m, nil
}

// ScaledSize returns round(w*scale) x round(h*scale), never below 1x1.
func ScaledSize(w, h int, scale float64) (int, int) {
	return max(1, int(math.Round(float64(w)*scale))), max(1, int(math.Round(float64(h)*scale)))
}

// Scale resizes both members of the pair with a Lanczos filter.
func Scale(img *raster.Image, m *mask.Mask, scale float64) (*raster.Image, *mask.Mask, error) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	w, h := ScaledSize(img.Width(), img.Height(), scale)
	if w == img.Width() && h == img.Height() {
		return img, m, nil
	}
	logging.Get().Debug("scaling layer",
		"from_w", img.Width(), "from_h", img.Height(), "to_w", w, "to_h", h)

	filter := gift.Resize(w, h, gift.LanczosResampling)
	return applyImage(img, filter), m.Resize(w, h), nil
}

// Flip mirrors both members of the pair.
func Flip(img *raster.Image, m *mask.Mask, mode Mirror) (*raster.Image, *mask.Mask) {
	var filter gift.Filter
	switch mode {
	case MirrorHorizontal:
		filter = gift.FlipHorizontal()
	case MirrorVertical:
		filter = gift.FlipVertical()
	default:
		return img, m
	}
	return applyImage(img, filter), applyMask(m, filter)
}

// RotatePair rotates both members of the pair counter-clockwise by degrees,
// expanding the canvas to the rotated bounding box. Uncovered canvas is
// transparent in the image and 0 in the mask. Whole turns return the
// inputs untouched.
func RotatePair(img *raster.Image, m *mask.Mask, degrees float64) (*raster.Image, *mask.Mask) {
	if math.Mod(degrees, 360) == 0 {
		return img, m
	}
	w, h := img.Width(), img.Height()
	nw, nh := RotatedSize(w, h, degrees)
	s2d := rotation(w, h, nw, nh, degrees).Aff3()
	logging.Get().Debug("rotating layer",
		"degrees", degrees, "from_w", w, "from_h", h, "to_w", nw, "to_h", nh)

	src := img.ToStd()
	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	xdraw.BiLinear.Transform(dst, s2d, src, src.Bounds(), xdraw.Src, nil)
	// Uncovered corners need alpha, so rotated layers are always RGBA8.
	out, _ := raster.FromStdNRGBA(dst, raster.FormatRGBA8)

	srcMask := m.Gray()
	dstMask := image.NewGray(dst.Bounds())
	xdraw.BiLinear.Transform(dstMask, s2d, srcMask, srcMask.Bounds(), xdraw.Src, nil)

	return out, mask.FromGray(dstMask)
}

// applyImage runs a gift filter over a raster image, keeping its format.
func applyImage(img *raster.Image, filter gift.Filter) *raster.Image {
	g := gift.New(filter)
	src := img.ToStd()
	if gray, ok := src.(*image.Gray); ok {
		dst := image.NewGray(g.Bounds(gray.Bounds()))
		g.Draw(dst, gray)
		out, _ := raster.FromStdGray(dst)
		return out
	}
	dst := image.NewNRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	out, _ := raster.FromStdNRGBA(dst, img.Format())
	return out
}

// applyMask runs a gift filter over a mask.
func applyMask(m *mask.Mask, filter gift.Filter) *mask.Mask {
	g := gift.New(filter)
	dst := image.NewGray(g.Bounds(m.Bounds()))
	g.Draw(dst, m.Gray())
	return mask.FromGray(dst)
}
