package ggcomp

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/ggcomp/internal/logging"
	"github.com/gogpu/ggcomp/internal/mask"
	"github.com/gogpu/ggcomp/internal/raster"
)

// Tensor is the host's dense float buffer: row-major Data laid out by
// Shape, with samples in [0, 1].
//
// Images travel as (1, H, W, C) and masks as (1, H, W). ToRaster also
// accepts the other layouts hosts produce; see its documentation.
type Tensor struct {
	Shape []int
	Data  []float32
}

// NewTensor returns a zero-filled tensor of the given shape.
func NewTensor(shape ...int) *Tensor {
	n := 1
	for _, d := range shape {
		n *= max(d, 0)
	}
	return &Tensor{Shape: append([]int(nil), shape...), Data: make([]float32, n)}
}

// Rank returns the number of axes.
func (t *Tensor) Rank() int { return len(t.Shape) }

// Len returns the number of elements Shape describes.
func (t *Tensor) Len() int {
	n := 1
	for _, d := range t.Shape {
		n *= d
	}
	return n
}

// String returns a short shape description, e.g. "Tensor(1x64x64x3)".
func (t *Tensor) String() string {
	if t == nil {
		return "Tensor(nil)"
	}
	s := "Tensor("
	for i, d := range t.Shape {
		if i > 0 {
			s += "x"
		}
		s += fmt.Sprint(d)
	}
	return s + ")"
}

func validChannels(c int) bool {
	return c == 1 || c == 3 || c == 4
}

// quantize maps a [0, 1] sample to 0..255: scaled, rounded half away from
// zero and clamped. NaN maps to 0.
func quantize(v float32) uint8 {
	f := float64(v) * 255
	switch {
	case math.IsNaN(f), f <= 0:
		return 0
	case f >= 255:
		return 255
	}
	return uint8(math.Round(f))
}

// ToRaster converts a host buffer into an 8-bit image.
//
// Accepted layouts:
//   - rank 4 (B, ...): the first batch element is used; B > 1 is logged.
//     The element is read channel-last (H, W, C) when its last axis is
//     1, 3 or 4, otherwise channel-first (C, H, W).
//   - rank 3: channel-first (C, H, W) when the first axis is 1, 3 or 4,
//     otherwise channel-last. A (1, H, W) mask is therefore one gray
//     plane whatever its width.
//   - rank 2 (H, W): single channel.
//
// One channel yields Gray8, three RGB8 and four RGBA8. Any other rank,
// a channel count that fits neither layout, or Data not matching Shape
// returns ErrFormat; a zero height or width returns ErrShape.
func ToRaster(t *Tensor) (*raster.Image, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tensor", ErrFormat)
	}
	for _, d := range t.Shape {
		if d < 0 {
			return nil, fmt.Errorf("%w: negative dimension in %s", ErrFormat, t)
		}
	}
	if t.Rank() < 2 || t.Rank() > 4 {
		return nil, fmt.Errorf("%w: rank %d in %s", ErrFormat, t.Rank(), t)
	}
	if len(t.Data) != t.Len() {
		return nil, fmt.Errorf("%w: %d values for %s", ErrFormat, len(t.Data), t)
	}

	shape, data := t.Shape, t.Data
	batched := len(shape) == 4
	if batched {
		if shape[0] == 0 {
			return nil, fmt.Errorf("%w: empty batch in %s", ErrShape, t)
		}
		if shape[0] > 1 {
			logging.Get().Warn("using first batch element only", "batch", shape[0], "shape", t.String())
		}
		shape = shape[1:]
		data = data[:shape[0]*shape[1]*shape[2]]
	}

	var h, w, c int
	channelFirst := false
	if len(shape) == 2 {
		h, w, c = shape[0], shape[1], 1
	} else {
		// Batched images are host IMAGE tensors (channel-last); unbatched
		// rank 3 buffers are masks or planar images (channel-first).
		firstOK, lastOK := validChannels(shape[0]), validChannels(shape[2])
		switch {
		case lastOK && (batched || !firstOK):
			h, w, c = shape[0], shape[1], shape[2]
		case firstOK:
			c, h, w = shape[0], shape[1], shape[2]
			channelFirst = true
		default:
			return nil, fmt.Errorf("%w: no channel axis of size 1, 3 or 4 in %s", ErrFormat, t)
		}
	}
	if h == 0 || w == 0 {
		return nil, fmt.Errorf("%w: %dx%d in %s", ErrShape, w, h, t)
	}

	format, _ := raster.FormatForChannels(c)
	img, err := raster.New(w, h, format)
	if err != nil {
		return nil, classify(err)
	}
	px := img.Data()
	if !channelFirst {
		for i, v := range data {
			px[i] = quantize(v)
		}
	} else {
		plane := h * w
		for ch := range c {
			src := data[ch*plane : (ch+1)*plane]
			for i, v := range src {
				px[i*c+ch] = quantize(v)
			}
		}
	}
	logging.Get().Debug("tensor to raster",
		"shape", t.String(), "channel_first", channelFirst, "format", format.String())
	return img, nil
}

// FromRaster converts an 8-bit image into a (1, H, W, C) buffer with C = 3
// for RGB8 and 4 for RGBA8. Gray8 is expanded to RGBA8 first.
func FromRaster(img *raster.Image) *Tensor {
	if img.Format() == raster.FormatGray8 {
		img = img.Convert(raster.FormatRGBA8)
	}
	src := img.Data()
	out := &Tensor{
		Shape: []int{1, img.Height(), img.Width(), img.Channels()},
		Data:  make([]float32, len(src)),
	}
	for i, v := range src {
		out.Data[i] = float32(v) / 255
	}
	return out
}

// MaskFromTensor converts a host buffer into an 8-bit mask.
//
// Rank 3 buffers are masks in the host layout (B, H, W) and rank 2 buffers
// are (H, W); neither goes through channel detection. Rank 4 buffers are
// images, read as ToRaster does and reduced to luma.
func MaskFromTensor(t *Tensor) (*mask.Mask, error) {
	if t != nil && t.Rank() == 3 {
		plane, err := firstPlane(t)
		if err != nil {
			return nil, err
		}
		t = plane
	}
	img, err := ToRaster(t)
	if err != nil {
		return nil, err
	}
	return mask.FromImage(img), nil
}

// firstPlane returns the first (H, W) plane of a (B, H, W) buffer.
func firstPlane(t *Tensor) (*Tensor, error) {
	for _, d := range t.Shape {
		if d < 0 {
			return nil, fmt.Errorf("%w: negative dimension in %s", ErrFormat, t)
		}
	}
	if len(t.Data) != t.Len() {
		return nil, fmt.Errorf("%w: %d values for %s", ErrFormat, len(t.Data), t)
	}
	b, h, w := t.Shape[0], t.Shape[1], t.Shape[2]
	if b == 0 || h == 0 || w == 0 {
		return nil, fmt.Errorf("%w: empty mask %s", ErrShape, t)
	}
	if b > 1 {
		logging.Get().Warn("using first mask of batch only", "batch", b, "shape", t.String())
	}
	return &Tensor{Shape: []int{h, w}, Data: t.Data[:h*w]}, nil
}

// MaskToTensor converts a mask into a (1, H, W) buffer.
func MaskToTensor(m *mask.Mask) *Tensor {
	return &Tensor{
		Shape: []int{1, m.Height(), m.Width()},
		Data:  m.Normalized(),
	}
}

// TensorFromImage converts a standard library image into a (1, H, W, 4)
// buffer with straight alpha.
func TensorFromImage(img image.Image) (*Tensor, error) {
	r, err := raster.FromStd(img)
	if err != nil {
		return nil, classify(err)
	}
	return FromRaster(r), nil
}

// Image converts t into a standard library image: *image.Gray for
// single-channel buffers, *image.NRGBA otherwise.
func (t *Tensor) Image() (image.Image, error) {
	img, err := ToRaster(t)
	if err != nil {
		return nil, err
	}
	return img.ToStd(), nil
}
