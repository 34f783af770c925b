// Package mask implements single-channel opacity masks and the polarity
// rules the compositing nodes apply to them.
package mask

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/gogpu/ggcomp/internal/raster"
)

// Mask is a single-channel 8-bit mask. What a value means (opacity or
// transparency) depends on the regime that produced it; see regime.go.
type Mask struct {
	width  int
	height int
	data   []uint8
}

// New creates a mask with the given dimensions, all values 0.
func New(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Filled creates a mask with every value set to v.
func Filled(width, height int, v uint8) *Mask {
	m := New(width, height)
	m.Fill(v)
	return m
}

// FromAlpha creates a mask from an image's alpha channel.
// Images without alpha yield a fully opaque (255) mask.
func FromAlpha(img *raster.Image) *Mask {
	if !img.Format().HasAlpha() {
		return Filled(img.Width(), img.Height(), 255)
	}
	return &Mask{width: img.Width(), height: img.Height(), data: img.Channel(3)}
}

// FromImage reduces an image to a mask. Gray images are copied, color
// images are reduced to luma; alpha is ignored.
func FromImage(img *raster.Image) *Mask {
	if img.Format() != raster.FormatGray8 {
		img = img.Convert(raster.FormatGray8)
	}
	return &Mask{width: img.Width(), height: img.Height(), data: img.Channel(0)}
}

// FromGray copies a standard library gray image.
func FromGray(gray *image.Gray) *Mask {
	b := gray.Bounds()
	m := New(b.Dx(), b.Dy())
	for y := range m.height {
		start := gray.PixOffset(b.Min.X, b.Min.Y+y)
		copy(m.data[y*m.width:(y+1)*m.width], gray.Pix[start:start+m.width])
	}
	return m
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// SameSize reports whether the mask matches the given dimensions.
func (m *Mask) SameSize(width, height int) bool {
	return m.width == width && m.height == height
}

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill fills the entire mask with a value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Inverted returns a copy with every value replaced by 255 - value.
func (m *Mask) Inverted() *Mask {
	out := New(m.width, m.height)
	for i, v := range m.data {
		out.data[i] = 255 - v
	}
	return out
}

// MinMax returns the smallest and largest value in the mask.
func (m *Mask) MinMax() (lo, hi uint8) {
	if len(m.data) == 0 {
		return 0, 0
	}
	lo, hi = 255, 0
	for _, v := range m.data {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// IsZero reports whether every value is 0.
func (m *Mask) IsZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}
	return true
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := New(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying mask data slice.
func (m *Mask) Data() []uint8 {
	return m.data
}

// Gray returns the mask as a standard library gray image sharing no memory.
func (m *Mask) Gray() *image.Gray {
	gray := image.NewGray(m.Bounds())
	copy(gray.Pix, m.data)
	return gray
}

// Image returns the mask as a Gray8 raster image.
func (m *Mask) Image() *raster.Image {
	data := make([]byte, len(m.data))
	copy(data, m.data)
	img, _ := raster.FromRaw(data, m.width, m.height, raster.FormatGray8)
	return img
}

// Resize resamples the mask to width x height with a Lanczos filter.
// A mask that already has that size is cloned.
func (m *Mask) Resize(width, height int) *Mask {
	if m.SameSize(width, height) {
		return m.Clone()
	}
	g := gift.New(gift.Resize(width, height, gift.LanczosResampling))
	dst := image.NewGray(g.Bounds(m.Bounds()))
	g.Draw(dst, m.Gray())
	return FromGray(dst)
}

// Normalized returns the mask scaled to [0,1] floats.
func (m *Mask) Normalized() []float32 {
	out := make([]float32, len(m.data))
	for i, v := range m.data {
		out[i] = float32(v) / 255
	}
	return out
}
