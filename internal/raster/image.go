package raster

import (
	"errors"
	"image"
)

// Common errors for raster operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("raster: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("raster: invalid format")

	// ErrDataTooSmall is returned when provided data does not cover the image.
	ErrDataTooSmall = errors.New("raster: data buffer too small")
)

// Image is an 8-bit raster image.
//
// Images are treated as values: pipeline stages never modify an Image they
// received, they return a new one. Methods that mutate (Set, Fill) exist for
// the stage that is building its own output.
type Image struct {
	data   []byte
	width  int
	height int
	format Format
}

// New creates a zeroed image with the given dimensions and format.
// For RGBA8 the zero value is transparent black.
func New(width, height int, format Format) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	return &Image{
		data:   make([]byte, format.RowBytes(width)*height),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// FromRaw creates an Image that takes ownership of data.
// data must hold at least width*height*channels bytes; extra bytes are dropped.
func FromRaw(data []byte, width, height int, format Format) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	n := format.RowBytes(width) * height
	if len(data) < n {
		return nil, ErrDataTooSmall
	}
	return &Image{data: data[:n], width: width, height: height, format: format}, nil
}

// Clone creates a deep copy of the image.
func (m *Image) Clone() *Image {
	data := make([]byte, len(m.data))
	copy(data, m.data)
	return &Image{data: data, width: m.width, height: m.height, format: m.format}
}

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.width }

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.height }

// Format returns the pixel format.
func (m *Image) Format() Format { return m.format }

// Channels returns the channel depth.
func (m *Image) Channels() int { return m.format.Channels() }

// Bounds returns the image rectangle anchored at the origin.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Data returns the raw pixel data slice.
func (m *Image) Data() []byte { return m.data }

// Row returns the samples of row y, or nil if y is out of bounds.
func (m *Image) Row(y int) []byte {
	if y < 0 || y >= m.height {
		return nil
	}
	stride := m.format.RowBytes(m.width)
	return m.data[y*stride : (y+1)*stride]
}

// PixelOffset returns the byte offset of pixel (x, y), or -1 if out of bounds.
func (m *Image) PixelOffset(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return -1
	}
	return (y*m.width + x) * m.format.Channels()
}

// RGBA returns the pixel at (x, y) as straight-alpha samples.
// Gray expands to r=g=b, formats without alpha report a=255.
// Out of bounds coordinates return transparent black.
func (m *Image) RGBA(x, y int) (r, g, b, a uint8) {
	off := m.PixelOffset(x, y)
	if off < 0 {
		return 0, 0, 0, 0
	}
	p := m.data[off:]
	switch m.format {
	case FormatGray8:
		return p[0], p[0], p[0], 255
	case FormatRGB8:
		return p[0], p[1], p[2], 255
	default:
		return p[0], p[1], p[2], p[3]
	}
}

// SetRGBA stores a straight-alpha pixel at (x, y), converting to the image
// format. Out of bounds coordinates are ignored.
func (m *Image) SetRGBA(x, y int, r, g, b, a uint8) {
	off := m.PixelOffset(x, y)
	if off < 0 {
		return
	}
	switch m.format {
	case FormatGray8:
		m.data[off] = Luma(r, g, b)
	case FormatRGB8:
		m.data[off], m.data[off+1], m.data[off+2] = r, g, b
	default:
		m.data[off], m.data[off+1], m.data[off+2], m.data[off+3] = r, g, b, a
	}
}

// Fill sets every pixel to the given color.
func (m *Image) Fill(r, g, b, a uint8) {
	n := m.format.Channels()
	px := [4]byte{r, g, b, a}
	if m.format == FormatGray8 {
		px[0] = Luma(r, g, b)
	}
	for i := 0; i < len(m.data); i += n {
		copy(m.data[i:i+n], px[:n])
	}
}

// Convert returns a copy of the image in the target format.
//
// Gray expands by replication, color reduces to gray by ITU-R 601 luma,
// a missing alpha channel becomes 255 and a dropped one is discarded.
func (m *Image) Convert(target Format) *Image {
	if target == m.format || !target.IsValid() {
		return m.Clone()
	}
	out, _ := New(m.width, m.height, target)
	for y := range m.height {
		for x := range m.width {
			r, g, b, a := m.RGBA(x, y)
			out.SetRGBA(x, y, r, g, b, a)
		}
	}
	return out
}

// Channel extracts channel c as a tightly packed plane.
// It returns nil if c is out of range for the format.
func (m *Image) Channel(c int) []byte {
	n := m.format.Channels()
	if c < 0 || c >= n {
		return nil
	}
	plane := make([]byte, m.width*m.height)
	for i := range plane {
		plane[i] = m.data[i*n+c]
	}
	return plane
}

// Luma reduces an RGB triple to gray with the ITU-R 601 weights.
func Luma(r, g, b uint8) uint8 {
	return uint8((int(r)*299 + int(g)*587 + int(b)*114 + 500) / 1000)
}
