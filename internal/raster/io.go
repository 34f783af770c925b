package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("raster: empty data")

	// ErrDecode is returned when data cannot be decoded as an image.
	ErrDecode = errors.New("raster: decode failed")
)

// Decode decodes a PNG, JPEG, GIF or WebP stream into an RGBA8 image.
func Decode(r io.Reader) (*Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	out, err := FromStd(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
	}
	return out, nil
}

// DecodeBytes decodes an in-memory image.
func DecodeBytes(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Load opens and decodes the image file at path.
// Open errors are returned unwrapped by ErrDecode so callers can test
// os.ErrNotExist.
func Load(path string) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("raster: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// EncodePNG encodes the image as PNG to the given writer.
func (m *Image) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, m.ToStd()); err != nil {
		return fmt.Errorf("raster: encode PNG: %w", err)
	}
	return nil
}

// SavePNG saves the image as a PNG file.
func (m *Image) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("raster: create file: %w", err)
	}
	if err := m.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// FromStd converts a standard library image into an RGBA8 image with
// straight alpha.
func FromStd(img image.Image) (*Image, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	out, err := New(width, height, FormatRGBA8)
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			start := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(out.Row(y), nrgba.Pix[start:start+width*4])
		}
		return out, nil
	}

	// Generic path un-premultiplies through the NRGBA color model.
	for y := range height {
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			out.SetRGBA(x, y, c.R, c.G, c.B, c.A)
		}
	}
	return out, nil
}

// ToStd converts the image to a standard library image.
// Gray8 becomes *image.Gray, color formats become *image.NRGBA.
func (m *Image) ToStd() image.Image {
	rect := m.Bounds()

	switch m.format {
	case FormatGray8:
		gray := image.NewGray(rect)
		copy(gray.Pix, m.data)
		return gray

	case FormatRGBA8:
		nrgba := image.NewNRGBA(rect)
		copy(nrgba.Pix, m.data)
		return nrgba

	default:
		// Expand to NRGBA (opaque)
		nrgba := image.NewNRGBA(rect)
		for i := range m.width * m.height {
			nrgba.Pix[i*4] = m.data[i*3]
			nrgba.Pix[i*4+1] = m.data[i*3+1]
			nrgba.Pix[i*4+2] = m.data[i*3+2]
			nrgba.Pix[i*4+3] = 255
		}
		return nrgba
	}
}

// FromStdGray copies an *image.Gray into a Gray8 image.
func FromStdGray(gray *image.Gray) (*Image, error) {
	bounds := gray.Bounds()
	out, err := New(bounds.Dx(), bounds.Dy(), FormatGray8)
	if err != nil {
		return nil, err
	}
	for y := range out.height {
		start := gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(out.Row(y), gray.Pix[start:start+out.width])
	}
	return out, nil
}

// FromStdNRGBA copies an *image.NRGBA into an image of the given format.
func FromStdNRGBA(nrgba *image.NRGBA, format Format) (*Image, error) {
	out, err := FromStd(nrgba)
	if err != nil {
		return nil, err
	}
	if format == FormatRGBA8 {
		return out, nil
	}
	return out.Convert(format), nil
}
