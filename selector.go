package ggcomp

import (
	"fmt"

	"github.com/gogpu/ggcomp/internal/library"
	"github.com/gogpu/ggcomp/internal/mask"
	"github.com/gogpu/ggcomp/internal/raster"
)

// NoImagesPlaceholder is the single choice offered by an empty library.
const NoImagesPlaceholder = library.Placeholder

// Selector loads images by name from a directory of image files.
type Selector struct {
	lib *library.Library
}

// NewSelector opens dir as an image library, creating it when absent.
func NewSelector(dir string) (*Selector, error) {
	lib, err := library.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("selector: %w", classify(err))
	}
	return &Selector{lib: lib}, nil
}

// Dir returns the library directory.
func (s *Selector) Dir() string { return s.lib.Dir() }

// Choices returns the sorted image file names, or NoImagesPlaceholder
// alone when there are none.
func (s *Selector) Choices() []string {
	return s.lib.Choices()
}

// Select loads the named file. It returns the color data as (1, H, W, 3)
// and the file's alpha as a (1, H, W) mask inverted to 1 - alpha, so
// opaque pixels read 0. Files without alpha give an all-zero mask.
func (s *Selector) Select(name string) (img, alpha *Tensor, err error) {
	r, err := s.lib.Load(name)
	if err != nil {
		return nil, nil, fmt.Errorf("select %q: %w", name, classify(err))
	}
	img = FromRaster(r.Convert(raster.FormatRGB8))
	alpha = &Tensor{
		Shape: []int{1, r.Height(), r.Width()},
		Data:  mask.ExportAlpha(r),
	}
	return img, alpha, nil
}
