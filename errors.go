package ggcomp

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/gogpu/ggcomp/internal/blend"
	"github.com/gogpu/ggcomp/internal/compose"
	"github.com/gogpu/ggcomp/internal/gradient"
	"github.com/gogpu/ggcomp/internal/library"
	"github.com/gogpu/ggcomp/internal/raster"
	"github.com/gogpu/ggcomp/internal/transform"
)

// Error kinds returned by the nodes. Test with errors.Is; the wrapped
// chain keeps the underlying cause.
var (
	// ErrFormat is returned when a buffer's rank or channel layout is not
	// recognized.
	ErrFormat = errors.New("ggcomp: unsupported buffer layout")

	// ErrShape is returned for zero-area images or mismatched operands.
	ErrShape = errors.New("ggcomp: invalid image shape")

	// ErrMissingFile is returned when the selected image file does not exist.
	ErrMissingFile = errors.New("ggcomp: image file not found")

	// ErrDecode is returned when an image file cannot be decoded.
	ErrDecode = errors.New("ggcomp: cannot decode image")

	// ErrInvalidConfig is returned when a node configuration fails validation.
	ErrInvalidConfig = errors.New("ggcomp: invalid configuration")
)

// classify maps an internal error onto the public error kinds.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var kind error
	switch {
	case errors.Is(err, ErrFormat), errors.Is(err, ErrShape), errors.Is(err, ErrMissingFile),
		errors.Is(err, ErrDecode), errors.Is(err, ErrInvalidConfig):
		return err
	case errors.Is(err, raster.ErrInvalidDimensions), errors.Is(err, compose.ErrEmptyImage),
		errors.Is(err, blend.ErrSizeMismatch), errors.Is(err, transform.ErrShapeMismatch):
		kind = ErrShape
	case errors.Is(err, library.ErrMissingFile), errors.Is(err, fs.ErrNotExist):
		kind = ErrMissingFile
	case errors.Is(err, library.ErrDecode), errors.Is(err, raster.ErrDecode), errors.Is(err, raster.ErrEmptyData):
		kind = ErrDecode
	case errors.Is(err, transform.ErrInvalidScale), errors.Is(err, gradient.ErrInvalidHex):
		kind = ErrInvalidConfig
	default:
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}
