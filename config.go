package ggcomp

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/ggcomp/internal/gradient"
	"github.com/gogpu/ggcomp/internal/transform"
)

// Limits of the node inputs, matching what hosts expose as widget ranges.
const (
	// MaxOffset bounds the overlay X and Y offsets in both directions.
	MaxOffset = 4096

	// MaxScale is the largest overlay scale factor.
	MaxScale = 100.0

	// MaxDimension is the largest generated image side.
	MaxDimension = 4096
)

// Mirror selects an optional flip of the overlay layer.
type Mirror = transform.Mirror

// Mirror modes.
const (
	MirrorNone       = transform.MirrorNone
	MirrorHorizontal = transform.MirrorHorizontal
	MirrorVertical   = transform.MirrorVertical
)

// ParseMirror parses a mirror mode name ("None", "Horizontal", "Vertical"),
// case-insensitively. The empty string is MirrorNone.
func ParseMirror(s string) (Mirror, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return MirrorNone, nil
	case "horizontal":
		return MirrorHorizontal, nil
	case "vertical":
		return MirrorVertical, nil
	}
	return MirrorNone, fmt.Errorf("%w: mirror %q", ErrInvalidConfig, s)
}

// OverlayConfig holds the overlay node parameters.
type OverlayConfig struct {
	// X and Y place the transformed layer's top-left corner on the
	// background. They may be negative.
	X, Y int

	// Mirror flips the layer after scaling.
	Mirror Mirror

	// Rotation turns the layer counter-clockwise, in degrees within ±360.
	// The rotated layer grows to fit its corners.
	Rotation float64

	// Scale multiplies the layer size. Must be in (0, MaxScale].
	Scale float64
}

// DefaultOverlayConfig returns an identity overlay at the origin.
func DefaultOverlayConfig() OverlayConfig {
	return OverlayConfig{Scale: 1}
}

// Validate reports whether the configuration is usable.
func (c OverlayConfig) Validate() error {
	switch {
	case c.X < -MaxOffset || c.X > MaxOffset || c.Y < -MaxOffset || c.Y > MaxOffset:
		return fmt.Errorf("%w: offset (%d, %d) outside ±%d", ErrInvalidConfig, c.X, c.Y, MaxOffset)
	case math.IsNaN(c.Scale) || c.Scale <= 0 || c.Scale > MaxScale:
		return fmt.Errorf("%w: scale %v outside (0, %v]", ErrInvalidConfig, c.Scale, MaxScale)
	case math.IsNaN(c.Rotation) || c.Rotation < -360 || c.Rotation > 360:
		return fmt.Errorf("%w: rotation %v outside ±360", ErrInvalidConfig, c.Rotation)
	case c.Mirror > MirrorVertical:
		return fmt.Errorf("%w: mirror %d", ErrInvalidConfig, c.Mirror)
	}
	return nil
}

func (c OverlayConfig) params() transform.Params {
	return transform.Params{Scale: c.Scale, Mirror: c.Mirror, Rotation: c.Rotation}
}

// ColorConfig holds the color generator parameters. Colors are hex strings
// of 3 or 6 digits with an optional leading '#'.
type ColorConfig struct {
	Width, Height int

	// ColorHex fills the image when GradientEnabled is false.
	ColorHex string

	// GradientEnabled selects a linear gradient from GradientStartHex to
	// GradientEndHex along GradientAngle degrees in [0, 360]
	// (0 = left to right, 90 = top to bottom).
	GradientEnabled  bool
	GradientStartHex string
	GradientEndHex   string
	GradientAngle    float64
}

// DefaultColorConfig returns a 512x512 white fill with a black-to-white
// gradient preset.
func DefaultColorConfig() ColorConfig {
	return ColorConfig{
		Width:            512,
		Height:           512,
		ColorHex:         "#FFFFFF",
		GradientStartHex: "#000000",
		GradientEndHex:   "#FFFFFF",
	}
}

// Validate reports whether the configuration is usable.
func (c ColorConfig) Validate() error {
	_, err := c.spec()
	return err
}

func (c ColorConfig) spec() (gradient.Spec, error) {
	if c.Width < 1 || c.Width > MaxDimension || c.Height < 1 || c.Height > MaxDimension {
		return gradient.Spec{}, fmt.Errorf("%w: size %dx%d outside 1..%d",
			ErrInvalidConfig, c.Width, c.Height, MaxDimension)
	}
	if !c.GradientEnabled {
		col, err := gradient.ParseHex(c.ColorHex)
		if err != nil {
			return gradient.Spec{}, fmt.Errorf("%w: color: %w", ErrInvalidConfig, err)
		}
		return gradient.Solid(col), nil
	}
	if math.IsNaN(c.GradientAngle) || c.GradientAngle < 0 || c.GradientAngle > 360 {
		return gradient.Spec{}, fmt.Errorf("%w: gradient angle %v", ErrInvalidConfig, c.GradientAngle)
	}
	start, err := gradient.ParseHex(c.GradientStartHex)
	if err != nil {
		return gradient.Spec{}, fmt.Errorf("%w: gradient start: %w", ErrInvalidConfig, err)
	}
	end, err := gradient.ParseHex(c.GradientEndHex)
	if err != nil {
		return gradient.Spec{}, fmt.Errorf("%w: gradient end: %w", ErrInvalidConfig, err)
	}
	return gradient.Linear(start, end, c.GradientAngle), nil
}
