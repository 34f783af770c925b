// Package gradient generates solid and linear-gradient RGB images.
package gradient

import (
	"errors"
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/ggcomp/internal/raster"
)

// ErrInvalidHex is returned for a color string that is not 3 or 6 hex
// digits with an optional leading '#'.
var ErrInvalidHex = errors.New("gradient: invalid hex color")

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses "#RGB", "RGB", "#RRGGBB" or "RRGGBB".
func ParseHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(digits) != 3 && len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
	}
	c, err := colorful.Hex("#" + strings.ToLower(digits))
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %w", ErrInvalidHex, s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex formats the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Spec describes a fill: a solid color, or a linear gradient from Start to
// End along Angle degrees (0 = left to right, 90 = top to bottom).
type Spec struct {
	Color    RGB
	Gradient bool
	Start    RGB
	End      RGB
	Angle    float64
}

// Solid returns a solid-color spec.
func Solid(c RGB) Spec {
	return Spec{Color: c}
}

// Linear returns a linear-gradient spec.
func Linear(start, end RGB, angle float64) Spec {
	return Spec{Gradient: true, Start: start, End: end, Angle: angle}
}

// Offset returns the gradient parameter t at pixel (x, y) of a w x h image.
//
// The pixel is projected on the gradient direction relative to the image
// center and normalized by the longer side:
//
//	t = 0.5 + ((x - w/2)cosθ + (y - h/2)sinθ) / max(w, h)
//
// t is not clamped; corners of non-square or rotated gradients fall
// outside [0, 1] and are clamped per channel by ColorAt.
func (s Spec) Offset(x, y, w, h int) float64 {
	sin, cos := math.Sincos(s.Angle * math.Pi / 180)
	dx := float64(x) - float64(w)/2
	dy := float64(y) - float64(h)/2
	return 0.5 + (dx*cos+dy*sin)/float64(max(w, h))
}

// ColorAt returns the color of pixel (x, y) in a w x h image.
func (s Spec) ColorAt(x, y, w, h int) RGB {
	if !s.Gradient {
		return s.Color
	}
	t := s.Offset(x, y, w, h)
	return RGB{
		R: lerpChannel(s.Start.R, s.End.R, t),
		G: lerpChannel(s.Start.G, s.End.G, t),
		B: lerpChannel(s.Start.B, s.End.B, t),
	}
}

// lerpChannel interpolates one channel, clamps to [0, 255] and truncates.
func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a) + t*(float64(b)-float64(a))
	return uint8(math.Max(0, math.Min(255, v)))
}

// Generate renders spec into a new w x h RGB8 image.
func Generate(w, h int, spec Spec) (*raster.Image, error) {
	img, err := raster.New(w, h, raster.FormatRGB8)
	if err != nil {
		return nil, err
	}
	if !spec.Gradient {
		img.Fill(spec.Color.R, spec.Color.G, spec.Color.B, 255)
		return img, nil
	}
	for y := range h {
		for x := range w {
			c := spec.ColorAt(x, y, w, h)
			img.SetRGBA(x, y, c.R, c.G, c.B, 255)
		}
	}
	return img, nil
}
