package ggcomp

import (
	"fmt"

	"github.com/gogpu/ggcomp/internal/gradient"
)

// Color generates a solid or linear-gradient image of cfg.Width x
// cfg.Height as a (1, H, W, 3) buffer.
func Color(cfg ColorConfig) (*Tensor, error) {
	spec, err := cfg.spec()
	if err != nil {
		return nil, err
	}
	img, err := gradient.Generate(cfg.Width, cfg.Height, spec)
	if err != nil {
		return nil, fmt.Errorf("color: %w", classify(err))
	}
	return FromRaster(img), nil
}
