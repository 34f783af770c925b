package ggcomp

import (
	"fmt"

	"github.com/gogpu/ggcomp/internal/compose"
)

// BlendWithAlpha cuts image out with a punch-through mask: where alpha is
// 0 the image is kept, where it is 1 the pixel becomes transparent.
//
// alpha may have any size; it is resized to the image. It may be a mask
// (1, H, W) or an image, in which case its luma is used. The result is
// (1, H, W, 4) with straight alpha; the color channels are scaled by the
// same factor as alpha.
func BlendWithAlpha(image, alpha *Tensor) (*Tensor, error) {
	img, err := ToRaster(image)
	if err != nil {
		return nil, fmt.Errorf("blend with alpha: image: %w", err)
	}
	m, err := MaskFromTensor(alpha)
	if err != nil {
		return nil, fmt.Errorf("blend with alpha: alpha: %w", err)
	}
	out, err := compose.ExtractByMask(img, m)
	if err != nil {
		return nil, fmt.Errorf("blend with alpha: %w", classify(err))
	}
	return FromRaster(out), nil
}
