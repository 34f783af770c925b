package blend

import (
	"errors"
	"image"

	"github.com/gogpu/ggcomp/internal/mask"
	"github.com/gogpu/ggcomp/internal/raster"
)

// ErrSizeMismatch is returned when operands of a composite differ in size.
var ErrSizeMismatch = errors.New("blend: operand sizes differ")

// Placement returns the destination rectangle covered by a src of size
// srcW x srcH whose top-left lands at (x, y), clipped to dst.
// The result may be empty.
func Placement(dst image.Rectangle, srcW, srcH, x, y int) image.Rectangle {
	return image.Rect(x, y, x+srcW, y+srcH).Intersect(dst)
}

// Paste copies src into dst with its top-left at (x, y), clipped to dst.
// Samples are converted to dst's format. dst is modified in place.
func Paste(dst, src *raster.Image, x, y int) image.Rectangle {
	r := Placement(dst.Bounds(), src.Width(), src.Height(), x, y)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			cr, cg, cb, ca := src.RGBA(px-x, py-y)
			dst.SetRGBA(px, py, cr, cg, cb, ca)
		}
	}
	return r
}

// PasteMask copies src into dst with its top-left at (x, y), clipped to dst.
func PasteMask(dst, src *mask.Mask, x, y int) image.Rectangle {
	r := Placement(dst.Bounds(), src.Width(), src.Height(), x, y)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			dst.Set(px, py, src.At(px-x, py-y))
		}
	}
	return r
}

// PasteMasked pastes src into dst through m: every channel of dst, alpha
// included, moves toward src by m/255. m is indexed in src coordinates and
// must match src's size.
func PasteMasked(dst, src *raster.Image, m *mask.Mask, x, y int) (image.Rectangle, error) {
	if !m.SameSize(src.Width(), src.Height()) {
		return image.Rectangle{}, ErrSizeMismatch
	}
	r := Placement(dst.Bounds(), src.Width(), src.Height(), x, y)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			k := m.At(px-x, py-y)
			sr, sg, sb, sa := src.RGBA(px-x, py-y)
			dr, dg, db, da := dst.RGBA(px, py)
			dst.SetRGBA(px, py, mix(dr, sr, k), mix(dg, sg, k), mix(db, sb, k), mix(da, sa, k))
		}
	}
	return r, nil
}

// Composite blends fg over bg through m and returns a new RGBA8 image:
// where m is 255 the result is fg, where it is 0 the result is bg.
// All three operands must share the same size.
func Composite(fg, bg *raster.Image, m *mask.Mask) (*raster.Image, error) {
	w, h := bg.Width(), bg.Height()
	if fg.Width() != w || fg.Height() != h || !m.SameSize(w, h) {
		return nil, ErrSizeMismatch
	}
	out, err := raster.New(w, h, raster.FormatRGBA8)
	if err != nil {
		return nil, err
	}
	for y := range h {
		for x := range w {
			k := m.At(x, y)
			fr, fgc, fb, fa := fg.RGBA(x, y)
			br, bgc, bb, ba := bg.RGBA(x, y)
			out.SetRGBA(x, y, mix(br, fr, k), mix(bgc, fgc, k), mix(bb, fb, k), mix(ba, fa, k))
		}
	}
	return out, nil
}

// Flatten drops alpha from an image, returning an opaque RGB8 copy.
// Color samples are kept as stored; alpha is not applied.
func Flatten(img *raster.Image) *raster.Image {
	return img.Convert(raster.FormatRGB8)
}
