package blend

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/ggcomp/internal/mask"
	"github.com/gogpu/ggcomp/internal/raster"
)

func solid(t *testing.T, w, h int, f raster.Format, r, g, b, a uint8) *raster.Image {
	t.Helper()
	img, err := raster.New(w, h, f)
	if err != nil {
		t.Fatal(err)
	}
	img.Fill(r, g, b, a)
	return img
}

func TestPlacement(t *testing.T) {
	dst := image.Rect(0, 0, 200, 200)
	tests := []struct {
		name string
		x, y int
		want image.Rectangle
	}{
		{"inside", 10, 20, image.Rect(10, 20, 110, 120)},
		{"negative x", -50, 0, image.Rect(0, 0, 50, 100)},
		{"bottom right", 150, 150, image.Rect(150, 150, 200, 200)},
		{"fully outside", 300, 0, image.Rectangle{}},
		{"fully above", 0, -100, image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Placement(dst, 100, 100, tt.x, tt.y)
			if got != tt.want && !(got.Empty() && tt.want.Empty()) {
				t.Errorf("Placement() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPasteCropsSource(t *testing.T) {
	dst := solid(t, 4, 1, raster.FormatRGBA8, 0, 0, 0, 0)
	src, _ := raster.New(4, 1, raster.FormatRGB8)
	for x := range 4 {
		src.SetRGBA(x, 0, uint8(x+1), 0, 0, 255)
	}

	r := Paste(dst, src, -2, 0)
	if r != image.Rect(0, 0, 2, 1) {
		t.Fatalf("Paste() rect = %v", r)
	}
	// Columns 2 and 3 of src are visible at 0 and 1.
	if v, _, _, a := dst.RGBA(0, 0); v != 3 || a != 255 {
		t.Errorf("dst(0,0) = %d/%d, want 3/255", v, a)
	}
	if v, _, _, _ := dst.RGBA(1, 0); v != 4 {
		t.Errorf("dst(1,0) = %d, want 4", v)
	}
	if _, _, _, a := dst.RGBA(2, 0); a != 0 {
		t.Errorf("dst(2,0) alpha = %d, want 0", a)
	}
}

func TestPasteMask(t *testing.T) {
	dst := mask.New(3, 3)
	r := PasteMask(dst, mask.Filled(2, 2, 9), 2, 2)
	if r != image.Rect(2, 2, 3, 3) {
		t.Errorf("PasteMask() rect = %v", r)
	}
	if dst.At(2, 2) != 9 || dst.At(1, 1) != 0 {
		t.Errorf("PasteMask() = %v", dst.Data())
	}
}

func TestPasteMaskedOnTransparent(t *testing.T) {
	dst := solid(t, 1, 1, raster.FormatRGBA8, 0, 0, 0, 0)
	src := solid(t, 1, 1, raster.FormatRGB8, 200, 100, 50, 255)
	m := mask.Filled(1, 1, 128)

	if _, err := PasteMasked(dst, src, m, 0, 0); err != nil {
		t.Fatal(err)
	}
	r, g, b, a := dst.RGBA(0, 0)
	if r != 100 || g != 50 || b != 25 || a != 128 {
		t.Errorf("PasteMasked() = (%d,%d,%d,%d), want (100,50,25,128)", r, g, b, a)
	}

	if _, err := PasteMasked(dst, src, mask.New(2, 2), 0, 0); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("PasteMasked(bad mask) error = %v, want ErrSizeMismatch", err)
	}
}

func TestComposite(t *testing.T) {
	fg := solid(t, 2, 1, raster.FormatRGBA8, 255, 0, 0, 255)
	bg := solid(t, 2, 1, raster.FormatRGBA8, 0, 0, 255, 255)
	m := mask.New(2, 1)
	m.Set(0, 0, 255)
	m.Set(1, 0, 0)

	out, err := Composite(fg, bg, m)
	if err != nil {
		t.Fatal(err)
	}
	if r, _, b, _ := out.RGBA(0, 0); r != 255 || b != 0 {
		t.Errorf("m=255 pixel = r%d b%d, want fg", r, b)
	}
	if r, _, b, _ := out.RGBA(1, 0); r != 0 || b != 255 {
		t.Errorf("m=0 pixel = r%d b%d, want bg", r, b)
	}

	if _, err := Composite(fg, solid(t, 3, 1, raster.FormatRGBA8, 0, 0, 0, 0), m); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Composite(mismatch) error = %v, want ErrSizeMismatch", err)
	}
}

func TestFlatten(t *testing.T) {
	img := solid(t, 1, 1, raster.FormatRGBA8, 9, 8, 7, 0)
	out := Flatten(img)
	if out.Format() != raster.FormatRGB8 {
		t.Fatalf("Flatten() format = %v", out.Format())
	}
	if d := out.Data(); d[0] != 9 || d[1] != 8 || d[2] != 7 {
		t.Errorf("Flatten() = %v, want [9 8 7]", d)
	}
}
