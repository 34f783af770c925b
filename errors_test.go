package ggcomp

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/gogpu/ggcomp/internal/compose"
	"github.com/gogpu/ggcomp/internal/gradient"
	"github.com/gogpu/ggcomp/internal/library"
	"github.com/gogpu/ggcomp/internal/raster"
	"github.com/gogpu/ggcomp/internal/transform"
)

func TestClassify(t *testing.T) {
	other := errors.New("other")
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"dimensions", raster.ErrInvalidDimensions, ErrShape},
		{"empty image", fmt.Errorf("wrapped: %w", compose.ErrEmptyImage), ErrShape},
		{"shape mismatch", transform.ErrShapeMismatch, ErrShape},
		{"library missing", library.ErrMissingFile, ErrMissingFile},
		{"not exist", fs.ErrNotExist, ErrMissingFile},
		{"library decode", library.ErrDecode, ErrDecode},
		{"raster decode", raster.ErrDecode, ErrDecode},
		{"scale", transform.ErrInvalidScale, ErrInvalidConfig},
		{"hex", gradient.ErrInvalidHex, ErrInvalidConfig},
		{"already public", ErrFormat, ErrFormat},
		{"unknown", other, other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.in)
			if !errors.Is(got, tt.want) {
				t.Errorf("classify(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if !errors.Is(got, tt.in) {
				t.Errorf("classify(%v) lost the cause", tt.in)
			}
		})
	}
	if classify(nil) != nil {
		t.Error("classify(nil) != nil")
	}
}

func TestLoadTensorAndSavePNG(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/out.png"

	src := solidTensor(3, 4, 10, 20, 30, 255)
	if err := SavePNG(src, path); err != nil {
		t.Fatal(err)
	}
	back, err := LoadTensor(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := back.Shape; got[1] != 3 || got[2] != 4 || got[3] != 4 {
		t.Fatalf("shape = %v, want [1 3 4 4]", got)
	}
	for ch, want := range []uint8{10, 20, 30, 255} {
		if got := sample(back, 3, 2, ch); got != want {
			t.Errorf("channel %d = %d, want %d", ch, got, want)
		}
	}

	m, err := LoadMaskTensor(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Shape) != 3 || m.Shape[1] != 3 || m.Shape[2] != 4 {
		t.Errorf("mask shape = %v, want [1 3 4]", m.Shape)
	}

	narrow := NewTensor(1, 8, 4)
	narrow.Data[31] = 1
	maskPath := dir + "/mask.png"
	if err := SavePNG(narrow, maskPath); err != nil {
		t.Fatal(err)
	}
	saved, err := LoadMaskTensor(maskPath)
	if err != nil {
		t.Fatal(err)
	}
	if got := saved.Shape; got[1] != 8 || got[2] != 4 {
		t.Errorf("saved mask shape = %v, want [1 8 4]", got)
	}
	if saved.Data[31] != 1 || saved.Data[0] != 0 {
		t.Errorf("saved mask corners = %v, %v", saved.Data[0], saved.Data[31])
	}

	if _, err := LoadTensor(dir + "/missing.png"); !errors.Is(err, ErrMissingFile) {
		t.Errorf("LoadTensor(missing) error = %v, want ErrMissingFile", err)
	}
	if err := SavePNG(NewTensor(4), path); !errors.Is(err, ErrFormat) {
		t.Errorf("SavePNG(bad) error = %v, want ErrFormat", err)
	}
}
