package library

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	lib, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("Open() did not create %s: %v", dir, err)
	}
	if lib.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", lib.Dir(), dir)
	}
	if got := lib.Choices(); !slices.Equal(got, []string{Placeholder}) {
		t.Errorf("Choices() on empty dir = %v, want placeholder", got)
	}
}

func TestSupported(t *testing.T) {
	for name, want := range map[string]bool{
		"a.png": true, "b.JPG": true, "c.jpeg": true, "d.webp": true, "e.gif": true,
		"f.bmp": false, "g.txt": false, "png": false, "h.png.bak": false,
	} {
		if got := Supported(name); got != want {
			t.Errorf("Supported(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"b.png", "a.jpg", "c.webp", "notes.txt", "d.GIF"} {
		touch(t, filepath.Join(dir, n))
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	lib, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	got, err := lib.List()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.jpg", "b.png", "c.webp", "d.GIF"}
	if !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
	if !slices.Equal(lib.Choices(), want) {
		t.Errorf("Choices() = %v, want %v", lib.Choices(), want)
	}
}

func TestListNormalizesNames(t *testing.T) {
	dir := t.TempDir()
	nfd := "cafe\u0301.png"
	touch(t, filepath.Join(dir, nfd))

	lib, _ := Open(dir)
	got, err := lib.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "caf\u00e9.png" {
		t.Fatalf("List() = %q, want NFC name", got)
	}
	// The NFC choice must still resolve to the NFD file on disk.
	path, err := lib.Resolve(got[0])
	if err != nil {
		t.Fatalf("Resolve(NFC) error = %v", err)
	}
	if filepath.Base(path) != nfd {
		t.Errorf("Resolve() = %q, want the stored name", path)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	writePNG(t, filepath.Join(dir, "pic.png"), src)

	lib, _ := Open(dir)
	img, err := lib.Load("pic.png")
	if err != nil {
		t.Fatal(err)
	}
	if img.Width() != 3 || img.Height() != 2 {
		t.Fatalf("Load() = %dx%d, want 3x2", img.Width(), img.Height())
	}
	if r, g, b, a := img.RGBA(1, 1); r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("pixel = (%d,%d,%d,%d), want (10,20,30,40)", r, g, b, a)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "broken.png"))
	lib, _ := Open(dir)

	tests := []struct {
		name string
		want error
	}{
		{"absent.png", ErrMissingFile},
		{"", ErrMissingFile},
		{"..", ErrMissingFile},
		{"../escape.png", ErrMissingFile},
		{`sub\x.png`, ErrMissingFile},
		{"broken.png", ErrDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := lib.Load(tt.name); !errors.Is(err, tt.want) {
				t.Errorf("Load(%q) error = %v, want %v", tt.name, err, tt.want)
			}
		})
	}
}
