package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		format  Format
		wantErr error
	}{
		{"gray", 4, 3, FormatGray8, nil},
		{"rgb", 4, 3, FormatRGB8, nil},
		{"rgba", 4, 3, FormatRGBA8, nil},
		{"zero width", 0, 3, FormatRGBA8, ErrInvalidDimensions},
		{"negative height", 4, -1, FormatRGBA8, ErrInvalidDimensions},
		{"bad format", 4, 3, Format(99), ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := New(tt.w, tt.h, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got, want := len(img.Data()), tt.w*tt.h*tt.format.Channels(); got != want {
				t.Errorf("len(Data()) = %d, want %d", got, want)
			}
		})
	}
}

func TestFromRaw(t *testing.T) {
	if _, err := FromRaw(make([]byte, 5), 2, 1, FormatRGB8); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("FromRaw(short) error = %v, want ErrDataTooSmall", err)
	}
	img, err := FromRaw(make([]byte, 10), 2, 1, FormatRGBA8)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	if len(img.Data()) != 8 {
		t.Errorf("len(Data()) = %d, want 8", len(img.Data()))
	}
}

func TestFormatForChannels(t *testing.T) {
	for _, c := range []int{1, 3, 4} {
		f, ok := FormatForChannels(c)
		if !ok || f.Channels() != c {
			t.Errorf("FormatForChannels(%d) = %v, %v", c, f, ok)
		}
	}
	for _, c := range []int{0, 2, 5} {
		if _, ok := FormatForChannels(c); ok {
			t.Errorf("FormatForChannels(%d) should fail", c)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	img, _ := New(2, 2, FormatRGBA8)
	img.Fill(10, 20, 30, 40)
	c := img.Clone()
	c.SetRGBA(0, 0, 1, 2, 3, 4)
	if r, _, _, _ := img.RGBA(0, 0); r != 10 {
		t.Errorf("original modified through clone: r = %d", r)
	}
}

func TestConvert(t *testing.T) {
	gray, _ := New(1, 1, FormatGray8)
	gray.Data()[0] = 77

	rgba := gray.Convert(FormatRGBA8)
	if r, g, b, a := rgba.RGBA(0, 0); r != 77 || g != 77 || b != 77 || a != 255 {
		t.Errorf("Gray->RGBA = (%d,%d,%d,%d), want (77,77,77,255)", r, g, b, a)
	}

	src, _ := New(1, 1, FormatRGBA8)
	src.SetRGBA(0, 0, 255, 0, 0, 10)
	rgb := src.Convert(FormatRGB8)
	if got := rgb.Data(); got[0] != 255 || got[1] != 0 || got[2] != 0 {
		t.Errorf("RGBA->RGB = %v, want [255 0 0]", got)
	}
	if got := src.Convert(FormatGray8).Data()[0]; got != Luma(255, 0, 0) {
		t.Errorf("RGBA->Gray = %d, want %d", got, Luma(255, 0, 0))
	}
}

func TestLuma(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint8
	}{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{255, 0, 0, 76},
		{0, 255, 0, 150},
		{0, 0, 255, 29},
	}
	for _, tt := range tests {
		if got := Luma(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("Luma(%d,%d,%d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestChannel(t *testing.T) {
	img, _ := New(2, 1, FormatRGBA8)
	img.SetRGBA(0, 0, 1, 2, 3, 4)
	img.SetRGBA(1, 0, 5, 6, 7, 8)
	a := img.Channel(3)
	if len(a) != 2 || a[0] != 4 || a[1] != 8 {
		t.Errorf("Channel(3) = %v, want [4 8]", a)
	}
	if img.Channel(4) != nil {
		t.Error("Channel(4) should be nil for RGBA8")
	}
}

func TestStdRoundTrip(t *testing.T) {
	img, _ := New(3, 2, FormatRGBA8)
	img.SetRGBA(1, 1, 200, 100, 50, 128)

	back, err := FromStd(img.ToStd())
	if err != nil {
		t.Fatalf("FromStd() error = %v", err)
	}
	if !bytes.Equal(back.Data(), img.Data()) {
		t.Errorf("round trip mismatch:\n got %v\nwant %v", back.Data(), img.Data())
	}
}

func TestFromStdUnpremultiplies(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	// Premultiplied half-transparent white.
	src.Set(0, 0, color.RGBA{R: 128, G: 128, B: 128, A: 128})

	img, err := FromStd(src)
	if err != nil {
		t.Fatalf("FromStd() error = %v", err)
	}
	r, _, _, a := img.RGBA(0, 0)
	if a != 128 || r != 255 {
		t.Errorf("FromStd(premul) = r=%d a=%d, want r=255 a=128", r, a)
	}
}

func TestFromStdGray(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(1, 1, color.Gray{Y: 9})
	img, err := FromStdGray(gray)
	if err != nil {
		t.Fatalf("FromStdGray() error = %v", err)
	}
	if img.Format() != FormatGray8 || img.Data()[3] != 9 {
		t.Errorf("FromStdGray() = %v %v", img.Format(), img.Data())
	}
}

func TestDecodeAndSave(t *testing.T) {
	img, _ := New(4, 4, FormatRGB8)
	img.Fill(10, 20, 30, 255)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := img.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Format() != FormatRGBA8 || loaded.Width() != 4 || loaded.Height() != 4 {
		t.Fatalf("Load() = %v %dx%d", loaded.Format(), loaded.Width(), loaded.Height())
	}
	if r, g, b, a := loaded.RGBA(3, 3); r != 10 || g != 20 || b != 30 || a != 255 {
		t.Errorf("pixel = (%d,%d,%d,%d), want (10,20,30,255)", r, g, b, a)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := DecodeBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("DecodeBytes(nil) error = %v, want ErrEmptyData", err)
	}
	if _, err := DecodeBytes([]byte("not an image")); !errors.Is(err, ErrDecode) {
		t.Errorf("DecodeBytes(garbage) error = %v, want ErrDecode", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	img, err := DecodeBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeBytes(png) error = %v", err)
	}
	if img.Format() != FormatRGBA8 {
		t.Errorf("decoded format = %v, want RGBA8", img.Format())
	}
}
