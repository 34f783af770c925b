// Package library manages the directory of images offered by the selector
// node: it enumerates supported files and loads the one the user picked.
package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ggcomp/internal/logging"
	"github.com/gogpu/ggcomp/internal/raster"
)

// Placeholder is the single choice offered when the directory holds no
// supported image.
const Placeholder = "No images found"

// Errors returned by Load.
var (
	// ErrMissingFile is returned when the selected file does not exist in
	// the library directory, or the name does not denote a file in it.
	ErrMissingFile = errors.New("library: image file not found")

	// ErrDecode is returned when the file exists but is not a readable image.
	ErrDecode = errors.New("library: cannot decode image")
)

// extensions lists the supported file extensions, lower case.
var extensions = []string{".png", ".jpg", ".jpeg", ".webp", ".gif"}

// Supported reports whether name has a supported image extension.
// The comparison ignores case.
func Supported(name string) bool {
	return slices.Contains(extensions, strings.ToLower(filepath.Ext(name)))
}

// Library is an image directory.
type Library struct {
	dir string
}

// Open returns the library rooted at dir, creating the directory when it
// does not exist yet.
func Open(dir string) (*Library, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("library: create %s: %w", dir, err)
	}
	return &Library{dir: dir}, nil
}

// Dir returns the library directory.
func (l *Library) Dir() string { return l.dir }

// List returns the supported image files in the directory, sorted, with
// names normalized to Unicode NFC. Subdirectories are not searched.
func (l *Library) List() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("library: list %s: %w", l.dir, err)
	}
	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !Supported(e.Name()) {
			continue
		}
		names = append(names, norm.NFC.String(e.Name()))
	}
	slices.Sort(names)
	return names, nil
}

// Choices returns List, or just Placeholder when nothing is available.
func (l *Library) Choices() []string {
	names, err := l.List()
	if err != nil {
		logging.Get().Warn("cannot list image library", "dir", l.dir, "err", err)
	}
	if len(names) == 0 {
		return []string{Placeholder}
	}
	return names
}

// Resolve maps a selected name to a path inside the directory.
// Names that would escape the directory are rejected. A name that differs
// from the stored file only by Unicode normalization still resolves.
func (l *Library) Resolve(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrMissingFile, name)
	}
	path := filepath.Join(l.dir, name)
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return path, nil
	}

	want := norm.NFC.String(name)
	entries, err := os.ReadDir(l.dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("library: list %s: %w", l.dir, err)
	}
	for _, e := range entries {
		if e.Type().IsRegular() && norm.NFC.String(e.Name()) == want {
			return filepath.Join(l.dir, e.Name()), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrMissingFile, path)
}

// Load resolves name and decodes the file into an RGBA8 image.
func (l *Library) Load(name string) (*raster.Image, error) {
	path, err := l.Resolve(name)
	if err != nil {
		return nil, err
	}
	img, err := raster.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	logging.Get().Debug("loaded library image",
		"path", path, "width", img.Width(), "height", img.Height())
	return img, nil
}
