// Package raster provides the 8-bit raster image model used by the
// compositing pipeline.
//
// An Image stores tightly packed, row-major, channel-last samples in one of
// three formats: Gray8 (masks), RGB8 (opaque color) and RGBA8 (color with
// straight, non-premultiplied alpha).
package raster

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	// Masks and single-channel buffers use this format.
	FormatGray8 Format = iota

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatRGBA8 is 32-bit RGBA with straight alpha (4 bytes per pixel).
	FormatRGBA8

	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Channels is the number of samples per pixel (the channel depth).
	Channels int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// IsGrayscale indicates if this is a grayscale format.
	IsGrayscale bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8: {Channels: 1, IsGrayscale: true},
	FormatRGB8:  {Channels: 3},
	FormatRGBA8: {Channels: 4, HasAlpha: true},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// Channels returns the channel depth (bytes per pixel).
func (f Format) Channels() int {
	return f.Info().Channels
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.Channels()
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	default:
		return "Unknown"
	}
}

// FormatForChannels maps a channel depth in {1,3,4} to its format.
// The second result is false for any other depth.
func FormatForChannels(channels int) (Format, bool) {
	switch channels {
	case 1:
		return FormatGray8, true
	case 3:
		return FormatRGB8, true
	case 4:
		return FormatRGBA8, true
	default:
		return 0, false
	}
}
