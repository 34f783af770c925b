// Package ggcomp provides image compositing nodes for node-graph hosts.
//
// # Overview
//
// Hosts pass images around as dense float buffers ([Tensor]) with samples
// in [0, 1]. Each node converts its inputs into 8-bit rasters, does its
// work there and converts the result back:
//
//   - [Overlay] places a scaled, mirrored and rotated layer onto a
//     background through the layer's alpha or an external mask.
//   - [BlendWithAlpha] cuts an image out with a punch-through mask.
//   - [Color] generates a solid or linear-gradient image.
//   - [Selector] loads images by name from a directory.
//
// # Quick Start
//
//	import "github.com/gogpu/ggcomp"
//
//	bg, _ := ggcomp.Color(ggcomp.DefaultColorConfig())
//	layer, _ := ggcomp.LoadTensor("logo.png")
//
//	cfg := ggcomp.DefaultOverlayConfig()
//	cfg.X, cfg.Y = 32, 32
//	cfg.Rotation = 15
//	out, err := ggcomp.Overlay(layer, bg, nil, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ggcomp.SavePNG(out, "out.png")
//
// # Buffer Layouts
//
// Images are (1, H, W, C) with C = 3 or 4, masks are (1, H, W). [ToRaster]
// also accepts unbatched and channel-first buffers; see its documentation.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rotation in degrees, positive is counter-clockwise on screen
//
// # Errors
//
// Failures are reported with the sentinel errors [ErrFormat], [ErrShape],
// [ErrMissingFile], [ErrDecode] and [ErrInvalidConfig]; test them with
// errors.Is. Non-fatal anomalies are logged, see [SetLogger].
package ggcomp

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
