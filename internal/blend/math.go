// Package blend provides the per-pixel arithmetic used by the compositor:
// masked paste and mask-driven composite over 8-bit straight-alpha images.
//
// All divisions by 255 round to nearest, which keeps results identical to
// the classic raster-library paste and composite operators.
package blend

// div255 divides x by 255 rounding to nearest without a division.
//
// Formula: t = x + 128; (t + (t >> 8)) >> 8
//
// Exact for every x in 0..255*255.
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// mix interpolates from dst toward src by m/255.
// m = 0 keeps dst, m = 255 yields src.
func mix(dst, src, m byte) byte {
	return byte(div255(uint32(dst)*uint32(255-m) + uint32(src)*uint32(m)))
}
