package transform

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Affine represents a 2D affine transformation matrix.
//
// The transformation is represented as a 3x3 matrix:
//
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
type Affine struct {
	a, b, c float64 // First row: x' = ax + by + c
	d, e, f float64 // Second row: y' = dx + ey + f
}

// Identity returns the identity transformation (no change).
func Identity() Affine {
	return Affine{a: 1, e: 1}
}

// Translate returns a translation transformation that shifts points by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{a: 1, c: tx, e: 1, f: ty}
}

// Rotate returns a rotation by angle radians around the origin.
// In y-down image coordinates a positive angle turns clockwise on screen.
func Rotate(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{
		a: cos, b: -sin,
		d: sin, e: cos,
	}
}

// Multiply returns the result of multiplying this affine transform by another.
// The result applies 'other' first, then 'this'.
func (a Affine) Multiply(other Affine) Affine {
	return Affine{
		a: a.a*other.a + a.b*other.d,
		b: a.a*other.b + a.b*other.e,
		c: a.a*other.c + a.b*other.f + a.c,
		d: a.d*other.a + a.e*other.d,
		e: a.d*other.b + a.e*other.e,
		f: a.d*other.c + a.e*other.f + a.f,
	}
}

// TransformPoint applies the affine transformation to point (x, y).
func (a Affine) TransformPoint(x, y float64) (float64, float64) {
	return a.a*x + a.b*y + a.c, a.d*x + a.e*y + a.f
}

// Aff3 converts the matrix to the layout golang.org/x/image/draw expects.
func (a Affine) Aff3() f64.Aff3 {
	return f64.Aff3{a.a, a.b, a.c, a.d, a.e, a.f}
}

// snap rounds v to 1e-9 so that trigonometric noise (cos 90° = 6e-17)
// does not push a bounding box edge across an integer.
func snap(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

// RotatedSize returns the canvas size that holds a w x h image rotated by
// degrees around its center without cropping: ceil(max) - floor(min) of the
// rotated corner coordinates on each axis.
func RotatedSize(w, h int, degrees float64) (int, int) {
	cx, cy := float64(w)/2, float64(h)/2
	m := Translate(cx, cy).Multiply(Rotate(-degrees * math.Pi / 180)).Multiply(Translate(-cx, -cy))

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{0, 0}, {float64(w), 0}, {float64(w), float64(h)}, {0, float64(h)}} {
		x, y := m.TransformPoint(p[0], p[1])
		x, y = snap(x), snap(y)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return int(math.Ceil(maxX) - math.Floor(minX)), int(math.Ceil(maxY) - math.Floor(minY))
}

// rotation returns the source-to-destination matrix that turns a w x h
// image counter-clockwise (as seen on screen) by degrees and centers it on
// a nw x nh canvas.
func rotation(w, h, nw, nh int, degrees float64) Affine {
	return Translate(float64(nw)/2, float64(nh)/2).
		Multiply(Rotate(-degrees * math.Pi / 180)).
		Multiply(Translate(-float64(w)/2, -float64(h)/2))
}
