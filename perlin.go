package perlin

import "math"

// Float is the set of floating point types the evaluator is generic over.
type Float interface {
	~float32 | ~float64
}

// SliceZ is the depth at which Slice2D cuts through 3D noise. It sits in the
// middle of a lattice cell so the slice never lies on a plane of corners.
const SliceZ = 0.5

// Noise2D returns 2D Perlin noise at (x, y) in double precision.
// It is shorthand for Perlin2[float64].
func Noise2D(x, y float64) float64 {
	return Perlin2(x, y)
}

// Noise3D returns 3D Perlin noise at (x, y, z) in double precision.
// It is shorthand for Perlin3[float64].
func Noise3D(x, y, z float64) float64 {
	return Perlin3(x, y, z)
}

// Slice2D evaluates 3D noise on the plane z = SliceZ. It trades a little
// quality for sharing the 3D code path with 2D callers.
func Slice2D(x, y float64) float64 {
	return Perlin3(x, y, SliceZ)
}

// Perlin2 returns 2D Perlin noise at (x, y).
//
// The result is roughly within [-1, 1]; the exact bound depends on the
// gradient set and is not guaranteed. Every finite input maps to a finite
// output. NaN and infinite inputs give unspecified results. The function is
// pure and safe for concurrent use.
func Perlin2[T Float](x, y T) T {
	x0, fx := split(x)
	y0, fy := split(y)

	// Corners are indexed by offset bits: bit 0 is dx, bit 1 is dy.
	var c [4]T
	for i := range c {
		dx, dy := i&1, i>>1&1
		g := GradientAt2(x0+dx, y0+dy)
		c[i] = dot2(g, fx-T(dx), fy-T(dy))
	}

	u := Fade(fx)
	lower := Lerp(c[0], c[1], u)
	upper := Lerp(c[2], c[3], u)
	return Lerp(lower, upper, Fade(fy))
}

// Perlin3 returns 3D Perlin noise at (x, y, z).
//
// The eight cube corners are blended along x, then y, then z. Each blend
// only pairs corners that differ in the axis being blended.
func Perlin3[T Float](x, y, z T) T {
	x0, fx := split(x)
	y0, fy := split(y)
	z0, fz := split(z)

	// Bit 0 is dx, bit 1 is dy, bit 2 is dz.
	var c [8]T
	for i := range c {
		dx, dy, dz := i&1, i>>1&1, i>>2&1
		g := GradientAt3(x0+dx, y0+dy, z0+dz)
		c[i] = dot3(g, fx-T(dx), fy-T(dy), fz-T(dz))
	}

	u := Fade(fx)
	x00 := Lerp(c[0], c[1], u) // dy=0 dz=0
	x10 := Lerp(c[2], c[3], u) // dy=1 dz=0
	x01 := Lerp(c[4], c[5], u) // dy=0 dz=1
	x11 := Lerp(c[6], c[7], u) // dy=1 dz=1

	v := Fade(fy)
	y0v := Lerp(x00, x10, v)
	y1v := Lerp(x01, x11, v)

	return Lerp(y0v, y1v, Fade(fz))
}

// split returns the lower lattice corner of the cell containing v and the
// offset of v from that corner, in [0, 1).
//
// Flooring (not truncation) keeps negative coordinates in the right cell.
func split[T Float](v T) (int, T) {
	f := math.Floor(float64(v))
	return int(f), v - T(f)
}
