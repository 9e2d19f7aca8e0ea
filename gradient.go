package perlin

import "math"

// diag is the component of a unit vector on a 45 degree diagonal.
const diag = 1 / math.Sqrt2

// gradients2 holds the eight compass directions, all unit length.
var gradients2 = [8]Vec2{
	{X: -diag, Y: -diag},
	{X: -1, Y: 0},
	{X: -diag, Y: diag},
	{X: 0, Y: 1},
	{X: diag, Y: diag},
	{X: 1, Y: 0},
	{X: diag, Y: -diag},
	{X: 0, Y: -1},
}

// gradients3 holds the twelve cube edge midpoints. They have length sqrt(2);
// only relative contributions matter so they are not normalized.
var gradients3 = [12]Vec3{
	{X: 0, Y: -1, Z: 1},
	{X: 1, Y: -1, Z: 0},
	{X: 0, Y: -1, Z: -1},
	{X: -1, Y: -1, Z: 0},
	{X: 1, Y: 0, Z: 1},
	{X: 1, Y: 0, Z: -1},
	{X: -1, Y: 0, Z: 1},
	{X: -1, Y: 0, Z: -1},
	{X: 0, Y: 1, Z: 1},
	{X: 1, Y: 1, Z: 0},
	{X: 0, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: 0},
}

// GradientAt2 returns the gradient assigned to the 2D lattice corner (x, y).
//
// The raw x is added to the hashed y and hashed again. Hashing each axis
// alone would line the gradients up along the axes.
func GradientAt2(x, y int) Vec2 {
	return gradients2[Hash(x+Hash(y))%len(gradients2)]
}

// GradientAt3 returns the gradient assigned to the 3D lattice corner (x, y, z).
func GradientAt3(x, y, z int) Vec3 {
	return gradients3[Hash(x+Hash(y+Hash(z)))%len(gradients3)]
}

// Gradients2 returns a copy of the 2D gradient set.
func Gradients2() [8]Vec2 {
	return gradients2
}

// Gradients3 returns a copy of the 3D gradient set.
func Gradients3() [12]Vec3 {
	return gradients3
}
