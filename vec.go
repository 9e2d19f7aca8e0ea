package perlin

// Vec2 is a 2D vector. It serves both as a gradient direction and as the
// offset from a lattice corner to a sample point.
type Vec2 struct {
	X, Y float64
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// dot2 is the generic form of Vec2.Dot used by the evaluator so that float32
// instantiations stay in single precision.
func dot2[T Float](g Vec2, x, y T) T {
	return T(g.X)*x + T(g.Y)*y
}

// dot3 is the generic form of Vec3.Dot.
func dot3[T Float](g Vec3, x, y, z T) T {
	return T(g.X)*x + T(g.Y)*y + T(g.Z)*z
}
