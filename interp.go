package perlin

// Fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
//
// It maps [0, 1] onto [0, 1] monotonically with zero first and second
// derivatives at both ends, which hides the lattice in the blended field.
// t is expected in [0, 1].
func Fade[T Float](t T) T {
	return t * t * t * (t*(t*6-15) + 10)
}

// Lerp interpolates linearly between a (t=0) and b (t=1).
func Lerp[T Float](a, b, t T) T {
	return a*(1-t) + b*t
}
