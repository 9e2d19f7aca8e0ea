// Package perlin computes classical Perlin gradient noise in 2D and 3D.
//
// # Overview
//
// Noise is a deterministic, continuous scalar field over real coordinates.
// Each integer lattice corner is assigned a gradient by hashing its
// coordinates through a fixed 256-entry permutation table. A sample point
// takes the dot product of every surrounding corner's gradient with the
// offset from that corner, and blends the results with the quintic fade
// curve 6t^5 - 15t^4 + 10t^3.
//
// # Quick Start
//
//	import "github.com/gogpu/perlin"
//
//	v := perlin.Noise2D(x/50, y/50)     // roughly within [-1, 1]
//	w := perlin.Noise3D(x/50, y/50, t)  // animate through z
//
//	// single precision
//	f := perlin.Perlin2[float32](1.25, 3.5)
//
// Noise is 0 at every lattice point. Frequency is controlled entirely by how
// densely the caller samples: divide pixel coordinates by a scale factor.
//
// # Textures
//
// SampleField and Render are batch helpers for building height maps and
// images. They parallelize over rows and accept functional options:
//
//	pm, err := perlin.Render(800, 600,
//	    perlin.WithScale(50),
//	    perlin.WithOffset(245, 324),
//	    perlin.WithColorMap(perlin.Terrain))
//	if err != nil {
//	    return err
//	}
//	err = pm.Save("terrain.png")
//
// # Concurrency
//
// The permutation table and gradient sets are package-level values that are
// never written after initialization. All evaluators are pure and safe for
// concurrent use without locking.
//
// # Non-finite input
//
// NaN and infinite coordinates produce unspecified results; callers must
// keep coordinates finite.
package perlin

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
