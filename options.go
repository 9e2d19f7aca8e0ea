package perlin

import (
	"fmt"
	"math"
	"runtime"
)

// DefaultScale is the number of pixels per lattice cell used when no
// WithScale option is given.
const DefaultScale = 50

// Option configures SampleField and Render.
//
// Example:
//
//	// 3D slice at depth 1.5, 32 pixels per cell, red cell grid
//	pm, err := perlin.Render(512, 512,
//	    perlin.WithScale(32),
//	    perlin.WithDepth(1.5),
//	    perlin.WithGrid(perlin.Red))
type Option func(*options)

// options holds the sampling and rendering configuration.
type options struct {
	scale    float64
	offsetX  float64
	offsetY  float64
	depth    float64
	use3D    bool
	colorMap ColorMap
	grid     bool
	gridRGBA RGBA
	workers  int
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		scale:    DefaultScale,
		colorMap: Grayscale,
		workers:  runtime.GOMAXPROCS(0),
	}
}

// buildOptions applies opts over the defaults and validates the result.
func buildOptions(width, height int, opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if width <= 0 || height <= 0 {
		return o, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if !(o.scale > 0) || math.IsInf(o.scale, 0) {
		return o, fmt.Errorf("%w: %v", ErrInvalidScale, o.scale)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.colorMap == nil {
		o.colorMap = Grayscale
	}
	return o, nil
}

// WithScale sets how many samples span one lattice cell. Larger values give
// smoother, lower-frequency noise.
func WithScale(s float64) Option {
	return func(o *options) {
		o.scale = s
	}
}

// WithOffset sets the noise-space coordinate of sample (0, 0).
func WithOffset(x, y float64) Option {
	return func(o *options) {
		o.offsetX = x
		o.offsetY = y
	}
}

// WithDepth samples the plane z = depth of 3D noise instead of 2D noise.
func WithDepth(z float64) Option {
	return func(o *options) {
		o.depth = z
		o.use3D = true
	}
}

// WithColorMap sets the mapping from noise values to colors used by Render.
// A nil map restores the default Grayscale.
func WithColorMap(m ColorMap) Option {
	return func(o *options) {
		o.colorMap = m
	}
}

// WithGrid makes Render outline lattice cells in the given color.
func WithGrid(c RGBA) Option {
	return func(o *options) {
		o.grid = true
		o.gridRGBA = c
	}
}

// WithWorkers sets the number of goroutines Render uses.
// Zero or negative means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// coord maps a sample index along one axis to noise space.
func (o *options) coord(offset float64, i int) float64 {
	return offset + float64(i)/o.scale
}

// sample evaluates the configured noise at sample index (col, row).
func (o *options) sample(col, row int) float64 {
	x := o.coord(o.offsetX, col)
	y := o.coord(o.offsetY, row)
	if o.use3D {
		return Noise3D(x, y, o.depth)
	}
	return Noise2D(x, y)
}

// onGrid reports whether sample index i along an axis is the first sample
// inside a new lattice cell.
func (o *options) onGrid(offset float64, i int) bool {
	cur := math.Floor(o.coord(offset, i))
	prev := math.Floor(o.coord(offset, i-1))
	return cur != prev
}
