package perlin

import (
	"math"
	"time"

	goparallel "github.com/dgravesa/go-parallel/parallel"
)

// Field is a rectangular grid of noise samples in row-major order.
type Field struct {
	width  int
	height int
	values []float64
}

// SampleField evaluates noise on a width x height grid. The sample at
// (col, row) is taken at (offsetX + col/scale, offsetY + row/scale), from
// the 3D plane z = depth when WithDepth is given and from 2D noise otherwise.
// Rows are sampled concurrently; the result does not depend on scheduling.
//
// Only WithScale, WithOffset and WithDepth affect the field.
func SampleField(width, height int, opts ...Option) (*Field, error) {
	o, err := buildOptions(width, height, opts)
	if err != nil {
		return nil, err
	}

	f := &Field{
		width:  width,
		height: height,
		values: make([]float64, width*height),
	}

	start := time.Now()
	goparallel.For(height, func(row, _ int) {
		line := f.values[row*width : (row+1)*width]
		for col := range line {
			line[col] = o.sample(col, row)
		}
	})

	Logger().Debug("perlin: field sampled",
		"width", width,
		"height", height,
		"scale", o.scale,
		"3d", o.use3D,
		"elapsed", time.Since(start))

	return f, nil
}

// Width returns the number of columns.
func (f *Field) Width() int {
	return f.width
}

// Height returns the number of rows.
func (f *Field) Height() int {
	return f.height
}

// At returns the sample at (col, row). It panics if the index is out of range.
func (f *Field) At(col, row int) float64 {
	if col < 0 || col >= f.width || row < 0 || row >= f.height {
		panic("perlin: Field.At index out of range")
	}
	return f.values[row*f.width+col]
}

// Values returns the samples in row-major order. The slice is shared with
// the field.
func (f *Field) Values() []float64 {
	return f.values
}

// Range returns the smallest and largest sample.
func (f *Field) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range f.values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// Mean returns the arithmetic mean of the samples.
func (f *Field) Mean() float64 {
	var sum float64
	for _, v := range f.values {
		sum += v
	}
	return sum / float64(len(f.values))
}
