package perlin

import (
	"time"

	"github.com/gogpu/perlin/internal/parallel"
)

// Render samples noise on a width x height grid and colors every pixel with
// the configured ColorMap (Grayscale by default).
//
// With WithGrid, pixels whose sample coordinate is the first inside a new
// lattice cell column or row are painted in the grid color instead, so the
// overlay marks cell boundaries. With an integral offset and scale 50 that is
// every 50th column and row.
//
// Rows are split into bands and rendered on a worker pool of WithWorkers
// goroutines. The output does not depend on the worker count.
func Render(width, height int, opts ...Option) (*Pixmap, error) {
	o, err := buildOptions(width, height, opts)
	if err != nil {
		return nil, err
	}

	pm := NewPixmap(width, height)
	start := time.Now()

	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()

	bands := parallel.SplitRows(height)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { renderBand(pm, &o, b) }
	}
	pool.ExecuteAll(work)

	Logger().Debug("perlin: rendered",
		"width", width,
		"height", height,
		"bands", len(bands),
		"workers", pool.Workers(),
		"grid", o.grid,
		"elapsed", time.Since(start))

	return pm, nil
}

// renderBand fills the rows of one band. Bands never overlap, so concurrent
// calls write disjoint parts of pm.
func renderBand(pm *Pixmap, o *options, b parallel.Band) {
	for row := b.Y0; row < b.Y1; row++ {
		gridRow := o.grid && o.onGrid(o.offsetY, row)
		for col := 0; col < pm.width; col++ {
			if gridRow || (o.grid && o.onGrid(o.offsetX, col)) {
				pm.SetPixel(col, row, o.gridRGBA)
				continue
			}
			pm.SetPixel(col, row, o.colorMap(o.sample(col, row)))
		}
	}
}
