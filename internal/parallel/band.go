package parallel

// BandHeight is the preferred number of rows per band. Several bands per
// worker keep the pool busy when rows cost different amounts.
const BandHeight = 16

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows divides height rows into consecutive bands of at most
// BandHeight rows. The last band may be shorter. A non-positive height
// yields no bands.
func SplitRows(height int) []Band {
	if height <= 0 {
		return nil
	}
	bands := make([]Band, 0, (height+BandHeight-1)/BandHeight)
	for y := 0; y < height; y += BandHeight {
		bands = append(bands, Band{Y0: y, Y1: min(y+BandHeight, height)})
	}
	return bands
}
