package perlin

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/perlin/internal/imageio"
)

// Format identifies an image encoding for Pixmap.Encode.
type Format = imageio.Format

// Supported image formats.
const (
	FormatPNG  = imageio.FormatPNG
	FormatJPEG = imageio.FormatJPEG
	FormatPPM  = imageio.FormatPPM
	FormatBMP  = imageio.FormatBMP
	FormatTIFF = imageio.FormatTIFF
)

// ErrUnsupportedFormat is returned by Save for unknown file extensions.
var ErrUnsupportedFormat = imageio.ErrUnsupportedFormat

// Pixmap represents a rectangular pixel buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = to8(c.R)
	p.data[i+1] = to8(c.G)
	p.data[i+2] = to8(c.B)
	p.data[i+3] = to8(c.A)
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			i := (y*pm.width + x) * 4
			pm.data[i+0], pm.data[i+1], pm.data[i+2], pm.data[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return pm
}

// Resize returns a copy of the pixmap scaled to width x height with
// Catmull-Rom filtering. Rendering at a multiple of the target size and
// resizing down smooths the grid overlay.
func (p *Pixmap) Resize(width, height int) *Pixmap {
	return FromImage(imageio.Resample(p, width, height))
}

// Encode writes the pixmap to w in the given format.
func (p *Pixmap) Encode(w io.Writer, f Format) error {
	return imageio.Encode(w, p, f)
}

// Save writes the pixmap to path. The format follows the file extension:
// .png, .jpg/.jpeg, .ppm/.pnm, .bmp or .tif/.tiff.
func (p *Pixmap) Save(path string) error {
	if err := imageio.Save(path, p); err != nil {
		return fmt.Errorf("perlin: save: %w", err)
	}
	Logger().Info("perlin: image saved", "path", path, "width", p.width, "height", p.height)
	return nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
