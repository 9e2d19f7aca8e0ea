// Package imageio encodes rendered noise textures to image files.
//
// PNG and JPEG use the standard library encoders, BMP and TIFF use
// golang.org/x/image, and plain PPM (P3) is written directly.
package imageio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned when the image format is not supported.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// Format identifies an output encoding.
type Format uint8

const (
	// FormatPNG is lossless PNG.
	FormatPNG Format = iota

	// FormatJPEG is baseline JPEG at DefaultJPEGQuality.
	FormatJPEG

	// FormatPPM is ASCII portable pixmap (P3), 8 bits per channel.
	FormatPPM

	// FormatBMP is uncompressed Windows bitmap.
	FormatBMP

	// FormatTIFF is deflate-compressed TIFF.
	FormatTIFF
)

// DefaultJPEGQuality is used when encoding FormatJPEG.
const DefaultJPEGQuality = 92

var formatNames = [...]string{
	FormatPNG:  "png",
	FormatJPEG: "jpeg",
	FormatPPM:  "ppm",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
}

// String returns the lowercase name of the format.
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// FormatFromPath picks a format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".ppm", ".pnm":
		return FormatPPM, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
