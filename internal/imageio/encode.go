package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: DefaultJPEGQuality})
	case FormatPPM:
		err = EncodePPM(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %v: %w", f, err)
	}
	return nil
}

// Save writes img to path, choosing the format from the file extension.
func Save(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(file, img, f); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

// EncodePPM writes img as an ASCII P3 portable pixmap with maxval 255.
// Alpha is dropped; each row of samples ends with a newline.
func EncodePPM(w io.Writer, img image.Image) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return err
	}

	buf := make([]byte, 0, 16)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			buf = buf[:0]
			buf = strconv.AppendUint(buf, uint64(r>>8), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendUint(buf, uint64(g>>8), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendUint(buf, uint64(bl>>8), 10)
			if x+1 < b.Max.X {
				buf = append(buf, ' ')
			}
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Resample scales src to width x height with Catmull-Rom filtering.
func Resample(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
