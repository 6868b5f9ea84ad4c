// Package output writes decoded raw data to files. Image writers
// rescale the 10-bit sample range to the full 16-bit range so the
// output is viewable without tooling; the dump writer keeps samples
// bit-exact.
package output

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/tiff"

	"github.com/gocamera/picamraw-go/picamraw"
)

// sampleMax is the largest 10-bit sample value.
const sampleMax = 1023

func scale16(v float64) uint16 {
	s := v * 65535.0 / sampleMax
	if s < 0 {
		return 0
	}
	if s > 65535 {
		return 65535
	}
	return uint16(s + 0.5)
}

// WriteGridTIFF writes the bayer grid as a 16-bit grayscale TIFF.
func WriteGridTIFF(grid *picamraw.BayerGrid, path string) error {
	img := image.NewGray16(image.Rect(0, 0, grid.Width, grid.Height))
	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			img.SetGray16(col, row, color.Gray16{Y: scale16(float64(grid.At(row, col)))})
		}
	}
	return writeTIFF(img, path)
}

// WriteChannelsTIFF writes a sparse 3-channel expansion as a 16-bit
// RGB TIFF. Unpopulated channels stay black, which makes the bayer
// mosaic directly visible.
func WriteChannelsTIFF(img *picamraw.ChannelImage, path string) error {
	out := image.NewRGBA64(image.Rect(0, 0, img.Width, img.Height))
	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			out.SetRGBA64(col, row, color.RGBA64{
				R: scale16(float64(img.At(row, col, 0))),
				G: scale16(float64(img.At(row, col, 1))),
				B: scale16(float64(img.At(row, col, 2))),
				A: 0xffff,
			})
		}
	}
	return writeTIFF(out, path)
}

// WriteRGBTIFF writes a half-resolution RGB image as a 16-bit TIFF.
func WriteRGBTIFF(img *picamraw.RGBImage, path string) error {
	out := image.NewRGBA64(image.Rect(0, 0, img.Width, img.Height))
	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			out.SetRGBA64(col, row, color.RGBA64{
				R: scale16(img.At(row, col, 0)),
				G: scale16(img.At(row, col, 1)),
				B: scale16(img.At(row, col, 2)),
				A: 0xffff,
			})
		}
	}
	return writeTIFF(out, path)
}

func writeTIFF(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	opts := &tiff.Options{Compression: tiff.Deflate}
	if err := tiff.Encode(f, img, opts); err != nil {
		return fmt.Errorf("failed to encode TIFF: %w", err)
	}
	return nil
}
