package output

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"

	"github.com/gocamera/picamraw-go/picamraw"
)

func decodeTIFF(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := tiff.Decode(f)
	if err != nil {
		t.Fatalf("tiff.Decode: %v", err)
	}
	return img
}

func TestWriteGridTIFF(t *testing.T) {
	grid := &picamraw.BayerGrid{
		Pix:    []uint16{0, 1023, 511, 256},
		Width:  2,
		Height: 2,
	}
	path := filepath.Join(t.TempDir(), "grid.tiff")

	if err := WriteGridTIFF(grid, path); err != nil {
		t.Fatalf("WriteGridTIFF: %v", err)
	}

	img := decodeTIFF(t, path)
	if got := img.Bounds(); got.Dx() != 2 || got.Dy() != 2 {
		t.Fatalf("bounds = %v, want 2x2", got)
	}

	// The full 10-bit value must map to the full 16-bit value.
	r, _, _, _ := img.At(1, 0).RGBA()
	if r != 65535 {
		t.Errorf("sample 1023 rendered as %d, want 65535", r)
	}
	r, _, _, _ = img.At(0, 0).RGBA()
	if r != 0 {
		t.Errorf("sample 0 rendered as %d, want 0", r)
	}
}

func TestWriteRGBTIFF(t *testing.T) {
	rgb := &picamraw.RGBImage{
		Pix:    []float64{1023, 511.5, 0},
		Width:  1,
		Height: 1,
	}
	path := filepath.Join(t.TempDir(), "rgb.tiff")

	if err := WriteRGBTIFF(rgb, path); err != nil {
		t.Fatalf("WriteRGBTIFF: %v", err)
	}

	img := decodeTIFF(t, path)
	r, g, b, _ := img.At(0, 0).RGBA()
	if r != 65535 {
		t.Errorf("red = %d, want 65535", r)
	}
	if b != 0 {
		t.Errorf("blue = %d, want 0", b)
	}
	if g < 32700 || g > 32850 {
		t.Errorf("green = %d, want roughly half scale", g)
	}
}

func TestWriteChannelsTIFF(t *testing.T) {
	channels := &picamraw.ChannelImage{
		Pix: []uint16{
			1023, 0, 0 /**/, 0, 1023, 0,
			0, 1023, 0 /**/, 0, 0, 1023,
		},
		Width:  2,
		Height: 2,
	}
	path := filepath.Join(t.TempDir(), "channels.tiff")

	if err := WriteChannelsTIFF(channels, path); err != nil {
		t.Fatalf("WriteChannelsTIFF: %v", err)
	}

	img := decodeTIFF(t, path)
	r, g, b, _ := img.At(0, 0).RGBA()
	if r != 65535 || g != 0 || b != 0 {
		t.Errorf("pixel (0,0) = %d,%d,%d, want pure red", r, g, b)
	}
	r, g, b, _ = img.At(1, 1).RGBA()
	if r != 0 || g != 0 || b != 65535 {
		t.Errorf("pixel (1,1) = %d,%d,%d, want pure blue", r, g, b)
	}
}
