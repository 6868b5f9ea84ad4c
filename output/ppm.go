package output

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gocamera/picamraw-go/picamraw"
)

// WriteRGBPPM writes a half-resolution RGB image as ASCII PPM (P3)
// with the native 10-bit maxval, for comparison against reference
// implementations. Green means are rounded to the nearest integer.
func WriteRGBPPM(img *picamraw.RGBImage, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "P3\n%d %d\n%d\n", img.Width, img.Height, sampleMax)

	for i := 0; i < len(img.Pix); i += 3 {
		r := uint16(img.Pix[i] + 0.5)
		g := uint16(img.Pix[i+1] + 0.5)
		b := uint16(img.Pix[i+2] + 0.5)
		fmt.Fprintf(w, "%d %d %d\n", r, g, b)
	}

	return w.Flush()
}
