package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gocamera/picamraw-go/picamraw"
)

func TestWriteRGBPPM(t *testing.T) {
	rgb := &picamraw.RGBImage{
		Pix: []float64{
			1, 2.5, 5,
			1023, 0, 512,
		},
		Width:  2,
		Height: 1,
	}
	path := filepath.Join(t.TempDir(), "out.ppm")

	if err := WriteRGBPPM(rgb, path); err != nil {
		t.Fatalf("WriteRGBPPM: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := "P3\n2 1\n1023\n1 3 5\n1023 0 512\n"
	if string(data) != want {
		t.Errorf("ppm output = %q, want %q", string(data), want)
	}
}
