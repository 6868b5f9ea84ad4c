// Command picamraw extracts the raw Bayer block from Raspberry Pi
// camera JPEG+RAW captures and writes it as TIFF, PPM or a compressed
// raw grid dump.
package main

import (
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/gocamera/picamraw-go/output"
	"github.com/gocamera/picamraw-go/picamraw"
)

var cli struct {
	Extract ExtractCmd `cmd:"" help:"Decode a JPEG+RAW file and write the raw data"`
	Meta    MetaCmd    `cmd:"" help:"Print raw block metadata without writing output"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// decodeFlags are shared by every command that runs the decode
// pipeline.
type decodeFlags struct {
	Camera string `help:"Camera version: v1 (OV5647) or v2 (IMX219)" enum:"v1,v2" default:"v1"`
	Mode   int    `help:"Sensor mode used for the capture (0-7)" default:"0"`
}

func (f decodeFlags) cameraVersion() picamraw.CameraVersion {
	if f.Camera == "v2" {
		return picamraw.CameraV2
	}
	return picamraw.CameraV1
}

// ExtractCmd decodes a capture and writes it in the format implied by
// the output extension.
type ExtractCmd struct {
	decodeFlags
	Output   string `short:"o" required:"" help:"Output path (.tiff, .ppm or .zst)"`
	RGB      bool   `help:"Collapse 2x2 tiles into half-resolution RGB (TIFF output)"`
	Channels bool   `help:"Expand into a sparse 3-channel image (TIFF output)"`
	Input    string `arg:"" type:"existingfile" help:"JPEG+RAW input file"`
}

func (c *ExtractCmd) Run() error {
	logger := picamraw.NewLogger()

	logger.Step("decode", filepath.Base(c.Input))
	raw, err := picamraw.DecodeFile(c.Input, c.cameraVersion(), c.Mode)
	if err != nil {
		return err
	}
	logger.Done(fmt.Sprintf("%dx%d %s", raw.Grid.Width, raw.Grid.Height, raw.Order))

	logger.Step("write", c.Output)
	switch ext := strings.ToLower(filepath.Ext(c.Output)); ext {
	case ".zst":
		err = output.WriteDump(raw.Grid, raw.Order, c.Output)
	case ".ppm":
		var rgb *picamraw.RGBImage
		if rgb, err = raw.ToRGB(); err == nil {
			err = output.WriteRGBPPM(rgb, c.Output)
		}
	case ".tif", ".tiff":
		switch {
		case c.RGB:
			var rgb *picamraw.RGBImage
			if rgb, err = raw.ToRGB(); err == nil {
				err = output.WriteRGBTIFF(rgb, c.Output)
			}
		case c.Channels:
			err = output.WriteChannelsTIFF(raw.ToChannels(), c.Output)
		default:
			err = output.WriteGridTIFF(raw.Grid, c.Output)
		}
	default:
		return fmt.Errorf("unsupported output format %q (use .tiff, .ppm or .zst)", ext)
	}
	if err != nil {
		return err
	}
	logger.Done("ok")
	return nil
}

// MetaCmd prints the raw block's geometry and identity without writing
// any image output.
type MetaCmd struct {
	decodeFlags
	Input string `arg:"" type:"existingfile" help:"JPEG+RAW input file"`
}

func (c *MetaCmd) Run() error {
	raw, err := picamraw.DecodeFile(c.Input, c.cameraVersion(), c.Mode)
	if err != nil {
		return err
	}

	blockSize, err := picamraw.RawBlockSize(c.cameraVersion(), c.Mode)
	if err != nil {
		return err
	}

	digest := output.GridDigest(raw.Grid)

	fmt.Printf("sensor:       %s\n", raw.Header.SensorName())
	fmt.Printf("resolution:   %dx%d\n", raw.Grid.Width, raw.Grid.Height)
	fmt.Printf("padding:      right=%d down=%d\n", raw.Header.PaddingRight, raw.Header.PaddingDown)
	fmt.Printf("bayer order:  %s\n", raw.Order)
	fmt.Printf("block size:   %d bytes\n", blockSize)
	fmt.Printf("grid digest:  blake3:%s\n", hex.EncodeToString(digest[:]))
	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("picamraw %s\n", picamraw.Version)
	return nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("picamraw"),
		kong.Description("Raw Bayer data extractor for Raspberry Pi camera JPEG+RAW files"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
