// Package picamraw decodes the raw Bayer block that Raspberry Pi
// camera firmware appends to JPEG+RAW captures. The pipeline locates
// the block at the tail of the file, parses its fixed-layout header,
// unpacks the packed 10-bit sample stream into a 16-bit grid, and maps
// the sensor's color filter array onto derived images.
package picamraw

import (
	"fmt"
	"os"
)

// RawBayer holds the decoded raw data of one JPEG+RAW capture. All
// fields are read-only products of one Decode call; none alias the
// input buffer, so a RawBayer and its derived images may be shared
// across goroutines freely.
type RawBayer struct {
	Grid   *BayerGrid
	Order  BayerOrder
	Header *RawHeader
}

// Decode extracts and unpacks the raw Bayer block from the full
// contents of a JPEG+RAW file. The camera version and sensor mode must
// match the capture; they size the tail read that locates the block.
func Decode(data []byte, version CameraVersion, mode int) (*RawBayer, error) {
	block, err := LocateRawBlock(data, version, mode)
	if err != nil {
		return nil, err
	}

	header, err := ParseRawHeader(block)
	if err != nil {
		return nil, err
	}
	debugf("raw header: sensor=%s %dx%d pad=%d,%d order=%s",
		header.SensorName(), header.Width, header.Height,
		header.PaddingRight, header.PaddingDown, header.BayerOrder)

	if len(block) < PixelDataOffset {
		return nil, &ContainerFormatError{Reason: "raw block too short for pixel data"}
	}
	grid, err := UnpackPixelData(block[PixelDataOffset:], header)
	if err != nil {
		return nil, err
	}

	return &RawBayer{
		Grid:   grid,
		Order:  header.BayerOrder,
		Header: header,
	}, nil
}

// DecodeFile reads a JPEG+RAW file and decodes its raw Bayer block.
func DecodeFile(path string, version CameraVersion, mode int) (*RawBayer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Decode(data, version, mode)
}

// ToChannels expands the grid into a sparse 3-channel image using the
// capture's bayer order.
func (r *RawBayer) ToChannels() *ChannelImage {
	return r.Grid.ToChannels(r.Order)
}

// ToRGB collapses the grid into a half-resolution RGB image using the
// capture's bayer order.
func (r *RawBayer) ToRGB() (*RGBImage, error) {
	return r.Grid.ToRGB(r.Order)
}
