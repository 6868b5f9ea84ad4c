package picamraw

import (
	"bytes"
	"encoding/binary"
)

var le = binary.LittleEndian

// RawHeader is the fixed-layout metadata record stored at HeaderOffset
// within the raw block. Later offsets in the block are absolute
// constants, so the layout is read field by field; nothing depends on
// native struct alignment.
//
// Layout (little-endian, 70 bytes):
//
//	name          [32]byte
//	width         uint16
//	height        uint16
//	padding_right uint16
//	padding_down  uint16
//	dummy         [6]uint32
//	transform     uint16
//	format        uint16
//	bayer_order   uint8
//	bayer_format  uint8
type RawHeader struct {
	Name         [32]byte
	Width        uint16
	Height       uint16
	PaddingRight uint16
	PaddingDown  uint16
	Transform    uint16
	Format       uint16
	BayerOrder   BayerOrder
	BayerFormat  uint8
}

const rawHeaderSize = 32 + 2 + 2 + 2 + 2 + 6*4 + 2 + 2 + 1 + 1

// SensorName returns the NUL-trimmed sensor name from the header.
func (h *RawHeader) SensorName() string {
	name := h.Name[:]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return string(name)
}

// ParseRawHeader decodes the raw header of a located block.
func ParseRawHeader(block []byte) (*RawHeader, error) {
	if len(block) < HeaderOffset+rawHeaderSize {
		return nil, &ContainerFormatError{Reason: "raw block too short for header"}
	}
	buf := block[HeaderOffset : HeaderOffset+rawHeaderSize]

	h := &RawHeader{}
	offset := 0

	copy(h.Name[:], buf[offset:offset+32])
	offset += 32

	h.Width = le.Uint16(buf[offset : offset+2])
	offset += 2
	h.Height = le.Uint16(buf[offset : offset+2])
	offset += 2
	h.PaddingRight = le.Uint16(buf[offset : offset+2])
	offset += 2
	h.PaddingDown = le.Uint16(buf[offset : offset+2])
	offset += 2

	// six reserved uint32 words
	offset += 6 * 4

	h.Transform = le.Uint16(buf[offset : offset+2])
	offset += 2
	h.Format = le.Uint16(buf[offset : offset+2])
	offset += 2

	code := buf[offset]
	offset++
	if int(code) >= len(bayerOrderByCode) {
		return nil, &HeaderDecodeError{Field: "bayer_order", Value: int(code)}
	}
	h.BayerOrder = bayerOrderByCode[code]

	h.BayerFormat = buf[offset]

	return h, nil
}
