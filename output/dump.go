package output

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/blake3"

	"github.com/gocamera/picamraw-go/picamraw"
)

// Raw grid dump format: a bit-exact, compressed container for decoded
// sample grids, so calibration pipelines can stash raw data without
// re-decoding the JPEG+RAW source.
//
//	magic    "PRAW"
//	version  uint8 (1)
//	order    uint8 bayer order code
//	width    uint32 LE
//	height   uint32 LE
//	digest   [32]byte blake3 of the uncompressed payload
//	payload  zstd stream of width*height little-endian uint16 samples
const (
	dumpMagic      = "PRAW"
	dumpVersion    = 1
	dumpHeaderSize = 4 + 1 + 1 + 4 + 4 + 32
)

// GridDigest returns the blake3 digest of the grid's little-endian
// sample payload.
func GridDigest(grid *picamraw.BayerGrid) [32]byte {
	return blake3.Sum256(gridPayload(grid))
}

func gridPayload(grid *picamraw.BayerGrid) []byte {
	payload := make([]byte, len(grid.Pix)*2)
	for i, s := range grid.Pix {
		binary.LittleEndian.PutUint16(payload[i*2:], s)
	}
	return payload
}

// WriteDump writes the grid and its bayer order as a compressed raw
// grid dump.
func WriteDump(grid *picamraw.BayerGrid, order picamraw.BayerOrder, path string) error {
	payload := gridPayload(grid)
	digest := blake3.Sum256(payload)

	var buf bytes.Buffer
	buf.WriteString(dumpMagic)
	buf.WriteByte(dumpVersion)
	buf.WriteByte(byte(order))

	var geo [8]byte
	binary.LittleEndian.PutUint32(geo[0:4], uint32(grid.Width))
	binary.LittleEndian.PutUint32(geo[4:8], uint32(grid.Height))
	buf.Write(geo[:])
	buf.Write(digest[:])

	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		return err
	}
	if _, err := enc.Write(payload); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// ReadDump loads a raw grid dump written by WriteDump, verifying its
// digest.
func ReadDump(path string) (*picamraw.BayerGrid, picamraw.BayerOrder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	return decodeDump(data)
}

func decodeDump(data []byte) (*picamraw.BayerGrid, picamraw.BayerOrder, error) {
	if len(data) < dumpHeaderSize || string(data[:4]) != dumpMagic {
		return nil, 0, fmt.Errorf("not a raw grid dump")
	}
	if data[4] != dumpVersion {
		return nil, 0, fmt.Errorf("unsupported dump version %d", data[4])
	}
	if data[5] > byte(picamraw.GRBG) {
		return nil, 0, fmt.Errorf("unrecognized bayer order code %d", data[5])
	}
	order := picamraw.BayerOrder(data[5])

	width := int(binary.LittleEndian.Uint32(data[6:10]))
	height := int(binary.LittleEndian.Uint32(data[10:14]))
	var digest [32]byte
	copy(digest[:], data[14:46])

	dec, err := zstd.NewReader(bytes.NewReader(data[dumpHeaderSize:]))
	if err != nil {
		return nil, 0, err
	}
	defer dec.Close()

	payload, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decompress dump payload: %w", err)
	}
	if len(payload) != width*height*2 {
		return nil, 0, fmt.Errorf("dump payload is %d bytes, want %d", len(payload), width*height*2)
	}
	if blake3.Sum256(payload) != digest {
		return nil, 0, fmt.Errorf("dump payload digest mismatch")
	}

	grid := &picamraw.BayerGrid{
		Pix:    make([]uint16, width*height),
		Width:  width,
		Height: height,
	}
	for i := range grid.Pix {
		grid.Pix[i] = binary.LittleEndian.Uint16(payload[i*2:])
	}
	return grid, order, nil
}
