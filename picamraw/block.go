package picamraw

import "fmt"

// RawBlockSize returns the size in bytes of the raw block the firmware
// appends for the given camera version and sensor mode.
func RawBlockSize(version CameraVersion, mode int) (int, error) {
	sizes, ok := rawBlockSizes[version]
	if !ok || mode < 0 || mode >= len(sizes) {
		return 0, &UnsupportedModeError{Version: version, Mode: mode}
	}
	return sizes[mode], nil
}

// LocateRawBlock returns the trailing raw block of a full JPEG+RAW
// buffer. The block sits at the very end of the file and starts with
// the BRCM marker; bytes beyond the marker are opaque until parsed.
func LocateRawBlock(data []byte, version CameraVersion, mode int) ([]byte, error) {
	size, err := RawBlockSize(version, mode)
	if err != nil {
		return nil, err
	}
	if len(data) < size {
		return nil, &ContainerFormatError{
			Reason: fmt.Sprintf("buffer is %d bytes, raw block needs %d", len(data), size),
		}
	}
	block := data[len(data)-size:]
	if string(block[:len(blockMarker)]) != blockMarker {
		return nil, &ContainerFormatError{Reason: "no BRCM marker at start of raw block"}
	}
	return block, nil
}
