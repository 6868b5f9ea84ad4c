package picamraw

import (
	"errors"
	"testing"
)

// buildHeaderBlock returns a minimal block holding a raw header with
// the given geometry at HeaderOffset.
func buildHeaderBlock(width, height, padRight, padDown uint16, bayerCode byte) []byte {
	block := make([]byte, HeaderOffset+rawHeaderSize)
	buf := block[HeaderOffset:]

	copy(buf[0:32], "IMX219")
	le.PutUint16(buf[32:34], width)
	le.PutUint16(buf[34:36], height)
	le.PutUint16(buf[36:38], padRight)
	le.PutUint16(buf[38:40], padDown)
	// 24 reserved bytes, then transform and format
	le.PutUint16(buf[64:66], 3)
	le.PutUint16(buf[66:68], 1)
	buf[68] = bayerCode
	buf[69] = 0

	return block
}

func TestParseRawHeader(t *testing.T) {
	block := buildHeaderBlock(3280, 2464, 0, 16, 2)

	h, err := ParseRawHeader(block)
	if err != nil {
		t.Fatalf("ParseRawHeader: %v", err)
	}

	if got := h.SensorName(); got != "IMX219" {
		t.Errorf("SensorName() = %q, want %q", got, "IMX219")
	}
	if h.Width != 3280 || h.Height != 2464 {
		t.Errorf("geometry = %dx%d, want 3280x2464", h.Width, h.Height)
	}
	if h.PaddingRight != 0 || h.PaddingDown != 16 {
		t.Errorf("padding = %d,%d, want 0,16", h.PaddingRight, h.PaddingDown)
	}
	if h.Transform != 3 || h.Format != 1 {
		t.Errorf("transform/format = %d/%d, want 3/1", h.Transform, h.Format)
	}
	if h.BayerOrder != BGGR {
		t.Errorf("BayerOrder = %s, want BGGR", h.BayerOrder)
	}
}

func TestParseRawHeaderBayerCodes(t *testing.T) {
	want := []BayerOrder{RGGB, GBRG, BGGR, GRBG}
	for code, order := range want {
		h, err := ParseRawHeader(buildHeaderBlock(64, 64, 0, 0, byte(code)))
		if err != nil {
			t.Fatalf("code %d: %v", code, err)
		}
		if h.BayerOrder != order {
			t.Errorf("code %d: BayerOrder = %s, want %s", code, h.BayerOrder, order)
		}
	}
}

func TestParseRawHeaderUnrecognizedBayerCode(t *testing.T) {
	_, err := ParseRawHeader(buildHeaderBlock(64, 64, 0, 0, 4))
	if !errors.Is(err, ErrHeaderDecode) {
		t.Fatalf("error = %v, want ErrHeaderDecode", err)
	}
	var decodeErr *HeaderDecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("error is not *HeaderDecodeError: %v", err)
	}
	if decodeErr.Field != "bayer_order" || decodeErr.Value != 4 {
		t.Errorf("got %s=%d, want bayer_order=4", decodeErr.Field, decodeErr.Value)
	}
}

func TestParseRawHeaderBlockTooShort(t *testing.T) {
	_, err := ParseRawHeader(make([]byte, HeaderOffset))
	if !errors.Is(err, ErrContainerFormat) {
		t.Fatalf("error = %v, want ErrContainerFormat", err)
	}
}
