package picamraw

import "fmt"

// Default padding multiples: the camera's native block size for most
// operations.
const (
	DefaultPadWidth  = 32
	DefaultPadHeight = 16
)

// Resolution is a width and height in pixels.
type Resolution struct {
	Width  int
	Height int
}

// Pad returns the resolution rounded up to the nearest multiple of the
// camera's native block size (32 wide, 16 tall).
func (r Resolution) Pad() Resolution {
	return r.PadTo(DefaultPadWidth, DefaultPadHeight)
}

// PadTo returns the resolution rounded up to the nearest multiple of
// padWidth and padHeight.
func (r Resolution) PadTo(padWidth, padHeight int) Resolution {
	return Resolution{
		Width:  ((r.Width + (padWidth - 1)) / padWidth) * padWidth,
		Height: ((r.Height + (padHeight - 1)) / padHeight) * padHeight,
	}
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}
