package picamraw

// BayerGrid is a decoded 2D grid of 10-bit sensor samples held in
// 16-bit containers. Pix is row-major, exactly Width*Height samples,
// each in [0, 1023].
type BayerGrid struct {
	Pix    []uint16
	Width  int
	Height int
}

// At returns the sample at the given row and column.
func (g *BayerGrid) At(row, col int) uint16 {
	return g.Pix[row*g.Width+col]
}

// UnpackPixelData expands the packed 10-bit pixel region of a raw
// block into a BayerGrid, using the geometry declared by the header.
//
// The stored rows are wider and taller than the active image: the
// firmware first adds padding_right/padding_down, scales the row width
// by 5/4 for the 10-bit packing, then rounds the byte stride up to the
// 32x16 block alignment. The active region is cropped in byte space
// before unpacking, because the right padding need not form whole
// 5-byte groups. The stride formula and the crop formula round
// differently on purpose; they reproduce the firmware's arithmetic and
// must not be unified.
func UnpackPixelData(pixelBytes []byte, header *RawHeader) (*BayerGrid, error) {
	width := int(header.Width)
	height := int(header.Height)

	crop := Resolution{
		Width:  width * 5 / 4,
		Height: height,
	}
	shape := Resolution{
		Width:  ((width+int(header.PaddingRight))*5 + 3) / 4,
		Height: height + int(header.PaddingDown),
	}.Pad()

	if len(pixelBytes) != shape.Width*shape.Height {
		return nil, &GeometryError{
			Dimension: "pixel data bytes",
			Value:     len(pixelBytes),
			Want:      shape.Width * shape.Height,
		}
	}
	if crop.Width%5 != 0 {
		return nil, &GeometryError{Dimension: "width", Value: crop.Width, Multiple: 5}
	}

	grid := &BayerGrid{
		Pix:    make([]uint16, width*height),
		Width:  width,
		Height: height,
	}
	for row := 0; row < height; row++ {
		src := pixelBytes[row*shape.Width : row*shape.Width+crop.Width]
		dst := grid.Pix[row*width : (row+1)*width]
		unpackRow(src, dst)
	}
	return grid, nil
}

// unpackRow expands each group of 5 packed bytes into 4 ten-bit
// samples. The first four bytes hold the high 8 bits of each sample;
// the fifth byte holds the low 2 bits of all four, most significant
// pair first. len(src) must be a multiple of 5 and len(dst) must be
// len(src)*4/5.
func unpackRow(src []byte, dst []uint16) {
	for g := 0; g*5 < len(src); g++ {
		b := src[g*5 : g*5+5 : g*5+5]
		low := b[4]
		dst[g*4+0] = uint16(b[0])<<2 | uint16(low>>6)&3
		dst[g*4+1] = uint16(b[1])<<2 | uint16(low>>4)&3
		dst[g*4+2] = uint16(b[2])<<2 | uint16(low>>2)&3
		dst[g*4+3] = uint16(b[3])<<2 | uint16(low)&3
	}
}
