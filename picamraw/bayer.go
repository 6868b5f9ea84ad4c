package picamraw

// ChannelImage is a sparse 3-channel expansion of a BayerGrid. Each
// pixel keeps its grid position with its sample moved into the R, G or
// B channel; the other two channels stay zero. Pix is row-major RGB
// interleaved, len Width*Height*3.
type ChannelImage struct {
	Pix    []uint16
	Width  int
	Height int
}

// At returns the value of channel ch (0=R, 1=G, 2=B) at row, col.
func (img *ChannelImage) At(row, col, ch int) uint16 {
	return img.Pix[(row*img.Width+col)*3+ch]
}

// RGBImage is a dense half-resolution collapse of a BayerGrid: every
// 2x2 tile becomes one [R, (G1+G2)/2, B] pixel. The green mean is
// fractional, so samples are float64. Pix is row-major RGB interleaved,
// len Width*Height*3.
type RGBImage struct {
	Pix    []float64
	Width  int
	Height int
}

// At returns the value of channel ch (0=R, 1=G, 2=B) at row, col.
func (img *RGBImage) At(row, col, ch int) float64 {
	return img.Pix[(row*img.Width+col)*3+ch]
}

// ToChannels expands the grid into a ChannelImage of the same
// dimensions. A given color occupies every other column of every other
// row, seeded by that color's position within the first 2x2 tile. The
// two green positions both write channel 1; they never collide.
func (g *BayerGrid) ToChannels(order BayerOrder) *ChannelImage {
	img := &ChannelImage{
		Pix:    make([]uint16, g.Width*g.Height*3),
		Width:  g.Width,
		Height: g.Height,
	}

	off := cfaOffsetsByOrder[order]
	copyChannel := func(pos [2]int, ch int) {
		for row := pos[0]; row < g.Height; row += 2 {
			for col := pos[1]; col < g.Width; col += 2 {
				img.Pix[(row*g.Width+col)*3+ch] = g.At(row, col)
			}
		}
	}
	copyChannel(off.R, 0)
	copyChannel(off.G1, 1)
	copyChannel(off.G2, 1)
	copyChannel(off.B, 2)

	return img
}

// ToRGB collapses every 2x2 tile of the grid into a single RGB pixel,
// averaging the two green samples. Both grid dimensions must be even.
func (g *BayerGrid) ToRGB(order BayerOrder) (*RGBImage, error) {
	if g.Width%2 != 0 {
		return nil, &GeometryError{Dimension: "width", Value: g.Width, Multiple: 2}
	}
	if g.Height%2 != 0 {
		return nil, &GeometryError{Dimension: "height", Value: g.Height, Multiple: 2}
	}

	halfW := g.Width / 2
	halfH := g.Height / 2
	img := &RGBImage{
		Pix:    make([]float64, halfW*halfH*3),
		Width:  halfW,
		Height: halfH,
	}

	off := cfaOffsetsByOrder[order]
	for ty := 0; ty < halfH; ty++ {
		for tx := 0; tx < halfW; tx++ {
			r := g.At(ty*2+off.R[0], tx*2+off.R[1])
			g1 := g.At(ty*2+off.G1[0], tx*2+off.G1[1])
			g2 := g.At(ty*2+off.G2[0], tx*2+off.G2[1])
			b := g.At(ty*2+off.B[0], tx*2+off.B[1])

			i := (ty*halfW + tx) * 3
			img.Pix[i+0] = float64(r)
			img.Pix[i+1] = (float64(g1) + float64(g2)) / 2
			img.Pix[i+2] = float64(b)
		}
	}
	return img, nil
}
