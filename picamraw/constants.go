package picamraw

// Version of the picamraw-go library
const Version = "0.1.0"

// CameraVersion identifies the sensor that produced a JPEG+RAW file.
type CameraVersion int

const (
	// CameraV1 is the OV5647 sensor (original camera module)
	CameraV1 CameraVersion = iota + 1
	// CameraV2 is the IMX219 sensor (camera module v2)
	CameraV2
)

// SensorName returns the sensor chip name embedded in the raw header.
func (v CameraVersion) SensorName() string {
	switch v {
	case CameraV1:
		return "OV5647"
	case CameraV2:
		return "IMX219"
	}
	return "unknown"
}

func (v CameraVersion) String() string {
	switch v {
	case CameraV1:
		return "v1"
	case CameraV2:
		return "v2"
	}
	return "unknown"
}

// Raw block layout constants
const (
	// blockMarker is the ASCII magic at the start of the raw block
	blockMarker = "BRCM"

	// HeaderOffset is the byte offset of the raw header within the block
	HeaderOffset = 176

	// PixelDataOffset is the byte offset of the packed pixel data within
	// the block: the smallest block-aligned offset past the header and
	// the sensor register dump.
	PixelDataOffset = 32768
)

// rawBlockSizes gives the total size in bytes of the raw block appended
// to a JPEG+RAW file, per camera version and sensor mode (0-7). These
// are firmware constants with no derivable formula; transcribe, do not
// compute.
var rawBlockSizes = map[CameraVersion][8]int{
	CameraV1: {
		0: 6404096,
		1: 2717696,
		2: 6404096,
		3: 6404096,
		4: 1625600,
		5: 1233920,
		6: 445440,
		7: 445440,
	},
	CameraV2: {
		0: 10270208,
		1: 2678784,
		2: 10270208,
		3: 10270208,
		4: 2628608,
		5: 1963008,
		6: 1233920,
		7: 445440,
	},
}

// BayerOrder is the arrangement of the R, G, G and B photosites within
// each 2x2 tile of the sensor.
//
//	RGGB:      GBRG:      BGGR:      GRBG:
//	  RG         GB         BG         GR
//	  GB         RG         GR         BG
type BayerOrder uint8

const (
	RGGB BayerOrder = iota
	GBRG
	BGGR
	GRBG
)

func (o BayerOrder) String() string {
	switch o {
	case RGGB:
		return "RGGB"
	case GBRG:
		return "GBRG"
	case BGGR:
		return "BGGR"
	case GRBG:
		return "GRBG"
	}
	return "unknown"
}

// bayerOrderByCode maps the single-byte order code stored in the raw
// header to a BayerOrder.
var bayerOrderByCode = [4]BayerOrder{
	0: RGGB,
	1: GBRG,
	2: BGGR,
	3: GRBG,
}

// cfaOffsets gives the (row, col) position of each color within a 2x2
// tile for one BayerOrder. The two green photosites are kept separate;
// they occupy disjoint positions.
type cfaOffsets struct {
	R  [2]int
	G1 [2]int
	G2 [2]int
	B  [2]int
}

var cfaOffsetsByOrder = map[BayerOrder]cfaOffsets{
	RGGB: {R: [2]int{0, 0}, G1: [2]int{1, 0}, G2: [2]int{0, 1}, B: [2]int{1, 1}},
	GBRG: {R: [2]int{1, 0}, G1: [2]int{0, 0}, G2: [2]int{1, 1}, B: [2]int{0, 1}},
	BGGR: {R: [2]int{1, 1}, G1: [2]int{0, 1}, G2: [2]int{1, 0}, B: [2]int{0, 0}},
	GRBG: {R: [2]int{0, 1}, G1: [2]int{1, 1}, G2: [2]int{0, 0}, B: [2]int{1, 0}},
}
