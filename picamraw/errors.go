package picamraw

import (
	"errors"
	"fmt"
)

// Sentinel errors for the decode failure classes. Every typed error
// below unwraps to one of these, so callers can classify failures with
// errors.Is without matching on concrete types.
var (
	// ErrContainerFormat indicates the buffer does not hold a valid raw block
	ErrContainerFormat = errors.New("malformed container")
	// ErrUnsupportedMode indicates a (camera version, sensor mode) pair with no block size entry
	ErrUnsupportedMode = errors.New("unsupported sensor mode")
	// ErrHeaderDecode indicates an unrecognized value in the raw header
	ErrHeaderDecode = errors.New("header decode failed")
	// ErrGeometry indicates a mismatch between declared geometry and the actual byte layout
	ErrGeometry = errors.New("geometry mismatch")
)

// ContainerFormatError reports a buffer that does not contain a valid
// raw block where one was expected.
type ContainerFormatError struct {
	Reason string
}

func (e *ContainerFormatError) Error() string {
	return fmt.Sprintf("malformed container: %s", e.Reason)
}

func (e *ContainerFormatError) Unwrap() error { return ErrContainerFormat }

// UnsupportedModeError reports a camera version and sensor mode pair
// that has no entry in the raw block size table.
type UnsupportedModeError struct {
	Version CameraVersion
	Mode    int
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("no raw block size for camera %s sensor mode %d", e.Version, e.Mode)
}

func (e *UnsupportedModeError) Unwrap() error { return ErrUnsupportedMode }

// HeaderDecodeError reports an unrecognized field value in the raw
// header.
type HeaderDecodeError struct {
	Field string
	Value int
}

func (e *HeaderDecodeError) Error() string {
	return fmt.Sprintf("cannot decode raw header: %s has unrecognized value %d", e.Field, e.Value)
}

func (e *HeaderDecodeError) Unwrap() error { return ErrHeaderDecode }

// GeometryError reports data whose shape contradicts the geometry
// declared by the raw header. When Multiple is non-zero the named
// dimension failed a multiplicity check; otherwise Want holds the
// expected exact value.
type GeometryError struct {
	Dimension string
	Value     int
	Multiple  int
	Want      int
}

func (e *GeometryError) Error() string {
	if e.Multiple != 0 {
		return fmt.Sprintf("incoming data is the wrong shape: %s (%d) is not a multiple of %d",
			e.Dimension, e.Value, e.Multiple)
	}
	return fmt.Sprintf("incoming data is the wrong shape: %s is %d, want %d",
		e.Dimension, e.Value, e.Want)
}

func (e *GeometryError) Unwrap() error { return ErrGeometry }
