package canvas

import "errors"

// ErrInvalidBox is returned when a bounding box does not carry exactly
// four coordinates or was never tagged with a unit.
var ErrInvalidBox = errors.New("bounding box requires 4 values")

// BoxKind tags how a Box's coordinates are interpreted.
type BoxKind int

const (
	boxInvalid BoxKind = iota
	// Pixels means the coordinates are absolute pixel positions.
	Pixels
	// Fraction means the coordinates are fractions of the current
	// canvas width/height.
	Fraction
)

// Box is a left/top/right/bottom region on a canvas. The caller decides
// up front whether it is pixel- or fraction-based; the interpretation is
// never inferred from the coordinate values themselves.
type Box struct {
	Kind   BoxKind `json:"kind"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Px builds a pixel-coordinate box.
func Px(left, top, right, bottom int) Box {
	return Box{
		Kind:   Pixels,
		Left:   float64(left),
		Top:    float64(top),
		Right:  float64(right),
		Bottom: float64(bottom),
	}
}

// Frac builds a box of fractions of the canvas dimensions. Values are
// usually in [0,1] but may exceed that range to place content outside
// the current bounds.
func Frac(left, top, right, bottom float64) Box {
	return Box{Kind: Fraction, Left: left, Top: top, Right: right, Bottom: bottom}
}

// BoxFrom builds a Box from a coordinate slice, as received on the wire.
// The slice must hold exactly left, top, right, bottom.
func BoxFrom(kind BoxKind, coords []float64) (Box, error) {
	if len(coords) != 4 {
		return Box{}, ErrInvalidBox
	}
	if kind != Pixels && kind != Fraction {
		return Box{}, ErrInvalidBox
	}
	return Box{Kind: kind, Left: coords[0], Top: coords[1], Right: coords[2], Bottom: coords[3]}, nil
}

// resolve converts the box to absolute pixel coordinates against the
// given canvas dimensions. Fractions are multiplied and truncated toward
// zero.
func (b Box) resolve(width, height int) (left, top, right, bottom int, err error) {
	switch b.Kind {
	case Pixels:
		return int(b.Left), int(b.Top), int(b.Right), int(b.Bottom), nil
	case Fraction:
		w := float64(width)
		h := float64(height)
		return int(b.Left * w), int(b.Top * h), int(b.Right * w), int(b.Bottom * h), nil
	default:
		return 0, 0, 0, 0, ErrInvalidBox
	}
}
