package shape

import (
	"errors"
	"fmt"
)

// Axis selects the bending axis a property refers to.
//
// For AxisX the section bends about a horizontal axis, so cuts are horizontal
// lines y = const and "above" means larger y. For AxisY cuts are vertical
// lines x = const and "above" means larger x.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Kind identifies the primitive family of a shape
type Kind int

const (
	KindRectangle Kind = iota
	KindAnnulus
	KindChannel
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindAnnulus:
		return "annulus"
	case KindChannel:
		return "channel"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Point represents a 2D coordinate (mm)
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Along returns the coordinate of p measured across the given bending axis.
func (p Point) Along(axis Axis) float64 {
	if axis == AxisY {
		return p.X
	}
	return p.Y
}

// Shape is a geometric primitive described in a local frame whose origin is
// the shape's own centroid. Shapes are immutable once constructed.
type Shape interface {
	Kind() Kind
	Area() float64

	// SecondMoment is the second moment of area about the shape's own
	// centroidal axis parallel to axis.
	SecondMoment(axis Axis) float64

	// Extent is the span of the shape across the axis: y-range for AxisX,
	// x-range for AxisY.
	Extent(axis Axis) (lo, hi float64)

	// AreaAbove is the area lying strictly beyond cut.
	AreaAbove(axis Axis, cut float64) float64

	// MomentAbove is the first moment, about the cut line itself, of the area
	// lying beyond cut. It is never negative.
	MomentAbove(axis Axis, cut float64) float64

	// Breaks lists the ordinates where the area-above function changes form.
	Breaks(axis Axis) []float64

	Contains(p Point) bool

	// Outline returns closed loops tracing the boundary, for drawing.
	Outline() [][]Point
}

// ErrInvalidGeometry is returned for non-physical input dimensions.
var ErrInvalidGeometry = errors.New("invalid geometry")

// GeometryError reports which dimension made a shape invalid
type GeometryError struct {
	Shape string
	Field string
	Value float64
	Msg   string
}

func (e *GeometryError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("invalid geometry: %s %s=%g: %s", e.Shape, e.Field, e.Value, e.Msg)
	}
	return fmt.Sprintf("invalid geometry: %s %s=%g must be positive", e.Shape, e.Field, e.Value)
}

func (e *GeometryError) Unwrap() error {
	return ErrInvalidGeometry
}

func requirePositive(shape, field string, v float64) error {
	// NaN fails this comparison as well.
	if !(v > 0) {
		return &GeometryError{Shape: shape, Field: field, Value: v}
	}
	return nil
}
