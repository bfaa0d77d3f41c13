package section

import (
	"errors"

	"github.com/alexiusacademia/gosect/internal/shape"
)

var (
	// ErrSectionFrozen is returned when a part is added after the section
	// has been finalized by a property query.
	ErrSectionFrozen = errors.New("section is finalized; no parts may be added")

	// ErrNeutralAxisSearch is returned when the plastic neutral axis search
	// does not converge within the iteration cap.
	ErrNeutralAxisSearch = errors.New("plastic neutral axis search failed")

	// ErrShapeFactor flags a shape factor that is not greater than one.
	ErrShapeFactor = errors.New("shape factor must exceed 1.0")

	// ErrEmptySection is returned for queries that need at least one part.
	ErrEmptySection = errors.New("section has no parts")
)

const (
	// Bisection stops once the bracket is narrower than this fraction of the
	// section depth.
	pnaLengthTol = 1e-9

	// Area balance is accepted at a part boundary within this fraction of
	// the total area.
	pnaAreaTol = 1e-9

	pnaMaxIter = 100
)

// Part is a shape placed with its centroid at At in the section frame.
// The section frame has y pointing upward and x to the right.
type Part struct {
	Shape shape.Shape
	At    shape.Point
}

// Section is a composite cross-section assembled from primitive shapes.
//
// A Section starts out assembling. The first property query finalizes it:
// centroid and second moments are computed and cached, and further calls to
// Add fail with ErrSectionFrozen. A Section is not safe for concurrent use.
type Section struct {
	Name string

	parts  []Part
	frozen bool

	area     float64
	centroid shape.Point
	inertia  [2]float64
	plastic  [2]*plasticAxis
}

// plasticAxis caches the neutral axis solution for one bending axis
type plasticAxis struct {
	pna     float64
	modulus float64
	err     error
}

// New creates an empty section in the assembling state.
func New(name string) *Section {
	return &Section{Name: name}
}

// Add registers a shape with its centroid at the given point.
func (s *Section) Add(sh shape.Shape, at shape.Point) error {
	if s.frozen {
		return ErrSectionFrozen
	}
	s.parts = append(s.parts, Part{Shape: sh, At: at})
	return nil
}

// MustAdd is Add for callers that know the section is still assembling.
func (s *Section) MustAdd(sh shape.Shape, at shape.Point) {
	if err := s.Add(sh, at); err != nil {
		panic(err)
	}
}

// Frozen reports whether the section has been finalized.
func (s *Section) Frozen() bool {
	return s.frozen
}

// Parts returns a copy of the registered parts.
func (s *Section) Parts() []Part {
	out := make([]Part, len(s.parts))
	copy(out, s.parts)
	return out
}
