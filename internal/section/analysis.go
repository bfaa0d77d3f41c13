package section

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosect/internal/shape"
)

// ExtremeFiber returns the larger distance from the centroidal axis to the
// outermost fiber on either side.
func (s *Section) ExtremeFiber(axis shape.Axis) (float64, error) {
	s.finalize()
	if len(s.parts) == 0 || s.area <= 0 {
		return 0, ErrEmptySection
	}
	lo, hi := s.Extent(axis)
	c := s.centroid.Along(axis)
	return math.Max(hi-c, c-lo), nil
}

// ElasticModulus returns I/c about axis using the governing (farther)
// extreme fiber, i.e. the smaller of the two elastic moduli (mm³).
func (s *Section) ElasticModulus(axis shape.Axis) (float64, error) {
	c, err := s.ExtremeFiber(axis)
	if err != nil {
		return 0, err
	}
	if c <= 0 {
		return 0, fmt.Errorf("%w: zero depth about %s", shape.ErrInvalidGeometry, axis)
	}
	return s.inertia[axis] / c, nil
}

// PlasticNeutralAxis returns the ordinate y* (x* for AxisY) that splits the
// section into equal areas under full plastification.
//
// Part boundaries are tested first so a balance that falls exactly on a
// boundary is returned as that boundary. If the balance holds over a gap
// between parts, the lowest boundary of the gap is returned. Otherwise the
// root is found by bisection over the section extent.
func (s *Section) PlasticNeutralAxis(axis shape.Axis) (float64, error) {
	pa := s.solvePlastic(axis)
	return pa.pna, pa.err
}

// PlasticModulus returns the sum of the first moments of the areas above and
// below the plastic neutral axis, both taken about that axis (mm³).
func (s *Section) PlasticModulus(axis shape.Axis) (float64, error) {
	pa := s.solvePlastic(axis)
	return pa.modulus, pa.err
}

// ShapeFactor returns Wp/We. A ratio not greater than one points at a
// defect in the neutral axis search and is reported as ErrShapeFactor.
func (s *Section) ShapeFactor(axis shape.Axis) (float64, error) {
	wp, err := s.PlasticModulus(axis)
	if err != nil {
		return 0, err
	}
	we, err := s.ElasticModulus(axis)
	if err != nil {
		return 0, err
	}
	f := wp / we
	if !(f > 1) {
		return f, fmt.Errorf("%w: %s-axis Wp/We = %.6f", ErrShapeFactor, axis, f)
	}
	return f, nil
}

func (s *Section) solvePlastic(axis shape.Axis) *plasticAxis {
	s.finalize()
	if pa := s.plastic[axis]; pa != nil {
		return pa
	}
	pa := &plasticAxis{}
	pa.pna, pa.err = s.findNeutralAxis(axis)
	if pa.err == nil {
		above, below := s.momentAbout(axis, pa.pna)
		pa.modulus = above + below
	}
	s.plastic[axis] = pa
	return pa
}

func (s *Section) findNeutralAxis(axis shape.Axis) (float64, error) {
	if len(s.parts) == 0 || s.area <= 0 {
		return 0, ErrEmptySection
	}
	half := s.area / 2
	imbalance := func(cut float64) float64 {
		return s.AreaAbove(axis, cut) - half
	}

	for _, b := range s.breaks(axis) {
		if math.Abs(imbalance(b)) <= pnaAreaTol*s.area {
			return b, nil
		}
	}

	lo, hi := s.Extent(axis)
	tol := pnaLengthTol * (hi - lo)
	fLo, fHi := imbalance(lo), imbalance(hi)
	if !(fLo > 0 && fHi < 0) {
		return 0, fmt.Errorf("%w: %s-axis root not bracketed (%g, %g)", ErrNeutralAxisSearch, axis, fLo, fHi)
	}

	for iter := 0; iter < pnaMaxIter; iter++ {
		mid := (lo + hi) / 2
		f := imbalance(mid)
		if f == 0 {
			return mid, nil
		}
		if f > 0 {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo <= tol {
			return (lo + hi) / 2, nil
		}
	}
	return 0, fmt.Errorf("%w: %s-axis did not converge in %d iterations", ErrNeutralAxisSearch, axis, pnaMaxIter)
}
