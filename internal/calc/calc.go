package calc

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/alexiusacademia/gosect/internal/section"
	"github.com/alexiusacademia/gosect/internal/shape"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidMaterial is returned for a non-positive yield strength.
var ErrInvalidMaterial = errors.New("invalid material")

// NmmToKNm converts a moment from N·mm to kN·m.
func NmmToKNm(m float64) float64 {
	return m / 1e6
}

// Calculate builds the section of the given kind and computes its elastic
// and plastic properties. It either returns a complete Result or an error.
func Calculate(kind Kind, in Input) (*Result, error) {
	if !(in.Fy > 0) {
		return nil, fmt.Errorf("%w: fy must be positive, got %g", ErrInvalidMaterial, in.Fy)
	}

	s, place, err := build(kind, in)
	if err != nil {
		return nil, err
	}
	return evaluate(kind, in.Fy, s, place)
}

// evaluate queries a built section. Any failed query discards the record.
func evaluate(kind Kind, fy float64, s *section.Section, place placement) (*Result, error) {
	r := &Result{
		Label:    s.Name,
		Kind:     kind,
		Fy:       fy,
		Area:     s.Area(),
		Centroid: s.Centroid(),
		Ix:       s.SecondMoment(shape.AxisX),
		Iy:       s.SecondMoment(shape.AxisY),
		XC:       place.xc,
		YC:       place.yc,
	}

	xLo, xHi := s.Extent(shape.AxisY)
	yLo, yHi := s.Extent(shape.AxisX)
	r.Width, r.Depth = xHi-xLo, yHi-yLo
	r.bottom = yLo

	for _, axis := range []shape.Axis{shape.AxisX, shape.AxisY} {
		ap, err := axisProps(s, axis)
		if err != nil {
			return nil, err
		}
		ap.Me = NmmToKNm(fy * ap.We)
		ap.Mp = NmmToKNm(fy * ap.Wp)
		if axis == shape.AxisX {
			r.X = ap
		} else {
			r.Y = ap
		}
	}

	r.Notes = explain(kind, r, place, len(s.Parts()))
	return r, nil
}

type sectionQuery interface {
	ElasticModulus(axis shape.Axis) (float64, error)
	PlasticModulus(axis shape.Axis) (float64, error)
	PlasticNeutralAxis(axis shape.Axis) (float64, error)
	ShapeFactor(axis shape.Axis) (float64, error)
}

func axisProps(s sectionQuery, axis shape.Axis) (AxisResult, error) {
	var ap AxisResult
	var err error
	if ap.We, err = s.ElasticModulus(axis); err != nil {
		return ap, err
	}
	if ap.PNA, err = s.PlasticNeutralAxis(axis); err != nil {
		return ap, err
	}
	if ap.Wp, err = s.PlasticModulus(axis); err != nil {
		return ap, err
	}
	if ap.ShapeFactor, err = s.ShapeFactor(axis); err != nil {
		return ap, err
	}
	return ap, nil
}

// CalculateAll computes independent jobs concurrently. Results keep the
// order of jobs; the first failure fails the whole call.
func CalculateAll(jobs []Job) ([]*Result, error) {
	results := make([]*Result, len(jobs))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			r, err := Calculate(job.Kind, job.Input)
			if err != nil {
				label := job.Label
				if label == "" {
					label = job.Kind.String()
				}
				return fmt.Errorf("section %d (%s): %w", i+1, label, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
