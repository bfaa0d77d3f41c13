package calc

import (
	"fmt"

	"github.com/alexiusacademia/gosect/internal/section"
	"github.com/alexiusacademia/gosect/internal/shape"
)

// placement records where the catalog parts of a section ended up, for the
// result record and the calculation notes.
type placement struct {
	xc, yc float64 // channel centroid offsets
	e      float64 // channel back to centroid
	gap    float64 // clear distance between channel back and tube
}

type builder func(in Input, s *section.Section) (placement, error)

// builderFor is a closed match over the section catalog.
func builderFor(kind Kind) (builder, error) {
	switch kind {
	case BuiltUpI:
		return buildBuiltUpI, nil
	case CHS:
		return buildCHS, nil
	case CHSUPELR:
		return buildCHSUPELR, nil
	case CHSUPETB:
		return buildCHSUPETB, nil
	}
	return nil, unknownKind(kind)
}

func unknownKind(kind Kind) error {
	return fmt.Errorf("%w: %s", ErrUnknownSectionType, kind)
}

// Build assembles the composite section for kind. The section is returned
// still assembling.
func Build(kind Kind, in Input) (*section.Section, error) {
	s, _, err := build(kind, in)
	return s, err
}

func build(kind Kind, in Input) (*section.Section, placement, error) {
	b, err := builderFor(kind)
	if err != nil {
		return nil, placement{}, err
	}
	label := in.Label
	if label == "" {
		label = kind.Title()
	}
	s := section.New(label)
	p, err := b(in, s)
	if err != nil {
		return nil, placement{}, err
	}
	return s, p, nil
}

// buildBuiltUpI stacks bottom flange, web and top flange from y = 0,
// centred on x = 0.
func buildBuiltUpI(in Input, s *section.Section) (placement, error) {
	top, err := shape.NewRectangle(in.BTop, in.TTop)
	if err != nil {
		return placement{}, fmt.Errorf("top flange: %w", err)
	}
	bot, err := shape.NewRectangle(in.BBot, in.TBot)
	if err != nil {
		return placement{}, fmt.Errorf("bottom flange: %w", err)
	}
	hw := in.H - in.TTop - in.TBot
	if !(hw > 0) {
		return placement{}, &shape.GeometryError{Shape: "built-up I", Field: "h", Value: in.H,
			Msg: "depth must exceed the sum of flange thicknesses"}
	}
	web, err := shape.NewRectangle(in.Tw, hw)
	if err != nil {
		return placement{}, fmt.Errorf("web: %w", err)
	}

	s.MustAdd(bot, shape.Point{Y: in.TBot / 2})
	s.MustAdd(web, shape.Point{Y: in.TBot + hw/2})
	s.MustAdd(top, shape.Point{Y: in.H - in.TTop/2})
	return placement{}, nil
}

func buildCHS(in Input, s *section.Section) (placement, error) {
	tube, err := shape.NewTube(in.D, in.T)
	if err != nil {
		return placement{}, fmt.Errorf("tube: %w", err)
	}
	s.MustAdd(tube, shape.Point{})
	return placement{}, nil
}

// buildCHSUPELR places the channels upright with their backs towards the
// tube, mirrored about the vertical centreline.
func buildCHSUPELR(in Input, s *section.Section) (placement, error) {
	tube, err := shape.NewTube(in.D, in.T)
	if err != nil {
		return placement{}, fmt.Errorf("tube: %w", err)
	}
	if !(in.GapBack >= 0) {
		return placement{}, &shape.GeometryError{Shape: "CHS+UPE L-R", Field: "gap_back", Value: in.GapBack,
			Msg: "must not be negative"}
	}
	right, err := in.channel(shape.OpenRight)
	if err != nil {
		return placement{}, fmt.Errorf("channel: %w", err)
	}
	left, err := in.channel(shape.OpenLeft)
	if err != nil {
		return placement{}, fmt.Errorf("channel: %w", err)
	}

	e := right.BackToCentroid()
	xc := tube.Ro() + in.GapBack/2 + e

	s.MustAdd(tube, shape.Point{})
	s.MustAdd(right, shape.Point{X: xc})
	s.MustAdd(left, shape.Point{X: -xc})
	return placement{xc: xc, e: e, gap: in.GapBack / 2}, nil
}

// buildCHSUPETB turns the channels so their webs are horizontal, backs
// towards the tube, mirrored about the horizontal centreline.
func buildCHSUPETB(in Input, s *section.Section) (placement, error) {
	tube, err := shape.NewTube(in.D, in.T)
	if err != nil {
		return placement{}, fmt.Errorf("tube: %w", err)
	}
	if !(in.YC > 0) {
		return placement{}, &shape.GeometryError{Shape: "CHS+UPE T-B", Field: "y_c", Value: in.YC}
	}
	top, err := in.channel(shape.OpenUp)
	if err != nil {
		return placement{}, fmt.Errorf("channel: %w", err)
	}
	bot, err := in.channel(shape.OpenDown)
	if err != nil {
		return placement{}, fmt.Errorf("channel: %w", err)
	}

	e := top.BackToCentroid()
	gap := in.YC - e - tube.Ro()
	if gap < -1e-9 {
		return placement{}, &shape.GeometryError{Shape: "CHS+UPE T-B", Field: "y_c", Value: in.YC,
			Msg: fmt.Sprintf("channel back overlaps the tube by %.3f mm (y_c must be at least %.3f)", -gap, tube.Ro()+e)}
	}

	s.MustAdd(tube, shape.Point{})
	s.MustAdd(top, shape.Point{Y: in.YC})
	s.MustAdd(bot, shape.Point{Y: -in.YC})
	return placement{yc: in.YC, e: e, gap: gap}, nil
}
