package shape

// Rectangle is a solid b × h rectangle, b measured along x.
type Rectangle struct {
	B float64 // width (mm)
	H float64 // height (mm)
}

// NewRectangle validates the dimensions and returns the rectangle.
func NewRectangle(b, h float64) (Rectangle, error) {
	if err := requirePositive("rectangle", "b", b); err != nil {
		return Rectangle{}, err
	}
	if err := requirePositive("rectangle", "h", h); err != nil {
		return Rectangle{}, err
	}
	return Rectangle{B: b, H: h}, nil
}

func (r Rectangle) Kind() Kind { return KindRectangle }

func (r Rectangle) Area() float64 { return r.B * r.H }

func (r Rectangle) SecondMoment(axis Axis) float64 {
	w, d := r.across(axis)
	return w * d * d * d / 12
}

func (r Rectangle) Extent(axis Axis) (lo, hi float64) {
	_, d := r.across(axis)
	return -d / 2, d / 2
}

func (r Rectangle) AreaAbove(axis Axis, cut float64) float64 {
	w, d := r.across(axis)
	switch {
	case cut >= d/2:
		return 0
	case cut <= -d/2:
		return w * d
	}
	return w * (d/2 - cut)
}

func (r Rectangle) MomentAbove(axis Axis, cut float64) float64 {
	w, d := r.across(axis)
	switch {
	case cut >= d/2:
		return 0
	case cut <= -d/2:
		// whole rectangle, centroid at 0
		return -w * d * cut
	}
	s := d/2 - cut
	return w * s * s / 2
}

func (r Rectangle) Breaks(axis Axis) []float64 {
	lo, hi := r.Extent(axis)
	return []float64{lo, hi}
}

func (r Rectangle) Contains(p Point) bool {
	return p.X >= -r.B/2 && p.X <= r.B/2 && p.Y >= -r.H/2 && p.Y <= r.H/2
}

func (r Rectangle) Outline() [][]Point {
	return [][]Point{{
		{X: -r.B / 2, Y: -r.H / 2},
		{X: r.B / 2, Y: -r.H / 2},
		{X: r.B / 2, Y: r.H / 2},
		{X: -r.B / 2, Y: r.H / 2},
	}}
}

// across returns the width parallel to the bending axis and the depth
// perpendicular to it.
func (r Rectangle) across(axis Axis) (w, d float64) {
	if axis == AxisY {
		return r.H, r.B
	}
	return r.B, r.H
}
