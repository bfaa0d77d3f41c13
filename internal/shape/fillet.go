package shape

import "math"

// fillet is the root fillet between two perpendicular plates: an r × r
// square corner less a quarter disc of radius r.
//
// In its corner frame the solid corner sits at (0, 0) and the arc is centred
// on (r, r). Dir gives the signs that map corner-frame axes onto section
// axes, so a fillet in the upper-left inner corner of a channel opening to
// the right has Dir (1, -1). The shape's own origin is its centroid.
type fillet struct {
	r   float64
	dir Point // components are ±1
}

func (f fillet) area() float64 { return f.r * f.r * (1 - math.Pi/4) }

// offset is the distance of the centroid from each straight edge.
func (f fillet) offset() float64 {
	return f.r * (10 - 3*math.Pi) / (3 * (4 - math.Pi))
}

func (f fillet) sign(axis Axis) float64 { return f.dir.Along(axis) }

func (f fillet) Area() float64 { return f.area() }

func (f fillet) SecondMoment(axis Axis) float64 {
	r, d := f.r, f.offset()
	// about the straight edge, less the transfer to the centroid
	i0 := r * r * r * r * (1 - 5*math.Pi/16)
	return i0 - f.area()*d*d
}

func (f fillet) Extent(axis Axis) (lo, hi float64) {
	d := f.offset()
	if f.sign(axis) > 0 {
		return -d, f.r - d
	}
	return d - f.r, d
}

// beyond is the area with corner-frame coordinate greater than t.
func (f fillet) beyond(t float64) float64 {
	switch {
	case t >= f.r:
		return 0
	case t <= 0:
		return f.area()
	}
	a := f.r - t
	return f.r*a - f.circ(a)
}

// beyondMoment is the first moment about the line at t of the area beyond t.
func (f fillet) beyondMoment(t float64) float64 {
	switch {
	case t >= f.r:
		return 0
	case t <= 0:
		return f.area() * (f.offset() - t)
	}
	r, a := f.r, f.r-t
	rest := r*r - a*a
	return r*a*a/2 - a*f.circ(a) + (r*r*r-rest*math.Sqrt(rest))/3
}

// circ is the integral of sqrt(r² − s²) for s from 0 to a.
func (f fillet) circ(a float64) float64 {
	r := f.r
	return (a*math.Sqrt(r*r-a*a) + r*r*math.Asin(a/r)) / 2
}

func (f fillet) AreaAbove(axis Axis, cut float64) float64 {
	d := f.offset()
	if f.sign(axis) > 0 {
		return f.beyond(cut + d)
	}
	return f.area() - f.beyond(d-cut)
}

func (f fillet) MomentAbove(axis Axis, cut float64) float64 {
	d := f.offset()
	if f.sign(axis) > 0 {
		return f.beyondMoment(cut + d)
	}
	// material short of t in the corner frame, measured back from t
	t := d - cut
	return f.area()*(t-d) + f.beyondMoment(t)
}

func (f fillet) Breaks(axis Axis) []float64 {
	lo, hi := f.Extent(axis)
	return []float64{lo, hi}
}

func (f fillet) corner(p Point) (u, v float64) {
	d := f.offset()
	return f.dir.X*p.X + d, f.dir.Y*p.Y + d
}

func (f fillet) Contains(p Point) bool {
	u, v := f.corner(p)
	if u < 0 || v < 0 || u > f.r || v > f.r {
		return false
	}
	return (u-f.r)*(u-f.r)+(v-f.r)*(v-f.r) >= f.r*f.r
}

func (f fillet) Outline() [][]Point {
	d := f.offset()
	local := func(u, v float64) Point {
		return Point{X: f.dir.X * (u - d), Y: f.dir.Y * (v - d)}
	}
	const n = outlineSegments / 4
	loop := []Point{local(0, 0), local(f.r, 0)}
	for i := 1; i < n; i++ {
		th := 1.5*math.Pi - float64(i)*math.Pi/2/n
		loop = append(loop, local(f.r+f.r*math.Cos(th), f.r+f.r*math.Sin(th)))
	}
	loop = append(loop, local(0, f.r))
	return [][]Point{loop}
}
