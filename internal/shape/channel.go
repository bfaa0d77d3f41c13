package shape

import (
	"fmt"
	"sort"
)

// Opening is the direction the flanges of a channel point, seen from its back.
type Opening int

const (
	OpenRight Opening = iota
	OpenLeft
	OpenUp
	OpenDown
)

func (o Opening) String() string {
	switch o {
	case OpenRight:
		return "right"
	case OpenLeft:
		return "left"
	case OpenUp:
		return "up"
	case OpenDown:
		return "down"
	}
	return fmt.Sprintf("Opening(%d)", int(o))
}

// piece is a part of a compound shape, in its own centroidal frame.
type piece interface {
	Area() float64
	SecondMoment(axis Axis) float64
	Extent(axis Axis) (lo, hi float64)
	AreaAbove(axis Axis, cut float64) float64
	MomentAbove(axis Axis, cut float64) float64
	Breaks(axis Axis) []float64
	Contains(p Point) bool
	Outline() [][]Point
}

// Channel is a parallel-flange channel (UPE-like) built from a web h × tw,
// two flanges (b − tw) × tf and, when R > 0, the two root fillets of radius
// R between web and flanges.
//
// In the OpenRight orientation the web is vertical with its back face on the
// left and the flanges pointing to +x. OpenUp is the same profile turned so
// the web is horizontal with its back face at the bottom.
type Channel struct {
	H       float64 // overall depth (mm)
	B       float64 // flange width including web (mm)
	Tw      float64 // web thickness (mm)
	Tf      float64 // flange thickness (mm)
	R       float64 // root radius (mm), 0 for sharp corners
	Opening Opening

	e     float64
	parts []placed
}

type placed struct {
	piece piece
	at    Point
}

// NewChannel validates the profile and decomposes it about its centroid.
func NewChannel(h, b, tw, tf, r float64, opening Opening) (*Channel, error) {
	for _, d := range []struct {
		name string
		v    float64
	}{{"h", h}, {"b", b}, {"tw", tw}, {"tf", tf}} {
		if err := requirePositive("channel", d.name, d.v); err != nil {
			return nil, err
		}
	}
	if tw >= b {
		return nil, &GeometryError{Shape: "channel", Field: "tw", Value: tw, Msg: "web thickness must be less than flange width"}
	}
	if 2*tf >= h {
		return nil, &GeometryError{Shape: "channel", Field: "tf", Value: tf, Msg: "flanges overlap (2·tf must be less than h)"}
	}
	if !(r >= 0) || r > b-tw || 2*(tf+r) > h {
		return nil, &GeometryError{Shape: "channel", Field: "r", Value: r, Msg: "root radius must be non-negative and fit between web and flanges"}
	}
	if opening < OpenRight || opening > OpenDown {
		return nil, &GeometryError{Shape: "channel", Field: "opening", Value: float64(opening), Msg: "unknown orientation"}
	}

	c := &Channel{H: h, B: b, Tw: tw, Tf: tf, R: r, Opening: opening}

	// Canonical OpenRight frame, back face on x = 0.
	inner := h/2 - tf
	canon := []placed{
		{Rectangle{B: tw, H: h}, Point{X: tw / 2}},
		{Rectangle{B: b - tw, H: tf}, Point{X: tw + (b-tw)/2, Y: inner + tf/2}},
		{Rectangle{B: b - tw, H: tf}, Point{X: tw + (b-tw)/2, Y: -inner - tf/2}},
	}
	if r > 0 {
		top := fillet{r: r, dir: Point{X: 1, Y: -1}}
		bot := fillet{r: r, dir: Point{X: 1, Y: 1}}
		d := top.offset()
		canon = append(canon,
			placed{top, Point{X: tw + d, Y: inner - d}},
			placed{bot, Point{X: tw + d, Y: -inner + d}},
		)
	}

	var a, ax float64
	for _, p := range canon {
		a += p.piece.Area()
		ax += p.piece.Area() * p.at.X
	}
	c.e = ax / a

	c.parts = make([]placed, len(canon))
	for i, p := range canon {
		p.at.X -= c.e
		c.parts[i] = orient(p, opening)
	}
	return c, nil
}

// turn maps a point of the OpenRight frame onto the given orientation.
func (o Opening) turn(p Point) Point {
	switch o {
	case OpenLeft:
		return Point{X: -p.X, Y: p.Y}
	case OpenUp:
		return Point{X: p.Y, Y: p.X}
	case OpenDown:
		return Point{X: p.Y, Y: -p.X}
	}
	return p
}

func orient(p placed, o Opening) placed {
	turned := o != OpenRight && o != OpenLeft
	switch pc := p.piece.(type) {
	case Rectangle:
		if turned {
			pc.B, pc.H = pc.H, pc.B
		}
		p.piece = pc
	case fillet:
		pc.dir = o.turn(pc.dir)
		p.piece = pc
	}
	p.at = o.turn(p.at)
	return p
}

func (c *Channel) Kind() Kind { return KindChannel }

// BackToCentroid is the distance from the back face of the web to the
// centroid of the profile.
func (c *Channel) BackToCentroid() float64 { return c.e }

func (c *Channel) Area() float64 {
	var a float64
	for _, p := range c.parts {
		a += p.piece.Area()
	}
	return a
}

func (c *Channel) SecondMoment(axis Axis) float64 {
	var i float64
	for _, p := range c.parts {
		d := p.at.Along(axis)
		i += p.piece.SecondMoment(axis) + p.piece.Area()*d*d
	}
	return i
}

func (c *Channel) Extent(axis Axis) (lo, hi float64) {
	for i, p := range c.parts {
		l, h := p.piece.Extent(axis)
		l += p.at.Along(axis)
		h += p.at.Along(axis)
		if i == 0 || l < lo {
			lo = l
		}
		if i == 0 || h > hi {
			hi = h
		}
	}
	return lo, hi
}

func (c *Channel) AreaAbove(axis Axis, cut float64) float64 {
	var a float64
	for _, p := range c.parts {
		a += p.piece.AreaAbove(axis, cut-p.at.Along(axis))
	}
	return a
}

func (c *Channel) MomentAbove(axis Axis, cut float64) float64 {
	var q float64
	for _, p := range c.parts {
		q += p.piece.MomentAbove(axis, cut-p.at.Along(axis))
	}
	return q
}

func (c *Channel) Breaks(axis Axis) []float64 {
	var out []float64
	for _, p := range c.parts {
		for _, b := range p.piece.Breaks(axis) {
			out = append(out, b+p.at.Along(axis))
		}
	}
	sort.Float64s(out)
	return out
}

func (c *Channel) Contains(pt Point) bool {
	for _, p := range c.parts {
		if p.piece.Contains(Point{X: pt.X - p.at.X, Y: pt.Y - p.at.Y}) {
			return true
		}
	}
	return false
}

func (c *Channel) Outline() [][]Point {
	var loops [][]Point
	for _, p := range c.parts {
		for _, loop := range p.piece.Outline() {
			moved := make([]Point, len(loop))
			for i, v := range loop {
				moved[i] = Point{X: v.X + p.at.X, Y: v.Y + p.at.Y}
			}
			loops = append(loops, moved)
		}
	}
	return loops
}
