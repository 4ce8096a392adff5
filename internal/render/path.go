package render

import (
	"math"

	"github.com/iburimskiy/prize-wheel/internal/wheel"
)

// arcStep is the angular resolution used when flattening arcs.
const arcStep = math.Pi / 90

// Subpath is one connected run of points.
type Subpath struct {
	Points []wheel.Point
	Closed bool
}

// Path is a flattened 2D path made of line segments.
type Path struct {
	subpaths []Subpath
}

func (p *Path) current() *Subpath {
	if len(p.subpaths) == 0 {
		return nil
	}
	return &p.subpaths[len(p.subpaths)-1]
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.subpaths = append(p.subpaths, Subpath{Points: []wheel.Point{{X: x, Y: y}}})
}

// LineTo extends the current subpath, starting one if there is none.
func (p *Path) LineTo(x, y float64) {
	sp := p.current()
	if sp == nil || sp.Closed {
		p.MoveTo(x, y)
		return
	}
	sp.Points = append(sp.Points, wheel.Point{X: x, Y: y})
}

// Arc adds a clockwise arc (screen space) from start to end radians around
// (cx, cy). The start of the arc is joined to the current point by a line.
func (p *Path) Arc(cx, cy, r, start, end float64) {
	sweep := end - start
	steps := int(math.Ceil(math.Abs(sweep) / arcStep))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		a := start + sweep*float64(i)/float64(steps)
		p.LineTo(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
}

// Close closes the current subpath.
func (p *Path) Close() {
	if sp := p.current(); sp != nil {
		sp.Closed = true
	}
}

// Subpaths returns the flattened geometry.
func (p *Path) Subpaths() []Subpath {
	return p.subpaths
}

// Transformed returns a copy of p with every point mapped through t.
func (p *Path) Transformed(t Transform) *Path {
	out := &Path{subpaths: make([]Subpath, len(p.subpaths))}
	for i, sp := range p.subpaths {
		pts := make([]wheel.Point, len(sp.Points))
		for j, pt := range sp.Points {
			pts[j] = t.Apply(pt)
		}
		out.subpaths[i] = Subpath{Points: pts, Closed: sp.Closed}
	}
	return out
}

// Circle is a closed full circle.
func Circle(cx, cy, r float64) *Path {
	p := &Path{}
	p.Arc(cx, cy, r, 0, 2*math.Pi)
	p.Close()
	return p
}

// Transform is a 2D affine matrix
//
//	| A C TX |
//	| B D TY |
type Transform struct {
	A, B, C, D, TX, TY float64
}

// Identity is the transform that leaves points alone.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

func (t Transform) mul(o Transform) Transform {
	return Transform{
		A:  t.A*o.A + t.C*o.B,
		B:  t.B*o.A + t.D*o.B,
		C:  t.A*o.C + t.C*o.D,
		D:  t.B*o.C + t.D*o.D,
		TX: t.A*o.TX + t.C*o.TY + t.TX,
		TY: t.B*o.TX + t.D*o.TY + t.TY,
	}
}

// Translate moves the local origin by (x, y) in the current local space.
func (t Transform) Translate(x, y float64) Transform {
	return t.mul(Transform{A: 1, D: 1, TX: x, TY: y})
}

// Rotate turns the local axes by theta radians.
func (t Transform) Rotate(theta float64) Transform {
	s, c := math.Sincos(theta)
	return t.mul(Transform{A: c, B: s, C: -s, D: c})
}

// Apply maps a local point to surface space.
func (t Transform) Apply(p wheel.Point) wheel.Point {
	return wheel.Point{
		X: t.A*p.X + t.C*p.Y + t.TX,
		Y: t.B*p.X + t.D*p.Y + t.TY,
	}
}
