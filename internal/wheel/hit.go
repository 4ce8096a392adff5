package wheel

import "github.com/iburimskiy/prize-wheel/internal/config"

// Point is a position in surface-local pixels.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Region is a clickable area of the current frame.
type Region struct {
	TestHit func(Point) bool
	OnHit   func()
}

// TestShaftHit reports whether p lies strictly inside the shaft.
func TestShaftHit(p Point, centerX, centerY float64) bool {
	dx := p.X - centerX
	dy := p.Y - centerY
	return dx*dx+dy*dy < config.ShaftRadius*config.ShaftRadius
}

// ShaftRegion is the hub region that triggers onHit.
func ShaftRegion(centerX, centerY float64, onHit func()) Region {
	return Region{
		TestHit: func(p Point) bool { return TestShaftHit(p, centerX, centerY) },
		OnHit:   onHit,
	}
}
