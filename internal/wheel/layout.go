// Package wheel holds the geometry, hit-testing and spin physics of the
// prize wheel. It knows nothing about windows or pixels.
package wheel

import (
	"image/color"
	"math"

	"github.com/iburimskiy/prize-wheel/internal/config"
)

// Entry is one labeled slot on the wheel. Order decides placement.
type Entry struct {
	Label string
}

// PieceParams is the per-frame placement of one entry, before rotation.
type PieceParams struct {
	Label     string
	Angle     float64
	ArcLength float64
	Color     color.RGBA
}

// Layout spreads entries evenly around the circle, starting at angle 0.
// An empty list yields no pieces.
func Layout(entries []Entry) []PieceParams {
	n := len(entries)
	if n == 0 {
		return nil
	}

	arc := 2 * math.Pi / float64(n)
	pieces := make([]PieceParams, n)
	for i, e := range entries {
		angle := float64(i) / float64(n) * 2 * math.Pi
		pieces[i] = PieceParams{
			Label:     e.Label,
			Angle:     angle,
			ArcLength: arc,
			Color:     HSL(angle*180/math.Pi, config.PieceSaturation, config.PieceLightness),
		}
	}
	return pieces
}

// HSL converts HSL to an opaque RGBA (hue: degrees, saturation and lightness: 0-1)
func HSL(h, s, l float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s, l = clamp01(s), clamp01(l)

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.RGBA{R: to8(r + m), G: to8(g + m), B: to8(b + m), A: 255}
}

// PieceAt reports which piece covers direction (radians, screen space) when
// the wheel is turned by rotation.
func PieceAt(pieces []PieceParams, rotation, direction float64) (int, bool) {
	n := len(pieces)
	if n == 0 {
		return 0, false
	}
	arc := pieces[0].ArcLength
	// Piece i is centered on i*arc + rotation, spanning half an arc each side.
	rel := normalize(direction - rotation + arc/2)
	i := int(rel / arc)
	if i >= n {
		i = n - 1
	}
	return i, true
}

// Crossings counts the piece boundaries that pass a fixed pointer while the
// wheel turns from prev to next.
func Crossings(prev, next, arcLength float64) int {
	if arcLength <= 0 || next <= prev {
		return 0
	}
	// Boundaries sit at odd multiples of half an arc.
	first := math.Floor((prev + arcLength/2) / arcLength)
	last := math.Floor((next + arcLength/2) / arcLength)
	return int(last - first)
}

func normalize(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
