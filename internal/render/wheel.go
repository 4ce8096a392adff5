package render

import (
	"image/color"
	"math"

	"github.com/iburimskiy/prize-wheel/internal/config"
	"github.com/iburimskiy/prize-wheel/internal/wheel"
)

var (
	white     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black     = color.RGBA{A: 255}
	royalBlue = color.RGBA{R: 65, G: 105, B: 225, A: 255}
)

// Params is what every component gets for one frame.
type Params struct {
	Surface          Surface
	CenterX, CenterY float64
	Rotation         float64
	OnSpin           func()
}

// Component draws itself and returns the regions it makes clickable.
type Component func(p Params) []wheel.Region

// Scene is the whole wheel for a fixed list of entries.
type Scene struct {
	Entries []wheel.Entry
}

// Draw renders the wheel at p.Rotation and returns the frame's regions.
// It does not clear the surface.
func (s Scene) Draw(p Params) []wheel.Region {
	var regions []wheel.Region
	for _, c := range []Component{EdgeLine, EdgeInnerShadow, s.Pieces, Shaft} {
		regions = append(regions, c(p)...)
	}
	return regions
}

// EdgeLine is the white outer ring.
func EdgeLine(p Params) []wheel.Region {
	p.Surface.Stroke(Circle(p.CenterX, p.CenterY, config.EdgeRadius), Style{
		Color: white,
		Width: config.EdgeWidth,
	})
	return nil
}

// EdgeInnerShadow gives the ring its bezel.
func EdgeInnerShadow(p Params) []wheel.Region {
	p.Surface.Stroke(Circle(p.CenterX, p.CenterY, config.InnerShadowRadius), Style{
		Color: white,
		Width: 1,
		Shadow: &Shadow{
			Color:   black,
			Blur:    config.ShadowBlur,
			OffsetX: config.ShadowOffsetX,
			OffsetY: config.ShadowOffsetY,
		},
	})
	return nil
}

// Pieces draws one wedge per entry.
func (s Scene) Pieces(p Params) []wheel.Region {
	for _, piece := range wheel.Layout(s.Entries) {
		Piece(p, piece)
	}
	return nil
}

// Piece draws a single wedge and its label.
func Piece(p Params, piece wheel.PieceParams) {
	wedge := &Path{}
	wedge.MoveTo(0, 0)
	wedge.Arc(0, 0, config.PieceRadius, -piece.ArcLength/2, piece.ArcLength/2)
	wedge.LineTo(0, 0)

	t := Identity().Translate(p.CenterX, p.CenterY).Rotate(piece.Angle + p.Rotation)
	wedge = wedge.Transformed(t)

	p.Surface.Stroke(wedge, Style{Color: white, Width: config.PieceStrokeWidth})
	p.Surface.Fill(wedge, Style{Color: piece.Color})
	p.Surface.Text(piece.Label, t.Translate(config.LabelOffset, 0), TextStyle{
		Color:    white,
		Size:     config.LabelFontSize,
		MaxWidth: config.LabelMaxWidth,
	})
}

// ShaftBody is the blue hub.
func ShaftBody(p Params) []wheel.Region {
	hub := Circle(p.CenterX, p.CenterY, config.ShaftRadius)
	p.Surface.Stroke(hub, Style{Color: white, Width: config.ShaftStrokeWidth})
	p.Surface.Fill(hub, Style{Color: royalBlue})
	return nil
}

// PlaySign is the triangle on the hub, pointing at +x.
func PlaySign(p Params) []wheel.Region {
	side := float64(config.PlaySignSide)
	tri := &Path{}
	tri.MoveTo(p.CenterX-side/math.Sqrt(3), p.CenterY-side)
	tri.LineTo(p.CenterX+side*2/math.Sqrt(3), p.CenterY)
	tri.LineTo(p.CenterX-side/math.Sqrt(3), p.CenterY+side)
	tri.Close()
	p.Surface.Fill(tri, Style{Color: white})
	return nil
}

// Shaft draws the hub with its play sign and makes it clickable.
func Shaft(p Params) []wheel.Region {
	ShaftBody(p)
	PlaySign(p)
	return []wheel.Region{wheel.ShaftRegion(p.CenterX, p.CenterY, p.OnSpin)}
}
