// Package canvas implements render.Surface on an offscreen ebiten image.
package canvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/iburimskiy/prize-wheel/internal/config"
	"github.com/iburimskiy/prize-wheel/internal/render"
	"github.com/iburimskiy/prize-wheel/internal/wheel"
)

// shadowTaps is the number of samples per axis used to fake a blurred shadow.
const shadowTaps = 5

// Canvas is a drawing surface backed by an ebiten image.
type Canvas struct {
	img    *ebiten.Image
	layer  *ebiten.Image
	white  *ebiten.Image
	face   text.Face
	sizePx float64
}

// New allocates a w×h canvas and loads the label font.
func New(w, h int) (*Canvas, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse label font: %w", err)
	}
	xface, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    config.LabelFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create label face: %w", err)
	}

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &Canvas{
		img:    ebiten.NewImage(w, h),
		layer:  ebiten.NewImage(w, h),
		white:  white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		face:   text.NewGoXFace(xface),
		sizePx: config.LabelFontSize,
	}, nil
}

// Image is the rendered frame.
func (c *Canvas) Image() *ebiten.Image { return c.img }

func (c *Canvas) Clear() { c.img.Clear() }

func (c *Canvas) Stroke(p *render.Path, s render.Style) {
	vs, is := toVector(p, false).AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    float32(s.Width),
		LineJoin: vector.LineJoinRound,
	})
	c.paint(vs, is, s)
}

func (c *Canvas) Fill(p *render.Path, s render.Style) {
	vs, is := toVector(p, true).AppendVerticesAndIndicesForFilling(nil, nil)
	c.paint(vs, is, s)
}

func (c *Canvas) Text(label string, at render.Transform, s render.TextStyle) {
	if label == "" {
		return
	}
	op := &text.DrawOptions{}

	w, _ := text.Measure(label, c.face, 0)
	sx, sy := labelScale(w, s.Size, c.sizePx, s.MaxWidth)
	// Baseline at the origin, like a canvas fillText.
	op.GeoM.Translate(0, -c.face.Metrics().HAscent)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Concat(geoM(at))
	op.ColorScale.ScaleWithColor(s.Color)
	text.Draw(c.img, label, c.face, op)
}

// labelScale sizes a label measured w pixels wide at the face's sizePx.
// A label that would end up wider than maxWidth is squeezed along x only.
func labelScale(w, size, sizePx, maxWidth float64) (sx, sy float64) {
	sy = 1.0
	if size > 0 && sizePx > 0 {
		sy = size / sizePx
	}
	sx = sy
	if maxWidth > 0 && w*sy > maxWidth {
		sx = maxWidth / w
	}
	return sx, sy
}

func (c *Canvas) paint(vs []ebiten.Vertex, is []uint16, s render.Style) {
	if s.Shadow != nil {
		c.layer.Clear()
		c.triangles(c.layer, vs, is, s.Shadow.Color)
		c.compositeShadow(*s.Shadow)
	}
	c.triangles(c.img, vs, is, s.Color)
}

func (c *Canvas) triangles(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(vs, is, c.white, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

// compositeShadow spreads the shadow layer over a grid of offsets that
// covers the blur radius, which reads as a soft shadow at this size.
func (c *Canvas) compositeShadow(sh render.Shadow) {
	taps := shadowOffsets(sh)
	alpha := float32(1) / float32(len(taps))
	for _, t := range taps {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(t.X, t.Y)
		op.ColorScale.ScaleAlpha(alpha)
		c.img.DrawImage(c.layer, op)
	}
}

// shadowOffsets is a shadowTaps×shadowTaps grid spanning [-Blur/2, +Blur/2]
// on each axis around the shadow offset.
func shadowOffsets(sh render.Shadow) []wheel.Point {
	step := 0.0
	if sh.Blur > 0 {
		step = sh.Blur / float64(shadowTaps-1)
	}
	out := make([]wheel.Point, 0, shadowTaps*shadowTaps)
	for i := 0; i < shadowTaps; i++ {
		for j := 0; j < shadowTaps; j++ {
			out = append(out, wheel.Point{
				X: sh.OffsetX - sh.Blur/2 + float64(i)*step,
				Y: sh.OffsetY - sh.Blur/2 + float64(j)*step,
			})
		}
	}
	return out
}

func toVector(p *render.Path, fill bool) *vector.Path {
	var vp vector.Path
	for _, sp := range p.Subpaths() {
		for i, pt := range sp.Points {
			if i == 0 {
				vp.MoveTo(float32(pt.X), float32(pt.Y))
				continue
			}
			vp.LineTo(float32(pt.X), float32(pt.Y))
		}
		if sp.Closed || fill {
			vp.Close()
		}
	}
	return &vp
}

func geoM(t render.Transform) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, t.A)
	g.SetElement(0, 1, t.C)
	g.SetElement(0, 2, t.TX)
	g.SetElement(1, 0, t.B)
	g.SetElement(1, 1, t.D)
	g.SetElement(1, 2, t.TY)
	return g
}
