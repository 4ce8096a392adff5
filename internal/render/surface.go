// Package render draws the wheel onto an abstract 2D surface.
package render

import "image/color"

// Shadow is a drop shadow cast beneath a draw.
type Shadow struct {
	Color            color.Color
	Blur             float64
	OffsetX, OffsetY float64
}

// Style applies to a single Stroke or Fill call only.
type Style struct {
	Color  color.Color
	Width  float64
	Shadow *Shadow
}

// TextStyle applies to a single Text call only.
type TextStyle struct {
	Color color.Color
	Size  float64
	// MaxWidth compresses glyphs horizontally when the label is wider. Zero
	// means unlimited.
	MaxWidth float64
}

// Surface is the immediate-mode drawing target.
type Surface interface {
	Clear()
	Stroke(p *Path, s Style)
	Fill(p *Path, s Style)
	// Text draws label with its baseline starting at the origin of at.
	Text(label string, at Transform, s TextStyle)
}
