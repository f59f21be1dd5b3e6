package plot

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/akeil/hcoords/pkg/affine"
)

type anchor int

const (
	anchorCenter anchor = iota
	anchorRight
)

var face = basicfont.Face7x13

// renderLabels writes title, axis labels and tick labels.
// m maps data coordinates to output pixels.
func renderLabels(dst draw.Image, c *Context, fig *Figure, m affine.Mat3, xTicks, yTicks []float64) {
	fg := c.palette.Foreground
	area := c.plotArea()
	lineHeight := face.Metrics().Height.Ceil()

	for _, x := range xTicks {
		px, _, _ := m.Apply(x, fig.Axis.YMin, 1)
		drawText(dst, formatTick(x), int(px), area.Max.Y+lineHeight+4, fg, anchorCenter)
	}
	for _, y := range yTicks {
		_, py, _ := m.Apply(fig.Axis.XMin, y, 1)
		drawText(dst, formatTick(y), area.Min.X-6, int(py)+lineHeight/2-2, fg, anchorRight)
	}

	center := (area.Min.X + area.Max.X) / 2
	if fig.XLabel != "" {
		drawText(dst, fig.XLabel, center, area.Max.Y+2*lineHeight+12, fg, anchorCenter)
	}
	if fig.YLabel != "" {
		middle := (area.Min.Y + area.Max.Y) / 2
		drawText(dst, fig.YLabel, marginLeft/4, middle, fg, anchorCenter)
	}
	if fig.Title != "" {
		drawText(dst, fig.Title, center, area.Min.Y-lineHeight, fg, anchorCenter)
	}
}

// drawText draws s with its baseline at y.
// x is the horizontal center or the right edge, depending on a.
func drawText(dst draw.Image, s string, x, y int, c color.Color, a anchor) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}

	width := d.MeasureString(s).Ceil()
	switch a {
	case anchorCenter:
		x -= width / 2
	case anchorRight:
		x -= width
	}

	d.Dot = fixed.P(x, y)
	d.DrawString(s)
}
