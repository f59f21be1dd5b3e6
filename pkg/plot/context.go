package plot

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/akeil/hcoords/pkg/affine"
)

// Palette holds the colors that are not set per series.
type Palette struct {
	Background color.Color
	Foreground color.Color
	Grid       color.Color
}

// NewPalette creates a palette from background, foreground (frame and text)
// and grid colors.
func NewPalette(bg, fg, grid color.Color) *Palette {
	return &Palette{
		Background: bg,
		Foreground: fg,
		Grid:       grid,
	}
}

// DefaultPalette is black on white with a light gray grid.
func DefaultPalette() *Palette {
	return NewPalette(color.White, color.Black, color.RGBA{200, 200, 200, 255})
}

// margins around the plot area, in output pixels.
const (
	marginLeft   = 70
	marginRight  = 30
	marginTop    = 40
	marginBottom = 60
)

// Context holds parameters for rendering figures.
//
// A Context is not modified by rendering and can be shared between
// goroutines.
type Context struct {
	Width   int
	Height  int
	palette *Palette
	// supersampling factor for the geometry
	oversample int
}

// NewContext sets up a rendering context for images of the given size.
func NewContext(width, height int, p *Palette) *Context {
	if p == nil {
		p = DefaultPalette()
	}
	return &Context{
		Width:      width,
		Height:     height,
		palette:    p,
		oversample: 2,
	}
}

// DefaultContext renders 800x600 images with the default palette.
func DefaultContext() *Context {
	return NewContext(800, 600, DefaultPalette())
}

// PNG renders a single figure to a PNG image and writes it to the given
// writer.
func (c *Context) PNG(fig *Figure, w io.Writer) error {
	return renderPNG(c, fig, w)
}

// PDF renders the given figures to a PDF document with one page per figure.
//
// The resulting PDF document is written to the given writer.
func (c *Context) PDF(w io.Writer, figs ...*Figure) error {
	return renderPDF(c, w, figs...)
}

func (c *Context) validate() error {
	minW := marginLeft + marginRight + 1
	minH := marginTop + marginBottom + 1
	if c.Width < minW || c.Height < minH {
		return fmt.Errorf("image size %dx%d is too small, need at least %dx%d", c.Width, c.Height, minW, minH)
	}
	return nil
}

// plotArea is the rectangle inside the margins, in output pixels.
func (c *Context) plotArea() image.Rectangle {
	return image.Rect(marginLeft, marginTop, c.Width-marginRight, c.Height-marginBottom)
}

// viewport returns the transformation from data coordinates to pixel
// coordinates of the given rectangle. The y-axis is flipped so that
// data y grows upwards.
func viewport(a Axis, r image.Rectangle) affine.Mat3 {
	sx := float64(r.Dx()) / (a.XMax - a.XMin)
	sy := float64(r.Dy()) / (a.YMax - a.YMin)

	return affine.Compose(
		affine.Translation3(float64(r.Min.X), float64(r.Max.Y)),
		affine.Scale3(sx, -sy),
		affine.Translation3(-a.XMin, -a.YMin),
	)
}
