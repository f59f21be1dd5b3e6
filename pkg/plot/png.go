package plot

import (
	"image"
	"image/png"
	"io"
	"math"
	"strconv"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/draw"

	"github.com/akeil/hcoords/internal/logging"
	"github.com/akeil/hcoords/pkg/affine"
)

func renderPNG(c *Context, fig *Figure, w io.Writer) error {
	dst, err := renderImage(c, fig)
	if err != nil {
		return err
	}
	return png.Encode(w, dst)
}

// renderImage paints the figure onto a new image of the context's size.
//
// The geometry is drawn on a larger canvas and scaled down afterwards.
// Text is drawn on the final image.
func renderImage(c *Context, fig *Figure) (*image.RGBA, error) {
	err := c.validate()
	if err != nil {
		return nil, err
	}
	err = fig.Validate()
	if err != nil {
		return nil, err
	}
	logging.Debug("Render figure %q with %d series at %dx%d", fig.Name, len(fig.Series), c.Width, c.Height)

	k := c.oversample
	if k < 1 {
		k = 1
	}
	big := image.NewRGBA(image.Rect(0, 0, c.Width*k, c.Height*k))
	draw.Draw(big, big.Bounds(), image.NewUniform(c.palette.Background), image.Point{}, draw.Src)

	area := c.plotArea()
	toPixel := affine.Compose(affine.Scale3(float64(k), float64(k)), viewport(fig.Axis, area))
	xTicks := ticks(fig.Axis.XMin, fig.Axis.XMax)
	yTicks := ticks(fig.Axis.YMin, fig.Axis.YMax)

	gc := draw2dimg.NewGraphicContext(big)
	gc.SetLineCap(draw2d.RoundCap)
	gc.SetLineJoin(draw2d.RoundJoin)

	if fig.Grid {
		renderGrid(gc, c, fig.Axis, toPixel, xTicks, yTicks)
	}
	for _, s := range fig.Series {
		renderSeries(gc, s, toPixel, float64(k))
	}
	renderFrame(gc, c, area, float64(k))

	dst := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	resize(dst, big)

	renderLabels(dst, c, fig, viewport(fig.Axis, area), xTicks, yTicks)
	return dst, nil
}

func renderGrid(gc draw2d.GraphicContext, c *Context, a Axis, m affine.Mat3, xTicks, yTicks []float64) {
	gc.Save()
	defer gc.Restore()

	gc.SetStrokeColor(c.palette.Grid)
	gc.SetLineWidth(1)
	gc.SetLineDash([]float64{4, 4}, 0)

	for _, x := range xTicks {
		x0, y0, _ := m.Apply(x, a.YMin, 1)
		x1, y1, _ := m.Apply(x, a.YMax, 1)
		gc.BeginPath()
		gc.MoveTo(x0, y0)
		gc.LineTo(x1, y1)
		gc.Stroke()
	}
	for _, y := range yTicks {
		x0, y0, _ := m.Apply(a.XMin, y, 1)
		x1, y1, _ := m.Apply(a.XMax, y, 1)
		gc.BeginPath()
		gc.MoveTo(x0, y0)
		gc.LineTo(x1, y1)
		gc.Stroke()
	}
}

func renderFrame(gc draw2d.GraphicContext, c *Context, r image.Rectangle, k float64) {
	gc.Save()
	defer gc.Restore()

	gc.SetStrokeColor(c.palette.Foreground)
	gc.SetLineWidth(k)
	gc.BeginPath()
	draw2dkit.Rectangle(gc, float64(r.Min.X)*k, float64(r.Min.Y)*k, float64(r.Max.X)*k, float64(r.Max.Y)*k)
	gc.Stroke()
}

// renderSeries draws the polyline of a series first and the markers on top.
func renderSeries(gc draw2d.GraphicContext, s Series, m affine.Mat3, k float64) {
	n := s.Points.Len()
	if n == 0 {
		return
	}

	gc.Save()
	defer gc.Restore()

	if s.LineWidth > 0 && n > 1 {
		gc.SetStrokeColor(withTransparency(s.Color, s.Transparency))
		gc.SetLineWidth(s.LineWidth * k)
		gc.BeginPath()
		for i := 0; i < n; i++ {
			x, y, _ := m.Apply(s.Points.X[i], s.Points.Y[i], 1)
			if i == 0 {
				gc.MoveTo(x, y)
			} else {
				gc.LineTo(x, y)
			}
		}
		if s.Closed {
			gc.Close()
		}
		gc.Stroke()
	}

	if s.MarkerSize > 0 {
		gc.SetFillColor(s.Color)
		gc.SetStrokeColor(s.Color)
		gc.SetLineWidth(k)
		for i := 0; i < n; i++ {
			x, y, _ := m.Apply(s.Points.X[i], s.Points.Y[i], 1)
			gc.BeginPath()
			draw2dkit.Circle(gc, x, y, s.MarkerSize*k/2)
			gc.FillStroke()
		}
	}
}

// ticks returns evenly spaced values within [min, max].
func ticks(min, max float64) []float64 {
	step := niceStep(max - min)
	first := math.Ceil(min / step)
	last := math.Floor(max / step)

	values := make([]float64, 0, int(last-first)+1)
	for i := first; i <= last; i++ {
		values = append(values, i*step)
	}
	return values
}

// niceStep picks a tick distance of 1, 2 or 5 times a power of ten
// which gives about ten ticks for the given span.
func niceStep(span float64) float64 {
	raw := span / 10
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, f := range []float64{1, 2, 5} {
		if f*mag >= raw {
			return f * mag
		}
	}
	return 10 * mag
}

func formatTick(v float64) string {
	// avoid "-0"
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
