package plot

import (
	"fmt"
	"image/color"

	"github.com/akeil/hcoords/pkg/affine"
)

// Axis is the visible range of data coordinates.
type Axis struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Validate checks that the axis box has a positive extent.
func (a Axis) Validate() error {
	if !(a.XMax > a.XMin) || !(a.YMax > a.YMin) {
		return fmt.Errorf("invalid axis box [%v %v %v %v]", a.XMin, a.XMax, a.YMin, a.YMax)
	}
	return nil
}

// Series is a polyline with optional vertex markers.
type Series struct {
	Points affine.Points
	Color  color.Color
	// LineWidth is the line width in pixels; zero draws no line.
	LineWidth float64
	// MarkerSize is the marker diameter in pixels; zero draws no markers.
	MarkerSize float64
	// Transparency in the range 0..1 is applied to the line, not to the
	// markers. Zero draws an opaque line.
	Transparency float64
	// Closed connects the last point back to the first.
	Closed bool
}

// Figure is one plot with a set of series drawn on shared axes.
type Figure struct {
	Name   string
	Title  string
	XLabel string
	YLabel string
	Axis   Axis
	Grid   bool
	Series []Series
}

// Add appends a series to the figure.
func (f *Figure) Add(s Series) {
	f.Series = append(f.Series, s)
}

// Validate checks the figure for data that cannot be drawn.
func (f *Figure) Validate() error {
	err := f.Axis.Validate()
	if err != nil {
		return err
	}

	for i, s := range f.Series {
		if len(s.Points.X) != len(s.Points.Y) {
			return fmt.Errorf("series %d: rows have different length", i)
		}
		if s.Color == nil {
			return fmt.Errorf("series %d: missing color", i)
		}
		if s.Transparency < 0 || s.Transparency > 1 {
			return fmt.Errorf("series %d: invalid transparency %v", i, s.Transparency)
		}
	}
	return nil
}

// withTransparency returns c with its alpha channel reduced by t.
func withTransparency(c color.Color, t float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*(1-t) + 0.5)
	return n
}
