package demo

import (
	"image/color"

	"github.com/akeil/hcoords/pkg/affine"
	"github.com/akeil/hcoords/pkg/plot"
)

var (
	Blue  = color.RGBA{0, 0, 255, 255}
	Red   = color.RGBA{255, 0, 0, 255}
	Green = color.RGBA{0, 160, 0, 255}
)

const forwardTitle = "Original (blue) and Transformed (red) Shapes"

var box = plot.Axis{XMin: -2, XMax: 10, YMin: -2, YMax: 7}

// Figures returns the four plots of the example in order:
// Cartesian forward and inverse, homogeneous forward and inverse.
func (r *Result) Figures() []*plot.Figure {
	return []*plot.Figure{
		forwardFigure("01-cartesian", r.X, r.XP),
		inverseFigure("02-cartesian-inverse", r.XP, r.XI),
		forwardFigure("03-homogeneous", r.X, r.XC),
		inverseFigure("04-homogeneous-inverse", r.XC, r.XCI),
	}
}

// forwardFigure shows the original shape in blue
// and the transformed shape in half transparent red.
func forwardFigure(name string, x, xp affine.Points) *plot.Figure {
	fig := newFigure(name, forwardTitle)
	fig.Add(plot.Series{
		Points:     x,
		Color:      Blue,
		LineWidth:  4,
		MarkerSize: 12,
		Closed:     true,
	})
	fig.Add(plot.Series{
		Points:       xp,
		Color:        Red,
		LineWidth:    4,
		MarkerSize:   8,
		Transparency: 0.5,
		Closed:       true,
	})
	return fig
}

// inverseFigure shows the transformed shape in red
// and the result of the inverse transformation in green.
func inverseFigure(name string, xp, xi affine.Points) *plot.Figure {
	fig := newFigure(name, "Transformed (red) and Inverse-Transformed (green) Shapes")
	fig.Add(plot.Series{
		Points:     xp,
		Color:      Red,
		LineWidth:  4,
		MarkerSize: 8,
		Closed:     true,
	})
	fig.Add(plot.Series{
		Points:     xi,
		Color:      Green,
		LineWidth:  4,
		MarkerSize: 8,
		Closed:     true,
	})
	return fig
}

func newFigure(name, title string) *plot.Figure {
	return &plot.Figure{
		Name:   name,
		Title:  title,
		XLabel: "x",
		YLabel: "y",
		Axis:   box,
		Grid:   true,
	}
}
