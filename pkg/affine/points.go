package affine

import (
	"math"
)

// Points is a 2xN matrix of Cartesian coordinates.
// Column i is the point (X[i], Y[i]).
type Points struct {
	X []float64
	Y []float64
}

// NewPoints creates a point matrix from the given rows.
// The rows are copied. An error is returned if they differ in length.
func NewPoints(px, py []float64) (Points, error) {
	if len(px) != len(py) {
		return Points{}, newShapeError("rows have different length: %d vs. %d", len(px), len(py))
	}

	p := Points{
		X: make([]float64, len(px)),
		Y: make([]float64, len(py)),
	}
	copy(p.X, px)
	copy(p.Y, py)
	return p, nil
}

// Len is the number of points (columns).
func (p Points) Len() int {
	return len(p.X)
}

// At returns the point in column i.
func (p Points) At(i int) Vec2 {
	return Vec2{p.X[i], p.Y[i]}
}

// Translate adds t to every column.
func (p Points) Translate(t Vec2) Points {
	n := p.Len()
	out := Points{
		X: make([]float64, n),
		Y: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		out.X[i] = p.X[i] + t.X
		out.Y[i] = p.Y[i] + t.Y
	}
	return out
}

// Closed returns a copy with the first point repeated at the end,
// which turns the vertex list into a closed polygon line.
func (p Points) Closed() Points {
	if p.Len() == 0 {
		return p
	}
	return Points{
		X: append(append([]float64{}, p.X...), p.X[0]),
		Y: append(append([]float64{}, p.Y...), p.Y[0]),
	}
}

// Augment converts to homogeneous coordinates by appending a row of ones.
func (p Points) Augment() HPoints {
	n := p.Len()
	h := HPoints{
		X: make([]float64, n),
		Y: make([]float64, n),
		W: make([]float64, n),
	}
	copy(h.X, p.X)
	copy(h.Y, p.Y)
	for i := range h.W {
		h.W[i] = 1
	}
	return h
}

// ApproxEqual compares two point sets element-wise with tolerance eps.
func (p Points) ApproxEqual(o Points, eps float64) bool {
	if p.Len() != o.Len() {
		return false
	}
	for i := range p.X {
		if math.Abs(p.X[i]-o.X[i]) > eps || math.Abs(p.Y[i]-o.Y[i]) > eps {
			return false
		}
	}
	return true
}

func (p Points) String() string {
	return formatRows([][]float64{p.X, p.Y})
}

// HPoints is a 3xN matrix of homogeneous coordinates.
// Column i is the point (X[i], Y[i], W[i]).
type HPoints struct {
	X []float64
	Y []float64
	W []float64
}

// Len is the number of points (columns).
func (h HPoints) Len() int {
	return len(h.X)
}

// Cartesian converts back to Cartesian coordinates by dividing
// the first two rows by the third.
//
// An error is returned if any third coordinate is zero
// since the point has no Cartesian equivalent then.
func (h HPoints) Cartesian() (Points, error) {
	n := h.Len()
	p := Points{
		X: make([]float64, n),
		Y: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		w := h.W[i]
		if w == 0 {
			return Points{}, zeroWeightError{column: i}
		}
		p.X[i] = h.X[i] / w
		p.Y[i] = h.Y[i] / w
	}
	return p, nil
}

func (h HPoints) String() string {
	return formatRows([][]float64{h.X, h.Y, h.W})
}
