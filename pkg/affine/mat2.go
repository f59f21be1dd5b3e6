package affine

import (
	"fmt"
	"math"
	"strings"
)

// Vec2 is a 2x1 column vector.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) String() string {
	return formatRows([][]float64{{v.X}, {v.Y}})
}

// Mat2 is a 2x2 matrix in row-major order.
//
//  m[0]  m[1]
//  m[2]  m[3]
//
type Mat2 [4]float64

func Identity2() Mat2 {
	return Mat2{
		1, 0,
		0, 1,
	}
}

// Scale2 creates a scaling matrix:
//
//  sx  0
//  0   sy
//
func Scale2(sx, sy float64) Mat2 {
	return Mat2{
		sx, 0,
		0, sy,
	}
}

// Rotation2 creates a counter-clockwise rotation matrix for the given angle
// in radians:
//
//  cos(angle)  -sin(angle)
//  sin(angle)   cos(angle)
//
func Rotation2(angle float64) Mat2 {
	sin, cos := math.Sincos(angle)
	return Mat2{
		cos, -sin,
		sin, cos,
	}
}

// Mul returns the matrix product m·o.
func (m Mat2) Mul(o Mat2) Mat2 {
	return Mat2{
		m[0]*o[0] + m[1]*o[2],
		m[0]*o[1] + m[1]*o[3],

		m[2]*o[0] + m[3]*o[2],
		m[2]*o[1] + m[3]*o[3],
	}
}

// Apply multiplies the matrix with the column vector v.
func (m Mat2) Apply(v Vec2) Vec2 {
	return Vec2{
		m[0]*v.X + m[1]*v.Y,
		m[2]*v.X + m[3]*v.Y,
	}
}

// Transform multiplies the matrix with every column of p.
func (m Mat2) Transform(p Points) Points {
	n := p.Len()
	out := Points{
		X: make([]float64, n),
		Y: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		out.X[i] = m[0]*p.X[i] + m[1]*p.Y[i]
		out.Y[i] = m[2]*p.X[i] + m[3]*p.Y[i]
	}
	return out
}

func (m Mat2) Det() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

func (m Mat2) Transpose() Mat2 {
	return Mat2{
		m[0], m[2],
		m[1], m[3],
	}
}

// Inverse returns the inverse of m.
// An error is returned if m is singular.
func (m Mat2) Inverse() (Mat2, error) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Mat2{}, newSingular("2x2 determinant is %v", det)
	}

	inv := 1 / det
	return Mat2{
		m[3] * inv, -m[1] * inv,
		-m[2] * inv, m[0] * inv,
	}, nil
}

// ApproxEqual compares two matrices element-wise with tolerance eps.
func (m Mat2) ApproxEqual(o Mat2, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

func (m Mat2) String() string {
	return formatRows([][]float64{
		{m[0], m[1]},
		{m[2], m[3]},
	})
}

// formatRows writes a matrix with one line per row and right aligned columns.
func formatRows(rows [][]float64) string {
	var sb strings.Builder
	for _, row := range rows {
		for _, v := range row {
			// avoid printing "-0.0000"
			if v == 0 {
				v = 0
			}
			fmt.Fprintf(&sb, "%10.4f", v)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
