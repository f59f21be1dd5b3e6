package affine

import (
	"fmt"
	"math"
)

// Mat3 is a 3x3 matrix in row-major order, used for transformations in
// homogeneous coordinates.
//
//  m[0]  m[1]  m[2]
//  m[3]  m[4]  m[5]
//  m[6]  m[7]  m[8]
//
type Mat3 [9]float64

func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Scale3 creates a scaling matrix:
//
//  sx  0   0
//  0   sy  0
//  0   0   1
//
func Scale3(sx, sy float64) Mat3 {
	m := Identity3()
	m[0] = sx
	m[4] = sy
	return m
}

// Rotation3 creates a counter-clockwise rotation matrix:
//
//  cos(angle)   -sin(angle)    0
//  sin(angle)    cos(angle)    0
//  0             0             1
//
func Rotation3(angle float64) Mat3 {
	sin, cos := math.Sincos(angle)

	m := Identity3()
	m[0] = cos
	m[1] = -sin

	m[3] = sin
	m[4] = cos

	return m
}

// Translation3 creates a translation matrix:
//
//  1  0  dx
//  0  1  dy
//  0  0  1
//
func Translation3(dx, dy float64) Mat3 {
	m := Identity3()

	m[2] = dx
	m[5] = dy

	return m
}

// Embed creates the homogeneous matrix for the Cartesian transformation
// x' = a·x + t. The linear part goes to the top-left block and the
// translation to the last column.
func Embed(a Mat2, t Vec2) Mat3 {
	return Mat3{
		a[0], a[1], t.X,
		a[2], a[3], t.Y,
		0, 0, 1,
	}
}

// Linear returns the top-left 2x2 block.
func (m Mat3) Linear() Mat2 {
	return Mat2{
		m[0], m[1],
		m[3], m[4],
	}
}

// Translation returns the first two entries of the last column.
func (m Mat3) Translation() Vec2 {
	return Vec2{m[2], m[5]}
}

// IsAffine tells whether the bottom row is [0 0 1].
func (m Mat3) IsAffine() bool {
	return m[6] == 0 && m[7] == 0 && m[8] == 1
}

// Mul returns the matrix product m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3

	r[0] = m[0]*o[0] + m[1]*o[3] + m[2]*o[6]
	r[1] = m[0]*o[1] + m[1]*o[4] + m[2]*o[7]
	r[2] = m[0]*o[2] + m[1]*o[5] + m[2]*o[8]

	r[3] = m[3]*o[0] + m[4]*o[3] + m[5]*o[6]
	r[4] = m[3]*o[1] + m[4]*o[4] + m[5]*o[7]
	r[5] = m[3]*o[2] + m[4]*o[5] + m[5]*o[8]

	r[6] = m[6]*o[0] + m[7]*o[3] + m[8]*o[6]
	r[7] = m[6]*o[1] + m[7]*o[4] + m[8]*o[7]
	r[8] = m[6]*o[2] + m[7]*o[5] + m[8]*o[8]

	return r
}

// Apply multiplies the matrix with the homogeneous column vector (x, y, w).
func (m Mat3) Apply(x, y, w float64) (float64, float64, float64) {
	tx := m[0]*x + m[1]*y + m[2]*w
	ty := m[3]*x + m[4]*y + m[5]*w
	tw := m[6]*x + m[7]*y + m[8]*w
	return tx, ty, tw
}

// Transform multiplies the matrix with every column of h.
func (m Mat3) Transform(h HPoints) HPoints {
	n := h.Len()
	out := HPoints{
		X: make([]float64, n),
		Y: make([]float64, n),
		W: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		out.X[i], out.Y[i], out.W[i] = m.Apply(h.X[i], h.Y[i], h.W[i])
	}
	return out
}

func (m Mat3) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Inverse returns the inverse of m, computed from the adjugate.
// An error is returned if m is singular.
func (m Mat3) Inverse() (Mat3, error) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Mat3{}, newSingular("3x3 determinant is %v", det)
	}

	inv := 1 / det
	return Mat3{
		(m[4]*m[8] - m[5]*m[7]) * inv,
		(m[2]*m[7] - m[1]*m[8]) * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,

		(m[5]*m[6] - m[3]*m[8]) * inv,
		(m[0]*m[8] - m[2]*m[6]) * inv,
		(m[2]*m[3] - m[0]*m[5]) * inv,

		(m[3]*m[7] - m[4]*m[6]) * inv,
		(m[1]*m[6] - m[0]*m[7]) * inv,
		(m[0]*m[4] - m[1]*m[3]) * inv,
	}, nil
}

// ApproxEqual compares two matrices element-wise with tolerance eps.
func (m Mat3) ApproxEqual(o Mat3, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

func (m Mat3) String() string {
	return formatRows([][]float64{
		{m[0], m[1], m[2]},
		{m[3], m[4], m[5]},
		{m[6], m[7], m[8]},
	})
}

// Compose multiplies the given matrices in order, ms[0]·ms[1]·...
// The right-most matrix is the first transformation applied to a point.
// Compose with no arguments returns the identity.
func Compose(ms ...Mat3) Mat3 {
	r := Identity3()
	for _, m := range ms {
		r = r.Mul(m)
	}
	return r
}

// InvertChain returns the inverse of Compose(ms...).
// It is computed as the product of the individual inverses
// in reversed order, so a singular factor is reported as such.
func InvertChain(ms ...Mat3) (Mat3, error) {
	r := Identity3()
	for i := len(ms) - 1; i >= 0; i-- {
		inv, err := ms[i].Inverse()
		if err != nil {
			return Mat3{}, fmt.Errorf("factor %d: %w", i, err)
		}
		r = r.Mul(inv)
	}
	return r, nil
}
