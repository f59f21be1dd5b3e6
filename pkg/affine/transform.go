package affine

import (
	"fmt"
)

// Cartesian is the affine transformation x' = (S·R)·x + t,
// a rotation followed by a scaling and then a translation.
type Cartesian struct {
	S Mat2
	R Mat2
	T Vec2
}

// NewCartesian sets up the transformation from scale factors,
// a rotation angle in radians and a translation.
func NewCartesian(sx, sy, angle float64, t Vec2) Cartesian {
	return Cartesian{
		S: Scale2(sx, sy),
		R: Rotation2(angle),
		T: t,
	}
}

// Linear is the linear part S·R.
func (c Cartesian) Linear() Mat2 {
	return c.S.Mul(c.R)
}

// Forward computes X' = (S·R)·X + t.
func (c Cartesian) Forward(x Points) Points {
	return c.Linear().Transform(x).Translate(c.T)
}

// Inverse computes X = R⁻¹·S⁻¹·X' − R⁻¹·S⁻¹·t.
// Fails if S or R is singular.
func (c Cartesian) Inverse(xp Points) (Points, error) {
	ri, err := c.R.Inverse()
	if err != nil {
		return Points{}, fmt.Errorf("invert R: %w", err)
	}
	si, err := c.S.Inverse()
	if err != nil {
		return Points{}, fmt.Errorf("invert S: %w", err)
	}

	a := ri.Mul(si)
	offset := a.Apply(c.T)
	return a.Transform(xp).Translate(Vec2{-offset.X, -offset.Y}), nil
}

// Homogeneous returns the same transformation as homogeneous matrices.
func (c Cartesian) Homogeneous() Homogeneous {
	return Homogeneous{
		T: Translation3(c.T.X, c.T.Y),
		S: Embed(c.S, Vec2{}),
		R: Embed(c.R, Vec2{}),
	}
}

// Homogeneous is the affine transformation x'h = (Th·Sh·Rh)·xh
// in homogeneous coordinates.
type Homogeneous struct {
	T Mat3
	S Mat3
	R Mat3
}

// NewHomogeneous sets up the transformation from scale factors,
// a rotation angle in radians and a translation.
func NewHomogeneous(sx, sy, angle, tx, ty float64) Homogeneous {
	return Homogeneous{
		T: Translation3(tx, ty),
		S: Scale3(sx, sy),
		R: Rotation3(angle),
	}
}

// Matrix is the combined matrix Th·Sh·Rh.
func (h Homogeneous) Matrix() Mat3 {
	return Compose(h.T, h.S, h.R)
}

// InverseMatrix is Rh⁻¹·Sh⁻¹·Th⁻¹.
func (h Homogeneous) InverseMatrix() (Mat3, error) {
	return InvertChain(h.T, h.S, h.R)
}

// Forward computes X'h = (Th·Sh·Rh)·Xh.
func (h Homogeneous) Forward(xh HPoints) HPoints {
	return h.Matrix().Transform(xh)
}

// Inverse computes Xh = Rh⁻¹·Sh⁻¹·Th⁻¹·X'h.
// Fails if any of the factors is singular.
func (h Homogeneous) Inverse(xp HPoints) (HPoints, error) {
	m, err := h.InverseMatrix()
	if err != nil {
		return HPoints{}, err
	}
	return m.Transform(xp), nil
}
