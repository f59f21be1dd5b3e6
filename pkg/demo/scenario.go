// Package demo runs the rectangle example through the Cartesian and the
// homogeneous form of the same affine transformation.
package demo

import (
	"math"

	"github.com/akeil/hcoords"
	"github.com/akeil/hcoords/internal/logging"
	"github.com/akeil/hcoords/pkg/affine"
)

// Scenario holds the inputs of the example.
type Scenario struct {
	PX, PY []float64
	ScaleX float64
	ScaleY float64
	// Angle is the rotation angle in radians.
	Angle       float64
	Translation affine.Vec2
}

// DefaultScenario is a 4x2 rectangle at the origin, rotated by pi/8,
// scaled by 2 along x and translated by (2, 3).
func DefaultScenario() Scenario {
	return Scenario{
		PX:          []float64{0, 4, 4, 0},
		PY:          []float64{0, 0, 2, 2},
		ScaleX:      2,
		ScaleY:      1,
		Angle:       math.Pi / 8,
		Translation: affine.Vec2{X: 2, Y: 3},
	}
}

// Cartesian is the transformation in Cartesian form.
func (s Scenario) Cartesian() affine.Cartesian {
	return affine.NewCartesian(s.ScaleX, s.ScaleY, s.Angle, s.Translation)
}

// Homogeneous is the transformation in homogeneous form.
func (s Scenario) Homogeneous() affine.Homogeneous {
	return affine.NewHomogeneous(s.ScaleX, s.ScaleY, s.Angle, s.Translation.X, s.Translation.Y)
}

// Result holds the shapes computed by Run.
type Result struct {
	Scenario    Scenario
	Cartesian   affine.Cartesian
	Homogeneous affine.Homogeneous

	// X is the input shape, XP = S·R·X + t and XI the inverse of XP.
	X  affine.Points
	XP affine.Points
	XI affine.Points

	// XH is X augmented, XHP = Th·Sh·Rh·XH, XC its Cartesian form.
	XH  affine.HPoints
	XHP affine.HPoints
	XC  affine.Points
	// XHI = Rh⁻¹·Sh⁻¹·Th⁻¹·XHP, XCI its Cartesian form.
	XHI affine.HPoints
	XCI affine.Points
}

// Run computes forward and inverse transformation of the shape,
// once in Cartesian and once in homogeneous coordinates.
func (s Scenario) Run() (*Result, error) {
	x, err := affine.NewPoints(s.PX, s.PY)
	if err != nil {
		return nil, hcoords.Wrap(err, "input shape")
	}

	r := &Result{
		Scenario:    s,
		Cartesian:   s.Cartesian(),
		Homogeneous: s.Homogeneous(),
		X:           x,
	}

	logging.Debug("Cartesian transform of %d points", x.Len())
	r.XP = r.Cartesian.Forward(x)
	r.XI, err = r.Cartesian.Inverse(r.XP)
	if err != nil {
		return nil, hcoords.Wrap(err, "cartesian inverse")
	}

	logging.Debug("Homogeneous transform of %d points", x.Len())
	r.XH = x.Augment()
	r.XHP = r.Homogeneous.Forward(r.XH)
	r.XC, err = r.XHP.Cartesian()
	if err != nil {
		return nil, hcoords.Wrap(err, "homogeneous to cartesian")
	}

	r.XHI, err = r.Homogeneous.Inverse(r.XHP)
	if err != nil {
		return nil, hcoords.Wrap(err, "homogeneous inverse")
	}
	r.XCI, err = r.XHI.Cartesian()
	if err != nil {
		return nil, hcoords.Wrap(err, "homogeneous inverse to cartesian")
	}

	return r, nil
}
