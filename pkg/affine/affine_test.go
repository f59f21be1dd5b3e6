package affine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func rectangle(t *testing.T) Points {
	x, err := NewPoints([]float64{0, 4, 4, 0}, []float64{0, 0, 2, 2})
	require.NoError(t, err)
	return x
}

func example() Cartesian {
	return NewCartesian(2, 1, math.Pi/8, Vec2{2, 3})
}

func TestRotation(t *testing.T) {
	rot := Rotation3(math.Pi / 2)
	x, y, w := rot.Apply(1, 2, 1)

	assert.InDelta(t, -2, x, eps)
	assert.InDelta(t, 1, y, eps)
	assert.Equal(t, 1.0, w)

	// translating to the origin first should give the origin
	t0 := Translation3(-1, -2)
	x, y, _ = Compose(rot, t0).Apply(1, 2, 1)
	assert.InDelta(t, 0, x, eps)
	assert.InDelta(t, 0, y, eps)
}

func TestRotationOrthonormal(t *testing.T) {
	for _, angle := range []float64{0, math.Pi / 8, 1, math.Pi / 2, math.Pi, -2.5, 10} {
		r := Rotation2(angle)
		assert.True(t, r.Transpose().Mul(r).ApproxEqual(Identity2(), eps), "angle %v", angle)
		assert.InDelta(t, 1, r.Det(), eps)

		rh := Rotation3(angle)
		assert.True(t, rh.Transpose().Mul(rh).ApproxEqual(Identity3(), eps), "angle %v", angle)
	}
}

func TestCartesianForward(t *testing.T) {
	c := example()
	x := rectangle(t)
	xp := c.Forward(x)
	require.Equal(t, 4, xp.Len())

	sr := c.S.Mul(c.R)
	for i := 0; i < x.Len(); i++ {
		v := sr.Apply(x.At(i)).Add(c.T)
		assert.InDelta(t, v.X, xp.X[i], eps)
		assert.InDelta(t, v.Y, xp.Y[i], eps)
	}

	// (0,0) maps onto t
	assert.Equal(t, 2.0, xp.X[0])
	assert.Equal(t, 3.0, xp.Y[0])

	sin, cos := math.Sincos(math.Pi / 8)
	assert.InDelta(t, 8*cos+2, xp.X[1], eps)
	assert.InDelta(t, 4*sin+3, xp.Y[1], eps)
	assert.InDelta(t, 9.391036, xp.X[1], 1e-6)
	assert.InDelta(t, 4.530734, xp.Y[1], 1e-6)
	assert.InDelta(t, 7.860302, xp.X[2], 1e-6)
	assert.InDelta(t, 6.378493, xp.Y[2], 1e-6)
	assert.InDelta(t, 0.469266, xp.X[3], 1e-6)
	assert.InDelta(t, 4.847759, xp.Y[3], 1e-6)
}

func TestCartesianRoundTrip(t *testing.T) {
	c := example()
	x := rectangle(t)

	xi, err := c.Inverse(c.Forward(x))
	require.NoError(t, err)
	assert.True(t, xi.ApproxEqual(x, eps), "got\n%v", xi)
}

func TestCartesianSingular(t *testing.T) {
	c := NewCartesian(0, 1, math.Pi/8, Vec2{2, 3})
	_, err := c.Inverse(rectangle(t))
	require.Error(t, err)
	assert.True(t, IsSingular(err))

	h := c.Homogeneous()
	_, err = h.Inverse(rectangle(t).Augment())
	require.Error(t, err)
	assert.True(t, IsSingular(err))
}

func TestHomogeneousMatchesCartesian(t *testing.T) {
	c := example()
	h := NewHomogeneous(2, 1, math.Pi/8, 2, 3)
	x := rectangle(t)

	assert.True(t, c.Homogeneous().Matrix().ApproxEqual(h.Matrix(), eps))
	assert.True(t, h.Matrix().IsAffine())

	xc, err := h.Forward(x.Augment()).Cartesian()
	require.NoError(t, err)
	assert.True(t, xc.ApproxEqual(c.Forward(x), eps), "got\n%v", xc)
}

func TestHomogeneousRoundTrip(t *testing.T) {
	h := NewHomogeneous(2, 1, math.Pi/8, 2, 3)
	x := rectangle(t)

	xh, err := h.Inverse(h.Forward(x.Augment()))
	require.NoError(t, err)
	for _, w := range xh.W {
		assert.InDelta(t, 1, w, eps)
	}

	xc, err := xh.Cartesian()
	require.NoError(t, err)
	assert.True(t, xc.ApproxEqual(x, eps), "got\n%v", xc)
}

func TestCompositionOrder(t *testing.T) {
	h := NewHomogeneous(2, 1, math.Pi/8, 2, 3)

	// rotate, then scale, then translate
	x, y, _ := h.R.Apply(1, 0, 1)
	x, y, _ = h.S.Apply(x, y, 1)
	x, y, _ = h.T.Apply(x, y, 1)

	mx, my, _ := h.Matrix().Apply(1, 0, 1)
	assert.InDelta(t, x, mx, eps)
	assert.InDelta(t, y, my, eps)

	// the reversed order gives a different result
	rx, ry, _ := Compose(h.R, h.S, h.T).Apply(1, 0, 1)
	assert.False(t, math.Abs(rx-mx) < eps && math.Abs(ry-my) < eps)
}

func TestInvertChain(t *testing.T) {
	ms := []Mat3{
		Translation3(-3, 7),
		Scale3(0.5, 4),
		Rotation3(1.2),
		Translation3(1, 1),
	}
	inv, err := InvertChain(ms...)
	require.NoError(t, err)
	assert.True(t, inv.Mul(Compose(ms...)).ApproxEqual(Identity3(), eps))
	assert.True(t, Compose(ms...).Mul(inv).ApproxEqual(Identity3(), eps))

	direct, err := Compose(ms...).Inverse()
	require.NoError(t, err)
	assert.True(t, inv.ApproxEqual(direct, eps))

	_, err = InvertChain(Scale3(1, 0), Rotation3(1))
	assert.True(t, IsSingular(err))
}

func TestEmbed(t *testing.T) {
	m := Embed(Mat2{1, 2, 3, 4}, Vec2{5, 6})
	assert.Equal(t, Mat3{1, 2, 5, 3, 4, 6, 0, 0, 1}, m)
	assert.True(t, m.IsAffine())
	assert.Equal(t, Mat2{1, 2, 3, 4}, m.Linear())
	assert.Equal(t, Vec2{5, 6}, m.Translation())
}

func TestMat2Inverse(t *testing.T) {
	m := Mat2{2, 1, 7, 4}
	inv, err := m.Inverse()
	require.NoError(t, err)
	assert.True(t, m.Mul(inv).ApproxEqual(Identity2(), eps))

	_, err = Mat2{1, 2, 2, 4}.Inverse()
	assert.True(t, IsSingular(err))
}

func TestZeroWeight(t *testing.T) {
	h := HPoints{
		X: []float64{1, 2},
		Y: []float64{1, 2},
		W: []float64{1, 0},
	}
	_, err := h.Cartesian()
	require.Error(t, err)
	assert.True(t, IsZeroWeight(err))
	assert.False(t, IsSingular(err))

	// a projective bottom row can send a point to infinity
	p := Mat3{1, 0, 0, 0, 1, 0, 1, 0, 0}
	assert.False(t, p.IsAffine())
	_, err = p.Transform(HPoints{X: []float64{0}, Y: []float64{1}, W: []float64{1}}).Cartesian()
	assert.True(t, IsZeroWeight(err))
}

func TestScaledWeight(t *testing.T) {
	h := HPoints{
		X: []float64{4, -6},
		Y: []float64{2, 9},
		W: []float64{2, 3},
	}
	p, err := h.Cartesian()
	require.NoError(t, err)
	assert.Equal(t, []float64{2, -2}, p.X)
	assert.Equal(t, []float64{1, 3}, p.Y)
}

func TestNewPointsShape(t *testing.T) {
	_, err := NewPoints([]float64{1, 2}, []float64{1})
	require.Error(t, err)
	assert.True(t, IsShapeError(err))
}

func TestAugmentAndClose(t *testing.T) {
	x := rectangle(t)
	h := x.Augment()
	assert.Equal(t, []float64{1, 1, 1, 1}, h.W)
	assert.Equal(t, x.X, h.X)

	c := x.Closed()
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, x.At(0), c.At(4))
	assert.Equal(t, 4, x.Len())
}

func TestString(t *testing.T) {
	assert.Equal(t, "    2.0000    0.0000\n    0.0000    1.0000\n", Scale2(2, 1).String())
	assert.Equal(t, "    2.0000\n    3.0000\n", Vec2{2, 3}.String())
}
