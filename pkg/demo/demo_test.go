package demo

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/hcoords"
)

const eps = 1e-9

func TestRunDefault(t *testing.T) {
	r, err := DefaultScenario().Run()
	require.NoError(t, err)

	// (0,0) maps onto t
	assert.Equal(t, 2.0, r.XP.X[0])
	assert.Equal(t, 3.0, r.XP.Y[0])

	assert.True(t, r.XI.ApproxEqual(r.X, eps), "cartesian round trip:\n%v", r.XI)
	assert.True(t, r.XC.ApproxEqual(r.XP, eps), "homogeneous differs from cartesian:\n%v", r.XC)
	assert.True(t, r.XCI.ApproxEqual(r.X, eps), "homogeneous round trip:\n%v", r.XCI)
	for _, w := range r.XHP.W {
		assert.Equal(t, 1.0, w)
	}
}

func TestRunOtherParameters(t *testing.T) {
	s := DefaultScenario()
	s.ScaleX = 0.5
	s.ScaleY = -3
	s.Angle = 2 * math.Pi / 3
	s.Translation.X = -1

	r, err := s.Run()
	require.NoError(t, err)
	assert.True(t, r.XI.ApproxEqual(r.X, eps))
	assert.True(t, r.XC.ApproxEqual(r.XP, eps))
	assert.True(t, r.XCI.ApproxEqual(r.X, eps))
}

func TestRunSingular(t *testing.T) {
	s := DefaultScenario()
	s.ScaleY = 0

	_, err := s.Run()
	require.Error(t, err)
	assert.True(t, hcoords.IsSingular(err))
	assert.Contains(t, err.Error(), "cartesian inverse")
}

func TestRunShape(t *testing.T) {
	s := DefaultScenario()
	s.PY = s.PY[:3]

	_, err := s.Run()
	assert.Error(t, err)
}

func TestEcho(t *testing.T) {
	r, err := DefaultScenario().Run()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Echo(&buf))
	s := buf.String()

	assert.Contains(t, s, "Input shape")
	assert.Contains(t, s, "Transformed shape")
	assert.Contains(t, s, "This is the shape resulting from the inverse affine transformation")
	assert.Contains(t, s, "Th =\n\n    1.0000    0.0000    2.0000\n")
	assert.Equal(t, 2, strings.Count(s, "Xi ="))
}

func TestFigures(t *testing.T) {
	r, err := DefaultScenario().Run()
	require.NoError(t, err)

	figs := r.Figures()
	require.Len(t, figs, 4)
	for _, f := range figs {
		require.NoError(t, f.Validate())
		require.Len(t, f.Series, 2)
		assert.True(t, f.Grid)
	}

	assert.Equal(t, forwardTitle, figs[0].Title)
	assert.Equal(t, Blue, figs[0].Series[0].Color)
	assert.Equal(t, 0.5, figs[0].Series[1].Transparency)
	assert.Equal(t, Green, figs[3].Series[1].Color)
	assert.Equal(t, "04-homogeneous-inverse", figs[3].Name)
}
