package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultSettings() settings {
	return settings{
		scaleX: 2,
		scaleY: 1,
		angle:  22.5,
		tx:     2,
		ty:     3,
	}
}

func TestDoPlot(t *testing.T) {
	dir, err := ioutil.TempDir("", "hcoords")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	err = doPlot(defaultSettings(), plotOptions{
		outDir: dir,
		format: "png",
		merge:  true,
		width:  400,
		height: 300,
	})
	require.NoError(t, err)

	for _, name := range []string{
		"01-cartesian.png",
		"02-cartesian-inverse.png",
		"03-homogeneous.png",
		"04-homogeneous-inverse.png",
	} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	data, err := ioutil.ReadFile(filepath.Join(dir, "figures.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestDoPlotSingular(t *testing.T) {
	s := defaultSettings()
	s.scaleX = 0

	err := doPlot(s, plotOptions{outDir: ".", format: "png"})
	assert.Error(t, err)
}

func TestScenarioAngle(t *testing.T) {
	sc := defaultSettings().scenario()
	assert.InDelta(t, 0.39269908169872414, sc.Angle, 1e-12)
	assert.Equal(t, 3.0, sc.Translation.Y)
}
