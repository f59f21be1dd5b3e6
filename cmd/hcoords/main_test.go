package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunShow(t *testing.T) {
	s := defaultSettings()
	s.logLevel = "none"
	assert.NoError(t, run("show", s, plotOptions{}))
}

func TestRunUnknown(t *testing.T) {
	err := run("frobnicate", defaultSettings(), plotOptions{})
	assert.EqualError(t, err, `unknown command: "frobnicate"`)
}
