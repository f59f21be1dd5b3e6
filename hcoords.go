// Package hcoords demonstrates 2-D affine transformations in Cartesian and
// homogeneous coordinates.
//
// The linear algebra lives in pkg/affine, the example scenario in pkg/demo
// and the figure rendering in pkg/plot.
package hcoords

import (
	"github.com/akeil/hcoords/internal/logging"
)

// SetLogLevel sets the level for the package loggers.
// Unknown names disable logging.
func SetLogLevel(level string) {
	lvl, ok := logging.ParseLevel(level)
	if !ok {
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}
