package hcoords

import (
	"fmt"

	"github.com/akeil/hcoords/pkg/affine"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %w", msg, err)
}

// IsSingular checks if the given error was caused by inverting a singular
// matrix.
func IsSingular(err error) bool {
	return affine.IsSingular(err)
}

// IsZeroWeight checks if the given error was caused by a homogeneous point
// with a zero third coordinate.
func IsZeroWeight(err error) bool {
	return affine.IsZeroWeight(err)
}
