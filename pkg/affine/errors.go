package affine

import (
	"errors"
	"fmt"
)

type singularError struct {
	message string
}

func (s singularError) Error() string {
	return s.message
}

func newSingular(msg string, v ...interface{}) error {
	return singularError{fmt.Sprintf("singular matrix: "+msg, v...)}
}

// IsSingular checks if the given error was caused by an attempt to invert a
// singular matrix.
func IsSingular(err error) bool {
	var s singularError
	return errors.As(err, &s)
}

type zeroWeightError struct {
	column int
}

func (z zeroWeightError) Error() string {
	return fmt.Sprintf("homogeneous coordinate is zero in column %d", z.column)
}

// IsZeroWeight checks if the given error is the result of converting a
// homogeneous point with a zero third coordinate to Cartesian coordinates.
func IsZeroWeight(err error) bool {
	var z zeroWeightError
	return errors.As(err, &z)
}

type shapeError struct {
	message string
}

func (s shapeError) Error() string {
	return s.message
}

func newShapeError(msg string, v ...interface{}) error {
	return shapeError{fmt.Sprintf(msg, v...)}
}

// IsShapeError checks if the given error was caused by point rows of
// mismatched length.
func IsShapeError(err error) bool {
	var s shapeError
	return errors.As(err, &s)
}
