package demo

import (
	"fmt"
	"io"
)

type echoer struct {
	w   io.Writer
	err error
}

func (e *echoer) line(s string) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w, s)
}

func (e *echoer) matrix(name string, m fmt.Stringer) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, "%s =\n\n%v\n", name, m)
}

// Echo writes the input, transformed and inverse-transformed shapes
// together with the matrices that produced them.
func (r *Result) Echo(w io.Writer) error {
	e := &echoer{w: w}

	e.line("== Affine transformation in Cartesian coordinates")
	e.line("")
	e.matrix("S", r.Cartesian.S)
	e.matrix("R", r.Cartesian.R)
	e.matrix("t", r.Cartesian.T)
	e.line("Input shape")
	e.matrix("X", r.X)
	e.line("Transformed shape")
	e.matrix("X_p", r.XP)
	e.line("Input shape")
	e.matrix("X_p", r.XP)
	e.line("This is the shape resulting from the inverse affine transformation")
	e.matrix("Xi", r.XI)

	e.line("== Affine transformation in homogeneous coordinates")
	e.line("")
	e.matrix("Sh", r.Homogeneous.S)
	e.matrix("Rh", r.Homogeneous.R)
	e.matrix("Th", r.Homogeneous.T)
	e.line("Input shape")
	e.matrix("X", r.X)
	e.matrix("Xh", r.XH)
	e.line("Transformed shape")
	e.matrix("X_p", r.XHP)
	e.matrix("Xc", r.XC)
	e.line("Input shape")
	e.matrix("X_p", r.XHP)
	e.line("This is the shape resulting from the inverse affine transformation")
	e.matrix("Xi", r.XHI)
	e.matrix("Xc", r.XCI)

	return e.err
}
