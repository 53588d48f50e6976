// Package fullmat reads and writes dense matrices stored in a small
// column-major text format:
//
//	<header line, ignored>
//	<rows> <cols>
//	<values...>
//
// A file with rows*cols values holds a real matrix and a file with
// 2*rows*cols values holds a complex one, stored as interleaved real and
// imaginary parts. The values 1e308 and -1e308 stand for +Inf and -Inf.
package fullmat

import (
	"gonum.org/v1/gonum/mat"
)

type Kind int

const (
	KindEmpty Kind = iota
	KindReal
	KindComplex
)

func (k Kind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindComplex:
		return "complex"
	default:
		return "empty"
	}
}

// Matrix holds either a real or a complex dense matrix. The zero value is
// empty.
type Matrix struct {
	re *mat.Dense
	cx *mat.CDense
}

func NewReal(d *mat.Dense) Matrix {
	return Matrix{re: d}
}

func NewComplex(c *mat.CDense) Matrix {
	return Matrix{cx: c}
}

func (m Matrix) Kind() Kind {
	switch {
	case m.re != nil:
		return KindReal
	case m.cx != nil:
		return KindComplex
	default:
		return KindEmpty
	}
}

func (m Matrix) Dims() (rows, cols int) {
	switch {
	case m.re != nil:
		return m.re.Dims()
	case m.cx != nil:
		return m.cx.Dims()
	default:
		return 0, 0
	}
}

func (m Matrix) Real() (*mat.Dense, bool) {
	return m.re, m.re != nil
}

func (m Matrix) Complex() (*mat.CDense, bool) {
	return m.cx, m.cx != nil
}

// At returns the element at row i, column j. Elements of a real matrix are
// returned with a zero imaginary part. At panics if m is empty.
func (m Matrix) At(i, j int) complex128 {
	switch {
	case m.re != nil:
		return complex(m.re.At(i, j), 0)
	case m.cx != nil:
		return m.cx.At(i, j)
	default:
		panic("fullmat: At on empty Matrix")
	}
}
