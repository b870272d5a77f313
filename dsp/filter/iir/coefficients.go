// Package iir implements streaming IIR filtering in Direct Form II
// Transposed, with carried state and multi-channel batch variants.
package iir

import (
	"errors"
	"fmt"
)

// Errors returned by coefficient validation and filtering.
var (
	ErrEmptyCoefficients = errors.New("iir: coefficient arrays must not be empty")
	ErrZeroLeadingA      = errors.New("iir: leading denominator coefficient is zero")
	ErrStateLength       = errors.New("iir: state length mismatch")
	ErrChannelCount      = errors.New("iir: channel count mismatch")
)

// Coefficients holds a transfer function as numerator B and denominator A.
// Index is delay: B[i] applies to x[k-i] and A[i] to y[k-i], the usual
// difference-equation convention. Conversions from pole-zero form produce
// equal-length arrays where this coincides with descending polynomial order.
type Coefficients struct {
	B []float64
	A []float64
}

// Normalize returns coefficients scaled so A[0] == 1, with the shorter array
// zero-extended at the tail so len(B) == len(A). Tail extension preserves the
// delay-indexed transfer function.
func (c Coefficients) Normalize() (Coefficients, error) {
	if len(c.B) == 0 || len(c.A) == 0 {
		return Coefficients{}, ErrEmptyCoefficients
	}
	if c.A[0] == 0 {
		return Coefficients{}, ErrZeroLeadingA
	}

	n := len(c.B)
	if len(c.A) > n {
		n = len(c.A)
	}

	out := Coefficients{
		B: make([]float64, n),
		A: make([]float64, n),
	}

	a0 := c.A[0]
	copy(out.B, c.B)
	copy(out.A, c.A)

	for i := range out.B {
		out.B[i] /= a0
		out.A[i] /= a0
	}

	return out, nil
}

// Order returns the number of state elements the filter needs, i.e.
// max(len(B), len(A)) - 1.
func (c Coefficients) Order() int {
	n := len(c.B)
	if len(c.A) > n {
		n = len(c.A)
	}
	if n == 0 {
		return 0
	}
	return n - 1
}

func (c Coefficients) String() string {
	return fmt.Sprintf("b: %v\na: %v", c.B, c.A)
}
