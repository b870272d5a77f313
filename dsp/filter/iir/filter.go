package iir

import "github.com/fabio-terranova/nodex/dsp/core"

// Filter is a streaming Direct Form II Transposed IIR filter. The state
// vector is carried across Process calls, so a long signal may be filtered
// in arbitrary block sizes with identical results.
type Filter struct {
	coeffs Coefficients
	state  []float64
}

// New creates a streaming filter from the given coefficients. The
// coefficients are normalized (A[0] == 1, equal lengths) up front.
func New(c Coefficients) (*Filter, error) {
	norm, err := c.Normalize()
	if err != nil {
		return nil, err
	}

	return &Filter{
		coeffs: norm,
		state:  make([]float64, norm.Order()),
	}, nil
}

// Coefficients returns the normalized coefficients in use.
func (f *Filter) Coefficients() Coefficients {
	return f.coeffs
}

// State returns the current state vector (length Order()).
func (f *Filter) State() []float64 {
	return f.state
}

// Reset zeroes the filter state.
func (f *Filter) Reset() {
	core.Zero(f.state)
}

// Process filters x, carrying state across calls, and returns a new slice.
func (f *Filter) Process(x []float64) []float64 {
	y := make([]float64, len(x))
	f.ProcessTo(y, x)
	return y
}

// ProcessTo filters x into y. The two slices must have the same length and
// may alias.
func (f *Filter) ProcessTo(y, x []float64) {
	applyDF2T(f.coeffs, y, x, f.state)
}

// applyDF2T runs the Direct Form II Transposed recurrence:
//
//	y[k]      = s[0] + b[0]*x[k]
//	s[0..n-2] = s[1..n-1] + b[1..n-1]*x[k] - a[1..n-1]*y[k]
//	s[n-1]    = b[n]*x[k] - a[n]*y[k]
//
// The tail assignment overlaps the shift and must happen after it.
// Coefficients must be normalized; len(s) must equal len(b)-1.
func applyDF2T(c Coefficients, y, x, s []float64) {
	b, a := c.B, c.A
	n := len(s)

	if n == 0 {
		for k, xk := range x {
			y[k] = b[0] * xk
		}
		return
	}

	for k, xk := range x {
		yk := s[0] + b[0]*xk
		y[k] = yk

		for i := 0; i < n-1; i++ {
			s[i] = s[i+1] + b[i+1]*xk - a[i+1]*yk
		}
		s[n-1] = b[n]*xk - a[n]*yk
	}
}

// Apply filters x with a fresh zero state and returns the result. This is
// the batch variant: the state is discarded afterwards.
func Apply(c Coefficients, x []float64) ([]float64, error) {
	f, err := New(c)
	if err != nil {
		return nil, err
	}
	return f.Process(x), nil
}

// ApplyWithState filters x using the caller's state vector, mutating it in
// place. The state must have length c.Order() after normalization.
func ApplyWithState(c Coefficients, x, state []float64) ([]float64, error) {
	norm, err := c.Normalize()
	if err != nil {
		return nil, err
	}
	if len(state) != norm.Order() {
		return nil, ErrStateLength
	}

	y := make([]float64, len(x))
	applyDF2T(norm, y, x, state)
	return y, nil
}
