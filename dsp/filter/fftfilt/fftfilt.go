// Package fftfilt applies IIR filters in the frequency domain: the filter's
// effective impulse response is measured and truncated, then convolved with
// the input through FFT multiplication.
package fftfilt

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/fabio-terranova/nodex/dsp/core"
	"github.com/fabio-terranova/nodex/dsp/filter/iir"
	"github.com/fabio-terranova/nodex/internal/polyroot"
)

// Defaults for the effective impulse-response truncation.
const (
	DefaultEpsilon     = 1e-12
	DefaultMaxIRLength = 10000
)

// Errors returned by the FFT filtering routines.
var (
	ErrUnstable   = errors.New("fftfilt: filter has a pole on or outside the unit circle")
	ErrEmptyInput = errors.New("fftfilt: empty input")
)

type config struct {
	epsilon     float64
	maxIRLength int
}

// Option configures the impulse-response truncation.
type Option func(*config)

// WithEpsilon sets the truncation threshold: the impulse response is cut
// after the last sample with magnitude >= epsilon.
func WithEpsilon(epsilon float64) Option {
	return func(c *config) {
		if epsilon > 0 {
			c.epsilon = epsilon
		}
	}
}

// WithMaxIRLength caps the measured impulse-response length.
func WithMaxIRLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxIRLength = n
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{
		epsilon:     DefaultEpsilon,
		maxIRLength: DefaultMaxIRLength,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// CheckStable verifies that every pole of the transfer function lies
// strictly inside the unit circle. Returns ErrUnstable otherwise.
func CheckStable(c iir.Coefficients) error {
	norm, err := c.Normalize()
	if err != nil {
		return err
	}

	roots, err := polyroot.Roots(norm.A)
	if err != nil {
		return fmt.Errorf("fftfilt: denominator root finding failed: %w", err)
	}

	for _, r := range roots {
		if cmplx.Abs(r) >= 1 {
			return fmt.Errorf("%w: |pole| = %g", ErrUnstable, cmplx.Abs(r))
		}
	}

	return nil
}

// EffectiveIR measures the filter's impulse response by filtering a unit
// impulse, then truncates it after the last sample whose magnitude reaches
// the truncation threshold.
func EffectiveIR(c iir.Coefficients, opts ...Option) ([]float64, error) {
	cfg := applyOptions(opts)

	impulse := make([]float64, cfg.maxIRLength)
	impulse[0] = 1

	ir, err := iir.Apply(c, impulse)
	if err != nil {
		return nil, err
	}

	length := 1
	for i := len(ir) - 1; i > 0; i-- {
		if math.Abs(ir[i]) >= cfg.epsilon {
			length = i + 1
			break
		}
	}

	return ir[:length], nil
}

// FastConvolve computes the full linear convolution of f and g by
// zero-padding both to the next power of two >= len(f)+len(g)-1,
// multiplying the forward transforms, and inverting. The result has length
// len(f)+len(g)-1.
func FastConvolve(f, g []float64) ([]float64, error) {
	if len(f) == 0 || len(g) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(f) + len(g) - 1
	fftSize := core.NextPow2(n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("fftfilt: failed to create FFT plan: %w", err)
	}

	fPadded := make([]complex128, fftSize)
	for i, v := range f {
		fPadded[i] = complex(v, 0)
	}
	gPadded := make([]complex128, fftSize)
	for i, v := range g {
		gPadded[i] = complex(v, 0)
	}

	if err := plan.Forward(fPadded, fPadded); err != nil {
		return nil, fmt.Errorf("fftfilt: forward FFT failed: %w", err)
	}
	if err := plan.Forward(gPadded, gPadded); err != nil {
		return nil, fmt.Errorf("fftfilt: forward FFT failed: %w", err)
	}

	for i := range fPadded {
		fPadded[i] *= gPadded[i]
	}

	if err := plan.Inverse(fPadded, fPadded); err != nil {
		return nil, fmt.Errorf("fftfilt: inverse FFT failed: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(fPadded[i])
	}

	return out, nil
}

// Apply filters x through the transfer function in the frequency domain and
// truncates the result to len(x). The filter must be stable: the effective
// impulse-response measurement diverges otherwise.
func Apply(c iir.Coefficients, x []float64, opts ...Option) ([]float64, error) {
	if err := CheckStable(c); err != nil {
		return nil, err
	}

	ir, err := EffectiveIR(c, opts...)
	if err != nil {
		return nil, err
	}

	y, err := FastConvolve(ir, x)
	if err != nil {
		return nil, err
	}

	if len(y) > len(x) {
		y = y[:len(x)]
	}

	return y, nil
}
