// Package design provides IIR filter design in zero-pole-gain form:
// analogue prototypes, frequency-band transforms, bilinear mapping, the
// digital design facade, and conversions to transfer-function coefficients.
package design

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for out-of-range design parameters.
var ErrInvalidArgument = errors.New("design: invalid argument")

// ZPK is a rational transfer function in zero-pole-gain form. For real
// filters, complex zeros and poles appear in conjugate pairs.
type ZPK struct {
	Z []complex128
	P []complex128
	K float64
}

// Degree returns len(P) - len(Z), the relative degree of the filter.
func (f ZPK) Degree() int {
	return len(f.P) - len(f.Z)
}

func (f ZPK) String() string {
	return fmt.Sprintf("k: %v\nz: %v\np: %v", f.K, f.Z, f.P)
}

// Type selects the analogue approximation family.
type Type int

const (
	Butterworth Type = iota
	Chebyshev1
	Chebyshev2
)

func (t Type) String() string {
	switch t {
	case Butterworth:
		return "butterworth"
	case Chebyshev1:
		return "chebyshev1"
	case Chebyshev2:
		return "chebyshev2"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Mode selects the frequency response shape.
type Mode int

const (
	Lowpass Mode = iota
	Highpass
	Bandpass
	Bandstop
)

func (m Mode) String() string {
	switch m {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	case Bandpass:
		return "bandpass"
	case Bandstop:
		return "bandstop"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// prodNeg returns prod(-x_i) over the given roots (1 for an empty set).
func prodNeg(roots []complex128) complex128 {
	p := complex(1, 0)
	for _, r := range roots {
		p *= -r
	}
	return p
}
