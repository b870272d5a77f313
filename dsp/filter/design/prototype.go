package design

import (
	"math"
	"math/cmplx"

	"github.com/fabio-terranova/nodex/dsp/core"
)

// ButterworthPrototype returns the analogue lowpass Butterworth prototype of
// the given order with unit cutoff: no zeros, poles evenly spaced on the
// left-half unit circle, unit gain.
func ButterworthPrototype(order int) ZPK {
	if order == 0 {
		return ZPK{K: 1}
	}

	p := make([]complex128, 0, order)
	for _, m := range core.Arange(-order+1, order, 2) {
		theta := math.Pi * float64(m) / float64(2*order)
		p = append(p, -cmplx.Exp(complex(0, theta)))
	}

	return ZPK{P: p, K: 1}
}

// Chebyshev1Prototype returns the analogue lowpass Chebyshev type I
// prototype with rippleDB of passband ripple and unit cutoff.
func Chebyshev1Prototype(order int, rippleDB float64) ZPK {
	if order == 0 {
		// Even-order passband ripple sits below unity at DC.
		return ZPK{K: math.Pow(10, -rippleDB/20)}
	}

	eps := math.Sqrt(math.Pow(10, 0.1*rippleDB) - 1)
	mu := math.Asinh(1/eps) / float64(order)

	p := make([]complex128, 0, order)
	for _, m := range core.Arange(-order+1, order, 2) {
		theta := math.Pi * float64(m) / float64(2*order)
		p = append(p, -cmplx.Sinh(complex(mu, theta)))
	}

	k := real(prodNeg(p))
	if order%2 == 0 {
		k /= math.Sqrt(1 + eps*eps)
	}

	return ZPK{P: p, K: k}
}

// Chebyshev2Prototype returns the analogue lowpass Chebyshev type II
// (inverse Chebyshev) prototype with stopbandDB of stopband attenuation and
// unit cutoff.
func Chebyshev2Prototype(order int, stopbandDB float64) ZPK {
	if order == 0 {
		return ZPK{K: 1}
	}

	de := 1 / math.Sqrt(math.Pow(10, 0.1*stopbandDB)-1)
	mu := math.Asinh(1/de) / float64(order)

	// Odd orders omit the middle index: its zero would sit at infinity.
	var zm []int
	if order%2 != 0 {
		zm = append(core.Arange(-order+1, 0, 2), core.Arange(2, order, 2)...)
	} else {
		zm = core.Arange(-order+1, order, 2)
	}

	z := make([]complex128, 0, len(zm))
	for _, m := range zm {
		theta := math.Pi * float64(m) / float64(2*order)
		z = append(z, -cmplx.Conj(complex(0, 1)/cmplx.Sin(complex(theta, 0))))
	}

	p := make([]complex128, 0, order)
	for _, m := range core.Arange(-order+1, order, 2) {
		theta := math.Pi * float64(m) / float64(2*order)
		pk := -cmplx.Exp(complex(0, theta))
		pk = complex(math.Sinh(mu)*real(pk), math.Cosh(mu)*imag(pk))
		p = append(p, 1/pk)
	}

	k := real(prodNeg(p) / prodNeg(z))

	return ZPK{Z: z, P: p, K: k}
}
