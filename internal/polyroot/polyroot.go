// Package polyroot provides polynomial expansion and root-finding utilities
// shared by the filter design and FFT filtering packages.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (leading coefficient zero, convergence failure, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// Poly expands prod(x - r_i) over the given roots into polynomial
// coefficients in descending power order. The result of zero roots is the
// constant polynomial [1].
//
// The coefficients are complex. Callers that know the roots come in
// conjugate pairs (real filters) take the real part via [RealPart].
func Poly(roots []complex128) []complex128 {
	coeffs := []complex128{1}

	for _, r := range roots {
		next := make([]complex128, len(coeffs)+1)
		for i, c := range coeffs {
			next[i] += c
			next[i+1] -= r * c
		}
		coeffs = next
	}

	return coeffs
}

// RealPart returns the real parts of the given coefficients.
//
// Precondition: any coefficients with non-zero imaginary part stem from
// conjugate root pairs, so the imaginary parts cancel up to rounding and
// discarding them is exact in the limit.
func RealPart(coeffs []complex128) []float64 {
	out := make([]float64, len(coeffs))
	for i, c := range coeffs {
		out[i] = real(c)
	}
	return out
}

// Roots finds all roots of a real polynomial with coefficients in descending
// power order: c[0]*x^n + c[1]*x^(n-1) + ... + c[n]. Leading zeros are
// stripped first; a constant polynomial has no roots.
func Roots(c []float64) ([]complex128, error) {
	start := 0
	for start < len(c) && c[start] == 0 {
		start++
	}
	c = c[start:]

	if len(c) == 0 {
		return nil, ErrDegeneratePolynomial
	}
	if len(c) == 1 {
		return nil, nil
	}

	coeff := make([]complex128, len(c))
	for i, v := range c {
		coeff[i] = complex(v, 0)
	}

	return DurandKerner(coeff)
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			f := PolyEval(norm, roots[i])
			delta := f / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0

	for _, r := range roots {
		res := cmplx.Abs(PolyEval(norm, r))
		if res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}
	return v
}

// IsConjugate reports whether a and b form a conjugate pair within tol.
func IsConjugate(a, b complex128, tol float64) bool {
	return math.Abs(real(a)-real(b)) <= tol &&
		math.Abs(imag(a)+imag(b)) <= tol
}
