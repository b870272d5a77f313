package design

import (
	"github.com/fabio-terranova/nodex/dsp/filter/iir"
	"github.com/fabio-terranova/nodex/internal/polyroot"
)

// TransferFunction converts a ZPK to transfer-function coefficients:
// b = k * real(poly(z)), a = real(poly(p)). Both arrays come out with
// length max(len(z), len(p)) + 1; the shorter polynomial is padded with
// leading zeros so the index aligns with delay for the streaming filter.
//
// Taking the real part assumes complex zeros and poles appear in conjugate
// pairs, which holds for every design this package produces.
func TransferFunction(f ZPK) iir.Coefficients {
	b := polyroot.RealPart(polyroot.Poly(f.Z))
	a := polyroot.RealPart(polyroot.Poly(f.P))

	for i := range b {
		b[i] *= f.K
	}

	n := len(b)
	if len(a) > n {
		n = len(a)
	}

	out := iir.Coefficients{
		B: make([]float64, n),
		A: make([]float64, n),
	}
	copy(out.B[n-len(b):], b)
	copy(out.A[n-len(a):], a)

	return out
}
