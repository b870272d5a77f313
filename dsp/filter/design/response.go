package design

import (
	"math"
	"math/cmplx"

	"github.com/fabio-terranova/nodex/dsp/core"
)

// FrequencyResponse evaluates the digital filter response at each angular
// frequency in w (rad/sample):
//
//	h = k * prod(e^{iw} - z_m) / prod(e^{iw} - p_m)
//
// Responses are returned in input order.
func FrequencyResponse(f ZPK, w []float64) []complex128 {
	h := make([]complex128, len(w))

	for j, wj := range w {
		e := cmplx.Exp(complex(0, wj))

		num := complex(f.K, 0)
		for _, z := range f.Z {
			num *= e - z
		}

		den := complex(1, 0)
		for _, p := range f.P {
			den *= e - p
		}

		h[j] = num / den
	}

	return h
}

// ResponseGrid evaluates the response on n evenly spaced angular
// frequencies over [0, pi) and returns the grid and the magnitudes.
// Intended for display sinks.
func ResponseGrid(f ZPK, n int) (w []float64, mag []float64) {
	w = core.Linspace(0, math.Pi, n)
	h := FrequencyResponse(f, w)

	mag = make([]float64, len(h))
	for i, v := range h {
		mag[i] = cmplx.Abs(v)
	}

	return w, mag
}
