package design

import (
	"math"
	"math/cmplx"
)

// LowpassToLowpass scales a unit-cutoff lowpass prototype to cutoff wc
// (rad/s). The gain picks up wc^degree.
func LowpassToLowpass(in ZPK, wc float64) ZPK {
	out := ZPK{
		Z: make([]complex128, len(in.Z)),
		P: make([]complex128, len(in.P)),
	}

	w := complex(wc, 0)
	for i, z := range in.Z {
		out.Z[i] = z * w
	}
	for i, p := range in.P {
		out.P[i] = p * w
	}

	out.K = in.K * math.Pow(wc, float64(in.Degree()))

	return out
}

// LowpassToHighpass inverts a unit-cutoff lowpass prototype around wc
// (rad/s), appending degree zeros at the origin.
func LowpassToHighpass(in ZPK, wc float64) ZPK {
	degree := in.Degree()

	out := ZPK{
		Z: make([]complex128, 0, len(in.Z)+degree),
		P: make([]complex128, len(in.P)),
	}

	w := complex(wc, 0)
	for _, z := range in.Z {
		out.Z = append(out.Z, w/z)
	}
	for i, p := range in.P {
		out.P[i] = w / p
	}
	for range degree {
		out.Z = append(out.Z, 0)
	}

	out.K = in.K * real(prodNeg(in.Z)/prodNeg(in.P))

	return out
}

// LowpassToBandpass maps a unit-cutoff lowpass prototype to a bandpass
// response centred at wc with bandwidth bw (both rad/s). Each root splits
// into a pair; degree zeros are appended at the origin.
func LowpassToBandpass(in ZPK, wc, bw float64) ZPK {
	degree := in.Degree()

	out := ZPK{
		Z: make([]complex128, 0, 2*len(in.Z)+degree),
		P: make([]complex128, 0, 2*len(in.P)),
	}

	wc2 := complex(wc*wc, 0)
	hi := make([]complex128, 0, len(in.Z))
	for _, z := range in.Z {
		zlp := z * complex(bw/2, 0)
		term := cmplx.Sqrt(zlp*zlp - wc2)
		out.Z = append(out.Z, zlp+term)
		hi = append(hi, zlp-term)
	}
	out.Z = append(out.Z, hi...)
	for range degree {
		out.Z = append(out.Z, 0)
	}

	hi = hi[:0]
	for _, p := range in.P {
		plp := p * complex(bw/2, 0)
		term := cmplx.Sqrt(plp*plp - wc2)
		out.P = append(out.P, plp+term)
		hi = append(hi, plp-term)
	}
	out.P = append(out.P, hi...)

	out.K = in.K * math.Pow(bw, float64(degree))

	return out
}

// LowpassToBandstop maps a unit-cutoff lowpass prototype to a bandstop
// response centred at wc with bandwidth bw (both rad/s). Each root splits
// into a pair; degree zero pairs are appended at +i*wc and -i*wc.
func LowpassToBandstop(in ZPK, wc, bw float64) ZPK {
	degree := in.Degree()

	out := ZPK{
		Z: make([]complex128, 0, 2*len(in.Z)+2*degree),
		P: make([]complex128, 0, 2*len(in.P)),
	}

	wc2 := complex(wc*wc, 0)
	hi := make([]complex128, 0, len(in.Z))
	for _, z := range in.Z {
		zhp := complex(bw/2, 0) / z
		term := cmplx.Sqrt(zhp*zhp - wc2)
		out.Z = append(out.Z, zhp+term)
		hi = append(hi, zhp-term)
	}
	out.Z = append(out.Z, hi...)
	for range degree {
		out.Z = append(out.Z, complex(0, wc))
	}
	for range degree {
		out.Z = append(out.Z, complex(0, -wc))
	}

	hi = hi[:0]
	for _, p := range in.P {
		php := complex(bw/2, 0) / p
		term := cmplx.Sqrt(php*php - wc2)
		out.P = append(out.P, php+term)
		hi = append(hi, php-term)
	}
	out.P = append(out.P, hi...)

	out.K = in.K * real(prodNeg(in.Z)/prodNeg(in.P))

	return out
}
