package design

import "math"

// WarpFrequency returns tan(pi*fc/fs), the bilinear transform frequency
// warping factor.
func WarpFrequency(fc, fs float64) float64 {
	return math.Tan(math.Pi * fc / fs)
}

// Bilinear maps an analogue ZPK to the digital domain through
// z = (2fs + s) / (2fs - s), appending degree zeros at z = -1 and
// compensating the gain by Re(prod(2fs - z) / prod(2fs - p)).
func Bilinear(analog ZPK, fs float64) ZPK {
	fs2 := complex(2*fs, 0)

	digital := ZPK{
		Z: make([]complex128, 0, len(analog.Z)+analog.Degree()),
		P: make([]complex128, len(analog.P)),
	}

	for _, z := range analog.Z {
		digital.Z = append(digital.Z, (fs2+z)/(fs2-z))
	}
	for i, p := range analog.P {
		digital.P[i] = (fs2 + p) / (fs2 - p)
	}
	for range analog.Degree() {
		digital.Z = append(digital.Z, -1)
	}

	num := complex(1, 0)
	for _, z := range analog.Z {
		num *= fs2 - z
	}
	den := complex(1, 0)
	for _, p := range analog.P {
		den *= fs2 - p
	}
	digital.K = analog.K * real(num/den)

	return digital
}

// analogToDigitalPass prewarps fc against fs and runs the lowpass/highpass
// transform followed by the bilinear map. The cutoff is normalised to the
// Nyquist frequency and the transform runs at a fixed internal rate of 2.
func analogToDigitalPass(analog ZPK, fc, fs float64, mode Mode) ZPK {
	fc /= fs / 2
	fs = 2.0
	warped := 2 * fs * WarpFrequency(fc, fs)

	switch mode {
	case Lowpass:
		analog = LowpassToLowpass(analog, warped)
	case Highpass:
		analog = LowpassToHighpass(analog, warped)
	}

	return Bilinear(analog, fs)
}

// analogToDigitalBand prewarps the band centre sqrt(fl*fh) and width fh-fl
// independently, runs the bandpass/bandstop transform, and bilinearly maps
// the result.
func analogToDigitalBand(analog ZPK, fl, fh, fs float64, mode Mode) ZPK {
	fc := math.Sqrt(fl * fh)
	bw := fh - fl

	fc /= fs / 2
	bw /= fs / 2
	fs = 2.0
	fcWarped := 2 * fs * WarpFrequency(fc, fs)
	bwWarped := 2 * fs * WarpFrequency(bw, fs)

	switch mode {
	case Bandpass:
		analog = LowpassToBandpass(analog, fcWarped, bwWarped)
	case Bandstop:
		analog = LowpassToBandstop(analog, fcWarped, bwWarped)
	}

	return Bilinear(analog, fs)
}
