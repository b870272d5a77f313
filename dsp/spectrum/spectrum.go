// Package spectrum computes magnitude and power spectra for display sinks.
package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/fabio-terranova/nodex/dsp/core"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin. Scratch buffers
// are pooled internally, so in steady state this allocates only the output
// slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// FFTReal computes the forward real FFT of x, zero-padded to the next power
// of two. Due to Hermitian symmetry the result holds n/2 + 1 unique bins.
func FFTReal(x []float64) []complex128 {
	if len(x) == 0 {
		return nil
	}

	n := core.NextPow2(len(x))
	padded := x
	if len(x) != n {
		padded = make([]float64, n)
		copy(padded, x)
	}

	fft := fourier.NewFFT(n)
	return fft.Coefficients(nil, padded)
}

// MagnitudeSpectrum returns |X[k]| of the zero-padded real FFT of x,
// normalised by the transform length. This is the display path used by
// viewer sinks.
func MagnitudeSpectrum(x []float64) []float64 {
	bins := FFTReal(x)
	if bins == nil {
		return nil
	}

	mag := Magnitude(bins)
	n := float64(2 * (len(bins) - 1))
	for i := range mag {
		mag[i] /= n
	}
	return mag
}

// FrequencyVector returns the bin centre frequencies for a spectrum of
// the given bin count at sample rate fs.
func FrequencyVector(bins int, fs float64) []float64 {
	if bins <= 0 {
		return nil
	}
	n := 2 * (bins - 1)
	if n <= 0 {
		n = 1
	}
	out := make([]float64, bins)
	for i := range out {
		out[i] = float64(i) * fs / float64(n)
	}
	return out
}
