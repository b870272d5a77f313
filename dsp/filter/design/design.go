package design

import "fmt"

// IIR designs a digital lowpass or highpass filter of the given order and
// family. fc is the cutoff in Hz, fs the sampling rate in Hz. ripple is the
// passband ripple (Chebyshev I) or stopband attenuation (Chebyshev II) in
// dB; it is ignored for Butterworth designs.
func IIR(order int, fc, fs float64, typ Type, mode Mode, ripple float64) (ZPK, error) {
	if mode != Lowpass && mode != Highpass {
		return ZPK{}, fmt.Errorf("%w: mode %v requires the band variant", ErrInvalidArgument, mode)
	}
	if order < 1 {
		return ZPK{}, fmt.Errorf("%w: order must be >= 1, got %d", ErrInvalidArgument, order)
	}
	if fc <= 0 || fc >= fs/2 {
		return ZPK{}, fmt.Errorf("%w: cutoff %g Hz outside (0, fs/2) for fs %g Hz", ErrInvalidArgument, fc, fs)
	}

	analog, err := prototype(order, typ, ripple)
	if err != nil {
		return ZPK{}, err
	}

	return analogToDigitalPass(analog, fc, fs, mode), nil
}

// IIRBand designs a digital bandpass or bandstop filter. fl and fh are the
// band edges in Hz; the prototype order doubles through the band transform.
func IIRBand(order int, fl, fh, fs float64, typ Type, mode Mode, ripple float64) (ZPK, error) {
	if mode != Bandpass && mode != Bandstop {
		return ZPK{}, fmt.Errorf("%w: mode %v requires the pass variant", ErrInvalidArgument, mode)
	}
	if order < 1 {
		return ZPK{}, fmt.Errorf("%w: order must be >= 1, got %d", ErrInvalidArgument, order)
	}
	if fl <= 0 || fl >= fh {
		return ZPK{}, fmt.Errorf("%w: band edges %g..%g Hz must satisfy 0 < fl < fh", ErrInvalidArgument, fl, fh)
	}
	if fh >= fs/2 {
		return ZPK{}, fmt.Errorf("%w: upper edge %g Hz must be below fs/2 (%g Hz)", ErrInvalidArgument, fh, fs/2)
	}

	analog, err := prototype(order, typ, ripple)
	if err != nil {
		return ZPK{}, err
	}

	return analogToDigitalBand(analog, fl, fh, fs, mode), nil
}

func prototype(order int, typ Type, ripple float64) (ZPK, error) {
	switch typ {
	case Butterworth:
		return ButterworthPrototype(order), nil
	case Chebyshev1:
		if ripple <= 0 {
			return ZPK{}, fmt.Errorf("%w: chebyshev1 ripple must be > 0 dB, got %g", ErrInvalidArgument, ripple)
		}
		return Chebyshev1Prototype(order, ripple), nil
	case Chebyshev2:
		if ripple <= 0 {
			return ZPK{}, fmt.Errorf("%w: chebyshev2 attenuation must be > 0 dB, got %g", ErrInvalidArgument, ripple)
		}
		return Chebyshev2Prototype(order, ripple), nil
	default:
		return ZPK{}, fmt.Errorf("%w: unknown filter type %v", ErrInvalidArgument, typ)
	}
}
