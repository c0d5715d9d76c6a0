package continuum

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyWindow is returned when no sample falls inside the window.
	ErrEmptyWindow = errors.New("continuum: no samples in window")
	// ErrFlatContinuum is returned when the window carries zero scatter,
	// which would make the inverse variance infinite.
	ErrFlatContinuum = errors.New("continuum: zero scatter in window")
	errLengthMismatch = errors.New("continuum: wavelength and flux must have same length")
)

// Stats summarises the flux samples inside a continuum window.
type Stats struct {
	Count    int
	Mean     float64
	Variance float64 // population variance
	Scatter  float64 // sqrt(Variance)
}

// SNR returns Mean/Scatter, or 0 when the scatter is zero.
func (s Stats) SNR() float64 {
	if s.Scatter == 0 {
		return 0
	}
	return s.Mean / s.Scatter
}

// Moments returns the mean and population variance of x using Welford's
// online update.
func Moments(x []float64) (mean, variance float64) {
	if len(x) == 0 {
		return 0, 0
	}

	var m2 float64
	for i, v := range x {
		delta := v - mean
		mean += delta / float64(i+1)
		m2 += delta * (v - mean)
	}

	return mean, m2 / float64(len(x))
}

// Window computes the statistics of flux over samples with
// lo <= wavelength <= hi.
func Window(wavelength, flux []float64, lo, hi float64) (Stats, error) {
	if len(wavelength) != len(flux) {
		return Stats{}, errLengthMismatch
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	var (
		n    int
		mean float64
		m2   float64
	)
	for i, wl := range wavelength {
		if wl < lo || wl > hi {
			continue
		}
		n++
		delta := flux[i] - mean
		mean += delta / float64(n)
		m2 += delta * (flux[i] - mean)
	}

	if n == 0 {
		return Stats{}, fmt.Errorf("%w: [%g, %g]", ErrEmptyWindow, lo, hi)
	}

	variance := m2 / float64(n)
	if variance < 0 {
		variance = 0
	}

	return Stats{
		Count:    n,
		Mean:     mean,
		Variance: variance,
		Scatter:  math.Sqrt(variance),
	}, nil
}

// Scatter returns the flux standard deviation inside [lo, hi]. It fails
// when the window is empty or the flux there is constant.
func Scatter(wavelength, flux []float64, lo, hi float64) (float64, error) {
	s, err := Window(wavelength, flux, lo, hi)
	if err != nil {
		return 0, err
	}
	if s.Scatter == 0 {
		return 0, fmt.Errorf("%w: [%g, %g]", ErrFlatContinuum, lo, hi)
	}
	return s.Scatter, nil
}

// SNR returns the mean flux over its scatter inside [lo, hi].
func SNR(wavelength, flux []float64, lo, hi float64) (float64, error) {
	s, err := Window(wavelength, flux, lo, hi)
	if err != nil {
		return 0, err
	}
	if s.Scatter == 0 {
		return 0, fmt.Errorf("%w: [%g, %g]", ErrFlatContinuum, lo, hi)
	}
	return s.SNR(), nil
}

// InverseVariance returns n copies of 1/sigma^2. sigma must be positive.
func InverseVariance(sigma float64, n int) ([]float64, error) {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("continuum: sigma must be positive and finite: %g", sigma)
	}
	if n < 0 {
		n = 0
	}

	iv := 1 / (sigma * sigma)
	out := make([]float64, n)
	for i := range out {
		out[i] = iv
	}
	return out, nil
}
