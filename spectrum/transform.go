package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/specseq/stats/continuum"
)

// RestFrame divides every observed wavelength by (1+z).
func RestFrame(wavelength []float64, z float64) []float64 {
	out := make([]float64, len(wavelength))
	for i, wl := range wavelength {
		out[i] = wl / (1 + z)
	}
	return out
}

// ToRestFrame returns a copy of s with rest-frame wavelengths.
func (s Spectrum) ToRestFrame(z float64) Spectrum {
	out := s.Clone()
	out.Wavelength = RestFrame(s.Wavelength, z)
	return out
}

// EstimateInvVar returns a copy of s whose InvVar is the homoscedastic
// estimate 1/sigma^2, sigma being the flux scatter inside [lo, hi].
func (s Spectrum) EstimateInvVar(lo, hi float64) (Spectrum, error) {
	sigma, err := continuum.Scatter(s.Wavelength, s.Flux, lo, hi)
	if err != nil {
		return Spectrum{}, err
	}
	iv, err := continuum.InverseVariance(sigma, s.Len())
	if err != nil {
		return Spectrum{}, err
	}
	out := s.Clone()
	out.InvVar = iv
	return out, nil
}

// MaskBand returns a copy of s with InvVar zeroed for lo <= wavelength < hi.
// Flux and all other weights are left untouched.
func (s Spectrum) MaskBand(lo, hi float64) (Spectrum, error) {
	if err := s.Validate(); err != nil {
		return Spectrum{}, err
	}
	out := s.Clone()
	if out.InvVar == nil {
		return out, nil
	}

	mask := make([]float64, out.Len())
	masked := 0
	for i, wl := range out.Wavelength {
		if wl >= lo && wl < hi {
			masked++
			continue
		}
		mask[i] = 1
	}
	if masked > 0 {
		vecmath.MulBlockInPlace(out.InvVar, mask)
	}
	return out, nil
}

// Clip returns the samples with lo < wavelength < hi.
func (s Spectrum) Clip(lo, hi float64) Spectrum {
	var out Spectrum
	for i, wl := range s.Wavelength {
		if wl <= lo || wl >= hi {
			continue
		}
		out.Wavelength = append(out.Wavelength, wl)
		out.Flux = append(out.Flux, s.Flux[i])
		if s.InvVar != nil {
			out.InvVar = append(out.InvVar, s.InvVar[i])
		}
	}
	return out
}

// NormalizationScale returns the flux at the first sample whose
// wavelength exceeds pivot.
func (s Spectrum) NormalizationScale(pivot float64) (float64, error) {
	for i, wl := range s.Wavelength {
		if wl > pivot {
			if s.Flux[i] == 0 {
				return 0, fmt.Errorf("%w: sample %d at %g", ErrZeroScale, i, wl)
			}
			return s.Flux[i], nil
		}
	}
	return 0, fmt.Errorf("%w: %g", ErrNoPivot, pivot)
}

// Normalize returns a copy of s divided by NormalizationScale(pivot), so
// the pivot sample becomes exactly 1. Inverse variance scales by scale^2.
func (s Spectrum) Normalize(pivot float64) (Spectrum, float64, error) {
	scale, err := s.NormalizationScale(pivot)
	if err != nil {
		return Spectrum{}, 0, err
	}
	out := s.Clone()
	for i := range out.Flux {
		out.Flux[i] /= scale
	}
	if out.InvVar != nil {
		s2 := scale * scale
		for i := range out.InvVar {
			out.InvVar[i] *= s2
		}
	}
	return out, scale, nil
}

// Offset returns a copy of s with c subtracted from every flux.
func (s Spectrum) Offset(c float64) Spectrum {
	out := s.Clone()
	for i := range out.Flux {
		out.Flux[i] -= c
	}
	return out
}
