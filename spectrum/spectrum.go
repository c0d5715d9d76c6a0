package spectrum

import "fmt"

// Spectrum is an ordered sequence of (wavelength, flux, inverse variance)
// samples. Wavelength is expected to be strictly increasing; readers do
// not enforce it.
type Spectrum struct {
	Wavelength []float64
	Flux       []float64
	InvVar     []float64
}

// Len returns the number of samples.
func (s Spectrum) Len() int {
	return len(s.Wavelength)
}

// Validate checks that all columns have the same length. A nil InvVar is
// accepted and means "not yet estimated".
func (s Spectrum) Validate() error {
	if len(s.Flux) != len(s.Wavelength) {
		return fmt.Errorf("%w: %d wavelengths, %d fluxes", errLengthMismatch, len(s.Wavelength), len(s.Flux))
	}
	if s.InvVar != nil && len(s.InvVar) != len(s.Wavelength) {
		return fmt.Errorf("%w: %d wavelengths, %d ivar", errLengthMismatch, len(s.Wavelength), len(s.InvVar))
	}
	return nil
}

// Clone returns a deep copy.
func (s Spectrum) Clone() Spectrum {
	return Spectrum{
		Wavelength: cloneSlice(s.Wavelength),
		Flux:       cloneSlice(s.Flux),
		InvVar:     cloneSlice(s.InvVar),
	}
}

func cloneSlice(in []float64) []float64 {
	if in == nil {
		return nil
	}
	out := make([]float64, len(in))
	copy(out, in)
	return out
}
