package pipeline

import (
	"errors"
	"fmt"

	"github.com/cwbudde/specseq/dsp/smooth"
	"github.com/cwbudde/specseq/epoch"
)

// Band is a wavelength interval in Angstrom.
type Band struct {
	Lo float64
	Hi float64
}

// Config holds every constant the sequence depends on.
type Config struct {
	DataDir string
	Pattern string
	// Start and End select the sorted range [Start, End).
	Start int
	End   int

	Redshift float64
	// T0 is the MJD of the last non-detection.
	T0     float64
	Policy epoch.Policy

	Continuum Band
	Telluric  Band
	// TelluricFrom is the first sorted position that gets masked.
	TelluricFrom int
	Clip         Band
	Pivot        float64
	// Offsets[i] is subtracted from the normalized spectrum at sorted
	// position Start+i.
	Offsets []float64

	// UseFileUncertainty selects the file's uncertainty column over the
	// continuum estimate when the column is present.
	UseFileUncertainty bool

	Kernel smooth.Kernel
	Method smooth.Method

	Reference ReferenceConfig
}

// ReferenceConfig describes the comparison spectra. Explicit Entries win;
// otherwise files matching Pattern in Dir are discovered, sorted by name,
// and the i-th one gets Offsets[i] and, when present, Phases[i].
type ReferenceConfig struct {
	Dir      string
	Redshift float64
	Entries  []ReferenceEntry

	Pattern string
	Offsets []float64
	Phases  []string
}

// ReferenceEntry is one comparison spectrum with its own offset.
type ReferenceEntry struct {
	File   string
	Phase  string
	Offset float64
}

// DefaultConfig returns the constants of the ZTF18aaqjovh sequence.
func DefaultConfig() Config {
	return Config{
		DataDir:            ".",
		Pattern:            "*.ascii",
		Start:              0,
		End:                6,
		Redshift:           0.05403,
		T0:                 58233.17615,
		Policy:             epoch.PolicySkip,
		Continuum:          Band{Lo: 6300, Hi: 6500},
		Telluric:           Band{Lo: 7150, Hi: 7300},
		TelluricFrom:       3,
		Clip:               Band{Lo: 3660, Hi: 9000},
		Pivot:              4100,
		Offsets:            []float64{2, 3, 4, 6, 8, 10},
		UseFileUncertainty: true,
		Kernel:             smooth.KernelGaussian,
		Method:             smooth.MethodAuto,
		Reference: ReferenceConfig{
			Dir:      ".",
			Redshift: 0.0085,
			Pattern:  "*.txt",
			Offsets:  []float64{2.1, 3, 4, 6, 7.1},
		},
	}
}

var (
	// ErrMissingOffset is returned when fewer offsets than selected
	// spectra are configured.
	ErrMissingOffset = errors.New("pipeline: no offset for spectrum")
	errBadRange      = errors.New("pipeline: invalid selection range")
)

// Validate checks internal consistency.
func (c Config) Validate() error {
	if c.Start < 0 || c.End <= c.Start {
		return fmt.Errorf("%w: [%d, %d)", errBadRange, c.Start, c.End)
	}
	if c.Redshift <= -1 || c.Reference.Redshift <= -1 {
		return errors.New("pipeline: redshift must be > -1")
	}
	for _, b := range []struct {
		name string
		band Band
	}{
		{"continuum", c.Continuum},
		{"telluric", c.Telluric},
		{"clip", c.Clip},
	} {
		if b.band.Hi <= b.band.Lo {
			return fmt.Errorf("pipeline: %s band must have hi > lo: [%g, %g]", b.name, b.band.Lo, b.band.Hi)
		}
	}
	for i, e := range c.Reference.Entries {
		if e.File == "" {
			return fmt.Errorf("pipeline: reference %d has no file", i)
		}
	}
	return nil
}
