package pipeline

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/cwbudde/specseq/dsp/smooth"
	"github.com/cwbudde/specseq/epoch"
	"github.com/cwbudde/specseq/instrument"
	"github.com/cwbudde/specseq/spectrum"
)

// Curve is one processed source spectrum.
type Curve struct {
	Observation epoch.Observation
	// Raw is the clipped, normalized and offset spectrum.
	Raw      spectrum.Spectrum
	Smoothed []float64
	Scale    float64
	Offset   float64
	Width    float64
	Masked   bool
	// Estimated reports that InvVar came from continuum scatter.
	Estimated bool
}

// Label returns the epoch annotation, e.g. "+12.3 d".
func (c Curve) Label() string {
	return fmt.Sprintf("%+.1f d", c.Observation.Epoch)
}

// Reference is one processed comparison spectrum.
type Reference struct {
	Entry    ReferenceEntry
	Spectrum spectrum.Spectrum
	Scale    float64
}

// Figure holds everything the renderer draws.
type Figure struct {
	Curves     []Curve
	References []Reference
}

// Processor turns observations into curves.
type Processor struct {
	cfg    Config
	logger *slog.Logger
}

// NewProcessor validates cfg and returns a Processor. A nil logger uses
// slog.Default().
func NewProcessor(cfg Config, logger *slog.Logger) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{cfg: cfg, logger: logger}, nil
}

// Observations discovers, dates, sorts and selects the source files.
func (p *Processor) Observations() ([]epoch.Observation, error) {
	files, err := epoch.Discover(p.cfg.DataDir, p.cfg.Pattern)
	if err != nil {
		return nil, err
	}
	p.logger.Info("discovered spectra", "dir", p.cfg.DataDir, "pattern", p.cfg.Pattern, "count", len(files))

	obs, err := epoch.Collect(files, epoch.Options{
		T0:     p.cfg.T0,
		Policy: p.cfg.Policy,
		Logger: p.logger,
	})
	if err != nil {
		return nil, err
	}
	return epoch.Select(obs, p.cfg.Start, p.cfg.End), nil
}

// Sequence processes the selected observations in order. Position i in
// obs is sorted position Start+i.
func (p *Processor) Sequence(obs []epoch.Observation) ([]Curve, error) {
	if len(obs) > len(p.cfg.Offsets) {
		return nil, fmt.Errorf("%w: %d spectra selected, %d offsets configured", ErrMissingOffset, len(obs), len(p.cfg.Offsets))
	}

	curves := make([]Curve, 0, len(obs))
	for i, o := range obs {
		c, err := p.process(p.cfg.Start+i, o, p.cfg.Offsets[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(o.Path), err)
		}
		curves = append(curves, c)
	}
	return curves, nil
}

func (p *Processor) process(position int, o epoch.Observation, offset float64) (Curve, error) {
	width, err := instrument.SmoothingWidth(o.Telescope)
	if err != nil {
		return Curve{}, err
	}

	f, err := spectrum.ReadFile(o.Path)
	if err != nil {
		return Curve{}, err
	}

	s := f.Spectrum.ToRestFrame(p.cfg.Redshift)
	estimated := false
	if !p.cfg.UseFileUncertainty || !f.HasUncertainty() {
		s, err = s.EstimateInvVar(p.cfg.Continuum.Lo, p.cfg.Continuum.Hi)
		if err != nil {
			return Curve{}, err
		}
		estimated = true
	}

	masked := position >= p.cfg.TelluricFrom
	if masked {
		s, err = s.MaskBand(p.cfg.Telluric.Lo, p.cfg.Telluric.Hi)
		if err != nil {
			return Curve{}, err
		}
		p.logger.Debug("masked telluric band",
			"path", filepath.Base(o.Path),
			"lo", p.cfg.Telluric.Lo,
			"hi", p.cfg.Telluric.Hi,
		)
	}

	s, scale, err := s.Normalize(p.cfg.Pivot)
	if err != nil {
		return Curve{}, err
	}
	s = s.Offset(offset).Clip(p.cfg.Clip.Lo, p.cfg.Clip.Hi)

	smoothed, err := smooth.Smooth(s.Wavelength, s.Flux, s.InvVar, width,
		smooth.WithKernel(p.cfg.Kernel),
		smooth.WithMethod(p.cfg.Method),
	)
	if err != nil {
		return Curve{}, err
	}

	p.logger.Info("processed spectrum",
		"path", filepath.Base(o.Path),
		"telescope", o.Telescope.String(),
		"epoch", o.Epoch,
		"samples", s.Len(),
		"offset", offset,
		"width", width,
	)

	return Curve{
		Observation: o,
		Raw:         s,
		Smoothed:    smoothed,
		Scale:       scale,
		Offset:      offset,
		Width:       width,
		Masked:      masked,
		Estimated:   estimated,
	}, nil
}

// ReferenceEntries returns the configured entries, or the discovered
// ones keyed to the reference offsets when none are configured.
func (p *Processor) ReferenceEntries() ([]ReferenceEntry, error) {
	rc := p.cfg.Reference
	if len(rc.Entries) > 0 || rc.Pattern == "" {
		return rc.Entries, nil
	}

	files, err := epoch.Discover(rc.Dir, rc.Pattern)
	if err != nil {
		return nil, err
	}
	if len(files) > len(rc.Offsets) {
		return nil, fmt.Errorf("%w: %d reference spectra match %q, %d reference offsets configured",
			ErrMissingOffset, len(files), rc.Pattern, len(rc.Offsets))
	}

	entries := make([]ReferenceEntry, len(files))
	for i, f := range files {
		rel, err := filepath.Rel(rc.Dir, f)
		if err != nil {
			return nil, fmt.Errorf("pipeline: reference %s: %w", f, err)
		}
		entries[i] = ReferenceEntry{File: rel, Offset: rc.Offsets[i]}
		if i < len(rc.Phases) {
			entries[i].Phase = rc.Phases[i]
		}
	}
	p.logger.Debug("discovered reference spectra", "dir", rc.Dir, "pattern", rc.Pattern, "count", len(entries))
	return entries, nil
}

// References loads and processes every reference entry.
func (p *Processor) References() ([]Reference, error) {
	rc := p.cfg.Reference
	entries, err := p.ReferenceEntries()
	if err != nil {
		return nil, err
	}
	refs := make([]Reference, 0, len(entries))
	for _, e := range entries {
		path := e.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(rc.Dir, path)
		}

		s, err := spectrum.ReadTableFile(path)
		if err != nil {
			return nil, err
		}
		s = s.ToRestFrame(rc.Redshift)

		s, scale, err := s.Normalize(p.cfg.Pivot)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.File, err)
		}

		refs = append(refs, Reference{
			Entry:    e,
			Spectrum: s.Offset(e.Offset),
			Scale:    scale,
		})
	}
	return refs, nil
}

// Build runs the whole assembly: observations, curves and references.
func (p *Processor) Build() (Figure, error) {
	obs, err := p.Observations()
	if err != nil {
		return Figure{}, err
	}
	curves, err := p.Sequence(obs)
	if err != nil {
		return Figure{}, err
	}
	refs, err := p.References()
	if err != nil {
		return Figure{}, err
	}
	if len(refs) == 0 {
		p.logger.Info("no reference spectra found", "dir", p.cfg.Reference.Dir, "pattern", p.cfg.Reference.Pattern)
	}
	return Figure{Curves: curves, References: refs}, nil
}
