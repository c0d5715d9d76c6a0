package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateReference(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateArchive()
}

func validateRange(name string, values []float64) error {
	if len(values) != 2 {
		return fmt.Errorf("%s must have two values, got %d", name, len(values))
	}
	if values[1] <= values[0] {
		return fmt.Errorf("%s must be increasing, got [%g, %g]", name, values[0], values[1])
	}
	return nil
}

func (c *Config) validateSource() error {
	s := c.Source
	if s.Redshift <= -1 {
		return errors.New("source.redshift must be greater than -1")
	}
	if s.Start < 0 || s.End <= s.Start {
		return fmt.Errorf("source.start and source.end must satisfy 0 <= start < end, got %d and %d", s.Start, s.End)
	}
	if len(s.Offsets) < s.End-s.Start {
		return fmt.Errorf("source.offsets has %d values but %d spectra are selected", len(s.Offsets), s.End-s.Start)
	}
	if s.Policy != "skip" && s.Policy != "fail" {
		return fmt.Errorf("source.policy must be skip or fail, got %q", s.Policy)
	}
	if s.TelluricFrom < 0 {
		return errors.New("source.telluric_from must be non-negative")
	}
	if err := validateRange("source.continuum", s.Continuum); err != nil {
		return err
	}
	if err := validateRange("source.telluric", s.Telluric); err != nil {
		return err
	}
	return validateRange("source.clip", s.Clip)
}

func (c *Config) validateReference() error {
	if c.Reference.Redshift <= -1 {
		return errors.New("reference.redshift must be greater than -1")
	}
	seen := make(map[string]bool, len(c.Reference.Entries))
	for i, e := range c.Reference.Entries {
		if e.File == "" {
			return fmt.Errorf("reference.entries[%d].file must be set", i)
		}
		if seen[e.File] {
			return fmt.Errorf("reference.entries[%d].file %q is listed twice", i, e.File)
		}
		seen[e.File] = true
	}
	return nil
}

func (c *Config) validateRender() error {
	r := c.Render
	if r.WidthInches <= 0 || r.HeightInches <= 0 {
		return errors.New("render.width_in and render.height_in must be positive")
	}
	if r.DPI <= 0 {
		return errors.New("render.dpi must be positive")
	}
	if err := validateRange("render.x_range", r.XRange); err != nil {
		return err
	}
	if err := validateRange("render.y_range", r.YRange); err != nil {
		return err
	}
	switch r.Kernel {
	case "gaussian", "boxcar":
	default:
		return fmt.Errorf("render.kernel must be gaussian or boxcar, got %q", r.Kernel)
	}
	switch r.Method {
	case "auto", "direct", "fft":
	default:
		return fmt.Errorf("render.method must be auto, direct or fft, got %q", r.Method)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format must be auto, console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateArchive() error {
	if c.Archive.BaseURL == "" {
		return nil
	}
	u, err := url.Parse(c.Archive.BaseURL)
	if err != nil {
		return fmt.Errorf("archive.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("archive.base_url must use http or https, got %q", c.Archive.BaseURL)
	}
	return nil
}
