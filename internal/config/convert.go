package config

import (
	"fmt"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/specseq/dsp/smooth"
	"github.com/cwbudde/specseq/epoch"
	"github.com/cwbudde/specseq/figure"
	"github.com/cwbudde/specseq/pipeline"
)

func band(values []float64) pipeline.Band {
	return pipeline.Band{Lo: values[0], Hi: values[1]}
}

// Pipeline returns the sequence settings. The config must have been
// validated.
func (c *Config) Pipeline() (pipeline.Config, error) {
	policy, err := epoch.ParsePolicy(c.Source.Policy)
	if err != nil {
		return pipeline.Config{}, fmt.Errorf("source.policy: %w", err)
	}
	kernel, err := smooth.ParseKernel(c.Render.Kernel)
	if err != nil {
		return pipeline.Config{}, fmt.Errorf("render.kernel: %w", err)
	}
	method, err := smooth.ParseMethod(c.Render.Method)
	if err != nil {
		return pipeline.Config{}, fmt.Errorf("render.method: %w", err)
	}

	entries := make([]pipeline.ReferenceEntry, len(c.Reference.Entries))
	for i, e := range c.Reference.Entries {
		entries[i] = pipeline.ReferenceEntry{File: e.File, Phase: e.Phase, Offset: e.Offset}
	}

	return pipeline.Config{
		DataDir:            c.Paths.DataDir,
		Pattern:            c.Paths.Pattern,
		Start:              c.Source.Start,
		End:                c.Source.End,
		Redshift:           c.Source.Redshift,
		T0:                 c.Source.T0,
		Policy:             policy,
		Continuum:          band(c.Source.Continuum),
		Telluric:           band(c.Source.Telluric),
		TelluricFrom:       c.Source.TelluricFrom,
		Clip:               band(c.Source.Clip),
		Pivot:              c.Source.Pivot,
		Offsets:            append([]float64(nil), c.Source.Offsets...),
		UseFileUncertainty: c.Source.UseFileUncertainty,
		Kernel:             kernel,
		Method:             method,
		Reference: pipeline.ReferenceConfig{
			Dir:      c.Paths.ReferenceDir,
			Redshift: c.Reference.Redshift,
			Entries:  entries,
			Pattern:  c.Reference.Pattern,
			Offsets:  append([]float64(nil), c.Reference.Offsets...),
			Phases:   append([]string(nil), c.Reference.Phases...),
		},
	}, nil
}

// Style returns the figure style with the configured geometry applied.
func (c *Config) Style() figure.Style {
	st := figure.DefaultStyle()
	st.Width = vg.Length(c.Render.WidthInches) * vg.Inch
	st.Height = vg.Length(c.Render.HeightInches) * vg.Inch
	st.DPI = c.Render.DPI
	st.XMin, st.XMax = c.Render.XRange[0], c.Render.XRange[1]
	st.YMin, st.YMax = c.Render.YRange[0], c.Render.YRange[1]
	st.LegendText = c.Render.Legend
	st.Variant = font.Variant(c.Render.FontVariant)
	st.ColorByInstrument = c.Render.ColorByInstrument
	return st
}
