package figure

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"

	"github.com/cwbudde/specseq/instrument"
	"github.com/cwbudde/specseq/pipeline"
)

var errEmptyFigure = errors.New("figure: nothing to draw")

// Render builds the plot for fig.
func Render(fig pipeline.Figure, st Style) (*plot.Plot, error) {
	if len(fig.Curves) == 0 && len(fig.References) == 0 {
		return nil, errEmptyFigure
	}

	p := plot.New()
	setupAxes(p, st)

	for _, c := range fig.Curves {
		if err := addCurve(p, c, st); err != nil {
			return nil, err
		}
	}

	for i, r := range fig.References {
		line, err := plotter.NewLine(xys(r.Spectrum.Wavelength, r.Spectrum.Flux))
		if err != nil {
			return nil, fmt.Errorf("figure: reference %s: %w", r.Entry.File, err)
		}
		line.LineStyle.Color = st.ReferenceColor
		line.LineStyle.Width = st.ReferenceWidth
		p.Add(line)

		if i == 0 && st.LegendText != "" {
			p.Legend.Add(st.LegendText, line)
		}
	}

	// Add widens the ranges to the data; pin them last.
	p.X.Min, p.X.Max = st.XMin, st.XMax
	p.Y.Min, p.Y.Max = st.YMin, st.YMax

	return p, nil
}

func setupAxes(p *plot.Plot, st Style) {
	p.X.Label.Text = st.XLabel
	p.X.Label.TextStyle.Font.Variant = st.Variant
	p.X.Label.TextStyle.Font.Size = st.AxisFontSize
	p.X.Tick.Label.Font.Variant = st.Variant
	p.X.Tick.Label.Font.Size = st.TickFontSize

	p.Y.Label.Text = st.YLabel
	p.Y.Label.TextStyle.Font.Variant = st.Variant
	p.Y.Label.TextStyle.Font.Size = st.AxisFontSize
	p.Y.Tick.Marker = plot.ConstantTicks{}

	p.Legend.Top = true
	p.Legend.TextStyle.Font.Variant = st.Variant
	p.Legend.TextStyle.Font.Size = st.LegendFontSize
}

func addCurve(p *plot.Plot, c pipeline.Curve, st Style) error {
	n := c.Raw.Len()
	if n == 0 {
		return fmt.Errorf("figure: %s has no samples in range", c.Observation.Path)
	}

	raw, err := plotter.NewLine(xys(c.Raw.Wavelength, c.Raw.Flux))
	if err != nil {
		return fmt.Errorf("figure: raw trace: %w", err)
	}
	raw.StepStyle = plotter.MidStep
	raw.LineStyle.Color = st.RawColor
	raw.LineStyle.Width = st.RawWidth

	smoothed, err := plotter.NewLine(xys(c.Raw.Wavelength, c.Smoothed))
	if err != nil {
		return fmt.Errorf("figure: smoothed trace: %w", err)
	}
	smoothed.StepStyle = plotter.MidStep
	smoothed.LineStyle.Color = st.SmoothedColor
	if st.ColorByInstrument {
		smoothed.LineStyle.Color = instrument.Info(c.Observation.Telescope).Color
	}
	smoothed.LineStyle.Width = st.SmoothedWidth

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: c.Raw.Wavelength[n-1] + st.LabelOffset, Y: c.Smoothed[n-1]}},
		Labels: []string{c.Label()},
	})
	if err != nil {
		return fmt.Errorf("figure: epoch label: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XLeft
		labels.TextStyle[i].YAlign = text.YCenter
		labels.TextStyle[i].Font.Variant = st.Variant
		labels.TextStyle[i].Font.Size = st.LabelFontSize
	}

	p.Add(raw, smoothed, labels)
	return nil
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}
