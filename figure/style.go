package figure

import (
	"image/color"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

// Style holds the fixed layout of the figure.
type Style struct {
	Width  vg.Length
	Height vg.Length
	// DPI applies to raster outputs only.
	DPI float64

	XMin, XMax float64
	YMin, YMax float64

	XLabel string
	YLabel string
	// LegendText labels the reference overlay. Empty disables the legend.
	LegendText string
	// Variant is the Liberation font variant ("Serif", "Sans", "Mono").
	Variant font.Variant

	RawColor       color.Color
	RawWidth       vg.Length
	SmoothedColor  color.Color
	SmoothedWidth  vg.Length
	ReferenceColor color.Color
	ReferenceWidth vg.Length
	// ColorByInstrument draws each smoothed trace in its telescope colour.
	ColorByInstrument bool

	// LabelOffset is the gap, in data units, between the last sample and
	// the epoch label.
	LabelOffset    float64
	LabelFontSize  vg.Length
	AxisFontSize   vg.Length
	TickFontSize   vg.Length
	LegendFontSize vg.Length
}

// DefaultStyle returns the publication layout: 6 x 10 in, x in
// (3660, 10140) Angstrom, y in (-8, -0.5).
func DefaultStyle() Style {
	return Style{
		Width:          6 * vg.Inch,
		Height:         10 * vg.Inch,
		DPI:            500,
		XMin:           3660,
		XMax:           10140,
		YMin:           -8,
		YMax:           -0.5,
		XLabel:         "Rest Wavelength (Å)",
		YLabel:         "Scaled F_λ + const.",
		LegendText:     "98bw at similar phase",
		Variant:        "Serif",
		RawColor:       color.NRGBA{R: 211, G: 211, B: 211, A: 102},
		RawWidth:       vg.Points(0.5),
		SmoothedColor:  color.Black,
		SmoothedWidth:  vg.Points(2),
		ReferenceColor: color.Black,
		ReferenceWidth: vg.Points(0.3),
		LabelOffset:    100,
		LabelFontSize:  vg.Points(12),
		AxisFontSize:   vg.Points(16),
		TickFontSize:   vg.Points(14),
		LegendFontSize: vg.Points(14),
	}
}
