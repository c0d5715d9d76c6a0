// Package figure renders a stacked spectral sequence with gonum/plot.
//
// Each source spectrum is drawn twice: the raw trace in translucent grey
// and the smoothed trace in black, both as mid-step lines, with the epoch
// printed to the right of the smoothed curve. Reference spectra are thin
// black lines sharing one legend entry. The y axis carries no ticks since
// the vertical scale is arbitrary.
package figure
