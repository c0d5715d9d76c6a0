// Package spectrum reads one-dimensional optical spectra and applies the
// per-spectrum transforms used to build a stacked spectral sequence:
// rest-frame conversion, continuum noise estimation, telluric masking,
// clipping, normalization and vertical offsetting.
//
// Transforms that change a spectrum return a new value; the input is
// left untouched so raw and processed traces can be plotted together.
package spectrum
