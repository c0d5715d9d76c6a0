// Package pipeline assembles the spectral sequence figure data: it dates
// and orders the source spectra, processes each one into a raw and a
// smoothed trace, and prepares the reference overlay.
//
// Per-epoch offsets are indexed by sorted position and must cover every
// selected spectrum; reference spectra name their own file and offset.
// Any mismatch is an error rather than a silent misalignment.
package pipeline
