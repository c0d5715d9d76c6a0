package spectrum

import "errors"

var (
	// ErrNoPivot is returned when no sample lies redward of the
	// normalization pivot.
	ErrNoPivot = errors.New("spectrum: no sample beyond normalization pivot")
	// ErrZeroScale is returned when the flux at the pivot is zero.
	ErrZeroScale = errors.New("spectrum: zero flux at normalization pivot")
	// ErrNoData is returned for files without numeric rows.
	ErrNoData = errors.New("spectrum: no data rows")
	// ErrColumns is returned for unsupported or inconsistent column layouts.
	ErrColumns = errors.New("spectrum: unsupported column layout")
	// ErrMissingColumn is returned when a table lacks a required column.
	ErrMissingColumn = errors.New("spectrum: missing column")

	errLengthMismatch = errors.New("spectrum: wavelength, flux and ivar must have same length")
)
