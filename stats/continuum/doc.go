// Package continuum estimates flux noise from the scatter of a spectrum
// inside a line-free continuum window.
//
// The estimate is a single homoscedastic value per spectrum: the
// population standard deviation of the flux samples whose wavelength lies
// in the window. It is used when a spectrum file carries no per-pixel
// uncertainty column.
package continuum
