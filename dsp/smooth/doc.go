// Package smooth implements inverse-variance weighted local averaging of
// irregularly sampled spectra.
//
// For every sample i the smoothed value is
//
//	out[i] = sum_j w(x[i]-x[j]) * ivar[j] * y[j] / sum_j w(x[i]-x[j]) * ivar[j]
//
// where w is the smoothing kernel of the requested width. Samples whose
// inverse variance is zero contribute nothing, so masked regions are
// bridged by their neighbours. Where no weight reaches a sample the output
// is 0.
//
// # Methods
//
//   - MethodDirect: windowed scan over the sorted abscissa, O(N*K).
//   - MethodFFT: two FFT convolutions (weighted flux and weights) on a
//     uniform grid. Requires uniformly spaced x.
//   - MethodAuto: FFT when the grid is uniform and long enough, direct
//     otherwise.
//
// Both methods truncate the kernel at the same support, so they agree to
// floating-point precision on uniform grids.
package smooth
