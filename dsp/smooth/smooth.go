package smooth

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"
)

var (
	ErrLengthMismatch = errors.New("smooth: x, y and ivar must have same length")
	ErrInvalidWidth   = errors.New("smooth: width must be > 0")
	ErrNotUniform     = errors.New("smooth: FFT method requires a uniform grid")
	ErrNotSorted      = errors.New("smooth: x must be non-decreasing")
)

// Smooth returns the inverse-variance weighted local average of y. See the
// package documentation for the definition.
func Smooth(x, y, ivar []float64, width float64, opts ...Option) ([]float64, error) {
	if len(x) != len(y) || len(x) != len(ivar) {
		return nil, fmt.Errorf("%w: %d, %d, %d", ErrLengthMismatch, len(x), len(y), len(ivar))
	}
	if !(width > 0) || math.IsInf(width, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidWidth, width)
	}
	if len(x) == 0 {
		return []float64{}, nil
	}
	if !sort.Float64sAreSorted(x) {
		return nil, ErrNotSorted
	}

	cfg := applyOptions(opts)

	// Weighted flux y*ivar feeds the numerator of every method.
	wy := make([]float64, len(y))
	vecmath.MulBlock(wy, y, ivar)

	switch cfg.method {
	case MethodDirect:
		return direct(x, wy, ivar, width, cfg), nil
	case MethodFFT:
		step, ok := uniformStep(x, cfg.uniformTol)
		if !ok {
			return nil, ErrNotUniform
		}
		return viaFFT(wy, ivar, step, width, cfg)
	default:
		if len(x) >= cfg.fftThreshold {
			if step, ok := uniformStep(x, cfg.uniformTol); ok {
				return viaFFT(wy, ivar, step, width, cfg)
			}
		}
		return direct(x, wy, ivar, width, cfg), nil
	}
}

func direct(x, wy, ivar []float64, width float64, cfg config) []float64 {
	n := len(x)
	out := make([]float64, n)
	support := cfg.support(width)

	lo := 0
	for i := 0; i < n; i++ {
		for lo < n && x[i]-x[lo] > support {
			lo++
		}

		var num, den float64
		for j := lo; j < n && x[j]-x[i] <= support; j++ {
			w := cfg.weight(x[i]-x[j], width)
			num += w * wy[j]
			den += w * ivar[j]
		}
		if den > 0 {
			out[i] = num / den
		}
	}

	return out
}

// ratio divides num by den elementwise, leaving 0 where den is not
// positive. Tiny negative residues from the FFT round trip count as zero.
func ratio(num, den []float64, floor float64) []float64 {
	out := make([]float64, len(num))
	for i := range out {
		if den[i] > floor {
			out[i] = num[i] / den[i]
		}
	}
	return out
}
