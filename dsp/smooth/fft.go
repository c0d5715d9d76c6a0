package smooth

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// viaFFT evaluates the smoother on a uniform grid with spacing step by
// convolving both the weighted flux and the weights with the sampled
// kernel. The output uses the same kernel support as direct.
func viaFFT(wy, ivar []float64, step, width float64, cfg config) ([]float64, error) {
	n := len(wy)

	half := int(math.Floor(cfg.support(width)/step + 1e-9))
	if half > n-1 {
		half = n - 1
	}

	kernel := make([]float64, 2*half+1)
	for k := -half; k <= half; k++ {
		kernel[k+half] = cfg.weight(float64(k)*step, width)
	}

	fftSize := nextPowerOf2(n + len(kernel) - 1)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("smooth: failed to create FFT plan: %w", err)
	}

	kernelFFT, err := forward(plan, kernel, fftSize)
	if err != nil {
		return nil, err
	}

	num, err := convolveSame(plan, kernelFFT, wy, half, fftSize)
	if err != nil {
		return nil, err
	}
	den, err := convolveSame(plan, kernelFFT, ivar, half, fftSize)
	if err != nil {
		return nil, err
	}

	// Relative floor separating genuine zero weight from round-off.
	maxIvar := 0.0
	for _, v := range ivar {
		if v > maxIvar {
			maxIvar = v
		}
	}
	return ratio(num, den, maxIvar*1e-12), nil
}

func forward(plan *algofft.Plan[complex128], data []float64, size int) ([]complex128, error) {
	buf := make([]complex128, size)
	for i, v := range data {
		buf[i] = complex(v, 0)
	}
	if err := plan.Forward(buf, buf); err != nil {
		return nil, fmt.Errorf("smooth: forward FFT failed: %w", err)
	}
	return buf, nil
}

// convolveSame returns the centred len(signal) slice of the linear
// convolution of signal with a kernel of half-width half.
func convolveSame(plan *algofft.Plan[complex128], kernelFFT []complex128, signal []float64, half, size int) ([]float64, error) {
	spec, err := forward(plan, signal, size)
	if err != nil {
		return nil, err
	}

	for i := range spec {
		spec[i] *= kernelFFT[i]
	}

	if err := plan.Inverse(spec, spec); err != nil {
		return nil, fmt.Errorf("smooth: inverse FFT failed: %w", err)
	}

	re := make([]float64, len(signal))
	for i := range re {
		re[i] = real(spec[i+half])
	}

	return re, nil
}
