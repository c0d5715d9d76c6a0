package smooth

import (
	"fmt"
	"strings"
)

// Kernel selects the weighting function.
type Kernel int

const (
	// KernelGaussian weights by exp(-d^2 / (2 L^2)).
	KernelGaussian Kernel = iota
	// KernelBoxcar weights 1 for |d| <= L/2 and 0 elsewhere.
	KernelBoxcar
)

func (k Kernel) String() string {
	switch k {
	case KernelGaussian:
		return "gaussian"
	case KernelBoxcar:
		return "boxcar"
	default:
		return "unknown"
	}
}

// ParseKernel maps "gaussian" or "boxcar" to a Kernel.
func ParseKernel(s string) (Kernel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "gaussian":
		return KernelGaussian, nil
	case "boxcar":
		return KernelBoxcar, nil
	default:
		return KernelGaussian, fmt.Errorf("smooth: unknown kernel %q", s)
	}
}

// Method selects the evaluation strategy.
type Method int

const (
	MethodAuto Method = iota
	MethodDirect
	MethodFFT
)

func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodDirect:
		return "direct"
	case MethodFFT:
		return "fft"
	default:
		return "unknown"
	}
}

// ParseMethod maps "auto", "direct" or "fft" to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return MethodAuto, nil
	case "direct":
		return MethodDirect, nil
	case "fft":
		return MethodFFT, nil
	default:
		return MethodAuto, fmt.Errorf("smooth: unknown method %q", s)
	}
}

const (
	defaultCutoff = 5.0
	// Below this length the direct scan is cheaper than planning FFTs.
	defaultFFTThreshold = 2048
	defaultUniformTol   = 1e-6
)

// Option configures Smooth.
type Option func(*config)

type config struct {
	kernel       Kernel
	method       Method
	cutoff       float64
	fftThreshold int
	uniformTol   float64
}

func defaultConfig() config {
	return config{
		kernel:       KernelGaussian,
		method:       MethodAuto,
		cutoff:       defaultCutoff,
		fftThreshold: defaultFFTThreshold,
		uniformTol:   defaultUniformTol,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithKernel selects the kernel shape.
func WithKernel(k Kernel) Option {
	return func(cfg *config) {
		cfg.kernel = k
	}
}

// WithMethod forces an evaluation strategy.
func WithMethod(m Method) Option {
	return func(cfg *config) {
		cfg.method = m
	}
}

// WithCutoff sets the Gaussian support in units of the width.
func WithCutoff(c float64) Option {
	return func(cfg *config) {
		if c > 0 {
			cfg.cutoff = c
		}
	}
}

// WithFFTThreshold sets the minimum length at which MethodAuto uses FFTs.
func WithFFTThreshold(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.fftThreshold = n
		}
	}
}

// WithUniformTolerance sets the relative spacing tolerance used to decide
// whether a grid is uniform.
func WithUniformTolerance(tol float64) Option {
	return func(cfg *config) {
		if tol > 0 {
			cfg.uniformTol = tol
		}
	}
}
