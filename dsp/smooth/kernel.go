package smooth

import "math"

// support returns the half-width beyond which the kernel is zero.
func (c config) support(width float64) float64 {
	if c.kernel == KernelBoxcar {
		return width / 2
	}
	return c.cutoff * width
}

// weight evaluates the kernel at distance d.
func (c config) weight(d, width float64) float64 {
	ad := math.Abs(d)
	if ad > c.support(width) {
		return 0
	}
	if c.kernel == KernelBoxcar {
		return 1
	}
	r := d / width
	return math.Exp(-0.5 * r * r)
}

// uniformStep reports the grid step when x is uniformly spaced within the
// relative tolerance tol.
func uniformStep(x []float64, tol float64) (float64, bool) {
	if len(x) < 2 {
		return 0, false
	}
	step := (x[len(x)-1] - x[0]) / float64(len(x)-1)
	if step <= 0 {
		return 0, false
	}
	for i := 1; i < len(x); i++ {
		if math.Abs((x[i]-x[i-1])-step) > tol*step {
			return 0, false
		}
	}
	return step, true
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
