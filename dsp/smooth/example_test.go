package smooth_test

import (
	"fmt"

	"github.com/cwbudde/specseq/dsp/smooth"
)

func ExampleSmooth() {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 0, 3, 0, 0}
	ivar := []float64{1, 1, 1, 1, 1}

	out, _ := smooth.Smooth(x, y, ivar, 2.5, smooth.WithKernel(smooth.KernelBoxcar))
	fmt.Println(out)

	// Output:
	// [0 1 1 1 0]
}
