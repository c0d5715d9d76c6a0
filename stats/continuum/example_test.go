package continuum_test

import (
	"fmt"

	"github.com/cwbudde/specseq/stats/continuum"
)

func ExampleScatter() {
	wl := []float64{6290, 6300, 6400, 6500, 6510}
	flux := []float64{9, 1, 3, 1, 9}

	sigma, _ := continuum.Scatter(wl, flux, 6300, 6500)
	iv, _ := continuum.InverseVariance(sigma, len(wl))
	fmt.Printf("sigma=%.4f ivar=%.4f\n", sigma, iv[0])

	// Output:
	// sigma=0.9428 ivar=1.1250
}
