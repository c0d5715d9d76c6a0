package smooth

import (
	"testing"

	"github.com/cwbudde/specseq/internal/testutil"
)

func BenchmarkSmooth(b *testing.B) {
	n := 4096
	x := uniformGrid(3600, 1.5, n)
	y := testutil.DeterministicNoise(3, 1, n)
	ivar := testutil.Ones(n)

	for _, m := range []struct {
		name   string
		method Method
	}{
		{"direct", MethodDirect},
		{"fft", MethodFFT},
	} {
		b.Run(m.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = Smooth(x, y, ivar, 90, WithMethod(m.method))
			}
		})
	}
}
