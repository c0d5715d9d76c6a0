package testutil

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// DeterministicNoise generates uniform noise in [-amplitude, amplitude]
// with a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued slice.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// Grid returns n wavelengths starting at start with spacing step.
func Grid(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// SyntheticFlux returns a sloped continuum with one Gaussian emission line
// at center and deterministic noise.
func SyntheticFlux(wavelength []float64, center, amplitude, noise float64, seed int64) []float64 {
	n := DeterministicNoise(seed, noise, len(wavelength))
	out := make([]float64, len(wavelength))
	for i, wl := range wavelength {
		d := (wl - center) / 30
		out[i] = 1 + 2e-4*(wl-wavelength[0]) + amplitude*math.Exp(-0.5*d*d) + n[i]
	}
	return out
}

// WriteSpectrum writes a whitespace-separated spectrum file with the
// given header lines (each prefixed with "# "). When sigma is non-nil a
// four-column layout (wavelength, flux, sky, sigma) is written.
func WriteSpectrum(t testing.TB, dir, name string, header []string, wavelength, flux, sigma []float64) string {
	t.Helper()

	var b strings.Builder
	for _, h := range header {
		b.WriteString("# ")
		b.WriteString(h)
		b.WriteByte('\n')
	}
	for i := range wavelength {
		if sigma != nil {
			fmt.Fprintf(&b, "%.4f %.8g %.8g %.8g\n", wavelength[i], flux[i], 0.0, sigma[i])
		} else {
			fmt.Fprintf(&b, "%.4f %.8g\n", wavelength[i], flux[i])
		}
	}

	return WriteFile(t, dir, name, b.String())
}

// WriteTable writes a reference table with named wavelength and flux
// columns.
func WriteTable(t testing.TB, dir, name string, wavelength, flux []float64) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("wavelength flux\n")
	for i := range wavelength {
		fmt.Fprintf(&b, "%.4f %.8g\n", wavelength[i], flux[i])
	}

	return WriteFile(t, dir, name, b.String())
}

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
