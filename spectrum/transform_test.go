package spectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/specseq/internal/testutil"
	"github.com/cwbudde/specseq/stats/continuum"
)

func TestRestFrame(t *testing.T) {
	wl := []float64{3660, 6635.6, 9000}

	testutil.RequireSliceNearlyEqual(t, RestFrame(wl, 0), wl, 0)

	got := RestFrame(wl, 0.05403)
	assert.InDelta(t, 6295.456, got[1], 1e-3)
	for i := range wl {
		assert.InDelta(t, wl[i]/1.05403, got[i], 1e-9)
	}

	s := Spectrum{Wavelength: wl, Flux: testutil.Ones(3)}
	r := s.ToRestFrame(1)
	testutil.RequireSliceNearlyEqual(t, r.Wavelength, []float64{1830, 3317.8, 4500}, 1e-9)
	assert.Equal(t, 6635.6, s.Wavelength[1], "input must not be modified")
}

func TestEstimateInvVar(t *testing.T) {
	wl := testutil.Grid(6000, 5, 200)
	flux := testutil.SyntheticFlux(wl, 5000, 0, 0.05, 11)
	s := Spectrum{Wavelength: wl, Flux: flux}

	got, err := s.EstimateInvVar(6300, 6500)
	require.NoError(t, err)
	require.Len(t, got.InvVar, s.Len())

	sigma, err := continuum.Scatter(wl, flux, 6300, 6500)
	require.NoError(t, err)
	for _, v := range got.InvVar {
		assert.InDelta(t, 1/(sigma*sigma), v, 1e-9)
		assert.GreaterOrEqual(t, v, 0.0)
	}
	assert.Nil(t, s.InvVar)

	flat := Spectrum{Wavelength: wl, Flux: testutil.Ones(len(wl))}
	_, err = flat.EstimateInvVar(6300, 6500)
	assert.ErrorIs(t, err, continuum.ErrFlatContinuum)
}

func TestMaskBand(t *testing.T) {
	wl := []float64{7100, 7149.9, 7150, 7200, 7299.9, 7300, 7400}
	s := Spectrum{Wavelength: wl, Flux: testutil.DC(2, len(wl)), InvVar: []float64{1, 2, 3, 4, 5, 6, 7}}

	got, err := s.MaskBand(7150, 7300)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, got.InvVar, []float64{1, 2, 0, 0, 0, 6, 7}, 0)
	testutil.RequireSliceNearlyEqual(t, got.Flux, s.Flux, 0)
	testutil.RequireSliceNearlyEqual(t, s.InvVar, []float64{1, 2, 3, 4, 5, 6, 7}, 0)

	noIvar := Spectrum{Wavelength: wl, Flux: s.Flux}
	got, err = noIvar.MaskBand(7150, 7300)
	require.NoError(t, err)
	assert.Nil(t, got.InvVar)

	_, err = Spectrum{Wavelength: wl, Flux: []float64{1}}.MaskBand(0, 1)
	require.Error(t, err)
}

func TestClip(t *testing.T) {
	s := Spectrum{
		Wavelength: []float64{3600, 3660, 3661, 8999, 9000},
		Flux:       []float64{1, 2, 3, 4, 5},
		InvVar:     []float64{1, 1, 1, 1, 1},
	}
	got := s.Clip(3660, 9000)
	testutil.RequireSliceNearlyEqual(t, got.Wavelength, []float64{3661, 8999}, 0)
	testutil.RequireSliceNearlyEqual(t, got.Flux, []float64{3, 4}, 0)
	assert.Len(t, got.InvVar, 2)
}

func TestNormalize(t *testing.T) {
	s := Spectrum{
		Wavelength: []float64{4000, 4100, 4100.5, 4200},
		Flux:       []float64{1, 2, 4, 8},
		InvVar:     []float64{1, 1, 1, 1},
	}

	scale, err := s.NormalizationScale(4100)
	require.NoError(t, err)
	assert.Equal(t, 4.0, scale)

	got, gotScale, err := s.Normalize(4100)
	require.NoError(t, err)
	assert.Equal(t, scale, gotScale)
	assert.Equal(t, 1.0, got.Flux[2], "pivot sample must be exactly 1")
	testutil.RequireSliceNearlyEqual(t, got.Flux, []float64{0.25, 0.5, 1, 2}, 0)
	testutil.RequireSliceNearlyEqual(t, got.InvVar, []float64{16, 16, 16, 16}, 0)

	off := got.Offset(3)
	testutil.RequireSliceNearlyEqual(t, off.Flux, []float64{-2.75, -2.5, -2, -1}, 0)
}

func TestNormalizeErrors(t *testing.T) {
	s := Spectrum{Wavelength: []float64{3800, 4000}, Flux: []float64{1, 2}}
	_, err := s.NormalizationScale(4100)
	assert.ErrorIs(t, err, ErrNoPivot)

	z := Spectrum{Wavelength: []float64{4200}, Flux: []float64{0}}
	_, _, err = z.Normalize(4100)
	assert.ErrorIs(t, err, ErrZeroScale)
}
