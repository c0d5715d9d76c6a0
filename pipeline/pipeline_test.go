package pipeline

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/specseq/dsp/smooth"
	"github.com/cwbudde/specseq/instrument"
	"github.com/cwbudde/specseq/internal/testutil"
)

type fixture struct {
	name   string
	header string
	sigma  bool
}

var sixSpectra = []fixture{
	{"ZTF18aaqjovh_20180915_DCT_v1.ascii", "", false},
	{"ZTF18aaqjovh_20180428_LT_v1.ascii", "DATE-OBS= '2018-04-28T05:00:00.000'", false},
	{"ZTF18aaqjovh_20180515_NOT_v1.ascii", "", false},
	{"ZTF18aaqjovh_20180502_P200_v1.ascii", "UTSHUT = 2018-05-02T06:00:00", false},
	{"ZTF18aaqjovh_20180610_Keck1_v1.ascii", "DATE_BEG= '2018-06-10T08:00:00'", true},
	{"ZTF18aaqjovh_20180430_P60_v1.ascii", "OBSUTC: 2018-04-30 09:00:00", false},
}

func writeSequence(t *testing.T, dir string, fixtures []fixture) {
	t.Helper()
	wl := testutil.Grid(3800, 2, 3101) // observed 3800..10000
	for i, f := range fixtures {
		flux := testutil.SyntheticFlux(wl, 6900, 1.5, 0.02, int64(i+1))
		var sigma []float64
		if f.sigma {
			sigma = testutil.DC(0.02, len(wl))
		}
		var header []string
		if f.header != "" {
			header = []string{f.header}
		}
		testutil.WriteSpectrum(t, dir, f.name, header, wl, flux, sigma)
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func testConfig(dir string) Config {
	cfg := DefaultConfig()
	cfg.DataDir = dir
	cfg.Reference.Dir = dir
	return cfg
}

func TestBuildSixSpectra(t *testing.T) {
	dir := t.TempDir()
	writeSequence(t, dir, sixSpectra)

	cfg := testConfig(dir)
	p, err := NewProcessor(cfg, quietLogger())
	require.NoError(t, err)

	fig, err := p.Build()
	require.NoError(t, err)
	require.Len(t, fig.Curves, 6)
	assert.Empty(t, fig.References)

	wantTel := []instrument.Telescope{
		instrument.TelescopeLT,
		instrument.TelescopeP60,
		instrument.TelescopeP200,
		instrument.TelescopeNOT,
		instrument.TelescopeKeck1,
		instrument.TelescopeDCT,
	}

	var epochs, offsets []float64
	for i, c := range fig.Curves {
		assert.Equal(t, wantTel[i], c.Observation.Telescope, "position %d", i)
		epochs = append(epochs, c.Observation.Epoch)
		offsets = append(offsets, c.Offset)

		require.Equal(t, c.Raw.Len(), len(c.Smoothed))
		testutil.RequireFinite(t, c.Smoothed)
		assert.Greater(t, c.Raw.Wavelength[0], 3660.0)
		assert.Less(t, c.Raw.Wavelength[c.Raw.Len()-1], 9000.0)

		width, err := instrument.SmoothingWidth(c.Observation.Telescope)
		require.NoError(t, err)
		assert.Equal(t, width, c.Width)

		// pivot sample sits at exactly 1 - offset
		for j, wl := range c.Raw.Wavelength {
			if wl > 4100 {
				assert.Equal(t, 1-c.Offset, c.Raw.Flux[j])
				break
			}
		}

		assert.Equal(t, i >= 3, c.Masked, "position %d", i)
		assert.Equal(t, c.Observation.Telescope != instrument.TelescopeKeck1, c.Estimated)
	}

	testutil.RequireNonDecreasing(t, epochs)
	for i := 1; i < len(offsets); i++ {
		assert.Greater(t, offsets[i], offsets[i-1])
	}
	assert.Equal(t, "+3.0 d", fmt.Sprintf("%+.1f d", 3.0))
	assert.Equal(t, fmt.Sprintf("%+.1f d", fig.Curves[0].Observation.Epoch), fig.Curves[0].Label())
}

func TestTelluricMaskOnlyLaterSpectra(t *testing.T) {
	dir := t.TempDir()
	writeSequence(t, dir, sixSpectra)

	p, err := NewProcessor(testConfig(dir), quietLogger())
	require.NoError(t, err)
	fig, err := p.Build()
	require.NoError(t, err)

	for i, c := range fig.Curves {
		for j, wl := range c.Raw.Wavelength {
			inBand := wl >= 7150 && wl < 7300
			if inBand && i >= 3 {
				require.Zero(t, c.Raw.InvVar[j], "curve %d at %g", i, wl)
			} else {
				require.Greater(t, c.Raw.InvVar[j], 0.0, "curve %d at %g", i, wl)
			}
		}
	}
}

func TestSequenceNeedsOffsetPerSpectrum(t *testing.T) {
	dir := t.TempDir()
	writeSequence(t, dir, sixSpectra)

	cfg := testConfig(dir)
	cfg.Offsets = []float64{1, 1.5, 2, 3, 4}
	p, err := NewProcessor(cfg, quietLogger())
	require.NoError(t, err)

	_, err = p.Build()
	assert.ErrorIs(t, err, ErrMissingOffset)
}

func TestSelectionRange(t *testing.T) {
	dir := t.TempDir()
	writeSequence(t, dir, sixSpectra)

	cfg := testConfig(dir)
	cfg.Start, cfg.End = 2, 4
	cfg.Offsets = []float64{4, 6}
	p, err := NewProcessor(cfg, quietLogger())
	require.NoError(t, err)

	fig, err := p.Build()
	require.NoError(t, err)
	require.Len(t, fig.Curves, 2)
	assert.Equal(t, instrument.TelescopeP200, fig.Curves[0].Observation.Telescope)
	assert.False(t, fig.Curves[0].Masked, "sorted position 2")
	assert.True(t, fig.Curves[1].Masked, "sorted position 3")
}

func TestSmoothingMethodsAgree(t *testing.T) {
	dir := t.TempDir()
	writeSequence(t, dir, sixSpectra[:2])

	build := func(m smooth.Method) Figure {
		cfg := testConfig(dir)
		cfg.Method = m
		p, err := NewProcessor(cfg, quietLogger())
		require.NoError(t, err)
		fig, err := p.Build()
		require.NoError(t, err)
		return fig
	}

	d := build(smooth.MethodDirect)
	f := build(smooth.MethodFFT)
	require.Len(t, d.Curves, 2)
	for i := range d.Curves {
		diff, err := testutil.MaxAbsDiff(d.Curves[i].Smoothed, f.Curves[i].Smoothed)
		require.NoError(t, err)
		assert.Less(t, diff, 1e-6)
	}
}

func TestReferences(t *testing.T) {
	dir := t.TempDir()
	wl := testutil.Grid(3500, 5, 1400)
	testutil.WriteTable(t, dir, "sn1998bw_a.txt", wl, testutil.SyntheticFlux(wl, 6000, 0.5, 0.01, 3))
	testutil.WriteTable(t, dir, "sn1998bw_b.txt", wl, testutil.SyntheticFlux(wl, 6000, 0.8, 0.01, 4))

	cfg := testConfig(dir)
	cfg.Reference.Entries = []ReferenceEntry{
		{File: "sn1998bw_b.txt", Phase: "+3 d", Offset: 3},
		{File: "sn1998bw_a.txt", Phase: "-2 d", Offset: 2.1},
	}
	p, err := NewProcessor(cfg, quietLogger())
	require.NoError(t, err)

	refs, err := p.References()
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "sn1998bw_b.txt", refs[0].Entry.File, "entries keep configured order")

	for _, r := range refs {
		assert.InDelta(t, 3500/1.0085, r.Spectrum.Wavelength[0], 1e-9)
		for j, w := range r.Spectrum.Wavelength {
			if w > 4100 {
				assert.Equal(t, 1-r.Entry.Offset, r.Spectrum.Flux[j])
				break
			}
		}
	}

	cfg.Reference.Entries = []ReferenceEntry{{File: "missing.txt"}}
	p, err = NewProcessor(cfg, quietLogger())
	require.NoError(t, err)
	_, err = p.References()
	assert.Error(t, err)
}

func TestReferencesDiscoveredByDefault(t *testing.T) {
	dir := t.TempDir()
	wl := testutil.Grid(3500, 5, 1400)
	for i, name := range []string{"bw_e.txt", "bw_a.txt", "bw_c.txt", "bw_b.txt", "bw_d.txt"} {
		testutil.WriteTable(t, dir, name, wl, testutil.SyntheticFlux(wl, 6000, 0.5, 0.01, int64(i)))
	}

	cfg := testConfig(dir)
	cfg.Reference.Phases = []string{"-2 d", "+3 d"}
	p, err := NewProcessor(cfg, quietLogger())
	require.NoError(t, err)

	refs, err := p.References()
	require.NoError(t, err)
	require.Len(t, refs, 5)

	var names []string
	var offsets []float64
	for _, r := range refs {
		names = append(names, r.Entry.File)
		offsets = append(offsets, r.Entry.Offset)
	}
	assert.Equal(t, []string{"bw_a.txt", "bw_b.txt", "bw_c.txt", "bw_d.txt", "bw_e.txt"}, names)
	assert.Equal(t, []float64{2.1, 3, 4, 6, 7.1}, offsets)
	assert.Equal(t, "+3 d", refs[1].Entry.Phase)
	assert.Empty(t, refs[2].Entry.Phase)

	testutil.WriteTable(t, dir, "bw_f.txt", wl, testutil.DC(1, len(wl)))
	_, err = p.References()
	assert.ErrorIs(t, err, ErrMissingOffset, "a sixth reference has no offset")

	cfg.Reference.Entries = []ReferenceEntry{{File: "bw_f.txt", Offset: 1}}
	p, err = NewProcessor(cfg, quietLogger())
	require.NoError(t, err)
	refs, err = p.References()
	require.NoError(t, err)
	require.Len(t, refs, 1, "explicit entries disable discovery")
}

func TestBuildWithDefaultReferences(t *testing.T) {
	dir := t.TempDir()
	writeSequence(t, dir, sixSpectra)
	wl := testutil.Grid(3500, 5, 1400)
	for i := 0; i < 5; i++ {
		testutil.WriteTable(t, dir, fmt.Sprintf("sn1998bw_%d.txt", i), wl, testutil.SyntheticFlux(wl, 6000, 0.5, 0.01, int64(i)))
	}

	p, err := NewProcessor(testConfig(dir), quietLogger())
	require.NoError(t, err)
	fig, err := p.Build()
	require.NoError(t, err)
	assert.Len(t, fig.Curves, 6)
	assert.Len(t, fig.References, 5)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	bad := DefaultConfig()
	bad.End = 0
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.Telluric = Band{Lo: 7300, Hi: 7150}
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.Redshift = -1
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.Reference.Entries = []ReferenceEntry{{Offset: 1}}
	assert.Error(t, bad.Validate())

	_, err := NewProcessor(bad, nil)
	assert.Error(t, err)
}
