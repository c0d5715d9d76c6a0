package spectrum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/specseq/internal/testutil"
)

func TestReadTwoColumns(t *testing.T) {
	in := `# TELESCOPE: LT
# DATE-OBS= '2018-04-22T05:23:44.123'
SIMPLE = T
4000.0 1.5
4001.0 1.6

4002.0 1.7
`
	f, err := Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Len(t, f.Header, 3)
	assert.Contains(t, f.Header[1], "DATE-OBS")
	assert.False(t, f.HasUncertainty())
	assert.Nil(t, f.Spectrum.InvVar)
	testutil.RequireSliceNearlyEqual(t, f.Spectrum.Wavelength, []float64{4000, 4001, 4002}, 0)
	testutil.RequireSliceNearlyEqual(t, f.Spectrum.Flux, []float64{1.5, 1.6, 1.7}, 0)
}

func TestReadFourColumns(t *testing.T) {
	in := "4000 1.0 0.3 0.5\n4001 2.0 0.3 0.25\n4002 3.0 0.3 0\n"
	f, err := Read(strings.NewReader(in))
	require.NoError(t, err)

	require.True(t, f.HasUncertainty())
	testutil.RequireSliceNearlyEqual(t, f.Sigma, []float64{0.5, 0.25, 0}, 0)
	testutil.RequireSliceNearlyEqual(t, f.Spectrum.InvVar, []float64{4, 16, 0}, 1e-12)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "# only header\n", ErrNoData},
		{"single column", "4000\n4001\n", ErrColumns},
		{"ragged", "4000 1\n4001 1 2\n", ErrColumns},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Read(strings.NewReader("4000 1\n4001 abc\n"))
	require.Error(t, err)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	wl := testutil.Grid(4000, 2, 10)
	path := testutil.WriteSpectrum(t, dir, "x_y_P200.ascii", []string{"UTSHUT = 2018-05-01T04:00:00"}, wl, testutil.Ones(10), nil)

	f, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10, f.Spectrum.Len())
	assert.Len(t, f.Header, 1)

	_, err = ReadFile(dir + "/missing.ascii")
	require.Error(t, err)
}

func TestReadTable(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"whitespace", "wavelength flux\n4000 1\n4001 2\n"},
		{"comma", "flux,wavelength\n1,4000\n2,4001\n"},
		{"commented header", "# wavelength  flux  err\n4000 1 0.1\n4001 2 0.1\n"},
		{"mixed case", "Wavelength Flux\n4000 1\n4001 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ReadTable(strings.NewReader(tt.in))
			require.NoError(t, err)
			testutil.RequireSliceNearlyEqual(t, s.Wavelength, []float64{4000, 4001}, 0)
			testutil.RequireSliceNearlyEqual(t, s.Flux, []float64{1, 2}, 0)
		})
	}
}

func TestReadTableErrors(t *testing.T) {
	_, err := ReadTable(strings.NewReader("wl flux\n1 2\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = ReadTable(strings.NewReader("wavelength f\n1 2\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = ReadTable(strings.NewReader("wavelength flux\n"))
	assert.ErrorIs(t, err, ErrNoData)

	_, err = ReadTable(strings.NewReader("wavelength flux\n1 2 3\n"))
	assert.ErrorIs(t, err, ErrColumns)

	_, err = ReadTable(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestIsHeaderLine(t *testing.T) {
	tests := map[string]bool{
		"":                        false,
		"   ":                     false,
		"4000.0 1.5":              false,
		"-1.5e3 2":                false,
		".5 2":                    false,
		"+7 1":                    false,
		"# DATE-OBS= '2018-04-22'": true,
		"#4000 1.0":               true,
		"SIMPLE = T":              true,
		"-- end of header --":     true,
		"inf 1.0":                 true,
		"NaN values replaced":     true,
	}
	for line, want := range tests {
		assert.Equal(t, want, IsHeaderLine(line), "%q", line)
	}
}

func TestReadNonFiniteLeadIsHeader(t *testing.T) {
	f, err := Read(strings.NewReader("nan 1.0\n4000 1.0\n4001 2.0\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"nan 1.0"}, f.Header)
	assert.Equal(t, 2, f.Spectrum.Len())
}
