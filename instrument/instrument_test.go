package instrument

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolutionTable(t *testing.T) {
	tests := []struct {
		name string
		tel  Telescope
		want float64
	}{
		{"LT", TelescopeLT, 30},
		{"P200", TelescopeP200, 10},
		{"Keck1", TelescopeKeck1, 14},
		{"NOT", TelescopeNOT, 21.04},
		{"DCT", TelescopeDCT, 15.4},
		{"P60", TelescopeP60, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolution(tt.tel)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Greater(t, got, 0.0)

			width, err := SmoothingWidth(tt.tel)
			require.NoError(t, err)
			assert.InDelta(t, 3*tt.want, width, 1e-9)
		})
	}
}

func TestResolutionAllPositive(t *testing.T) {
	for _, tel := range All() {
		res, err := Resolution(tel)
		require.NoError(t, err, tel.String())
		if res <= 0 || math.IsNaN(res) {
			t.Fatalf("%s: resolution %v, want > 0", tel, res)
		}
	}
}

func TestResolutionUnknown(t *testing.T) {
	_, err := Resolution(TelescopeUnknown)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTelescope))

	_, err = SmoothingWidth(Telescope(99))
	assert.ErrorIs(t, err, ErrUnknownTelescope)
}

func TestParse(t *testing.T) {
	for _, tel := range All() {
		got, err := Parse(tel.String())
		require.NoError(t, err)
		assert.Equal(t, tel, got)
	}

	_, err := Parse("keck1")
	assert.ErrorIs(t, err, ErrUnknownTelescope, "matching is case-sensitive")

	_, err = Parse("Keck")
	assert.ErrorIs(t, err, ErrUnknownTelescope)
}

func TestFromFilename(t *testing.T) {
	tests := []struct {
		path    string
		want    Telescope
		token   string
		wantErr bool
	}{
		{"/data/spectra/ZTF18aaqjovh_20180422_LT_v1.ascii", TelescopeLT, "LT", false},
		{"ZTF18aaqjovh_20180501_P200_v2.ascii", TelescopeP200, "P200", false},
		{"dir_with_underscores/ZTF18aaqjovh_20180601_Keck1_v1.ascii", TelescopeKeck1, "Keck1", false},
		{"ZTF18aaqjovh_20180915_DCT.ascii", TelescopeDCT, "DCT", false},
		{"ZTF18aaqjovh_20180430_P60", TelescopeP60, "P60", false},
		{"ZTF18aaqjovh_20180601_SOAR_v1.ascii", TelescopeUnknown, "SOAR", true},
		{"short_name.ascii", TelescopeUnknown, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, token, err := FromFilename(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownTelescope)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestPlaceholders(t *testing.T) {
	not := Info(TelescopeNOT)
	require.True(t, not.HasPlaceholder())
	assert.Equal(t, "2018-05-15T00:00:00Z", not.Placeholder.Format("2006-01-02T15:04:05Z07:00"))

	dct := Info(TelescopeDCT)
	require.True(t, dct.HasPlaceholder())
	assert.Equal(t, 9, int(dct.Placeholder.Month()))

	for _, tel := range []Telescope{TelescopeLT, TelescopeP200, TelescopeKeck1, TelescopeP60} {
		m := Info(tel)
		assert.False(t, m.HasPlaceholder(), tel.String())
		assert.NotEmpty(t, m.Marker, tel.String())
	}
}
