package instrument

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
	"time"
)

// Telescope identifies the instrument a spectrum was taken with.
type Telescope int

const (
	TelescopeUnknown Telescope = iota
	TelescopeLT
	TelescopeP200
	TelescopeKeck1
	TelescopeNOT
	TelescopeDCT
	TelescopeP60
)

// SmoothingFactor scales the resolution into the smoothing width.
const SmoothingFactor = 3.0

// Metadata holds the static properties of a telescope.
type Metadata struct {
	Name string
	// Resolution is the width of an unresolved line in Angstrom.
	Resolution float64
	Color      color.RGBA
	// Marker is the header keyword carrying the observation time.
	// Empty when the telescope uses a fixed placeholder.
	Marker string
	// Placeholder is the fixed observation time used when the files
	// carry no usable timestamp.
	Placeholder time.Time
}

// HasPlaceholder reports whether the timestamp is fixed rather than read.
func (m Metadata) HasPlaceholder() bool {
	return !m.Placeholder.IsZero()
}

var metadataByType = map[Telescope]Metadata{
	TelescopeLT: {
		Name:       "LT",
		Resolution: 30,
		Color:      color.RGBA{R: 255, B: 255, A: 255},
		Marker:     "DATE-OBS",
	},
	TelescopeP200: {
		Name:       "P200",
		Resolution: 10,
		Color:      color.RGBA{R: 173, G: 216, B: 230, A: 255},
		Marker:     "UTSHUT",
	},
	TelescopeKeck1: {
		// ~7 px line width at 2 A/px
		Name:       "Keck1",
		Resolution: 7 * 2,
		Color:      color.RGBA{R: 255, A: 255},
		Marker:     "DATE_BEG",
	},
	TelescopeNOT: {
		// ~8 px line width at 2.63 A/px
		Name:        "NOT",
		Resolution:  8 * 2.63,
		Color:       color.RGBA{G: 128, A: 255},
		Placeholder: time.Date(2018, time.May, 15, 0, 0, 0, 0, time.UTC),
	},
	TelescopeDCT: {
		// ~7 px line width at 2.2 A/px
		Name:        "DCT",
		Resolution:  7 * 2.2,
		Color:       color.RGBA{R: 255, G: 255, A: 255},
		Placeholder: time.Date(2018, time.September, 14, 0, 0, 0, 0, time.UTC),
	},
	TelescopeP60: {
		Name:       "P60",
		Resolution: 20,
		Color:      color.RGBA{A: 255},
		Marker:     "OBSUTC",
	},
}

var byName = func() map[string]Telescope {
	m := make(map[string]Telescope, len(metadataByType))
	for t, meta := range metadataByType {
		m[meta.Name] = t
	}
	return m
}()

// All returns every known telescope in declaration order.
func All() []Telescope {
	return []Telescope{
		TelescopeLT,
		TelescopeP200,
		TelescopeKeck1,
		TelescopeNOT,
		TelescopeDCT,
		TelescopeP60,
	}
}

// Parse maps a telescope name to its identifier. Matching is exact.
func Parse(name string) (Telescope, error) {
	if t, ok := byName[name]; ok {
		return t, nil
	}
	return TelescopeUnknown, fmt.Errorf("%w: %q", ErrUnknownTelescope, name)
}

// FromFilename returns the telescope encoded as the third
// underscore-delimited token of the file's base name without extension,
// e.g. "ZTF18aaqjovh_20180422_LT_v1.ascii" or "ZTF18aaqjovh_20180422_LT.ascii".
func FromFilename(path string) (Telescope, string, error) {
	base := filepath.Base(path)
	tokens := strings.Split(strings.TrimSuffix(base, filepath.Ext(base)), "_")
	if len(tokens) < 3 {
		return TelescopeUnknown, "", fmt.Errorf("%w: no telescope token in %q", ErrUnknownTelescope, filepath.Base(path))
	}
	name := tokens[2]
	t, err := Parse(name)
	return t, name, err
}

// Info returns static metadata for a telescope. Unknown telescopes yield
// the zero Metadata.
func Info(t Telescope) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}
	return Metadata{}
}

// Resolution returns the line width in Angstrom.
func Resolution(t Telescope) (float64, error) {
	m, ok := metadataByType[t]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownTelescope, int(t))
	}
	return m.Resolution, nil
}

// SmoothingWidth returns the smoothing kernel width for t.
func SmoothingWidth(t Telescope) (float64, error) {
	res, err := Resolution(t)
	if err != nil {
		return 0, err
	}
	return SmoothingFactor * res, nil
}

func (t Telescope) String() string {
	if m, ok := metadataByType[t]; ok {
		return m.Name
	}
	return "unknown"
}
