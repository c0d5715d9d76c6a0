package config

const (
	defaultDataDir = "."
	defaultPattern = "*.ascii"
	defaultOutput  = "spec_sequence.eps"

	defaultRedshift     = 0.05403
	defaultT0           = 58233.17615
	defaultStart        = 0
	defaultEnd          = 6
	defaultPolicy       = "skip"
	defaultTelluricFrom = 3
	defaultPivot        = 4100.0

	defaultReferenceRedshift = 0.0085
	defaultReferencePattern  = "*.txt"

	defaultWidthInches  = 6.0
	defaultHeightInches = 10.0
	defaultDPI          = 500.0
	defaultXMin         = 3660.0
	defaultXMax         = 10140.0
	defaultYMin         = -8.0
	defaultYMax         = -0.5
	defaultLegend       = "98bw at similar phase"
	defaultFontVariant  = "Serif"
	defaultKernel       = "gaussian"
	defaultMethod       = "auto"

	defaultLogFormat = "auto"
	defaultLogLevel  = "info"

	defaultArchiveTimeout = 60
	defaultEnvFile        = ".env"
)

// Default returns a Config populated with the published sequence's values.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			Pattern: defaultPattern,
			Output:  defaultOutput,
			// ReferenceDir and DownloadDir fall back to DataDir.
		},
		Source: Source{
			Redshift:           defaultRedshift,
			T0:                 defaultT0,
			Start:              defaultStart,
			End:                defaultEnd,
			Offsets:            []float64{2, 3, 4, 6, 8, 10},
			Policy:             defaultPolicy,
			Continuum:          []float64{6300, 6500},
			Telluric:           []float64{7150, 7300},
			TelluricFrom:       defaultTelluricFrom,
			Clip:               []float64{3660, 9000},
			Pivot:              defaultPivot,
			UseFileUncertainty: true,
		},
		Reference: Reference{
			Redshift: defaultReferenceRedshift,
			Pattern:  defaultReferencePattern,
			Offsets:  []float64{2.1, 3, 4, 6, 7.1},
		},
		Render: Render{
			WidthInches:  defaultWidthInches,
			HeightInches: defaultHeightInches,
			DPI:          defaultDPI,
			XRange:       []float64{defaultXMin, defaultXMax},
			YRange:       []float64{defaultYMin, defaultYMax},
			Legend:       defaultLegend,
			FontVariant:  defaultFontVariant,
			Kernel:       defaultKernel,
			Method:       defaultMethod,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Archive: Archive{
			TimeoutSeconds: defaultArchiveTimeout,
			EnvFile:        defaultEnvFile,
		},
	}
}
