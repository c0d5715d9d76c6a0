package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains input and output locations.
type Paths struct {
	DataDir      string `toml:"data_dir"`
	Pattern      string `toml:"pattern"`
	Output       string `toml:"output"`
	ReferenceDir string `toml:"reference_dir"`
	DownloadDir  string `toml:"download_dir"`
}

// Source describes the transient and how its spectra are prepared.
type Source struct {
	Name     string  `toml:"name"`
	Redshift float64 `toml:"redshift"`
	// T0 is the MJD of the last non-detection.
	T0      float64   `toml:"t0"`
	Start   int       `toml:"start"`
	End     int       `toml:"end"`
	Offsets []float64 `toml:"offsets"`
	// Policy is "skip" or "fail" for spectra that cannot be dated.
	Policy             string    `toml:"policy"`
	Continuum          []float64 `toml:"continuum"`
	Telluric           []float64 `toml:"telluric"`
	TelluricFrom       int       `toml:"telluric_from"`
	Clip               []float64 `toml:"clip"`
	Pivot              float64   `toml:"pivot"`
	UseFileUncertainty bool      `toml:"use_file_uncertainty"`
}

// ReferenceEntry is one comparison spectrum.
type ReferenceEntry struct {
	File   string  `toml:"file"`
	Phase  string  `toml:"phase"`
	Offset float64 `toml:"offset"`
}

// Reference configures the comparison overlay. Without explicit entries,
// files matching Pattern in paths.reference_dir are taken in name order
// and keyed to Offsets and Phases.
type Reference struct {
	Redshift float64          `toml:"redshift"`
	Pattern  string           `toml:"pattern"`
	Offsets  []float64        `toml:"offsets"`
	Phases   []string         `toml:"phases"`
	Entries  []ReferenceEntry `toml:"entries"`
}

// Render contains figure geometry, typography and smoothing choices.
type Render struct {
	WidthInches       float64   `toml:"width_in"`
	HeightInches      float64   `toml:"height_in"`
	DPI               float64   `toml:"dpi"`
	XRange            []float64 `toml:"x_range"`
	YRange            []float64 `toml:"y_range"`
	Legend            string    `toml:"legend"`
	FontVariant       string    `toml:"font_variant"`
	ColorByInstrument bool      `toml:"color_by_instrument"`
	Kernel            string    `toml:"kernel"`
	Method            string    `toml:"method"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Archive configures the spectrum download client. Credentials are read
// from ARCHIVE_USER and ARCHIVE_PASSWORD, optionally loaded from EnvFile.
type Archive struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	EnvFile        string `toml:"env_file"`
}

// Config encapsulates all configuration values for specseq.
type Config struct {
	Paths     Paths     `toml:"paths"`
	Source    Source    `toml:"source"`
	Reference Reference `toml:"reference"`
	Render    Render    `toml:"render"`
	Logging   Logging   `toml:"logging"`
	Archive   Archive   `toml:"archive"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/specseq/config.toml")
}

// Load locates, parses, and validates a configuration file. It returns the
// config, the path it resolved, and whether that file existed. A missing
// file yields the defaults.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file).DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	projectPath, err := filepath.Abs("specseq.toml")
	if err != nil {
		return "", false, err
	}
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Sample returns the embedded sample configuration.
func Sample() string {
	return sampleConfig
}
