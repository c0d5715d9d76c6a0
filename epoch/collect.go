package epoch

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/cwbudde/specseq/instrument"
	"github.com/cwbudde/specseq/spectrum"
)

// Policy decides what happens to files that cannot be dated.
type Policy int

const (
	// PolicySkip logs a warning and leaves the file out.
	PolicySkip Policy = iota
	// PolicyFail aborts with the underlying error.
	PolicyFail
)

// ParsePolicy maps "skip" or "fail" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skip":
		return PolicySkip, nil
	case "fail":
		return PolicyFail, nil
	default:
		return PolicySkip, fmt.Errorf("epoch: unsupported policy %q", s)
	}
}

func (p Policy) String() string {
	if p == PolicyFail {
		return "fail"
	}
	return "skip"
}

// Observation is a dated spectrum file.
type Observation struct {
	Path       string
	Telescope  instrument.Telescope
	ObservedAt time.Time
	MJD        float64
	// Epoch is MJD - t0 in days.
	Epoch float64
}

// Options configures Collect.
type Options struct {
	// T0 is the reference MJD; epochs are measured from it.
	T0     float64
	Policy Policy
	Logger *slog.Logger
}

// Discover returns the files in dir matching the doublestar pattern,
// sorted lexicographically.
func Discover(dir, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("epoch: glob %q in %s: %w", pattern, dir, err)
	}
	files := make([]string, len(matches))
	for i, m := range matches {
		files[i] = filepath.Join(dir, filepath.FromSlash(m))
	}
	sort.Strings(files)
	return files, nil
}

// Collect dates every file and returns the observations sorted by
// ascending epoch. Ties keep discovery order.
func Collect(files []string, opts Options) ([]Observation, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	obs := make([]Observation, 0, len(files))
	for _, path := range files {
		o, err := date(path, opts.T0)
		if err != nil {
			if opts.Policy == PolicyFail || !skippable(err) {
				return nil, err
			}
			logger.Warn("skipping undated spectrum",
				"path", path,
				"error", err,
			)
			continue
		}
		logger.Debug("dated spectrum",
			"path", filepath.Base(path),
			"telescope", o.Telescope.String(),
			"mjd", o.MJD,
			"epoch", o.Epoch,
		)
		obs = append(obs, o)
	}

	sort.SliceStable(obs, func(i, j int) bool {
		return obs[i].Epoch < obs[j].Epoch
	})
	return obs, nil
}

// Select returns obs[start:end] clamped to the available range.
func Select(obs []Observation, start, end int) []Observation {
	if start < 0 {
		start = 0
	}
	if end > len(obs) {
		end = len(obs)
	}
	if start >= end {
		return nil
	}
	return obs[start:end]
}

func skippable(err error) bool {
	return errors.Is(err, instrument.ErrUnknownTelescope) || errors.Is(err, ErrNoTimestamp)
}

func date(path string, t0 float64) (Observation, error) {
	tel, _, err := instrument.FromFilename(path)
	if err != nil {
		return Observation{}, err
	}

	var header []string
	if !instrument.Info(tel).HasPlaceholder() {
		header, err = readHeader(path)
		if err != nil {
			return Observation{}, err
		}
	}

	at, err := ExtractTimestamp(tel, header)
	if err != nil {
		return Observation{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	mjd := MJD(at)
	return Observation{
		Path:       path,
		Telescope:  tel,
		ObservedAt: at,
		MJD:        mjd,
		Epoch:      mjd - t0,
	}, nil
}

// readHeader returns the header lines of the file without parsing the
// data rows.
func readHeader(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open spectrum: %w", err)
	}
	defer fh.Close()

	var header []string
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if line := sc.Text(); spectrum.IsHeaderLine(line) {
			header = append(header, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return header, nil
}
