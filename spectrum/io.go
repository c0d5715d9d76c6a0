package spectrum

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const maxLineBytes = 1 << 20

// File is a parsed spectrum file.
type File struct {
	// Header holds every non-numeric line (comments included) in file
	// order. Observation metadata is searched here.
	Header   []string
	Spectrum Spectrum
	// Sigma holds the per-sample uncertainty when the file carries a
	// fourth column, nil otherwise.
	Sigma []float64
}

// HasUncertainty reports whether the file carried an uncertainty column.
func (f File) HasUncertainty() bool {
	return f.Sigma != nil
}

// IsHeaderLine reports whether line is header text rather than a data
// row: a '#' comment, or a line whose first field is not a finite number.
// Blank lines are neither.
func IsHeaderLine(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	if strings.HasPrefix(fields[0], "#") {
		return true
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	return err != nil || math.IsNaN(v) || math.IsInf(v, 0)
}

// Read parses a whitespace-separated spectrum: two columns
// (wavelength, flux) or four (wavelength, flux, sky, uncertainty). Lines
// accepted by IsHeaderLine are collected as header. When an
// uncertainty column is present InvVar is set to 1/sigma^2, with 0 for
// non-positive sigma.
func Read(r io.Reader) (File, error) {
	var (
		f     File
		ncols int
		line  int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		if IsHeaderLine(text) {
			f.Header = append(f.Header, sc.Text())
			continue
		}
		fields := strings.Fields(text)

		if ncols == 0 {
			ncols = len(fields)
			if ncols < 2 {
				return File{}, fmt.Errorf("%w: line %d has %d column(s)", ErrColumns, line, ncols)
			}
		}
		if len(fields) != ncols {
			return File{}, fmt.Errorf("%w: line %d has %d columns, expected %d", ErrColumns, line, len(fields), ncols)
		}

		vals, err := parseFields(fields)
		if err != nil {
			return File{}, fmt.Errorf("spectrum: line %d: %w", line, err)
		}

		f.Spectrum.Wavelength = append(f.Spectrum.Wavelength, vals[0])
		f.Spectrum.Flux = append(f.Spectrum.Flux, vals[1])
		if ncols >= 4 {
			f.Sigma = append(f.Sigma, vals[3])
		}
	}
	if err := sc.Err(); err != nil {
		return File{}, fmt.Errorf("spectrum: read: %w", err)
	}

	if f.Spectrum.Len() == 0 {
		return File{}, ErrNoData
	}

	if f.Sigma != nil {
		f.Spectrum.InvVar = make([]float64, len(f.Sigma))
		for i, s := range f.Sigma {
			if s > 0 {
				f.Spectrum.InvVar[i] = 1 / (s * s)
			}
		}
	}

	return f, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("open spectrum: %w", err)
	}
	defer fh.Close()

	f, err := Read(fh)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ReadTable parses a table with a header row naming its columns and
// returns the "wavelength" and "flux" columns. Columns may be separated
// by whitespace or commas; the header may be prefixed with '#'.
func ReadTable(r io.Reader) (Spectrum, error) {
	var (
		s       Spectrum
		wlCol   = -1
		fluxCol = -1
		ncols   int
		line    int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		if ncols == 0 {
			names := splitTable(strings.TrimLeft(text, "# "))
			for i, name := range names {
				switch strings.ToLower(name) {
				case "wavelength":
					wlCol = i
				case "flux":
					fluxCol = i
				}
			}
			if wlCol < 0 {
				return Spectrum{}, fmt.Errorf("%w: wavelength", ErrMissingColumn)
			}
			if fluxCol < 0 {
				return Spectrum{}, fmt.Errorf("%w: flux", ErrMissingColumn)
			}
			ncols = len(names)
			continue
		}
		if strings.HasPrefix(text, "#") {
			continue
		}

		fields := splitTable(text)
		if len(fields) != ncols {
			return Spectrum{}, fmt.Errorf("%w: line %d has %d columns, expected %d", ErrColumns, line, len(fields), ncols)
		}

		wl, err := strconv.ParseFloat(fields[wlCol], 64)
		if err != nil {
			return Spectrum{}, fmt.Errorf("spectrum: line %d: wavelength: %w", line, err)
		}
		flux, err := strconv.ParseFloat(fields[fluxCol], 64)
		if err != nil {
			return Spectrum{}, fmt.Errorf("spectrum: line %d: flux: %w", line, err)
		}
		s.Wavelength = append(s.Wavelength, wl)
		s.Flux = append(s.Flux, flux)
	}
	if err := sc.Err(); err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: read: %w", err)
	}
	if ncols == 0 {
		return Spectrum{}, fmt.Errorf("%w: wavelength", ErrMissingColumn)
	}
	if s.Len() == 0 {
		return Spectrum{}, ErrNoData
	}

	return s, nil
}

// ReadTableFile opens path and parses it with ReadTable.
func ReadTableFile(path string) (Spectrum, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Spectrum{}, fmt.Errorf("open table: %w", err)
	}
	defer fh.Close()

	s, err := ReadTable(fh)
	if err != nil {
		return Spectrum{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func parseFields(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func splitTable(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
