package epoch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/cwbudde/specseq/instrument"
)

// unixEpochMJD is the modified Julian date of 1970-01-01T00:00:00 UTC.
const unixEpochMJD = 40587.0

const secondsPerDay = 86400.0

var (
	// ErrNoTimestamp is returned when a header carries no parsable
	// observation time for the telescope's keyword.
	ErrNoTimestamp = errors.New("epoch: no observation timestamp")

	isoPattern = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})[T ](\d{2}:\d{2}:\d{2}(?:\.\d+)?)`)
)

// MJD converts t to a modified Julian date on the UTC scale.
func MJD(t time.Time) float64 {
	t = t.UTC()
	return float64(t.Unix())/secondsPerDay + float64(t.Nanosecond())/(secondsPerDay*1e9) + unixEpochMJD
}

// ParseISO parses the first ISO-8601 timestamp found in s. Date and time
// may be separated by 'T' or a space; fractional seconds are optional.
// The result is in UTC.
func ParseISO(s string) (time.Time, error) {
	m := isoPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("epoch: no ISO-8601 timestamp in %q", strings.TrimSpace(s))
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", m[1]+"T"+m[2], time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("epoch: parse %q: %w", m[0], err)
	}
	return t, nil
}

// ExtractTimestamp returns the observation time for a file of telescope
// tel with the given header lines. When several lines carry the keyword,
// the last parsable one wins.
func ExtractTimestamp(tel instrument.Telescope, header []string) (time.Time, error) {
	meta := instrument.Info(tel)
	if meta.Name == "" {
		return time.Time{}, fmt.Errorf("%w: %d", instrument.ErrUnknownTelescope, int(tel))
	}
	if meta.HasPlaceholder() {
		return meta.Placeholder, nil
	}

	var (
		found time.Time
		ok    bool
	)
	for _, line := range header {
		idx := strings.Index(line, meta.Marker)
		if idx < 0 {
			continue
		}
		t, err := ParseISO(line[idx+len(meta.Marker):])
		if err != nil {
			continue
		}
		found, ok = t, true
	}
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s keyword %s", ErrNoTimestamp, meta.Name, meta.Marker)
	}
	return found, nil
}
