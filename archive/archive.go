package archive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables holding the archive credentials.
const (
	EnvUser     = "ARCHIVE_USER"
	EnvPassword = "ARCHIVE_PASSWORD"
)

var (
	// ErrNoCredentials is returned when ARCHIVE_USER is unset.
	ErrNoCredentials = errors.New("archive: no credentials")
	errBadName       = errors.New("archive: invalid file name")
)

// Entry is one downloadable spectrum.
type Entry struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	Telescope  string `json:"telescope,omitempty"`
	ObservedAt string `json:"observed_at,omitempty"`
}

// Client lists and fetches spectra for a source.
type Client interface {
	List(ctx context.Context, source string) ([]Entry, error)
	// Download stores entry under dir and returns the written path.
	Download(ctx context.Context, entry Entry, dir string) (string, error)
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Code   int
	Status string
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("archive: %s: unexpected status %s", e.URL, e.Status)
}

// Credentials authenticate archive requests.
type Credentials struct {
	User     string
	Password string
}

// CredentialsFromEnv reads the credentials from the environment after
// loading envFile, when it exists. Variables already set win over the
// file.
func CredentialsFromEnv(envFile string) (Credentials, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Credentials{}, fmt.Errorf("archive: load %s: %w", envFile, err)
		}
	}
	user := strings.TrimSpace(os.Getenv(EnvUser))
	if user == "" {
		return Credentials{}, fmt.Errorf("%w: set %s and %s", ErrNoCredentials, EnvUser, EnvPassword)
	}
	return Credentials{User: user, Password: os.Getenv(EnvPassword)}, nil
}

// FetchAll downloads every spectrum listed for source into dir.
func FetchAll(ctx context.Context, c Client, source, dir string, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	entries, err := c.List(ctx, source)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("archive: create %s: %w", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		path, err := c.Download(ctx, e, dir)
		if err != nil {
			return paths, err
		}
		logger.Info("spectrum downloaded", "source", source, "file", e.Name, "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Status: resp.Status, URL: resp.Request.URL.String()}
	}
	return nil
}
