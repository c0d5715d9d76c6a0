package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// HTTPClient implements Client over HTTP.
type HTTPClient struct {
	base  *url.URL
	creds Credentials
	http  *http.Client
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithCredentials sets the basic auth credentials.
func WithCredentials(c Credentials) Option {
	return func(h *HTTPClient) { h.creds = c }
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) {
		if c != nil {
			h.http = c
		}
	}
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) {
		if d > 0 {
			h.http = &http.Client{Timeout: d, Transport: h.http.Transport}
		}
	}
}

// NewHTTPClient returns a client rooted at baseURL.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("archive: base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("archive: base url %q must be http or https", baseURL)
	}
	h := &HTTPClient{base: base, http: &http.Client{Timeout: time.Minute}}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// List fetches the spectrum index of source.
func (h *HTTPClient) List(ctx context.Context, source string) ([]Entry, error) {
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("archive: empty source name")
	}
	ref := &url.URL{Path: "sources/" + url.PathEscape(source) + "/spectra"}
	resp, err := h.get(ctx, h.base.ResolveReference(ref))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("archive: decode listing: %w", err)
	}
	return entries, nil
}

// Download writes entry to dir/<entry.Name>. The file only appears once
// the body has been read completely.
func (h *HTTPClient) Download(ctx context.Context, entry Entry, dir string) (string, error) {
	name := entry.Name
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", errBadName, entry.Name)
	}
	ref, err := url.Parse(entry.URL)
	if err != nil {
		return "", fmt.Errorf("archive: %s: %w", name, err)
	}

	resp, err := h.get(ctx, h.base.ResolveReference(ref))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	tmp, err := os.CreateTemp(dir, ".download-*")
	if err != nil {
		return "", fmt.Errorf("archive: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("archive: read %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("archive: close %s: %w", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("archive: store %s: %w", name, err)
	}
	return path, nil
}

func (h *HTTPClient) get(ctx context.Context, u *url.URL) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if h.creds.User != "" {
		req.SetBasicAuth(h.creds.User, h.creds.Password)
	}

	resp, err := h.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("archive: request %s: %w", u.Redacted(), err)
	}
	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp, nil
}
