// Package archive lists and downloads spectra from a remote archive.
//
// The HTTP client speaks a small JSON protocol: GET
// {base}/sources/{name}/spectra returns an array of entries, each with
// a file name and a URL that may be relative to the base. Requests carry
// basic auth credentials read from ARCHIVE_USER and ARCHIVE_PASSWORD.
package archive
