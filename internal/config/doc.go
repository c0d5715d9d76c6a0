// Package config loads, normalizes, and validates specseq configuration.
//
// It supplies the defaults of the published sequence, expands user paths
// (including tilde shortcuts), reads TOML files, and converts the result
// into the pipeline and figure settings the CLI hands downstream. Archive
// credentials are not stored here; they come from the environment.
package config
