// Package instrument holds the static per-telescope table: spectral
// resolution, plot colour and the header convention used to recover the
// observation timestamp.
//
// The table is fixed at compile time and never mutated. Lookups for
// telescopes that are not in the table fail with [ErrUnknownTelescope]
// instead of returning a numeric fallback.
package instrument
