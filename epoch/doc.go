// Package epoch recovers observation times from spectrum files and orders
// the files by time since a reference instant.
//
// Each file's telescope is taken from its file name (see
// [instrument.FromFilename]). The telescope decides how the observation
// time is found: a header keyword followed by an ISO-8601 timestamp, or a
// fixed placeholder for instruments whose files carry no usable time.
// Times are converted to modified Julian date and the epoch is MJD - t0.
//
// Files whose telescope is unknown or whose timestamp cannot be found are
// never given a default epoch. Depending on [Policy] they are skipped with
// a warning or abort the collection.
package epoch
