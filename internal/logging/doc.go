// Package logging builds the slog logger used by the CLI.
//
// Console output uses the text handler; JSON output suits pipelines and
// log collectors. The "auto" format picks console when the destination is
// a terminal.
package logging
