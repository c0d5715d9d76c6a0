package instrument

import "errors"

// ErrUnknownTelescope is returned for telescope names outside the table.
var ErrUnknownTelescope = errors.New("instrument: unknown telescope")
