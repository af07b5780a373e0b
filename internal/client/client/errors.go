package client

import "errors"

// ErrLocalDataNotAvailable is returned when the local database cannot be
// opened or migrated.
var ErrLocalDataNotAvailable = errors.New("local data unavailable")
