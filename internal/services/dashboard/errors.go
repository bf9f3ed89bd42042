package dashboard

import "errors"

// ErrDataUnavailable wraps store failures; no view is computed when it is returned.
var ErrDataUnavailable = errors.New("dashboard data unavailable")
