package tracking

import "errors"

var ErrNotFound = errors.New("tracking id not found")
