package repositories

import "errors"

// ErrNotFound is wrapped by repository errors when a record does not exist,
// so services can map it without matching error strings.
var ErrNotFound = errors.New("record not found")
