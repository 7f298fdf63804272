// Internal/collector/errors.go.

package collector

import "errors"

// Load failures come in three kinds; callers match them with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrLoadFailure     = errors.New("load failure")
)
