// errors.go defines sentinel errors for validation failures.
//
// Detailed messages are provided by wrapping these with fmt.Errorf in the
// validation functions.

package validate

import "errors"

var (
	ErrInvalidMarker    = errors.New("invalid marker")
	ErrInvalidSeparator = errors.New("invalid separator")
	ErrInvalidTag       = errors.New("invalid tag")
)
