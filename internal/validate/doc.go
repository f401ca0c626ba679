// Package validate provides input validation for behold's configuration and
// tag names.
//
// Each validation function returns nil on success or an error wrapping one of
// the sentinel errors defined in errors.go. Use errors.Is() for checking:
//
//	if errors.Is(err, validate.ErrInvalidMarker) {
//	    // handle bad marker configuration
//	}
//
// # Validation Functions
//
// Marker validates the reserved tag marker character.
// Separator validates the path separator character.
// Tag validates a tag name before it is encoded into a path.
package validate
