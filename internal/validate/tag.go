// tag.go implements tag name validation.
//
// Tags are labels encoded as a single path segment, so unlike free-form
// labels they cannot contain the separator. The codec never calls this:
// Parse accepts whatever a path contains. Callers that add tags on a user's
// behalf (toggle, panel, MCP) validate first so the formatted path decodes
// back to the same tag.

package validate

import (
	"fmt"
	"strings"
)

// Tag validates a tag name for encoding with the given separator.
//
// Validation rules:
//   - Empty tags rejected (would format to a bare marker, i.e. listing mode)
//   - Null bytes rejected
//   - Separator rejected (the tag would split into two segments)
func Tag(t, sep string) error {
	if t == "" {
		return fmt.Errorf("%w: empty tag", ErrInvalidTag)
	}
	if strings.ContainsRune(t, 0) {
		return fmt.Errorf("%w: null byte in tag", ErrInvalidTag)
	}
	if sep != "" && strings.Contains(t, sep) {
		return fmt.Errorf("%w: tag %q contains separator %q", ErrInvalidTag, t, sep)
	}
	return nil
}
