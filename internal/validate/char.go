// char.go validates the two configurable characters of a tagged path: the
// marker that introduces a tag segment and the separator between segments.
//
// Both must be exactly one character. A marker equal to the separator would
// make every segment boundary look like a tag, so the pair is checked
// together.

package validate

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Separator validates a path separator.
//
// Validation rules:
//   - Exactly one character (one rune, any byte length)
//   - Not a null byte or other control character
func Separator(sep string) error {
	if err := single(sep); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSeparator, err)
	}
	return nil
}

// Marker validates a tag marker against the separator it will be used with.
//
// Validation rules:
//   - Exactly one character
//   - Not a control character or whitespace
//   - Different from the separator
func Marker(marker, sep string) error {
	if err := single(marker); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMarker, err)
	}
	r, _ := utf8.DecodeRuneInString(marker)
	if unicode.IsSpace(r) {
		return fmt.Errorf("%w: whitespace marker %q", ErrInvalidMarker, marker)
	}
	if marker == sep {
		return fmt.Errorf("%w: marker %q equals the path separator", ErrInvalidMarker, marker)
	}
	return nil
}

func single(s string) error {
	if s == "" {
		return fmt.Errorf("empty value")
	}
	if utf8.RuneCountInString(s) != 1 {
		return fmt.Errorf("%q is not a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return fmt.Errorf("%q is not valid UTF-8", s)
	}
	if unicode.IsControl(r) {
		return fmt.Errorf("control character %U", r)
	}
	return nil
}
