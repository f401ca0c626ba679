// codec.go holds the codec configuration: the marker and separator.
//
// Configuration is checked once in New. A bad marker would not fail later,
// it would silently classify segments wrongly, so Parse and Format assume a
// valid pair and never return errors.

package tagpath

import (
	"fmt"

	"github.com/jpl-au/behold/internal/validate"
)

// Defaults used by the tagging filesystem.
const (
	DefaultMarker    = "%"
	DefaultSeparator = "/"
)

// ConfigurationError reports an unusable marker or separator.
type ConfigurationError struct {
	Field string // "marker" or "separator"
	Value string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("tagpath configuration: %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Codec parses and formats tagged paths for one marker/separator pair.
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	marker string
	sep    string
}

// New returns a codec for the given marker and separator.
// Both must be single characters and must differ.
func New(marker, separator string) (*Codec, error) {
	if err := validate.Separator(separator); err != nil {
		return nil, &ConfigurationError{Field: "separator", Value: separator, Err: err}
	}
	if err := validate.Marker(marker, separator); err != nil {
		return nil, &ConfigurationError{Field: "marker", Value: marker, Err: err}
	}
	return &Codec{marker: marker, sep: separator}, nil
}

// Default returns the codec for "%" tags in "/" separated paths.
func Default() *Codec {
	return &Codec{marker: DefaultMarker, sep: DefaultSeparator}
}

// Marker returns the tag marker.
func (c *Codec) Marker() string { return c.marker }

// Separator returns the path separator.
func (c *Codec) Separator() string { return c.sep }
