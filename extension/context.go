// context.go defines the Context extensions use to reach shared state.
//
// Extensions receive the Context during Init(), after the configuration has
// been loaded and the codec built, not at construction.

package extension

import (
	"github.com/jpl-au/behold/internal/panel"
	"github.com/jpl-au/behold/internal/tagpath"
)

// Context provides extensions controlled access to behold internals.
type Context interface {
	// Codec returns the tagged path codec built from flags and config.
	Codec() *tagpath.Codec

	// Lister returns the directory lister matching the codec's marker.
	Lister() panel.Lister
}

type extContext struct {
	codec  *tagpath.Codec
	lister panel.Lister
}

// NewContext creates a new extension context.
func NewContext(codec *tagpath.Codec, l panel.Lister) Context {
	return &extContext{codec: codec, lister: l}
}

func (c *extContext) Codec() *tagpath.Codec { return c.codec }
func (c *extContext) Lister() panel.Lister  { return c.lister }
