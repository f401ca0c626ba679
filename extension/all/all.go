// Package all imports all built-in behold extensions.
// Import this package to register all built-in commands.
package all

import (
	// Each registers itself via init()
	_ "github.com/jpl-au/behold/extension/core"
	_ "github.com/jpl-au/behold/extension/panel"
	_ "github.com/jpl-au/behold/extension/tagpath"
)
