// Package core provides the core extension for behold.
// It registers commands: config, guide, serve, version.
package core

import (
	"github.com/jpl-au/behold/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct {
	ctx extension.Context
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.Codecless     = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Init keeps the context for serve, the only core command using the codec.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newGuideCmd(),
		e.newServeCmd(),
		newVersionCmd(),
	}
}

// NoCodecCommands returns commands that run without building the codec.
// config: must be able to fix an invalid marker/separator.
// guide, version: static output.
func (e *Extension) NoCodecCommands() []string {
	return []string{"config", "guide", "version"}
}
