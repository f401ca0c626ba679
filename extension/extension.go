// Package extension provides the plugin architecture for behold. Extensions
// group related commands and register at init time, so features can be added
// without touching the root command.
package extension

import "github.com/spf13/cobra"

// Extension defines the contract for behold extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command
}

// Initializable extensions receive the shared Context before their
// commands run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Codecless is an optional interface for extensions with commands that must
// run without a working codec. Commands returned by NoCodecCommands() skip
// codec construction in PersistentPreRunE, so "config" can repair a bad
// marker setting that would otherwise stop every command.
type Codecless interface {
	NoCodecCommands() []string
}
