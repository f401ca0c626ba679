// serve.go implements "behold serve", the MCP server over stdio.
//
// Unlike other commands serve blocks until the client disconnects.

package core

import (
	"github.com/jpl-au/behold/internal/mcp"
	"github.com/spf13/cobra"
)

func (e *Extension) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio.

The server uses the same marker and separator as the CLI:
  behold serve --marker '#'`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve(e.ctx.Codec(), e.ctx.Lister())
		},
	}
}
