// Package mcp implements the Model Context Protocol server, exposing the
// tagged path codec to LLM clients: decode, encode, toggle and the panel
// view of a directory.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/behold/internal/panel"
	"github.com/jpl-au/behold/internal/tagpath"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio.
func Serve(codec *tagpath.Codec, l panel.Lister) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(codec, l)

	slog.Info("behold MCP server ready", "version", Version, "transport", "stdio",
		"marker", codec.Marker(), "separator", codec.Separator())

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server with all tools registered.
func NewServer(codec *tagpath.Codec, l panel.Lister) *server.MCPServer {
	s := server.NewMCPServer(
		"behold",
		Version,
		server.WithToolCapabilities(true),
	)
	registerTools(s, &handlers{codec: codec, lister: l})
	return s
}

// handlers carries the shared, immutable codec into tool handlers.
type handlers struct {
	codec  *tagpath.Codec
	lister panel.Lister
}

// registerTools exposes behold operations as MCP tools.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("behold_parse",
			mcp.WithDescription("Decode a tagged path into its base path segments, tags (deepest first) and listing flag"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Tagged path, e.g. /home/user/%work/docs")),
		),
		h.parse,
	)

	s.AddTool(
		mcp.NewTool("behold_format",
			mcp.WithDescription("Encode base path segments and tags into a tagged path"),
			mcp.WithArray("base", mcp.Required(), mcp.WithStringItems(), mcp.Description(`Path segments, root first, e.g. ["/", "home", "user"]`)),
			mcp.WithArray("tags", mcp.WithStringItems(), mcp.Description("Tags, written in the given order")),
		),
		h.format,
	)

	s.AddTool(
		mcp.NewTool("behold_toggle",
			mcp.WithDescription("Switch a tag on or off in a tagged path and return the new path"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Tagged path")),
			mcp.WithString("tag", mcp.Required(), mcp.Description("Tag name")),
			mcp.WithBoolean("off", mcp.Description("Remove the tag instead of adding it")),
		),
		h.toggle,
	)

	s.AddTool(
		mcp.NewTool("behold_listing",
			mcp.WithDescription("Return the path that lists the tags available at a tagged path"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Tagged path")),
		),
		h.listing,
	)

	s.AddTool(
		mcp.NewTool("behold_panel",
			mcp.WithDescription("List the tag toggles of a directory: tags in its path (active) and tags it offers (inactive)"),
			mcp.WithString("location", mcp.Required(), mcp.Description("Directory path or file:// URI")),
		),
		h.panel,
	)

	s.AddTool(
		mcp.NewTool("behold_guide",
			mcp.WithDescription("Get help on tagged path syntax and behold commands"),
			mcp.WithString("topic", mcp.Description("Guide topic (empty for the main guide)")),
		),
		h.guide,
	)
}
