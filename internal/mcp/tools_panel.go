package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpl-au/behold/guide"
	"github.com/jpl-au/behold/internal/log"
	"github.com/jpl-au/behold/internal/panel"
	"github.com/mark3labs/mcp-go/mcp"
)

// panel handles behold_panel tool calls.
func (h *handlers) panel(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	location, err := req.RequireString("location")
	if err != nil {
		return mcp.NewToolResultError("location is required"), nil //nolint:nilerr
	}

	p, err := panel.Open(ctx, h.codec, h.lister, location)
	l := log.Event("mcp:panel", "list").Path(location)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	l.Detail("count", len(p.Toggles)).Write(nil)

	return jsonResult(p)
}

// guide handles behold_guide tool calls.
func (h *handlers) guide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := getString(req, "topic", "")
	content, err := guide.Get(topic)
	if err != nil {
		available, _ := guide.List()
		return mcp.NewToolResultError(fmt.Sprintf("guide %q not found. Available: %s", topic, strings.Join(available, ", "))), nil
	}
	return mcp.NewToolResultText(content), nil
}
