// tools_tagpath.go implements the codec tools: parse, format, toggle and
// listing. None of them touch the filesystem.
//
// Errors are returned as tool error results so the client gets a message it
// can act on rather than a protocol failure.

package mcp

import (
	"context"

	"github.com/jpl-au/behold/internal/log"
	"github.com/jpl-au/behold/internal/panel"
	"github.com/jpl-au/behold/internal/tagpath"
	"github.com/jpl-au/behold/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
)

// parse handles behold_parse tool calls.
func (h *handlers) parse(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	tp := h.codec.Parse(path)
	log.Event("mcp:parse", "parse").Path(path).Detail("tags", len(tp.Tags)).Write(nil)

	return jsonResult(tp)
}

// format handles behold_format tool calls.
func (h *handlers) format(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	base := getStrings(req, "base")
	if base == nil {
		return mcp.NewToolResultError("base is required"), nil
	}
	tags := getStrings(req, "tags")
	for _, t := range tags {
		if err := validate.Tag(t, h.codec.Separator()); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	out := h.codec.Format(tagpath.TaggedPath{Base: base, Tags: tags})
	log.Event("mcp:format", "format").Resolved(out).Detail("tags", len(tags)).Write(nil)

	return mcp.NewToolResultText(out), nil
}

// toggle handles behold_toggle tool calls.
func (h *handlers) toggle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}
	tag, err := req.RequireString("tag")
	if err != nil {
		return mcp.NewToolResultError("tag is required"), nil //nolint:nilerr
	}
	on := !getBool(req, "off", false)

	out, err := panel.Apply(h.codec, path, tag, on)
	log.Event("mcp:toggle", "toggle").Path(path).Resolved(out).
		Detail("tag", tag).Detail("on", on).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(out), nil
}

// listing handles behold_listing tool calls.
func (h *handlers) listing(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	out := panel.ListingPath(h.codec, h.codec.Parse(path))
	log.Event("mcp:listing", "listing").Path(path).Resolved(out).Write(nil)

	return mcp.NewToolResultText(out), nil
}
