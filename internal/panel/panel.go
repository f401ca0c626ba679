// Package panel is the headless model behind the file manager's tag bar.
//
// For a directory being browsed it lists one toggle per tag: the tags
// already encoded in the directory's path (active) followed by the tags the
// directory offers (inactive). Pressing a toggle yields the path to navigate
// to, computed with the tagpath codec. Rendering the toggles is left to the
// caller (the CLI renders them with lipgloss, the MCP server as JSON).
package panel

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/jpl-au/behold/internal/tagpath"
)

var (
	// ErrNotFileURI is returned for URIs with a scheme other than file://.
	ErrNotFileURI = errors.New("not a file URI")
	// ErrNotDirectory is returned when the location is not an existing directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrNoTags is returned when neither the path nor the directory has any tags.
	ErrNoTags = errors.New("there are no tags defined")
	// ErrUnknownTag is returned when toggling a tag the panel does not show.
	ErrUnknownTag = errors.New("unknown tag")
)

// Lister returns the tag names available in a directory.
type Lister interface {
	Available(ctx context.Context, dir string) ([]string, error)
}

// Toggle is one tag button.
type Toggle struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
	// Path is where pressing the toggle navigates to.
	Path string `json:"path"`
}

// Panel holds the toggles for one location.
type Panel struct {
	Location string             `json:"location"`
	Tagged   tagpath.TaggedPath `json:"tagged"`
	Toggles  []Toggle           `json:"toggles"`

	codec *tagpath.Codec
}

// Open builds the panel for location, which may be a plain path or a
// file:// URI.
func Open(ctx context.Context, codec *tagpath.Codec, l Lister, location string) (*Panel, error) {
	dir, err := Resolve(location)
	if err != nil {
		return nil, err
	}
	// A trailing separator would make the codec keep the whole path as one
	// segment and lose its tags.
	if trimmed := strings.TrimRight(dir, codec.Separator()); trimmed != "" {
		dir = trimmed
	}

	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	available, err := l.Available(ctx, dir)
	if err != nil {
		return nil, err
	}

	p := &Panel{Location: dir, Tagged: codec.Parse(dir), codec: codec}

	names := slices.Clone(p.Tagged.Tags)
	for _, name := range available {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, ErrNoTags
	}

	for _, name := range names {
		active := p.Tagged.Has(name)
		next, err := Apply(codec, dir, name, !active)
		if err != nil {
			return nil, err
		}
		p.Toggles = append(p.Toggles, Toggle{Name: name, Active: active, Path: next})
	}
	return p, nil
}

// Names returns the toggle names in display order.
func (p *Panel) Names() []string {
	names := make([]string, len(p.Toggles))
	for i, t := range p.Toggles {
		names[i] = t.Name
	}
	return names
}

// Toggle returns the path reached by switching tag name on or off.
func (p *Panel) Toggle(name string, on bool) (string, error) {
	if !slices.Contains(p.Names(), name) {
		if s := Suggest(name, p.Names()); s != "" {
			return "", fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownTag, name, s)
		}
		return "", fmt.Errorf("%w: %q", ErrUnknownTag, name)
	}
	return Apply(p.codec, p.Location, name, on)
}

// Resolve turns a location into a plain path. file:// URIs are
// percent-decoded; any other scheme is rejected.
func Resolve(location string) (string, error) {
	scheme, rest, ok := strings.Cut(location, "://")
	if !ok || !isScheme(scheme) {
		return location, nil
	}
	if !strings.EqualFold(scheme, "file") {
		return "", fmt.Errorf("%w: %s", ErrNotFileURI, location)
	}
	rest = strings.TrimPrefix(rest, "localhost")
	if !strings.HasPrefix(rest, "/") {
		return "", fmt.Errorf("%w: remote host in %s", ErrNotFileURI, location)
	}
	return unescape(rest), nil
}

// isScheme reports whether s is a syntactically valid URI scheme.
func isScheme(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return s != ""
}
