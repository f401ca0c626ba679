// toggle.go holds the pure path edits behind a toggle press. They only use
// the codec, so the CLI and MCP server can toggle paths that are not mounted.

package panel

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/jpl-au/behold/internal/tagpath"
	"github.com/jpl-au/behold/internal/validate"
)

// Apply parses path, switches tag on or off and formats the result.
// Switching on a tag that is already present, or off one that is absent,
// leaves the tags unchanged. The listing flag is dropped.
func Apply(codec *tagpath.Codec, path, tag string, on bool) (string, error) {
	if err := validate.Tag(tag, codec.Separator()); err != nil {
		return "", err
	}

	tp := codec.Parse(path)
	switch {
	case on && !tp.Has(tag):
		tp.Tags = append(tp.Tags, tag)
	case !on:
		tp.Tags = slices.DeleteFunc(tp.Tags, func(t string) bool { return t == tag })
	}
	return codec.Format(tp), nil
}

// ListingPath returns the path that asks for the tags available at t:
// t formatted, followed by a bare marker.
func ListingPath(codec *tagpath.Codec, t tagpath.TaggedPath) string {
	s := codec.Format(t)
	switch {
	case s == "":
		return codec.Marker()
	case strings.HasSuffix(s, codec.Separator()):
		return s + codec.Marker()
	default:
		return s + codec.Separator() + codec.Marker()
	}
}

// Suggest returns the candidate closest to name by edit distance, or ""
// when nothing is close enough to be a likely typo.
func Suggest(name string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(name, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(name)/3) {
		return ""
	}
	return best
}

// unescape percent-decodes a URI path. Each valid %XX escape is decoded
// on its own and anything else is kept verbatim, so an unencoded "%work"
// segment survives next to an encoded space.
func unescape(p string) string {
	if !strings.Contains(p, "%") {
		return p
	}
	b := make([]byte, 0, len(p))
	for i := 0; i < len(p); i++ {
		if p[i] == '%' && i+2 < len(p) && isHex(p[i+1]) && isHex(p[i+2]) {
			b = append(b, unhex(p[i+1])<<4|unhex(p[i+2]))
			i += 2
			continue
		}
		b = append(b, p[i])
	}
	return string(b)
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}
