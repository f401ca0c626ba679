// Package tagpath encodes directory tags inside filesystem paths.
//
// A tagged path is an ordinary path in which some segments start with a
// reserved marker character (default "%"). Such a segment names a tag
// instead of a directory:
//
//	/home/user/%work/%urgent/docs   base /home/user/docs, tags urgent, work
//	/home/user/%/work               base /home/user, tag work (two-segment form)
//	/home/user/%                    base /home/user, listing mode
//
// [Codec.Parse] decodes a path into a [TaggedPath]; [Codec.Format] encodes it
// back. Both are pure and total: every string decodes and every value
// formats. Neither touches the filesystem.
//
// # Tag order
//
// Parse scans from the deepest segment towards the root, so Tags holds tags
// in the reverse of their textual order. Format writes Tags in slice order.
// A round trip through Format and Parse therefore reverses a list of two or
// more tags. Use [TaggedPath.SourceOrder] when textual order matters.
package tagpath

import "slices"

// TaggedPath is the decoded form of a tagged path.
type TaggedPath struct {
	// Base holds the real path segments, root first. A root such as "/" is
	// kept as its own segment.
	Base []string `json:"base"`

	// Tags holds tag names in the order they were met scanning right to left.
	Tags []string `json:"tags"`

	// Listing is set when the deepest segment was a bare marker, which asks
	// for the tags available in the directory rather than filtering by tag.
	Listing bool `json:"listing"`
}

// Has reports whether tag is one of the path's tags.
func (t TaggedPath) Has(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

// SourceOrder returns the tags in the order they appear in the path text.
func (t TaggedPath) SourceOrder() []string {
	out := slices.Clone(t.Tags)
	slices.Reverse(out)
	return out
}
