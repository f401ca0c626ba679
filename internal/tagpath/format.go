package tagpath

import "strings"

// Format encodes t as a path: the base segments followed by one
// marker-prefixed segment per tag, in Tags order.
//
// Tags are always written in the single-segment form. Duplicates are kept.
// Listing is not encoded; see the panel package for listing paths.
func (c *Codec) Format(t TaggedPath) string {
	var b strings.Builder
	for _, seg := range t.Base {
		c.join(&b, seg)
	}
	for _, tag := range t.Tags {
		c.join(&b, c.Tag(tag))
	}
	return b.String()
}

// Tag returns the single-segment encoding of tag.
func (c *Codec) Tag(tag string) string {
	return c.marker + tag
}

// join appends seg, adding a separator unless b is empty or already ends
// with one.
func (c *Codec) join(b *strings.Builder, seg string) {
	if b.Len() > 0 && !strings.HasSuffix(b.String(), c.sep) {
		b.WriteString(c.sep)
	}
	b.WriteString(seg)
}
