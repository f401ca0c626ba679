// parse.go implements decoding of tagged paths.
//
// The scan runs from the last segment to the first. A plain segment is held
// back for one step (the pending slot) because a bare marker met next turns
// it into a tag name: in "/a/%/work" the scan sees "work" before "%".

package tagpath

import "strings"

// slot is the pending-segment state of the scan.
type slot struct {
	held bool   // false: nothing seen yet
	seg  string // "" after a tag or listing marker: held but nothing to add
}

// flush prepends the held segment, if any, to base.
func (s slot) flush(base []string) []string {
	if s.held && s.seg != "" {
		return prepend(base, s.seg)
	}
	return base
}

// Parse decodes path into its base segments, tags and listing flag.
//
// Parse never fails. A string with no marker segments decodes to its own
// segments with no tags. The empty string decodes to the zero value.
func (c *Codec) Parse(path string) TaggedPath {
	var (
		out     TaggedPath
		pending slot
	)

	rest := path
	for rest != "" {
		head, last := c.split(rest)

		switch {
		case last == "":
			// rest is a root or ends in a separator: keep it whole and stop.
			out.Base = prepend(pending.flush(out.Base), rest)
			return normalise(out)

		case !strings.HasPrefix(last, c.marker):
			out.Base = pending.flush(out.Base)
			pending = slot{held: true, seg: last}

		case last != c.marker:
			out.Base = pending.flush(out.Base)
			out.Tags = append(out.Tags, last[len(c.marker):])
			pending = slot{held: true}

		case !pending.held:
			out.Listing = true
			pending = slot{held: true}

		default:
			// Bare marker: the segment after it names the tag.
			if pending.seg != "" {
				out.Tags = append(out.Tags, pending.seg)
			}
			pending = slot{held: true}
		}

		rest = head
	}

	out.Base = pending.flush(out.Base)
	return normalise(out)
}

// split separates the last segment from the rest of p. Separators trailing
// the head are dropped unless the head consists only of separators (a root).
func (c *Codec) split(p string) (head, last string) {
	i := strings.LastIndex(p, c.sep) + len(c.sep)
	if i < len(c.sep) {
		return "", p
	}
	head, last = p[:i], p[i:]
	if trimmed := strings.TrimRight(head, c.sep); trimmed != "" {
		head = trimmed
	}
	return head, last
}

func prepend(s []string, v string) []string {
	return append([]string{v}, s...)
}

// normalise replaces nil slices so JSON output always has arrays.
func normalise(t TaggedPath) TaggedPath {
	if t.Base == nil {
		t.Base = []string{}
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return t
}
