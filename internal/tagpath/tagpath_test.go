package tagpath

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/jpl-au/behold/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c := Default()

	tests := []struct {
		name    string
		input   string
		base    []string
		tags    []string
		listing bool
	}{
		{"empty", "", []string{}, []string{}, false},
		{"root", "/", []string{"/"}, []string{}, false},
		{"plain absolute", "/home/user/docs", []string{"/", "home", "user", "docs"}, []string{}, false},
		{"plain relative", "home/user", []string{"home", "user"}, []string{}, false},
		{"single segment", "docs", []string{"docs"}, []string{}, false},
		{"inline tags reversed", "/home/user/%work/%urgent/docs", []string{"/", "home", "user", "docs"}, []string{"urgent", "work"}, false},
		{"listing", "/home/user/%", []string{"/", "home", "user"}, []string{}, true},
		{"two-segment form", "/home/user/%/work", []string{"/", "home", "user"}, []string{"work"}, false},
		{"inline form", "/home/user/%work", []string{"/", "home", "user"}, []string{"work"}, false},
		{"listing after tag", "/home/%work/%", []string{"/", "home"}, []string{"work"}, true},
		{"two-segment below listing", "/a/%/b/%", []string{"/", "a"}, []string{"b"}, true},
		{"mixed forms", "/a/%x/b/%/y", []string{"/", "a", "b"}, []string{"y", "x"}, false},
		{"tag only", "%work", []string{}, []string{"work"}, false},
		{"marker not leading", "/a/50%off", []string{"/", "a", "50%off"}, []string{}, false},
		{"double marker", "/a/%%x", []string{"/", "a"}, []string{"%x"}, false},
		{"repeated separators", "/a//b", []string{"/", "a", "b"}, []string{}, false},
		{"double root", "//a", []string{"//", "a"}, []string{}, false},
		{"trailing separator", "/a/b/", []string{"/a/b/"}, []string{}, false},
		{"trailing separator keeps tag text whole", "%x/", []string{"%x/"}, []string{}, false},
		{"trailing separator after tag", "/a/%x/", []string{"/a/%x/"}, []string{}, false},
		{"bare marker after tag adds nothing", "/a/%/%x", []string{"/", "a"}, []string{"x"}, false},
		{"bare marker after listing adds nothing", "/a/%/%", []string{"/", "a"}, []string{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Parse(tt.input)
			assert.Equal(t, tt.base, got.Base, "base of %q", tt.input)
			assert.Equal(t, tt.tags, got.Tags, "tags of %q", tt.input)
			assert.Equal(t, tt.listing, got.Listing, "listing of %q", tt.input)
		})
	}
}

func TestParse_Invariants(t *testing.T) {
	c := Default()
	inputs := []string{
		"/a/%/%/b", "%/%", "%", "/%/%x/%", "a/%/%/%/b/%", "/home/user/%work/%/x/%",
	}
	for _, in := range inputs {
		got := c.Parse(in)
		for _, seg := range got.Base {
			assert.False(t, strings.HasPrefix(seg, "%"), "Parse(%q) base segment %q starts with marker", in, seg)
		}
		for _, tag := range got.Tags {
			assert.NotEmpty(t, tag, "Parse(%q) produced empty tag", in)
		}
	}
}

func TestParse_FormsEquivalent(t *testing.T) {
	c := Default()
	assert.Equal(t, c.Parse("/home/user/%work"), c.Parse("/home/user/%/work"))
}

func TestParse_CustomCodec(t *testing.T) {
	c, err := New("#", "\\")
	require.NoError(t, err)

	got := c.Parse(`C:\Users\me\#work\#urgent\docs`)
	assert.Equal(t, []string{"C:", "Users", "me", "docs"}, got.Base)
	assert.Equal(t, []string{"urgent", "work"}, got.Tags)

	got = c.Parse(`\srv\#`)
	assert.True(t, got.Listing)
	assert.Equal(t, []string{`\`, "srv"}, got.Base)

	// "%" is an ordinary character for this codec.
	got = c.Parse(`\srv\%work`)
	assert.Equal(t, []string{`\`, "srv", "%work"}, got.Base)
	assert.Empty(t, got.Tags)
}

func TestFormat(t *testing.T) {
	c := Default()

	tests := []struct {
		name string
		in   TaggedPath
		want string
	}{
		{"zero", TaggedPath{}, ""},
		{"root", TaggedPath{Base: []string{"/"}}, "/"},
		{"absolute", TaggedPath{Base: []string{"/", "home", "user"}}, "/home/user"},
		{"relative", TaggedPath{Base: []string{"home", "user"}}, "home/user"},
		{"tags in slice order", TaggedPath{Base: []string{"/", "home"}, Tags: []string{"urgent", "work"}}, "/home/%urgent/%work"},
		{"duplicates kept", TaggedPath{Base: []string{"/", "a"}, Tags: []string{"x", "x"}}, "/a/%x/%x"},
		{"tags only", TaggedPath{Tags: []string{"x"}}, "%x"},
		{"listing ignored", TaggedPath{Base: []string{"/", "a"}, Listing: true}, "/a"},
		{"terminal segment", TaggedPath{Base: []string{"/a/b/"}, Tags: []string{"x"}}, "/a/b/%x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Format(tt.in))
		})
	}
}

func TestFormat_TwoSegmentBecomesInline(t *testing.T) {
	c := Default()
	assert.Equal(t, "/home/user/%work", c.Format(c.Parse("/home/user/%/work")))
}

func TestRoundTrip_OrderReversal(t *testing.T) {
	c := Default()

	t.Run("single tag survives", func(t *testing.T) {
		in := TaggedPath{Base: []string{"/", "a"}, Tags: []string{"x"}}
		assert.Equal(t, in.Tags, c.Parse(c.Format(in)).Tags)
	})

	t.Run("several tags come back reversed", func(t *testing.T) {
		in := TaggedPath{Base: []string{"/", "a"}, Tags: []string{"x", "y", "z"}}
		got := c.Parse(c.Format(in))
		assert.Equal(t, []string{"z", "y", "x"}, got.Tags)
		assert.Equal(t, in.Tags, got.SourceOrder())
		assert.Equal(t, in.Base, got.Base)
	})
}

func TestTaggedPath_Helpers(t *testing.T) {
	tp := TaggedPath{Base: []string{"/"}, Tags: []string{"b", "a"}}

	assert.True(t, tp.Has("a"))
	assert.False(t, tp.Has("c"))
	assert.Equal(t, []string{"a", "b"}, tp.SourceOrder())
	assert.Equal(t, []string{"b", "a"}, tp.Tags, "SourceOrder must not modify Tags")
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		marker    string
		sep       string
		wantField string
		wantErr   error
	}{
		{"empty marker", "", "/", "marker", validate.ErrInvalidMarker},
		{"long marker", "%%", "/", "marker", validate.ErrInvalidMarker},
		{"marker is separator", "/", "/", "marker", validate.ErrInvalidMarker},
		{"empty separator", "%", "", "separator", validate.ErrInvalidSeparator},
		{"long separator", "%", "::", "separator", validate.ErrInvalidSeparator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.marker, tt.sep)
			require.Error(t, err)
			assert.Nil(t, c)

			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "want *ConfigurationError, got %T", err)
			assert.Equal(t, tt.wantField, cfgErr.Field)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("valid", func(t *testing.T) {
		c, err := New("@", "/")
		require.NoError(t, err)
		assert.Equal(t, "@", c.Marker())
		assert.Equal(t, "/", c.Separator())
		assert.Equal(t, "@x", c.Tag("x"))
	})
}

func TestCodec_Concurrent(t *testing.T) {
	c := Default()
	const in = "/home/user/%work/%urgent/docs"
	want := c.Parse(in)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				got := c.Parse(in)
				assert.Equal(t, want, got)
				assert.Equal(t, "/home/user/docs/%urgent/%work", c.Format(got))
			}
		}()
	}
	wg.Wait()
}
