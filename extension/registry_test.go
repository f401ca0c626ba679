package extension

import (
	"testing"

	"github.com/jpl-au/behold/internal/lister"
	"github.com/jpl-au/behold/internal/tagpath"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

// testExtension is a minimal Extension implementation for testing.
type testExtension struct {
	name string
}

func (e testExtension) Name() string               { return e.name }
func (e testExtension) Commands() []*cobra.Command { return nil }

func TestRegister_PanicOnDuplicate(t *testing.T) {
	name := "test-duplicate-panic"
	Register(testExtension{name: name})

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate registration, got none")
		}
	}()

	Register(testExtension{name: name})
}

func TestRegister_Order(t *testing.T) {
	Register(testExtension{name: "test-order-a"})
	Register(testExtension{name: "test-order-b"})

	names := Names()
	ia, ib := -1, -1
	for i, n := range names {
		switch n {
		case "test-order-a":
			ia = i
		case "test-order-b":
			ib = i
		}
	}
	assert.True(t, ia >= 0 && ib > ia, "registration order not preserved: %v", names)
	assert.Equal(t, "test-order-a", Get("test-order-a").Name())
	assert.Nil(t, Get("test-order-missing"))
}

func TestNewContext(t *testing.T) {
	codec := tagpath.Default()
	l := lister.New("%")
	ctx := NewContext(codec, l)
	assert.Same(t, codec, ctx.Codec())
	assert.Equal(t, l, ctx.Lister())
}
