package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuide(t *testing.T) {
	t.Run("main guide", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("guide")
		env.contains(out, "# behold")
		env.contains(out, "tagged paths")
	})

	t.Run("lists available on not found", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("guide", "nonexistent")
		assert.Error(t, err)
		env.contains(out, "Available:")
		env.contains(out, "syntax")
	})

	t.Run("runs with a broken codec flag", func(t *testing.T) {
		env := newTestEnv(t)
		env.contains(env.run("--marker", "%%", "guide"), "# behold")
	})
}

func TestGuide_Topics(t *testing.T) {
	tests := []struct {
		topic   string
		contain string
	}{
		{"syntax", "Tagged path syntax"},
		{"panel", "Tag panel"},
		{"config", "Configuration"},
	}

	for _, tc := range tests {
		t.Run(tc.topic, func(t *testing.T) {
			env := newTestEnv(t)
			env.contains(env.run("guide", tc.topic), tc.contain)
		})
	}
}
