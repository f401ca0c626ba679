package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("parse", "/home/user/%work/%urgent/docs")
	env.contains(out, "/home/user/docs")
	env.contains(out, "tags")
	env.contains(out, "urgent")
	env.contains(out, "work")
	assert.NotContains(t, out, "listing")
}

func TestParse_JSON(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"untagged", "/home/user/docs", `{"base":["/","home","user","docs"],"tags":[],"listing":false}`},
		{"inline tags reversed", "/home/user/%work/%urgent/docs", `{"base":["/","home","user","docs"],"tags":["urgent","work"],"listing":false}`},
		{"listing", "/home/user/%", `{"base":["/","home","user"],"tags":[],"listing":true}`},
		{"two segment tag", "/home/user/%/work", `{"base":["/","home","user"],"tags":["work"],"listing":false}`},
		{"relative", "a/%b/c", `{"base":["a","c"],"tags":["b"],"listing":false}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			out := env.run("parse", tc.path, "-o", "json")
			assert.JSONEq(t, tc.want, out)
		})
	}
}

func TestParse_Listing(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("parse", "/home/user/%")
	env.contains(out, "/home/user")
	env.contains(out, "listing")
}

func TestParse_CustomMarker(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("--marker", "#", "parse", "/srv/#films/#4k", "-o", "json")

		var got struct {
			Base []string `json:"base"`
			Tags []string `json:"tags"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, []string{"/", "srv"}, got.Base)
		assert.Equal(t, []string{"4k", "films"}, got.Tags)
	})

	t.Run("env", func(t *testing.T) {
		env := newTestEnv(t)
		env.setenv("BEHOLD_MARKER", "#")
		out := env.run("parse", "/srv/#films/%raw", "-o", "json")
		assert.JSONEq(t, `{"base":["/","srv","%raw"],"tags":["films"],"listing":false}`, out)
	})

	t.Run("config", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "codec.marker", "+")
		out := env.run("parse", "/srv/+films", "-o", "json")
		assert.JSONEq(t, `{"base":["/","srv"],"tags":["films"],"listing":false}`, out)
	})

	t.Run("flag beats env", func(t *testing.T) {
		env := newTestEnv(t)
		env.setenv("BEHOLD_MARKER", "#")
		out := env.run("--marker", "+", "parse", "/srv/+films", "-o", "json")
		assert.JSONEq(t, `{"base":["/","srv"],"tags":["films"],"listing":false}`, out)
	})
}

func TestParse_InvalidCodec(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"marker too long", []string{"--marker", "%%"}},
		{"marker is separator", []string{"--marker", "/"}},
		{"whitespace marker", []string{"--marker", " "}},
		{"separator too long", []string{"--separator", "//"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			args := append(tc.args, "parse", "/a/%b")
			_, err := env.runErr(args...)
			assert.Error(t, err)
		})
	}

	t.Run("json error", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("--marker", "%%", "parse", "/a", "-o", "json")
		assert.Error(t, err)
		env.contains(out, `"error"`)
		env.contains(out, "marker")
	})
}
