// The cmd/ package contains CLI integration tests that exercise the full
// stack: flag parsing -> config -> codec -> extension commands. They build
// the binary once and run it with HOME pointed at a temp directory, so the
// user's real config and audit log are never touched.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the behold binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "behold-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "behold"
		if os.PathSeparator == '\\' {
			binaryName = "behold.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Project root is the parent of cmd/
		projectRoot := filepath.Dir(mustGetwd())

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
	extra  []string
}

// newTestEnv creates a working directory and an isolated HOME.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}
}

// setenv adds an environment variable to every subsequent run.
func (e *testEnv) setenv(key, value string) {
	e.extra = append(e.extra, key+"="+value)
}

// mkdir creates directories relative to the working directory and returns
// the absolute path of the last one.
func (e *testEnv) mkdir(rel ...string) string {
	e.t.Helper()
	var p string
	for _, r := range rel {
		p = filepath.Join(e.dir, r)
		if err := os.MkdirAll(p, 0755); err != nil {
			e.t.Fatalf("mkdir %s: %v", p, err)
		}
	}
	return p
}

// run executes behold with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("behold %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes behold and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(e.environ(), e.extra...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// environ returns the process environment with HOME replaced and any
// behold overrides removed.
func (e *testEnv) environ() []string {
	var env []string
	for _, kv := range os.Environ() {
		switch {
		case strings.HasPrefix(kv, "HOME="),
			strings.HasPrefix(kv, "USERPROFILE="),
			strings.HasPrefix(kv, "BEHOLD_"):
			continue
		}
		env = append(env, kv)
	}
	return append(env, "HOME="+e.home, "USERPROFILE="+e.home)
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
