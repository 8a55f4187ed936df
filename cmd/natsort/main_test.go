package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/natsort"
	"github.com/lixenwraith/natsort/config"
	"github.com/lixenwraith/natsort/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateSettings keeps host settings files and NATSORT_* variables out of
// the command under test. The working directory becomes a temp directory.
func isolateSettings(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("NATSORT_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "xdg-dirs"))
	t.Chdir(dir)
	return dir
}

// syncBuffer is a bytes.Buffer safe for a writer goroutine and a reading test
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// runCmd executes the root command with args and stdin and returns stdout
func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestNewRootCmd(t *testing.T) {
	rootCmd := newRootCmd()
	assert.Equal(t, "natsort", rootCmd.Use)

	for _, name := range []string{"config", "log.level", "log.format"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}

	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"sort", "key", "config", "version"})
}

func TestVersionCmd(t *testing.T) {
	isolateSettings(t)

	out, err := runCmd(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "natsort version 0.1.0-dev (commit: none, built: unknown)\n", out)

	out, err = runCmd(t, "", "version", "--json")
	require.NoError(t, err)
	var v map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, version, v["version"])
}

func TestSortCmd(t *testing.T) {
	input := "num5.3\nnum-3\nnum2\nnum5.10\n"

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"Default", input, nil, "num-3\nnum2\nnum5.10\nnum5.3\n"},
		{"VersionNumbers", input, []string{"--number.kind", "none"}, "num2\nnum5.3\nnum5.10\nnum-3\n"},
		{"Reverse", "a1\na10\na2\n", []string{"--reverse"}, "a10\na2\na1\n"},
		{"Index", "a10\na2\na1\n", []string{"--index"}, "2\n1\n0\n"},
		{"Transform", "B2\na10\nb1\n", []string{"--transform", "lower"}, "a10\nb1\nB2\n"},
		{"Empty", "", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateSettings(t)
			out, err := runCmd(t, tt.stdin, append([]string{"sort"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSortCmd_Files(t *testing.T) {
	dir := isolateSettings(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.txt"), []byte("x10\nx9\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two.txt"), []byte("x1\n"), 0644))

	out, err := runCmd(t, "", "sort", "one.txt", "two.txt")
	require.NoError(t, err)
	assert.Equal(t, "x1\nx9\nx10\n", out)

	_, err = runCmd(t, "", "sort", "missing.txt")
	assert.Error(t, err)
}

func TestSortCmd_Settings(t *testing.T) {
	t.Run("DiscoveredFile", func(t *testing.T) {
		dir := isolateSettings(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "natsort.toml"), []byte("reverse = true\n"), 0644))

		out, err := runCmd(t, "a1\na2\n", "sort")
		require.NoError(t, err)
		assert.Equal(t, "a2\na1\n", out)
	})

	t.Run("FlagOverridesEnv", func(t *testing.T) {
		isolateSettings(t)
		t.Setenv("NATSORT_REVERSE", "true")

		out, err := runCmd(t, "a1\na2\n", "sort")
		require.NoError(t, err)
		assert.Equal(t, "a2\na1\n", out)

		out, err = runCmd(t, "a1\na2\n", "sort", "--reverse=false")
		require.NoError(t, err)
		assert.Equal(t, "a1\na2\n", out)
	})

	t.Run("ExplicitConfigMissing", func(t *testing.T) {
		isolateSettings(t)
		_, err := runCmd(t, "a\n", "sort", "--config", "absent.toml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration file not found")
	})

	t.Run("InvalidTransform", func(t *testing.T) {
		isolateSettings(t)
		_, err := runCmd(t, "a\n", "sort", "--transform", "upper")
		assert.ErrorIs(t, err, natsort.ErrInvalidConfig)
	})

	t.Run("WatchWithoutFile", func(t *testing.T) {
		isolateSettings(t)
		_, err := runCmd(t, "a\n", "sort", "--watch")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires a settings file")
	})
}

func TestSortCmd_Watch(t *testing.T) {
	dir := isolateSettings(t)
	settingsPath := filepath.Join(dir, "natsort.toml")
	require.NoError(t, os.WriteFile(settingsPath, []byte("transform = \"none\"\n"), 0644))

	var stdout, stderr syncBuffer
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"sort", "--watch"})
	rootCmd.SetIn(strings.NewReader("b\nA\n"))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- rootCmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(stderr.String(), "watching settings file")
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, "A\nb\n", stdout.String())

	require.NoError(t, os.WriteFile(settingsPath, []byte("reverse = true\n"), 0644))

	require.Eventually(t, func() bool {
		return stdout.String() == "A\nb\nb\nA\n"
	}, 5*time.Second, 20*time.Millisecond, "stdout: %q", stdout.String())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("sort --watch did not stop after cancel")
	}
}

func TestDrainChanges(t *testing.T) {
	var logs bytes.Buffer
	logger := logging.NewLogger("info", "text", &logs)

	changes := make(chan string, 4)
	changes <- "reverse"
	changes <- config.EventReloadError
	changes <- "transform"
	changes <- config.EventFileDeleted

	drainChanges(changes, logger)

	assert.Empty(t, changes)
	assert.Contains(t, logs.String(), "event="+config.EventReloadError)
	assert.Contains(t, logs.String(), "event="+config.EventFileDeleted)
	assert.NotContains(t, logs.String(), "reverse")

	t.Run("Closed", func(t *testing.T) {
		closed := make(chan string)
		close(closed)
		assert.NotPanics(t, func() { drainChanges(closed, logger) })
	})
}

func TestKeyCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Strings", []string{"num2", "15a"}, "(\"num\", 2)\n(\"\", 15, \"a\")\n"},
		{"SafeMode", []string{"--safe_mode", "43h7+3"}, "(\"\", 43, \"h\", 7, \"\", 3)\n"},
		{"JSON", []string{"--json", `["a1", "a10"]`}, "((\"a\", 1), (\"a\", 10))\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateSettings(t)
			out, err := runCmd(t, "", append([]string{"key"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	t.Run("NoArgs", func(t *testing.T) {
		isolateSettings(t)
		_, err := runCmd(t, "", "key")
		assert.Error(t, err)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		isolateSettings(t)
		_, err := runCmd(t, "", "key", "--json", "[1,")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid JSON argument")
	})

	t.Run("MaxDepth", func(t *testing.T) {
		isolateSettings(t)
		_, err := runCmd(t, "", "key", "--json", "--max_depth", "1", `[["a"]]`)
		assert.ErrorIs(t, err, natsort.ErrMaxDepth)
	})
}

func TestConfigCmd(t *testing.T) {
	t.Run("Show", func(t *testing.T) {
		isolateSettings(t)
		t.Setenv("NATSORT_SAFE_MODE", "true")

		out, err := runCmd(t, "", "config", "show")
		require.NoError(t, err)
		assert.Contains(t, out, "safe_mode = true")
		assert.Contains(t, out, `kind = "float"`)
	})

	t.Run("ShowSources", func(t *testing.T) {
		isolateSettings(t)
		t.Setenv("NATSORT_SAFE_MODE", "true")

		out, err := runCmd(t, "", "config", "show", "--sources", "--log.level", "debug")
		require.NoError(t, err)
		assert.Contains(t, out, "  safe_mode:\n    Current: true\n    Default: false\n    env: true\n")
		assert.Contains(t, out, "  log.level:\n    Current: debug\n    Default: info\n    cli: debug\n")
	})

	t.Run("Save", func(t *testing.T) {
		dir := isolateSettings(t)
		t.Setenv("NATSORT_TRANSFORM", "fold")
		path := filepath.Join(dir, "saved.yaml")

		_, err := runCmd(t, "", "config", "save", path)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "transform: fold")

		// the saved file is picked up as an explicit settings file
		out, err := runCmd(t, "B\na\n", "sort", "--config", path)
		require.NoError(t, err)
		assert.Equal(t, "a\nB\n", out)
	})
}
