package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipegrid/internal/config"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want config.Config
	}{
		{
			name: "Positional",
			args: []string{"grid.txt"},
			want: config.Config{InputPath: "grid.txt", LogLevel: "info", LogFormat: "text", Traversal: "bfs"},
		},
		{
			name: "LongFlag",
			args: []string{"-input", "a.txt", "-render", "b.txt"},
			want: config.Config{InputPath: "a.txt", Render: true, LogLevel: "info", LogFormat: "text", Traversal: "bfs"},
		},
		{
			name: "Shorthand",
			args: []string{"-i", "a.txt", "-log-level", "DEBUG", "-log-format", "json", "-traversal", "dfs"},
			want: config.Config{InputPath: "a.txt", LogLevel: "debug", LogFormat: "json", Traversal: "dfs"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, exit, err := Parse(tc.args, &out, nil)
			require.NoError(t, err)
			assert.False(t, exit)
			assert.Equal(t, tc.want, *cfg)
		})
	}
}

func TestParse_ConfigFileAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipegrid.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
input     = "from-file.txt"
render    = true
log_level = env.LVL
`), 0o600))

	cfg, exit, err := Parse([]string{"-config", path}, &bytes.Buffer{}, []string{"LVL=warn"})
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, config.Config{InputPath: "from-file.txt", Render: true, LogLevel: "warn", LogFormat: "text", Traversal: "bfs"}, *cfg)

	cfg, _, err = Parse([]string{"-config", path, "-render=false", "-log-level", "error", "other.txt"}, &bytes.Buffer{}, []string{"LVL=warn"})
	require.NoError(t, err)
	assert.Equal(t, config.Config{InputPath: "other.txt", Render: false, LogLevel: "error", LogFormat: "text", Traversal: "bfs"}, *cfg)
}

func TestParse_HelpAndUsage(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"-h"}, &out, nil)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)

	out.Reset()
	_, exit, err = Parse(nil, &out, nil)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Errors(t *testing.T) {
	cases := map[string][]string{
		"UnknownFlag":   {"-workers", "3", "g.txt"},
		"BadLevel":      {"-log-level", "loud", "g.txt"},
		"BadFormat":     {"-log-format", "xml", "g.txt"},
		"BadTraversal":  {"-traversal", "astar", "g.txt"},
		"MissingConfig": {"-config", filepath.Join(t.TempDir(), "none.hcl"), "g.txt"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, exit, err := Parse(args, &bytes.Buffer{}, nil)
			assert.False(t, exit)
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
