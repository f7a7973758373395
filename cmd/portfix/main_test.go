package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = "x\n  // Portfolio with accordion\n  const listDiv = $('#portfolioList');\n  active.forEach(h => {\n    console.log(h);\n  });\ny"

func TestHandler(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name        string
		content     *string
		want        string
		wantConsole string
		errContains string
	}{
		{
			name:        "removes_block",
			content:     ptr(page),
			want:        "x\n  // Portfolio with accordion - SORTABLE\n  const listDiv = $('#portfolioList');\n  \ny",
			wantConsole: "Removing lines 2 to 6",
		},
		{
			name:        "nothing_to_remove",
			content:     ptr("<html></html>"),
			want:        "<html></html>",
			wantConsole: "Could not find the duplicate code",
		},
		{
			name:        "missing_file",
			errContains: "loading file",
			wantConsole: "failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "index.html")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0644))
			}

			console := &bytes.Buffer{}
			h := &Handler{
				debug:   true,
				path:    path,
				console: console,
				logOut:  io.Discard,
			}

			err := h.Run(context.Background())
			assert.Contains(t, console.String(), tt.wantConsole)

			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(content))
		})
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"other.html"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRootCmd_Version(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := newRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"--version"})
	cmd.SetOut(out)

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.True(t, strings.HasPrefix(out.String(), "portfix "), "got %q", out.String())
}

func ptr(s string) *string {
	return &s
}
