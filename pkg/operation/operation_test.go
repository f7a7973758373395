package operation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/portfix/pkg/log"
)

const duplicatedPage = `<script>
  // Portfolio with accordion
  const listDiv = $('#portfolioList');
  active.forEach(h => {
    const row = $('<div>');
    if (h.open) {
      row.addClass('open');
    }
    listDiv.append(row);
  });
  render();
</script>
`

const fixedPage = `<script>
  // Portfolio with accordion - SORTABLE
  const listDiv = $('#portfolioList');
  
  render();
</script>
`

func TestFixOperation_Execute(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name        string
		content     *string
		want        string
		wantRemoved bool
		wantConsole []string
		wantErr     string
	}{
		{
			name:        "removes_duplicate",
			content:     ptr(duplicatedPage),
			want:        fixedPage,
			wantRemoved: true,
			wantConsole: []string{
				"ℹ️  Removing lines 2 to 10",
				"⟳ index.html modified    -9 +3",
				"✅ Duplicate portfolio code removed",
			},
		},
		{
			name:    "already_fixed",
			content: ptr(fixedPage),
			want:    fixedPage,
			wantConsole: []string{
				"❌ Could not find the duplicate code",
			},
		},
		{
			name:    "no_marker",
			content: ptr("<html>\n</html>\n"),
			want:    "<html>\n</html>\n",
			wantConsole: []string{
				"❌ Could not find the duplicate code",
			},
		},
		{
			name:    "missing_file",
			wantErr: "loading file",
			wantConsole: []string{
				"✗ index.html failed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "index.html")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0644))
			}

			console := &bytes.Buffer{}
			op := NewFixOperation(Options{
				Path:   path,
				Logger: log.New(console, zerolog.Nop()),
			})

			err := op.Execute(context.Background())

			gotConsole := strings.Split(strings.TrimSpace(console.String()), "\n")
			for i := range gotConsole {
				gotConsole[i] = strings.TrimSpace(strings.ReplaceAll(gotConsole[i], path, "index.html"))
			}

			assert.Equal(t, tt.wantConsole, gotConsole)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, op.Result())
				return
			}

			require.NoError(t, err)
			require.NotNil(t, op.Result())
			assert.Equal(t, tt.wantRemoved, op.Result().Removed)

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(content))
		})
	}
}

func TestFixOperation_SecondRunIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(duplicatedPage), 0644))

	op := NewFixOperation(Options{Path: path, Logger: log.New(&bytes.Buffer{}, zerolog.Nop())})

	require.NoError(t, op.Execute(context.Background()))
	require.True(t, op.Result().Removed)

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, op.Execute(context.Background()))
	assert.False(t, op.Result().Removed)

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFixOperation_DefaultPath(t *testing.T) {
	op := NewFixOperation(Options{})
	assert.Equal(t, "index.html", op.Path)
}

func TestFixOperation_LoggerFromContext(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte("nothing here"), 0644))

	console := &bytes.Buffer{}
	ctx := log.NewContext(context.Background(), log.New(console, zerolog.Nop()))

	op := NewFixOperation(Options{Path: path})
	require.NoError(t, op.Execute(ctx))
	assert.Contains(t, console.String(), "Could not find the duplicate code")

	assert.Panics(t, func() {
		_ = NewFixOperation(Options{Path: path}).Execute(context.Background())
	}, "Execute should panic without any logger")
}

func TestFixOperation_DebugDiff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(duplicatedPage), 0644))

	zbuf := &bytes.Buffer{}
	zlog := zerolog.New(zbuf).Level(zerolog.DebugLevel)
	ctx := zlog.WithContext(context.Background())

	op := NewFixOperation(Options{Path: path, Logger: log.New(&bytes.Buffer{}, zerolog.Nop())})
	require.NoError(t, op.Execute(ctx))

	assert.Contains(t, zbuf.String(), `"message":"splice preview"`)
	assert.Contains(t, zbuf.String(), "active.forEach(h => {")
}

func ptr(s string) *string {
	return &s
}
