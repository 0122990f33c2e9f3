package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gubarz/projlog/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		ExcludeFiles:    true,
		CleanComments:   true,
		ExcludePatterns: []string{".keep", ".gitkeep", ".ds_store", "thumbs.db", ".tmp"},
		CommentPatterns: map[string][]string{
			"python": {`^#.*$`, `^\s*""".*?"""\s*$`},
			"sql":    {`^--.*$`},
		},
	}
}

func TestExcluded(t *testing.T) {
	f, err := New(testConfig())
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"gitkeep", "app/models/.gitkeep", true},
		{"substring match", "session.tmpfile", true},
		{"case insensitive", "photos/Thumbs.DB", true},
		{"regular source file", "app/models/user.py", false},
		{"pattern only in directory", "tmp/cache/data.py", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Excluded(tt.path))
		})
	}
}

func TestExcludedDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.ExcludeFiles = false
	f, err := New(cfg)
	require.NoError(t, err)

	assert.False(t, f.Excluded(".gitkeep"))
	assert.False(t, f.Excluded("Thumbs.db"))
}

func TestClean(t *testing.T) {
	f, err := New(testConfig())
	require.NoError(t, err)

	content := strings.Join([]string{
		"# top comment",
		"import os",
		"",
		"# another comment",
		"    # indented, not matched from line start",
		"x = 1",
	}, "\n")

	want := strings.Join([]string{
		"import os",
		"",
		"    # indented, not matched from line start",
		"x = 1",
	}, "\n")

	assert.Equal(t, want, f.Clean(content, "python"))
}

func TestCleanBlankLinesKept(t *testing.T) {
	f, err := New(&config.Config{
		CleanComments:   true,
		CommentPatterns: map[string][]string{"text": {`^.*$`}},
	})
	require.NoError(t, err)

	got := f.Clean("dropped\n\n   \nalso dropped", "text")
	assert.Equal(t, "\n   ", got)
}

func TestCleanAllComments(t *testing.T) {
	f, err := New(testConfig())
	require.NoError(t, err)

	got := f.Clean("-- schema notes\n-- more notes", "sql")
	assert.Empty(t, strings.TrimSpace(got))
}

func TestCleanUnknownLanguage(t *testing.T) {
	f, err := New(testConfig())
	require.NoError(t, err)

	content := "# looks like a comment\nbody"
	assert.Equal(t, content, f.Clean(content, "ruby"))
}

func TestCleanDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.CleanComments = false
	f, err := New(cfg)
	require.NoError(t, err)

	content := "# comment\ncode"
	assert.Equal(t, content, f.Clean(content, "python"))
}

func TestNewBadPattern(t *testing.T) {
	cfg := testConfig()
	cfg.CommentPatterns["python"] = []string{`^(#.*$`}
	_, err := New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "comment pattern")
}
