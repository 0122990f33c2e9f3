package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testMappings() map[string]string {
	return map[string]string{
		".py":        "python",
		".rb":        "ruby",
		".erb":       "erb",
		".html.erb":  "erb",
		".js.erb":    "erb",
		".js":        "javascript",
		".ts":        "typescript",
		".yml":       "yaml",
		"dockerfile": "dockerfile",
		".md":        "markdown",
	}
}

func TestClassify(t *testing.T) {
	c := New(testMappings(), "text")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain extension", "app.py", "python"},
		{"nested path", "lib/tasks/cleanup.rb", "ruby"},
		{"uppercase filename", "README.MD", "markdown"},
		{"compound beats plain suffix", "view.html.erb", "erb"},
		{"compound beats javascript", "widget.js.erb", "erb"},
		{"bare conventional filename", "Dockerfile", "dockerfile"},
		{"unmapped extension", "binary.xyz", "text"},
		{"no extension", "Makefile", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.path))
		})
	}
}

func TestClassifyLongestSuffixWins(t *testing.T) {
	c := New(map[string]string{
		".gz":     "binary",
		".tar.gz": "tarball",
	}, "text")

	assert.Equal(t, "tarball", c.Classify("backup.tar.gz"))
	assert.Equal(t, "binary", c.Classify("page.gz"))
}

func TestClassifyCustomDefault(t *testing.T) {
	c := New(map[string]string{}, "go")
	assert.Equal(t, "go", c.Classify("main.whatever"))
}
