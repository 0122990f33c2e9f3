// Package filter decides file exclusion and strips comment-only lines.
package filter

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gubarz/projlog/internal/config"
)

// Filter applies the run's exclusion patterns and per-language comment
// matchers. Comment stripping is a per-physical-line heuristic: a block
// comment spanning several lines is only removed when a single pattern
// matches it within one line.
type Filter struct {
	excludeFiles    bool
	cleanComments   bool
	excludePatterns []string
	matchers        map[string][]*regexp.Regexp
}

// New compiles the configured comment patterns into a Filter. A pattern
// that does not compile is a configuration error.
func New(cfg *config.Config) (*Filter, error) {
	f := &Filter{
		excludeFiles:  cfg.ExcludeFiles,
		cleanComments: cfg.CleanComments,
		matchers:      make(map[string][]*regexp.Regexp, len(cfg.CommentPatterns)),
	}

	for _, pattern := range cfg.ExcludePatterns {
		f.excludePatterns = append(f.excludePatterns, strings.ToLower(pattern))
	}

	for lang, patterns := range cfg.CommentPatterns {
		compiled := make([]*regexp.Regexp, 0, len(patterns))
		for _, pattern := range patterns {
			// (?s) lets . cross embedded newlines, so a multi-line
			// pattern can still match within one matched span.
			re, err := regexp.Compile("(?s)" + pattern)
			if err != nil {
				return nil, fmt.Errorf("comment pattern %q for %s: %w", pattern, lang, err)
			}
			compiled = append(compiled, re)
		}
		f.matchers[lang] = compiled
	}

	return f, nil
}

// Excluded reports whether the file should be skipped. Patterns are matched
// as substrings of the lowercase base name, only when exclusion is enabled.
func (f *Filter) Excluded(path string) bool {
	if !f.excludeFiles {
		return false
	}
	name := strings.ToLower(filepath.Base(path))
	for _, pattern := range f.excludePatterns {
		if strings.Contains(name, pattern) {
			return true
		}
	}
	return false
}

// Clean strips comment-only lines for the given language. Blank lines are
// kept even when a pattern would match them.
func (f *Filter) Clean(content, lang string) string {
	if !f.cleanComments {
		return content
	}
	matchers := f.matchers[lang]
	if len(matchers) == 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	cleaned := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == "" || !isComment(line, matchers) {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}

// isComment reports whether any matcher matches from the start of the line.
func isComment(line string, matchers []*regexp.Regexp) bool {
	for _, re := range matchers {
		if loc := re.FindStringIndex(line); loc != nil && loc[0] == 0 {
			return true
		}
	}
	return false
}
