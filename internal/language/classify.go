// Package language maps file paths to fenced-code-block language tags.
package language

import (
	"path/filepath"
	"sort"
	"strings"
)

// Classifier resolves a file's language tag from its name. Lookup order:
// compound suffix match, plain extension, bare filename, default.
type Classifier struct {
	defaultLang string
	mappings    map[string]string
	// suffix keys longer than one character, longest first and then
	// lexicographic, so overlapping compound suffixes resolve the same
	// way on every run.
	suffixes []string
}

// New builds a Classifier from a mapping table and a default language.
func New(mappings map[string]string, defaultLang string) *Classifier {
	m := make(map[string]string, len(mappings))
	for key, lang := range mappings {
		m[strings.ToLower(key)] = lang
	}

	suffixes := make([]string, 0, len(m))
	for key := range m {
		if len(key) > 1 {
			suffixes = append(suffixes, key)
		}
	}
	sort.Slice(suffixes, func(i, j int) bool {
		if len(suffixes[i]) != len(suffixes[j]) {
			return len(suffixes[i]) > len(suffixes[j])
		}
		return suffixes[i] < suffixes[j]
	})

	return &Classifier{
		defaultLang: defaultLang,
		mappings:    m,
		suffixes:    suffixes,
	}
}

// Classify returns the language tag for the given path.
func (c *Classifier) Classify(path string) string {
	name := strings.ToLower(filepath.Base(path))

	// Compound extensions like .html.erb must win over the plain .erb
	// suffix, so suffix keys are tried longest first.
	for _, key := range c.suffixes {
		if strings.HasSuffix(name, key) {
			return c.mappings[key]
		}
	}

	if ext := filepath.Ext(name); ext != "" {
		if lang, ok := c.mappings[ext]; ok {
			return lang
		}
	}

	// Extensionless conventional names such as "dockerfile".
	if lang, ok := c.mappings[name]; ok {
		return lang
	}

	return c.defaultLang
}
