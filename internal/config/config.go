// Package config loads the per-project config.ini and provides tool-level
// defaults through viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

// Config is the immutable per-run configuration assembled from the built-in
// tables and a project's config.ini.
type Config struct {
	ProjectRoot     string
	DefaultLanguage string // empty when config.ini sets none
	ExcludeFiles    bool
	CleanComments   bool
	Languages       map[string]string   // extension or filename -> language tag
	ExcludePatterns []string            // lowercase filename substrings
	CommentPatterns map[string][]string // language tag -> line regexps
}

// Init initializes tool-level configuration with viper.
func Init() error {
	viper.SetDefault("language", "")
	viper.SetDefault("default_language", "text")
	viper.SetDefault("log_level", "info")

	viper.SetEnvPrefix("PROJLOG")
	viper.AutomaticEnv()

	return nil
}

// FallbackLanguage returns the language used when neither the command line
// nor config.ini names one.
func FallbackLanguage() string {
	return viper.GetString("default_language")
}

// LogLevel returns the configured log level.
func LogLevel() string {
	return viper.GetString("log_level")
}

// Load reads and validates a project's config.ini.
func Load(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	settings, err := file.GetSection("Settings")
	if err != nil {
		return nil, fmt.Errorf("missing [Settings] section in %s", path)
	}

	root := ExpandTilde(strings.TrimSpace(settings.Key("project_root").String()))
	if root == "" {
		return nil, fmt.Errorf("project_root not specified in %s", path)
	}

	cfg := &Config{
		ProjectRoot:     root,
		DefaultLanguage: strings.TrimSpace(settings.Key("default_language").String()),
		ExcludeFiles:    true,
		CleanComments:   true,
		Languages:       defaultLanguageMappings(),
		ExcludePatterns: defaultExcludePatterns(),
		CommentPatterns: defaultCommentPatterns(),
	}

	if sec, err := file.GetSection("LanguageMappings"); err == nil {
		for _, key := range sec.Keys() {
			cfg.Languages[strings.ToLower(key.Name())] = strings.TrimSpace(key.String())
		}
	}

	if sec, err := file.GetSection("Filtering"); err == nil {
		cfg.ExcludeFiles = sec.Key("exclude_files").MustBool(true)
		cfg.CleanComments = sec.Key("clean_comments").MustBool(true)
	}

	// A non-empty [ExcludePatterns] section replaces the built-in list
	// wholesale; there is no merge.
	if sec, err := file.GetSection("ExcludePatterns"); err == nil {
		var patterns []string
		for _, key := range sec.Keys() {
			if v := strings.TrimSpace(key.String()); v != "" {
				patterns = append(patterns, v)
			}
		}
		if len(patterns) > 0 {
			cfg.ExcludePatterns = patterns
		}
	}

	// [CommentPatterns] replaces per language: a configured language loses
	// all of its built-in patterns, other languages keep theirs.
	if sec, err := file.GetSection("CommentPatterns"); err == nil {
		for _, key := range sec.Keys() {
			patterns := splitPatterns(key.String())
			if len(patterns) > 0 {
				cfg.CommentPatterns[strings.ToLower(key.Name())] = patterns
			}
		}
	}

	return cfg, nil
}

// splitPatterns splits a pattern list on comma or pipe and trims each entry.
func splitPatterns(value string) []string {
	var patterns []string
	for _, p := range strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == '|'
	}) {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// ExpandTilde expands a leading ~ to the user's home directory.
func ExpandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
