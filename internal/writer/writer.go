// Package writer walks the resolved file list and emits the Markdown
// snapshot document.
package writer

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gubarz/projlog/internal/config"
	"github.com/gubarz/projlog/internal/filter"
	"github.com/gubarz/projlog/internal/language"
	xlog "github.com/gubarz/projlog/internal/log"
)

// Stats summarizes a generation run.
type Stats struct {
	Written int // sections emitted
	Skipped int // excluded, missing, unreadable or empty-after-clean files
}

// Generator produces one Markdown document from a project's file list.
type Generator struct {
	root       string
	classifier *language.Classifier
	filter     *filter.Filter
}

// New wires a Generator for one run. defaultLang is the fully resolved
// fallback language (flag, config.ini, then tool default).
func New(cfg *config.Config, defaultLang string) (*Generator, error) {
	f, err := filter.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Generator{
		root:       cfg.ProjectRoot,
		classifier: language.New(cfg.Languages, defaultLang),
		filter:     f,
	}, nil
}

// OutputName returns the document filename for a project directory,
// e.g. myproject_2026-08-30_14-03.md.
func OutputName(projectDir string, now time.Time) string {
	return fmt.Sprintf("%s_%s.md", filepath.Base(projectDir), now.Format("2006-01-02_15-04"))
}

// Generate writes the document header and one section per included file to
// out, in file-list order. Per-item problems are logged and skipped; only
// output-write failures are returned.
func (g *Generator) Generate(out io.Writer, projectName string, entries []string) (Stats, error) {
	logger := xlog.WithComponent("writer")

	if _, err := fmt.Fprintf(out, "# Project: %s\n\n", projectName); err != nil {
		return Stats{}, fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(out, "# Generated: %s\n", time.Now().Format("2006-01-02 15:04:05")); err != nil {
		return Stats{}, fmt.Errorf("write header: %w", err)
	}

	var stats Stats
	for _, entry := range entries {
		path := g.resolve(entry)

		info, err := os.Stat(path)
		switch {
		case err != nil:
			logger.Warn().Str("path", path).Msg("path not found")
			stats.Skipped++
		case info.IsDir():
			logger.Info().Str("path", path).Msg("processing directory")
			if err := g.walkDir(out, path, &stats); err != nil {
				return stats, err
			}
		default:
			logger.Info().Str("path", path).Msg("processing file")
			if err := g.writeFile(out, path, &stats); err != nil {
				return stats, err
			}
		}
	}
	return stats, nil
}

// resolve expands ~ and anchors relative entries at the project root.
func (g *Generator) resolve(entry string) string {
	path := config.ExpandTilde(entry)
	if !filepath.IsAbs(path) {
		path = filepath.Join(g.root, path)
	}
	return path
}

// walkDir visits every regular file under dir. Unreadable subtrees are
// logged and skipped.
func (g *Generator) walkDir(out io.Writer, dir string, stats *Stats) error {
	logger := xlog.WithComponent("writer")
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("skipping unreadable path")
			stats.Skipped++
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return g.writeFile(out, path, stats)
	})
}

// writeFile emits one file section, or logs why the file was skipped.
// Only errors writing to out are returned.
func (g *Generator) writeFile(out io.Writer, path string, stats *Stats) error {
	logger := xlog.WithComponent("writer")

	if g.filter.Excluded(path) {
		logger.Info().Str("path", path).Msg("excluded file")
		stats.Skipped++
		return nil
	}

	lang := g.classifier.Classify(path)

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("error reading file")
		stats.Skipped++
		return nil
	}

	// Best-effort decode: invalid UTF-8 bytes are dropped rather than
	// failing the file.
	content := strings.ToValidUTF8(string(data), "")
	content = g.filter.Clean(content, lang)

	if strings.TrimSpace(content) == "" {
		logger.Info().Str("path", path).Msg("skipped empty file after cleaning")
		stats.Skipped++
		return nil
	}

	if _, err := fmt.Fprintf(out, "### %s\n```%s\n%s\n```\n\n---\n\n", g.displayPath(path), lang, content); err != nil {
		return fmt.Errorf("write section for %s: %w", path, err)
	}
	stats.Written++
	return nil
}

// displayPath shows the path relative to the project root, falling back to
// the resolved path for files outside the root.
func (g *Generator) displayPath(path string) string {
	rel, err := filepath.Rel(g.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
