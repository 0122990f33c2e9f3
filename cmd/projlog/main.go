package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gubarz/projlog/internal/config"
	"github.com/gubarz/projlog/internal/filelist"
	xlog "github.com/gubarz/projlog/internal/log"
	"github.com/gubarz/projlog/internal/writer"
)

var version = "0.1.0"

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var rootCmd = &cobra.Command{
	Use:   "projlog <project-dir>",
	Short: "Snapshot a codebase into a single Markdown document",
	Long: `Walks the files and directories listed in a project's files.txt,
optionally strips comment lines, and concatenates everything into one
timestamped Markdown document with per-file syntax-highlighted code blocks.

The project directory must contain:
  config.ini  [Settings] with project_root, plus optional mapping,
              filtering and comment-pattern sections
  files.txt   one file or directory per line, # comments ignored

Per-file progress and skip messages go to standard output; fatal errors
are reported on standard error.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("language", "l", "", "Override default language from config")

	viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("language"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
	xlog.Configure(xlog.Config{Level: config.LogLevel()})
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := xlog.WithComponent("projlog")

	projectDir, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving project directory: %w", err)
	}

	info, err := os.Stat(projectDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("project directory %q not found or not a directory", projectDir)
	}

	configPath := filepath.Join(projectDir, "config.ini")
	listPath := filepath.Join(projectDir, "files.txt")

	if _, err := os.Stat(configPath); err != nil {
		return fmt.Errorf("configuration file %q not found (expected config.ini with a [Settings] section)", configPath)
	}
	if _, err := os.Stat(listPath); err != nil {
		return fmt.Errorf("file list %q not found (expected files.txt listing files and directories)", listPath)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.ProjectRoot); err != nil {
		return fmt.Errorf("project root directory %q not found", cfg.ProjectRoot)
	}

	// Language precedence: -l flag, then config.ini, then tool default.
	defaultLang := viper.GetString("language")
	if defaultLang == "" {
		defaultLang = cfg.DefaultLanguage
	}
	if defaultLang == "" {
		defaultLang = config.FallbackLanguage()
	}

	entries, err := filelist.Read(listPath)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		logger.Warn().Msg("file list is empty")
	}

	outputPath := filepath.Join(projectDir, writer.OutputName(projectDir, time.Now()))

	logger.Info().
		Str("project_dir", projectDir).
		Str("project_root", cfg.ProjectRoot).
		Str("default_language", defaultLang).
		Bool("exclude_files", cfg.ExcludeFiles).
		Bool("clean_comments", cfg.CleanComments).
		Str("output", outputPath).
		Int("entries", len(entries)).
		Msg("generating project log")

	gen, err := writer.New(cfg, defaultLang)
	if err != nil {
		return err
	}

	// The pending file is held open for the whole run; nothing appears at
	// the output path until the document is complete.
	pending, err := renameio.NewPendingFile(outputPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending output file")
		}
	}()

	stats, err := gen.Generate(pending, filepath.Base(projectDir), entries)
	if err != nil {
		return err
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("finalize output file: %w", err)
	}

	fmt.Println(successStyle.Render("Project log generated: " + outputPath))
	fmt.Println(dimStyle.Render(fmt.Sprintf("%d files written, %d skipped", stats.Written, stats.Skipped)))
	return nil
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
