// Package main provides the CLI entrypoint for lyricboss.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/lyricboss/internal/config"
	"github.com/verte-zerg/lyricboss/internal/logging"
	"github.com/verte-zerg/lyricboss/internal/model"
	"github.com/verte-zerg/lyricboss/internal/script"
	"github.com/verte-zerg/lyricboss/internal/session"
	"github.com/verte-zerg/lyricboss/internal/stats"
	"github.com/verte-zerg/lyricboss/internal/tui"
)

const (
	defaultTitle    = "Boss Typing Practice"
	defaultTopChars = 5
	farewell        = "Game over. See you next time."
)

var defaultIgnore = []string{"hangul"}

var (
	gameScript       string
	gameTitle        string
	gameIgnore       []string
	gameIgnoreRanges []string
	logLevel         string
	logFile          string

	scriptTop int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lyricboss",
		Short:         "Type the lyrics, defeat the boss",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGameCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&gameScript, "script", "", "script file or name in the scripts directory (default: built-in lyrics)")
	flags.StringVar(&gameTitle, "title", defaultTitle, "title shown above the boss")
	flags.StringSliceVar(&gameIgnore, "ignore", defaultIgnore, "composition range presets to ignore ("+strings.Join(session.PresetNames(), ", ")+")")
	flags.StringSliceVar(&gameIgnoreRanges, "ignore-range", nil, "extra code point ranges to ignore, e.g. U+3040-U+309F")
	flags.StringVar(&logLevel, "log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newScriptCmd())

	return rootCmd
}

func runGameCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("lyricboss needs an interactive terminal")
	}

	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	logger.Info().
		Str("script", displayScriptPath(cfg.ScriptPath)).
		Int("lines", len(s.Lines())).
		Int("chars", s.Total()).
		Float64("damage", s.Damage()).
		Msg("starting game")

	m := tui.NewModel(s, cfg.Title, logger)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	logger.Info().Int("cursor", s.Cursor()).Bool("won", s.AwaitingRestart()).Msg("game closed")

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), farewell); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newSession(cfg model.Config) (*session.Session, error) {
	lines, err := loadLines(cfg)
	if err != nil {
		return nil, err
	}
	policy, err := buildIgnorePolicy(cfg)
	if err != nil {
		return nil, err
	}
	if err := checkTypable(lines, policy); err != nil {
		return nil, fmt.Errorf("failed to load script %s: %w", displayScriptPath(cfg.ScriptPath), err)
	}
	return session.New(lines, session.WithIgnorePolicy(policy), session.WithMessages(cfg.Messages)), nil
}

func loadLines(cfg model.Config) ([]string, error) {
	if cfg.ScriptPath == "" {
		return script.Default(), nil
	}
	lines, err := script.Load(cfg.ScriptPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load script %s: %w", cfg.ScriptPath, err)
	}
	return lines, nil
}

// checkTypable rejects runes that Submit would always ignore, since the
// session could never move past them.
func checkTypable(lines []string, policy session.IgnorePolicy) error {
	for i, line := range lines {
		col := 0
		for _, r := range line {
			col++
			if policy.Ignores(r) || (unicode.IsSpace(r) && r != ' ') {
				return fmt.Errorf("line %d col %d: %U cannot be typed", i+1, col, r)
			}
		}
	}
	return nil
}

func buildIgnorePolicy(cfg model.Config) (session.IgnorePolicy, error) {
	var ranges []session.RuneRange
	for _, name := range cfg.Ignore {
		if strings.TrimSpace(name) == "" {
			continue
		}
		preset, ok := session.Preset(name)
		if !ok {
			return session.IgnorePolicy{}, fmt.Errorf("unknown ignore preset %q (available: %s)", name, strings.Join(session.PresetNames(), ", "))
		}
		ranges = append(ranges, preset...)
	}
	for _, raw := range cfg.IgnoreRanges {
		rr, err := session.ParseRuneRange(raw)
		if err != nil {
			return session.IgnorePolicy{}, err
		}
		ranges = append(ranges, rr)
	}
	return session.NewIgnorePolicy(ranges...), nil
}

func newScriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "script",
		Short: "Show the active script",
		Args:  cobra.NoArgs,
		RunE:  runScriptCmd,
	}
	cmd.Flags().IntVar(&scriptTop, "top", defaultTopChars, "number of most frequent characters to list")
	return cmd
}

func runScriptCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	lines, err := loadLines(cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "Script: %s\n\n", displayScriptPath(cfg.ScriptPath)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderScript(out, lines, outputWidth(out)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if scriptTop > 0 {
		if _, err := fmt.Fprintln(out, ""); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := stats.RenderTopChars(out, stats.CharFrequency(lines), scriptTop); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// outputWidth returns the terminal width when w is a terminal, else 0.
func outputWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func displayScriptPath(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	d := session.DefaultMessages()
	return fmt.Sprintf(`# lyricboss configuration
# Uncomment a value to enable it.
# CLI flags override environment variables (LYRICBOSS_*), which override this file.

[game]
# script = "anthem"         # Script file, or a name in %s
# title = %q
# ignore = ["hangul"]       # Composition range presets to ignore; [] disables
# ignore-ranges = []        # Extra ranges, e.g. ["U+3040-U+309F"]

[messages]
# intro = %q
# correct = %q
# wrong = %q
# victory = %q
# restarted = %q

[log]
# level = %q
# file = ""                 # Log file; empty logs warnings to stderr
`,
		config.DefaultScriptDir(),
		defaultTitle,
		d.Intro,
		d.Correct,
		d.Wrong,
		d.Victory,
		d.Restarted,
		logging.DefaultLevel,
	)
}

func validateConfig(cfg model.Config) error {
	if strings.TrimSpace(cfg.Title) == "" {
		return fmt.Errorf("--title must not be empty")
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
