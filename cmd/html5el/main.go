package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vango-dev/html5el/internal/config"
	"github.com/vango-dev/html5el/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app holds the state shared by all commands, set up before each run.
type app struct {
	verbose   bool
	logFormat string
	noColor   bool
	configDir string

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "html5el",
		Short: "Build and render HTML5 element trees",
		Long: `html5el renders HTML5 documents described as JSON, YAML or TOML
element trees.

Every element is created from a symbolic kind ("paragraph",
"hyperlink", "tabledatacell", ...). Children are indented per level,
and elements holding only text can be rendered on a single line.

  • Render descriptions to HTML
  • Preview documents with live reload
  • Publish rendered pages to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format: text or json (default from html5el.json)")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	flags.StringVarP(&a.configDir, "config", "C", "", "Directory containing html5el.json (default: current directory, then the user config directory)")

	rootCmd.AddCommand(
		renderCmd(a),
		treeCmd(a),
		kindsCmd(),
		explainCmd(),
		newCmd(a),
		serveCmd(a),
		publishCmd(a),
		versionCmd(),
	)
	rootCmd.SetHelpCommand(helpCmd(rootCmd))

	return rootCmd
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if a.noColor {
		errors.DisableColors()
	}

	var err error
	if a.configDir != "" {
		a.cfg, err = config.Load(a.configDir)
	} else {
		a.cfg, err = config.Discover(".")
	}
	if err != nil {
		return err
	}

	if a.logFormat != "" {
		a.cfg.Log.Format = a.logFormat
	}
	if a.verbose {
		a.cfg.Log.Level = "debug"
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.logger = newLogger(cmd.ErrOrStderr(), a.cfg.Log)
	slog.SetDefault(a.logger)
	a.logger.Debug("configuration loaded", "path", a.cfg.Path())
	return nil
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	mark := "✓"
	if isTerminal(w) {
		mark = "\033[32m✓\033[0m"
	}
	fmt.Fprintf(w, "%s %s\n", mark, fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
