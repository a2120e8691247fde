package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"ptable/config"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd(&cfg),
		fang.WithVersion(version),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		stop()
		os.Exit(1)
	}
}

// options are the flags that select what the command does; Config carries
// the settings shared with the environment.
type options struct {
	print      bool
	color      bool
	check      bool
	writeTheme bool
	focus      int
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "ptable [flags]",
		Short: "Interactive periodic table for the terminal",
		Long: `ptable shows the periodic table of elements in the terminal.

Move the focus with the arrow keys or h/j/k/l. Press q twice to exit.
The terminal must be at least 216 columns by 54 rows.`,
		Example: `  # Browse the built-in table
  ptable

  # Use a different data file and theme
  ptable --data elements.csv --theme dark.toml

  # Print the table with iron focused and exit
  ptable --print --focus 26

  # Validate a data file
  ptable --check --data elements.csv

  # Log key handling to a file
  ptable --debug --log-file ptable.log`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, closeLog, err := setupLogger(cfg.LogFile, cfg.Debug)
			if err != nil {
				return err
			}
			defer closeLog() //nolint:errcheck
			slog.SetDefault(logger)

			app := &app{cfg: *cfg, logger: logger, out: cmd.OutOrStdout()}
			switch {
			case opts.writeTheme:
				return config.WriteDefaultTheme(app.out)
			case opts.check:
				return app.check()
			case opts.print:
				return app.print(opts.focus, opts.color)
			default:
				return app.interactive(cmd.Context())
			}
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.DataFile, "data", cfg.DataFile, "Element data CSV file (built-in table if empty) [$PTABLE_DATA]")
	flags.StringVar(&cfg.ThemeFile, "theme", cfg.ThemeFile, "Theme TOML file [$PTABLE_THEME]")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file [$PTABLE_LOG_FILE]")
	flags.BoolVarP(&cfg.Debug, "debug", "d", cfg.Debug, "Enable debug logging [$PTABLE_DEBUG]")
	flags.StringVar(&cfg.TerminalMode, "mode", cfg.TerminalMode, "Force terminal mode: ascii or unicode [$PTABLE_TERMINAL_MODE]")
	flags.BoolVar(&opts.print, "print", false, "Print the table to stdout and exit")
	flags.IntVar(&opts.focus, "focus", 0, "Atomic number to focus when printing")
	flags.BoolVar(&opts.color, "color", false, "Keep colors in printed output as ANSI escapes")
	flags.BoolVar(&opts.check, "check", false, "Load and place the data file, report the result and exit")
	flags.BoolVar(&opts.writeTheme, "write-theme", false, "Print the default theme as TOML and exit")
	cmd.MarkFlagsMutuallyExclusive("print", "check", "write-theme")

	return cmd
}

// setupLogger returns a text logger writing to path. The terminal belongs to
// the viewer, so without a path logs are discarded.
func setupLogger(path string, debug bool) (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var (
		dest    io.Writer = io.Discard
		closeFn           = func() error { return nil }
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		dest = f
		closeFn = f.Close
	}

	handler := slog.NewTextHandler(dest, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler), closeFn, nil
}
