// Package main runs the termkit widget demo.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dshills/termkit/internal/app"
	"github.com/dshills/termkit/internal/config"
	"github.com/dshills/termkit/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	logLevel   string
	logFile    string
	noMouse    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "termkit [flags]",
		Short: "Terminal widget toolkit demo",
		Long: `termkit shows the toolkit's widgets in one window: a menu bar, a text
field, a list, a combo box, buttons, a dialog and a progress bar.

Key bindings come from the built-in keymaps plus any files listed under
[keymaps] in the config file. Ctrl+Q quits.`,
		Example: `  # Run with the default config
  termkit

  # Use another config file and log to a file
  termkit --config ./termkit.toml --log-level debug --log-file /tmp/termkit.log`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath(), "Path to configuration file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	cmd.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "Disable mouse reporting")
	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(ctx, cmd, opts)
	if err != nil {
		return err
	}

	out, err := app.OpenLogOutput(cfg.LogFile())
	if err != nil {
		return err
	}
	defer out.Close()
	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.LogLevel()),
		Output: out,
		Prefix: "termkit",
	})
	logger.Info("config loaded", "files", cfg.Files(), "log_level", cfg.LogLevel())

	term, err := backend.NewTerminal()
	if err != nil {
		return errors.Wrap(err, "creating terminal")
	}

	application, err := app.New(app.WithConfig(cfg), app.WithLogger(logger), app.WithBackend(term))
	if err != nil {
		return errors.Wrap(err, "initializing")
	}
	defer func() {
		if err := application.Shutdown(); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}()

	application.SetRoot(buildDemo(ctx, application))

	err = application.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loadConfig reads the config file and environment, then applies the
// flags the user set.
func loadConfig(ctx context.Context, cmd *cobra.Command, opts options) (*config.Config, error) {
	switch opts.logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.logLevel)
	}

	cfg := config.New(config.WithPath(opts.configPath))
	if err := cfg.Load(ctx); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.SetFlag("log.level", opts.logLevel)
	}
	if flags.Changed("log-file") {
		cfg.SetFlag("log.file", opts.logFile)
	}
	if opts.noMouse {
		cfg.SetFlag("ui.mouse", false)
	}
	return cfg, nil
}
