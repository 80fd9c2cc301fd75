package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravitas-games/h3core/internal/config"
	"github.com/gravitas-games/h3core/internal/vectors"
)

// GenerateOptions holds flags for the generate command. Zero values leave
// the config file setting in place.
type GenerateOptions struct {
	*RootOptions
	Radius       int
	Orientations []string
	Format       string
	Output       string
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a reference vector table",
		Long: `Write a reference vector table.

Settings come from the YAML config (--config or $CONFIG_PATH) and are
overridden by flags.

Example:
  ijkvectors generate --radius 3 --format text
  ijkvectors generate -c vectors.yaml -o vectors.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Radius, "radius", 0, "disk radius around the origin")
	cmd.Flags().StringSliceVar(&opts.Orientations, "orientation", nil, "orientations to include (standard, rotated)")
	cmd.Flags().StringVar(&opts.Format, "format", "", "output format (yaml|text)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", `output file ("-" for stdout)`)

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *GenerateOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load configuration", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Log.Level, opts.Verbose)
	logger.Debug("configuration loaded", "radius", cfg.Vectors.Radius, "format", cfg.Vectors.Format, "output", cfg.Vectors.Output)

	table, err := vectors.New(cfg.Vectors, logger).Generate()
	if err != nil {
		return WrapExitError(ExitFailure, "vector generation failed", err)
	}

	var out io.Writer = cmd.OutOrStdout()
	if cfg.Vectors.Output != "-" {
		f, err := os.Create(cfg.Vectors.Output)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to create output file", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				logger.Error("error closing output", "error", closeErr)
			}
		}()
		out = f
	}

	if err := table.Write(out, cfg.Vectors.Format); err != nil {
		return WrapExitError(ExitCommandError, "failed to write vectors", err)
	}
	logger.Info("vectors written", "rows", len(table.Rows), "output", cfg.Vectors.Output)
	return nil
}

// loadConfig reads the config file if one is named and applies flag
// overrides on top.
func loadConfig(opts *GenerateOptions) (*config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.Radius != 0 {
		cfg.Vectors.Radius = opts.Radius
	}
	if len(opts.Orientations) > 0 {
		cfg.Vectors.Orientations = opts.Orientations
	}
	if opts.Format != "" {
		cfg.Vectors.Format = opts.Format
	}
	if opts.Output != "" {
		cfg.Vectors.Output = opts.Output
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
