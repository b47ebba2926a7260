// Package cli implements the langctl command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/langloader/internal/config"
	"github.com/dmitrymomot/langloader/pkg/i18n"
	"github.com/dmitrymomot/langloader/pkg/logger"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	log     *slog.Logger
	flush   func()
	cfg     config.Config
	cfgFile string
	envFile string
}

// Execute runs langctl with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the langctl command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		log:   logger.NewNope(),
		flush: func() {},
	}

	root := &cobra.Command{
		Use:   "langctl",
		Short: "Manage and query a localization directory tree",
		Long: `langctl keeps a <path>/<lang>/<namespace>.json tree in place and resolves
dotted key paths against it.

Settings come from --config (YAML), LANGCTL_* environment variables (a .env
file is loaded first) and flags, with flags taking precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "path to a YAML config file")
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.String("path", i18n.DefaultPath, "base directory of the localization tree")
	flags.StringSlice("langs", []string{i18n.DefaultLang}, "language codes")
	flags.StringSlice("namespaces", []string{i18n.DefaultNamespace}, "namespace names")
	flags.String("format", string(i18n.FormatJSON), "namespace file format (json or yaml)")
	flags.Bool("debug", false, "log every filesystem decision to stderr")

	root.AddCommand(
		newInitCmd(a),
		newGetCmd(a),
		newMatchCmd(a),
		newCheckCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(a.envFile); err != nil {
		return err
	}

	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, a.flush = logger.NewWithSentry(logger.SentryConfig{
		Output:      cmd.ErrOrStderr(),
		DSN:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Level:       slog.LevelWarn,
		MinLevel:    slog.LevelError,
	}, logger.CommandExtractor)

	cmd.SetContext(logger.WithCommand(cmd.Context(), cmd.Name()))
	return nil
}

func (a *app) newLoader(cmd *cobra.Command) (*i18n.Loader, error) {
	opts, err := a.cfg.LoaderOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, i18n.WithLogger(logger.NewDebug(cmd.ErrOrStderr(), logger.CommandExtractor)))

	loader, err := i18n.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("configuring loader: %w", err)
	}
	return loader, nil
}
