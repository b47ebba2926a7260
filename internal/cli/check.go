package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Initialize the tree and run the loader health check",
		Long: `Run the same preparation as init, then verify that the base directory is
still an accessible directory. Prints "ok" and exits 0 when healthy.`,
		Example: `  langctl check --path lang --langs en-us,de`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.flush()
			ctx := cmd.Context()

			loader, err := a.newLoader(cmd)
			if err != nil {
				return err
			}

			if err := loader.Initialize(ctx); err != nil {
				a.log.ErrorContext(ctx, "initialization failed", slog.String("error", err.Error()))
				return err
			}
			if err := loader.Healthcheck()(ctx); err != nil {
				a.log.ErrorContext(ctx, "health check failed", slog.String("error", err.Error()))
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
