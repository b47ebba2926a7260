package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create missing directories and namespace files, then load them",
		Long: `Create the base directory, one directory per language and one namespace file
per language and namespace when missing. New namespace files contain "{}".
Existing files are only read, never modified.`,
		Example: `  langctl init --path lang --langs en-us,de --namespaces errors,mail`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.flush()
			ctx := cmd.Context()

			loader, err := a.newLoader(cmd)
			if err != nil {
				return err
			}

			initErr := loader.Initialize(ctx)

			out := cmd.OutOrStdout()
			loaded := loader.Loaded()
			for _, lang := range loader.Languages() {
				namespaces, ok := loaded[lang]
				if !ok {
					fmt.Fprintf(out, "%s: unavailable\n", lang)
					continue
				}
				fmt.Fprintf(out, "%s: %s\n", lang, strings.Join(namespaces, ", "))
			}

			if initErr != nil {
				a.log.ErrorContext(ctx, "initialization failed",
					slog.String("path", loader.Path()),
					slog.String("error", initErr.Error()),
				)
				return initErr
			}
			return nil
		},
	}
}
