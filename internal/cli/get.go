package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/langloader/pkg/i18n"
)

// ErrKeyNotFound is returned by the get command when the key path does not resolve.
var ErrKeyNotFound = errors.New("key not found")

func newGetCmd(a *app) *cobra.Command {
	var vars []string

	cmd := &cobra.Command{
		Use:   "get <lang> <namespace.key.path>",
		Short: "Resolve a key path and print its value",
		Long: `Resolve a dotted key path for a language. The first segment selects the
namespace. Strings are printed verbatim, other values as JSON.

Placeholders such as {{name}} are substituted only when --var is given.`,
		Example: `  langctl get en-us errors.notFound.message
  langctl get de mail.welcome --var name=Anna`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.flush()
			ctx := cmd.Context()

			placeholders, err := parseVars(vars)
			if err != nil {
				return err
			}

			loader, err := a.newLoader(cmd)
			if err != nil {
				return err
			}

			// Partial trees are still useful for lookups.
			if err := loader.Initialize(ctx); err != nil {
				a.log.WarnContext(ctx, "initialization incomplete", slog.String("error", err.Error()))
			}

			var value i18n.Value
			var ok bool
			if cmd.Flags().Changed("var") {
				value, ok = loader.Get(args[0], args[1], placeholders)
			} else {
				value, ok = loader.Get(args[0], args[1])
			}
			if !ok {
				return fmt.Errorf("%w: %q for language %q", ErrKeyNotFound, args[1], args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), value.String())
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&vars, "var", nil, "placeholder value as name=value (repeatable)")

	return cmd
}

func parseVars(vars []string) (i18n.M, error) {
	placeholders := make(i18n.M, len(vars))
	for _, v := range vars {
		name, value, found := strings.Cut(v, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("invalid --var %q: expected name=value", v)
		}
		placeholders[name] = value
	}
	return placeholders, nil
}
