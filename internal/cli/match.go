package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "match <accept-language>",
		Short:   "Print the configured language that best fits an Accept-Language header",
		Example: `  langctl match "de-CH,de;q=0.9,en;q=0.8" --langs en-us,de`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.flush()

			loader, err := a.newLoader(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), loader.MatchLanguage(args[0]))
			return nil
		},
	}
}
