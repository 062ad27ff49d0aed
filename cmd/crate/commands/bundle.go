package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/ui/style"
)

func (c *CLI) newBundleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bundle <collection-id> <game-version>",
		Short: "Resolve a collection and assemble its bundle archive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := domain.ParseGameVersion(args[1])
			if err != nil {
				return err
			}

			bundle, err := c.app.Bundle(cmd.Context(), args[0], version)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s bundled %s for %s\n",
				style.Check, args[0], version.String())
			fmt.Fprintln(out, style.Muted.Render("  "+bundle.Path))
			return nil
		},
	}
}
