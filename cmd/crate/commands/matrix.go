package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/crate/internal/app"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/ui/style"
)

func (c *CLI) newMatrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix <collection-id>",
		Short: "Show the game-version compatibility matrix for a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := c.app.Matrix(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderMatrix(cmd.OutOrStdout(), cm)
			return nil
		},
	}
}

func renderMatrix(w io.Writer, cm *app.CollectionMatrix) {
	fmt.Fprintln(w, style.Header.Render(cm.Collection.Name)+
		style.Muted.Render(" ("+cm.Collection.ID+")"))
	fmt.Fprintf(w, "%d projects, %d candidate versions\n\n", len(cm.Entries), len(cm.Groups))

	slugByKey := make(map[domain.ProjectKey]string, len(cm.Entries))
	for _, e := range cm.Entries {
		slugByKey[e.Key] = e.Project.Slug
	}

	for _, g := range cm.Groups {
		slugs := make([]string, 0, len(g.Projects))
		for _, key := range g.Keys() {
			slugs = append(slugs, slugByKey[key])
		}

		icon := style.Circle
		if len(g.Projects) == len(cm.Entries) {
			icon = style.Check
		}

		fmt.Fprintf(w, "  %s %-10s %3d/%d  %s\n",
			icon,
			g.Version.String(),
			len(g.Projects),
			len(cm.Entries),
			style.Muted.Render(strings.Join(slugs, ", ")),
		)
	}
}
