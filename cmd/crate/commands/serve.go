package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/crate/internal/adapters/telemetry"
	"go.trai.ch/crate/internal/server"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the collection and bundle API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := c.app.Config()
			if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
				cfg.ListenAddr = listen
			}

			tp := telemetry.SetupProvider()
			defer func() {
				_ = tp.Shutdown(context.Background())
			}()

			return server.New(c.app, c.logger, cfg).Run(cmd.Context())
		},
	}
	cmd.Flags().StringP("listen", "l", "", "Listen address (overrides configuration)")
	return cmd
}
