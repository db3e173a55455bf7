package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yoga-studio/front/internal/api"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the front server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = l.Sync() }()

			front, err := api.NewFrontend(cfg, l)
			if err != nil {
				return err
			}

			l.Info("front server starting",
				zap.String("address", cfg.Server.Address),
				zap.String("api", cfg.API.BaseURL),
			)
			return listen(cmd.Context(), cfg.Server.Address, front.Engine, l)
		},
	}
}
