package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yoga-studio/front/internal/stub"
)

func newStubCmd() *cobra.Command {
	var (
		fixture string
		address string
	)

	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Run an in-memory Yoga Studio API for development",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = l.Sync() }()

			if fixture == "" {
				fixture = cfg.Stub.Fixture
			}
			if address == "" {
				address = cfg.Stub.Address
			}

			f, err := stub.LoadFixture(fixture)
			if err != nil {
				return err
			}
			srv := stub.New(stub.Options{
				JWTSecret: cfg.Stub.JWTSecret,
				TokenTTL:  time.Duration(cfg.Stub.JWTExpireHours) * time.Hour,
				Logger:    l,
			})
			if err := srv.Seed(cmd.Context(), f); err != nil {
				return err
			}

			l.Info("api stub starting", zap.String("address", address))
			return listen(cmd.Context(), address, srv.Handler(), l)
		},
	}

	cmd.Flags().StringVar(&fixture, "fixture", "", "YAML fixture to seed (default: embedded fixture)")
	cmd.Flags().StringVar(&address, "address", "", "listen address (default: stub.address)")
	return cmd
}
