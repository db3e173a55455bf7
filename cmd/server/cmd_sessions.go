package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/yoga-studio/front/internal/clients"
	"github.com/yoga-studio/front/internal/models"
	"github.com/yoga-studio/front/internal/services"
)

func newSessionsCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Log in and list the yoga sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = l.Sync() }()

			ctx := cmd.Context()
			session := services.NewSessionService(l)
			gateways := clients.NewGateways(clients.NewBaseClient(cfg.API.BaseURL, cfg.API.Timeout, session, l))
			auth := services.NewAuthService(gateways.Auth, session, l)

			if _, err := auth.Login(ctx, models.LoginRequest{Email: email, Password: password}); err != nil {
				return fmt.Errorf("login: %w", err)
			}
			defer auth.Logout()

			sessions, err := gateways.Sessions.All(ctx)
			if err != nil {
				return err
			}
			teachers, err := gateways.Teachers.All(ctx)
			if err != nil {
				return err
			}
			names := make(map[int64]string, len(teachers))
			for i := range teachers {
				names[teachers[i].ID] = teachers[i].DisplayName()
			}

			tw := table.NewWriter()
			tw.AppendHeader(table.Row{"ID", "Name", "Date", "Teacher", "Attendees"})
			for _, s := range sessions {
				tw.AppendRow(table.Row{s.ID, s.Name, s.Date.DateString(), names[s.TeacherID], len(s.Users)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
