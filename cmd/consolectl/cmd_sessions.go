package main

import (
	"context"

	"github.com/spf13/cobra"

	"association-console/internal/repositories"
	"association-console/internal/services"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "General-assembly sessions",
}

var sessionsPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Show the pending session and its phase",
	RunE:  runSessionsPending,
}

func init() {
	sessionsCmd.AddCommand(sessionsPendingCmd)
}

func runSessionsPending(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	svc := services.NewSessionService(repositories.NewSessionRepository(client), nil, nil, 0, nil, logger)
	pending, err := svc.Pending(ctx)
	if err != nil {
		return err
	}
	return printYAML(cmd.OutOrStdout(), pending)
}
