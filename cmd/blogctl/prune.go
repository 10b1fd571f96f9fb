package main

import (
	"github.com/spf13/cobra"

	"blog_backend/internal/app/di"
)

func newPruneSessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune-sessions",
		Short: "Delete expired login sessions from the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			// Redis sessions expire on their own, so only the table is pruned here.
			n, err := di.NewSessionRepository(nil, db).DeleteExpired(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("pruned %d expired sessions\n", n)
			return nil
		},
	}
}
