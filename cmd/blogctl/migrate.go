package main

import (
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the users, news and sessions tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := openDB(); err != nil {
				return err
			}
			cmd.Println("migrate ok")
			return nil
		},
	}
}
