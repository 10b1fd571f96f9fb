package main

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"blog_backend/internal/platform/config"
	platformdb "blog_backend/internal/platform/db"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "blogctl",
		Short:         "Maintenance commands for the blog database",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Load()
		},
	}
	root.AddCommand(newMigrateCmd(), newSeedCmd(), newLeaderboardCmd(), newPruneSessionsCmd())
	return root
}

// openDB connects using the DB_* environment and brings the schema up to date.
func openDB() (*gorm.DB, error) {
	db, err := platformdb.OpenDB(platformdb.LoadConfigFromEnv())
	if err != nil {
		return nil, err
	}
	if err := platformdb.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
