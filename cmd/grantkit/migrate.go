package main

import (
	"fmt"

	"github.com/fernandezvara/dbkit"
	"github.com/spf13/cobra"

	"github.com/fernandezvara/grantkit"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the persistence tables",
	Long: `Migrate applies the GrantKit schema migrations to the configured
PostgreSQL database. Required once before the first persisted run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("migrate requires --database-url or a configured database_url")
		}

		db, err := dbkit.New(dbkit.Config{URL: cfg.DatabaseURL})
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer db.Close()

		store := grantkit.NewDirStore(cfg.Artifacts)
		service := grantkit.NewService(store, newLogger(), grantkit.WithDatabase(db))

		result, err := db.Migrate(cmd.Context(), service.Migrations())
		if err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}

		if !quiet {
			if len(result.Applied) == 0 {
				fmt.Println("Database already up to date.")
			}
			for _, m := range result.Applied {
				fmt.Printf("Applied migration: %s\n", m.ID)
			}
		}
		return nil
	},
}
