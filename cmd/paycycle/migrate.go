package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/paycycle/internal/storage/sqlite"
)

func migrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the database schema to the latest version.

The server also migrates on start; this command is for preparing a
database ahead of time or checking its version.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, _ := cmd.Flags().GetBool("status")
			dbPath := a.cfg.Database.Path

			if !status {
				slog.Info("Running database migrations", "database", dbPath)
				if err := sqlite.RunMigrations(dbPath); err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}
			}

			version, dirty, err := sqlite.MigrationVersion(dbPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schema version: %d (dirty: %t)\n", version, dirty)
			return nil
		},
	}

	cmd.Flags().Bool("status", false, "show the current schema version without applying changes")
	return cmd
}
