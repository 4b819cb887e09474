package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/udisondev/skirmish/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:         "migrate",
	Short:       "Apply database migrations",
	Annotations: map[string]string{"content": "skip"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := db.RunMigrations(cmd.Context(), app.cfg.Database.DSN()); err != nil {
			return err
		}
		slog.Info("database migrations applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
