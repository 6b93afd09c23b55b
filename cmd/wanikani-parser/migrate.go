package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jakefish18/wanikani-parser/internal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			applied, err := database.Migrate(cmd.Context(), db)
			if err != nil {
				return err
			}
			slog.Info("Applied migrations", "driver", cfg.Database.Driver, "count", applied)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migrations\n", applied)
			return nil
		},
	}
}
