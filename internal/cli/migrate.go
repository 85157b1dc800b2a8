package cli

import (
	"fmt"

	"atelier_backend/internal/config"
	"atelier_backend/internal/database"
	"atelier_backend/internal/logger"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	Long: `Run the schema migration against the configured relational database
(postgres, mysql or sqlite). The memory driver has nothing to migrate.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Database.Driver == config.DriverMemory {
		return fmt.Errorf("migrate needs a relational database driver, got %q", cfg.Database.Driver)
	}

	ctx := cmd.Context()
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}
	logger.Info("Migration finished", "driver", cfg.Database.Driver)
	return nil
}
