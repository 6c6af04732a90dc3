package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pinstack-blog-service/internal/infrastructure/config"
	"pinstack-blog-service/internal/infrastructure/logger"
	postgres_storage "pinstack-blog-service/internal/infrastructure/outbound/storage/postgres"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply the postgres schema migrations",
	Long:      "Applies the migrations embedded in the binary to the database configured under database. Defaults to up.",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{postgres_storage.MigrateUp, postgres_storage.MigrateDown},
	RunE:      runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	direction := postgres_storage.MigrateUp
	if len(args) == 1 {
		direction = args[0]
	}

	cfg, err := config.Load(rootFlags.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.NewWithWriter(cfg.Env, cmd.ErrOrStderr())

	if err := postgres_storage.Migrate(cfg.Database.DSN(), direction, log); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Migrations applied (%s)\n", direction)
	return nil
}
