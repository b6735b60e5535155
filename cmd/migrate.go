package main

import (
	"context"
	"database/sql"
	"fmt"
	root "travel"
	"travel/internal/config"
	"travel/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand. It brings the travel
// schema and the River job tables up to their latest versions.
func migrateCommand(cfg *config.Config) *cobra.Command {
	var skipRiver bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the travel schema and job queue tables to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			db := strg.DB.(*sql.DB)

			version, err := migrateSchema(db)
			if err != nil {
				logger.Fatal(ctx, "could not migrate travel schema", zap.Error(err))
			}
			logger.Info(ctx, "travel schema is up to date", zap.Int64("version", version))

			if skipRiver {
				return
			}
			from, to, err := migrateJobQueue(ctx, db)
			if err != nil {
				logger.Fatal(ctx, "could not migrate river job queue", zap.Error(err))
			}
			logger.Info(ctx, "river job queue is up to date", zap.Int("from", from), zap.Int("to", to))
		},
	}
	cmd.Flags().BoolVar(&skipRiver, "skip-river", false, "only migrate the travel schema")

	return cmd
}

// migrateSchema applies the embedded goose migrations and returns the resulting version.
func migrateSchema(db *sql.DB) (int64, error) {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return 0, fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return 0, fmt.Errorf("could not apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return 0, fmt.Errorf("could not read schema version: %w", err)
	}

	return version, nil
}

// migrateJobQueue runs pending River migrations and reports the version range it moved through.
func migrateJobQueue(ctx context.Context, db *sql.DB) (int, int, error) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return 0, 0, fmt.Errorf("could not create migrator: %w", err)
	}

	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("could not list applied migrations: %w", err)
	}
	current := 0
	if len(existing) > 0 {
		current = existing[len(existing)-1].Version
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version
	if current >= latest {
		return current, current, nil
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latest,
	}); err != nil {
		return 0, 0, fmt.Errorf("could not apply migrations: %w", err)
	}

	return current, latest, nil
}
