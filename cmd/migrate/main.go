// Command migrate creates or updates the storefront schema.
package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(migrate),
	)
	if err := app.Err(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		slog.Error("Failed to start", slog.Any("error", err))
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to close database", slog.Any("error", err))
	}
}

func migrate(db *gorm.DB, logger *slog.Logger) error {
	if db == nil {
		return errors.New("postgres is not configured")
	}

	models := model.All()
	if err := db.AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "auto migrate failed")
	}
	logger.Info("Schema is up to date", slog.Int("tables", len(models)))

	return nil
}
