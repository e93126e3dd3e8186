package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/invoice-orders/internal/common"
	repo "github.com/joseph-ayodele/invoice-orders/internal/repository"
)

// ConnectDB opens the store described by cfg, pings it and makes sure both
// tables exist. On failure the handle is closed before returning.
func ConnectDB(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*repo.DB, error) {
	db, err := repo.Open(ctx, repo.Config{
		Driver:          cfg.Driver,
		DSN:             cfg.DSN,
		BusyTimeout:     cfg.BusyTimeout,
		MaxConns:        cfg.MaxConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
		DialTimeout:     5 * time.Second,
	}, logger)
	if err != nil {
		return nil, err
	}
	if err := repo.HealthCheck(ctx, db, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		repo.Close(db, logger)
		return nil, err
	}
	if err := db.EnsureSchema(ctx); err != nil {
		repo.Close(db, logger)
		return nil, err
	}
	return db, nil
}
