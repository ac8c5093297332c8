package sqlite

import (
	"context"
	"github.com/myrjola/droneconfigurator/internal/errors"
	"log/slog"
	"time"
)

const optimizeInterval = time.Hour

// startOptimizer runs optimize once per hour until ctx is cancelled. See https://www.sqlite.org/pragma.html#pragma_optimize.
func (db *Database) startOptimizer(ctx context.Context) {
	ticker := time.NewTicker(optimizeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			db.optimize(ctx)
		}
	}
}

func (db *Database) optimize(ctx context.Context) {
	start := time.Now()
	if _, err := db.ReadWrite.ExecContext(ctx, "PRAGMA optimize;"); err != nil {
		if ctx.Err() != nil {
			return
		}
		err = errors.Wrap(err, "optimize database")
		db.logger.LogAttrs(ctx, slog.LevelError, "failed to optimize database", errors.SlogError(err))
		return
	}
	db.logger.LogAttrs(ctx, slog.LevelDebug, "optimized database", slog.Duration("duration", time.Since(start)))
}
