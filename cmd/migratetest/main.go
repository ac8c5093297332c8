package main

import (
	"context"
	"github.com/myrjola/droneconfigurator/internal/errors"
	"github.com/myrjola/droneconfigurator/internal/repositories"
	"github.com/myrjola/droneconfigurator/internal/sqlite"
	"github.com/myrjola/droneconfigurator/internal/testhelpers"
	"log/slog"
	"os"
	"time"
)

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	var (
		err       error
		start     = time.Now()
		ctx       context.Context
		sqliteURL string
		ok        bool
		cancel    context.CancelFunc
	)
	ctx = context.Background()
	ctx, cancel = context.WithTimeout(ctx, 5*time.Second) //nolint:mnd // 5 seconds

	if sqliteURL, ok = os.LookupEnv("CONFIGURATOR_SQLITE_URL"); !ok {
		logger.LogAttrs(ctx, slog.LevelError, "CONFIGURATOR_SQLITE_URL not set")
		os.Exit(1)
	}

	var db *sqlite.Database
	if db, err = sqlite.NewDatabase(ctx, sqliteURL, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating database",
			slog.String("url", sqliteURL), errors.SlogError(err))
		os.Exit(1)
	}

	// Count the sessions that survived the migration and check that the catalog still loads.
	row := db.ReadOnly.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`)
	var count int
	if err = row.Scan(&count); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error fetching session count", errors.SlogError(err))
		os.Exit(1)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "session count", slog.Int("count", count))

	c, err := repositories.NewCatalogRepository(db, logger).Load(ctx)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error loading catalog", errors.SlogError(err))
		os.Exit(1)
	}
	if len(c.Platforms()) == 0 {
		logger.LogAttrs(ctx, slog.LevelError, "no platforms found, something is likely wrong")
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Migration test successful 🙌", slog.Duration("duration", time.Since(start)))
	cancel()
	os.Exit(0)
}
