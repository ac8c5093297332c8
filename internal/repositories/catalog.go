package repositories

import (
	"context"
	"database/sql"
	"github.com/jmoiron/sqlx"
	"github.com/myrjola/droneconfigurator/internal/catalog"
	"github.com/myrjola/droneconfigurator/internal/errors"
	"github.com/myrjola/droneconfigurator/internal/sqlite"
	"log/slog"
	"time"
)

type CatalogRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewCatalogRepository(db *sqlite.Database, logger *slog.Logger) *CatalogRepository {
	return &CatalogRepository{
		db:     db,
		logger: logger.With("source", "CatalogRepository"),
	}
}

// link is one row of a compatibility join table.
type link struct {
	OwnerID  string `db:"owner_id"`
	TargetID string `db:"target_id"`
}

// Load reads the whole catalog in one read-only transaction.
//
// Items are ordered by their declaration order and compatibility lists by the declaration order of the items they
// reference.
func (r *CatalogRepository) Load(ctx context.Context) (*catalog.Catalog, error) {
	start := time.Now()
	tx, err := r.db.ReadOnly.BeginTxx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, errors.Wrap(err, "begin transaction")
	}
	defer func() {
		if err = tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			err = errors.Wrap(err, "rollback")
			r.logger.LogAttrs(ctx, slog.LevelError, "could not rollback transaction", errors.SlogError(err))
		}
	}()

	var data catalog.Data

	stmt := `SELECT id, name, description, icon FROM scenarios ORDER BY sort_order`
	if err = tx.SelectContext(ctx, &data.Scenarios, stmt); err != nil {
		return nil, errors.Wrap(err, "select scenarios")
	}

	stmt = `SELECT id, name, description, image_path, base_price, flight_time, max_speed, range_km
FROM platforms
ORDER BY sort_order`
	if err = tx.SelectContext(ctx, &data.Platforms, stmt); err != nil {
		return nil, errors.Wrap(err, "select platforms")
	}
	var links map[string][]string
	if links, err = selectLinks(ctx, tx, `SELECT ps.platform_id AS owner_id, ps.scenario_id AS target_id
FROM platform_scenarios ps
JOIN scenarios s ON s.id = ps.scenario_id
ORDER BY s.sort_order`); err != nil {
		return nil, errors.Wrap(err, "select platform scenarios")
	}
	for i := range data.Platforms {
		data.Platforms[i].Scenarios = links[data.Platforms[i].ID]
	}

	stmt = `SELECT id, name, description, price, weight FROM payloads ORDER BY sort_order`
	if err = tx.SelectContext(ctx, &data.Payloads, stmt); err != nil {
		return nil, errors.Wrap(err, "select payloads")
	}
	if links, err = selectPlatformLinks(ctx, tx, "payload_platforms", "payload_id"); err != nil {
		return nil, errors.Wrap(err, "select payload platforms")
	}
	for i := range data.Payloads {
		data.Payloads[i].CompatiblePlatforms = links[data.Payloads[i].ID]
	}

	stmt = `SELECT id, name, description, price, capacity, weight FROM power_sources ORDER BY sort_order`
	if err = tx.SelectContext(ctx, &data.PowerSources, stmt); err != nil {
		return nil, errors.Wrap(err, "select power sources")
	}
	if links, err = selectPlatformLinks(ctx, tx, "power_source_platforms", "power_source_id"); err != nil {
		return nil, errors.Wrap(err, "select power source platforms")
	}
	for i := range data.PowerSources {
		data.PowerSources[i].CompatiblePlatforms = links[data.PowerSources[i].ID]
	}

	stmt = `SELECT id, name, description, price FROM accessories ORDER BY sort_order`
	if err = tx.SelectContext(ctx, &data.Accessories, stmt); err != nil {
		return nil, errors.Wrap(err, "select accessories")
	}
	if links, err = selectPlatformLinks(ctx, tx, "accessory_platforms", "accessory_id"); err != nil {
		return nil, errors.Wrap(err, "select accessory platforms")
	}
	for i := range data.Accessories {
		data.Accessories[i].CompatiblePlatforms = links[data.Accessories[i].ID]
	}

	stmt = `SELECT scenario_id, platform_id, payload_id, power_source_id FROM standard_packages ORDER BY sort_order`
	if err = tx.SelectContext(ctx, &data.StandardPackages, stmt); err != nil {
		return nil, errors.Wrap(err, "select standard packages")
	}

	if err = tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit")
	}

	r.logger.LogAttrs(ctx, slog.LevelInfo, "catalog loaded",
		slog.Int("scenarios", len(data.Scenarios)),
		slog.Int("platforms", len(data.Platforms)),
		slog.Int("payloads", len(data.Payloads)),
		slog.Int("power_sources", len(data.PowerSources)),
		slog.Int("accessories", len(data.Accessories)),
		slog.Int("standard_packages", len(data.StandardPackages)),
		slog.Duration("duration", time.Since(start)))

	return catalog.New(data), nil
}

// selectPlatformLinks reads a join table from a dependent item to the platforms it fits.
func selectPlatformLinks(ctx context.Context, tx *sqlx.Tx, table string, ownerColumn string) (map[string][]string, error) {
	//nolint: gosec // table and column names are constants.
	stmt := `SELECT l.` + ownerColumn + ` AS owner_id, l.platform_id AS target_id
FROM ` + table + ` l
JOIN platforms p ON p.id = l.platform_id
ORDER BY p.sort_order`
	return selectLinks(ctx, tx, stmt)
}

func selectLinks(ctx context.Context, tx *sqlx.Tx, stmt string) (map[string][]string, error) {
	var rows []link
	if err := tx.SelectContext(ctx, &rows, stmt); err != nil {
		return nil, errors.Wrap(err, "select links")
	}
	links := make(map[string][]string)
	for _, l := range rows {
		links[l.OwnerID] = append(links[l.OwnerID], l.TargetID)
	}
	return links, nil
}
