package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/jmoiron/sqlx"
	"github.com/myrjola/droneconfigurator/internal/errors"
	"github.com/myrjola/droneconfigurator/internal/random"
	"log/slog"
	"os"
	"strings"
	"syscall"
)

// migrateTo ensures that the db schema matches the target schema definition.
//
// We employ a very simple declarative schema migration that:
//
// 1. Deletes deleted tables,
// 2. Creates new tables,
// 3. Migrates changed tables using 12-step schema migration https://www.sqlite.org/lang_altertable.html#otheralter,
// 4. Drops and recreates indexes and triggers whose definition differs.
//
// Inspired by https://david.rothlis.net/declarative-schema-migration-for-sqlite/
func (db *Database) migrateTo(ctx context.Context, schemaDefinition string) error {
	var err error

	// Pragmas and attached databases are per connection so the whole migration runs on a single one.
	var conn *sqlx.Conn
	if conn, err = db.ReadWrite.Connx(ctx); err != nil {
		return errors.Wrap(err, "acquire connection")
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			closeErr = errors.Wrap(closeErr, "release connection")
			db.logger.LogAttrs(ctx, slog.LevelError, "failed to release connection", errors.SlogError(closeErr))
		}
	}()

	// 12-step schema migration starts here. See https://www.sqlite.org/lang_altertable.html#otheralter.

	// Step 1: Disable foreign key validation temporarily.
	if _, err = conn.ExecContext(ctx, "PRAGMA foreign_keys = OFF"); err != nil {
		return errors.Wrap(err, "disable foreign key validation")
	}
	// Step 12: Re-enable foreign key validation.
	defer func() {
		if _, fkErr := conn.ExecContext(ctx, "PRAGMA foreign_keys = ON"); fkErr != nil {
			fkErr = errors.Wrap(fkErr, "re-enable foreign key validation")
			db.logger.LogAttrs(ctx, slog.LevelError, "exit to avoid data corruption", errors.SlogError(fkErr))
			if killErr := syscall.Kill(syscall.Getpid(), syscall.SIGINT); killErr != nil {
				os.Exit(1)
			}
		}
	}()

	// Create schema against a temporary database so that we know what has changed.
	var (
		randomID     string
		dbNameLength uint = 20
	)
	if randomID, err = random.Letters(dbNameLength); err != nil {
		return errors.Wrap(err, "generate random ID")
	}
	schemaTargetDataSourceName := fmt.Sprintf("file:%s?mode=memory&cache=shared", randomID)
	schemaTargetDatabase, err := sql.Open("sqlite3", schemaTargetDataSourceName)
	if err != nil {
		return errors.Wrap(err, "open schema target database")
	}
	defer func() {
		if closeErr := schemaTargetDatabase.Close(); closeErr != nil {
			closeErr = errors.Wrap(closeErr, "close schema target database")
			db.logger.LogAttrs(ctx, slog.LevelError, "failed to close schema target database",
				errors.SlogError(closeErr))
		}
	}()
	// The in-memory database lives as long as one connection to it stays open.
	schemaTargetDatabase.SetMaxIdleConns(1)
	if _, err = schemaTargetDatabase.ExecContext(ctx, schemaDefinition); err != nil {
		return errors.Wrap(err, "migrate schema target database")
	}
	if _, err = conn.ExecContext(ctx, "ATTACH DATABASE ? AS schemaTarget", schemaTargetDataSourceName); err != nil {
		return errors.Wrap(err, "attach schema target database")
	}
	defer func() {
		if _, detachErr := conn.ExecContext(ctx, "DETACH DATABASE schemaTarget"); detachErr != nil {
			detachErr = errors.Wrap(detachErr, "detach schema target database")
			db.logger.LogAttrs(ctx, slog.LevelError, "failed to detach schema target database",
				errors.SlogError(detachErr))
		}
	}()

	// Step 2: Start transaction.
	var tx *sqlx.Tx
	if tx, err = conn.BeginTxx(ctx, nil); err != nil {
		return errors.Wrap(err, "start transaction")
	}
	defer db.rollback(ctx, tx.Tx)

	// Step 3-7 migrate tables.
	if err = db.migrateTables(ctx, tx); err != nil {
		return errors.Wrap(err, "migrate tables")
	}

	// Step 8: Recreate indexes and triggers associated with table if needed.
	for _, objectType := range []string{"index", "trigger"} {
		if err = db.migrateObjects(ctx, tx, objectType); err != nil {
			return errors.Wrap(err, "migrate schema objects", slog.String("type", objectType))
		}
	}

	// Step 9: Recreate views associated with table. We have no views.

	// Step 10: Check foreign key constraints.
	if err = checkForeignKeys(ctx, tx); err != nil {
		return errors.Wrap(err, "foreign key check")
	}

	// Step 11: Commit transaction from step 2.
	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "commit transaction")
	}
	// Step 12: is in defer above.

	return nil
}

func checkForeignKeys(ctx context.Context, tx *sqlx.Tx) error {
	rows, err := tx.QueryContext(ctx, "PRAGMA foreign_key_check")
	if err != nil {
		return errors.Wrap(err, "query")
	}
	violated := rows.Next()
	if err = errors.Join(rows.Err(), rows.Close()); err != nil {
		return errors.Wrap(err, "read rows")
	}
	if violated {
		return errors.New("foreign key constraint violated")
	}
	return nil
}

// migrateTables ensures table schema is synchronized between databases.
func (db *Database) migrateTables(ctx context.Context, tx *sqlx.Tx) error {
	// Step 3: Remember schema (also includes trivial creation and deletion of tables).
	var err error

	var deletedTables []string
	if err = tx.SelectContext(ctx, &deletedTables, `SELECT current.name
FROM main.sqlite_schema AS current
LEFT JOIN schemaTarget.sqlite_schema AS target ON current.name = target.name AND current.type = target.type
WHERE current.type = 'table' AND target.type IS NULL AND current.name NOT LIKE 'sqlite_%'`); err != nil {
		return errors.Wrap(err, "query deleted tables")
	}
	for _, table := range deletedTables {
		db.logger.LogAttrs(ctx, slog.LevelInfo, "dropping table", slog.String("table", table))
		if _, err = tx.ExecContext(ctx, fmt.Sprintf(`DROP TABLE "%s"`, table)); err != nil {
			return errors.Wrap(err, "drop table", slog.String("table", table))
		}
	}

	var newTableSQLs []string
	if err = tx.SelectContext(ctx, &newTableSQLs, `SELECT target.sql
FROM schemaTarget.sqlite_schema AS target
LEFT JOIN main.sqlite_schema AS current ON current.name = target.name AND current.type = target.type
WHERE target.type = 'table' AND current.type IS NULL AND target.name NOT LIKE 'sqlite_%'`); err != nil {
		return errors.Wrap(err, "query new tables")
	}
	for _, newTableSQL := range newTableSQLs {
		db.logger.LogAttrs(ctx, slog.LevelInfo, "creating table", slog.String("query", newTableSQL))
		if _, err = tx.ExecContext(ctx, newTableSQL); err != nil {
			return errors.Wrap(err, "create table")
		}
	}

	// Identify tables with changed schema and continue the 12-step schema migration with them.
	var changedTables []changedObject
	if changedTables, err = queryChangedObjects(ctx, tx, "table"); err != nil {
		return errors.Wrap(err, "query changed tables")
	}

	for _, table := range changedTables {
		db.logger.LogAttrs(ctx, slog.LevelInfo, "migrating table",
			slog.String("table", table.Name),
			slog.String("current_sql", table.CurrentSQL),
			slog.String("new_sql", table.NewSQL))

		// Step 4: Create tables according to new schema on temporary names.
		tempName := table.Name + "_migration_temp"
		tempNameSQL := strings.Replace(table.NewSQL, table.Name, tempName, 1)
		if _, err = tx.ExecContext(ctx, tempNameSQL); err != nil {
			return errors.Wrap(err, "create new table to temporary name", slog.String("query", tempNameSQL))
		}

		// Step 5: Copy common columns between tables.
		// We wrap the column names in double quotes to handle column names that are SQLite keywords.
		var commonColumns []string
		if err = tx.SelectContext(ctx, &commonColumns, `SELECT '"' || target.name || '"'
FROM pragma_table_info(:table_name) AS current
JOIN pragma_table_info(:table_name, 'schemaTarget') AS target ON target.name = current.name`,
			sql.Named("table_name", table.Name)); err != nil {
			return errors.Wrap(err, "query common columns")
		}
		common := strings.Join(commonColumns, ", ")
		copySQL := fmt.Sprintf("INSERT INTO %s (%s) SELECT %s FROM %s;", //nolint: gosec // we trust the query.
			tempName, common, common, table.Name)
		db.logger.LogAttrs(ctx, slog.LevelInfo, "copying data", slog.String("query", copySQL))
		if _, err = tx.ExecContext(ctx, copySQL); err != nil {
			return errors.Wrap(err, "copy data")
		}

		// Step 6: Drop the old table.
		if _, err = tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE %s;", table.Name)); err != nil {
			return errors.Wrap(err, "drop old table")
		}

		// Step 7: Rename new table to old table's name.
		if _, err = tx.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s RENAME TO %s;", tempName, table.Name)); err != nil {
			return errors.Wrap(err, "rename new table")
		}
	}
	return nil
}

// migrateObjects synchronizes indexes or triggers. Dropping a migrated table drops its indexes and triggers too so
// this runs after migrateTables and recreates whatever is missing.
func (db *Database) migrateObjects(ctx context.Context, tx *sqlx.Tx, objectType string) error {
	var (
		err     error
		removed []string
	)
	// Automatic indexes have NULL sql and are managed by SQLite.
	if err = tx.SelectContext(ctx, &removed, `SELECT current.name
FROM main.sqlite_schema AS current
LEFT JOIN schemaTarget.sqlite_schema AS target ON current.name = target.name AND current.type = target.type
WHERE current.type = :type AND current.sql IS NOT NULL AND (target.type IS NULL OR current.sql <> target.sql)`,
		sql.Named("type", objectType)); err != nil {
		return errors.Wrap(err, "query removed objects")
	}
	for _, name := range removed {
		db.logger.LogAttrs(ctx, slog.LevelInfo, "dropping schema object",
			slog.String("type", objectType), slog.String("name", name))
		if _, err = tx.ExecContext(ctx, fmt.Sprintf(`DROP %s "%s"`, strings.ToUpper(objectType), name)); err != nil {
			return errors.Wrap(err, "drop schema object", slog.String("name", name))
		}
	}

	var created []string
	if err = tx.SelectContext(ctx, &created, `SELECT target.sql
FROM schemaTarget.sqlite_schema AS target
LEFT JOIN main.sqlite_schema AS current ON current.name = target.name AND current.type = target.type
WHERE target.type = :type AND target.sql IS NOT NULL AND current.type IS NULL`,
		sql.Named("type", objectType)); err != nil {
		return errors.Wrap(err, "query new objects")
	}
	for _, createSQL := range created {
		db.logger.LogAttrs(ctx, slog.LevelInfo, "creating schema object", slog.String("query", createSQL))
		if _, err = tx.ExecContext(ctx, createSQL); err != nil {
			return errors.Wrap(err, "create schema object")
		}
	}
	return nil
}

type changedObject struct {
	Name       string `db:"name"`
	CurrentSQL string `db:"current_sql"`
	NewSQL     string `db:"new_sql"`
}

// queryChangedObjects returns the objects of the given type whose definition differs between the current and the
// target schema.
func queryChangedObjects(ctx context.Context, tx *sqlx.Tx, objectType string) ([]changedObject, error) {
	var changed []changedObject
	if err := tx.SelectContext(ctx, &changed, `SELECT
    current.name AS name,
    current.sql AS current_sql,
    target.sql AS new_sql
FROM main.sqlite_schema AS current
JOIN schemaTarget.sqlite_schema AS target ON current.name = target.name AND current.type = target.type
WHERE current.type = :type AND current.name NOT LIKE 'sqlite_%' AND current.sql <> target.sql`,
		sql.Named("type", objectType)); err != nil {
		return nil, errors.Wrap(err, "select changed objects")
	}
	return changed, nil
}
