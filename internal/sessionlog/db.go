package sessionlog

import (
	"database/sql"
	"embed"
	"fmt"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB wraps a sqlite connection holding the session-log schema.
type DB struct {
	*sql.DB
}

// NewDB opens (creating if necessary) the sqlite database at path, applies
// the pragmas needed for a single-writer append-only log, and migrates the
// schema to the latest version.
func NewDB(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sessionlog: open %s: %w", path, err)
	}

	if err := applyPragmas(sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}

	db := &DB{sqlDB}
	if err := db.MigrateUp(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// applyPragmas sets the sqlite pragmas appropriate for a mostly-append,
// single-process log: WAL for concurrent readers, a busy timeout so a
// reader never trips "database is locked" against the writer.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("sessionlog: apply %q: %w", p, err)
		}
	}
	return nil
}
