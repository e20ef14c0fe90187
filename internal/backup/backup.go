// Package backup creates and restores snapshots of the Shadetree database.
//
// Snapshots are plain SQLite database files produced with VACUUM INTO,
// which writes a compacted, transactionally consistent copy while the
// source stays readable. Restore swaps a snapshot into place, keeping a
// safety copy of whatever was live before.
package backup

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver
)

// sqliteHeader is the 16-byte magic every SQLite database file starts with.
var sqliteHeader = []byte("SQLite format 3\x00")

// Backup writes a consistent snapshot of the database at dbPath to dst.
// It refuses to overwrite an existing file unless force is true.
func Backup(ctx context.Context, dbPath, dst string, force bool) error {
	if _, err := os.Stat(dbPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("database file not found: %s", dbPath)
		}
		return fmt.Errorf("checking database: %w", err)
	}

	if _, err := os.Stat(dst); err == nil {
		if !force {
			return fmt.Errorf("file already exists (use --force to overwrite): %s", dst)
		}
		// VACUUM INTO refuses to write over an existing file.
		if err := os.Remove(dst); err != nil {
			return fmt.Errorf("removing previous backup: %w", err)
		}
	}

	if dir := filepath.Dir(dst); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating backup directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	// VACUUM INTO folds pending WAL content into a compacted copy and
	// leaves the source untouched.
	if _, err := db.ExecContext(ctx, "VACUUM INTO ?", dst); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}
