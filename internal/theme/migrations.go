package theme

import (
	"database/sql"

	"github.com/HerbHall/shadetree/internal/store"
)

// Migrations returns the schema migrations for the theme component.
// cmd/shadetree applies them through store.Migrate at startup.
func Migrations() []store.Migration {
	return []store.Migration{
		{
			Version:     1,
			Description: "create session preference and theme tables",
			Up: func(tx *sql.Tx) error {
				stmts := []string{
					`CREATE TABLE IF NOT EXISTS session_prefs (
						id TEXT PRIMARY KEY,
						prefs TEXT NOT NULL DEFAULT '{}',
						created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
						updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
					)`,
					`CREATE INDEX IF NOT EXISTS idx_session_prefs_updated ON session_prefs(updated_at)`,
					`CREATE TABLE IF NOT EXISTS themes (
						id TEXT PRIMARY KEY,
						name TEXT NOT NULL UNIQUE,
						label TEXT NOT NULL DEFAULT '',
						description TEXT NOT NULL DEFAULT '',
						tokens TEXT NOT NULL,
						built_in INTEGER NOT NULL DEFAULT 0,
						created_at DATETIME NOT NULL,
						updated_at DATETIME NOT NULL
					)`,
					`CREATE INDEX IF NOT EXISTS idx_themes_name ON themes(name)`,
				}
				for _, stmt := range stmts {
					if _, err := tx.Exec(stmt); err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}
