package theme

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/HerbHall/shadetree/pkg/palette"
)

// SessionStore is the session persistence the Manager needs. A nil
// SessionStore puts the Manager in cookie-and-default-only operation,
// which is how the package behaves when embedded as a library without
// a database.
type SessionStore interface {
	GetSession(ctx context.Context, id string) (Prefs, error)
	PutSession(ctx context.Context, id string, p Prefs) error
}

// Record is one stored theme: a palette preset plus catalog metadata.
// Built-in records mirror the compiled-in presets and are read-only.
// @Description A stored theme with its light and dark token tables.
type Record struct {
	ID          string              `json:"id"`
	Name        string              `json:"name" example:"midnight"`
	Label       string              `json:"label" example:"Midnight"`
	Description string              `json:"description,omitempty"`
	BuiltIn     bool                `json:"built_in"`
	Light       palette.ThemeTokens `json:"light"`
	Dark        palette.ThemeTokens `json:"dark"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// Preset converts the record into a registrable palette preset.
func (r *Record) Preset() palette.Preset {
	return palette.Preset{
		Name:        r.Name,
		Label:       r.Label,
		Description: r.Description,
		Light:       r.Light,
		Dark:        r.Dark,
	}
}

// tokenDoc is the JSON shape of the themes.tokens column.
type tokenDoc struct {
	Light palette.ThemeTokens `json:"light"`
	Dark  palette.ThemeTokens `json:"dark"`
}

// Store provides database access for the theme component.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store wrapping the given database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

var _ SessionStore = (*Store)(nil)

// --- Sessions ---

// GetSession returns the preference document for a session ID.
// A missing row yields the zero Prefs, not an error.
func (s *Store) GetSession(ctx context.Context, id string) (Prefs, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `
		SELECT prefs FROM session_prefs WHERE id = ?`, id,
	).Scan(&doc)
	if err != nil {
		if err == sql.ErrNoRows {
			return Prefs{}, nil
		}
		return Prefs{}, fmt.Errorf("get session prefs: %w", err)
	}

	var p Prefs
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return Prefs{}, fmt.Errorf("parse session prefs: %w", err)
	}
	return p, nil
}

// PutSession inserts or replaces the preference document for a session.
func (s *Store) PutSession(ctx context.Context, id string, p Prefs) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal session prefs: %w", err)
	}
	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO session_prefs (id, prefs, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			prefs = excluded.prefs,
			updated_at = excluded.updated_at`,
		id, string(doc), now, now,
	)
	if err != nil {
		return fmt.Errorf("put session prefs: %w", err)
	}
	return nil
}

// PruneSessions deletes sessions not touched since the given time and
// returns the number removed.
func (s *Store) PruneSessions(ctx context.Context, before time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM session_prefs WHERE updated_at < ?`, before)
	if err != nil {
		return 0, fmt.Errorf("prune sessions: %w", err)
	}
	return result.RowsAffected()
}

// --- Themes ---

// InsertTheme inserts a new theme record.
func (s *Store) InsertTheme(ctx context.Context, rec *Record) error {
	doc, err := json.Marshal(tokenDoc{Light: rec.Light, Dark: rec.Dark})
	if err != nil {
		return fmt.Errorf("marshal theme tokens: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO themes (id, name, label, description, tokens, built_in, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Name, rec.Label, rec.Description, string(doc),
		rec.BuiltIn, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert theme: %w", err)
	}
	return nil
}

// UpdateTheme replaces the mutable fields of an existing theme record.
func (s *Store) UpdateTheme(ctx context.Context, rec *Record) error {
	doc, err := json.Marshal(tokenDoc{Light: rec.Light, Dark: rec.Dark})
	if err != nil {
		return fmt.Errorf("marshal theme tokens: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		UPDATE themes SET name = ?, label = ?, description = ?, tokens = ?, updated_at = ?
		WHERE id = ?`,
		rec.Name, rec.Label, rec.Description, string(doc), rec.UpdatedAt, rec.ID,
	)
	if err != nil {
		return fmt.Errorf("update theme: %w", err)
	}
	return nil
}

// GetTheme returns a theme by ID, or nil, nil if not found.
func (s *Store) GetTheme(ctx context.Context, id string) (*Record, error) {
	return s.getTheme(ctx, `
		SELECT id, name, label, description, tokens, built_in, created_at, updated_at
		FROM themes WHERE id = ?`, id)
}

// GetThemeByName returns a theme by its unique name, or nil, nil if
// not found.
func (s *Store) GetThemeByName(ctx context.Context, name string) (*Record, error) {
	return s.getTheme(ctx, `
		SELECT id, name, label, description, tokens, built_in, created_at, updated_at
		FROM themes WHERE name = ?`, name)
}

func (s *Store) getTheme(ctx context.Context, query string, arg any) (*Record, error) {
	var (
		rec Record
		doc string
	)
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&rec.ID, &rec.Name, &rec.Label, &rec.Description, &doc,
		&rec.BuiltIn, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get theme: %w", err)
	}

	var tokens tokenDoc
	if err := json.Unmarshal([]byte(doc), &tokens); err != nil {
		return nil, fmt.Errorf("parse theme tokens: %w", err)
	}
	rec.Light, rec.Dark = tokens.Light, tokens.Dark
	return &rec, nil
}

// ListThemes returns all stored themes, built-ins first, then by name.
func (s *Store) ListThemes(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, label, description, tokens, built_in, created_at, updated_at
		FROM themes ORDER BY built_in DESC, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var (
			rec Record
			doc string
		)
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Label, &rec.Description,
			&doc, &rec.BuiltIn, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan theme row: %w", err)
		}
		var tokens tokenDoc
		if err := json.Unmarshal([]byte(doc), &tokens); err != nil {
			return nil, fmt.Errorf("parse theme tokens: %w", err)
		}
		rec.Light, rec.Dark = tokens.Light, tokens.Dark
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// DeleteTheme deletes a theme by ID.
func (s *Store) DeleteTheme(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM themes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete theme: %w", err)
	}
	return nil
}

// SeedBuiltins inserts a built-in record for each preset that does not
// already have one. Existing rows, including user edits to name
// collisions, are left alone.
func (s *Store) SeedBuiltins(ctx context.Context, presets []palette.Preset) error {
	now := time.Now().UTC()
	for _, p := range presets {
		doc, err := json.Marshal(tokenDoc{Light: p.Light, Dark: p.Dark})
		if err != nil {
			return fmt.Errorf("marshal built-in theme %s: %w", p.Name, err)
		}
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO themes (id, name, label, description, tokens, built_in, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, 1, ?, ?)
			ON CONFLICT(name) DO NOTHING`,
			uuid.NewString(), p.Name, p.Label, p.Description, string(doc), now, now,
		)
		if err != nil {
			return fmt.Errorf("seed built-in theme %s: %w", p.Name, err)
		}
	}
	return nil
}
