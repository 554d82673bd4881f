package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const themeKey = "theme_mode"

// ValidThemes are the accepted theme modes.
var ValidThemes = map[string]bool{
	"light":  true,
	"dark":   true,
	"system": true,
}

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// GetTheme returns the stored theme mode, defaulting to "system" when
// nothing has been saved yet.
func (r *Repo) GetTheme(ctx context.Context) (string, error) {
	var mode string
	err := r.DB.QueryRowContext(ctx, `
		SELECT value FROM preferences WHERE key = ?
	`, themeKey).Scan(&mode)
	if errors.Is(err, sql.ErrNoRows) {
		return "system", nil
	}
	if err != nil {
		return "", fmt.Errorf("get theme: %w", err)
	}
	return mode, nil
}

// SetTheme stores the theme mode. Callers validate against ValidThemes
// first; the repo only persists.
func (r *Repo) SetTheme(ctx context.Context, mode string) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, themeKey, mode)
	if err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	return nil
}
