package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/joral/gridboard/internal/layout"
)

// ErrNotFound reports a layout name with no saved configuration.
var ErrNotFound = errors.New("layout not found")

// LayoutInfo summarizes one saved layout.
type LayoutInfo struct {
	Name      string
	Preset    string
	Widgets   int
	UpdatedAt time.Time
}

// LayoutRepo handles saved layout configurations.
type LayoutRepo struct {
	db *sql.DB
}

func NewLayoutRepo(db *sql.DB) *LayoutRepo {
	return &LayoutRepo{db: db}
}

// Save persists cfg under name, replacing any previous version. The
// layout row and its ordered widget rows are written in one transaction.
func (r *LayoutRepo) Save(ctx context.Context, name string, cfg layout.Configuration) error {
	if name == "" {
		return fmt.Errorf("save layout: empty name")
	}
	return WithTx(r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO layouts(name, preset, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
		 preset=excluded.preset,
		 updated_at=excluded.updated_at;
		`, name, cfg.Preset, Now())
		if err != nil {
			return fmt.Errorf("upsert layout %q: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM layout_widgets WHERE layout_name = ?`, name); err != nil {
			return fmt.Errorf("clear widgets for %q: %w", name, err)
		}
		for i, w := range cfg.Widgets {
			settings, err := json.Marshal(w.Settings)
			if err != nil {
				return fmt.Errorf("marshal settings for widget %s: %w", w.ID, err)
			}
			_, err = tx.ExecContext(ctx, `
			INSERT INTO layout_widgets(layout_name, position, widget_id, kind, x, y, width, height, settings)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, name, i, w.ID, w.Kind, w.X, w.Y, w.Width, w.Height, string(settings))
			if err != nil {
				return fmt.Errorf("insert widget %s: %w", w.ID, err)
			}
		}
		return nil
	})
}

// Load returns the configuration saved under name, widgets in saved
// order. A widget row whose settings blob no longer parses is loaded
// with empty settings rather than poisoning the whole layout.
func (r *LayoutRepo) Load(ctx context.Context, name string) (layout.Configuration, error) {
	var cfg layout.Configuration
	err := r.db.QueryRowContext(ctx, `SELECT preset FROM layouts WHERE name = ?`, name).Scan(&cfg.Preset)
	if errors.Is(err, sql.ErrNoRows) {
		return layout.Configuration{}, ErrNotFound
	}
	if err != nil {
		return layout.Configuration{}, fmt.Errorf("load layout %q: %w", name, err)
	}

	rows, err := r.db.QueryContext(ctx, `
	SELECT widget_id, kind, x, y, width, height, settings
	FROM layout_widgets WHERE layout_name = ? ORDER BY position
	`, name)
	if err != nil {
		return layout.Configuration{}, fmt.Errorf("load widgets for %q: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var w layout.WidgetConfig
		var settings string
		if err := rows.Scan(&w.ID, &w.Kind, &w.X, &w.Y, &w.Width, &w.Height, &settings); err != nil {
			return layout.Configuration{}, fmt.Errorf("scan widget row: %w", err)
		}
		if settings != "" && settings != "null" {
			if err := json.Unmarshal([]byte(settings), &w.Settings); err != nil {
				w.Settings = nil
			}
		}
		cfg.Widgets = append(cfg.Widgets, w)
	}
	if err := rows.Err(); err != nil {
		return layout.Configuration{}, err
	}
	return cfg, nil
}

// List returns every saved layout, most recently updated first.
func (r *LayoutRepo) List(ctx context.Context) ([]LayoutInfo, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT l.name, l.preset, l.updated_at, COUNT(w.widget_id)
	FROM layouts l
	LEFT JOIN layout_widgets w ON w.layout_name = l.name
	GROUP BY l.name
	ORDER BY l.updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LayoutInfo
	for rows.Next() {
		var info LayoutInfo
		if err := rows.Scan(&info.Name, &info.Preset, &info.UpdatedAt, &info.Widgets); err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// Delete removes a saved layout and its widgets.
func (r *LayoutRepo) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM layouts WHERE name = ?`, name)
	return err
}
