package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jask/localedemo/internal/database"
)

// ViewRepo records and lists detail views.
type ViewRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewViewRepo(db *sql.DB) *ViewRepo {
	return &ViewRepo{db: db, now: database.Now}
}

// Record stores a view and returns how often countryID has been viewed,
// including this one.
func (r *ViewRepo) Record(ctx context.Context, countryID, locale string) (int, error) {
	v := View{ID: uuid.NewString(), CountryID: countryID, Locale: locale, ViewedAt: r.now()}
	var n int
	err := database.WithTx(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
	INSERT INTO views(id, country_id, locale, viewed_at) VALUES (?, ?, ?, ?);
	`, v.ID, v.CountryID, v.Locale, v.ViewedAt); err != nil {
			return fmt.Errorf("insert view: %w", err)
		}
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM views WHERE country_id = ?`, countryID).Scan(&n)
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Recent lists the newest views first. limit <= 0 means no limit.
func (r *ViewRepo) Recent(ctx context.Context, limit int) ([]View, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, country_id, locale, viewed_at FROM views
	ORDER BY viewed_at DESC, rowid DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []View
	for rows.Next() {
		var v View
		if err := rows.Scan(&v.ID, &v.CountryID, &v.Locale, &v.ViewedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Totals returns view counts per country, most viewed first.
func (r *ViewRepo) Totals(ctx context.Context) ([]CountryCount, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT country_id, COUNT(*) AS n FROM views
	GROUP BY country_id ORDER BY n DESC, country_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []CountryCount
	for rows.Next() {
		var c CountryCount
		if err := rows.Scan(&c.CountryID, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
