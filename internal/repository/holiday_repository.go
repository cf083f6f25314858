package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/andeshr/asistencia-api/internal/models"
)

// HolidayRepository loads the site holiday calendar.
type HolidayRepository struct {
	db *sqlx.DB
}

// NewHolidayRepository constructs the repository.
func NewHolidayRepository(db *sqlx.DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

// ListRange returns holidays falling inside [from, to] inclusive.
func (r *HolidayRepository) ListRange(ctx context.Context, from, to time.Time) ([]models.Holiday, error) {
	query := `SELECT date, site, name FROM site_holidays
        WHERE date >= $1 AND date <= $2
        ORDER BY date ASC`

	var rows []models.Holiday
	if err := r.db.SelectContext(ctx, &rows, query, from, to); err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	return rows, nil
}
