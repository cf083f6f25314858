package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/andeshr/asistencia-api/internal/models"
)

// AttendanceRepository loads raw attendance/marking records for a date range.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs the repository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// ListRange returns every raw record in [from, to] inclusive, ordered by
// employee and date. One row per employee-day; the report pipeline treats the
// result as an immutable snapshot.
func (r *AttendanceRepository) ListRange(ctx context.Context, from, to time.Time) ([]models.AttendanceRecord, error) {
	query := `SELECT employee_id, date, turno, expected_in, expected_out, actual_in, actual_out,
        permission_code, marking_count, raw_markings, cost_center
        FROM attendance_records
        WHERE date >= $1 AND date <= $2
        ORDER BY employee_id ASC, date ASC`

	var rows []models.AttendanceRecord
	if err := r.db.SelectContext(ctx, &rows, query, from, to); err != nil {
		return nil, fmt.Errorf("list attendance records: %w", err)
	}
	return rows, nil
}
