package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/andeshr/asistencia-api/internal/models"
)

// EmployeeRepository loads the roster supplied by the backend database.
type EmployeeRepository struct {
	db *sqlx.DB
}

// NewEmployeeRepository constructs the repository.
func NewEmployeeRepository(db *sqlx.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// List returns roster rows matching the filter, ordered stably by document
// number so report item numbers are reproducible across builds.
func (r *EmployeeRepository) List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	if filter.Area != "" {
		where = append(where, fmt.Sprintf("area = $%d", len(args)+1))
		args = append(args, filter.Area)
	}
	if filter.Planilla != "" {
		where = append(where, fmt.Sprintf("planilla = $%d", len(args)+1))
		args = append(args, filter.Planilla)
	}
	if filter.Search != "" {
		where = append(where, fmt.Sprintf("(full_name ILIKE $%d OR nro_doc ILIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}

	query := fmt.Sprintf(`SELECT id, nro_doc, full_name, area, cargo, fecha_ingreso, planilla
        FROM employees WHERE %s
        ORDER BY nro_doc ASC`, strings.Join(where, " AND "))

	var rows []models.Employee
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return rows, nil
}
