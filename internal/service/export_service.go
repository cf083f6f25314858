package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/andeshr/asistencia-api/internal/report"
	"github.com/andeshr/asistencia-api/pkg/export"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

// ExportService flattens built pivot reports into downloadable files.
type ExportService struct {
	csv    csvRenderer
	logger *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(csv csvRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{csv: csv, logger: logger}
}

// RenderCSV flattens the report grid into CSV bytes and returns a filename
// for the download. Cells outside an employee's range render as the grid
// sentinel, exactly as on screen.
func (s *ExportService) RenderCSV(rep *report.Report) ([]byte, string, error) {
	if rep == nil {
		return nil, "", fmt.Errorf("report nil")
	}

	rows := make([]map[string]string, 0, len(rep.Employees))
	for i := range rep.Employees {
		pivot := &rep.Employees[i]
		row := map[string]string{
			"Item":   strconv.Itoa(pivot.ItemNumber),
			"NroDoc": pivot.Employee.NroDoc,
			"Nombre": pivot.Employee.FullName,
			"Area":   pivot.Employee.Area,
			"Cargo":  pivot.Employee.Cargo,
			"Total":  globalTotal(rep.Variant, pivot),
		}
		col := 5
		for _, group := range rep.WeekGroups {
			for _, date := range group.Dates {
				row[rep.Headers[col]] = report.CellValue(pivot, date, report.FieldDisplay)
				col++
			}
		}
		rows = append(rows, row)
	}

	payload, err := s.csv.Render(export.Dataset{Headers: rep.Headers, Rows: rows})
	if err != nil {
		return nil, "", fmt.Errorf("render csv: %w", err)
	}
	return payload, s.buildFilename(rep), nil
}

func (s *ExportService) buildFilename(rep *report.Report) string {
	timestamp := time.Now().UTC().Format("20060102_150405")
	variant := strings.ReplaceAll(string(rep.Variant), "-", "_")
	return fmt.Sprintf("%s_%s_%s_%s.csv",
		variant,
		report.DateKey(rep.DateRange.Start),
		report.DateKey(rep.DateRange.End),
		timestamp)
}

// globalTotal picks the figure the variant totals by: punch counts for the
// markings report, worked hours everywhere else.
func globalTotal(variant report.Variant, pivot *report.EmployeePivot) string {
	if variant == report.VariantMarkings {
		return strconv.Itoa(pivot.GlobalTotals.Marcajes)
	}
	return strconv.FormatFloat(pivot.GlobalTotals.HorasTrabajadas, 'f', 2, 64)
}
