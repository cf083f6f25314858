// Package report builds the attendance pivot structure behind the
// weekly-attendance, markings and cost-center reports. It is pure in-memory
// computation: callers fetch the roster, raw records and holiday calendar
// first, then run one build per request. A built Report is never mutated.
package report

import (
	"time"

	"github.com/andeshr/asistencia-api/internal/models"
)

// Variant selects one of the three report shapes sharing this pipeline.
type Variant string

const (
	VariantWeeklyAttendance Variant = "weekly-attendance"
	VariantMarkings         Variant = "markings"
	VariantCostCenter       Variant = "cost-center"
)

// Valid reports whether the variant is one of the supported shapes.
func (v Variant) Valid() bool {
	switch v {
	case VariantWeeklyAttendance, VariantMarkings, VariantCostCenter:
		return true
	default:
		return false
	}
}

// DayValue is the classification of one employee-day. Every date of the
// queried range has exactly one DayValue per employee; missing input yields
// Type=empty, never a missing entry.
type DayValue struct {
	Date                   time.Time      `json:"date"`
	Type                   models.DayKind `json:"type"`
	Value                  float64        `json:"value"`
	DisplayValue           string         `json:"displayValue"`
	Code                   string         `json:"code,omitempty"`
	SpecificPermissionType string         `json:"specificPermissionType,omitempty"`
	HorasTrabajadas        float64        `json:"horasTrabajadas"`
	HorasExtras            float64        `json:"horasExtras"`
	MarkingCount           int            `json:"markingCount"`
	RawMarkings            string         `json:"rawMarkings,omitempty"`
	CostCenter             string         `json:"costCenter,omitempty"`
}

// Totals is the arithmetic reduction shared by week and global levels.
type Totals struct {
	HorasTrabajadas float64 `json:"horasTrabajadas"`
	HorasExtras     float64 `json:"horasExtras"`
	Marcajes        int     `json:"marcajes"`
	DiasTrabajados  int     `json:"diasTrabajados"`
	Ausencias       int     `json:"ausencias"`
	Permisos        int     `json:"permisos"`
}

func (t Totals) add(other Totals) Totals {
	t.HorasTrabajadas += other.HorasTrabajadas
	t.HorasExtras += other.HorasExtras
	t.Marcajes += other.Marcajes
	t.DiasTrabajados += other.DiasTrabajados
	t.Ausencias += other.Ausencias
	t.Permisos += other.Permisos
	return t
}

// WeekGroup is one week bucket of the report's date range. Dates are
// contiguous, at most seven, shorter only at the range boundary.
type WeekGroup struct {
	WeekNumber int         `json:"weekNumber"`
	Dates      []time.Time `json:"dates"`
	DayNames   []string    `json:"dayNames"`
	DayNumbers []int       `json:"dayNumbers"`
}

// WeekData is one employee's slice of a week: day values aligned 1:1 with the
// WeekGroup's dates plus the recomputed week totals.
type WeekData struct {
	WeekNumber int        `json:"weekNumber"`
	Turno      string     `json:"turno,omitempty"`
	DayValues  []DayValue `json:"dayValues"`
	WeekTotals Totals     `json:"weekTotals"`
}

// EmployeePivot owns one employee's ordered week blocks and global totals.
type EmployeePivot struct {
	ItemNumber   int             `json:"itemNumber"`
	Employee     models.Employee `json:"employee"`
	WeekData     []WeekData      `json:"weekData"`
	GlobalTotals Totals          `json:"globalTotals"`
}

// WeekSummary reduces one week's totals across all employees.
type WeekSummary struct {
	WeekNumber int    `json:"weekNumber"`
	Totals     Totals `json:"totals"`
}

// Summary is the corpus-wide reduction over all employees' day values.
type Summary struct {
	TotalEmployees       int            `json:"totalEmployees"`
	TotalWorkingDays     int            `json:"totalWorkingDays"`
	TotalAbsences        int            `json:"totalAbsences"`
	TotalPermissions     int            `json:"totalPermissions"`
	ConceptCounts        map[string]int     `json:"conceptCounts"`
	MarkingsDistribution map[int]int        `json:"markingsDistribution,omitempty"`
	CostCenterHours      map[string]float64 `json:"costCenterHours,omitempty"`
	WeekSummaries        []WeekSummary      `json:"weekSummaries,omitempty"`
}

// DateRange is the inclusive range the report covers.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Report is the top-level pivot structure. It is built once per request and
// treated as immutable by every downstream reader.
type Report struct {
	Title      string          `json:"title"`
	Variant    Variant         `json:"variant"`
	DateRange  DateRange       `json:"dateRange"`
	Headers    []string        `json:"headers"`
	WeekGroups []WeekGroup     `json:"weekGroups"`
	Employees  []EmployeePivot `json:"employees"`
	Summary    Summary         `json:"summary"`
}

// DateKey normalises a date into the map key used across the pipeline.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
