package report

import (
	"github.com/andeshr/asistencia-api/internal/models"
)

// Builder assembles one employee's pivot from the classified days of every
// week group. Deterministic and idempotent: the same inputs always produce a
// structurally identical pivot.
type Builder struct {
	classifier *Classifier
}

// NewBuilder constructs a builder around the given classifier.
func NewBuilder(classifier *Classifier) *Builder {
	return &Builder{classifier: classifier}
}

// Build classifies every date of every group exactly once and reduces the
// results into week blocks and global totals. records is keyed by DateKey.
// Week totals are always recomputed from the block's own day values; a
// pre-aggregated input is never trusted.
func (b *Builder) Build(employee models.Employee, records map[string]*models.AttendanceRecord, groups []WeekGroup, ctx DayContext) EmployeePivot {
	pivot := EmployeePivot{Employee: employee, WeekData: make([]WeekData, 0, len(groups))}
	for _, group := range groups {
		week := WeekData{WeekNumber: group.WeekNumber, DayValues: make([]DayValue, 0, len(group.Dates))}
		for _, date := range group.Dates {
			rec := records[DateKey(date)]
			if week.Turno == "" && rec != nil && rec.Turno != "" {
				week.Turno = rec.Turno
			}
			week.DayValues = append(week.DayValues, b.classifier.Classify(rec, date, ctx))
		}
		week.WeekTotals = reduceDays(week.DayValues)
		pivot.WeekData = append(pivot.WeekData, week)
	}
	pivot.GlobalTotals = reduceWeeks(pivot.WeekData)
	return pivot
}

func reduceDays(days []DayValue) Totals {
	var totals Totals
	for _, day := range days {
		switch day.Type {
		case models.DayKindWork:
			totals.HorasTrabajadas += day.HorasTrabajadas
			totals.HorasExtras += day.HorasExtras
			totals.Marcajes += day.MarkingCount
			totals.DiasTrabajados++
		case models.DayKindAbsence:
			totals.Ausencias++
		case models.DayKindPermission:
			totals.Permisos++
		}
	}
	return totals
}

func reduceWeeks(weeks []WeekData) Totals {
	var totals Totals
	for _, week := range weeks {
		totals = totals.add(week.WeekTotals)
	}
	return totals
}
