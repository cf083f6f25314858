package report

import (
	"strconv"
	"time"
)

// Field selects what a lookup returns for a cell or week total.
type Field string

const (
	FieldDisplay  Field = "display"
	FieldConcept  Field = "concept"
	FieldHoras    Field = "horasTrabajadas"
	FieldExtras   Field = "horasExtras"
	FieldMarcajes Field = "marcajes"
)

// CellSentinel is returned for lookups outside the pivot's range. Rendering
// must never throw on a missing cell.
const CellSentinel = "-"

// CellValue returns the display value of the employee's cell for the given
// date. It never mutates the pivot and returns the sentinel when the date is
// not covered.
func CellValue(pivot *EmployeePivot, date time.Time, field Field) string {
	if pivot == nil {
		return CellSentinel
	}
	key := DateKey(date)
	for _, week := range pivot.WeekData {
		for _, day := range week.DayValues {
			if DateKey(day.Date) != key {
				continue
			}
			switch field {
			case FieldConcept:
				if day.SpecificPermissionType != "" {
					return day.SpecificPermissionType
				}
				return day.Code
			case FieldHoras:
				return strconv.FormatFloat(day.HorasTrabajadas, 'f', 2, 64)
			case FieldExtras:
				return strconv.FormatFloat(day.HorasExtras, 'f', 2, 64)
			case FieldMarcajes:
				return strconv.Itoa(day.MarkingCount)
			default:
				return day.DisplayValue
			}
		}
	}
	return CellSentinel
}

// WeeklyTotal returns the numeric total for the employee's week block, or 0
// when the week key is absent.
func WeeklyTotal(pivot *EmployeePivot, weekNumber int, field Field) float64 {
	if pivot == nil {
		return 0
	}
	for _, week := range pivot.WeekData {
		if week.WeekNumber != weekNumber {
			continue
		}
		switch field {
		case FieldExtras:
			return week.WeekTotals.HorasExtras
		case FieldMarcajes:
			return float64(week.WeekTotals.Marcajes)
		default:
			return week.WeekTotals.HorasTrabajadas
		}
	}
	return 0
}
