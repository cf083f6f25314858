package report

import (
	"fmt"
	"time"

	"github.com/andeshr/asistencia-api/internal/models"
	appErrors "github.com/andeshr/asistencia-api/pkg/errors"
)

// Aggregator runs the per-employee builder over the whole scope and reduces
// the results into the corpus-wide summary.
type Aggregator struct {
	variant Variant
	builder *Builder
}

// NewAggregator constructs the aggregation pipeline for one report variant.
func NewAggregator(variant Variant) *Aggregator {
	return &Aggregator{variant: variant, builder: NewBuilder(NewClassifier(variant))}
}

// Input is the point-in-time snapshot a build consumes. Records are keyed by
// employee ID, then by DateKey.
type Input struct {
	Title     string
	Start     time.Time
	End       time.Time
	WeekStart time.Weekday
	Employees []models.Employee
	Records   map[string]map[string]*models.AttendanceRecord
	Holidays  map[string]struct{}
}

// Aggregate builds the full report. It fails with ErrInvalidRange before any
// classification work, and with ErrEmptyEmployeeSet when no employees are in
// scope. Employee order is preserved as given; item numbers run 1..N.
func (a *Aggregator) Aggregate(in Input) (*Report, error) {
	groups, err := NewGrouper(in.WeekStart).Group(in.Start, in.End)
	if err != nil {
		return nil, err
	}
	if len(in.Employees) == 0 {
		return nil, appErrors.Clone(appErrors.ErrEmptyEmployeeSet, "")
	}

	ctx := DayContext{Holidays: in.Holidays}
	summary := Summary{
		TotalEmployees: len(in.Employees),
		ConceptCounts:  map[string]int{},
	}
	if a.variant == VariantMarkings {
		summary.MarkingsDistribution = map[int]int{}
	}
	if a.variant == VariantCostCenter {
		summary.CostCenterHours = map[string]float64{}
	}

	employees := make([]EmployeePivot, 0, len(in.Employees))
	for i, employee := range in.Employees {
		pivot := a.builder.Build(employee, in.Records[employee.ID], groups, ctx)
		pivot.ItemNumber = i + 1
		employees = append(employees, pivot)

		for _, week := range pivot.WeekData {
			for _, day := range week.DayValues {
				switch day.Type {
				case models.DayKindWork:
					summary.TotalWorkingDays++
					if summary.MarkingsDistribution != nil {
						summary.MarkingsDistribution[day.MarkingCount]++
					}
					if summary.CostCenterHours != nil {
						summary.CostCenterHours[day.CostCenter] += day.HorasTrabajadas
					}
				case models.DayKindAbsence:
					summary.TotalAbsences++
					summary.ConceptCounts[day.Code]++
				case models.DayKindPermission:
					summary.TotalPermissions++
					summary.ConceptCounts[day.Code]++
				}
			}
		}
	}

	if a.variant == VariantWeeklyAttendance {
		summary.WeekSummaries = weekSummaries(groups, employees)
	}

	return &Report{
		Title:      in.Title,
		Variant:    a.variant,
		DateRange:  DateRange{Start: dateOnly(in.Start), End: dateOnly(in.End)},
		Headers:    headers(groups),
		WeekGroups: groups,
		Employees:  employees,
		Summary:    summary,
	}, nil
}

// EmptyReport renders the zeroed envelope for an empty employee scope. Week
// groups and headers are still computed so grids can render, and all summary
// counters stay at zero.
func EmptyReport(variant Variant, in Input) (*Report, error) {
	groups, err := NewGrouper(in.WeekStart).Group(in.Start, in.End)
	if err != nil {
		return nil, err
	}
	summary := Summary{ConceptCounts: map[string]int{}}
	if variant == VariantMarkings {
		summary.MarkingsDistribution = map[int]int{}
	}
	if variant == VariantCostCenter {
		summary.CostCenterHours = map[string]float64{}
	}
	return &Report{
		Title:      in.Title,
		Variant:    variant,
		DateRange:  DateRange{Start: dateOnly(in.Start), End: dateOnly(in.End)},
		Headers:    headers(groups),
		WeekGroups: groups,
		Employees:  []EmployeePivot{},
		Summary:    summary,
	}, nil
}

func weekSummaries(groups []WeekGroup, employees []EmployeePivot) []WeekSummary {
	summaries := make([]WeekSummary, 0, len(groups))
	for _, group := range groups {
		summary := WeekSummary{WeekNumber: group.WeekNumber}
		for _, pivot := range employees {
			for _, week := range pivot.WeekData {
				if week.WeekNumber == group.WeekNumber {
					summary.Totals = summary.Totals.add(week.WeekTotals)
				}
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

func headers(groups []WeekGroup) []string {
	cols := []string{"Item", "NroDoc", "Nombre", "Area", "Cargo"}
	for _, group := range groups {
		for i, name := range group.DayNames {
			cols = append(cols, fmt.Sprintf("S%d %s %d", group.WeekNumber, name, group.DayNumbers[i]))
		}
	}
	cols = append(cols, "Total")
	return cols
}
