package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeshr/asistencia-api/internal/models"
	appErrors "github.com/andeshr/asistencia-api/pkg/errors"
)

func workRecord(employeeID string, date time.Time, markings int) *models.AttendanceRecord {
	return &models.AttendanceRecord{
		EmployeeID:   employeeID,
		Date:         date,
		ActualIn:     punchAt(date, 8, 0),
		ActualOut:    punchAt(date, 17, 0),
		MarkingCount: markings,
	}
}

func twoEmployeeInput(variant Variant) Input {
	start := day(2024, time.November, 4)
	end := day(2024, time.November, 10)
	absenceDate := day(2024, time.November, 5)
	return Input{
		Title:     "Reporte " + string(variant),
		Start:     start,
		End:       end,
		WeekStart: time.Monday,
		Employees: []models.Employee{
			{ID: "emp-1", NroDoc: "40112233", FullName: "Rosa Quispe"},
			{ID: "emp-2", NroDoc: "40998877", FullName: "Luis Huamán"},
		},
		Records: map[string]map[string]*models.AttendanceRecord{
			"emp-1": {
				DateKey(start):                        workRecord("emp-1", start, 2),
				DateKey(day(2024, time.November, 6)):  workRecord("emp-1", day(2024, time.November, 6), 4),
			},
			"emp-2": {
				DateKey(start):       workRecord("emp-2", start, 2),
				DateKey(absenceDate): {EmployeeID: "emp-2", Date: absenceDate, PermissionCode: "F"},
			},
		},
	}
}

func TestAggregatorInvalidRangeFailsFirst(t *testing.T) {
	a := NewAggregator(VariantWeeklyAttendance)
	_, err := a.Aggregate(Input{
		Start:     day(2024, time.November, 10),
		End:       day(2024, time.November, 4),
		WeekStart: time.Monday,
		Employees: []models.Employee{{ID: "emp-1"}},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidRange.Code, appErrors.FromError(err).Code)
}

func TestAggregatorEmptyEmployeeSet(t *testing.T) {
	a := NewAggregator(VariantWeeklyAttendance)
	_, err := a.Aggregate(Input{
		Start:     day(2024, time.November, 4),
		End:       day(2024, time.November, 10),
		WeekStart: time.Monday,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrEmptyEmployeeSet.Code, appErrors.FromError(err).Code)
}

func TestAggregatorConceptCounts(t *testing.T) {
	a := NewAggregator(VariantWeeklyAttendance)
	result, err := a.Aggregate(twoEmployeeInput(VariantWeeklyAttendance))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Summary.TotalEmployees)
	assert.Equal(t, 1, result.Summary.ConceptCounts["F"])
	assert.Equal(t, 1, result.Summary.TotalAbsences)
	assert.Equal(t, 0, result.Summary.TotalPermissions)

	// Concept counts always reconcile with absence/permission totals.
	sum := 0
	for _, count := range result.Summary.ConceptCounts {
		sum += count
	}
	assert.Equal(t, result.Summary.TotalAbsences+result.Summary.TotalPermissions, sum)
}

func TestAggregatorItemNumbersFollowInputOrder(t *testing.T) {
	a := NewAggregator(VariantWeeklyAttendance)
	result, err := a.Aggregate(twoEmployeeInput(VariantWeeklyAttendance))
	require.NoError(t, err)
	require.Len(t, result.Employees, 2)
	assert.Equal(t, 1, result.Employees[0].ItemNumber)
	assert.Equal(t, "emp-1", result.Employees[0].Employee.ID)
	assert.Equal(t, 2, result.Employees[1].ItemNumber)
}

func TestAggregatorGapFreeCover(t *testing.T) {
	a := NewAggregator(VariantWeeklyAttendance)
	result, err := a.Aggregate(twoEmployeeInput(VariantWeeklyAttendance))
	require.NoError(t, err)

	// Exactly one day value per employee per date in range.
	for _, pivot := range result.Employees {
		seen := map[string]int{}
		total := 0
		for _, week := range pivot.WeekData {
			for _, dv := range week.DayValues {
				seen[DateKey(dv.Date)]++
				total++
			}
		}
		assert.Equal(t, 7, total)
		for key, count := range seen {
			assert.Equalf(t, 1, count, "date %s classified %d times", key, count)
		}
	}
}

func TestAggregatorMarkingsDistribution(t *testing.T) {
	a := NewAggregator(VariantMarkings)
	result, err := a.Aggregate(twoEmployeeInput(VariantMarkings))
	require.NoError(t, err)

	require.NotNil(t, result.Summary.MarkingsDistribution)
	assert.Equal(t, 2, result.Summary.MarkingsDistribution[2])
	assert.Equal(t, 1, result.Summary.MarkingsDistribution[4])

	sum := 0
	for _, count := range result.Summary.MarkingsDistribution {
		sum += count
	}
	assert.Equal(t, result.Summary.TotalWorkingDays, sum)
}

func TestAggregatorCostCenterHours(t *testing.T) {
	in := twoEmployeeInput(VariantCostCenter)
	in.Records["emp-1"][DateKey(day(2024, time.November, 4))].CostCenter = "CC-100"
	in.Records["emp-1"][DateKey(day(2024, time.November, 6))].CostCenter = "CC-200"
	in.Records["emp-2"][DateKey(day(2024, time.November, 4))].CostCenter = "CC-100"

	a := NewAggregator(VariantCostCenter)
	result, err := a.Aggregate(in)
	require.NoError(t, err)

	require.NotNil(t, result.Summary.CostCenterHours)
	assert.InDelta(t, 18, result.Summary.CostCenterHours["CC-100"], 0.001)
	assert.InDelta(t, 9, result.Summary.CostCenterHours["CC-200"], 0.001)

	// Hours grouped by cost center reconcile with the corpus total.
	var grouped float64
	for _, hours := range result.Summary.CostCenterHours {
		grouped += hours
	}
	var total float64
	for _, pivot := range result.Employees {
		total += pivot.GlobalTotals.HorasTrabajadas
	}
	assert.InDelta(t, total, grouped, 0.001)
}

func TestAggregatorCostCenterHoursOnlyForCostCenterVariant(t *testing.T) {
	a := NewAggregator(VariantWeeklyAttendance)
	result, err := a.Aggregate(twoEmployeeInput(VariantWeeklyAttendance))
	require.NoError(t, err)
	assert.Nil(t, result.Summary.CostCenterHours)
}

func TestAggregatorWeekSummaries(t *testing.T) {
	a := NewAggregator(VariantWeeklyAttendance)
	result, err := a.Aggregate(twoEmployeeInput(VariantWeeklyAttendance))
	require.NoError(t, err)

	require.Len(t, result.Summary.WeekSummaries, 1)
	week := result.Summary.WeekSummaries[0]
	assert.Equal(t, 1, week.WeekNumber)
	// Three 9-hour work days across both employees.
	assert.InDelta(t, 27, week.Totals.HorasTrabajadas, 0.001)
	assert.Equal(t, 3, week.Totals.DiasTrabajados)
	assert.Equal(t, 1, week.Totals.Ausencias)
}

func TestAggregatorRebuildIsDeepEqual(t *testing.T) {
	a := NewAggregator(VariantMarkings)
	in := twoEmployeeInput(VariantMarkings)

	first, err := a.Aggregate(in)
	require.NoError(t, err)
	second, err := a.Aggregate(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAggregatorHolidayCountsNowhere(t *testing.T) {
	in := twoEmployeeInput(VariantWeeklyAttendance)
	in.Holidays = map[string]struct{}{DateKey(day(2024, time.November, 5)): {}}

	a := NewAggregator(VariantWeeklyAttendance)
	result, err := a.Aggregate(in)
	require.NoError(t, err)

	// emp-2's "F" on the 5th is overridden by the holiday.
	assert.Equal(t, 0, result.Summary.TotalAbsences)
	assert.Equal(t, 0, result.Summary.ConceptCounts["F"])
}
