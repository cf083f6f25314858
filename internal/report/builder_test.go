package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeshr/asistencia-api/internal/models"
)

func weekOf(t *testing.T, start, end time.Time) []WeekGroup {
	t.Helper()
	groups, err := NewGrouper(time.Monday).Group(start, end)
	require.NoError(t, err)
	return groups
}

func TestBuilderEmptyWeekIsGapFree(t *testing.T) {
	// 7 contiguous days, no records: 7 day values, all empty, zero totals.
	groups := weekOf(t, day(2024, time.November, 4), day(2024, time.November, 10))
	b := NewBuilder(NewClassifier(VariantWeeklyAttendance))

	pivot := b.Build(models.Employee{ID: "emp-1"}, nil, groups, DayContext{})
	require.Len(t, pivot.WeekData, 1)
	require.Len(t, pivot.WeekData[0].DayValues, 7)
	for _, dv := range pivot.WeekData[0].DayValues {
		assert.Equal(t, models.DayKindEmpty, dv.Type)
	}
	assert.Equal(t, Totals{}, pivot.GlobalTotals)
}

func TestBuilderSinglePunchPair(t *testing.T) {
	// One 08:00/17:00 pair on day 3 of the range.
	groups := weekOf(t, day(2024, time.November, 4), day(2024, time.November, 10))
	b := NewBuilder(NewClassifier(VariantWeeklyAttendance))
	workDate := day(2024, time.November, 6)
	records := map[string]*models.AttendanceRecord{
		DateKey(workDate): {
			EmployeeID: "emp-1",
			Date:       workDate,
			ActualIn:   punchAt(workDate, 8, 0),
			ActualOut:  punchAt(workDate, 17, 0),
		},
	}

	pivot := b.Build(models.Employee{ID: "emp-1"}, records, groups, DayContext{})
	require.Len(t, pivot.WeekData, 1)
	assert.Equal(t, models.DayKindWork, pivot.WeekData[0].DayValues[2].Type)
	assert.InDelta(t, 9, pivot.WeekData[0].DayValues[2].HorasTrabajadas, 0.001)
	assert.InDelta(t, 9, pivot.WeekData[0].WeekTotals.HorasTrabajadas, 0.001)
	assert.InDelta(t, 9, pivot.GlobalTotals.HorasTrabajadas, 0.001)
	assert.Equal(t, 1, pivot.GlobalTotals.DiasTrabajados)
}

func TestBuilderWeekTotalsMatchOwnDayValues(t *testing.T) {
	groups := weekOf(t, day(2024, time.November, 4), day(2024, time.November, 17))
	b := NewBuilder(NewClassifier(VariantWeeklyAttendance))
	records := map[string]*models.AttendanceRecord{}
	for _, d := range []int{4, 5, 6, 11, 12} {
		date := day(2024, time.November, d)
		records[DateKey(date)] = &models.AttendanceRecord{
			EmployeeID: "emp-1",
			Date:       date,
			Turno:      "MAÑANA",
			ActualIn:   punchAt(date, 8, 0),
			ActualOut:  punchAt(date, 16, 0),
		}
	}
	records[DateKey(day(2024, time.November, 7))] = &models.AttendanceRecord{
		EmployeeID:     "emp-1",
		Date:           day(2024, time.November, 7),
		PermissionCode: "VA",
	}

	pivot := b.Build(models.Employee{ID: "emp-1"}, records, groups, DayContext{})
	require.Len(t, pivot.WeekData, 2)
	for _, week := range pivot.WeekData {
		assert.Equal(t, reduceDays(week.DayValues), week.WeekTotals)
	}
	assert.Equal(t, pivot.WeekData[0].WeekTotals.add(pivot.WeekData[1].WeekTotals), pivot.GlobalTotals)
	assert.Equal(t, "MAÑANA", pivot.WeekData[0].Turno)
	assert.Equal(t, 1, pivot.GlobalTotals.Permisos)
	assert.InDelta(t, 40, pivot.GlobalTotals.HorasTrabajadas, 0.001)
}

func TestBuilderIdempotent(t *testing.T) {
	groups := weekOf(t, day(2024, time.November, 4), day(2024, time.November, 10))
	b := NewBuilder(NewClassifier(VariantMarkings))
	date := day(2024, time.November, 5)
	records := map[string]*models.AttendanceRecord{
		DateKey(date): {EmployeeID: "emp-1", Date: date, MarkingCount: 2, RawMarkings: "08:00 17:00"},
	}

	first := b.Build(models.Employee{ID: "emp-1"}, records, groups, DayContext{})
	second := b.Build(models.Employee{ID: "emp-1"}, records, groups, DayContext{})
	assert.Equal(t, first, second)
}
