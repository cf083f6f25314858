package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeshr/asistencia-api/internal/models"
)

func builtPivot(t *testing.T) *EmployeePivot {
	t.Helper()
	groups := weekOf(t, day(2024, time.November, 4), day(2024, time.November, 10))
	workDate := day(2024, time.November, 6)
	records := map[string]*models.AttendanceRecord{
		DateKey(workDate): {
			EmployeeID:   "emp-1",
			Date:         workDate,
			ActualIn:     punchAt(workDate, 8, 0),
			ActualOut:    punchAt(workDate, 17, 0),
			MarkingCount: 2,
		},
	}
	pivot := NewBuilder(NewClassifier(VariantWeeklyAttendance)).Build(models.Employee{ID: "emp-1"}, records, groups, DayContext{})
	return &pivot
}

func TestCellValueFields(t *testing.T) {
	pivot := builtPivot(t)
	date := day(2024, time.November, 6)

	assert.Equal(t, "9.00", CellValue(pivot, date, FieldDisplay))
	assert.Equal(t, "9.00", CellValue(pivot, date, FieldHoras))
	assert.Equal(t, "0.00", CellValue(pivot, date, FieldExtras))
	assert.Equal(t, "2", CellValue(pivot, date, FieldMarcajes))
}

func TestCellValueOutOfRangeReturnsSentinel(t *testing.T) {
	pivot := builtPivot(t)
	outside := day(2024, time.December, 25)

	require.NotPanics(t, func() {
		assert.Equal(t, CellSentinel, CellValue(pivot, outside, FieldDisplay))
	})
	assert.Equal(t, CellSentinel, CellValue(nil, outside, FieldDisplay))
}

func TestCellValueEmptyInRangeDayIsBlank(t *testing.T) {
	pivot := builtPivot(t)
	assert.Equal(t, "", CellValue(pivot, day(2024, time.November, 7), FieldDisplay))
}

func TestWeeklyTotalLookups(t *testing.T) {
	pivot := builtPivot(t)

	assert.InDelta(t, 9, WeeklyTotal(pivot, 1, FieldHoras), 0.001)
	assert.InDelta(t, 2, WeeklyTotal(pivot, 1, FieldMarcajes), 0.001)
	assert.Zero(t, WeeklyTotal(pivot, 1, FieldExtras))
	assert.Zero(t, WeeklyTotal(pivot, 99, FieldHoras))
	assert.Zero(t, WeeklyTotal(nil, 1, FieldHoras))
}

func TestAccessorsDoNotMutate(t *testing.T) {
	pivot := builtPivot(t)
	before := *pivot

	CellValue(pivot, day(2024, time.November, 6), FieldDisplay)
	WeeklyTotal(pivot, 1, FieldHoras)
	assert.Equal(t, before, *pivot)
}
