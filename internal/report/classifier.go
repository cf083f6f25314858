package report

import (
	"strconv"
	"time"

	"github.com/andeshr/asistencia-api/internal/models"
)

// Classifier maps one raw record (or the lack of one) for an employee-day
// into a tagged DayValue. It is a pure function of its inputs.
//
// Precedence is fixed: holiday > absence/permission > work > empty. A holiday
// always wins, even over a permission code or punches on the same date.
type Classifier struct {
	variant Variant
}

// NewClassifier constructs a classifier for the given report variant.
func NewClassifier(variant Variant) *Classifier {
	return &Classifier{variant: variant}
}

// DayContext carries per-build classification inputs resolved up front.
type DayContext struct {
	// Holidays is the site holiday calendar keyed by DateKey.
	Holidays map[string]struct{}
}

// Classify returns the DayValue for (employee, date). rec may be nil when the
// backend supplied no record for the date.
func (c *Classifier) Classify(rec *models.AttendanceRecord, date time.Time, ctx DayContext) DayValue {
	dv := DayValue{Date: dateOnly(date), Type: models.DayKindEmpty}
	if rec != nil {
		dv.MarkingCount = rec.MarkingCount
		dv.RawMarkings = rec.RawMarkings
		dv.CostCenter = rec.CostCenter
	}

	if _, holiday := ctx.Holidays[DateKey(date)]; holiday {
		dv.Type = models.DayKindHoliday
		dv.Code = models.HolidayCode
		dv.DisplayValue = c.display(dv)
		return dv
	}

	if rec != nil && rec.PermissionCode != "" {
		entry, known := models.PermissionCodes[rec.PermissionCode]
		if !known {
			// A bad code never aborts the build; the day stays empty but
			// keeps a trace of what was seen.
			dv.SpecificPermissionType = models.PermissionUnknown
			dv.DisplayValue = c.display(dv)
			return dv
		}
		dv.Type = entry.Kind
		dv.Code = rec.PermissionCode
		dv.SpecificPermissionType = entry.PermissionType
		dv.DisplayValue = c.display(dv)
		return dv
	}

	if rec != nil && (rec.ActualIn != nil || rec.ActualOut != nil || rec.MarkingCount > 0) {
		dv.Type = models.DayKindWork
		dv.HorasTrabajadas = workedHours(rec)
		dv.HorasExtras = overtimeHours(rec, dv.HorasTrabajadas)
		dv.Value = c.value(dv)
		dv.DisplayValue = c.display(dv)
		return dv
	}

	dv.DisplayValue = c.display(dv)
	return dv
}

// workedHours is the in/out difference, zero when either punch is missing,
// clamped to >= 0.
func workedHours(rec *models.AttendanceRecord) float64 {
	if rec.ActualIn == nil || rec.ActualOut == nil {
		return 0
	}
	hours := rec.ActualOut.Sub(*rec.ActualIn).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

func overtimeHours(rec *models.AttendanceRecord, worked float64) float64 {
	if rec.ExpectedIn == nil || rec.ExpectedOut == nil {
		return 0
	}
	expected := rec.ExpectedOut.Sub(*rec.ExpectedIn).Hours()
	if expected <= 0 || worked <= expected {
		return 0
	}
	return worked - expected
}

func (c *Classifier) value(dv DayValue) float64 {
	if c.variant == VariantMarkings {
		return float64(dv.MarkingCount)
	}
	return dv.HorasTrabajadas
}

func (c *Classifier) display(dv DayValue) string {
	if c.variant == VariantMarkings {
		// Punch count as a string unless zero, else the absence/holiday code.
		if dv.MarkingCount > 0 {
			return strconv.Itoa(dv.MarkingCount)
		}
		return dv.Code
	}
	switch dv.Type {
	case models.DayKindWork:
		return strconv.FormatFloat(dv.HorasTrabajadas, 'f', 2, 64)
	case models.DayKindAbsence, models.DayKindPermission, models.DayKindHoliday:
		return dv.Code
	default:
		return ""
	}
}
