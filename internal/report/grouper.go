package report

import (
	"strings"
	"time"

	appErrors "github.com/andeshr/asistencia-api/pkg/errors"
)

var dayNames = map[time.Weekday]string{
	time.Monday:    "Lun",
	time.Tuesday:   "Mar",
	time.Wednesday: "Mie",
	time.Thursday:  "Jue",
	time.Friday:    "Vie",
	time.Saturday:  "Sab",
	time.Sunday:    "Dom",
}

// Grouper partitions an arbitrary date range into week buckets bounded by a
// fixed week-start day.
type Grouper struct {
	weekStart time.Weekday
}

// NewGrouper constructs a grouper. weekStart is the locale's first day of the
// week; reports here default to Monday.
func NewGrouper(weekStart time.Weekday) *Grouper {
	return &Grouper{weekStart: weekStart}
}

// ParseWeekStart resolves a configured week-start name, defaulting to Monday.
func ParseWeekStart(raw string) time.Weekday {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sunday", "domingo":
		return time.Sunday
	case "saturday", "sabado":
		return time.Saturday
	default:
		return time.Monday
	}
}

// Group covers [start, end] inclusive with contiguous, non-overlapping week
// groups. Week numbers are sequential from 1 within the range, not ISO
// calendar numbers, because reports are scoped to arbitrary custom ranges.
// The first and last groups may be partial.
func (g *Grouper) Group(start, end time.Time) ([]WeekGroup, error) {
	start = dateOnly(start)
	end = dateOnly(end)
	if end.Before(start) {
		return nil, appErrors.Clone(appErrors.ErrInvalidRange, "")
	}

	var groups []WeekGroup
	current := WeekGroup{WeekNumber: 1}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == g.weekStart && len(current.Dates) > 0 {
			groups = append(groups, current)
			current = WeekGroup{WeekNumber: len(groups) + 1}
		}
		current.Dates = append(current.Dates, d)
		current.DayNames = append(current.DayNames, dayNames[d.Weekday()])
		current.DayNumbers = append(current.DayNumbers, d.Day())
	}
	groups = append(groups, current)
	return groups, nil
}
