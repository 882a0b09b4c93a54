package nepdate

import (
	"fmt"
	"strings"

	"github.com/starford/miti/internal/apperr"
	"github.com/starford/miti/internal/calendar"
)

// Unit is a date arithmetic step.
type Unit string

const (
	Days   Unit = "day"
	Weeks  Unit = "week"
	Months Unit = "month"
	Years  Unit = "year"
)

// ParseUnit accepts day, week, month and year, their plurals and the
// single letter aliases d, w, m and y.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "days", "d":
		return Days, nil
	case "week", "weeks", "w":
		return Weeks, nil
	case "month", "months", "m":
		return Months, nil
	case "year", "years", "y":
		return Years, nil
	}
	return "", fmt.Errorf("%q, want day|week|month|year: %w", s, apperr.ErrInvalidUnit)
}

// Add returns d moved by n units; n may be negative. A day that does not
// exist in the target month rolls forward into the next month. Results
// outside the supported range fail with apperr.ErrInvalidDate.
func (d Date) Add(n int, unit Unit) (Date, error) {
	t := table()
	var (
		bs  calendar.Date
		err error
	)
	switch unit {
	case Days:
		bs, err = t.AddDays(d.bs, n)
	case Weeks:
		bs, err = t.AddWeeks(d.bs, n)
	case Months:
		bs, err = t.AddMonths(d.bs, n)
	case Years:
		bs, err = t.AddYears(d.bs, n)
	default:
		return Date{}, fmt.Errorf("%q: %w", unit, apperr.ErrInvalidUnit)
	}
	if err != nil {
		return Date{}, err
	}
	return build(bs)
}

// Subtract returns d moved back by n units. It is Add(-n, unit), so a
// negative n moves the date forward; the sign is never discarded.
func (d Date) Subtract(n int, unit Unit) (Date, error) {
	return d.Add(-n, unit)
}

// SetDate returns d with its day of month set to day. Days beyond the
// month, or below 1, carry into the neighbouring months.
func (d Date) SetDate(day int) (Date, error) {
	return d.Add(day-d.bs.Day, Days)
}

// SetMonth returns d with its zero based month set to month. Months
// outside 0-11 carry into neighbouring years.
func (d Date) SetMonth(month int) (Date, error) {
	return d.Add(month-d.bs.Month, Months)
}

// SetFullYear returns d moved to year.
func (d Date) SetFullYear(year int) (Date, error) {
	if t := table(); !t.ContainsYear(year) {
		return Date{}, fmt.Errorf("year %d outside %d-%d: %w", year, t.FirstYear(), t.LastYear(), apperr.ErrInvalidDate)
	}
	return d.Add(year-d.bs.Year, Years)
}
