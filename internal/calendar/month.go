package calendar

import (
	"fmt"
	"time"

	"github.com/starford/miti/internal/apperr"
)

// MonthInfo is the metadata needed to lay out a month grid.
type MonthInfo struct {
	CurrentMonthDays int `json:"current_month_days"`
	PrevMonthDays    int `json:"prev_month_days"`
	NextMonthDays    int `json:"next_month_days"`
	// FirstWeekDay is the civil weekday (0 is Sunday) of day 1.
	FirstWeekDay int `json:"first_week_day"`
}

// MonthInfo returns the grid metadata for the zero based month of year in
// the given calendar. For BS months at the edges of the table the length of
// the unsupported neighbouring month is reported as 0.
func (t *Table) MonthInfo(kind Kind, year, month int) (MonthInfo, error) {
	if month < 0 || month > 11 {
		return MonthInfo{}, fmt.Errorf("calendar: month %d: %w", month+1, apperr.ErrInvalidDate)
	}
	switch kind {
	case AD:
		return adMonthInfo(year, month), nil
	case BS:
		return t.bsMonthInfo(year, month)
	}
	return MonthInfo{}, fmt.Errorf("calendar: %q: %w", kind, apperr.ErrInvalidKind)
}

func (t *Table) bsMonthInfo(year, month int) (MonthInfo, error) {
	if !t.ContainsYear(year) {
		return MonthInfo{}, fmt.Errorf("calendar: year %d outside %d-%d: %w", year, t.FirstYear(), t.LastYear(), apperr.ErrInvalidDate)
	}
	weekday, err := t.Weekday(Date{Year: year, Month: month, Day: 1})
	if err != nil {
		return MonthInfo{}, err
	}
	index := year - t.FirstYear()
	info := MonthInfo{
		CurrentMonthDays: t.months[index][month],
		FirstWeekDay:     weekday,
	}
	if month > 0 {
		info.PrevMonthDays = t.months[index][month-1]
	} else if index > 0 {
		info.PrevMonthDays = t.months[index-1][11]
	}
	if month < 11 {
		info.NextMonthDays = t.months[index][month+1]
	} else if index+1 < len(t.months) {
		info.NextMonthDays = t.months[index+1][0]
	}
	return info, nil
}

func adMonthInfo(year, month int) MonthInfo {
	// Day 0 of a month is the last day of the month before it.
	last := func(m int) int {
		return time.Date(year, time.Month(m+1), 0, 12, 0, 0, 0, time.UTC).Day()
	}
	first := time.Date(year, time.Month(month+1), 1, 12, 0, 0, 0, time.UTC)
	return MonthInfo{
		CurrentMonthDays: last(month + 1),
		PrevMonthDays:    last(month),
		NextMonthDays:    last(month + 2),
		FirstWeekDay:     int(first.Weekday()),
	}
}
