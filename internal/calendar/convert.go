package calendar

import (
	"fmt"
	"time"

	"github.com/starford/miti/internal/apperr"
)

// civil returns the AD date as a time at noon UTC so that whole day
// differences are exact. It fails if the date does not exist.
func civil(d Date) (time.Time, error) {
	t := time.Date(d.Year, time.Month(d.Month+1), d.Day, 12, 0, 0, 0, time.UTC)
	if t.Year() != d.Year || int(t.Month())-1 != d.Month || t.Day() != d.Day {
		return time.Time{}, fmt.Errorf("calendar: AD date %s does not exist: %w", d, apperr.ErrInvalidDate)
	}
	return t, nil
}

func fromCivil(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m) - 1, Day: d}
}

// daysBetween returns the number of whole days from b to a.
func daysBetween(a, b time.Time) int {
	return int((a.Unix() - b.Unix()) / 86400)
}

// ToAD converts a BS date to its AD equivalent.
//
// Only structural checks are applied to the day: it may exceed the length of
// its month (up to 32), in which case the excess carries into the following
// months. Use Validate for a strict check.
func (t *Table) ToAD(bs Date) (Date, error) {
	if !t.ContainsYear(bs.Year) || bs.Day <= 0 || bs.Day > 32 || bs.Month < 0 || bs.Month > 11 {
		return Date{}, fmt.Errorf("calendar: BS date %s: %w", bs, apperr.ErrInvalidDate)
	}
	index := bs.Year - t.FirstYear()
	row := t.months[index]
	days := bs.Day - 1
	for m := 0; m < bs.Month; m++ {
		days += row[m]
	}
	anchor := fromNumber(t.anchors[index])
	// time.Date normalizes the overflowing day across AD months and years.
	ad := time.Date(anchor.Year, time.Month(anchor.Month+1), anchor.Day+days, 12, 0, 0, 0, time.UTC)
	return fromCivil(ad), nil
}

// ToBS converts an AD date to its BS equivalent.
func (t *Table) ToBS(ad Date) (Date, error) {
	target, err := civil(ad)
	if err != nil {
		return Date{}, err
	}
	index := ad.Year - t.firstAD.Year
	if index < 0 {
		return Date{}, fmt.Errorf("calendar: AD date %s before %s: %w", ad, fromNumber(t.anchors[0]), apperr.ErrInvalidDate)
	}
	if index >= len(t.anchors) {
		// The first months of the AD year after the last anchor still
		// belong to the last BS year.
		index = len(t.anchors) - 1
	}
	days := t.dayOfYear(target, index)
	if days <= 0 {
		// BS years start in mid April, so the early part of an AD year
		// belongs to the previous BS year.
		index--
		if index < 0 {
			return Date{}, fmt.Errorf("calendar: AD date %s before %s: %w", ad, fromNumber(t.anchors[0]), apperr.ErrInvalidDate)
		}
		days = t.dayOfYear(target, index)
	}
	row := t.months[index]
	if days > yearLength(row) {
		return Date{}, fmt.Errorf("calendar: AD date %s after %s: %w", ad, t.Range().EndAD, apperr.ErrInvalidDate)
	}
	month := 0
	for days > row[month] {
		days -= row[month]
		month++
	}
	return Date{Year: t.FirstYear() + index, Month: month, Day: days}, nil
}

// dayOfYear returns the one based day count of target from Baishakh 1 of
// the year at index. The anchor day itself is day 1.
func (t *Table) dayOfYear(target time.Time, index int) int {
	anchor, _ := civil(fromNumber(t.anchors[index]))
	return daysBetween(target, anchor) + 1
}

// ToADString converts a BS date string in YYYY-MM-DD format to AD.
func (t *Table) ToADString(bs string) (Date, error) {
	d, err := ParseDate(bs)
	if err != nil {
		return Date{}, err
	}
	return t.ToAD(d)
}

// ToBSString converts an AD date string in YYYY-MM-DD format to BS.
func (t *Table) ToBSString(ad string) (Date, error) {
	d, err := ParseDate(ad)
	if err != nil {
		return Date{}, err
	}
	return t.ToBS(d)
}

// Weekday returns the civil weekday (0 is Sunday) of a BS date.
func (t *Table) Weekday(bs Date) (int, error) {
	ad, err := t.ToAD(bs)
	if err != nil {
		return 0, err
	}
	return WeekdayAD(ad)
}

// WeekdayAD returns the civil weekday (0 is Sunday) of an AD date.
func WeekdayAD(ad Date) (int, error) {
	c, err := civil(ad)
	if err != nil {
		return 0, err
	}
	return int(c.Weekday()), nil
}

// ADDate returns the AD date of the given time in its own location.
func ADDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m) - 1, Day: d}
}

// ToAD converts a BS date using the standard table.
func ToAD(bs Date) (Date, error) {
	return standard.ToAD(bs)
}

// ToBS converts an AD date using the standard table.
func ToBS(ad Date) (Date, error) {
	return standard.ToBS(ad)
}
