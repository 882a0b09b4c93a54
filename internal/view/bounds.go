package view

import "github.com/starford/miti/internal/calendar"

// Gregorian pages are limited to four digit years.
const (
	minADYear = 1
	maxADYear = 9999
)

// bounds is the inclusive navigable window of a calendar, at day
// precision.
type bounds struct {
	first, last calendar.Date
}

func boundsFor(t *calendar.Table, kind calendar.Kind, converter bool) bounds {
	if kind == calendar.BS {
		r := t.Range()
		return bounds{first: r.StartBS, last: r.EndBS}
	}
	if converter {
		r := t.Range()
		return bounds{first: r.StartAD, last: r.EndAD}
	}
	return bounds{
		first: calendar.Date{Year: minADYear, Month: 0, Day: 1},
		last:  calendar.Date{Year: maxADYear, Month: 11, Day: 31},
	}
}

func (b bounds) containsMonth(year, month int) bool {
	return monthKey(year, month) >= monthKey(b.first.Year, b.first.Month) &&
		monthKey(year, month) <= monthKey(b.last.Year, b.last.Month)
}

func (b bounds) containsYear(year int) bool {
	return year >= b.first.Year && year <= b.last.Year
}

func (b bounds) containsDay(d calendar.Date) bool {
	return d.Compare(b.first) >= 0 && d.Compare(b.last) <= 0
}

func monthKey(year, month int) int {
	return year*12 + month
}

// Nav reports which navigation steps stay inside the supported window.
type Nav struct {
	PrevMonth  bool `json:"prev_month"`
	NextMonth  bool `json:"next_month"`
	PrevYear   bool `json:"prev_year"`
	NextYear   bool `json:"next_year"`
	PrevDecade bool `json:"prev_decade"`
	NextDecade bool `json:"next_decade"`
}

func (b bounds) nav(r Request) Nav {
	prev, next := r.PrevMonth(), r.NextMonth()
	decade := DecadeOf(r.Year)
	return Nav{
		PrevMonth:  b.containsMonth(prev.Year, prev.Month),
		NextMonth:  b.containsMonth(next.Year, next.Month),
		PrevYear:   b.containsYear(r.Year - 1),
		NextYear:   b.containsYear(r.Year + 1),
		PrevDecade: decade.Start > b.first.Year,
		NextDecade: decade.End < b.last.Year,
	}
}
