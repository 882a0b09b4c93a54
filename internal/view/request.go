package view

import "github.com/starford/miti/internal/calendar"

// Request identifies the month page to render. Month is zero based.
type Request struct {
	Kind  calendar.Kind
	Year  int
	Month int
}

// Normalize keeps the month within 0..11 by rolling the year.
func (r Request) Normalize() Request {
	for r.Month > 11 {
		r.Month -= 12
		r.Year++
	}
	for r.Month < 0 {
		r.Month += 12
		r.Year--
	}
	return r
}

// NextMonth moves the request to the following month.
func (r Request) NextMonth() Request {
	r.Month++
	return r.Normalize()
}

// PrevMonth moves the request to the preceding month.
func (r Request) PrevMonth() Request {
	r.Month--
	return r.Normalize()
}

// NextYear moves to the following year.
func (r Request) NextYear() Request {
	r.Year++
	return r
}

// PrevYear moves to the preceding year.
func (r Request) PrevYear() Request {
	r.Year--
	return r
}

// Decade is a ten year block starting at a multiple of ten.
type Decade struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// DecadeOf returns the decade containing year.
func DecadeOf(year int) Decade {
	start := year / 10 * 10
	if year < 0 && year%10 != 0 {
		start -= 10
	}
	return Decade{Start: start, End: start + 9}
}

// Years returns the ten years of the decade.
func (d Decade) Years() []int {
	years := make([]int, 10)
	for i := range years {
		years[i] = d.Start + i
	}
	return years
}
