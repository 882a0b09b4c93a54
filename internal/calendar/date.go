// Package calendar converts dates between the Bikram Sambat (BS) calendar and
// the Gregorian (AD) civil calendar and performs BS date arithmetic.
//
// BS month lengths are irregular and only known through a static per-year
// table, so every conversion is anchored on the AD date of the first day
// (Baishakh 1) of the corresponding BS year.
package calendar

import (
	"fmt"
	"strings"

	"github.com/starford/miti/internal/apperr"
)

// Date is a calendar agnostic year, month and day. Month is zero based
// (0-11) and Day is one based.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"date"`
}

// String renders the date as YYYY-MM-DD with a one based month.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month+1, d.Day)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to
// or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// fromNumber decodes a compact YYYYMMDD integer. The month in the
// encoding is one based.
func fromNumber(n int) Date {
	return Date{
		Year:  n / 10000,
		Month: (n%10000)/100 - 1,
		Day:   n % 100,
	}
}

// Kind identifies one of the two supported calendars.
type Kind string

const (
	BS Kind = "BS"
	AD Kind = "AD"
)

// ParseKind parses "BS" or "AD" in either case.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToUpper(strings.TrimSpace(s))) {
	case BS:
		return BS, nil
	case AD:
		return AD, nil
	}
	return "", fmt.Errorf("%q: %w", s, apperr.ErrInvalidKind)
}
