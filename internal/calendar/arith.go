package calendar

import (
	"fmt"
	"time"

	"github.com/starford/miti/internal/apperr"
)

// AddDays returns the BS date n days after d; n may be negative. The
// shift is done on the AD side where day arithmetic does not depend on
// month lengths.
func (t *Table) AddDays(d Date, n int) (Date, error) {
	if err := t.checkShift(n, t.Years()*366, "days"); err != nil {
		return Date{}, err
	}
	ad, err := t.ToAD(d)
	if err != nil {
		return Date{}, err
	}
	shifted := time.Date(ad.Year, time.Month(ad.Month+1), ad.Day+n, 12, 0, 0, 0, time.UTC)
	return t.ToBS(fromCivil(shifted))
}

// AddWeeks returns the BS date n weeks after d.
func (t *Table) AddWeeks(d Date, n int) (Date, error) {
	if err := t.checkShift(n, t.Years()*53, "weeks"); err != nil {
		return Date{}, err
	}
	return t.AddDays(d, 7*n)
}

// AddMonths returns the BS date n months after d. The day is not clamped
// to the length of the target month; any excess rolls forward into the
// following month.
func (t *Table) AddMonths(d Date, n int) (Date, error) {
	if err := t.checkShift(n, t.Years()*12, "months"); err != nil {
		return Date{}, err
	}
	target := d.Month + n
	return t.normalize(Date{
		Year:  d.Year + floorDiv(target, 12),
		Month: floorMod(target, 12),
		Day:   d.Day,
	})
}

// AddYears returns the BS date n years after d. A day that does not exist
// in the target year's month rolls forward.
func (t *Table) AddYears(d Date, n int) (Date, error) {
	if err := t.checkShift(n, t.Years(), "years"); err != nil {
		return Date{}, err
	}
	return t.normalize(Date{Year: d.Year + n, Month: d.Month, Day: d.Day})
}

// checkShift rejects shifts longer than the whole table.
func (t *Table) checkShift(n, span int, unit string) error {
	if n > span || n < -span {
		return fmt.Errorf("calendar: shift of %d %s exceeds the table: %w", n, unit, apperr.ErrInvalidDate)
	}
	return nil
}

// normalize round trips d through AD so that an overflowing day carries
// across month and year boundaries.
func (t *Table) normalize(d Date) (Date, error) {
	if !t.ContainsYear(d.Year) {
		return Date{}, fmt.Errorf("calendar: year %d outside %d-%d: %w", d.Year, t.FirstYear(), t.LastYear(), apperr.ErrInvalidDate)
	}
	ad, err := t.ToAD(d)
	if err != nil {
		return Date{}, err
	}
	return t.ToBS(ad)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
