package calendar

import (
	"fmt"

	"github.com/starford/miti/internal/apperr"
)

// Table is the immutable BS month length table together with the AD
// anchor of the first day of every BS year it covers. A Table is safe
// for concurrent use.
type Table struct {
	months  [][12]int
	anchors []int
	firstBS Date
	firstAD Date
}

var standard = &Table{
	months:  yearMonthDays,
	anchors: baishakOne,
	firstBS: fromNumber(epochBS),
	firstAD: fromNumber(epochAD),
}

// Standard returns the builtin table covering BS 2000 to BS 2090.
func Standard() *Table {
	return standard
}

// NewTable returns a table for the supplied month lengths, whose first row
// is BS year firstYear and starts on the AD date firstAD. The AD anchors of
// the following years are derived from the month lengths.
func NewTable(firstYear int, firstAD Date, months [][12]int) (*Table, error) {
	if len(months) == 0 {
		return nil, fmt.Errorf("calendar: empty month table: %w", apperr.ErrIndexOutOfRange)
	}
	start, err := civil(firstAD)
	if err != nil {
		return nil, err
	}
	anchors := make([]int, len(months))
	for i, row := range months {
		for m, n := range row {
			if n < 1 || n > 32 {
				return nil, fmt.Errorf("calendar: year %d month %d has %d days: %w", firstYear+i, m+1, n, apperr.ErrInvalidDate)
			}
		}
		// ToBS relies on year i starting within AD year firstAD.Year+i.
		if start.Year() != firstAD.Year+i {
			return nil, fmt.Errorf("calendar: year %d starts in AD %d, want %d: %w", firstYear+i, start.Year(), firstAD.Year+i, apperr.ErrInvalidDate)
		}
		anchors[i] = toNumber(fromCivil(start))
		start = start.AddDate(0, 0, yearLength(row))
	}
	return &Table{
		months:  months,
		anchors: anchors,
		firstBS: Date{Year: firstYear, Month: 0, Day: 1},
		firstAD: firstAD,
	}, nil
}

// Years returns the number of BS years covered by the table.
func (t *Table) Years() int {
	return len(t.months)
}

// FirstYear returns the first supported BS year.
func (t *Table) FirstYear() int {
	return t.firstBS.Year
}

// LastYear returns the last supported BS year.
func (t *Table) LastYear() int {
	return t.firstBS.Year + len(t.months) - 1
}

// FirstADYear returns the AD year in which the first supported BS year starts.
func (t *Table) FirstADYear() int {
	return t.firstAD.Year
}

// ContainsYear reports whether the BS year is covered by the table.
func (t *Table) ContainsYear(year int) bool {
	return year >= t.FirstYear() && year <= t.LastYear()
}

// MonthLengths returns the 12 month lengths of the year at yearIndex,
// which counts from the first supported BS year.
func (t *Table) MonthLengths(yearIndex int) ([12]int, error) {
	if yearIndex < 0 || yearIndex >= len(t.months) {
		return [12]int{}, fmt.Errorf("calendar: year index %d not in [0, %d]: %w", yearIndex, len(t.months)-1, apperr.ErrIndexOutOfRange)
	}
	return t.months[yearIndex], nil
}

// DaysInMonth returns the length of the zero based month of the BS year.
func (t *Table) DaysInMonth(year, month int) (int, error) {
	if month < 0 || month > 11 {
		return 0, fmt.Errorf("calendar: month %d: %w", month, apperr.ErrIndexOutOfRange)
	}
	row, err := t.MonthLengths(year - t.FirstYear())
	if err != nil {
		return 0, err
	}
	return row[month], nil
}

// DaysInYear returns the total number of days of the BS year.
func (t *Table) DaysInYear(year int) (int, error) {
	row, err := t.MonthLengths(year - t.FirstYear())
	if err != nil {
		return 0, err
	}
	return yearLength(row), nil
}

// EpochAnchorAD returns the AD date of Baishakh 1 of the BS year at yearIndex.
func (t *Table) EpochAnchorAD(yearIndex int) (Date, error) {
	if yearIndex < 0 || yearIndex >= len(t.anchors) {
		return Date{}, fmt.Errorf("calendar: year index %d not in [0, %d]: %w", yearIndex, len(t.anchors)-1, apperr.ErrIndexOutOfRange)
	}
	return fromNumber(t.anchors[yearIndex]), nil
}

// Validate checks that d is a BS date within the table: the year must be
// supported, the month in 0-11 and the day within that month's length.
func (t *Table) Validate(d Date) error {
	if !t.ContainsYear(d.Year) {
		return fmt.Errorf("calendar: year %d outside %d-%d: %w", d.Year, t.FirstYear(), t.LastYear(), apperr.ErrInvalidDate)
	}
	if d.Month < 0 || d.Month > 11 {
		return fmt.Errorf("calendar: month %d: %w", d.Month+1, apperr.ErrInvalidDate)
	}
	n := t.months[d.Year-t.FirstYear()][d.Month]
	if d.Day < 1 || d.Day > n {
		return fmt.Errorf("calendar: day %d of %04d-%02d (has %d days): %w", d.Day, d.Year, d.Month+1, n, apperr.ErrInvalidDate)
	}
	return nil
}

// Range describes the first and last supported dates in both calendars.
type Range struct {
	StartBS Date `json:"start_bs"`
	EndBS   Date `json:"end_bs"`
	StartAD Date `json:"start_ad"`
	EndAD   Date `json:"end_ad"`
}

// Range returns the supported date range of the table.
func (t *Table) Range() Range {
	last := len(t.months) - 1
	end := Date{Year: t.LastYear(), Month: 11, Day: t.months[last][11]}
	start, _ := civil(fromNumber(t.anchors[last]))
	endAD := fromCivil(start.AddDate(0, 0, yearLength(t.months[last])-1))
	return Range{
		StartBS: t.firstBS,
		EndBS:   end,
		StartAD: fromNumber(t.anchors[0]),
		EndAD:   endAD,
	}
}

func yearLength(row [12]int) int {
	total := 0
	for _, n := range row {
		total += n
	}
	return total
}

func toNumber(d Date) int {
	return d.Year*10000 + (d.Month+1)*100 + d.Day
}
