// Package nepdate provides Date, an immutable Bikram Sambat date value that
// bundles conversion, arithmetic and formatting behind one type.
//
// Every operation that changes a component returns a new Date; the AD
// equivalent and weekday are computed once when the value is built.
package nepdate

import (
	"fmt"
	"time"

	"github.com/starford/miti/internal/calendar"
	"github.com/starford/miti/internal/format"
	"github.com/starford/miti/internal/locale"
)

// Date is a validated BS date. The zero Date is not valid; use one of the
// constructors.
type Date struct {
	bs      calendar.Date
	ad      calendar.Date
	weekday int
}

// Clock returns the current time.
type Clock func() time.Time

func table() *calendar.Table {
	return calendar.Standard()
}

// New returns the BS date with the given year, zero based month and day.
// Out of range components are rejected, not clamped.
func New(year, month, day int) (Date, error) {
	return build(calendar.Date{Year: year, Month: month, Day: day})
}

func build(bs calendar.Date) (Date, error) {
	t := table()
	if err := t.Validate(bs); err != nil {
		return Date{}, err
	}
	ad, err := t.ToAD(bs)
	if err != nil {
		return Date{}, err
	}
	wd, err := calendar.WeekdayAD(ad)
	if err != nil {
		return Date{}, err
	}
	return Date{bs: bs, ad: ad, weekday: wd}, nil
}

// Parse parses a BS date in YYYY-MM-DD form.
func Parse(s string) (Date, error) {
	d, err := calendar.ParseDate(s)
	if err != nil {
		return Date{}, err
	}
	return build(d)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("nepdate: MustParse(%q): %v", s, err))
	}
	return d
}

// FromAD returns the BS date of an AD calendar date.
func FromAD(ad calendar.Date) (Date, error) {
	bs, err := table().ToBS(ad)
	if err != nil {
		return Date{}, err
	}
	return build(bs)
}

// ParseAD parses an AD date in YYYY-MM-DD form and converts it.
func ParseAD(s string) (Date, error) {
	ad, err := calendar.ParseDate(s)
	if err != nil {
		return Date{}, err
	}
	return FromAD(ad)
}

// FromTime returns the BS date of the calendar day of t in t's location.
func FromTime(t time.Time) (Date, error) {
	return FromAD(calendar.ADDate(t))
}

// Now returns today's BS date according to the local clock.
func Now() (Date, error) {
	return NowWith(time.Now)
}

// NowWith returns today's BS date according to clock.
func NowWith(clock Clock) (Date, error) {
	return FromTime(clock())
}

// Year returns the BS year.
func (d Date) Year() int { return d.bs.Year }

// Month returns the zero based BS month.
func (d Date) Month() int { return d.bs.Month }

// Day returns the day of the month.
func (d Date) Day() int { return d.bs.Day }

// Weekday returns the civil weekday, 0 is Sunday.
func (d Date) Weekday() int { return d.weekday }

// BS returns the BS components.
func (d Date) BS() calendar.Date { return d.bs }

// AD returns the equivalent AD date.
func (d Date) AD() calendar.Date { return d.ad }

// Time returns midnight UTC of the equivalent AD day.
func (d Date) Time() time.Time {
	return time.Date(d.ad.Year, time.Month(d.ad.Month+1), d.ad.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.bs == calendar.Date{}
}

// String renders d as YYYY-MM-DD.
func (d Date) String() string {
	return d.bs.String()
}

// Text renders d as YYYY-MM-DD in the digits of lang.
func (d Date) Text(lang locale.Lang) string {
	return locale.Default().For(lang).Localize(d.bs.String())
}

// ADText renders the AD equivalent as YYYY-MM-DD in the digits of lang.
func (d Date) ADText(lang locale.Lang) string {
	return locale.Default().For(lang).Localize(d.ad.String())
}

// MonthName returns the BS month name in lang.
func (d Date) MonthName(lang locale.Lang) (string, error) {
	return locale.Default().For(lang).Month(calendar.BS, d.bs.Month)
}

// WeekdayName returns the short weekday name in lang.
func (d Date) WeekdayName(lang locale.Lang) (string, error) {
	return locale.Default().For(lang).WeekdayShort(d.weekday)
}

// WeekdayNameFull returns the full weekday name in lang.
func (d Date) WeekdayNameFull(lang locale.Lang) (string, error) {
	return locale.Default().For(lang).Weekday(d.weekday)
}

// Components are the date fields written in the digits of a language.
// Month is zero based.
type Components struct {
	Year    string `json:"year"`
	Month   string `json:"month"`
	Date    string `json:"date"`
	Weekday string `json:"day"`
}

// Components returns the BS fields of d in the digits of lang.
func (d Date) Components(lang locale.Lang) Components {
	return d.ComponentsSet(locale.Default().For(lang))
}

// ComponentsSet returns the BS fields of d in the digits of set.
func (d Date) ComponentsSet(set *locale.Set) Components {
	return components(d.bs, d.weekday, set)
}

// ADComponents returns the AD fields of d in the digits of lang.
func (d Date) ADComponents(lang locale.Lang) Components {
	return components(d.ad, d.weekday, locale.Default().For(lang))
}

func components(c calendar.Date, weekday int, set *locale.Set) Components {
	return Components{
		Year:    set.Number(c.Year),
		Month:   set.Number(c.Month),
		Date:    set.Number(c.Day),
		Weekday: set.Number(weekday),
	}
}

// Format renders d with the layout language of package format using the
// builtin labels of lang.
func (d Date) Format(layout string, lang locale.Lang) (string, error) {
	return d.FormatSet(layout, locale.Default().For(lang))
}

// FormatSet renders d with the layout language using set.
func (d Date) FormatSet(layout string, set *locale.Set) (string, error) {
	return format.Format(layout, d.fields(), set)
}

func (d Date) fields() format.Fields {
	return format.Fields{
		Kind:    calendar.BS,
		Year:    d.bs.Year,
		Month:   d.bs.Month,
		Day:     d.bs.Day,
		Weekday: d.weekday,
	}
}

// Equal reports whether d and o are the same day.
func (d Date) Equal(o Date) bool { return d.bs == o.bs }

// Before reports whether d is before o.
func (d Date) Before(o Date) bool { return d.bs.Compare(o.bs) < 0 }

// After reports whether d is after o.
func (d Date) After(o Date) bool { return d.bs.Compare(o.bs) > 0 }

// Compare returns -1, 0 or +1.
func (d Date) Compare(o Date) int { return d.bs.Compare(o.bs) }

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
