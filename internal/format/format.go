// Package format renders dates through a small token based layout
// language:
//
//	YYYY  full year            YY    last two digits of the year
//	MMMM  month name           MMM   short month name
//	MM    month, zero padded   M     month
//	DD    day, zero padded     D     day
//	dddd  weekday name         ddd   short weekday name
//	dd    minimal weekday name d     weekday number, 0 is Sunday
//
// Text inside square brackets is copied verbatim without the brackets and
// any other text passes through unchanged. Numbers are written in the
// digits of the selected label set.
package format

import (
	"fmt"
	"strings"
	"sync"

	"github.com/starford/miti/internal/calendar"
	"github.com/starford/miti/internal/locale"
)

// Default is the layout used for an empty layout string.
const Default = "YYYY-MM-DD"

// Fields are the date components a layout is rendered from.
type Fields struct {
	Kind    calendar.Kind
	Year    int
	Month   int // zero based
	Day     int
	Weekday int // 0 is Sunday
}

// segment is one piece of a compiled layout: literal text or a token.
type segment struct {
	op  op
	lit string
}

type op int

const (
	opLiteral op = iota

	// Sorted by matching preference, longer tokens first.
	opLongYear
	opYear
	opLongMonth
	opShortMonth
	opZeroMonth
	opMonth
	opZeroDay
	opDay
	opLongWeekday
	opShortWeekday
	opMinWeekday
	opWeekday

	opInvalid
)

// String returns the layout token of the operator.
func (o op) String() string {
	switch o {
	case opLiteral:
		return "<literal>"
	case opLongYear:
		return "YYYY"
	case opYear:
		return "YY"
	case opLongMonth:
		return "MMMM"
	case opShortMonth:
		return "MMM"
	case opZeroMonth:
		return "MM"
	case opMonth:
		return "M"
	case opZeroDay:
		return "DD"
	case opDay:
		return "D"
	case opLongWeekday:
		return "dddd"
	case opShortWeekday:
		return "ddd"
	case opMinWeekday:
		return "dd"
	case opWeekday:
		return "d"
	}
	panic("invalid format op")
}

var memo sync.Map // layout -> []segment

func compiled(layout string) []segment {
	if v, ok := memo.Load(layout); ok {
		return v.([]segment)
	}
	prog := compile(layout)
	memo.Store(layout, prog)
	return prog
}

// compile splits layout into literal and token segments. Adjacent literal
// text is merged into one segment.
func compile(layout string) []segment {
	var prog []segment
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			prog = append(prog, segment{lit: lit.String()})
			lit.Reset()
		}
	}
	for len(layout) > 0 {
		if layout[0] == '[' {
			if end := strings.IndexByte(layout, ']'); end > 0 {
				lit.WriteString(layout[1:end])
				layout = layout[end+1:]
				continue
			}
		}
		if o, rest, ok := nextToken(layout); ok {
			flush()
			prog = append(prog, segment{op: o})
			layout = rest
			continue
		}
		lit.WriteByte(layout[0])
		layout = layout[1:]
	}
	flush()
	return prog
}

func nextToken(layout string) (op, string, bool) {
	for o := opLongYear; o < opInvalid; o++ {
		if rest, ok := strings.CutPrefix(layout, o.String()); ok {
			return o, rest, true
		}
	}
	return opLiteral, layout, false
}

// Format renders f according to layout using the names and digits of set.
// An empty layout renders Default. It fails with apperr.ErrIndexOutOfRange
// when the month or weekday has no entry in set.
func Format(layout string, f Fields, set *locale.Set) (string, error) {
	if layout == "" {
		layout = Default
	}
	var b strings.Builder
	for _, s := range compiled(layout) {
		switch s.op {
		case opLiteral:
			b.WriteString(s.lit)
		case opLongYear:
			b.WriteString(set.Number(f.Year))
		case opYear:
			b.WriteString(lastRunes(set.Number(f.Year), 2))
		case opZeroMonth:
			b.WriteString(set.Localize(fmt.Sprintf("%02d", f.Month+1)))
		case opMonth:
			b.WriteString(set.Number(f.Month + 1))
		case opZeroDay:
			b.WriteString(set.Localize(fmt.Sprintf("%02d", f.Day)))
		case opDay:
			b.WriteString(set.Number(f.Day))
		case opWeekday:
			b.WriteString(set.Number(f.Weekday))
		default:
			name, err := lookup(s.op, f, set)
			if err != nil {
				return "", err
			}
			b.WriteString(name)
		}
	}
	return b.String(), nil
}

func lookup(o op, f Fields, set *locale.Set) (string, error) {
	switch o {
	case opLongMonth:
		return set.Month(f.Kind, f.Month)
	case opShortMonth:
		return set.MonthShort(f.Kind, f.Month)
	case opLongWeekday:
		return set.Weekday(f.Weekday)
	case opShortWeekday:
		return set.WeekdayShort(f.Weekday)
	case opMinWeekday:
		return set.WeekdayMin(f.Weekday)
	}
	panic("invalid format op " + o.String())
}

func lastRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}

// Token documents one layout token.
type Token struct {
	Token       string `json:"token"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// Tokens lists the supported tokens with examples rendered for BS
// 2080-01-15 in English.
var Tokens = []Token{
	{"YYYY", "full year", "2080"},
	{"YY", "last two digits of the year", "80"},
	{"MMMM", "month name", "Baisakh"},
	{"MMM", "short month name", "Bai"},
	{"MM", "month, zero padded", "01"},
	{"M", "month", "1"},
	{"DD", "day of month, zero padded", "15"},
	{"D", "day of month", "15"},
	{"dddd", "weekday name", "Friday"},
	{"ddd", "short weekday name", "Fri"},
	{"dd", "minimal weekday name", "Fr"},
	{"d", "weekday number, 0 is Sunday", "5"},
	{"[...]", "literal text, brackets removed", "[YYYY] -> YYYY"},
}
