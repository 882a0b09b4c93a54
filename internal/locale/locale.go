// Package locale holds the digit and name tables used to render dates in
// English and Nepali, and keeps them reloadable at runtime.
package locale

import (
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/miti/internal/apperr"
	"github.com/starford/miti/internal/calendar"
)

// Lang selects a label set.
type Lang string

const (
	EN Lang = "en"
	NP Lang = "np"
)

// ParseLang parses "en" or "np" in either case. "ne" is accepted as an
// alias of "np".
func ParseLang(s string) (Lang, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en":
		return EN, nil
	case "np", "ne":
		return NP, nil
	}
	return "", fmt.Errorf("%q: %w", s, apperr.ErrInvalidLang)
}

// Set is the label table of one language. Month tables are indexed by
// zero based month, weekday tables by civil weekday with Sunday at 0.
type Set struct {
	Digits        []string `yaml:"digits" json:"digits"`
	Months        []string `yaml:"months" json:"months"`
	MonthsShort   []string `yaml:"months_short" json:"months_short"`
	ADMonths      []string `yaml:"ad_months" json:"ad_months"`
	ADMonthsShort []string `yaml:"ad_months_short" json:"ad_months_short"`
	Weekdays      []string `yaml:"weekdays" json:"weekdays"`
	WeekdaysShort []string `yaml:"weekdays_short" json:"weekdays_short"`
	WeekdaysMin   []string `yaml:"weekdays_min" json:"weekdays_min"`
	Today         string   `yaml:"today" json:"today"`
}

// Validate checks that every table has the expected number of entries.
func (s *Set) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Digits, validation.Required, validation.Length(10, 10), validation.Each(validation.Required)),
		validation.Field(&s.Months, validation.Required, validation.Length(12, 12), validation.Each(validation.Required)),
		validation.Field(&s.MonthsShort, validation.Required, validation.Length(12, 12)),
		validation.Field(&s.ADMonths, validation.Required, validation.Length(12, 12), validation.Each(validation.Required)),
		validation.Field(&s.ADMonthsShort, validation.Required, validation.Length(12, 12)),
		validation.Field(&s.Weekdays, validation.Required, validation.Length(7, 7), validation.Each(validation.Required)),
		validation.Field(&s.WeekdaysShort, validation.Required, validation.Length(7, 7)),
		validation.Field(&s.WeekdaysMin, validation.Required, validation.Length(7, 7)),
		validation.Field(&s.Today, validation.Required),
	)
}

// Localize replaces every ASCII digit of s with the set's digit glyph.
// Other characters are kept.
func (s *Set) Localize(text string) string {
	if len(s.Digits) != 10 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteString(s.Digits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Number renders n in the set's digits.
func (s *Set) Number(n int) string {
	return s.Localize(strconv.Itoa(n))
}

// Month returns the full name of the zero based month of the calendar.
func (s *Set) Month(kind calendar.Kind, month int) (string, error) {
	if kind == calendar.AD {
		return pick(s.ADMonths, month, "AD month")
	}
	return pick(s.Months, month, "month")
}

// MonthShort returns the abbreviated name of the zero based month.
func (s *Set) MonthShort(kind calendar.Kind, month int) (string, error) {
	if kind == calendar.AD {
		return pick(s.ADMonthsShort, month, "AD month")
	}
	return pick(s.MonthsShort, month, "month")
}

// Weekday returns the full weekday name.
func (s *Set) Weekday(day int) (string, error) {
	return pick(s.Weekdays, day, "weekday")
}

// WeekdayShort returns the abbreviated weekday name.
func (s *Set) WeekdayShort(day int) (string, error) {
	return pick(s.WeekdaysShort, day, "weekday")
}

// WeekdayMin returns the shortest weekday name, as used in grid headers.
func (s *Set) WeekdayMin(day int) (string, error) {
	return pick(s.WeekdaysMin, day, "weekday")
}

func pick(names []string, i int, what string) (string, error) {
	if i < 0 || i >= len(names) {
		return "", fmt.Errorf("locale: %s %d of %d: %w", what, i, len(names), apperr.ErrIndexOutOfRange)
	}
	return names[i], nil
}

// Labels holds the label sets of every supported language.
type Labels struct {
	EN *Set `yaml:"en" json:"en"`
	NP *Set `yaml:"np" json:"np"`
}

// For returns the set of lang. Unknown languages fall back to English.
func (l *Labels) For(lang Lang) *Set {
	if lang == NP {
		return l.NP
	}
	return l.EN
}

// Validate validates both sets.
func (l *Labels) Validate() error {
	if l.EN == nil || l.NP == nil {
		return fmt.Errorf("locale: both en and np sets are required")
	}
	if err := l.EN.Validate(); err != nil {
		return fmt.Errorf("en: %w", err)
	}
	if err := l.NP.Validate(); err != nil {
		return fmt.Errorf("np: %w", err)
	}
	return nil
}

// Default returns the builtin labels. The returned value must not be
// modified.
func Default() *Labels {
	return builtin
}

var builtin = &Labels{EN: english, NP: nepali}

var english = &Set{
	Digits: []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"},
	Months: []string{
		"Baisakh", "Jestha", "Asar", "Shrawan", "Bhadra", "Asoj",
		"Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra",
	},
	MonthsShort: []string{
		"Bai", "Jes", "Asa", "Shr", "Bha", "Aso",
		"Kar", "Man", "Pou", "Mag", "Fal", "Cha",
	},
	ADMonths: []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	ADMonthsShort: []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	Weekdays:      []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	WeekdaysShort: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	WeekdaysMin:   []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	Today:         "Today",
}

// Nepali has no separate abbreviated month names.
var nepali = &Set{
	Digits: []string{"०", "१", "२", "३", "४", "५", "६", "७", "८", "९"},
	Months: []string{
		"बैशाख", "जेठ", "असार", "साउन", "भदौ", "असोज",
		"कार्तिक", "मंसिर", "पौष", "माघ", "फागुन", "चैत",
	},
	MonthsShort: []string{
		"बैशाख", "जेठ", "असार", "साउन", "भदौ", "असोज",
		"कार्तिक", "मंसिर", "पौष", "माघ", "फागुन", "चैत",
	},
	ADMonths: []string{
		"जनवरी", "फेब्रुअरी", "मार्च", "अप्रिल", "मे", "जुन",
		"जुलाई", "अगस्ट", "सेप्टेम्बर", "अक्टोबर", "नोभेम्बर", "डिसेम्बर",
	},
	ADMonthsShort: []string{
		"जनवरी", "फेब्रुअरी", "मार्च", "अप्रिल", "मे", "जुन",
		"जुलाई", "अगस्ट", "सेप्टेम्बर", "अक्टोबर", "नोभेम्बर", "डिसेम्बर",
	},
	Weekdays:      []string{"आइतबार", "सोमबार", "मंगलबार", "बुधबार", "बिहिबार", "शुक्रबार", "शनिबार"},
	WeekdaysShort: []string{"आ", "सो", "मं", "बु", "बि", "शु", "श"},
	WeekdaysMin:   []string{"आ", "सो", "मं", "बु", "बि", "शु", "श"},
	Today:         "आज",
}
