// Package dateservice is the application facade over the calendar engine
// shared by the HTTP API, the MCP server and the CLI.
package dateservice

import (
	"context"
	"time"

	"github.com/starford/miti/internal/calendar"
	"github.com/starford/miti/internal/format"
	"github.com/starford/miti/internal/locale"
	"github.com/starford/miti/internal/nepdate"
	"github.com/starford/miti/internal/view"
)

// DateDetail is the full representation of a BS date and its AD
// equivalent in one language.
type DateDetail struct {
	BS           string             `json:"bs"`
	AD           string             `json:"ad"`
	Text         string             `json:"text"`
	ADText       string             `json:"ad_text"`
	Year         int                `json:"year"`
	Month        int                `json:"month"`
	Day          int                `json:"day"`
	Weekday      int                `json:"weekday"`
	MonthName    string             `json:"month_name"`
	ADMonthName  string             `json:"ad_month_name"`
	WeekdayName  string             `json:"weekday_name"`
	WeekdayShort string             `json:"weekday_short"`
	Components   nepdate.Components `json:"components"`
	Lang         locale.Lang        `json:"lang"`
}

// MonthQuery selects a calendar page. Month is one based as it appears in
// URLs and on the command line.
type MonthQuery struct {
	Kind      string
	Year      int
	Month     int
	Lang      string
	Selected  string
	Converter bool
}

// Service resolves user input into engine calls and renders the results.
type Service struct {
	table         *calendar.Table
	labels        *locale.Store
	views         *view.Builder
	now           func() time.Time
	defaultLang   locale.Lang
	defaultKind   calendar.Kind
	defaultLayout string
}

// Option configures the Service.
type Option func(*Service)

// WithNow overrides the clock, which is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLabels serves names and digits from store.
func WithLabels(store *locale.Store) Option {
	return func(s *Service) {
		s.labels = store
	}
}

// WithDefaults sets the language, calendar and layout used when a request
// leaves them empty.
func WithDefaults(lang locale.Lang, kind calendar.Kind, layout string) Option {
	return func(s *Service) {
		s.defaultLang = lang
		s.defaultKind = kind
		s.defaultLayout = layout
	}
}

// NewService creates a new date service over the builtin table.
func NewService(opts ...Option) *Service {
	s := &Service{
		table:         calendar.Standard(),
		now:           time.Now,
		defaultLang:   locale.EN,
		defaultKind:   calendar.BS,
		defaultLayout: format.Default,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.labels == nil {
		s.labels = locale.NewStore(nil)
	}
	s.views = view.NewBuilder(s.table)
	return s
}

// Lang parses a language, falling back to the default for "".
func (s *Service) Lang(raw string) (locale.Lang, error) {
	if raw == "" {
		return s.defaultLang, nil
	}
	return locale.ParseLang(raw)
}

// Kind parses a calendar kind, falling back to the default for "".
func (s *Service) Kind(raw string) (calendar.Kind, error) {
	if raw == "" {
		return s.defaultKind, nil
	}
	return calendar.ParseKind(raw)
}

// TodayDate returns today's BS date.
func (s *Service) TodayDate() (nepdate.Date, error) {
	return nepdate.NowWith(s.now)
}

// Today returns today's BS date in lang.
func (s *Service) Today(_ context.Context, lang string) (*DateDetail, error) {
	l, err := s.Lang(lang)
	if err != nil {
		return nil, err
	}
	d, err := s.TodayDate()
	if err != nil {
		return nil, err
	}
	return s.Detail(d, l)
}

// Range returns the supported date range.
func (s *Service) Range(_ context.Context) calendar.Range {
	return s.table.Range()
}

// GetDate parses a BS date and describes it.
func (s *Service) GetDate(_ context.Context, bs, lang string) (*DateDetail, error) {
	l, err := s.Lang(lang)
	if err != nil {
		return nil, err
	}
	d, err := nepdate.Parse(bs)
	if err != nil {
		return nil, err
	}
	return s.Detail(d, l)
}

// ToAD converts a BS date string. Unlike GetDate, a day past the end of
// its month carries into the next month instead of failing.
func (s *Service) ToAD(_ context.Context, bs, lang string) (*DateDetail, error) {
	l, err := s.Lang(lang)
	if err != nil {
		return nil, err
	}
	ad, err := s.table.ToADString(bs)
	if err != nil {
		return nil, err
	}
	d, err := nepdate.FromAD(ad)
	if err != nil {
		return nil, err
	}
	return s.Detail(d, l)
}

// ToBS converts an AD date string.
func (s *Service) ToBS(_ context.Context, ad, lang string) (*DateDetail, error) {
	l, err := s.Lang(lang)
	if err != nil {
		return nil, err
	}
	d, err := nepdate.ParseAD(ad)
	if err != nil {
		return nil, err
	}
	return s.Detail(d, l)
}

// Shift moves a BS date by value units. Negative values move backward.
func (s *Service) Shift(_ context.Context, bs string, value int, unit, lang string) (*DateDetail, error) {
	l, err := s.Lang(lang)
	if err != nil {
		return nil, err
	}
	u, err := nepdate.ParseUnit(unit)
	if err != nil {
		return nil, err
	}
	d, err := nepdate.Parse(bs)
	if err != nil {
		return nil, err
	}
	shifted, err := d.Add(value, u)
	if err != nil {
		return nil, err
	}
	return s.Detail(shifted, l)
}

// Format renders a BS date with layout. An empty layout uses the
// configured default.
func (s *Service) Format(_ context.Context, bs, layout, lang string) (string, error) {
	l, err := s.Lang(lang)
	if err != nil {
		return "", err
	}
	d, err := nepdate.Parse(bs)
	if err != nil {
		return "", err
	}
	return d.FormatSet(s.Layout(layout), s.labels.Set(l))
}

// Layout returns layout, or the configured default when it is empty.
func (s *Service) Layout(layout string) string {
	if layout == "" {
		return s.defaultLayout
	}
	return layout
}

// Month renders a calendar page. An empty kind uses the configured
// default; today and the selection are marked in the page's calendar.
func (s *Service) Month(_ context.Context, q MonthQuery) (*view.Month, error) {
	l, err := s.Lang(q.Lang)
	if err != nil {
		return nil, err
	}
	kind, err := s.Kind(q.Kind)
	if err != nil {
		return nil, err
	}

	var opts view.Options
	opts.Converter = q.Converter
	if today, err := s.TodayDate(); err == nil {
		opts.Today = pageDate(today, kind)
	}
	if q.Selected != "" {
		sel, err := s.parseIn(q.Selected, kind)
		if err != nil {
			return nil, err
		}
		opts.Selected = &sel
	}

	page, err := s.views.Month(view.Request{Kind: kind, Year: q.Year, Month: q.Month - 1}, opts, s.labels.Set(l))
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// parseIn parses a YYYY-MM-DD date of the given calendar.
func (s *Service) parseIn(raw string, kind calendar.Kind) (calendar.Date, error) {
	if kind == calendar.BS {
		d, err := nepdate.Parse(raw)
		if err != nil {
			return calendar.Date{}, err
		}
		return d.BS(), nil
	}
	d, err := calendar.ParseDate(raw)
	if err != nil {
		return calendar.Date{}, err
	}
	return d, nil
}

func pageDate(d nepdate.Date, kind calendar.Kind) calendar.Date {
	if kind == calendar.AD {
		return d.AD()
	}
	return d.BS()
}

// Detail describes d using the active labels of lang.
func (s *Service) Detail(d nepdate.Date, lang locale.Lang) (*DateDetail, error) {
	set := s.labels.Set(lang)
	monthName, err := set.Month(calendar.BS, d.Month())
	if err != nil {
		return nil, err
	}
	adMonthName, err := set.Month(calendar.AD, d.AD().Month)
	if err != nil {
		return nil, err
	}
	weekday, err := set.Weekday(d.Weekday())
	if err != nil {
		return nil, err
	}
	weekdayShort, err := set.WeekdayShort(d.Weekday())
	if err != nil {
		return nil, err
	}
	return &DateDetail{
		BS:           d.String(),
		AD:           d.AD().String(),
		Text:         set.Localize(d.String()),
		ADText:       set.Localize(d.AD().String()),
		Year:         d.Year(),
		Month:        d.Month(),
		Day:          d.Day(),
		Weekday:      d.Weekday(),
		MonthName:    monthName,
		ADMonthName:  adMonthName,
		WeekdayName:  weekday,
		WeekdayShort: weekdayShort,
		Components:   d.ComponentsSet(set),
		Lang:         lang,
	}, nil
}
