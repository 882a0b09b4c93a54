// Package view assembles everything a calendar widget needs to draw one
// month page: the day grid with per cell flags, localized header labels
// and the navigation state.
package view

import (
	"fmt"

	"github.com/starford/miti/internal/apperr"
	"github.com/starford/miti/internal/calendar"
	"github.com/starford/miti/internal/grid"
	"github.com/starford/miti/internal/locale"
)

// Options tune a month page. Today and Selected are dates in the page's
// own calendar.
type Options struct {
	Today    calendar.Date
	Selected *calendar.Date
	// Converter limits Gregorian pages to the range that can be converted.
	Converter bool
}

// Cell is one day slot of the page.
type Cell struct {
	Day      int           `json:"day"`
	Month    grid.Position `json:"month"`
	Text     string        `json:"text"`
	Weekday  int           `json:"weekday"`
	Today    bool          `json:"today"`
	Selected bool          `json:"selected"`
	Disabled bool          `json:"disabled"`
}

// Choice is an entry of the month or year picker.
type Choice struct {
	Value    int    `json:"value"`
	Text     string `json:"text"`
	Disabled bool   `json:"disabled"`
}

// Month is a rendered month page.
type Month struct {
	Kind      calendar.Kind      `json:"kind"`
	Year      int                `json:"year"`
	Month     int                `json:"month"`
	Title     string             `json:"title"`
	MonthName string             `json:"month_name"`
	YearText  string             `json:"year_text"`
	TodayText string             `json:"today_text"`
	Weekdays  []string           `json:"weekdays"`
	Info      calendar.MonthInfo `json:"info"`
	Weeks     [][]Cell           `json:"weeks"`
	Nav       Nav                `json:"nav"`
	Decade    Decade             `json:"decade"`
	Years     []Choice           `json:"years"`
	Months    []Choice           `json:"months"`
}

// Builder renders month pages from a calendar table.
type Builder struct {
	table *calendar.Table
}

// NewBuilder returns a Builder over t.
func NewBuilder(t *calendar.Table) *Builder {
	return &Builder{table: t}
}

// Month renders the page of req using the labels of set. The request is
// normalized first; pages outside the navigable window fail with
// apperr.ErrInvalidDate.
func (b *Builder) Month(req Request, opts Options, set *locale.Set) (Month, error) {
	if req.Kind != calendar.BS && req.Kind != calendar.AD {
		return Month{}, fmt.Errorf("view: %q: %w", req.Kind, apperr.ErrInvalidKind)
	}
	req = req.Normalize()
	bnd := boundsFor(b.table, req.Kind, opts.Converter)
	if !bnd.containsMonth(req.Year, req.Month) {
		return Month{}, fmt.Errorf("view: %s %04d-%02d outside %s..%s: %w",
			req.Kind, req.Year, req.Month+1, bnd.first, bnd.last, apperr.ErrInvalidDate)
	}

	info, err := b.table.MonthInfo(req.Kind, req.Year, req.Month)
	if err != nil {
		return Month{}, err
	}

	monthName, err := set.Month(req.Kind, req.Month)
	if err != nil {
		return Month{}, err
	}
	weekdays := make([]string, 7)
	for i := range weekdays {
		if weekdays[i], err = set.WeekdayShort(i); err != nil {
			return Month{}, err
		}
	}
	yearText := set.Localize(fmt.Sprintf("%04d", req.Year))

	decade := DecadeOf(req.Year)
	decade.Text = set.Localize(fmt.Sprintf("%04d-%04d", decade.Start, decade.End))

	page := Month{
		Kind:      req.Kind,
		Year:      req.Year,
		Month:     req.Month,
		Title:     monthName + " " + yearText,
		MonthName: monthName,
		YearText:  yearText,
		TodayText: set.Today,
		Weekdays:  weekdays,
		Info:      info,
		Weeks:     b.cells(req, info, opts, bnd, set),
		Nav:       bnd.nav(req),
		Decade:    decade,
	}

	for _, y := range decade.Years() {
		page.Years = append(page.Years, Choice{
			Value:    y,
			Text:     set.Localize(fmt.Sprintf("%04d", y)),
			Disabled: !bnd.containsYear(y),
		})
	}
	for m := 0; m < 12; m++ {
		name, err := set.Month(req.Kind, m)
		if err != nil {
			return Month{}, err
		}
		page.Months = append(page.Months, Choice{
			Value:    m,
			Text:     name,
			Disabled: !bnd.containsMonth(req.Year, m),
		})
	}
	return page, nil
}

func (b *Builder) cells(req Request, info calendar.MonthInfo, opts Options, bnd bounds, set *locale.Set) [][]Cell {
	rows := grid.Build(info)
	out := make([][]Cell, len(rows))
	for r, row := range rows {
		out[r] = make([]Cell, len(row))
		for c, g := range row {
			date := cellDate(req, g)
			cell := Cell{
				Day:      g.Day,
				Month:    g.Month,
				Text:     set.Number(g.Day),
				Weekday:  c,
				Disabled: !bnd.containsDay(date),
			}
			// The month before the first supported one has no length.
			if g.Day <= 0 {
				cell.Text = ""
			}
			if g.Month == grid.Current {
				cell.Today = date == opts.Today
				cell.Selected = opts.Selected != nil && date == *opts.Selected
			}
			out[r][c] = cell
		}
	}
	return out
}

// cellDate returns the full date a grid cell stands for.
func cellDate(req Request, c grid.Cell) calendar.Date {
	switch c.Month {
	case grid.Prev:
		req = req.PrevMonth()
	case grid.Next:
		req = req.NextMonth()
	}
	return calendar.Date{Year: req.Year, Month: req.Month, Day: c.Day}
}
