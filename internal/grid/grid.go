// Package grid lays out a month as the fixed 6x7 cell grid used to render
// a calendar page.
package grid

import "github.com/starford/miti/internal/calendar"

// Rows and Cols are the fixed grid dimensions.
const (
	Rows = 6
	Cols = 7
)

// Position tags a cell with the month it belongs to.
type Position string

const (
	Prev    Position = "prev"
	Current Position = "current"
	Next    Position = "next"
)

// Cell is one day slot of the grid.
type Cell struct {
	Day   int      `json:"day"`
	Month Position `json:"month"`
}

// Build returns the 6x7 grid for a month, padding the first row with the
// tail of the previous month and the remaining cells with the head of the
// next month. Rows start on Sunday.
func Build(info calendar.MonthInfo) [][]Cell {
	cells := make([]Cell, Rows*Cols)
	next := 1
	for i := range cells {
		day := i + 1 - info.FirstWeekDay
		switch {
		case day <= 0:
			cells[i] = Cell{Day: info.PrevMonthDays + day, Month: Prev}
		case day > info.CurrentMonthDays:
			cells[i] = Cell{Day: next, Month: Next}
			next++
		default:
			cells[i] = Cell{Day: day, Month: Current}
		}
	}

	rows := make([][]Cell, Rows)
	for r := range rows {
		rows[r] = cells[r*Cols : (r+1)*Cols : (r+1)*Cols]
	}
	return rows
}

// Find returns the row and column of the current month's day, or false if
// the day is not on the grid.
func Find(rows [][]Cell, day int) (int, int, bool) {
	for r, row := range rows {
		for c, cell := range row {
			if cell.Month == Current && cell.Day == day {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
