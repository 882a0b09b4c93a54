package mcpserver

import (
	"fmt"
	"strings"

	"github.com/starford/miti/internal/format"
)

// FormatTokensContract documents the date conventions and layout tokens
// that tool callers should follow.
var FormatTokensContract = buildContract()

func buildContract() string {
	var b strings.Builder
	b.WriteString(`# Miti Date Contract

## Dates

- Dates are written ` + "`YYYY-MM-DD`" + ` with ASCII digits in both calendars.
- BS (Bikram Sambat) dates are supported from 2000-01-01 to 2090-12-30,
  AD dates from 1943-04-14 to 2034-04-13.
- Months are 1-12 in dates and in ` + "`month_calendar`" + `; weekdays count from 0 (Sunday).
- ` + "`lang`" + ` is ` + "`en`" + ` or ` + "`np`" + `; Nepali output uses Devanagari digits.
- ` + "`shift_date`" + ` units: day, week, month, year (or d, w, m, y). Negative
  values move backward. A day that does not exist in the target month rolls
  into the next month.

## Layout tokens

| Token | Meaning | Example (2080-01-15, en) |
|---|---|---|
`)
	for _, t := range format.Tokens {
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", t.Token, t.Description, t.Example)
	}
	b.WriteString(`
Any other text passes through unchanged. Wrap text in square brackets to keep
letters that would otherwise be read as tokens, e.g. ` + "`[Day] D`" + `.
`)
	return b.String()
}
