package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/starford/miti/internal/apperr"
)

var dateRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[012])$`)

// ParseDate parses a YYYY-MM-DD string into a Date with a zero based month.
// Only the shape is checked; the year is validated against a Table by the
// caller.
func ParseDate(s string) (Date, error) {
	if !dateRe.MatchString(s) {
		return Date{}, fmt.Errorf("%q, expected YYYY-MM-DD: %w", s, apperr.ErrInvalidDateFormat)
	}
	parts := strings.Split(s, "-")
	y, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	d, _ := strconv.Atoi(parts[2])
	return Date{Year: y, Month: m - 1, Day: d}, nil
}
