// Package date validates day/month/year triples and parses user-entered
// dates in D/M/YYYY form.
package date

import (
	"fmt"
	"regexp"
	"strconv"
)

// daysInMonth maps month (1-based) to its day count in a non-leap year.
var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// inputPattern accepts digits separated by slashes with flexible spacing
// around the slashes. Text after the year is ignored, matching the
// three-conversion scan the save format has always been parsed with.
var inputPattern = regexp.MustCompile(`^\s*(\d+)\s*/\s*(\d+)\s*/\s*(\d+)`)

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}

// IsValid reports whether day/month/year form a real calendar date.
// There is no upper bound on the year.
func IsValid(day, month, year int) bool {
	if year < 1 {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 {
		return false
	}
	if month == 2 && IsLeapYear(year) {
		return day <= 29
	}
	return day <= daysInMonth[month]
}

// Parse extracts a day/month/year triple from a user-entered line.
// It reports ok=false when the line does not match the expected syntax.
// Parse does not validate the calendar values; use IsValid for that.
func Parse(s string) (day, month, year int, ok bool) {
	m := inputPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, 0, false
	}
	month, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, 0, false
	}
	year, err = strconv.Atoi(m[3])
	if err != nil {
		return 0, 0, 0, false
	}
	return day, month, year, true
}

// Canonical renders a date in the unpadded D/M/YYYY form used for display
// and persistence, discarding whatever spacing the user typed.
func Canonical(day, month, year int) string {
	return fmt.Sprintf("%d/%d/%d", day, month, year)
}
