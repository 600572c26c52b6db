package period

import (
	"time"

	"github.com/SscSPs/mma_books/internal/core/domain"
)

// Recognized period tokens.
const (
	CurrentMonth   = "current-month"
	LastMonth      = "last-month"
	CurrentQuarter = "current-quarter"
	CurrentYear    = "current-year"
	LastYear       = "last-year"
	All            = "all"
)

// Range is an inclusive calendar-day range in YYYY-MM-DD form.
// An empty bound is open on that side; both empty means all time.
type Range struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Unbounded reports whether the range covers all time.
func (r Range) Unbounded() bool {
	return r.StartDate == "" && r.EndDate == ""
}

// Contains reports whether day (YYYY-MM-DD) falls within the range.
func (r Range) Contains(day string) bool {
	if r.StartDate != "" && day < r.StartDate {
		return false
	}
	if r.EndDate != "" && day > r.EndDate {
		return false
	}
	return true
}

// AsOf returns the cumulative range ending where r ends.
func (r Range) AsOf() Range {
	return Range{EndDate: r.EndDate}
}

// Known reports whether token is one of the recognized period tokens.
func Known(token string) bool {
	switch token {
	case CurrentMonth, LastMonth, CurrentQuarter, CurrentYear, LastYear, All:
		return true
	}
	return false
}

// Resolve maps a period token to its date range relative to now.
// Unknown tokens resolve as current-month; it never fails.
func Resolve(token string, now time.Time) Range {
	year, month, _ := now.Date()
	loc := now.Location()

	switch token {
	case All:
		return Range{}
	case LastMonth:
		start := time.Date(year, month-1, 1, 0, 0, 0, 0, loc)
		return monthsFrom(start, 1)
	case CurrentQuarter:
		firstMonth := time.Month((int(month)-1)/3*3 + 1)
		return monthsFrom(time.Date(year, firstMonth, 1, 0, 0, 0, 0, loc), 3)
	case CurrentYear:
		return monthsFrom(time.Date(year, time.January, 1, 0, 0, 0, 0, loc), 12)
	case LastYear:
		return monthsFrom(time.Date(year-1, time.January, 1, 0, 0, 0, 0, loc), 12)
	default:
		return monthsFrom(time.Date(year, month, 1, 0, 0, 0, 0, loc), 1)
	}
}

// monthsFrom spans n whole months starting at the first day start.
func monthsFrom(start time.Time, n int) Range {
	end := start.AddDate(0, n, -1)
	return Range{
		StartDate: start.Format(domain.DateLayout),
		EndDate:   end.Format(domain.DateLayout),
	}
}
