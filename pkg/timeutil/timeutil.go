// Package timeutil provides calendar-date utilities for deadline handling.
// Assignment due dates travel over the wire as bare YYYY-MM-DD values, so this
// package centralizes parsing, formatting, and the day-granularity arithmetic
// the dashboard needs. No external dependencies - uses only standard library.
package timeutil

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates (due dates, exam dates).
const DateLayout = "2006-01-02"

// Day is one calendar day expressed as a duration.
const Day = 24 * time.Hour

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay returns midnight of the given time, preserving its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysUntil returns the number of days from now until the deadline, rounding
// any partial day up. A deadline earlier than now yields a negative count;
// callers render it as-is rather than clamping to zero.
func DaysUntil(now, deadline time.Time) int {
	diff := deadline.Sub(now)
	days := diff / Day
	if diff%Day > 0 {
		days++
	}
	return int(days)
}

// AddDays returns t shifted by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// SameDate reports whether two times fall on the same calendar date
// in their respective locations.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
