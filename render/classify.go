// Package render maps in-memory snapshots of tasks and V2G requests into
// HTML fragments. Classification and filtering are pure functions of their
// input plus an explicit now; templates only see precomputed row values.
package render

import (
	"time"

	"lifeos/dashboard/types"
)

// Energy icons per level. Anything unrecognized renders as Medium.
const (
	iconEnergyLow    = "🌱"
	iconEnergyMedium = "⚡"
	iconEnergyHigh   = "🔥"
)

// dueDate parses the task's due date as a local calendar date. Backend dates
// are YYYY-MM-DD, sometimes with a time suffix; only the date part counts.
func dueDate(t types.Task) (time.Time, bool) {
	s := t.DueDate
	if len(s) > 10 {
		s = s[:10]
	}
	if s == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func startOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// IsOverdue reports whether the due date is strictly before today.
func IsOverdue(t types.Task, now time.Time) bool {
	d, ok := dueDate(t)
	return ok && d.Before(startOfDay(now))
}

// IsDueToday reports whether the due date is today's calendar date.
func IsDueToday(t types.Task, now time.Time) bool {
	d, ok := dueDate(t)
	return ok && d.Equal(startOfDay(now))
}

// RowClass picks the row highlight, first match wins:
// Done > Blocked > Overdue > DueToday.
func RowClass(t types.Task, now time.Time) string {
	switch {
	case t.Status == types.StatusDone:
		return "row-done"
	case t.Status == types.StatusBlocked:
		return "row-blocked"
	case IsOverdue(t, now):
		return "row-overdue"
	case IsDueToday(t, now):
		return "row-due-today"
	default:
		return ""
	}
}

// EnergyIcon maps an energy level to its symbol.
func EnergyIcon(level string) string {
	switch level {
	case types.EnergyLow:
		return iconEnergyLow
	case types.EnergyHigh:
		return iconEnergyHigh
	default:
		return iconEnergyMedium
	}
}
