// Package dateutil pins domain timestamps to calendar-day granularity.
// Ledger dates are stored at midnight UTC; the clock time of a movement
// lives in its own time_of_day column.
package dateutil

import "time"

// Day is t's calendar date at midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NormalizeRange widens [start, end] to whole days so a record dated
// anywhere inside the end day still falls within the range.
func NormalizeRange(start time.Time, end time.Time) (time.Time, time.Time) {
	return Day(start),
		time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, time.UTC)
}
