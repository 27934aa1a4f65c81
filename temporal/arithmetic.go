package temporal

import "time"

// Calendar bounds for resolved instants; four-digit years keep every
// result expressible as an ISO 8601 literal.
const (
	minYear = 1
	maxYear = 9999
)

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func atClock(t time.Time, c clock) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, c.hour, c.minute, 0, 0, t.Location())
}

func addDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// addMonths moves t by n calendar months, clamping the day to the last day
// of the target month instead of overflowing into the next one.
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first.Month(), first.Year()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// startOfWeek returns midnight of the most recent weekStart on or before t
func startOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	back := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return addDays(startOfDay(t), -back)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// daysUntil counts days forward from one weekday to the next occurrence of
// another; 0 when they are equal.
func daysUntil(from, to time.Weekday) int {
	return (int(to) - int(from) + 7) % 7
}

// validDate reports whether year-month-day names a real Gregorian day
func validDate(year int, m time.Month, d int) bool {
	if m < time.January || m > time.December || d < 1 {
		return false
	}
	return d <= daysIn(m, year)
}

func inRange(t time.Time) bool {
	return t.Year() >= minYear && t.Year() <= maxYear
}
