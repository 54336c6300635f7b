package projectanalytics

import "time"

// Period is a closed time interval [Start, End].
type Period struct {
	Start time.Time
	End   time.Time
}

// MonthOf returns the calendar month containing t, in t's location. End is
// the last nanosecond of the month.
func MonthOf(t time.Time) Period {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return Period{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}
}

// CurrentAndPrevious returns the calendar month containing now and the one
// before it. The previous month is derived from the first of the current
// month, so Mar 31 maps to February rather than overflowing into March.
func CurrentAndPrevious(now time.Time) (current, previous Period) {
	current = MonthOf(now)
	previous = MonthOf(current.Start.AddDate(0, -1, 0))
	return current, previous
}
