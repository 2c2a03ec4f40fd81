// Package recurrence decides when a completed recurring todo should revert
// to incomplete. All comparisons use the local calendar, not elapsed time:
// a daily task completed at 23:59 is due again at 00:00.
package recurrence

import (
	"math"
	"time"
)

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// weekOfYear approximates ISO week numbering: weeks are counted in
// 7-day blocks from Jan 1, offset by Jan 1's weekday.
func weekOfYear(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	days := t.Sub(jan1).Hours() / 24
	return int(math.Ceil((days + float64(jan1.Weekday()) + 1) / 7))
}

func SameWeek(a, b time.Time) bool {
	return weekOfYear(a) == weekOfYear(b) && a.Year() == b.Year()
}

func SameMonth(a, b time.Time) bool {
	return a.Month() == b.Month() && a.Year() == b.Year()
}

// ShouldReset reports whether a todo completed at completedDate with the
// given recurrence period has crossed a period boundary by now. Incomplete
// todos and todos without a completion timestamp never reset.
func ShouldReset(completed bool, completedDate *time.Time, recurrence string, now time.Time) bool {
	if !completed || completedDate == nil {
		return false
	}

	switch recurrence {
	case "Daily":
		return !SameDay(now, *completedDate)
	case "Weekly":
		return !SameWeek(now, *completedDate)
	case "Monthly":
		return !SameMonth(now, *completedDate)
	default:
		return false
	}
}
