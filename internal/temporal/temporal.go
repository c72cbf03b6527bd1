// Package temporal classifies exhibition periods into named date-range
// buckets relative to a fixed "today". Buckets are not a partition: an
// event may fall into several at once, or none.
package temporal

import "github.com/yshiga/tenjiban/internal/event"

// Range identifies a named date-range bucket.
type Range string

const (
	// RangeUpcoming matches events that have not yet finished,
	// including events already in progress.
	RangeUpcoming Range = "upcoming"

	// RangeOngoing matches events in progress today.
	RangeOngoing Range = "ongoing"

	// RangeThisWeek matches events overlapping the calendar week
	// containing today (Sunday first) that have not yet finished.
	RangeThisWeek Range = "thisWeek"

	// RangeThisMonth matches events overlapping the calendar month
	// containing today that have not yet finished.
	RangeThisMonth Range = "thisMonth"

	// RangeNext30 matches events starting within the next 30 days,
	// inclusive. An event already underway does not qualify.
	RangeNext30 Range = "next30"

	// RangeAll is a filter-only sentinel that disables temporal
	// filtering. Classify never returns it. An "all time" request must
	// use this sentinel explicitly; an absent token means the default
	// filter, not "no filter".
	RangeAll Range = "all"
)

// Ranges lists the classification buckets in canonical order.
// RangeAll is excluded: it is a filter sentinel, not a bucket.
var Ranges = []Range{RangeUpcoming, RangeOngoing, RangeThisWeek, RangeThisMonth, RangeNext30}

// ParseRange validates a range token. Unrecognized tokens report
// ok=false so the caller can fall back to its default rather than fail.
func ParseRange(s string) (Range, bool) {
	switch Range(s) {
	case RangeUpcoming, RangeOngoing, RangeThisWeek, RangeThisMonth, RangeNext30, RangeAll:
		return Range(s), true
	}
	return "", false
}

// Window holds the period boundaries for one value of "today".
// Build it once per query and reuse it across all candidate events;
// the boundaries depend only on today, never on the events tested.
type Window struct {
	today      event.Date
	weekStart  event.Date
	weekEnd    event.Date
	monthStart event.Date
	monthEnd   event.Date
	horizon    event.Date // today + 30 days
}

// NewWindow computes the boundaries of the week, month, and 30-day
// horizon containing today. Weeks begin on Sunday.
func NewWindow(today event.Date) Window {
	weekStart := today.AddDays(-int(today.Weekday()))
	monthStart := event.NewDate(today.Year, today.Month, 1)
	return Window{
		today:      today,
		weekStart:  weekStart,
		weekEnd:    weekStart.AddDays(6),
		monthStart: monthStart,
		monthEnd:   event.NewDate(today.Year, today.Month+1, 0),
		horizon:    today.AddDays(30),
	}
}

// Today returns the date the window was built for.
func (w Window) Today() event.Date {
	return w.today
}

// Matches reports whether the inclusive interval [start, end] falls in
// the given bucket. RangeAll always matches.
func (w Window) Matches(r Range, start, end event.Date) bool {
	switch r {
	case RangeUpcoming:
		return !end.Before(w.today)
	case RangeOngoing:
		return !start.After(w.today) && !end.Before(w.today)
	case RangeThisWeek:
		return overlaps(start, end, w.weekStart, w.weekEnd) && !end.Before(w.today)
	case RangeThisMonth:
		return overlaps(start, end, w.monthStart, w.monthEnd) && !end.Before(w.today)
	case RangeNext30:
		return !start.Before(w.today) && !start.After(w.horizon)
	case RangeAll:
		return true
	}
	return false
}

// Classify returns every bucket the interval [start, end] belongs to,
// in canonical order.
func (w Window) Classify(start, end event.Date) []Range {
	var result []Range
	for _, r := range Ranges {
		if w.Matches(r, start, end) {
			result = append(result, r)
		}
	}
	return result
}

// overlaps reports whether the inclusive intervals [aStart, aEnd] and
// [bStart, bEnd] share at least one day.
func overlaps(aStart, aEnd, bStart, bEnd event.Date) bool {
	return !aEnd.Before(bStart) && !aStart.After(bEnd)
}
