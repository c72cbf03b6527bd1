// Package filter orchestrates temporal and venue classification over a
// candidate listing. Filtering is a sequence of pure, order-preserving
// predicate passes; the input order (start date ascending, from the
// store) is never changed.
package filter

import (
	"github.com/yshiga/tenjiban/internal/event"
	"github.com/yshiga/tenjiban/internal/temporal"
	"github.com/yshiga/tenjiban/internal/venue"
)

// Request is the validated filter selection for one query. Each field
// is independent; the zero value selects the defaults.
type Request struct {
	// Range selects the temporal bucket. Empty defaults to
	// temporal.RangeUpcoming, so expired listings never surface
	// unless the caller passes temporal.RangeAll explicitly.
	Range temporal.Range

	// Prefecture filters by exact prefecture equality. Empty or "all"
	// disables the filter.
	Prefecture string

	// VenueType keeps only major or only independent listings. Empty
	// or venue.TypeAll disables the filter.
	VenueType venue.Type
}

// Apply filters events for the given today. The passes run in a fixed
// order (range, prefecture, venue type) for determinism; each keeps
// the relative order of its input, so the result is always a
// subsequence of events. Period boundaries are computed once and
// reused across all candidates.
func Apply(today event.Date, events []event.Event, req Request, table *venue.Table) []event.Event {
	rng := req.Range
	if rng == "" {
		rng = temporal.RangeUpcoming
	}

	result := events
	if rng != temporal.RangeAll {
		window := temporal.NewWindow(today)
		result = keep(result, func(e event.Event) bool {
			return window.Matches(rng, e.StartDate, e.EndDate)
		})
	}

	if req.Prefecture != "" && req.Prefecture != "all" {
		result = keep(result, func(e event.Event) bool {
			return e.Prefecture == req.Prefecture
		})
	}

	if req.VenueType != "" && req.VenueType != venue.TypeAll {
		result = keep(result, func(e event.Event) bool {
			return table.Classify(e.Venue, e.Title, deref(e.HostName)) == req.VenueType
		})
	}

	return result
}

// keep returns the events satisfying pred, preserving order.
func keep(events []event.Event, pred func(event.Event) bool) []event.Event {
	result := make([]event.Event, 0, len(events))
	for _, e := range events {
		if pred(e) {
			result = append(result, e)
		}
	}
	return result
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
