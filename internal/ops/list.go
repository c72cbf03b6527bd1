package ops

import (
	"context"
	"database/sql"

	"github.com/yshiga/tenjiban/internal/db"
	"github.com/yshiga/tenjiban/internal/event"
	"github.com/yshiga/tenjiban/internal/filter"
	"github.com/yshiga/tenjiban/internal/temporal"
	"github.com/yshiga/tenjiban/internal/venue"
)

// ListInput contains parameters for the List operation. The token
// fields arrive as raw request strings; unrecognized tokens fall back
// to the defaults rather than erroring, so a malformed request still
// yields the default listing.
type ListInput struct {
	Range      string // default: "upcoming"; "all" disables the temporal filter
	Prefecture string // default: all prefectures
	VenueType  string // default: "all"
	Badges     bool   // include a venue-type badge per listing
	Limit      int    // default: 50, max: 200
	Offset     int    // default: 0

	// Today overrides the evaluation date; nil means the current
	// local calendar date.
	Today *event.Date
}

// ListItem is one listing in a List result, optionally carrying the
// computed venue-type badge.
type ListItem struct {
	event.Event
	VenueType venue.Type `json:"venue_type,omitempty"`
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items      []ListItem     `json:"items"`
	Pagination Pagination     `json:"pagination"`
	Range      temporal.Range `json:"range"`
	VenueType  venue.Type     `json:"venue_type"`
	Sort       string         `json:"sort"`
}

// List retrieves published listings and applies the classification
// filters. The store returns candidates sorted by start date
// ascending; filtering preserves that order.
func List(ctx context.Context, database *sql.DB, table *venue.Table, input ListInput) (*ListOutput, error) {
	// Resolve tokens leniently: unknown tokens mean the default
	rng := temporal.RangeUpcoming
	if tok, ok := temporal.ParseRange(input.Range); ok {
		rng = tok
	}
	venueType := venue.TypeAll
	if t, ok := venue.ParseType(input.VenueType); ok {
		venueType = t
	}
	prefecture := input.Prefecture
	if prefecture == "all" || !event.IsPrefecture(prefecture) {
		prefecture = ""
	}

	// Apply limit defaults and bounds
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	offset := max(input.Offset, 0)

	// Prefecture is pushed down to the store; the engine re-applies it
	candidates, err := db.ListPublished(ctx, database, prefecture)
	if err != nil {
		return nil, err
	}

	filtered := filter.Apply(resolveToday(input.Today), candidates, filter.Request{
		Range:      rng,
		Prefecture: prefecture,
		VenueType:  venueType,
	}, table)

	total := len(filtered)
	page := paginate(filtered, limit, offset)

	items := make([]ListItem, 0, len(page))
	for _, e := range page {
		item := ListItem{Event: e}
		if input.Badges {
			item.VenueType = table.Classify(e.Venue, e.Title, deref(e.HostName))
		}
		items = append(items, item)
	}

	return &ListOutput{
		Items: items,
		Pagination: Pagination{
			Limit:   limit,
			Offset:  offset,
			HasMore: offset+len(page) < total,
			Total:   total,
		},
		Range:     rng,
		VenueType: venueType,
		Sort:      "start_date_asc",
	}, nil
}

// paginate slices events to one page, preserving order.
func paginate(events []event.Event, limit, offset int) []event.Event {
	if offset >= len(events) {
		return nil
	}
	end := min(offset+limit, len(events))
	return events[offset:end]
}
