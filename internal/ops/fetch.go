package ops

import (
	"context"
	"database/sql"
	"strings"

	"github.com/yshiga/tenjiban/internal/db"
	"github.com/yshiga/tenjiban/internal/errors"
	"github.com/yshiga/tenjiban/internal/event"
	"github.com/yshiga/tenjiban/internal/venue"
)

// FetchInput contains parameters for the Fetch operation.
type FetchInput struct {
	ID string // required
}

// FetchOutput contains a single listing plus its venue-type badge.
type FetchOutput struct {
	event.Event
	VenueType venue.Type `json:"venue_type"`
}

// Fetch retrieves one listing by ID.
func Fetch(ctx context.Context, database *sql.DB, table *venue.Table, input FetchInput) (*FetchOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	e, err := db.GetEventByID(ctx, database, id)
	if err != nil {
		return nil, err
	}

	return &FetchOutput{
		Event:     *e,
		VenueType: table.Classify(e.Venue, e.Title, deref(e.HostName)),
	}, nil
}
