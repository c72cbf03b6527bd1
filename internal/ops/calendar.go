package ops

import (
	"context"
	"database/sql"
	"net/url"
	"strings"

	"github.com/yshiga/tenjiban/internal/db"
	"github.com/yshiga/tenjiban/internal/errors"
	"github.com/yshiga/tenjiban/internal/event"
)

// CalendarInput contains parameters for the CalendarURL operation.
type CalendarInput struct {
	ID string // required
}

// CalendarOutput contains the Google Calendar add-event URL.
type CalendarOutput struct {
	URL string `json:"url"`
}

// CalendarURL builds a Google Calendar add-event link for a stored
// listing.
func CalendarURL(ctx context.Context, database *sql.DB, input CalendarInput) (*CalendarOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	e, err := db.GetEventByID(ctx, database, id)
	if err != nil {
		return nil, err
	}

	return &CalendarOutput{URL: GoogleCalendarURL(e)}, nil
}

// GoogleCalendarURL builds the calendar.google.com render URL for an
// all-day event spanning the exhibition period. Google treats the end
// date as exclusive, so it is the day after the listing's end date.
func GoogleCalendarURL(e *event.Event) string {
	startDate := strings.ReplaceAll(e.StartDate.String(), "-", "")
	endDate := strings.ReplaceAll(e.EndDate.AddDays(1).String(), "-", "")

	location := deref(e.Address)
	if location == "" {
		location = e.Venue
	}

	var details strings.Builder
	if e.Venue != "" {
		details.WriteString("会場: " + e.Venue + "\n")
	}
	if host := deref(e.HostName); host != "" {
		details.WriteString("主催: " + host + "\n")
	}
	if price := deref(e.Price); price != "" {
		details.WriteString("料金: " + price + "\n")
	}
	if notes := deref(e.Notes); notes != "" {
		details.WriteString("\n" + notes + "\n")
	}
	details.WriteString("\n詳細情報: " + e.AnnounceURL)

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", e.Title)
	params.Set("dates", startDate+"/"+endDate)
	params.Set("details", details.String())
	params.Set("location", location)

	return "https://calendar.google.com/calendar/render?" + params.Encode()
}
