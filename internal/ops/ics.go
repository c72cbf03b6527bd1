package ops

import (
	"context"
	"database/sql"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/yshiga/tenjiban/internal/event"
	"github.com/yshiga/tenjiban/internal/venue"
)

// ExportICSInput contains parameters for the ExportICS operation. The
// filter tokens behave exactly as in List: unrecognized tokens fall
// back to the defaults.
type ExportICSInput struct {
	Range      string
	Prefecture string
	VenueType  string

	// Today overrides the evaluation date; nil means the current
	// local calendar date.
	Today *event.Date
}

// ExportICSOutput contains the serialized iCalendar feed.
type ExportICSOutput struct {
	Calendar string `json:"calendar"`
	Events   int    `json:"events"`
}

// ExportICS renders a filtered listing as an iCalendar feed of all-day
// events. DTEND is exclusive per RFC 5545, so it is the day after each
// listing's end date.
func ExportICS(ctx context.Context, database *sql.DB, table *venue.Table, input ExportICSInput) (*ExportICSOutput, error) {
	listing, err := List(ctx, database, table, ListInput{
		Range:      input.Range,
		Prefecture: input.Prefecture,
		VenueType:  input.VenueType,
		Limit:      MaxListLimit,
		Today:      input.Today,
	})
	if err != nil {
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//tenjiban//exhibition feed//JA")

	now := time.Now()
	for i := range listing.Items {
		e := &listing.Items[i].Event
		ev := cal.AddEvent(e.ID + "@tenjiban")
		ev.SetDtStampTime(now)
		ev.SetAllDayStartAt(e.StartDate.Time())
		ev.SetAllDayEndAt(e.EndDate.AddDays(1).Time())
		ev.SetSummary(e.Title)
		ev.SetLocation(icsLocation(e))
		ev.SetDescription(icsDescription(e))
		ev.SetURL(e.AnnounceURL)
	}

	return &ExportICSOutput{
		Calendar: cal.Serialize(),
		Events:   len(listing.Items),
	}, nil
}

// icsLocation prefers the street address, falling back to the venue.
func icsLocation(e *event.Event) string {
	if addr := deref(e.Address); addr != "" {
		return addr
	}
	return e.Venue
}

// icsDescription assembles the same detail block used for the Google
// Calendar link.
func icsDescription(e *event.Event) string {
	var b strings.Builder
	b.WriteString("会場: " + e.Venue)
	if host := deref(e.HostName); host != "" {
		b.WriteString("\n主催: " + host)
	}
	if price := deref(e.Price); price != "" {
		b.WriteString("\n料金: " + price)
	}
	if notes := deref(e.Notes); notes != "" {
		b.WriteString("\n\n" + notes)
	}
	b.WriteString("\n\n詳細情報: " + e.AnnounceURL)
	return b.String()
}
