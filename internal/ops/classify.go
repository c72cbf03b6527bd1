package ops

import (
	"github.com/yshiga/tenjiban/internal/errors"
	"github.com/yshiga/tenjiban/internal/event"
	"github.com/yshiga/tenjiban/internal/temporal"
	"github.com/yshiga/tenjiban/internal/venue"
)

// ClassifyInput contains parameters for the Classify operation.
// Venue is required; title and host name are optional. Start/end
// dates, when both given, additionally yield the temporal buckets.
type ClassifyInput struct {
	Venue     string
	Title     string
	HostName  string
	StartDate string
	EndDate   string

	// Today overrides the evaluation date for the temporal buckets.
	Today *event.Date
}

// ClassifyOutput details how a listing would be classified.
type ClassifyOutput struct {
	venue.Report
	Ranges []temporal.Range `json:"ranges,omitempty"`
}

// Classify runs both classifiers against ad-hoc input without touching
// storage. Venue classification never fails; absent text simply
// classifies as independent. Dates are only validated when provided.
func Classify(table *venue.Table, input ClassifyInput) (*ClassifyOutput, error) {
	out := &ClassifyOutput{
		Report: table.Inspect(input.Venue, input.Title, input.HostName),
	}

	if input.StartDate == "" && input.EndDate == "" {
		return out, nil
	}

	startDate, err := event.ParseDate(input.StartDate)
	if err != nil {
		return nil, errors.NewInvalidRequest(err.Error())
	}
	endDate, err := event.ParseDate(input.EndDate)
	if err != nil {
		return nil, errors.NewInvalidRequest(err.Error())
	}
	if endDate.Before(startDate) {
		return nil, errors.NewInvalidRequest("end_date must not be before start_date")
	}

	window := temporal.NewWindow(resolveToday(input.Today))
	out.Ranges = window.Classify(startDate, endDate)
	return out, nil
}
