package ops

import (
	"context"
	"database/sql"
	"net/url"
	"strings"
	"time"

	"github.com/yshiga/tenjiban/internal/config"
	"github.com/yshiga/tenjiban/internal/db"
	"github.com/yshiga/tenjiban/internal/errors"
	"github.com/yshiga/tenjiban/internal/event"
)

// SubmitInput contains parameters for the Submit operation. Empty
// strings mean "not provided" for the optional fields.
type SubmitInput struct {
	Title       string // required
	HostName    string
	XURL        string
	IGURL       string
	ThreadsURL  string
	Venue       string // required
	Address     string
	Prefecture  string // required, one of the 47 prefectures
	Price       string
	StartDate   string // required, YYYY-MM-DD
	EndDate     string // required, YYYY-MM-DD, not before StartDate
	AnnounceURL string // required, https link on an allowed host
	Notes       string // optional markdown
}

// SubmitOutput contains the result of the Submit operation.
type SubmitOutput struct {
	ID string `json:"id"`
}

// Submit validates and stores a new listing. Date and URL validation
// happens here, at ingestion: the classification engine downstream
// assumes valid calendar dates and never re-validates them.
func Submit(ctx context.Context, database *sql.DB, cfg *config.Config, input SubmitInput) (*SubmitOutput, error) {
	var missing []string
	for _, field := range []struct {
		name, value string
	}{
		{"title", input.Title},
		{"venue", input.Venue},
		{"prefecture", input.Prefecture},
		{"start_date", input.StartDate},
		{"end_date", input.EndDate},
		{"announce_url", input.AnnounceURL},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.NewValidationFailed(missing)
	}

	if !event.IsPrefecture(input.Prefecture) {
		return nil, errors.NewInvalidRequest("prefecture must be one of the 47 Japanese prefectures")
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

	if err := validateAnnounceURL(cfg, input.AnnounceURL); err != nil {
		return nil, err
	}

	exists, err := db.AnnounceURLExists(ctx, database, input.AnnounceURL)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewDuplicateURL(input.AnnounceURL)
	}

	id, err := generateULID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	now := time.Now().Unix()
	e := &event.Event{
		ID:          id,
		Title:       input.Title,
		HostName:    optional(input.HostName),
		XURL:        optional(input.XURL),
		IGURL:       optional(input.IGURL),
		ThreadsURL:  optional(input.ThreadsURL),
		Venue:       input.Venue,
		Address:     optional(input.Address),
		Prefecture:  input.Prefecture,
		Price:       optional(input.Price),
		StartDate:   startDate,
		EndDate:     endDate,
		AnnounceURL: input.AnnounceURL,
		Notes:       optional(input.Notes),
		Status:      event.StatusPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := db.InsertEvent(ctx, database, e); err != nil {
		return nil, err
	}

	return &SubmitOutput{ID: id}, nil
}

// validateAnnounceURL enforces the strict announce-URL policy: https,
// and the host must be on the configured allowlist.
func validateAnnounceURL(cfg *config.Config, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return errors.NewInvalidRequest("announce_url is not a valid URL")
	}
	if parsed.Scheme != "https" {
		return errors.NewInvalidRequest("announce_url must use https")
	}
	if parsed.Host == "" || !cfg.AllowsAnnounceHost(parsed.Hostname()) {
		return errors.NewInvalidRequest("announce_url host is not on the allowlist")
	}
	return nil
}
