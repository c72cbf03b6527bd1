// Package ops implements the operations behind the CLI, web API, and
// MCP tools: listing with classification filters, submission,
// classification inspection, and calendar exports.
package ops

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yshiga/tenjiban/internal/event"
)

// Pagination limits
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Pagination contains pagination metadata for list operations.
// Pagination is applied after filtering, so Total counts filtered
// listings, not stored rows.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
	Total   int  `json:"total"`
}

// generateULID creates a new ULID for a listing.
func generateULID() (string, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// resolveToday returns the override if set, otherwise the current
// local calendar date. Every operation evaluates all candidates
// against one consistent today.
func resolveToday(override *event.Date) event.Date {
	if override != nil {
		return *override
	}
	return event.Today()
}

// optional wraps a non-empty string in a pointer, mapping "" to nil.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
