package db

import (
	"context"
	"database/sql"
	"strings"

	"github.com/yshiga/tenjiban/internal/errors"
	"github.com/yshiga/tenjiban/internal/event"
)

const eventColumns = `id, title, host_name, x_url, ig_url, threads_url,
	venue, address, prefecture, price, start_date, end_date,
	announce_url, notes, status, created_at, updated_at`

// InsertEvent stores a new listing.
func InsertEvent(ctx context.Context, db *sql.DB, e *event.Event) error {
	query := `
		INSERT INTO events (
			id, title, host_name, x_url, ig_url, threads_url,
			venue, address, prefecture, price, start_date, end_date,
			announce_url, notes, status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.ExecContext(ctx, query,
		e.ID, e.Title, toNullString(e.HostName), toNullString(e.XURL),
		toNullString(e.IGURL), toNullString(e.ThreadsURL),
		e.Venue, toNullString(e.Address), e.Prefecture, toNullString(e.Price),
		e.StartDate.String(), e.EndDate.String(),
		e.AnnounceURL, toNullString(e.Notes), string(e.Status),
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return errors.NewDuplicateURL(e.AnnounceURL)
		}
		return errors.NewInternal(err)
	}

	return nil
}

// GetEventByID retrieves a listing by its ULID, regardless of status.
func GetEventByID(ctx context.Context, db *sql.DB, id string) (*event.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`

	row := db.QueryRowContext(ctx, query, id)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(id)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return e, nil
}

// ListPublished retrieves published listings sorted by start date
// ascending, the order the filter engine expects and preserves.
// A non-empty prefecture is pushed down as a storage predicate; this
// is purely an optimization, the engine re-applies the same filter.
func ListPublished(ctx context.Context, db *sql.DB, prefecture string) ([]event.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE status = ?`
	args := []any{string(event.StatusPublished)}

	if prefecture != "" {
		query += " AND prefecture = ?"
		args = append(args, prefecture)
	}
	query += " ORDER BY start_date ASC, created_at ASC"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return events, nil
}

// AnnounceURLExists reports whether a listing with the given announce
// URL is already stored.
func AnnounceURLExists(ctx context.Context, db *sql.DB, url string) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM events WHERE announce_url = ?", url,
	).Scan(&count)
	if err != nil {
		return false, errors.NewInternal(err)
	}
	return count > 0, nil
}

// scanner abstracts sql.Row and sql.Rows for scanEvent.
type scanner interface {
	Scan(dest ...any) error
}

// scanEvent scans one event row.
func scanEvent(row scanner) (*event.Event, error) {
	var e event.Event
	var hostName, xURL, igURL, threadsURL, address, price, notes sql.NullString
	var startDate, endDate, status string

	err := row.Scan(
		&e.ID, &e.Title, &hostName, &xURL, &igURL, &threadsURL,
		&e.Venue, &address, &e.Prefecture, &price, &startDate, &endDate,
		&e.AnnounceURL, &notes, &status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.HostName = fromNullString(hostName)
	e.XURL = fromNullString(xURL)
	e.IGURL = fromNullString(igURL)
	e.ThreadsURL = fromNullString(threadsURL)
	e.Address = fromNullString(address)
	e.Price = fromNullString(price)
	e.Notes = fromNullString(notes)
	e.Status = event.Status(status)

	if e.StartDate, err = event.ParseDate(startDate); err != nil {
		return nil, err
	}
	if e.EndDate, err = event.ParseDate(endDate); err != nil {
		return nil, err
	}

	return &e, nil
}

// isUniqueConstraintError checks if the error is a SQLite UNIQUE constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	// SQLite returns "UNIQUE constraint failed: ..." for unique violations
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func toNullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
