package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/yshiga/tenjiban/internal/errors"
	"github.com/yshiga/tenjiban/internal/event"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func testEvent(id, announceURL string, start, end event.Date) *event.Event {
	host := "山田花子"
	notes := "新作20点を展示します。"
	now := time.Now().Unix()
	return &event.Event{
		ID:          id,
		Title:       "個展「春のキャンバス」",
		HostName:    &host,
		Venue:       "ギャラリー青空",
		Prefecture:  "東京都",
		StartDate:   start,
		EndDate:     end,
		AnnounceURL: announceURL,
		Notes:       &notes,
		Status:      event.StatusPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestInsertAndGet(t *testing.T) {
	database := setupDB(t)
	ctx := context.Background()

	in := testEvent("01TEST", "https://x.com/hanako/status/1",
		event.NewDate(2025, time.September, 1), event.NewDate(2025, time.September, 14))
	if err := InsertEvent(ctx, database, in); err != nil {
		t.Fatalf("InsertEvent failed: %v", err)
	}

	got, err := GetEventByID(ctx, database, "01TEST")
	if err != nil {
		t.Fatalf("GetEventByID failed: %v", err)
	}

	if got.Title != in.Title {
		t.Errorf("Title = %q, want %q", got.Title, in.Title)
	}
	if got.HostName == nil || *got.HostName != "山田花子" {
		t.Errorf("HostName = %v", got.HostName)
	}
	if got.XURL != nil {
		t.Errorf("XURL = %v, want nil", got.XURL)
	}
	if !got.StartDate.Equal(in.StartDate) || !got.EndDate.Equal(in.EndDate) {
		t.Errorf("dates = %v..%v, want %v..%v", got.StartDate, got.EndDate, in.StartDate, in.EndDate)
	}
	if got.Status != event.StatusPublished {
		t.Errorf("Status = %q", got.Status)
	}
}

func TestGetEventByID_NotFound(t *testing.T) {
	database := setupDB(t)

	_, err := GetEventByID(context.Background(), database, "missing")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestInsertEvent_DuplicateAnnounceURL(t *testing.T) {
	database := setupDB(t)
	ctx := context.Background()

	url := "https://x.com/hanako/status/1"
	a := testEvent("01A", url, event.NewDate(2025, time.September, 1), event.NewDate(2025, time.September, 5))
	b := testEvent("01B", url, event.NewDate(2025, time.October, 1), event.NewDate(2025, time.October, 5))

	if err := InsertEvent(ctx, database, a); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	err := InsertEvent(ctx, database, b)
	if !errors.Is(err, errors.ErrDuplicateURL) {
		t.Errorf("err = %v, want DUPLICATE_URL", err)
	}
}

func TestListPublished_SortedByStartDate(t *testing.T) {
	database := setupDB(t)
	ctx := context.Background()

	// Insert out of chronological order
	dates := []event.Date{
		event.NewDate(2025, time.October, 1),
		event.NewDate(2025, time.September, 1),
		event.NewDate(2025, time.September, 15),
	}
	for i, d := range dates {
		e := testEvent("01SORT"+string(rune('A'+i)), "https://x.com/s/"+string(rune('a'+i)), d, d.AddDays(7))
		if err := InsertEvent(ctx, database, e); err != nil {
			t.Fatalf("insert %d failed: %v", i, err)
		}
	}

	events, err := ListPublished(ctx, database, "")
	if err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len = %d, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].StartDate.Before(events[i-1].StartDate) {
			t.Errorf("events not sorted by start date: %v before %v",
				events[i-1].StartDate, events[i].StartDate)
		}
	}
}

func TestListPublished_PrefecturePushdown(t *testing.T) {
	database := setupDB(t)
	ctx := context.Background()

	tokyo := testEvent("01T", "https://x.com/t/1", event.NewDate(2025, time.September, 1), event.NewDate(2025, time.September, 5))
	osaka := testEvent("01O", "https://x.com/o/1", event.NewDate(2025, time.September, 2), event.NewDate(2025, time.September, 6))
	osaka.Prefecture = "大阪府"

	for _, e := range []*event.Event{tokyo, osaka} {
		if err := InsertEvent(ctx, database, e); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	events, err := ListPublished(ctx, database, "大阪府")
	if err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}
	if len(events) != 1 || events[0].ID != "01O" {
		t.Errorf("events = %+v, want only the Osaka listing", events)
	}
}

func TestListPublished_ExcludesUnpublished(t *testing.T) {
	database := setupDB(t)
	ctx := context.Background()

	pending := testEvent("01P", "https://x.com/p/1", event.NewDate(2025, time.September, 1), event.NewDate(2025, time.September, 5))
	pending.Status = event.StatusPending
	if err := InsertEvent(ctx, database, pending); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	events, err := ListPublished(ctx, database, "")
	if err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("pending listing surfaced: %+v", events)
	}

	// But it is still fetchable by ID
	if _, err := GetEventByID(ctx, database, "01P"); err != nil {
		t.Errorf("GetEventByID failed for pending listing: %v", err)
	}
}

func TestAnnounceURLExists(t *testing.T) {
	database := setupDB(t)
	ctx := context.Background()

	exists, err := AnnounceURLExists(ctx, database, "https://x.com/none")
	if err != nil {
		t.Fatalf("AnnounceURLExists failed: %v", err)
	}
	if exists {
		t.Error("exists = true for unseen URL")
	}

	e := testEvent("01X", "https://x.com/seen", event.NewDate(2025, time.September, 1), event.NewDate(2025, time.September, 5))
	if err := InsertEvent(ctx, database, e); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	exists, err = AnnounceURLExists(ctx, database, "https://x.com/seen")
	if err != nil {
		t.Fatalf("AnnounceURLExists failed: %v", err)
	}
	if !exists {
		t.Error("exists = false for stored URL")
	}
}
