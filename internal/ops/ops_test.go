package ops

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/yshiga/tenjiban/internal/config"
	"github.com/yshiga/tenjiban/internal/db"
	"github.com/yshiga/tenjiban/internal/event"
	"github.com/yshiga/tenjiban/internal/venue"
)

// testToday pins the evaluation date so fixtures don't drift.
var testToday = event.NewDate(2025, time.September, 10)

func todayPtr() *event.Date {
	d := testToday
	return &d
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("db.Init failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func testTable() *venue.Table {
	return venue.DefaultTable()
}

var announceSeq int

// submitFixture stores a listing through Submit with sensible defaults
// overridden by mutate.
func submitFixture(t *testing.T, database *sql.DB, mutate func(*SubmitInput)) string {
	t.Helper()
	announceSeq++
	input := SubmitInput{
		Title:       "個展「春のキャンバス」",
		HostName:    "山田花子",
		Venue:       "ギャラリー青空",
		Prefecture:  "東京都",
		StartDate:   "2025-09-01",
		EndDate:     "2025-09-14",
		AnnounceURL: fmt.Sprintf("https://x.com/hanako/status/%d", announceSeq),
	}
	if mutate != nil {
		mutate(&input)
	}

	output, err := Submit(context.Background(), database, config.DefaultConfig(), input)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	return output.ID
}
