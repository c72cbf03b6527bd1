package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yshiga/tenjiban/internal/config"
	"github.com/yshiga/tenjiban/internal/errors"
	"github.com/yshiga/tenjiban/internal/ops"
	"github.com/yshiga/tenjiban/internal/venue"
	"github.com/yshiga/tenjiban/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config, table *venue.Table) *cli.App {
	app := &cli.App{
		Name:    "tenjiban",
		Usage:   "Exhibition listing board",
		Version: Version,
		Commands: []*cli.Command{
			listCmd(db, table),
			submitCmd(db, cfg),
			classifyCmd(table),
			calendarURLCmd(db),
			exportICSCmd(db, table),
			serveCmd(db, cfg, table),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// listCmd creates the list command.
func listCmd(db *sql.DB, table *venue.Table) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List published events with filters",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "range", Aliases: []string{"r"}, Usage: "Range: upcoming|ongoing|thisWeek|thisMonth|next30|all (default: upcoming)"},
			&cli.StringFlag{Name: "prefecture", Aliases: []string{"p"}, Usage: "Prefecture name (default: all)"},
			&cli.StringFlag{Name: "venue-type", Usage: "Venue type: all|major|independent (default: all)"},
			&cli.BoolFlag{Name: "badges", Usage: "Include per-event venue-type badges"},
			&cli.IntFlag{Name: "limit", Usage: "Page size"},
			&cli.IntFlag{Name: "offset", Usage: "Page offset"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.List(c.Context, db, table, ops.ListInput{
				Range:      c.String("range"),
				Prefecture: c.String("prefecture"),
				VenueType:  c.String("venue-type"),
				Badges:     c.Bool("badges"),
				Limit:      c.Int("limit"),
				Offset:     c.Int("offset"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// submitCmd creates the submit command.
func submitCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "submit",
		Usage: "Submit a new event listing",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Exhibition title (required)"},
			&cli.StringFlag{Name: "host", Usage: "Organizer or artist name"},
			&cli.StringFlag{Name: "venue", Usage: "Venue name (required)"},
			&cli.StringFlag{Name: "address", Usage: "Street address"},
			&cli.StringFlag{Name: "prefecture", Aliases: []string{"p"}, Usage: "Prefecture (required)"},
			&cli.StringFlag{Name: "price", Usage: "Admission info"},
			&cli.StringFlag{Name: "start", Usage: "First day, YYYY-MM-DD (required)"},
			&cli.StringFlag{Name: "end", Usage: "Last day, YYYY-MM-DD (required)"},
			&cli.StringFlag{Name: "announce-url", Usage: "Announcement post URL (required)"},
			&cli.StringFlag{Name: "x-url", Usage: "X/Twitter URL"},
			&cli.StringFlag{Name: "ig-url", Usage: "Instagram URL"},
			&cli.StringFlag{Name: "threads-url", Usage: "Threads URL"},
			&cli.StringFlag{Name: "notes", Usage: "Free-form markdown notes"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Submit(c.Context, db, cfg, ops.SubmitInput{
				Title:       c.String("title"),
				HostName:    c.String("host"),
				XURL:        c.String("x-url"),
				IGURL:       c.String("ig-url"),
				ThreadsURL:  c.String("threads-url"),
				Venue:       c.String("venue"),
				Address:     c.String("address"),
				Prefecture:  c.String("prefecture"),
				Price:       c.String("price"),
				StartDate:   c.String("start"),
				EndDate:     c.String("end"),
				AnnounceURL: c.String("announce-url"),
				Notes:       c.String("notes"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// classifyCmd creates the classify command. It needs no database:
// classification is pure evaluation against the alias tables.
func classifyCmd(table *venue.Table) *cli.Command {
	return &cli.Command{
		Name:  "classify",
		Usage: "Classify a venue/title/host as major or independent",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "venue", Usage: "Venue name"},
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Exhibition title"},
			&cli.StringFlag{Name: "host", Usage: "Organizer or artist name"},
			&cli.StringFlag{Name: "start", Usage: "First day, YYYY-MM-DD (optional, reports temporal buckets)"},
			&cli.StringFlag{Name: "end", Usage: "Last day, YYYY-MM-DD"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Classify(table, ops.ClassifyInput{
				Venue:     c.String("venue"),
				Title:     c.String("title"),
				HostName:  c.String("host"),
				StartDate: c.String("start"),
				EndDate:   c.String("end"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// calendarURLCmd creates the calendar-url command.
func calendarURLCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "calendar-url",
		Usage:     "Print the Google Calendar add-event URL for a listing",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("id argument is required"))
			}

			output, err := ops.CalendarURL(c.Context, db, ops.CalendarInput{
				ID: c.Args().First(),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// exportICSCmd creates the export-ics command.
func exportICSCmd(db *sql.DB, table *venue.Table) *cli.Command {
	return &cli.Command{
		Name:  "export-ics",
		Usage: "Write a filtered listing as an iCalendar feed to stdout",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "range", Aliases: []string{"r"}, Usage: "Range token (default: upcoming)"},
			&cli.StringFlag{Name: "prefecture", Aliases: []string{"p"}, Usage: "Prefecture name"},
			&cli.StringFlag{Name: "venue-type", Usage: "Venue type: all|major|independent"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.ExportICS(c.Context, db, table, ops.ExportICSInput{
				Range:      c.String("range"),
				Prefecture: c.String("prefecture"),
				VenueType:  c.String("venue-type"),
			})
			if err != nil {
				return outputError(err)
			}

			fmt.Print(output.Calendar)
			return nil
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(db *sql.DB, cfg *config.Config, table *venue.Table) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the listing HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Value: 8700, Usage: "Listen port"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(db, cfg, table, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if bErr, ok := err.(*errors.BoardError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", bErr.Code, bErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
