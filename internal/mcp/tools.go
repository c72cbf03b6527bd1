package mcp

import "github.com/mark3labs/mcp-go/mcp"

var listToolDef = mcp.NewTool("event_list",
	mcp.WithDescription("List published exhibition events with temporal, prefecture, and venue-type filters. Unrecognized filter tokens fall back to the defaults."),
	mcp.WithString("range",
		mcp.Description("Temporal bucket: upcoming (default), ongoing, thisWeek, thisMonth, next30, or all"),
	),
	mcp.WithString("prefecture",
		mcp.Description("Japanese prefecture name for exact matching, or all (default)"),
	),
	mcp.WithString("venue_type",
		mcp.Description("Venue type: all (default), major, or independent"),
	),
	mcp.WithBoolean("badges",
		mcp.Description("Include the computed venue-type badge per event"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Page size (default 50, max 200)"),
	),
	mcp.WithNumber("offset",
		mcp.Description("Page offset (default 0)"),
	),
)

var fetchToolDef = mcp.NewTool("event_fetch",
	mcp.WithDescription("Fetch a single exhibition event by ID, with its venue-type classification."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Event ULID"),
	),
)

var submitToolDef = mcp.NewTool("event_submit",
	mcp.WithDescription("Submit a new exhibition event. Required: title, venue, prefecture, start_date, end_date, announce_url."),
	mcp.WithString("title", mcp.Required(), mcp.Description("Exhibition title")),
	mcp.WithString("host_name", mcp.Description("Organizer or artist name")),
	mcp.WithString("venue", mcp.Required(), mcp.Description("Venue name")),
	mcp.WithString("address", mcp.Description("Street address")),
	mcp.WithString("prefecture", mcp.Required(), mcp.Description("One of the 47 Japanese prefectures")),
	mcp.WithString("price", mcp.Description("Admission info")),
	mcp.WithString("start_date", mcp.Required(), mcp.Description("First day, YYYY-MM-DD")),
	mcp.WithString("end_date", mcp.Required(), mcp.Description("Last day (inclusive), YYYY-MM-DD")),
	mcp.WithString("announce_url", mcp.Required(), mcp.Description("https link to the announcement post, on an allowed host")),
	mcp.WithString("x_url", mcp.Description("X/Twitter profile or post URL")),
	mcp.WithString("ig_url", mcp.Description("Instagram URL")),
	mcp.WithString("threads_url", mcp.Description("Threads URL")),
	mcp.WithString("notes", mcp.Description("Free-form markdown notes")),
)

var classifyToolDef = mcp.NewTool("event_classify",
	mcp.WithDescription("Classify a venue/title/host as major or independent, and optionally report the temporal buckets for a date span."),
	mcp.WithString("venue", mcp.Description("Venue name")),
	mcp.WithString("title", mcp.Description("Exhibition title")),
	mcp.WithString("host_name", mcp.Description("Organizer or artist name")),
	mcp.WithString("start_date", mcp.Description("First day, YYYY-MM-DD")),
	mcp.WithString("end_date", mcp.Description("Last day (inclusive), YYYY-MM-DD")),
)
