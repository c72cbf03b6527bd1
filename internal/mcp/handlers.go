package mcp

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/yshiga/tenjiban/internal/config"
	"github.com/yshiga/tenjiban/internal/errors"
	"github.com/yshiga/tenjiban/internal/ops"
	"github.com/yshiga/tenjiban/internal/venue"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	db    *sql.DB
	cfg   *config.Config
	table *venue.Table
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *sql.DB, cfg *config.Config, table *venue.Table) *Handlers {
	return &Handlers{db: db, cfg: cfg, table: table}
}

// Request types for each tool

// ListRequest represents the arguments for event_list.
type ListRequest struct {
	Range      string `json:"range,omitempty"`
	Prefecture string `json:"prefecture,omitempty"`
	VenueType  string `json:"venue_type,omitempty"`
	Badges     bool   `json:"badges,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

// FetchRequest represents the arguments for event_fetch.
type FetchRequest struct {
	ID string `json:"id"`
}

// SubmitRequest represents the arguments for event_submit.
type SubmitRequest struct {
	Title       string `json:"title"`
	HostName    string `json:"host_name,omitempty"`
	XURL        string `json:"x_url,omitempty"`
	IGURL       string `json:"ig_url,omitempty"`
	ThreadsURL  string `json:"threads_url,omitempty"`
	Venue       string `json:"venue"`
	Address     string `json:"address,omitempty"`
	Prefecture  string `json:"prefecture"`
	Price       string `json:"price,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	AnnounceURL string `json:"announce_url"`
	Notes       string `json:"notes,omitempty"`
}

// ClassifyRequest represents the arguments for event_classify.
type ClassifyRequest struct {
	Venue     string `json:"venue,omitempty"`
	Title     string `json:"title,omitempty"`
	HostName  string `json:"host_name,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Handler implementations

// HandleList handles the event_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.List(ctx, h.db, h.table, ops.ListInput{
		Range:      input.Range,
		Prefecture: input.Prefecture,
		VenueType:  input.VenueType,
		Badges:     input.Badges,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleFetch handles the event_fetch tool call.
func (h *Handlers) HandleFetch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FetchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Fetch(ctx, h.db, h.table, ops.FetchInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSubmit handles the event_submit tool call.
func (h *Handlers) HandleSubmit(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SubmitRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Submit(ctx, h.db, h.cfg, ops.SubmitInput{
		Title:       input.Title,
		HostName:    input.HostName,
		XURL:        input.XURL,
		IGURL:       input.IGURL,
		ThreadsURL:  input.ThreadsURL,
		Venue:       input.Venue,
		Address:     input.Address,
		Prefecture:  input.Prefecture,
		Price:       input.Price,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		AnnounceURL: input.AnnounceURL,
		Notes:       input.Notes,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleClassify handles the event_classify tool call.
func (h *Handlers) HandleClassify(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ClassifyRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Classify(h.table, ops.ClassifyInput{
		Venue:     input.Venue,
		Title:     input.Title,
		HostName:  input.HostName,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if bErr, ok := err.(*errors.BoardError); ok {
		errorObj := map[string]any{
			"code":    bErr.Code,
			"message": bErr.Message,
			"status":  bErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if bErr.Code != errors.ErrInternal && bErr.Details != nil {
			errorObj["details"] = bErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
