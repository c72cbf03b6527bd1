package web

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"html"
	"net/http"
	"strconv"

	"github.com/yuin/goldmark"

	"github.com/yshiga/tenjiban/internal/config"
	"github.com/yshiga/tenjiban/internal/errors"
	"github.com/yshiga/tenjiban/internal/ops"
	"github.com/yshiga/tenjiban/internal/venue"
)

// Handlers contains HTTP route handlers for the listing API.
type Handlers struct {
	db      *sql.DB
	cfg     *config.Config
	table   *venue.Table
	version string
}

// HandleList handles GET /api/events: the filtered listing.
// Unrecognized range/prefecture/venue_type tokens fall back to the
// defaults instead of failing the request.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	input := ops.ListInput{
		Range:      r.URL.Query().Get("range"),
		Prefecture: r.URL.Query().Get("prefecture"),
		VenueType:  r.URL.Query().Get("venue_type"),
		Badges:     parseBoolParam(r, "badges"),
		Limit:      parseIntParam(r, "limit", ops.DefaultListLimit),
		Offset:     parseIntParam(r, "offset", 0),
	}

	result, err := ops.List(r.Context(), h.db, h.table, input)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "public, s-maxage=300, stale-while-revalidate=600")
	writeJSON(w, http.StatusOK, result)
}

// submitRequest is the POST /api/events body.
type submitRequest struct {
	Title       string `json:"title"`
	HostName    string `json:"host_name"`
	XURL        string `json:"x_url"`
	IGURL       string `json:"ig_url"`
	ThreadsURL  string `json:"threads_url"`
	Venue       string `json:"venue"`
	Address     string `json:"address"`
	Prefecture  string `json:"prefecture"`
	Price       string `json:"price"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	AnnounceURL string `json:"announce_url"`
	Notes       string `json:"notes"`
}

// HandleSubmit handles POST /api/events: new listing submission.
func (h *Handlers) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewInvalidRequest("request body must be valid JSON"))
		return
	}

	result, err := ops.Submit(r.Context(), h.db, h.cfg, ops.SubmitInput{
		Title:       req.Title,
		HostName:    req.HostName,
		XURL:        req.XURL,
		IGURL:       req.IGURL,
		ThreadsURL:  req.ThreadsURL,
		Venue:       req.Venue,
		Address:     req.Address,
		Prefecture:  req.Prefecture,
		Price:       req.Price,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		AnnounceURL: req.AnnounceURL,
		Notes:       req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// detailResponse is the GET /api/events/{id} body: the listing plus
// its markdown notes rendered to HTML.
type detailResponse struct {
	*ops.FetchOutput
	NotesHTML string `json:"notes_html,omitempty"`
}

// HandleDetail handles GET /api/events/{id}.
func (h *Handlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Fetch(r.Context(), h.db, h.table, ops.FetchInput{
		ID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	resp := detailResponse{FetchOutput: result}
	if result.Notes != nil {
		resp.NotesHTML = renderMarkdown(*result.Notes)
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleCalendar handles GET /api/events/{id}/calendar: redirect to
// the Google Calendar add-event URL.
func (h *Handlers) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	result, err := ops.CalendarURL(r.Context(), h.db, ops.CalendarInput{
		ID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	http.Redirect(w, r, result.URL, http.StatusFound)
}

// HandleICS handles GET /api/events.ics: iCalendar feed honoring the
// same filter params as the listing endpoint.
func (h *Handlers) HandleICS(w http.ResponseWriter, r *http.Request) {
	result, err := ops.ExportICS(r.Context(), h.db, h.table, ops.ExportICSInput{
		Range:      r.URL.Query().Get("range"),
		Prefecture: r.URL.Query().Get("prefecture"),
		VenueType:  r.URL.Query().Get("venue_type"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(result.Calendar))
}

// classifyRequest is the POST /api/classify body.
type classifyRequest struct {
	Venue     string `json:"venue"`
	Title     string `json:"title"`
	HostName  string `json:"host_name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// HandleClassify handles POST /api/classify: ad-hoc classification,
// used by the submission form to preview the venue-type badge.
func (h *Handlers) HandleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewInvalidRequest("request body must be valid JSON"))
		return
	}

	result, err := ops.Classify(h.table, ops.ClassifyInput{
		Venue:     req.Venue,
		Title:     req.Title,
		HostName:  req.HostName,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// renderMarkdown converts markdown text to HTML using goldmark.
func renderMarkdown(md string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return html.EscapeString(md)
	}
	return buf.String()
}

// parseIntParam parses an integer query parameter with a default.
func parseIntParam(r *http.Request, name string, def int) int {
	value := r.URL.Query().Get(name)
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}

// parseBoolParam parses a boolean query parameter, defaulting to false.
func parseBoolParam(r *http.Request, name string) bool {
	value := r.URL.Query().Get(name)
	if value == "" {
		return false
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return b
}
