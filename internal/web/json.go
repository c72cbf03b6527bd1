package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/yshiga/tenjiban/internal/errors"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

// errorBody is the JSON shape of an error response.
type errorBody struct {
	Error errorObject `json:"error"`
}

type errorObject struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Status  int            `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// writeError maps an error to a structured JSON error response.
// Internal error details are not exposed to avoid leaking file paths
// or SQL errors.
func writeError(w http.ResponseWriter, err error) {
	if bErr, ok := err.(*errors.BoardError); ok {
		body := errorBody{Error: errorObject{
			Code:    string(bErr.Code),
			Message: bErr.Message,
			Status:  bErr.Status,
		}}
		if bErr.Code != errors.ErrInternal {
			body.Error.Details = bErr.Details
		} else {
			body.Error.Message = "an internal error occurred"
			log.Printf("internal error: %v", bErr.Message)
		}
		writeJSON(w, bErr.Status, body)
		return
	}

	log.Printf("internal error: %v", err)
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: errorObject{
		Code:    string(errors.ErrInternal),
		Message: "an internal error occurred",
		Status:  http.StatusInternalServerError,
	}})
}
