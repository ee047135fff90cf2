package utils

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"STOREHUB_BACK-END/internal/apperr"
	"STOREHUB_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes the uniform failure envelope
func WriteErrorResponse(w http.ResponseWriter, status int, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Success: false, Message: message})
}

// WriteError translates a service-layer error into a status code and
// envelope. Internal failures are logged with their cause; the client
// only ever sees the taxonomy message.
func WriteError(w http.ResponseWriter, err error) {
	if apperr.KindOf(err) == apperr.KindInternal {
		log.Printf("internal error: %v", err)
	}
	WriteErrorResponse(w, apperr.StatusCode(err), apperr.ClientMessage(err))
}

// DecodeJSONRequest decodes the request body into dst. On failure it
// writes a 400 response and returns the error, so callers just return.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			WriteErrorResponse(w, http.StatusBadRequest, "Request body is required.")
			return err
		}
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body.")
		return err
	}
	return nil
}
