// Package handlers provides HTTP handlers for the alnstats API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aria-lang/alnstats-go/internal/reportstore"
	"github.com/aria-lang/alnstats-go/internal/sequence"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), ErrorResponse{Error: err.Error()})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var (
		invalidPath  *sequence.InvalidPathError
		noFiles      *sequence.NoMatchingFilesError
		invalidInput *sequence.InvalidInputError
		mismatch     *sequence.LengthMismatchError
		insufficient *sequence.InsufficientSequencesError
		duplicate    *sequence.DuplicateIDError
		malformed    *sequence.MalformedRecordError
	)
	switch {
	case errors.Is(err, reportstore.ErrNotFound), errors.As(err, &invalidPath):
		return http.StatusNotFound
	case errors.As(err, &invalidInput):
		return http.StatusBadRequest
	case errors.As(err, &noFiles), errors.As(err, &mismatch), errors.As(err, &insufficient),
		errors.As(err, &duplicate), errors.As(err, &malformed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &sequence.InvalidInputError{Param: "request body", Reason: err.Error()}
	}
	return nil
}
