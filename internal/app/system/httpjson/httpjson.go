// Package httpjson standardizes JSON request decoding and response writing
// for all API handlers, including the mapping from the apierror taxonomy to
// HTTP status codes.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/volunhub/volunhub/internal/app/system/apierror"
	"go.uber.org/zap"
)

// ErrorResponse is the uniform error body for every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`   // machine-readable kind, e.g. "not_found"
	Message string `json:"message"` // human-readable description
}

// Write sends data as JSON with the given status. A nil data writes only the
// status line and headers.
func Write(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteMessage sends a plain {"message": ...} body, used by mutation
// endpoints that have nothing else to return.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	Write(w, status, map[string]string{"message": msg})
}

// WriteError maps err to the taxonomy and writes the matching status and
// body. Unrecognized errors become a generic 500 so internal detail never
// reaches clients; the caller is expected to have logged the original.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	kind := "internal_error"
	msg := "Server error"

	switch {
	case errors.Is(err, apierror.ErrNotFound):
		status, kind = http.StatusNotFound, "not_found"
	case errors.Is(err, apierror.ErrValidation):
		status, kind = http.StatusBadRequest, "validation_error"
	case errors.Is(err, apierror.ErrDuplicate):
		status, kind = http.StatusBadRequest, "duplicate"
	case errors.Is(err, apierror.ErrCapacity):
		status, kind = http.StatusBadRequest, "capacity"
	case errors.Is(err, apierror.ErrInvalidState):
		status, kind = http.StatusBadRequest, "invalid_state"
	case errors.Is(err, apierror.ErrForbidden):
		status, kind = http.StatusForbidden, "forbidden"
	case errors.Is(err, apierror.ErrUnauthorized):
		status, kind = http.StatusUnauthorized, "unauthorized"
	}

	var ae *apierror.Error
	if status != http.StatusInternalServerError && errors.As(err, &ae) {
		msg = ae.Message
	}

	Write(w, status, ErrorResponse{Error: kind, Message: msg})
}

// LogAndWriteError logs err at error level with the request path, then
// writes the mapped response. Use for persistence and other unexpected
// failures; taxonomy errors are fine to pass straight to WriteError.
func LogAndWriteError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, what string, err error) {
	logger.Error(what, zap.String("path", r.URL.Path), zap.Error(err))
	WriteError(w, err)
}

const maxBodyBytes = 1 << 20 // 1 MiB

// Decode reads the request body as JSON into dst. Malformed or oversized
// bodies come back as validation errors.
func Decode(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apierror.Validation("invalid JSON body")
	}
	return nil
}
