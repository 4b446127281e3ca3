package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/imovead/imovead/internal/repository"
	"github.com/imovead/imovead/internal/service"
	"github.com/imovead/imovead/internal/validation"
)

// Machine-readable error kinds surfaced to the RPC client.
const (
	KindUnauthorized = "UNAUTHORIZED"
	KindNotFound     = "NOT_FOUND"
	KindInvalidState = "INVALID_STATE"
	KindValidation   = "VALIDATION_ERROR"
	KindInternal     = "INTERNAL"
)

type errorBody struct {
	Kind    string            `json:"kind"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, kind, message string) {
	respondJSON(w, status, errorEnvelope{Error: errorBody{Kind: kind, Message: message}})
}

// respondServiceError maps layer errors to the wire error envelope.
// Not-owned and absent listings are deliberately indistinguishable so the
// API never leaks whether someone else's listing exists.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrs validation.Errors
	switch {
	case errors.As(err, &fieldErrs):
		respondJSON(w, http.StatusBadRequest, errorEnvelope{Error: errorBody{
			Kind:    KindValidation,
			Message: "invalid input",
			Fields:  fieldErrs,
		}})
	case errors.Is(err, repository.ErrPropertyNotFound):
		respondError(w, http.StatusNotFound, KindNotFound, "property not found")
	case errors.Is(err, service.ErrLastPhoto):
		respondError(w, http.StatusConflict, KindInvalidState, "property must have at least one photo")
	default:
		slog.Error("request failed", "error", err, "path", r.URL.Path)
		respondError(w, http.StatusInternalServerError, KindInternal, "internal error")
	}
}

// decodeBody reads the JSON request body into v; a malformed body is a
// validation failure from the caller's point of view.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil {
		respondError(w, http.StatusBadRequest, KindValidation, "invalid request body")
		return false
	}
	return true
}
