package handler

import (
	"errors"
	"net/http"

	"confighub/internal/domain"
	svc "confighub/internal/domain/services/configsys"
	"confighub/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	var notFoundErr *domain.NotFoundError
	var httpErr domain.HTTPError

	switch {
	case errors.As(err, &notFoundErr):
		httputil.RespondErrorWithExtras(w, http.StatusNotFound, notFoundErr.Error(), map[string]interface{}{
			"resource": notFoundErr.Resource,
			"id":       notFoundErr.ID,
		})
	case errors.As(err, &httpErr):
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// parseBody decodes the request body, writing a 400 (or 413 for an
// oversized body) on failure. Returns false when the handler should stop.
func parseBody(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := httputil.ParseJSON(w, r, dest); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, httputil.ErrBodyTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		httputil.RespondError(w, status, err.Error())
		return false
	}
	return true
}

// optional maps the JSON tri-state onto the store's tri-state
func optional(o httputil.OptionalString) svc.OptionalString {
	return svc.OptionalString{Present: o.Present, Value: o.Value}
}
