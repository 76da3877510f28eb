package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/devhussain7/medium-api/internal/api/shared"
)

// ErrInvalidPathID indicates a path parameter that is not a valid numeric id.
var ErrInvalidPathID = errors.New("invalid id path parameter")

// DecodeJSON decodes the request body into dst, rejecting bodies with
// unknown syntax. Unknown fields are ignored, matching the schema
// contracts ("all other fields ignored").
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("empty request body")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// getUserIDFromContext extracts the authenticated user's id from the
// request context. The id is placed there by the authentication
// middleware; a missing id means the route was wired without it.
func getUserIDFromContext(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}

// getPathID extracts a numeric id from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidPathID, paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive number", ErrInvalidPathID, paramName)
	}

	return id, nil
}
