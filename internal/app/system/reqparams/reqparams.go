// Package reqparams parses ObjectID path and query parameters.
package reqparams

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrMissing is wrapped by errors for absent required parameters.
var ErrMissing = errors.New("is required")

// URLID parses the chi URL parameter name as an ObjectID.
func URLID(r *http.Request, name string) (primitive.ObjectID, error) {
	return parseID(name, chi.URLParam(r, name))
}

// QueryID parses the required query parameter name as an ObjectID.
func QueryID(r *http.Request, name string) (primitive.ObjectID, error) {
	return parseID(name, r.URL.Query().Get(name))
}

// OptionalQueryID is QueryID that returns nil when the parameter is absent.
func OptionalQueryID(r *http.Request, name string) (*primitive.ObjectID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := parseID(name, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// OptionalQueryTime parses an RFC 3339 timestamp or a YYYY-MM-DD date.
func OptionalQueryTime(r *http.Request, name string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	t, err := ParseTime(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &t, nil
}

// ParseTime accepts RFC 3339 (with or without fractional seconds) or a bare
// YYYY-MM-DD date, which is taken as midnight UTC.
func ParseTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("must be an RFC 3339 timestamp or YYYY-MM-DD date")
}

// ParseID parses a body or form field as an ObjectID.
func ParseID(name, raw string) (primitive.ObjectID, error) {
	return parseID(name, raw)
}

func parseID(name, raw string) (primitive.ObjectID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return primitive.NilObjectID, fmt.Errorf("%s %w", name, ErrMissing)
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%s is not a valid id", name)
	}
	return id, nil
}
