package errors_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/policy/workspacepolicy"
	projectstore "github.com/dalemusser/projecthub/internal/app/store/projects"
	"github.com/dalemusser/projecthub/internal/app/system/requestlog"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRespond(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"unauthorized", workspacepolicy.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"wrapped unauthorized", fmt.Errorf("guard: %w", workspacepolicy.ErrUnauthorized), http.StatusUnauthorized, "Unauthorized"},
		{"not found", projectstore.ErrNotFound, http.StatusNotFound, "Not found"},
		{"validation", apierrors.Invalid("name", "is required"), http.StatusBadRequest, "name: is required"},
		{"last member", apierrors.ErrLastMember, http.StatusConflict, apierrors.ErrLastMember.Error()},
		{"store failure", errors.New("socket closed"), http.StatusInternalServerError, "A database error occurred."},
	}

	errLog := apierrors.NewErrorLogger(zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/projects/x", nil)

			errLog.Respond(rec, req, "test failure", tt.err)

			if rec.Code != tt.status {
				t.Errorf("status: got %d, want %d", rec.Code, tt.status)
			}
			var body struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error != tt.message {
				t.Errorf("error: got %q, want %q", body.Error, tt.message)
			}
		})
	}
}

func TestRespond_ServerErrorHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	apierrors.NewErrorLogger(zap.NewNop()).Respond(rec, req, "list failed", errors.New("mongo: secret host 10.0.0.3"))

	if got := rec.Body.String(); strings.Contains(got, "10.0.0.3") {
		t.Errorf("internal detail leaked to client: %s", got)
	}
}

func TestRespond_LogsRequestID(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	errLog := apierrors.NewErrorLogger(zap.New(core))

	const id = "9b2f6c1e-3d4a-4f5b-8c7d-0e1f2a3b4c5d"
	h := requestlog.Middleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		errLog.Respond(w, r, "list failed", errors.New("socket closed"))
	}))
	req := httptest.NewRequest("GET", "/api/projects", nil)
	req.Header.Set(requestlog.Header, id)
	h.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("list failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["request_id"]; got != id {
		t.Errorf("request_id: got %v, want %s", got, id)
	}
}
