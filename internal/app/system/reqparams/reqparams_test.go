package reqparams_test

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/projecthub/internal/app/system/reqparams"
	"github.com/dalemusser/projecthub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestURLID(t *testing.T) {
	id := primitive.NewObjectID()
	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/", nil), "projectId", id.Hex())

	got, err := reqparams.URLID(req, "projectId")
	if err != nil {
		t.Fatalf("URLID failed: %v", err)
	}
	if got != id {
		t.Errorf("got %s, want %s", got.Hex(), id.Hex())
	}

	bad := testutil.WithChiURLParam(httptest.NewRequest("GET", "/", nil), "projectId", "nope")
	if _, err := reqparams.URLID(bad, "projectId"); err == nil {
		t.Error("expected error for malformed id")
	}
}

func TestQueryID_Missing(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/projects", nil)
	_, err := reqparams.QueryID(req, "workspaceId")
	if !errors.Is(err, reqparams.ErrMissing) {
		t.Errorf("expected ErrMissing, got %v", err)
	}
}

func TestOptionalQueryID(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/tasks?projectId=", nil)
	got, err := reqparams.OptionalQueryID(req, "projectId")
	if err != nil || got != nil {
		t.Errorf("expected (nil, nil) for empty param, got (%v, %v)", got, err)
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-06-15", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-06-15T10:30:00Z", time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-06-15T10:30:00.250+02:00", time.Date(2024, 6, 15, 8, 30, 0, 250_000_000, time.UTC)},
	}
	for _, tt := range tests {
		got, err := reqparams.ParseTime(tt.in)
		if err != nil {
			t.Errorf("ParseTime(%q) failed: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := reqparams.ParseTime("June 15"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
