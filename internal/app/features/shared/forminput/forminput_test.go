package forminput_test

import (
	"errors"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/features/shared/forminput"
	"github.com/dalemusser/projecthub/internal/domain/models"
)

func TestRead_JSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantName string // "" means nil
		wantKind models.ImageChangeKind
		wantErr  bool
	}{
		{"name only", `{"name":" Acme "}`, "Acme", models.ImageNoChange, false},
		{"clear image", `{"clearImage":true}`, "", models.ImageClear, false},
		{"empty url clears", `{"imageUrl":""}`, "", models.ImageClear, false},
		{"replace image", `{"imageUrl":"https://cdn.example.com/a.png"}`, "", models.ImageReplace, false},
		{"both url and clear", `{"imageUrl":"https://cdn.example.com/a.png","clearImage":true}`, "", 0, true},
		{"markup-only name", `{"name":"<b></b>"}`, "", 0, true},
		{"malformed", `{"name":`, "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("PATCH", "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			got, err := forminput.Read(httptest.NewRecorder(), req)

			if tt.wantErr {
				var verr *apierrors.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			switch {
			case tt.wantName == "" && got.Name != nil:
				t.Errorf("name: got %q, want nil", *got.Name)
			case tt.wantName != "" && (got.Name == nil || *got.Name != tt.wantName):
				t.Errorf("name: got %v, want %q", got.Name, tt.wantName)
			}
			if got.Image.Kind != tt.wantKind {
				t.Errorf("image kind: got %v, want %v", got.Image.Kind, tt.wantKind)
			}
		})
	}
}

func TestRead_Form(t *testing.T) {
	form := url.Values{"name": {"<i>Website</i>"}, "workspaceId": {"  abc  "}}
	req := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	got, err := forminput.Read(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got.Name == nil || *got.Name != "Website" {
		t.Errorf("name: got %v", got.Name)
	}
	if got.WorkspaceID != "abc" {
		t.Errorf("workspaceId: got %q", got.WorkspaceID)
	}
	if got.Image.Kind != models.ImageNoChange {
		t.Errorf("image kind: got %v", got.Image.Kind)
	}
}

func TestRead_LongName(t *testing.T) {
	form := url.Values{"name": {strings.Repeat("a", forminput.MaxNameLen+1)}}
	req := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if _, err := forminput.Read(httptest.NewRecorder(), req); err == nil {
		t.Error("expected an error for an over-long name")
	}
}
