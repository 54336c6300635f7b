package imageupload_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/projecthub/internal/app/system/imageupload"
	"github.com/dalemusser/projecthub/internal/app/system/limits"
	"github.com/dalemusser/projecthub/internal/domain/models"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestDataURL_PNG(t *testing.T) {
	got, err := imageupload.DataURL(bytes.NewReader(pngHeader), "image/png")
	if err != nil {
		t.Fatalf("DataURL failed: %v", err)
	}
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Errorf("unexpected data URL prefix: %q", got[:30])
	}
}

func TestDataURL_RejectsNonImage(t *testing.T) {
	_, err := imageupload.DataURL(strings.NewReader("hello, world"), "image/png")
	if !errors.Is(err, imageupload.ErrNotImage) {
		t.Errorf("expected ErrNotImage, got %v", err)
	}
}

func TestDataURL_RejectsOversize(t *testing.T) {
	big := append(append([]byte{}, pngHeader...), make([]byte, limits.MaxImageUploadSize)...)
	_, err := imageupload.DataURL(bytes.NewReader(big), "image/png")
	if !errors.Is(err, imageupload.ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
}

func TestFromForm_URLValues(t *testing.T) {
	tests := []struct {
		name    string
		form    url.Values
		want    models.ImageChangeKind
		wantURL string
		wantErr bool
	}{
		{"absent", url.Values{"name": {"x"}}, models.ImageNoChange, "", false},
		{"empty clears", url.Values{"image": {""}}, models.ImageClear, "", false},
		{"url replaces", url.Values{"image": {"https://cdn.example.com/a.png"}}, models.ImageReplace, "https://cdn.example.com/a.png", false},
		{"bad url", url.Values{"image": {"ftp://x"}}, models.ImageNoChange, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("PATCH", "/", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if err := req.ParseForm(); err != nil {
				t.Fatalf("ParseForm: %v", err)
			}
			got, err := imageupload.FromForm(req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err: got %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got.Kind != tt.want || got.URL != tt.wantURL {
				t.Errorf("got %+v, want kind %d url %q", got, tt.want, tt.wantURL)
			}
		})
	}
}

func TestFromForm_FilePart(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("name", "Roadmap")
	fw, err := mw.CreateFormFile("image", "logo.png")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	_, _ = fw.Write(pngHeader)
	_ = mw.Close()

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(limits.MaxMultipartMemory); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}

	got, err := imageupload.FromForm(req)
	if err != nil {
		t.Fatalf("FromForm failed: %v", err)
	}
	if got.Kind != models.ImageReplace || !strings.HasPrefix(got.URL, "data:image/png;base64,") {
		t.Errorf("unexpected change: kind %d url %.30q", got.Kind, got.URL)
	}
}
