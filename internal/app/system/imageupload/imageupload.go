// Package imageupload turns an uploaded project or workspace image into the
// reference stored in imageUrl.
//
// Binary storage is out of scope: an uploaded file is inlined as a base64
// data: URL. A plain string value is taken as an existing reference.
package imageupload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dalemusser/projecthub/internal/app/system/limits"
	"github.com/dalemusser/projecthub/internal/domain/models"
)

// FieldName is the form field carrying the image.
const FieldName = "image"

var (
	ErrTooLarge = fmt.Errorf("image must be at most %d KB", limits.MaxImageUploadSize>>10)
	ErrNotImage = errors.New("image must be a PNG, JPEG, GIF, WEBP or SVG file")
	ErrBadURL   = errors.New("image must be an http(s) URL or a data:image URL")
)

var allowed = map[string]bool{
	"image/png":     true,
	"image/jpeg":    true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// DataURL reads at most limits.MaxImageUploadSize bytes from rd and returns
// them as a data: URL.
func DataURL(rd io.Reader, declaredType string) (string, error) {
	b, err := io.ReadAll(io.LimitReader(rd, limits.MaxImageUploadSize+1))
	if err != nil {
		return "", err
	}
	if len(b) > limits.MaxImageUploadSize {
		return "", ErrTooLarge
	}
	if len(b) == 0 {
		return "", ErrNotImage
	}

	mime := http.DetectContentType(b)
	// DetectContentType reports SVG as text; trust the declared type only there.
	if strings.HasPrefix(mime, "text/") && declaredType == "image/svg+xml" {
		mime = declaredType
	}
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	if !allowed[mime] {
		return "", ErrNotImage
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}

// ValidateURL accepts http(s) URLs and data:image URLs.
func ValidateURL(s string) error {
	switch {
	case strings.HasPrefix(s, "https://"), strings.HasPrefix(s, "http://"):
		return nil
	case strings.HasPrefix(s, "data:image/"):
		if len(s) > limits.MaxImageUploadSize*4/3+64 {
			return ErrTooLarge
		}
		return nil
	}
	return ErrBadURL
}

// FromForm reads the image field of a parsed multipart or urlencoded form.
//
//	file part            → Replace(data URL)
//	non-empty value      → Replace(value)
//	present, empty value → Clear
//	absent               → NoChange
func FromForm(r *http.Request) (models.ImageChange, error) {
	if r.MultipartForm != nil {
		if fhs := r.MultipartForm.File[FieldName]; len(fhs) > 0 {
			fh := fhs[0]
			if fh.Size > limits.MaxImageUploadSize {
				return models.KeepImage(), ErrTooLarge
			}
			f, err := fh.Open()
			if err != nil {
				return models.KeepImage(), err
			}
			defer f.Close()
			url, err := DataURL(f, fh.Header.Get("Content-Type"))
			if err != nil {
				return models.KeepImage(), err
			}
			return models.ReplaceImage(url), nil
		}
	}

	vals, present := r.Form[FieldName]
	if !present {
		return models.KeepImage(), nil
	}
	v := ""
	if len(vals) > 0 {
		v = strings.TrimSpace(vals[0])
	}
	if v == "" {
		return models.ClearImage(), nil
	}
	if err := ValidateURL(v); err != nil {
		return models.KeepImage(), err
	}
	return models.ReplaceImage(v), nil
}

// IsClientError reports whether err came from bad input rather than I/O.
func IsClientError(err error) bool {
	return errors.Is(err, ErrTooLarge) || errors.Is(err, ErrNotImage) || errors.Is(err, ErrBadURL)
}
