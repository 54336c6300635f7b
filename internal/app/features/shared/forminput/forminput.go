// internal/app/features/shared/forminput/forminput.go
package forminput

import (
	"mime"
	"net/http"
	"strings"

	apierrors "github.com/dalemusser/projecthub/internal/app/features/errors"
	"github.com/dalemusser/projecthub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/projecthub/internal/app/system/imageupload"
	"github.com/dalemusser/projecthub/internal/app/system/jsonutil"
	"github.com/dalemusser/projecthub/internal/app/system/limits"
	"github.com/dalemusser/projecthub/internal/domain/models"
)

// MaxNameLen bounds project and workspace names after sanitizing.
const MaxNameLen = 256

// NameImage is the body shared by the project and workspace create/update
// endpoints. Name is nil when the request did not carry one.
type NameImage struct {
	Name        *string
	WorkspaceID string
	Image       models.ImageChange
}

type jsonNameImage struct {
	Name        *string `json:"name"`
	WorkspaceID string  `json:"workspaceId"`
	ImageURL    *string `json:"imageUrl"`
	ClearImage  bool    `json:"clearImage"`
}

// Read accepts multipart/form-data (the usual case, since it can carry an
// image file), urlencoded forms, or JSON.
func Read(w http.ResponseWriter, r *http.Request) (NameImage, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var in NameImage
	var err error
	if ct == "application/json" {
		in, err = readJSON(w, r)
	} else {
		in, err = readForm(w, r, ct)
	}
	if err != nil {
		return in, err
	}

	if in.Name != nil {
		name := htmlsanitize.PlainText(*in.Name)
		if name == "" {
			return in, apierrors.Invalid("name", "is required")
		}
		if len(name) > MaxNameLen {
			return in, apierrors.Invalid("name", "is too long")
		}
		in.Name = &name
	}
	in.WorkspaceID = strings.TrimSpace(in.WorkspaceID)
	return in, nil
}

func readJSON(w http.ResponseWriter, r *http.Request) (NameImage, error) {
	var body jsonNameImage
	if err := jsonutil.Decode(w, r, &body); err != nil {
		return NameImage{}, apierrors.Invalid("", err.Error())
	}
	in := NameImage{Name: body.Name, WorkspaceID: body.WorkspaceID}
	switch {
	case body.ClearImage && body.ImageURL != nil:
		return in, apierrors.Invalid("image", "set either imageUrl or clearImage, not both")
	case body.ClearImage:
		in.Image = models.ClearImage()
	case body.ImageURL != nil && *body.ImageURL == "":
		in.Image = models.ClearImage()
	case body.ImageURL != nil:
		if err := imageupload.ValidateURL(*body.ImageURL); err != nil {
			return in, apierrors.Invalid("imageUrl", err.Error())
		}
		in.Image = models.ReplaceImage(*body.ImageURL)
	}
	return in, nil
}

func readForm(w http.ResponseWriter, r *http.Request, ct string) (NameImage, error) {
	var in NameImage
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxImageUploadSize+limits.MaxMultipartMemory)
	var err error
	if ct == "multipart/form-data" {
		err = r.ParseMultipartForm(limits.MaxMultipartMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return in, apierrors.Invalid("", "invalid form data")
	}
	if _, ok := r.Form["name"]; ok {
		name := r.FormValue("name")
		in.Name = &name
	}
	in.WorkspaceID = r.FormValue("workspaceId")
	img, err := imageupload.FromForm(r)
	if err != nil {
		if imageupload.IsClientError(err) {
			return in, apierrors.Invalid("image", err.Error())
		}
		return in, err
	}
	in.Image = img
	return in, nil
}
