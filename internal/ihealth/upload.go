package ihealth

import (
	"log/slog"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// FileField is the multipart form field the upload endpoint expects the qkview
// file under.
const FileField = "qkview"

// ErrUploadFailed is returned when the qkview upload is rejected or cannot be
// performed.
var ErrUploadFailed = errors.New("qkview upload failed")

// Upload POSTs the qkview file at path to the upload endpoint as a multipart
// form, authorized with the bearer token. When visible is true the qkview is
// shown in the iHealth UI. The response body is not inspected beyond the status.
func Upload(r *resty.Client, uploadURL, path, token string, visible bool) error {
	slog.Info("Uploading qkview file...", "path", path)

	req := r.R().
		SetAuthToken(token).
		SetFile(FileField, path)
	if visible {
		req.SetQueryParam("visible_in_gui", "true")
	}

	response, err := req.Post(uploadURL)
	if err != nil {
		return errors.WithMessagef(ErrUploadFailed, "error performing upload: %v", err)
	}

	if response.IsError() {
		return errors.WithMessagef(ErrUploadFailed, "upload response status code: %d", response.StatusCode())
	}

	slog.Info("Qkview file uploaded successfully", "status", response.StatusCode())

	return nil
}
