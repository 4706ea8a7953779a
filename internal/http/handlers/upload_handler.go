// Media upload HTTP handler.
//
//   - POST /upload  (multipart/form-data, field "file")
package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/fanclub-backend/internal/services"
)

// UploadResponse carries the public URL of a stored file.
type UploadResponse struct {
	URL     string `json:"url" example:"https://cdn.example.com/1712145600000-lou.jpg"`
	Success bool   `json:"success" example:"true"`
}

// Upload godoc
// @ID          uploadMedia
// @Summary     Upload a media file
// @Description Stores the file under "<unix millis>-<file name>" and returns its CDN URL.
// @Tags        Media
// @Accept      multipart/form-data
// @Produce     json
// @Param       file  formData  file  true  "File to upload"
// @Success     200   {object}  handlers.UploadResponse
// @Failure     400   {object}  handlers.ErrorResponse  "No file provided"
// @Failure     413   {object}  handlers.ErrorResponse  "File too large"
// @Failure     500   {object}  handlers.ErrorResponse  "Upload failed or CDN URL not configured"
// @Failure     503   {object}  handlers.ErrorResponse  "Storage not configured"
// @Router      /upload [post]
func (h *Handlers) Upload(c *gin.Context) {
	if !h.uploadSvc.Configured() {
		fail(c, http.StatusServiceUnavailable, ErrCodeUnconfigured, msgStorageUnconfigured, nil)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		if tooLarge(err) {
			fail(c, http.StatusRequestEntityTooLarge, ErrCodeTooLarge, msgFileTooLarge, nil)
			return
		}
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, msgNoFile, nil)
		return
	}

	f, err := fh.Open()
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, msgUploadFailed, err)
		return
	}
	defer f.Close()

	body, err := io.ReadAll(f)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, msgUploadFailed, err)
		return
	}

	url, err := h.uploadSvc.Save(c.Request.Context(), &services.Upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        body,
	})
	switch {
	case err == nil:
		ok(c, http.StatusOK, UploadResponse{URL: url, Success: true})
	case errors.Is(err, services.ErrUnconfigured):
		fail(c, http.StatusServiceUnavailable, ErrCodeUnconfigured, msgStorageUnconfigured, nil)
	case errors.Is(err, services.ErrNoFile):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, msgNoFile, nil)
	case errors.Is(err, services.ErrNoPublicURL):
		fail(c, http.StatusInternalServerError, ErrCodeInternal, msgNoCDN, err)
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, msgUploadFailed, err)
	}
}

// tooLarge reports whether err comes from an http.MaxBytesReader limit.
func tooLarge(err error) bool {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}
