package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	"github.com/BruksfildServices01/salon-booking/internal/media"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type MediaHandler struct {
	uploader media.Uploader
	clock    timezone.Clock
	log      *logging.Logger
}

// uploader nil => 503 (S3 não configurado).
func NewMediaHandler(uploader media.Uploader, clock timezone.Clock, log *logging.Logger) *MediaHandler {
	return &MediaHandler{uploader: uploader, clock: clock, log: log}
}

// UploadImage: multipart, campo "file". Devolve a URL pública do WebP.
func (h *MediaHandler) UploadImage(c *gin.Context) {
	if h.uploader == nil {
		httperr.ServiceUnavailable(c, "media_unavailable", "Image storage is not configured")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, media.MaxUploadBytes+(1<<20))

	fh, err := c.FormFile("file")
	if err != nil {
		writeBadRequest(c, "file", "is required")
		return
	}
	if fh.Size > media.MaxUploadBytes {
		httperr.Write(c, http.StatusRequestEntityTooLarge, "image_too_large", media.ErrTooLarge.Error())
		return
	}

	f, err := fh.Open()
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	defer f.Close()

	out, err := media.Process(f)
	switch {
	case errors.Is(err, media.ErrTooLarge):
		httperr.Write(c, http.StatusRequestEntityTooLarge, "image_too_large", err.Error())
		return
	case errors.Is(err, media.ErrUnsupportedFormat):
		writeBadRequest(c, "file", "must be a jpeg, png or webp image")
		return
	case err != nil:
		respondError(c, h.log, err)
		return
	}

	url, err := h.uploader.Upload(c.Request.Context(), media.NewKey(h.clock()), out, "image/webp")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
