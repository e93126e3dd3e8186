package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joseph-ayodele/invoice-orders/internal/upload"
)

type UploadHandler struct {
	svc    *upload.Service
	logger *slog.Logger
}

func NewUploadHandler(svc *upload.Service, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{svc: svc, logger: logger}
}

// Upload accepts a multipart "file" field and returns the extracted invoice.
func (h *UploadHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(c, http.StatusRequestEntityTooLarge, msgTooLarge)
			return
		}
		respondWithError(c, http.StatusBadRequest, upload.MsgNoFile)
		return
	}
	if err := upload.Validate(fh.Filename); err != nil {
		respondWithAppError(c, err, h.logger)
		return
	}

	f, err := fh.Open()
	if err != nil {
		respondWithAppError(c, err, h.logger)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			h.logger.Warn("upload.form_file_close_error", "error", err)
		}
	}()

	res, err := h.svc.Process(c.Request.Context(), fh.Filename, f)
	if err != nil {
		// extraction and I/O failures fall through to 500 with the message as-is
		respondWithAppError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"data":     res.Data,
		"filename": res.Filename,
	})
}
