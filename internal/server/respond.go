package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joseph-ayodele/invoice-orders/internal/common"
)

const (
	msgNotFound = "Order not found"
	msgTooLarge = "File too large"
)

func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondWithAppError maps an error to 400, 404, 413 or 500. The error text
// is surfaced verbatim.
func respondWithAppError(c *gin.Context, err error, logger *slog.Logger) {
	_ = c.Error(err)
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		respondWithError(c, http.StatusRequestEntityTooLarge, msgTooLarge)
	case common.IsNotFound(err):
		respondWithError(c, http.StatusNotFound, msgNotFound)
	case common.IsInvalidInput(err):
		respondWithError(c, http.StatusBadRequest, err.Error())
	default:
		logger.Error("http.internal_error",
			"path", c.Request.URL.Path,
			"request_id", common.RequestIDFromContext(c.Request.Context()),
			"error", err,
		)
		respondWithError(c, http.StatusInternalServerError, err.Error())
	}
}
