package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joseph-ayodele/invoice-orders/internal/export"
)

type ExportHandler struct {
	svc    *export.Service
	logger *slog.Logger
}

func NewExportHandler(svc *export.Service, logger *slog.Logger) *ExportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportHandler{svc: svc, logger: logger}
}

// ExportOrders streams every order as an XLSX attachment.
func (h *ExportHandler) ExportOrders(c *gin.Context) {
	b, err := h.svc.ExportOrdersXLSX(c.Request.Context())
	if err != nil {
		respondWithAppError(c, err, h.logger)
		return
	}
	name := fmt.Sprintf("orders_%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, export.ContentType, b)
}
