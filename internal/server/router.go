package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/joseph-ayodele/invoice-orders/constants"
	"github.com/joseph-ayodele/invoice-orders/internal/common"
	"github.com/joseph-ayodele/invoice-orders/internal/export"
	"github.com/joseph-ayodele/invoice-orders/internal/orders"
	"github.com/joseph-ayodele/invoice-orders/internal/upload"
)

// Deps are the services the HTTP API is built from.
type Deps struct {
	Orders       *orders.Service
	Uploads      *upload.Service
	Export       *export.Service
	AllowOrigins []string
	MaxBodyBytes int64
	Logger       *slog.Logger
}

// NewRouter wires middleware and routes onto a fresh gin engine.
func NewRouter(d Deps) *gin.Engine {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if d.MaxBodyBytes <= 0 {
		d.MaxBodyBytes = constants.MaxUploadBytesDefault
	}

	r := gin.New()
	r.MaxMultipartMemory = d.MaxBodyBytes
	r.Use(
		RequestID(),
		RequestLogger(logger),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			logger.Error("http.panic", "path", c.Request.URL.Path, "panic", recovered,
				"request_id", common.RequestIDFromContext(c.Request.Context()))
			respondWithError(c, http.StatusInternalServerError, "internal server error")
		}),
		cors.New(corsConfig(d.AllowOrigins)),
		BodyLimit(d.MaxBodyBytes),
	)

	api := r.Group("/api")
	api.GET("/health", Health)

	if d.Uploads != nil {
		uh := NewUploadHandler(d.Uploads, logger)
		api.POST("/upload", uh.Upload)
	}

	if d.Orders != nil {
		oh := NewOrderHandler(d.Orders, logger)
		api.GET("/orders", oh.List)
		api.POST("/orders", oh.Create)
		api.GET("/orders/:id", oh.Get)
		api.PUT("/orders/:id", oh.Update)
		api.DELETE("/orders/:id", oh.Delete)
	}

	if d.Export != nil {
		eh := NewExportHandler(d.Export, logger)
		api.GET("/export/orders", eh.ExportOrders)
	}

	r.NoRoute(func(c *gin.Context) {
		respondWithError(c, http.StatusNotFound, "Not found")
	})
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", common.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", common.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
