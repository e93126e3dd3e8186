package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/joseph-ayodele/invoice-orders/internal/common"
	"github.com/joseph-ayodele/invoice-orders/internal/entity"
	"github.com/joseph-ayodele/invoice-orders/internal/orders"
)

type OrderHandler struct {
	svc    *orders.Service
	logger *slog.Logger
}

func NewOrderHandler(svc *orders.Service, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, logger: logger}
}

func (h *OrderHandler) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondWithAppError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	order, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondWithAppError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var payload entity.InvoicePayload
	if err := bindJSON(c, &payload); err != nil {
		respondWithAppError(c, err, h.logger)
		return
	}
	id, err := h.svc.Create(c.Request.Context(), &payload)
	if err != nil {
		respondWithAppError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "orderId": id})
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var payload entity.OrderUpdate
	if err := bindJSON(c, &payload); err != nil {
		respondWithAppError(c, err, h.logger)
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, &payload); err != nil {
		respondWithAppError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondWithAppError(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// bindJSON decodes the body into v. Oversized bodies keep their
// *http.MaxBytesError so they map to 413; anything else is a 400.
func bindJSON(c *gin.Context, v any) error {
	err := c.ShouldBindJSON(v)
	if err == nil {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return common.InvalidInputErrorf("invalid request body: %v", err)
}

// orderID parses the :id segment. Anything but an integer is a missing order.
func orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusNotFound, msgNotFound)
		return 0, false
	}
	return id, true
}
