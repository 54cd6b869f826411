package relay

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"avery/internal/logger"
	pkgerrors "avery/pkg/errors"
)

type Handler struct {
	Service Service
	Logger  logger.Logger
}

func NewHandler(service Service, log logger.Logger) *Handler {
	return &Handler{
		Service: service,
		Logger:  log,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/new-order", h.CreateOrder)
	router.GET("/orders", h.ListOrders)
}

// CreateOrder accepts a storefront order submission. The storefront contract
// is a {success,message} envelope: 200 on success, 500 on any failure.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req NewOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, pkgerrors.Wrap(err, pkgerrors.ErrValidation))
		return
	}

	if err := ValidateOrderSubmission(req); err != nil {
		h.fail(c, pkgerrors.Wrap(err, pkgerrors.ErrValidation))
		return
	}

	if _, err := h.Service.IngestOrder(c.Request.Context(), req.Submission()); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, OrderResponse{
		Success: true,
		Message: "Замовлення прийнято",
	})
}

// ListOrders returns every persisted order record.
func (h *Handler) ListOrders(c *gin.Context) {
	records, err := h.Service.ListOrders(c.Request.Context())
	if err != nil {
		h.Logger.ErrorwCtx(c.Request.Context(), "Failed to list orders", "error", err)
		c.JSON(pkgerrors.ToHTTPStatus(err), pkgerrors.ToErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *Handler) fail(c *gin.Context, err error) {
	h.Logger.ErrorwCtx(c.Request.Context(), "Order submission failed",
		"error", err,
		"path", c.Request.URL.Path)

	c.JSON(http.StatusInternalServerError, OrderResponse{
		Success: false,
		Message: failureMessage(err),
	})
}

// failureMessage surfaces validation details to the storefront; everything
// else gets a generic line so internals stay out of the response.
func failureMessage(err error) string {
	var appErr *pkgerrors.Error
	if errors.As(err, &appErr) && appErr.Code == pkgerrors.ErrValidation.Code && appErr.Cause != nil {
		return appErr.Cause.Error()
	}
	return "Не вдалося обробити замовлення"
}
