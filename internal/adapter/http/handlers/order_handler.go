package handlers

import (
	"errors"
	"net/http"

	request "nexus_settlement/internal/adapter/http/dto/request"
	response "nexus_settlement/internal/adapter/http/dto/response"
	"nexus_settlement/internal/infrastructure/logger"
	"nexus_settlement/internal/usecase"
	"nexus_settlement/internal/usecase/interfaces"
	"nexus_settlement/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidOrderPayload  = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)
	errMissingUserQuery     = pkg.NewDomainErrorSimple("INVALID_REQUEST", "userId query parameter is required", http.StatusBadRequest)
)

// OrderHandler exposes order placement and delivery settlement.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// Place godoc
// @Summary      Place an order against a funded request
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        payload  body  request.PlaceOrderRequest  true  "Order"
// @Success      201  {object}  response.OrderResponse
// @Failure      400,404,409,502  {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) Place(c *gin.Context) {
	var payload request.PlaceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidOrderPayload.WithDetails(request.FormatValidationErrors(err)))
		return
	}

	order, err := h.usecase.Place(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	logger.FromGin(c).Info("[order][http] placed",
		zap.String("order_id", order.ID),
		zap.String("product_id", order.ProductID),
		zap.Int("quantity", order.Quantity),
	)
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// UpdateStatus godoc
// @Summary      Advance an order's status
// @Description  DELIVERED pays the supplier from the escrow account.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path  string                            true  "Order id"
// @Param        payload  body  request.UpdateOrderStatusRequest  true  "New status"
// @Success      200  {object}  response.OrderResponse
// @Failure      400,404,409,502  {object}  pkg.HTTPError
// @Router       /orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidStatusPayload.WithDetails(request.FormatValidationErrors(err)))
		return
	}

	order, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	logger.FromGin(c).Info("[order][http] status updated",
		zap.String("order_id", order.ID),
		zap.String("status", string(order.Status)),
		zap.Bool("supplier_paid", order.SupplierPaid),
	)
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// GetByID godoc
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "Order id"
// @Success      200  {object}  response.OrderViewResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetByID(c *gin.Context) {
	view, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrderView(view))
}

// ListByUser godoc
// @Summary      List orders where the user is funder or supplier
// @Tags         orders
// @Produce      json
// @Param        userId  query  string  true  "Funder or supplier id"
// @Success      200  {array}  response.OrderViewResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /orders [get]
func (h *OrderHandler) ListByUser(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		writeError(c, errMissingUserQuery)
		return
	}
	views, err := h.usecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrderViews(views))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrder),
		errors.Is(err, usecase.ErrInvalidOrderStatus),
		errors.Is(err, usecase.ErrInvalidStatusTransition),
		errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFundingRequestNotFound):
		return pkg.NewDomainErrorSimple("FUNDING_REQUEST_NOT_FOUND", "Funding request not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFundingRequestNotFunded):
		return pkg.NewDomainErrorSimple("FUNDING_REQUEST_NOT_FUNDED", "Funding request is not funded", http.StatusConflict)
	case errors.Is(err, interfaces.ErrStockConflict):
		return pkg.NewDomainError("STOCK_CONFLICT", "Product stock changed concurrently, retry", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainError("CONCURRENT_MODIFICATION", "Order changed concurrently, retry", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrEscrowNotConfigured):
		return pkg.NewDomainError("ESCROW_NOT_CONFIGURED", "Escrow account is not configured", err, http.StatusInternalServerError)
	}
	if appErr, ok := mapCollaboratorError(err); ok {
		return appErr
	}
	return internalError(err)
}
