package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/imnexerio/i2step-backend/internal/domain/error"
	coreport "github.com/imnexerio/i2step-backend/internal/domain/port/core"
	"github.com/imnexerio/i2step-backend/internal/domain/port/usecase"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/api/dto"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	ledgerService usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewOrderHandler creates a new order handler instance
func NewOrderHandler(ledgerService usecase.LedgerUseCase, logger coreport.Logger) *OrderHandler {
	return &OrderHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// List handles the GET /getorders endpoint
func (h *OrderHandler) List(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	views, err := h.ledgerService.ListOrders(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromOrderViews(views))
}

// Initiate handles the POST /initiateorder endpoint
func (h *OrderHandler) Initiate(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req dto.InitiateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domainerr.ErrMissingFields)
		return
	}

	orderID, err := h.ledgerService.InitiateOrder(c.Request.Context(), identity, usecase.InitiateOrderRequest{
		OrderID:       req.TransactionID,
		PaymentMethod: req.PaymentMethod,
		NoBags:        req.NoBags,
		Rate:          req.Rate,
		VehicleNo:     req.VehicleNo,
		InitiatedFor:  req.InitiatedFor,
		Comments:      req.Comments,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OrderMutationResponse{
		Message: "Order initiated successfully",
		OrderID: orderID,
	})
}

// Verify handles the POST /modifyorder endpoint
func (h *OrderHandler) Verify(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req dto.ModifyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domainerr.ErrInvalidStatus)
		return
	}

	err := h.ledgerService.VerifyOrder(c.Request.Context(), identity, usecase.ModifyRequest{
		ID:     req.OrderID,
		Status: req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrderMutationResponse{
		Message: "Order modified successfully",
		OrderID: req.OrderID,
	})
}

// Deactivate handles the POST /modifyorder_delete endpoint. Only the order
// row is touched; its paired transaction keeps flowing through the balance
// chain.
func (h *OrderHandler) Deactivate(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req dto.DeleteOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domainerr.ErrMissingFields)
		return
	}

	if err := h.ledgerService.DeactivateOrder(c.Request.Context(), identity, req.OrderID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrderMutationResponse{
		Message: "Order deactivated successfully",
		OrderID: req.OrderID,
	})
}
