package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/imnexerio/i2step-backend/internal/domain/port/usecase"
)

// InitiateOrderRequest represents the body of POST /initiateorder. The
// transaction_id becomes both the order id and the id of the paired
// transaction.
type InitiateOrderRequest struct {
	TransactionID string          `json:"transaction_id" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	NoBags        int64           `json:"no_bags" binding:"required"`
	Rate          decimal.Decimal `json:"rate" binding:"required"`
	VehicleNo     string          `json:"vehicle_no"`
	InitiatedFor  string          `json:"initiated_for" binding:"required"`
	Comments      string          `json:"comments" binding:"required"`
}

// ModifyOrderRequest represents the body of POST /modifyorder
type ModifyOrderRequest struct {
	OrderID string `json:"order_id" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// DeleteOrderRequest represents the body of POST /modifyorder_delete
type DeleteOrderRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

// OrderMutationResponse acknowledges a successful order write
type OrderMutationResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

// OrderResponse is a single row of GET /getorders
type OrderResponse struct {
	OrderID       string          `json:"order_id"`
	NoBags        int64           `json:"no_bags"`
	Rate          decimal.Decimal `json:"rate"`
	VehicleNo     string          `json:"vehicle_no"`
	Status        string          `json:"status"`
	InitiatedDate time.Time       `json:"initiated_date"`
	VerifiedDate  string          `json:"verified_date"`
	InitiatedBy   string          `json:"initiated_by"`
	VerifiedBy    string          `json:"verified_by"`
	InitiatedFor  string          `json:"initiated_for"`
	Comments      string          `json:"comments"`
}

// FromOrderView maps a usecase projection to its API shape
func FromOrderView(v usecase.OrderView) OrderResponse {
	return OrderResponse{
		OrderID:       v.OrderID,
		NoBags:        v.NoBags,
		Rate:          v.Rate,
		VehicleNo:     v.VehicleNo,
		Status:        v.Status,
		InitiatedDate: v.InitiatedDate,
		VerifiedDate:  formatOptionalDate(v.VerifiedDate),
		InitiatedBy:   v.InitiatedBy,
		VerifiedBy:    v.VerifiedBy,
		InitiatedFor:  v.InitiatedFor,
		Comments:      v.Comments,
	}
}

// FromOrderViews maps a list of projections to API rows
func FromOrderViews(views []usecase.OrderView) []OrderResponse {
	result := make([]OrderResponse, 0, len(views))
	for _, v := range views {
		result = append(result, FromOrderView(v))
	}
	return result
}
