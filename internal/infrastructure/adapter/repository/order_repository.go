package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
	errs "github.com/imnexerio/i2step-backend/internal/domain/error"
	coreport "github.com/imnexerio/i2step-backend/internal/domain/port/core"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/model"
)

// OrderRepository implements the order side of the ledger store using GORM
type OrderRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewOrderRepository creates a new OrderRepository instance
func NewOrderRepository(db *gorm.DB, logger coreport.Logger) *OrderRepository {
	return &OrderRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *OrderRepository) entityToModel(o *entity.Order) model.Order {
	return model.Order{
		OrderID:                o.OrderID,
		NoBags:                 o.NoBags,
		Rate:                   o.Rate,
		VehicleNo:              o.VehicleNo,
		Status:                 string(o.Status),
		InitiatedDate:          o.InitiatedDate,
		VerifiedDate:           o.VerifiedDate,
		InitiatedBy:            o.InitiatedBy,
		VerifiedBy:             o.VerifiedBy,
		InitiatedFor:           o.InitiatedFor,
		RecordStatus:           o.RecordStatus,
		RecordStatusModifiedBy: o.RecordStatusModifiedBy,
		Comments:               o.Comments,
	}
}

func (r *OrderRepository) modelToEntity(m *model.Order) *entity.Order {
	return &entity.Order{
		OrderID:                m.OrderID,
		NoBags:                 m.NoBags,
		Rate:                   m.Rate,
		VehicleNo:              m.VehicleNo,
		Status:                 entity.EventStatus(m.Status),
		InitiatedDate:          m.InitiatedDate,
		VerifiedDate:           m.VerifiedDate,
		InitiatedBy:            m.InitiatedBy,
		VerifiedBy:             m.VerifiedBy,
		InitiatedFor:           m.InitiatedFor,
		RecordStatus:           m.RecordStatus,
		RecordStatusModifiedBy: m.RecordStatusModifiedBy,
		Comments:               m.Comments,
	}
}

// Create saves a new order
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderModel := r.entityToModel(order)

	result := r.db.WithContext(ctx).Create(&orderModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate order id", map[string]any{
				"order_id": order.OrderID,
			})
			return errs.ErrDuplicateEvent
		}
		r.logger.Error("Failed to create order", map[string]any{
			"order_id": order.OrderID,
			"error":    result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return nil
}

// Update persists the mutable workflow fields of an existing order
func (r *OrderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderModel := r.entityToModel(order)

	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", order.OrderID).
		Updates(map[string]interface{}{
			"status":                    orderModel.Status,
			"verified_date":             orderModel.VerifiedDate,
			"verified_by":               orderModel.VerifiedBy,
			"record_status":             orderModel.RecordStatus,
			"record_status_modified_by": orderModel.RecordStatusModifiedBy,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update order", map[string]any{
			"order_id": order.OrderID,
			"error":    result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrOrderNotFound
	}

	return nil
}

// GetByID retrieves an order by its ID
func (r *OrderRepository) GetByID(ctx context.Context, orderID string) (*entity.Order, error) {
	var orderModel model.Order
	result := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&orderModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		r.logger.Error("Failed to get order", map[string]any{
			"order_id": orderID,
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&orderModel), nil
}

// ListActive returns every active order, newest first
func (r *OrderRepository) ListActive(ctx context.Context) ([]*entity.Order, error) {
	var models []model.Order
	result := r.db.WithContext(ctx).
		Where("record_status = ?", entity.RecordActive).
		Order("initiated_date DESC").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list active orders", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelsToEntities(models), nil
}

// ListActiveByBeneficiary returns the beneficiary's active orders, newest first
func (r *OrderRepository) ListActiveByBeneficiary(ctx context.Context, beneficiary string) ([]*entity.Order, error) {
	var models []model.Order
	result := r.db.WithContext(ctx).
		Where("initiated_for = ? AND record_status = ?", beneficiary, entity.RecordActive).
		Order("initiated_date DESC").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list active orders for beneficiary", map[string]any{
			"beneficiary": beneficiary,
			"error":       result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelsToEntities(models), nil
}

func (r *OrderRepository) modelsToEntities(models []model.Order) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for i := range models {
		orders = append(orders, r.modelToEntity(&models[i]))
	}
	return orders
}
