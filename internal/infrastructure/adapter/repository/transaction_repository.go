package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
	errs "github.com/imnexerio/i2step-backend/internal/domain/error"
	coreport "github.com/imnexerio/i2step-backend/internal/domain/port/core"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/model"
)

// TransactionRepository implements the transaction side of the ledger store
// using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(t *entity.Transaction) model.Transaction {
	return model.Transaction{
		TransactionID:          t.TransactionID,
		PaymentMethod:          t.PaymentMethod,
		Amount:                 t.Amount,
		Status:                 string(t.Status),
		InitiatedDate:          t.InitiatedDate,
		VerifiedDate:           t.VerifiedDate,
		InitiatedBy:            t.InitiatedBy,
		VerifiedBy:             t.VerifiedBy,
		InitiatedFor:           t.InitiatedFor,
		RecordStatus:           t.RecordStatus,
		RecordStatusModifiedBy: t.RecordStatusModifiedBy,
		TotalAmount:            t.TotalAmount,
		Comments:               t.Comments,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		TransactionID:          m.TransactionID,
		PaymentMethod:          m.PaymentMethod,
		Amount:                 m.Amount,
		Status:                 entity.EventStatus(m.Status),
		InitiatedDate:          m.InitiatedDate,
		VerifiedDate:           m.VerifiedDate,
		InitiatedBy:            m.InitiatedBy,
		VerifiedBy:             m.VerifiedBy,
		InitiatedFor:           m.InitiatedFor,
		RecordStatus:           m.RecordStatus,
		RecordStatusModifiedBy: m.RecordStatusModifiedBy,
		TotalAmount:            m.TotalAmount,
		Comments:               m.Comments,
	}
}

// Create saves a new transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate transaction id", map[string]any{
				"transaction_id": transaction.TransactionID,
			})
			return errs.ErrDuplicateEvent
		}
		r.logger.Error("Failed to create transaction", map[string]any{
			"transaction_id": transaction.TransactionID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return nil
}

// Update persists the mutable workflow fields of an existing transaction
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("transaction_id = ?", transaction.TransactionID).
		Updates(map[string]interface{}{
			"status":                    transactionModel.Status,
			"verified_date":             transactionModel.VerifiedDate,
			"verified_by":               transactionModel.VerifiedBy,
			"record_status":             transactionModel.RecordStatus,
			"record_status_modified_by": transactionModel.RecordStatusModifiedBy,
			"total_amount":              transactionModel.TotalAmount,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update transaction", map[string]any{
			"transaction_id": transaction.TransactionID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	return nil
}

// GetByID retrieves a transaction by its ID
func (r *TransactionRepository) GetByID(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&transactionModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get transaction", map[string]any{
			"transaction_id": transactionID,
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&transactionModel), nil
}

// ListByBeneficiary returns the beneficiary's full chain, deactivated rows
// included, newest first
func (r *TransactionRepository) ListByBeneficiary(ctx context.Context, beneficiary string) ([]*entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("initiated_for = ?", beneficiary).
		Order("initiated_date DESC").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list beneficiary chain", map[string]any{
			"beneficiary": beneficiary,
			"error":       result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelsToEntities(models), nil
}

// LatestActiveByBeneficiary returns the beneficiary's newest active
// transaction, locking the row on dialects that support SELECT FOR UPDATE
// so concurrent guard checks for the same beneficiary serialize.
func (r *TransactionRepository) LatestActiveByBeneficiary(ctx context.Context, beneficiary string) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := r.lockForUpdate(r.db.WithContext(ctx)).
		Where("initiated_for = ? AND record_status = ?", beneficiary, entity.RecordActive).
		Order("initiated_date DESC").
		First(&transactionModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get latest active transaction", map[string]any{
			"beneficiary": beneficiary,
			"error":       result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&transactionModel), nil
}

// ListActive returns every active transaction, newest first
func (r *TransactionRepository) ListActive(ctx context.Context) ([]*entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("record_status = ?", entity.RecordActive).
		Order("initiated_date DESC").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list active transactions", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelsToEntities(models), nil
}

// ListActiveByBeneficiary returns the beneficiary's active transactions, newest first
func (r *TransactionRepository) ListActiveByBeneficiary(ctx context.Context, beneficiary string) ([]*entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("initiated_for = ? AND record_status = ?", beneficiary, entity.RecordActive).
		Order("initiated_date DESC").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list active transactions for beneficiary", map[string]any{
			"beneficiary": beneficiary,
			"error":       result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelsToEntities(models), nil
}

func (r *TransactionRepository) modelsToEntities(models []model.Transaction) []*entity.Transaction {
	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, r.modelToEntity(&models[i]))
	}
	return transactions
}

// lockForUpdate adds a FOR UPDATE clause on postgres; sqlite (tests) runs
// serialized already and rejects the syntax
func (r *TransactionRepository) lockForUpdate(db *gorm.DB) *gorm.DB {
	if r.db.Dialector.Name() == "postgres" {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}
