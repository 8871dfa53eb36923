package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for ledger transactions.
// total_amount stays NULL until the event is verified.
type Transaction struct {
	TransactionID          string              `gorm:"primaryKey;size:80"`
	PaymentMethod          string              `gorm:"not null;size:50"`
	Amount                 decimal.Decimal     `gorm:"type:decimal(20,2);not null"`
	Status                 string              `gorm:"not null;size:20;default:INITIATED"`
	InitiatedDate          time.Time           `gorm:"not null;index:idx_transactions_beneficiary_date,priority:2"`
	VerifiedDate           *time.Time
	InitiatedBy            string              `gorm:"not null;size:80"`
	VerifiedBy             *string             `gorm:"size:80"`
	InitiatedFor           string              `gorm:"not null;size:80;index:idx_transactions_beneficiary_date,priority:1"`
	RecordStatus           int                 `gorm:"not null;default:1"`
	RecordStatusModifiedBy *string             `gorm:"size:80"`
	TotalAmount            decimal.NullDecimal `gorm:"type:decimal(20,2)"`
	Comments               string              `gorm:"size:80"`

	InitiatedByUser  User `gorm:"foreignKey:InitiatedBy;references:Username"`
	InitiatedForUser User `gorm:"foreignKey:InitiatedFor;references:Username"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
