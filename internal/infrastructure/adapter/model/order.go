package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents the database model for bag-rate orders. The paired
// transaction lives in the transactions table under the same id.
type Order struct {
	OrderID                string          `gorm:"primaryKey;size:80"`
	NoBags                 int64           `gorm:"not null"`
	Rate                   decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	VehicleNo              string          `gorm:"size:50"`
	Status                 string          `gorm:"not null;size:20;default:INITIATED"`
	InitiatedDate          time.Time       `gorm:"not null;index:idx_orders_beneficiary_date,priority:2"`
	VerifiedDate           *time.Time
	InitiatedBy            string          `gorm:"not null;size:80"`
	VerifiedBy             *string         `gorm:"size:80"`
	InitiatedFor           string          `gorm:"not null;size:80;index:idx_orders_beneficiary_date,priority:1"`
	RecordStatus           int             `gorm:"not null;default:1"`
	RecordStatusModifiedBy *string         `gorm:"size:80"`
	Comments               string          `gorm:"size:80"`

	InitiatedByUser  User `gorm:"foreignKey:InitiatedBy;references:Username"`
	InitiatedForUser User `gorm:"foreignKey:InitiatedFor;references:Username"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}
