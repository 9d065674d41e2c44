package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one immutable application of money to an installment.
type Payment struct {
	ID            uint `gorm:"primaryKey"`
	CreatedAt     time.Time
	InstallmentID uint            `gorm:"index;not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	PaymentDate   time.Time       `gorm:"not null;index"`
	Description   string          `gorm:"size:512"`
	Reference     string          `gorm:"size:64;uniqueIndex"`
	// Receipted rows are informational placeholders for an uploaded receipt
	// and are excluded from the applied-amount sums.
	Receipted bool `gorm:"default:false"`
}
