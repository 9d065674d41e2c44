package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Penalty is the single live penalty row of an installment. Recomputation
// updates it in place; a second row for the same installment is a bug.
type Penalty struct {
	ID            uint `gorm:"primaryKey"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	InstallmentID uint            `gorm:"not null;uniqueIndex"`
	DaysLate      int             `gorm:"not null"`
	DailyRate     decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	TotalPenalty  decimal.Decimal `gorm:"type:decimal(20,2);not null"`
}
