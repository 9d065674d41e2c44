package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentStatus is derived from amounts and dates, never set by hand.
type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "PENDING"
	InstallmentPartial InstallmentStatus = "PARTIAL"
	InstallmentPaid    InstallmentStatus = "PAID"
	InstallmentOverdue InstallmentStatus = "OVERDUE"
)

// InstallmentPlan describes a project's payment plan; generating it for a
// user creates one Installment per period.
type InstallmentPlan struct {
	ID               uint `gorm:"primaryKey"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ProjectID        uint            `gorm:"index;not null"`
	Title            string          `gorm:"size:255;not null"`
	InstallmentCount int             `gorm:"not null"`
	ShareAmount      decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	StartDate        time.Time       `gorm:"not null"`
	IntervalDays     int             `gorm:"not null;default:30"`
}

// Installment is a scheduled obligation owed by one user.
type Installment struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      uint  `gorm:"index;not null"`
	PlanID      *uint `gorm:"index"` // nil for ad hoc installments
	Title       string          `gorm:"size:255"`
	ShareAmount decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	DueDate     time.Time       `gorm:"not null;index"`
	// Status is the persisted snapshot of the derived status, refreshed on
	// every payment application and penalty run.
	Status   InstallmentStatus `gorm:"size:8;not null;default:PENDING;index"`
	Payments []Payment
	Penalty  *Penalty
}
