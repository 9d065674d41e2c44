package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry holds the running balance of one account within a project.
// Positive means net debit under the account's nature convention. The row is
// created on the first posting against the account and mutated by every
// subsequent posting; it is never deleted while the account exists.
type LedgerEntry struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	ProjectID uint            `gorm:"not null;uniqueIndex:idx_project_account"`
	AccountID uint            `gorm:"not null;uniqueIndex:idx_project_account"`
	Balance   decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0"`
}
