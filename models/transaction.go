package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the side of a posting.
type TransactionType string

const (
	TransactionDebit  TransactionType = "DEBIT"
	TransactionCredit TransactionType = "CREDIT"
)

// JournalType classifies a posting for reporting views. It does not change
// how the posting is stored.
type JournalType string

const (
	JournalDaybook       JournalType = "DAYBOOK"
	JournalGeneralLedger JournalType = "GENERAL_LEDGER"
	JournalSubsidiary    JournalType = "SUBSIDIARY"
)

// Transaction is a single immutable posting against an account. Corrections
// are new offsetting transactions, never edits.
type Transaction struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	ProjectID   uint            `gorm:"index;not null"`
	AccountID   uint            `gorm:"index;not null"`
	Date        time.Time       `gorm:"not null;index"`
	Type        TransactionType `gorm:"size:8;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,2);not null"` // always > 0
	JournalType JournalType     `gorm:"size:16;not null;default:DAYBOOK"`
	DocumentID  *uint           `gorm:"index"` // set when posted through a journal document
	Description string          `gorm:"size:512"`
}
