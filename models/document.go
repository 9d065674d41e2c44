package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind distinguishes opening and closing journal documents.
type DocumentKind string

const (
	DocumentOpening DocumentKind = "OPENING"
	DocumentClosing DocumentKind = "CLOSING"
)

// JournalDocument is an atomic set of debit/credit lines. Its lines must sum
// to equal debits and credits before commit; once committed all lines are
// posted together or not at all.
type JournalDocument struct {
	ID           uint `gorm:"primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ProjectID    uint         `gorm:"index;not null"`
	FiscalYearID *uint        `gorm:"index"`
	Kind         DocumentKind `gorm:"size:8;not null;index"`
	Date         time.Time    `gorm:"not null"`
	Description  string       `gorm:"size:512"`
	Reference    string       `gorm:"size:64;uniqueIndex"`
	// LastTransactionID anchors period-start replays: the highest transaction
	// id in the project at the moment this document was committed. Stored so a
	// closing with no nominal postings still marks where its period begins.
	LastTransactionID uint `gorm:"default:0"`
	Lines             []DocumentLine
}

// DocumentLine is one row of a journal document.
type DocumentLine struct {
	ID         uint `gorm:"primaryKey"`
	DocumentID uint `gorm:"index;not null"`
	AccountID  uint `gorm:"index;not null"`
	Debit      decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0"`
	Credit     decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0"`
}
