package models

import "time"

// Project is the scoping unit for a chart of accounts and its ledgers.
// All accounting state hangs off a project; fiscal years subdivide it.
type Project struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`
	Name        string     `gorm:"size:255;not null"`
	Description string     `gorm:"size:512"`
	OwnerID     uint       `gorm:"index;not null"` // FK to users.id
	FiscalYears []FiscalYear
}
