package models

import "time"

// FiscalYear is an optional accounting period scope under a project.
type FiscalYear struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	ProjectID uint      `gorm:"index;not null"`
	Label     string    `gorm:"size:32;not null"` // e.g. "2026"
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	Closed    bool      `gorm:"default:false"`
}
