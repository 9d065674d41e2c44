package models

import "time"

// AccountType classifies an account in the chart of accounts.
type AccountType string

const (
	AccountAsset      AccountType = "ASSET"
	AccountLiability  AccountType = "LIABILITY"
	AccountEquity     AccountType = "EQUITY"
	AccountIncome     AccountType = "INCOME"
	AccountExpense    AccountType = "EXPENSE"
	AccountCustomer   AccountType = "CUSTOMER"
	AccountContractor AccountType = "CONTRACTOR"
	AccountSupplier   AccountType = "SUPPLIER"
)

// AccountNature says which side increases the balance.
type AccountNature string

const (
	NatureDebit       AccountNature = "DEBIT"
	NatureCredit      AccountNature = "CREDIT"
	NatureDebitCredit AccountNature = "DEBIT_CREDIT"
)

// Account is one node of a project's chart of accounts. Accounts form a tree
// via ParentID; the hierarchical Code carries the parent's code as prefix.
type Account struct {
	ID           uint `gorm:"primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time    `gorm:"index"`
	ProjectID    uint          `gorm:"index;not null;uniqueIndex:idx_scope_code"`
	FiscalYearID *uint         `gorm:"index"`
	Code         string        `gorm:"size:16;not null;uniqueIndex:idx_scope_code"`
	Name         string        `gorm:"size:255;not null"`
	Type         AccountType   `gorm:"size:16;not null;index"`
	Nature       AccountNature `gorm:"size:16;not null"`
	Level        int           `gorm:"not null"` // 1 (group) .. 4 (detail)
	ParentID     *uint         `gorm:"index"`
	IsActive     bool          `gorm:"default:true;not null"`
	// IsDefault marks accounts created by the default chart import; only those
	// are removed by the cascading chart-import delete.
	IsDefault bool `gorm:"default:false;index"`
	// IsEditable allows the operator to override the pre-closing balance of the
	// account in the closing dialog. Protected accounts keep it false.
	IsEditable bool `gorm:"default:true"`
}
