package accounting

import "arkas/models"

// Well-known codes in the default chart. The opening entry posts initial
// capital to 5100; closing transitions accumulate the net result into 5200.
const (
	InitialCapitalCode   = "5100"
	RetainedEarningsCode = "5200"
)

// DefaultAccount is one row of the built-in chart of accounts. ParentCode is
// resolved to a ParentID during import.
type DefaultAccount struct {
	Code       string
	Name       string
	Type       models.AccountType
	Level      int
	ParentCode string
	Editable   bool
}

// DefaultChart returns the nine-group default chart of accounts
// (groups → classes → sub-classes → details) seeded by chart import.
// Rows are ordered parents-first so import can resolve ParentCode in one pass.
func DefaultChart() []DefaultAccount {
	return []DefaultAccount{
		{Code: "1000", Name: "Current Assets", Type: models.AccountAsset, Level: 1, Editable: true},
		{Code: "1100", Name: "Cash", Type: models.AccountAsset, Level: 2, ParentCode: "1000", Editable: true},
		{Code: "1110", Name: "Petty Cash", Type: models.AccountAsset, Level: 3, ParentCode: "1100", Editable: true},
		{Code: "1111", Name: "Cash Drawer", Type: models.AccountAsset, Level: 4, ParentCode: "1110", Editable: true},
		{Code: "1200", Name: "Bank", Type: models.AccountAsset, Level: 2, ParentCode: "1000", Editable: true},
		{Code: "1300", Name: "Accounts Receivable", Type: models.AccountAsset, Level: 2, ParentCode: "1000", Editable: true},

		{Code: "2000", Name: "Non-current Assets", Type: models.AccountAsset, Level: 1, Editable: true},
		{Code: "2100", Name: "Land", Type: models.AccountAsset, Level: 2, ParentCode: "2000", Editable: true},
		{Code: "2200", Name: "Buildings", Type: models.AccountAsset, Level: 2, ParentCode: "2000", Editable: true},
		{Code: "2300", Name: "Equipment", Type: models.AccountAsset, Level: 2, ParentCode: "2000", Editable: true},

		{Code: "3000", Name: "Current Liabilities", Type: models.AccountLiability, Level: 1, Editable: true},
		{Code: "3100", Name: "Accounts Payable", Type: models.AccountLiability, Level: 2, ParentCode: "3000", Editable: true},
		{Code: "3200", Name: "Accrued Expenses", Type: models.AccountLiability, Level: 2, ParentCode: "3000", Editable: true},

		{Code: "4000", Name: "Long-term Liabilities", Type: models.AccountLiability, Level: 1, Editable: true},
		{Code: "4100", Name: "Loans Payable", Type: models.AccountLiability, Level: 2, ParentCode: "4000", Editable: true},

		{Code: "5000", Name: "Equity", Type: models.AccountEquity, Level: 1, Editable: false},
		{Code: InitialCapitalCode, Name: "Initial Capital", Type: models.AccountEquity, Level: 2, ParentCode: "5000", Editable: false},
		{Code: RetainedEarningsCode, Name: "Retained Earnings", Type: models.AccountEquity, Level: 2, ParentCode: "5000", Editable: false},

		{Code: "6000", Name: "Income", Type: models.AccountIncome, Level: 1, Editable: true},
		{Code: "6100", Name: "Project Income", Type: models.AccountIncome, Level: 2, ParentCode: "6000", Editable: true},
		{Code: "6200", Name: "Penalty Income", Type: models.AccountIncome, Level: 2, ParentCode: "6000", Editable: true},
		{Code: "6300", Name: "Other Income", Type: models.AccountIncome, Level: 2, ParentCode: "6000", Editable: true},

		{Code: "7000", Name: "Expenses", Type: models.AccountExpense, Level: 1, Editable: true},
		{Code: "7100", Name: "Operating Expenses", Type: models.AccountExpense, Level: 2, ParentCode: "7000", Editable: true},
		{Code: "7110", Name: "Utilities", Type: models.AccountExpense, Level: 3, ParentCode: "7100", Editable: true},
		{Code: "7111", Name: "Electricity", Type: models.AccountExpense, Level: 4, ParentCode: "7110", Editable: true},
		{Code: "7200", Name: "Salaries", Type: models.AccountExpense, Level: 2, ParentCode: "7000", Editable: true},
		{Code: "7300", Name: "Maintenance", Type: models.AccountExpense, Level: 2, ParentCode: "7000", Editable: true},

		{Code: "8000", Name: "Customers & Contractors", Type: models.AccountCustomer, Level: 1, Editable: true},
		{Code: "8100", Name: "Customer Receivables", Type: models.AccountCustomer, Level: 2, ParentCode: "8000", Editable: true},
		{Code: "8200", Name: "Contractor Settlements", Type: models.AccountContractor, Level: 2, ParentCode: "8000", Editable: true},

		{Code: "9000", Name: "Suppliers", Type: models.AccountSupplier, Level: 1, Editable: true},
		{Code: "9100", Name: "Supplier Payables", Type: models.AccountSupplier, Level: 2, ParentCode: "9000", Editable: true},
	}
}
