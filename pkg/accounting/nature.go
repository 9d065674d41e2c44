package accounting

import (
	"github.com/shopspring/decimal"

	"arkas/models"
)

// NatureOf returns the side on which an account type's balance grows.
// Assets, expenses and customer receivables grow on the debit side; the rest
// grow on the credit side.
func NatureOf(t models.AccountType) models.AccountNature {
	switch t {
	case models.AccountAsset, models.AccountExpense, models.AccountCustomer:
		return models.NatureDebit
	case models.AccountLiability, models.AccountEquity, models.AccountIncome,
		models.AccountContractor, models.AccountSupplier:
		return models.NatureCredit
	}
	return models.NatureDebitCredit
}

// NaturalBalance converts a signed ledger balance (positive = net debit) into
// the balance as displayed on the account's natural side.
func NaturalBalance(nature models.AccountNature, signed decimal.Decimal) decimal.Decimal {
	if nature == models.NatureCredit {
		return signed.Neg()
	}
	return signed
}

// IsNominal reports whether the account type is zeroed by a closing
// transition (income and expense accounts). Everything else carries its
// balance forward into the next period.
func IsNominal(t models.AccountType) bool {
	return t == models.AccountIncome || t == models.AccountExpense
}
