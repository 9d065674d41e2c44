package main

import (
	"arkas/pkg/accounting"

	"github.com/shopspring/decimal"
)

// buildTrialBalance assembles the two- or four-column trial balance. The
// four-column opening pair is re-derived from the last closing transition on
// every call rather than read from a stored snapshot.
func buildTrialBalance(projectID uint, fourColumn bool) (*accounting.TrialBalance, error) {
	accounts, err := loadProjectAccounts(db, projectID)
	if err != nil {
		return nil, err
	}
	current, err := loadBalances(db, projectID)
	if err != nil {
		return nil, err
	}
	opening := map[uint]decimal.Decimal{}
	if fourColumn {
		opening, err = openingBalances(projectID)
		if err != nil {
			return nil, err
		}
	}
	tb := accounting.BuildTrialBalance(accounts, current, opening, fourColumn)
	return &tb, nil
}

// buildBalanceSheet partitions the project's rolled-up balances. The
// assets = liabilities + equity check is asserted by the report consumer, not
// enforced here.
func buildBalanceSheet(projectID uint) (*accounting.BalanceSheet, error) {
	accounts, err := loadProjectAccounts(db, projectID)
	if err != nil {
		return nil, err
	}
	balances, err := loadBalances(db, projectID)
	if err != nil {
		return nil, err
	}
	bs := accounting.BuildBalanceSheet(accounting.NewArena(accounts), balances)
	return &bs, nil
}

// getRolledUpBalance computes own balance plus the whole subtree, fresh on
// every call.
func getRolledUpBalance(projectID, accountID uint) (decimal.Decimal, error) {
	accounts, err := loadProjectAccounts(db, projectID)
	if err != nil {
		return decimal.Zero, err
	}
	balances, err := loadBalances(db, projectID)
	if err != nil {
		return decimal.Zero, err
	}
	return accounting.NewArena(accounts).RolledUpBalance(accountID, balances), nil
}
