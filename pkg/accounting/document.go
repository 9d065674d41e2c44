package accounting

import "github.com/shopspring/decimal"

// balanceTolerance is the rounding slack under which a document still counts
// as balanced.
var balanceTolerance = decimal.NewFromFloat(0.01)

// Line is one debit/credit row of a journal document, detached from storage.
type Line struct {
	AccountID uint            `json:"account_id"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// Delta is the signed ledger contribution of the line (+debit − credit).
func (l Line) Delta() decimal.Decimal {
	return l.Debit.Sub(l.Credit)
}

// ValidateLines checks the double-entry invariant |Σdebit − Σcredit| < 0.01.
// Pure check, no side effects; commit re-runs it before posting.
func ValidateLines(lines []Line) error {
	var debits, credits decimal.Decimal
	for _, l := range lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	diff := debits.Sub(credits)
	if diff.Abs().Cmp(balanceTolerance) >= 0 {
		return UnbalancedError{Difference: diff}
	}
	return nil
}

// ValidateBalances applies the same tolerance check to a set of signed
// balances; the closing transition uses it on operator-edited rows before
// anything is posted.
func ValidateBalances(balances map[uint]decimal.Decimal) error {
	var sum decimal.Decimal
	for _, b := range balances {
		sum = sum.Add(b)
	}
	if sum.Abs().Cmp(balanceTolerance) >= 0 {
		return UnbalancedError{Difference: sum}
	}
	return nil
}
