package accounting

import (
	"github.com/shopspring/decimal"

	"arkas/models"
)

// ClosingResult is the plan a closing transition will post. Lines zero every
// income and expense account and move the net result into retained earnings;
// CarryForward holds the opening lines of the next period.
type ClosingResult struct {
	Lines        []Line
	NetResult    decimal.Decimal // income − expense, in natural terms
	CarryForward []Line
}

// BuildClosing computes the closing plan from the current signed balances
// (positive = net debit). retainedEarningsID is the equity account absorbing
// the net result.
func BuildClosing(accounts []models.Account, balances map[uint]decimal.Decimal, retainedEarningsID uint) ClosingResult {
	var res ClosingResult
	netDebit := decimal.Zero
	for _, acc := range accounts {
		b := balances[acc.ID]
		if !IsNominal(acc.Type) || b.IsZero() {
			continue
		}
		// Offset the account back to zero.
		line := Line{AccountID: acc.ID}
		if b.Sign() > 0 {
			line.Credit = b
		} else {
			line.Debit = b.Neg()
		}
		res.Lines = append(res.Lines, line)
		netDebit = netDebit.Add(b)
	}
	if !netDebit.IsZero() {
		re := Line{AccountID: retainedEarningsID}
		if netDebit.Sign() < 0 {
			re.Credit = netDebit.Neg() // profit: equity grows on its credit side
		} else {
			re.Debit = netDebit
		}
		res.Lines = append(res.Lines, re)
	}
	res.NetResult = netDebit.Neg()

	for _, acc := range accounts {
		if IsNominal(acc.Type) {
			continue
		}
		b := balances[acc.ID]
		if acc.ID == retainedEarningsID {
			b = b.Add(netDebit)
		}
		if b.IsZero() {
			continue
		}
		cf := Line{AccountID: acc.ID}
		if b.Sign() > 0 {
			cf.Debit = b
		} else {
			cf.Credit = b.Neg()
		}
		res.CarryForward = append(res.CarryForward, cf)
	}
	return res
}

// ApplyOverrides replaces the balances of operator-edited accounts before the
// closing plan is built. Only non-nominal accounts flagged editable may be
// overridden: income and expense accounts always close at their posted
// figures, otherwise the offsetting lines could not land them on exactly zero.
func ApplyOverrides(accounts []models.Account, balances map[uint]decimal.Decimal, overrides map[uint]decimal.Decimal) (map[uint]decimal.Decimal, error) {
	editable := make(map[uint]bool, len(accounts))
	nominal := make(map[uint]bool, len(accounts))
	for _, acc := range accounts {
		editable[acc.ID] = acc.IsEditable
		nominal[acc.ID] = IsNominal(acc.Type)
	}
	out := make(map[uint]decimal.Decimal, len(balances))
	for id, b := range balances {
		out[id] = b
	}
	for id, b := range overrides {
		if nominal[id] {
			return nil, ErrNominalOverride
		}
		if !editable[id] {
			return nil, ErrNotEditable
		}
		out[id] = b
	}
	return out, nil
}
