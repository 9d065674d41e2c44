package accounting

import (
	"sort"

	"github.com/shopspring/decimal"

	"arkas/models"
)

// TrialBalanceRow is one account's debit/credit pairs. In two-column mode
// only the closing pair is populated.
type TrialBalanceRow struct {
	AccountID     uint            `json:"account_id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	OpeningDebit  decimal.Decimal `json:"opening_debit,omitempty"`
	OpeningCredit decimal.Decimal `json:"opening_credit,omitempty"`
	ClosingDebit  decimal.Decimal `json:"closing_debit"`
	ClosingCredit decimal.Decimal `json:"closing_credit"`
}

// TrialBalance is the full report. OpeningBalanced and ClosingBalanced are
// checked independently; a report is trustworthy only when both hold.
type TrialBalance struct {
	FourColumn         bool              `json:"four_column"`
	Rows               []TrialBalanceRow `json:"rows"`
	TotalOpeningDebit  decimal.Decimal   `json:"total_opening_debit"`
	TotalOpeningCredit decimal.Decimal   `json:"total_opening_credit"`
	TotalClosingDebit  decimal.Decimal   `json:"total_closing_debit"`
	TotalClosingCredit decimal.Decimal   `json:"total_closing_credit"`
	OpeningBalanced    bool              `json:"opening_balanced"`
	ClosingBalanced    bool              `json:"closing_balanced"`
}

func splitSigned(b decimal.Decimal) (debit, credit decimal.Decimal) {
	if b.Sign() >= 0 {
		return b, decimal.Zero
	}
	return decimal.Zero, b.Neg()
}

// BuildTrialBalance emits one row per account from the signed balance maps.
// current holds the latest balances; opening is the balance state right after
// the last closing transition and is only consulted in four-column mode — it
// is re-derived by the caller, never read from a stored snapshot.
func BuildTrialBalance(accounts []models.Account, current, opening map[uint]decimal.Decimal, fourColumn bool) TrialBalance {
	tb := TrialBalance{FourColumn: fourColumn}
	sorted := make([]models.Account, len(accounts))
	copy(sorted, accounts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Code < sorted[j].Code })

	for _, acc := range sorted {
		row := TrialBalanceRow{AccountID: acc.ID, Code: acc.Code, Name: acc.Name}
		row.ClosingDebit, row.ClosingCredit = splitSigned(current[acc.ID])
		if fourColumn {
			row.OpeningDebit, row.OpeningCredit = splitSigned(opening[acc.ID])
		}
		if row.ClosingDebit.IsZero() && row.ClosingCredit.IsZero() &&
			row.OpeningDebit.IsZero() && row.OpeningCredit.IsZero() {
			continue
		}
		tb.Rows = append(tb.Rows, row)
		tb.TotalClosingDebit = tb.TotalClosingDebit.Add(row.ClosingDebit)
		tb.TotalClosingCredit = tb.TotalClosingCredit.Add(row.ClosingCredit)
		tb.TotalOpeningDebit = tb.TotalOpeningDebit.Add(row.OpeningDebit)
		tb.TotalOpeningCredit = tb.TotalOpeningCredit.Add(row.OpeningCredit)
	}
	tb.ClosingBalanced = tb.TotalClosingDebit.Sub(tb.TotalClosingCredit).Abs().Cmp(balanceTolerance) < 0
	tb.OpeningBalanced = tb.TotalOpeningDebit.Sub(tb.TotalOpeningCredit).Abs().Cmp(balanceTolerance) < 0
	return tb
}
