package accounting

import (
	"strings"

	"github.com/shopspring/decimal"

	"arkas/models"
)

// BalanceSheetLine is one top-level group with its rolled-up amount, shown on
// the account's natural side.
type BalanceSheetLine struct {
	AccountID uint            `json:"account_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// BalanceSheet partitions rolled-up balances into assets (current vs
// non-current by code group convention), liabilities and equity. The
// assets = liabilities + equity assertion belongs to the report layer, not
// here; the struct only carries the totals.
type BalanceSheet struct {
	CurrentAssets    []BalanceSheetLine `json:"current_assets"`
	NonCurrentAssets []BalanceSheetLine `json:"non_current_assets"`
	Liabilities      []BalanceSheetLine `json:"liabilities"`
	Equity           []BalanceSheetLine `json:"equity"`
	TotalAssets      decimal.Decimal    `json:"total_assets"`
	TotalLiabilities decimal.Decimal    `json:"total_liabilities"`
	TotalEquity      decimal.Decimal    `json:"total_equity"`
}

// BuildBalanceSheet walks the root groups of the arena and buckets their
// rolled-up balances. Current assets live under the "1xxx" code group by the
// default chart convention; other asset groups count as non-current.
func BuildBalanceSheet(arena *Arena, balances map[uint]decimal.Decimal) BalanceSheet {
	var bs BalanceSheet
	for _, id := range arena.Roots() {
		acc, _ := arena.Get(id)
		rolled := arena.RolledUpBalance(id, balances)
		if rolled.IsZero() {
			continue
		}
		line := BalanceSheetLine{
			AccountID: acc.ID,
			Code:      acc.Code,
			Name:      acc.Name,
			Amount:    NaturalBalance(acc.Nature, rolled),
		}
		switch acc.Type {
		case models.AccountAsset:
			if strings.HasPrefix(acc.Code, "1") {
				bs.CurrentAssets = append(bs.CurrentAssets, line)
			} else {
				bs.NonCurrentAssets = append(bs.NonCurrentAssets, line)
			}
			bs.TotalAssets = bs.TotalAssets.Add(line.Amount)
		case models.AccountLiability:
			bs.Liabilities = append(bs.Liabilities, line)
			bs.TotalLiabilities = bs.TotalLiabilities.Add(line.Amount)
		case models.AccountEquity:
			bs.Equity = append(bs.Equity, line)
			bs.TotalEquity = bs.TotalEquity.Add(line.Amount)
		}
	}
	return bs
}
