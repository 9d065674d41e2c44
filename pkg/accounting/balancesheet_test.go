package accounting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arkas/models"
)

func bsArena() *Arena {
	return NewArena([]models.Account{
		{ID: 1, Code: "1000", Name: "Current Assets", Type: models.AccountAsset, Nature: models.NatureDebit, Level: 1},
		{ID: 2, Code: "1100", Name: "Cash", Type: models.AccountAsset, Nature: models.NatureDebit, Level: 2, ParentID: ptr(1)},
		{ID: 3, Code: "2000", Name: "Non-current Assets", Type: models.AccountAsset, Nature: models.NatureDebit, Level: 1},
		{ID: 4, Code: "3000", Name: "Current Liabilities", Type: models.AccountLiability, Nature: models.NatureCredit, Level: 1},
		{ID: 5, Code: "5000", Name: "Equity", Type: models.AccountEquity, Nature: models.NatureCredit, Level: 1},
		{ID: 6, Code: "6000", Name: "Income", Type: models.AccountIncome, Nature: models.NatureCredit, Level: 1},
	})
}

func TestBuildBalanceSheet_Partition(t *testing.T) {
	balances := map[uint]decimal.Decimal{
		2: dec("700"),  // cash rolls up into current assets
		3: dec("300"),  // land etc.
		4: dec("-400"), // payables, net credit
		5: dec("-600"), // capital, net credit
	}
	bs := BuildBalanceSheet(bsArena(), balances)

	require.Len(t, bs.CurrentAssets, 1)
	assert.Equal(t, "1000", bs.CurrentAssets[0].Code)
	assert.True(t, bs.CurrentAssets[0].Amount.Equal(dec("700")))

	require.Len(t, bs.NonCurrentAssets, 1)
	assert.Equal(t, "2000", bs.NonCurrentAssets[0].Code)

	require.Len(t, bs.Liabilities, 1)
	assert.True(t, bs.Liabilities[0].Amount.Equal(dec("400")), "liabilities are shown on their natural credit side")

	require.Len(t, bs.Equity, 1)
	assert.True(t, bs.Equity[0].Amount.Equal(dec("600")))

	assert.True(t, bs.TotalAssets.Equal(dec("1000")))
	assert.True(t, bs.TotalAssets.Equal(bs.TotalLiabilities.Add(bs.TotalEquity)))
}

func TestBuildBalanceSheet_SkipsZeroGroupsAndNominals(t *testing.T) {
	balances := map[uint]decimal.Decimal{
		2: dec("100"),
		5: dec("-100"),
		6: dec("-50"), // income never appears on the balance sheet
	}
	bs := BuildBalanceSheet(bsArena(), balances)
	assert.Len(t, bs.CurrentAssets, 1)
	assert.Empty(t, bs.NonCurrentAssets)
	assert.Empty(t, bs.Liabilities)
	assert.Len(t, bs.Equity, 1)
}
