package accounting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arkas/models"
)

func closingAccounts() []models.Account {
	return []models.Account{
		{ID: 1, Code: "1100", Name: "Cash", Type: models.AccountAsset, Nature: models.NatureDebit, Level: 2},
		{ID: 2, Code: "5200", Name: "Retained Earnings", Type: models.AccountEquity, Nature: models.NatureCredit, Level: 2},
		{ID: 3, Code: "6100", Name: "Project Income", Type: models.AccountIncome, Nature: models.NatureCredit, Level: 2},
		{ID: 4, Code: "7100", Name: "Operating Expenses", Type: models.AccountExpense, Nature: models.NatureDebit, Level: 2},
	}
}

// income 500 (credit) against expenses 200 (debit) closes to a 300 profit in
// retained earnings
func TestBuildClosing_Profit(t *testing.T) {
	balances := map[uint]decimal.Decimal{
		1: dec("300"),  // cash, net debit
		3: dec("-500"), // income, net credit
		4: dec("200"),  // expense, net debit
	}
	res := BuildClosing(closingAccounts(), balances, 2)

	require.Len(t, res.Lines, 3)
	assert.Equal(t, uint(3), res.Lines[0].AccountID)
	assert.True(t, res.Lines[0].Debit.Equal(dec("500")), "income account is offset on the debit side")
	assert.Equal(t, uint(4), res.Lines[1].AccountID)
	assert.True(t, res.Lines[1].Credit.Equal(dec("200")), "expense account is offset on the credit side")
	assert.Equal(t, uint(2), res.Lines[2].AccountID)
	assert.True(t, res.Lines[2].Credit.Equal(dec("300")), "profit lands on retained earnings' credit side")

	assert.True(t, res.NetResult.Equal(dec("300")))
	assert.NoError(t, ValidateLines(res.Lines), "the closing document itself must balance")
}

func TestBuildClosing_Loss(t *testing.T) {
	balances := map[uint]decimal.Decimal{
		3: dec("-100"), // income
		4: dec("400"),  // expense
	}
	res := BuildClosing(closingAccounts(), balances, 2)

	require.Len(t, res.Lines, 3)
	re := res.Lines[2]
	assert.Equal(t, uint(2), re.AccountID)
	assert.True(t, re.Debit.Equal(dec("300")), "a loss debits retained earnings")
	assert.True(t, res.NetResult.Equal(dec("-300")))
	assert.NoError(t, ValidateLines(res.Lines))
}

func TestBuildClosing_CarryForward(t *testing.T) {
	balances := map[uint]decimal.Decimal{
		1: dec("300"),
		3: dec("-500"),
		4: dec("200"),
	}
	res := BuildClosing(closingAccounts(), balances, 2)

	// nominal accounts never carry forward; cash and the post-closing
	// retained earnings do
	require.Len(t, res.CarryForward, 2)
	assert.Equal(t, uint(1), res.CarryForward[0].AccountID)
	assert.True(t, res.CarryForward[0].Debit.Equal(dec("300")))
	assert.Equal(t, uint(2), res.CarryForward[1].AccountID)
	assert.True(t, res.CarryForward[1].Credit.Equal(dec("300")))
	assert.NoError(t, ValidateLines(res.CarryForward), "the next opening document must balance too")
}

func TestBuildClosing_NothingToClose(t *testing.T) {
	res := BuildClosing(closingAccounts(), map[uint]decimal.Decimal{1: dec("50")}, 2)
	assert.Empty(t, res.Lines)
	assert.True(t, res.NetResult.IsZero())
	require.Len(t, res.CarryForward, 1)
	assert.Equal(t, uint(1), res.CarryForward[0].AccountID)
}

func TestApplyOverrides(t *testing.T) {
	accounts := []models.Account{
		{ID: 1, IsEditable: true},
		{ID: 2, IsEditable: false},
	}
	balances := map[uint]decimal.Decimal{1: dec("100"), 2: dec("-100")}

	out, err := ApplyOverrides(accounts, balances, map[uint]decimal.Decimal{1: dec("150")})
	require.NoError(t, err)
	assert.True(t, out[1].Equal(dec("150")))
	assert.True(t, out[2].Equal(dec("-100")))
	// the input map is left untouched
	assert.True(t, balances[1].Equal(dec("100")))

	_, err = ApplyOverrides(accounts, balances, map[uint]decimal.Decimal{2: dec("0")})
	assert.ErrorIs(t, err, ErrNotEditable)
}

// income and expense accounts close at their posted figures even when flagged
// editable; an override there would leave a residual after the offsetting line
func TestApplyOverrides_NominalRejected(t *testing.T) {
	accounts := []models.Account{
		{ID: 3, Type: models.AccountIncome, IsEditable: true},
		{ID: 4, Type: models.AccountExpense, IsEditable: true},
	}
	balances := map[uint]decimal.Decimal{3: dec("-500"), 4: dec("200")}

	_, err := ApplyOverrides(accounts, balances, map[uint]decimal.Decimal{3: dec("-400")})
	assert.ErrorIs(t, err, ErrNominalOverride)

	_, err = ApplyOverrides(accounts, balances, map[uint]decimal.Decimal{4: dec("100")})
	assert.ErrorIs(t, err, ErrNominalOverride)
}
