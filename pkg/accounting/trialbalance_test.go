package accounting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arkas/models"
)

func tbAccounts() []models.Account {
	return []models.Account{
		{ID: 1, Code: "1100", Name: "Cash"},
		{ID: 2, Code: "5100", Name: "Initial Capital"},
		{ID: 3, Code: "6100", Name: "Project Income"},
	}
}

func TestBuildTrialBalance_TwoColumn(t *testing.T) {
	current := map[uint]decimal.Decimal{
		1: dec("800"),
		2: dec("-500"),
		3: dec("-300"),
	}
	tb := BuildTrialBalance(tbAccounts(), current, nil, false)

	assert.False(t, tb.FourColumn)
	require.Len(t, tb.Rows, 3)
	assert.Equal(t, "1100", tb.Rows[0].Code)
	assert.True(t, tb.Rows[0].ClosingDebit.Equal(dec("800")))
	assert.True(t, tb.Rows[1].ClosingCredit.Equal(dec("500")))
	assert.True(t, tb.TotalClosingDebit.Equal(dec("800")))
	assert.True(t, tb.TotalClosingCredit.Equal(dec("800")))
	assert.True(t, tb.ClosingBalanced)
}

func TestBuildTrialBalance_FourColumn(t *testing.T) {
	current := map[uint]decimal.Decimal{1: dec("800"), 2: dec("-500"), 3: dec("-300")}
	opening := map[uint]decimal.Decimal{1: dec("500"), 2: dec("-500")}
	tb := BuildTrialBalance(tbAccounts(), current, opening, true)

	assert.True(t, tb.FourColumn)
	require.Len(t, tb.Rows, 3)
	assert.True(t, tb.Rows[0].OpeningDebit.Equal(dec("500")))
	assert.True(t, tb.Rows[1].OpeningCredit.Equal(dec("500")))
	assert.True(t, tb.Rows[2].OpeningDebit.IsZero())
	assert.True(t, tb.OpeningBalanced)
	assert.True(t, tb.ClosingBalanced)
}

// each pair is checked on its own: a balanced closing state does not excuse a
// broken opening state
func TestBuildTrialBalance_IndependentBalanceFlags(t *testing.T) {
	current := map[uint]decimal.Decimal{1: dec("800"), 2: dec("-800")}
	opening := map[uint]decimal.Decimal{1: dec("500"), 2: dec("-400")}
	tb := BuildTrialBalance(tbAccounts(), current, opening, true)

	assert.True(t, tb.ClosingBalanced)
	assert.False(t, tb.OpeningBalanced)
}

func TestBuildTrialBalance_SkipsZeroRows(t *testing.T) {
	current := map[uint]decimal.Decimal{1: dec("100"), 2: dec("-100")}
	tb := BuildTrialBalance(tbAccounts(), current, nil, false)
	require.Len(t, tb.Rows, 2)
	for _, row := range tb.Rows {
		assert.NotEqual(t, "6100", row.Code)
	}
}
