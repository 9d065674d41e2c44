package accounting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arkas/models"
)

func acct(id uint, code string, level int, parentID *uint) models.Account {
	return models.Account{ID: id, Code: code, Level: level, ParentID: parentID, Type: models.AccountAsset, Nature: models.NatureDebit}
}

func ptr(v uint) *uint { return &v }

// three-level chain plus a second root
func testAccounts() []models.Account {
	return []models.Account{
		acct(1, "1000", 1, nil),
		acct(2, "1100", 2, ptr(1)),
		acct(3, "1110", 3, ptr(2)),
		acct(4, "1200", 2, ptr(1)),
		acct(5, "2000", 1, nil),
	}
}

func TestArena_ChildrenAndRoots(t *testing.T) {
	a := NewArena(testAccounts())
	assert.Equal(t, []uint{1, 5}, a.Roots())
	assert.Equal(t, []uint{2, 4}, a.Children(1))
	assert.Equal(t, []uint{3}, a.Children(2))
	assert.Empty(t, a.Children(5))
}

func TestArena_IsDescendant(t *testing.T) {
	a := NewArena(testAccounts())
	assert.True(t, a.IsDescendant(3, 1))
	assert.True(t, a.IsDescendant(3, 2))
	assert.True(t, a.IsDescendant(2, 1))
	assert.False(t, a.IsDescendant(1, 3))
	assert.False(t, a.IsDescendant(5, 1))
	assert.False(t, a.IsDescendant(1, 1)) // an account is not its own descendant
}

func TestArena_TreeOrderedByCode(t *testing.T) {
	a := NewArena(testAccounts())
	tree := a.Tree()
	require.Len(t, tree, 2)
	assert.Equal(t, "1000", tree[0].Account.Code)
	assert.Equal(t, "2000", tree[1].Account.Code)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "1100", tree[0].Children[0].Account.Code)
	assert.Equal(t, "1200", tree[0].Children[1].Account.Code)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, "1110", tree[0].Children[0].Children[0].Account.Code)
}

func TestArena_RolledUpBalance(t *testing.T) {
	a := NewArena(testAccounts())
	balances := map[uint]decimal.Decimal{
		1: decimal.NewFromInt(10),
		2: decimal.NewFromInt(20),
		3: decimal.NewFromInt(30),
		4: decimal.NewFromInt(40),
	}
	assert.True(t, a.RolledUpBalance(1, balances).Equal(decimal.NewFromInt(100)))
	assert.True(t, a.RolledUpBalance(2, balances).Equal(decimal.NewFromInt(50)))
	assert.True(t, a.RolledUpBalance(3, balances).Equal(decimal.NewFromInt(30)))
	// account without a ledger row rolls up to zero
	assert.True(t, a.RolledUpBalance(5, balances).IsZero())
}

// rolledUp(acc) == own(acc) + Σ rolledUp(child), at every depth
func TestArena_RollupIdentity(t *testing.T) {
	a := NewArena(testAccounts())
	balances := map[uint]decimal.Decimal{
		1: decimal.NewFromInt(1),
		2: decimal.NewFromInt(2),
		3: decimal.NewFromInt(4),
		4: decimal.NewFromInt(8),
		5: decimal.NewFromInt(16),
	}
	for _, id := range []uint{1, 2, 3, 4, 5} {
		want := balances[id]
		for _, cid := range a.Children(id) {
			want = want.Add(a.RolledUpBalance(cid, balances))
		}
		assert.True(t, a.RolledUpBalance(id, balances).Equal(want), "identity broken at account %d", id)
	}
}
