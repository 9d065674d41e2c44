package accounting

import (
	"sort"

	"github.com/shopspring/decimal"

	"arkas/models"
)

// Arena indexes a flat slice of accounts by id. Parent/child navigation goes
// through id lookups rather than embedded object references so the structure
// cannot form reference cycles; tree-ness itself is guarded by IsDescendant.
type Arena struct {
	accounts map[uint]models.Account
	children map[uint][]uint
	roots    []uint
}

// NewArena builds the id and children indexes from a flat account list.
// Children and roots are ordered by code ascending.
func NewArena(accounts []models.Account) *Arena {
	a := &Arena{
		accounts: make(map[uint]models.Account, len(accounts)),
		children: make(map[uint][]uint),
	}
	for _, acc := range accounts {
		a.accounts[acc.ID] = acc
	}
	for _, acc := range accounts {
		if acc.ParentID != nil {
			if _, ok := a.accounts[*acc.ParentID]; ok {
				a.children[*acc.ParentID] = append(a.children[*acc.ParentID], acc.ID)
				continue
			}
		}
		a.roots = append(a.roots, acc.ID)
	}
	byCode := func(ids []uint) {
		sort.Slice(ids, func(i, j int) bool {
			return a.accounts[ids[i]].Code < a.accounts[ids[j]].Code
		})
	}
	byCode(a.roots)
	for _, ids := range a.children {
		byCode(ids)
	}
	return a
}

// Get returns the account with the given id.
func (a *Arena) Get(id uint) (models.Account, bool) {
	acc, ok := a.accounts[id]
	return acc, ok
}

// Roots returns root account ids ordered by code.
func (a *Arena) Roots() []uint { return a.roots }

// Children returns direct child ids ordered by code.
func (a *Arena) Children(id uint) []uint { return a.children[id] }

// IsDescendant walks the ancestry of id upward and reports whether ancestor
// is found on the way. An account is not its own descendant.
func (a *Arena) IsDescendant(id, ancestor uint) bool {
	acc, ok := a.accounts[id]
	for ok {
		if acc.ParentID == nil {
			return false
		}
		if *acc.ParentID == ancestor {
			return true
		}
		acc, ok = a.accounts[*acc.ParentID]
	}
	return false
}

// Node is one account with its recursively populated children, as served to
// the tree endpoint.
type Node struct {
	Account  models.Account `json:"account"`
	Children []*Node        `json:"children"`
}

// Tree materialises the nested account tree, ordered by code at every level.
func (a *Arena) Tree() []*Node {
	var build func(id uint) *Node
	build = func(id uint) *Node {
		n := &Node{Account: a.accounts[id]}
		for _, cid := range a.children[id] {
			n.Children = append(n.Children, build(cid))
		}
		return n
	}
	nodes := make([]*Node, 0, len(a.roots))
	for _, id := range a.roots {
		nodes = append(nodes, build(id))
	}
	return nodes
}

// RolledUpBalance computes own balance plus the rolled-up balances of all
// direct children, depth-first. Results are memoised for the duration of the
// call only; nothing is persisted, so every read reflects the latest ledger
// state.
func (a *Arena) RolledUpBalance(id uint, balances map[uint]decimal.Decimal) decimal.Decimal {
	memo := make(map[uint]decimal.Decimal)
	return a.rollup(id, balances, memo)
}

func (a *Arena) rollup(id uint, balances, memo map[uint]decimal.Decimal) decimal.Decimal {
	if v, ok := memo[id]; ok {
		return v
	}
	total := balances[id]
	for _, cid := range a.children[id] {
		total = total.Add(a.rollup(cid, balances, memo))
	}
	memo[id] = total
	return total
}
