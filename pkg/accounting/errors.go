package accounting

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Caller-fixable validation errors. Handlers surface these verbatim; none of
// them is retried automatically.
var (
	ErrCodeExhausted      = errors.New("no free account code left at this level")
	ErrCycleDetected      = errors.New("new parent is a descendant of the account being moved")
	ErrAlreadyInitialized = errors.New("opening entry already exists for this scope")
	ErrNotEditable        = errors.New("account balance is not editable")
	ErrNominalOverride    = errors.New("income and expense balances cannot be overridden at closing")
	ErrAccountNotEmpty    = errors.New("account still has children or a non-zero balance")
	ErrAlreadyClosed      = errors.New("scope is already closed; nothing left to close")
)

// UnbalancedError reports by how much a document's debits and credits differ.
type UnbalancedError struct {
	Difference decimal.Decimal
}

func (e UnbalancedError) Error() string {
	return fmt.Sprintf("document is unbalanced by %s", e.Difference.StringFixed(2))
}
