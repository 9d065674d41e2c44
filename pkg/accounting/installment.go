package accounting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"arkas/models"
)

// StatusOf derives an installment status from what is owed, what was paid and
// the due date. The mapping is total: every input lands in exactly one state,
// and OVERDUE is only reachable while nothing has been paid.
func StatusOf(share, paid decimal.Decimal, due, now time.Time) models.InstallmentStatus {
	switch {
	case share.Sign() <= 0:
		return models.InstallmentPending
	case paid.Cmp(share) >= 0:
		return models.InstallmentPaid
	case paid.Sign() > 0:
		return models.InstallmentPartial
	case now.After(due):
		return models.InstallmentOverdue
	default:
		return models.InstallmentPending
	}
}

// Obligation is the allocation view of one outstanding installment.
// PaidAmount must already exclude receipted placeholder rows.
type Obligation struct {
	InstallmentID uint
	ShareAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	DueDate       time.Time
}

// Application is one allocation step: the amount applied to an installment
// and the status the installment lands in afterwards.
type Application struct {
	InstallmentID uint
	Amount        decimal.Decimal
	Status        models.InstallmentStatus
}

// Allocate walks the obligations in due-date order (earliest first, a fixed
// tie-break) and applies the budget as far as it reaches. It returns the
// applications and the unapplied leftover; the sum of applied amounts plus
// the leftover always equals the budget. A surplus is the caller's
// carry-forward notice, not an error.
func Allocate(budget decimal.Decimal, obligations []Obligation, now time.Time) ([]Application, decimal.Decimal) {
	sorted := make([]Obligation, len(obligations))
	copy(sorted, obligations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DueDate.Before(sorted[j].DueDate)
	})

	var apps []Application
	for _, ob := range sorted {
		if budget.Sign() <= 0 {
			break
		}
		remaining := ob.ShareAmount.Sub(ob.PaidAmount)
		if remaining.Sign() <= 0 {
			continue
		}
		applied := decimal.Min(budget, remaining)
		budget = budget.Sub(applied)
		apps = append(apps, Application{
			InstallmentID: ob.InstallmentID,
			Amount:        applied,
			Status:        StatusOf(ob.ShareAmount, ob.PaidAmount.Add(applied), ob.DueDate, now),
		})
	}
	return apps, budget
}
