package accounting

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccruePenalty computes the overdue penalty for a payment made after the
// grace period. Payment on or before dueDate + graceDays accrues nothing;
// otherwise the penalty is whole days late times the daily rate. The result
// replaces any earlier figure for the installment — recomputation, not
// accumulation.
func AccruePenalty(dueDate, paymentDate time.Time, graceDays int, dailyRate decimal.Decimal) (daysLate int, total decimal.Decimal) {
	graceDate := dueDate.AddDate(0, 0, graceDays)
	if !paymentDate.After(graceDate) {
		return 0, decimal.Zero
	}
	daysLate = int(paymentDate.Sub(graceDate).Hours() / 24)
	if daysLate <= 0 {
		return 0, decimal.Zero
	}
	return daysLate, dailyRate.Mul(decimal.NewFromInt(int64(daysLate)))
}
