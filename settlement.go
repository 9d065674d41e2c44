package main

import (
	"errors"
	"fmt"
	"time"

	"arkas/models"
	"arkas/pkg/accounting"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// allocationReport is the successful-with-notice outcome of a payment: how
// far the money reached and what is left over as a carry-forward. A surplus
// is not an error and no installment is auto-created for it.
type allocationReport struct {
	InstallmentsTouched int             `json:"installments_touched"`
	Applied             decimal.Decimal `json:"applied"`
	Leftover            decimal.Decimal `json:"leftover"`
}

// appliedAmount sums the non-receipted payments of an installment. Receipted
// rows are informational placeholders and never count as applied money.
func appliedAmount(tx *gorm.DB, installmentID uint) (decimal.Decimal, error) {
	var row struct{ Total decimal.Decimal }
	err := tx.Model(&models.Payment{}).
		Where("installment_id = ? AND receipted = ?", installmentID, false).
		Select("COALESCE(SUM(amount), 0) AS total").Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// applyPayment allocates one incoming payment across the user's outstanding
// installments in due-date order. Payment rows and status updates persist
// together or not at all.
func applyPayment(userID uint, amount decimal.Decimal, date time.Time, description string) (*allocationReport, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}
	report := &allocationReport{Applied: decimal.Zero, Leftover: decimal.Zero}
	err := db.Transaction(func(tx *gorm.DB) error {
		var installments []models.Installment
		open := []models.InstallmentStatus{models.InstallmentPending, models.InstallmentPartial, models.InstallmentOverdue}
		if err := tx.Where("user_id = ? AND status IN ?", userID, open).
			Order("due_date asc").Find(&installments).Error; err != nil {
			return err
		}
		obligations := make([]accounting.Obligation, 0, len(installments))
		for _, inst := range installments {
			paid, err := appliedAmount(tx, inst.ID)
			if err != nil {
				return err
			}
			obligations = append(obligations, accounting.Obligation{
				InstallmentID: inst.ID,
				ShareAmount:   inst.ShareAmount,
				PaidAmount:    paid,
				DueDate:       inst.DueDate,
			})
		}
		apps, leftover := accounting.Allocate(amount, obligations, time.Now())
		for _, app := range apps {
			p := models.Payment{
				InstallmentID: app.InstallmentID,
				Amount:        app.Amount,
				PaymentDate:   date,
				Description:   description,
				Reference:     uuid.NewString(),
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Installment{}).Where("id = ?", app.InstallmentID).
				Update("status", app.Status).Error; err != nil {
				return err
			}
		}
		report.InstallmentsTouched = len(apps)
		report.Leftover = leftover
		report.Applied = amount.Sub(leftover)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// accruePenalty recomputes the single penalty row of an installment. Unpaid
// installments are assessed as of now; otherwise the most recent effective
// payment date decides. Calling it again with unchanged inputs changes
// nothing.
func accruePenalty(installmentID uint, dailyRate decimal.Decimal, graceDays int) (*models.Penalty, error) {
	var inst models.Installment
	if err := db.First(&inst, installmentID).Error; err != nil {
		return nil, err
	}
	assessedAt := time.Now()
	var last models.Payment
	err := db.Where("installment_id = ? AND receipted = ?", installmentID, false).
		Order("payment_date desc").First(&last).Error
	if err == nil {
		assessedAt = last.PaymentDate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	daysLate, total := accounting.AccruePenalty(inst.DueDate, assessedAt, graceDays, dailyRate)

	var pen models.Penalty
	err = db.Where("installment_id = ?", installmentID).First(&pen).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if total.IsZero() {
			return nil, nil // nothing accrued, nothing to record
		}
		pen = models.Penalty{InstallmentID: installmentID, DaysLate: daysLate, DailyRate: dailyRate, TotalPenalty: total}
		if err := db.Create(&pen).Error; err != nil {
			return nil, err
		}
		return &pen, nil
	}
	if err != nil {
		return nil, err
	}
	// stale row: recompute in place, never insert a second one
	pen.DaysLate = daysLate
	pen.DailyRate = dailyRate
	pen.TotalPenalty = total
	if err := db.Save(&pen).Error; err != nil {
		return nil, err
	}
	return &pen, nil
}

// accruePenaltiesForUser runs the penalty recomputation over every
// installment of a user; invoked as a manual/scheduled batch, not by end
// users.
func accruePenaltiesForUser(userID uint, dailyRate decimal.Decimal, graceDays int) (int, error) {
	var installments []models.Installment
	if err := db.Where("user_id = ?", userID).Find(&installments).Error; err != nil {
		return 0, err
	}
	accrued := 0
	for _, inst := range installments {
		pen, err := accruePenalty(inst.ID, dailyRate, graceDays)
		if err != nil {
			return accrued, err
		}
		if pen != nil && !pen.TotalPenalty.IsZero() {
			accrued++
		}
	}
	return accrued, nil
}

// generateInstallments creates the user's installments from a plan: one per
// period, spaced IntervalDays apart from the start date. All rows persist
// atomically.
func generateInstallments(planID, userID uint) (int, error) {
	var plan models.InstallmentPlan
	if err := db.First(&plan, planID).Error; err != nil {
		return 0, err
	}
	now := time.Now()
	created := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < plan.InstallmentCount; i++ {
			due := plan.StartDate.AddDate(0, 0, i*plan.IntervalDays)
			inst := models.Installment{
				UserID:      userID,
				PlanID:      &plan.ID,
				Title:       fmt.Sprintf("%s #%d", plan.Title, i+1),
				ShareAmount: plan.ShareAmount,
				DueDate:     due,
				Status:      accounting.StatusOf(plan.ShareAmount, decimal.Zero, due, now),
			}
			if err := tx.Create(&inst).Error; err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
