package main

import (
	"net/http"
	"strconv"
	"time"

	"arkas/models"
	"arkas/pkg/accounting"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func createPlanHandler(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	var req struct {
		ProjectID        uint            `json:"project_id" binding:"required"`
		Title            string          `json:"title" binding:"required"`
		InstallmentCount int             `json:"installment_count" binding:"required"`
		ShareAmount      decimal.Decimal `json:"share_amount" binding:"required"`
		StartDate        string          `json:"start_date"`
		IntervalDays     int             `json:"interval_days"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.InstallmentCount <= 0 || req.ShareAmount.Sign() <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "installment_count and share_amount must be positive"})
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	if req.IntervalDays <= 0 {
		req.IntervalDays = 30
	}
	plan := models.InstallmentPlan{
		ProjectID:        req.ProjectID,
		Title:            req.Title,
		InstallmentCount: req.InstallmentCount,
		ShareAmount:      req.ShareAmount,
		StartDate:        start,
		IntervalDays:     req.IntervalDays,
	}
	if err := db.Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": plan.ID})
}

// generatePlanHandler creates one installment per plan period for a user
func generatePlanHandler(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	planID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req struct {
		UserID uint `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := generateInstallments(planID, req.UserID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

// listInstallmentsHandler lists installments with live-derived status and
// remaining amounts; admin may inspect another user via user_id.
func listInstallmentsHandler(c *gin.Context) {
	role, _ := c.Get("role")
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	userID := user.ID
	if v := c.Query("user_id"); v != "" && role == "administrator" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
			return
		}
		userID = uint(parsed)
	}
	var installments []models.Installment
	if err := db.Where("user_id = ?", userID).Order("due_date asc").Find(&installments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	now := time.Now()
	type row struct {
		ID          uint                     `json:"id"`
		Title       string                   `json:"title"`
		ShareAmount decimal.Decimal          `json:"share_amount"`
		Paid        decimal.Decimal          `json:"paid"`
		Remaining   decimal.Decimal          `json:"remaining"`
		DueDate     time.Time                `json:"due_date"`
		Status      models.InstallmentStatus `json:"status"`
		Penalty     *models.Penalty          `json:"penalty,omitempty"`
	}
	rows := make([]row, 0, len(installments))
	for _, inst := range installments {
		paid, err := appliedAmount(db, inst.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
			return
		}
		r := row{
			ID:          inst.ID,
			Title:       inst.Title,
			ShareAmount: inst.ShareAmount,
			Paid:        paid,
			Remaining:   decimal.Max(inst.ShareAmount.Sub(paid), decimal.Zero),
			DueDate:     inst.DueDate,
			Status:      accounting.StatusOf(inst.ShareAmount, paid, inst.DueDate, now),
		}
		var pen models.Penalty
		if err := db.Where("installment_id = ?", inst.ID).First(&pen).Error; err == nil {
			r.Penalty = &pen
		}
		rows = append(rows, r)
	}
	c.JSON(http.StatusOK, rows)
}

// createPaymentHandler applies one payment across the target user's
// outstanding installments, earliest due date first. Leftover budget comes
// back as a carry-forward notice, not an error.
func createPaymentHandler(c *gin.Context) {
	role, _ := c.Get("role")
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		UserID      uint            `json:"user_id"`
		Amount      decimal.Decimal `json:"amount" binding:"required"`
		Date        string          `json:"date"`
		Description string          `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := user.ID
	if req.UserID != 0 && req.UserID != user.ID {
		if role != "administrator" {
			c.JSON(http.StatusForbidden, gin.H{"error": "cannot pay for another user"})
			return
		}
		userID = req.UserID
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	report, err := applyPayment(userID, req.Amount, date, req.Description)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// accruePenaltiesHandler runs the penalty batch for one user
func accruePenaltiesHandler(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	var req struct {
		UserID    uint            `json:"user_id" binding:"required"`
		DailyRate decimal.Decimal `json:"daily_rate" binding:"required"`
		GraceDays int             `json:"grace_days"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DailyRate.Sign() <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "daily_rate must be positive"})
		return
	}
	accrued, err := accruePenaltiesForUser(req.UserID, req.DailyRate, req.GraceDays)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"penalties_accrued": accrued})
}
