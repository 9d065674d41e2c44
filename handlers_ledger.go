package main

import (
	"net/http"

	"arkas/pkg/accounting"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// openingEntryHandler commits the period-start document for a project scope
func openingEntryHandler(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	var req struct {
		ProjectID      uint              `json:"project_id" binding:"required"`
		FiscalYearID   *uint             `json:"fiscal_year_id"`
		Date           string            `json:"date"`
		Description    string            `json:"description"`
		Lines          []accounting.Line `json:"lines" binding:"required"`
		InitialCapital decimal.Decimal   `json:"initial_capital"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	doc, err := postOpeningEntry(req.ProjectID, req.FiscalYearID, date, req.Description, req.Lines, req.InitialCapital)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": doc.ID, "reference": doc.Reference})
}

// closingEntryHandler runs the period-end transition. Overrides map account
// ids to operator-edited balances and are only honored on editable accounts.
func closingEntryHandler(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	var req struct {
		ProjectID    uint                     `json:"project_id" binding:"required"`
		FiscalYearID *uint                    `json:"fiscal_year_id"`
		Date         string                   `json:"date"`
		Description  string                   `json:"description"`
		Overrides    map[uint]decimal.Decimal `json:"overrides"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	doc, res, err := postClosingEntry(req.ProjectID, req.FiscalYearID, date, req.Description, req.Overrides)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":            doc.ID,
		"reference":     doc.Reference,
		"net_result":    res.NetResult,
		"carry_forward": res.CarryForward,
	})
}

func trialBalanceHandler(c *gin.Context) {
	projectID, ok := queryID(c, "project_id")
	if !ok {
		return
	}
	fourColumn := c.Query("columns") == "4"
	tb, err := buildTrialBalance(projectID, fourColumn)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, tb)
}

func balanceSheetHandler(c *gin.Context) {
	projectID, ok := queryID(c, "project_id")
	if !ok {
		return
	}
	bs, err := buildBalanceSheet(projectID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, bs)
}
