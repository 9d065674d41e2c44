package main

import (
	"net/http"
	"strconv"

	"arkas/models"

	"github.com/gin-gonic/gin"
)

func paramID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(v), true
}

func queryID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil || v == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " query parameter required"})
		return 0, false
	}
	return uint(v), true
}

// createProjectHandler creates a project owned by the authenticated user
func createProjectHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := models.Project{Name: req.Name, Description: req.Description, OwnerID: user.ID}
	if err := db.Create(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.ID})
}

// listProjectsHandler lists projects for the authenticated user (admin sees all)
func listProjectsHandler(c *gin.Context) {
	role, _ := c.Get("role")
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var projects []models.Project
	q := db.Model(&models.Project{})
	if role != "administrator" {
		q = q.Where("owner_id = ?", user.ID)
	}
	if err := q.Order("id desc").Limit(200).Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// chartImportHandler seeds the default chart of accounts for a project
func chartImportHandler(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var fiscalYearID *uint
	if v := c.Query("fiscal_year_id"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fiscal_year_id"})
			return
		}
		fid := uint(parsed)
		fiscalYearID = &fid
	}
	created, err := importDefaultChart(projectID, fiscalYearID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

// chartRemoveHandler removes all default-flagged accounts for the project
func chartRemoveHandler(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}
	removed, err := removeDefaultChart(projectID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// listAccountsHandler returns the nested account tree for a project
func listAccountsHandler(c *gin.Context) {
	projectID, ok := queryID(c, "project_id")
	if !ok {
		return
	}
	typeFilter := models.AccountType(c.Query("type"))
	tree, err := listAccountTree(projectID, typeFilter)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, tree)
}

func createAccountHandler(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	var req struct {
		ProjectID    uint   `json:"project_id" binding:"required"`
		FiscalYearID *uint  `json:"fiscal_year_id"`
		ParentID     *uint  `json:"parent_id"`
		Code         string `json:"code"` // auto-generated when omitted
		Name         string `json:"name" binding:"required"`
		Type         string `json:"type" binding:"required"`
		Nature       string `json:"nature"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	acc, err := createAccount(req.ProjectID, req.FiscalYearID, req.ParentID, req.Code, req.Name,
		models.AccountType(req.Type), models.AccountNature(req.Nature))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": acc.ID, "code": acc.Code, "level": acc.Level})
}

func moveAccountHandler(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	accountID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req struct {
		NewParentID uint `json:"new_parent_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := moveAccount(accountID, req.NewParentID); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account moved"})
}

func deleteAccountHandler(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	accountID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := deleteAccount(accountID); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// accountBalanceHandler returns the account's own and rolled-up balances
func accountBalanceHandler(c *gin.Context) {
	accountID, ok := paramID(c, "id")
	if !ok {
		return
	}
	projectID, ok := queryID(c, "project_id")
	if !ok {
		return
	}
	own, err := getBalance(projectID, accountID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	rolled, err := getRolledUpBalance(projectID, accountID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": own, "rolled_up_balance": rolled})
}
