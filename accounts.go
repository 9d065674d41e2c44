package main

import (
	"fmt"

	"arkas/models"
	"arkas/pkg/accounting"

	"gorm.io/gorm"
)

// createAccount inserts one account into the project's chart. When code is
// empty the lowest unused code under the parent is picked automatically.
func createAccount(projectID uint, fiscalYearID, parentID *uint, code, name string,
	atype models.AccountType, nature models.AccountNature) (*models.Account, error) {
	level := 1
	var parent *models.Account
	if parentID != nil {
		var p models.Account
		if err := db.First(&p, *parentID).Error; err != nil {
			return nil, fmt.Errorf("parent account not found: %w", err)
		}
		parent = &p
		level = p.Level + 1
		if level > 4 {
			return nil, fmt.Errorf("account tree is limited to 4 levels")
		}
	}
	existing, err := loadProjectAccounts(db, projectID)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(existing))
	for _, a := range existing {
		taken[a.Code] = true
	}
	if code == "" {
		parentCode := ""
		if parent != nil {
			parentCode = parent.Code
		}
		code, err = accounting.NextChildCode(parentCode, level, taken)
		if err != nil {
			return nil, err
		}
	} else {
		if taken[code] {
			return nil, fmt.Errorf("account code %s already in use", code)
		}
		if parent != nil && !accounting.CodeHasParentPrefix(code, parent.Code) {
			return nil, fmt.Errorf("code %s is not under parent code %s", code, parent.Code)
		}
	}
	if nature == "" {
		nature = accounting.NatureOf(atype)
	}
	acc := models.Account{
		ProjectID:    projectID,
		FiscalYearID: fiscalYearID,
		ParentID:     parentID,
		Code:         code,
		Name:         name,
		Type:         atype,
		Nature:       nature,
		Level:        level,
		IsActive:     true,
		IsEditable:   true,
	}
	if err := db.Create(&acc).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

// moveAccount re-parents a subtree. The target may not be the account itself
// or any of its descendants. Levels shift so every child stays exactly one
// level below its parent, and the whole subtree is re-coded so each code
// keeps the new parent's code as prefix.
func moveAccount(accountID, newParentID uint) error {
	var acc models.Account
	if err := db.First(&acc, accountID).Error; err != nil {
		return err
	}
	var parent models.Account
	if err := db.First(&parent, newParentID).Error; err != nil {
		return fmt.Errorf("new parent not found: %w", err)
	}
	if parent.ProjectID != acc.ProjectID {
		return fmt.Errorf("cannot move account across projects")
	}
	accounts, err := loadProjectAccounts(db, acc.ProjectID)
	if err != nil {
		return err
	}
	arena := accounting.NewArena(accounts)
	if newParentID == accountID || arena.IsDescendant(newParentID, accountID) {
		return accounting.ErrCycleDetected
	}
	delta := parent.Level + 1 - acc.Level
	// depth check across the subtree before touching anything
	var deepest func(id uint) int
	deepest = func(id uint) int {
		a, _ := arena.Get(id)
		d := a.Level
		for _, cid := range arena.Children(id) {
			if cd := deepest(cid); cd > d {
				d = cd
			}
		}
		return d
	}
	if deepest(accountID)+delta > 4 {
		return fmt.Errorf("move would exceed the 4-level account depth")
	}
	taken := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		taken[a.Code] = true
	}
	codes, err := accounting.RecodeSubtree(arena, accountID, parent.Code, parent.Level+1, taken)
	if err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Account{}).Where("id = ?", accountID).Update("parent_id", newParentID).Error; err != nil {
			return err
		}
		for id, code := range codes {
			a, _ := arena.Get(id)
			updates := map[string]any{"code": code, "level": a.Level + delta}
			if err := tx.Model(&models.Account{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// deleteAccount removes an account that has no children and no live balance.
// Anything else is a consistency error; only the default-chart removal is
// allowed to cascade.
func deleteAccount(accountID uint) error {
	var acc models.Account
	if err := db.First(&acc, accountID).Error; err != nil {
		return err
	}
	var children int64
	if err := db.Model(&models.Account{}).Where("parent_id = ?", accountID).Count(&children).Error; err != nil {
		return err
	}
	if children > 0 {
		return accounting.ErrAccountNotEmpty
	}
	balance, err := getBalance(acc.ProjectID, accountID)
	if err != nil {
		return err
	}
	if !balance.IsZero() {
		return accounting.ErrAccountNotEmpty
	}
	return db.Delete(&acc).Error
}

// listAccountTree returns the project's root accounts with recursively
// populated children, ordered by code at every level.
func listAccountTree(projectID uint, typeFilter models.AccountType) ([]*accounting.Node, error) {
	q := db.Where("project_id = ?", projectID)
	if typeFilter != "" {
		q = q.Where("type = ?", typeFilter)
	}
	var accounts []models.Account
	if err := q.Order("code asc").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounting.NewArena(accounts).Tree(), nil
}
