package main

import (
	"errors"
	"fmt"

	"arkas/models"
	"arkas/pkg/accounting"

	"gorm.io/gorm"
)

var errDefaultsExist = errors.New("default accounts already exist for this project")

// importDefaultChart seeds the nine-group default chart of accounts for a
// project. The whole import is one transaction; a partial chart is never left
// behind. Re-running against the same scope fails and creates nothing.
func importDefaultChart(projectID uint, fiscalYearID *uint) (int, error) {
	var cnt int64
	if err := db.Model(&models.Account{}).Where("project_id = ? AND is_default = ?", projectID, true).Count(&cnt).Error; err != nil {
		return 0, err
	}
	if cnt > 0 {
		return 0, errDefaultsExist
	}
	created := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		byCode := make(map[string]uint)
		for _, da := range accounting.DefaultChart() {
			acc := models.Account{
				ProjectID:    projectID,
				FiscalYearID: fiscalYearID,
				Code:         da.Code,
				Name:         da.Name,
				Type:         da.Type,
				Nature:       accounting.NatureOf(da.Type),
				Level:        da.Level,
				IsActive:     true,
				IsDefault:    true,
				IsEditable:   da.Editable,
			}
			if da.ParentCode != "" {
				pid, ok := byCode[da.ParentCode]
				if !ok {
					return fmt.Errorf("default chart lists %s before its parent %s", da.Code, da.ParentCode)
				}
				acc.ParentID = &pid
			}
			if err := tx.Create(&acc).Error; err != nil {
				return err
			}
			byCode[acc.Code] = acc.ID
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// removeDefaultChart deletes every default-flagged account of the project,
// deepest level first, together with their ledger rows. This cascade
// (group → class → sub-class → detail) is the documented contract of chart
// removal; ordinary account deletion stays guarded by the empty-account check.
func removeDefaultChart(projectID uint) (int, error) {
	removed := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		var accounts []models.Account
		if err := tx.Where("project_id = ? AND is_default = ?", projectID, true).Find(&accounts).Error; err != nil {
			return err
		}
		if len(accounts) == 0 {
			return nil
		}
		ids := make([]uint, 0, len(accounts))
		for _, a := range accounts {
			ids = append(ids, a.ID)
		}
		if err := tx.Where("project_id = ? AND account_id IN ?", projectID, ids).Delete(&models.LedgerEntry{}).Error; err != nil {
			return err
		}
		for level := 4; level >= 1; level-- {
			if err := tx.Unscoped().Where("project_id = ? AND is_default = ? AND level = ?", projectID, true, level).Delete(&models.Account{}).Error; err != nil {
				return err
			}
		}
		removed = len(accounts)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
