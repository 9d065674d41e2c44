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

// getBalance returns an account's own ledger balance, zero when no ledger row
// exists yet.
func getBalance(projectID, accountID uint) (decimal.Decimal, error) {
	var le models.LedgerEntry
	err := db.Where("project_id = ? AND account_id = ?", projectID, accountID).First(&le).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return le.Balance, nil
}

func loadProjectAccounts(tx *gorm.DB, projectID uint) ([]models.Account, error) {
	var accounts []models.Account
	if err := tx.Where("project_id = ?", projectID).Order("code asc").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func loadBalances(tx *gorm.DB, projectID uint) (map[uint]decimal.Decimal, error) {
	var entries []models.LedgerEntry
	if err := tx.Where("project_id = ?", projectID).Find(&entries).Error; err != nil {
		return nil, err
	}
	balances := make(map[uint]decimal.Decimal, len(entries))
	for _, e := range entries {
		balances[e.AccountID] = e.Balance
	}
	return balances, nil
}

func findAccountByCode(tx *gorm.DB, projectID uint, code string) (*models.Account, error) {
	var acc models.Account
	if err := tx.Where("project_id = ? AND code = ?", projectID, code).First(&acc).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

// adjustLedger applies a signed delta to the (project, account) ledger row,
// creating it on first use.
func adjustLedger(tx *gorm.DB, projectID, accountID uint, delta decimal.Decimal) error {
	var le models.LedgerEntry
	err := tx.Where("project_id = ? AND account_id = ?", projectID, accountID).First(&le).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		le = models.LedgerEntry{ProjectID: projectID, AccountID: accountID, Balance: delta}
		return tx.Create(&le).Error
	}
	if err != nil {
		return err
	}
	le.Balance = le.Balance.Add(delta)
	return tx.Save(&le).Error
}

// postLine writes the transaction rows for one document line and applies its
// delta to the ledger.
func postLine(tx *gorm.DB, projectID, docID uint, date time.Time, l accounting.Line, journalType models.JournalType) error {
	did := docID
	if l.Debit.Sign() > 0 {
		t := models.Transaction{ProjectID: projectID, AccountID: l.AccountID, Date: date,
			Type: models.TransactionDebit, Amount: l.Debit, JournalType: journalType, DocumentID: &did}
		if err := tx.Create(&t).Error; err != nil {
			return err
		}
	}
	if l.Credit.Sign() > 0 {
		t := models.Transaction{ProjectID: projectID, AccountID: l.AccountID, Date: date,
			Type: models.TransactionCredit, Amount: l.Credit, JournalType: journalType, DocumentID: &did}
		if err := tx.Create(&t).Error; err != nil {
			return err
		}
	}
	return adjustLedger(tx, projectID, l.AccountID, l.Delta())
}

// commitDocumentTx validates and posts a document inside the caller's
// transaction: the document row, its lines, their transaction rows and the
// ledger balance updates all land together or not at all.
func commitDocumentTx(tx *gorm.DB, kind models.DocumentKind, projectID uint, fiscalYearID *uint,
	date time.Time, description string, lines []accounting.Line, journalType models.JournalType) (*models.JournalDocument, error) {
	if err := accounting.ValidateLines(lines); err != nil {
		return nil, err
	}
	doc := models.JournalDocument{ProjectID: projectID, FiscalYearID: fiscalYearID, Kind: kind,
		Date: date, Description: description, Reference: uuid.NewString()}
	if err := tx.Create(&doc).Error; err != nil {
		return nil, err
	}
	for _, l := range lines {
		dl := models.DocumentLine{DocumentID: doc.ID, AccountID: l.AccountID, Debit: l.Debit, Credit: l.Credit}
		if err := tx.Create(&dl).Error; err != nil {
			return nil, err
		}
		if err := postLine(tx, projectID, doc.ID, date, l, journalType); err != nil {
			return nil, err
		}
	}
	// Anchor the document at the project's transaction high-water mark so
	// period-start replays work even when the document posted nothing itself.
	var lastID uint
	if err := tx.Model(&models.Transaction{}).Where("project_id = ?", projectID).
		Select("COALESCE(MAX(id), 0)").Scan(&lastID).Error; err != nil {
		return nil, err
	}
	doc.LastTransactionID = lastID
	if err := tx.Model(&models.JournalDocument{}).Where("id = ?", doc.ID).
		Update("last_transaction_id", lastID).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// postOpeningEntry commits the period-start document. For a brand-new
// project an initialCapital figure is posted as a credit to the equity
// initial-capital account; the supplied asset lines must absorb the matching
// debit so the document still balances as a whole.
func postOpeningEntry(projectID uint, fiscalYearID *uint, date time.Time, description string,
	lines []accounting.Line, initialCapital decimal.Decimal) (*models.JournalDocument, error) {
	q := db.Model(&models.JournalDocument{}).Where("project_id = ? AND kind = ?", projectID, models.DocumentOpening)
	if fiscalYearID != nil {
		q = q.Where("fiscal_year_id = ?", *fiscalYearID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, accounting.ErrAlreadyInitialized
	}
	if initialCapital.Sign() > 0 {
		capAcc, err := findAccountByCode(db, projectID, accounting.InitialCapitalCode)
		if err != nil {
			return nil, fmt.Errorf("initial capital account (code %s) missing: %w", accounting.InitialCapitalCode, err)
		}
		lines = append(lines, accounting.Line{AccountID: capAcc.ID, Credit: initialCapital})
	}
	var doc *models.JournalDocument
	err := db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		doc, txErr = commitDocumentTx(tx, models.DocumentOpening, projectID, fiscalYearID, date, description, lines, models.JournalGeneralLedger)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// postClosingEntry runs the period-end transition: operator overrides are
// checked against the editable flags and the balance invariant, income and
// expense accounts are zeroed into retained earnings, and the fiscal year (if
// scoped) is marked closed — all inside one transaction.
func postClosingEntry(projectID uint, fiscalYearID *uint, date time.Time, description string,
	overrides map[uint]decimal.Decimal) (*models.JournalDocument, *accounting.ClosingResult, error) {
	if fiscalYearID != nil {
		var fy models.FiscalYear
		if err := db.First(&fy, *fiscalYearID).Error; err != nil {
			return nil, nil, err
		}
		if fy.Closed {
			return nil, nil, accounting.ErrAlreadyClosed
		}
	}
	accounts, err := loadProjectAccounts(db, projectID)
	if err != nil {
		return nil, nil, err
	}
	balances, err := loadBalances(db, projectID)
	if err != nil {
		return nil, nil, err
	}
	balances, err = accounting.ApplyOverrides(accounts, balances, overrides)
	if err != nil {
		return nil, nil, err
	}
	if len(overrides) > 0 {
		if err := accounting.ValidateBalances(balances); err != nil {
			return nil, nil, err
		}
	}
	reAcc, err := findAccountByCode(db, projectID, accounting.RetainedEarningsCode)
	if err != nil {
		return nil, nil, fmt.Errorf("retained earnings account (code %s) missing: %w", accounting.RetainedEarningsCode, err)
	}
	res := accounting.BuildClosing(accounts, balances, reAcc.ID)

	// An empty plan is only meaningful once: it anchors the period start. A
	// repeat with still nothing to close would just duplicate the document.
	if len(res.Lines) == 0 {
		q := db.Model(&models.JournalDocument{}).Where("project_id = ? AND kind = ?", projectID, models.DocumentClosing)
		if fiscalYearID != nil {
			q = q.Where("fiscal_year_id = ?", *fiscalYearID)
		}
		var prior int64
		if err := q.Count(&prior).Error; err != nil {
			return nil, nil, err
		}
		if prior > 0 {
			return nil, nil, accounting.ErrAlreadyClosed
		}
	}

	var doc *models.JournalDocument
	err = db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		doc, txErr = commitDocumentTx(tx, models.DocumentClosing, projectID, fiscalYearID, date, description, res.Lines, models.JournalGeneralLedger)
		if txErr != nil {
			return txErr
		}
		if fiscalYearID != nil {
			return tx.Model(&models.FiscalYear{}).Where("id = ?", *fiscalYearID).Update("closed", true).Error
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return doc, &res, nil
}

// openingBalances re-derives each account's balance right after the most
// recent closing transition by replaying the transaction log up to the last
// posting of that document. Nothing is snapshotted, so the figures cannot
// drift from the ledger. Before any closing exists the opening document (if
// present) defines the period start.
func openingBalances(projectID uint) (map[uint]decimal.Decimal, error) {
	out := make(map[uint]decimal.Decimal)
	var doc models.JournalDocument
	err := db.Where("project_id = ? AND kind = ?", projectID, models.DocumentClosing).Order("id desc").First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = db.Where("project_id = ? AND kind = ?", projectID, models.DocumentOpening).Order("id desc").First(&doc).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return out, nil
		}
	}
	if err != nil {
		return nil, err
	}
	lastID := doc.LastTransactionID
	if lastID == 0 {
		// documents from before the anchor column fall back to their own postings
		if err := db.Model(&models.Transaction{}).Where("document_id = ?", doc.ID).
			Select("COALESCE(MAX(id), 0)").Scan(&lastID).Error; err != nil {
			return nil, err
		}
	}
	var txns []models.Transaction
	if err := db.Where("project_id = ? AND id <= ?", projectID, lastID).Find(&txns).Error; err != nil {
		return nil, err
	}
	for _, t := range txns {
		d := t.Amount
		if t.Type == models.TransactionCredit {
			d = d.Neg()
		}
		out[t.AccountID] = out[t.AccountID].Add(d)
	}
	return out, nil
}
