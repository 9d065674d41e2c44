package main

import (
	"log"
	"os"
	"strings"

	"arkas/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB() {
	var err error
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true). Any permission errors will be logged and ignored.
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	// Ensure the roles master table exists first and seed it so users FK can be applied safely.
	if shouldMigrate {
		if err := db.AutoMigrate(&models.Role{}); err != nil {
			log.Printf("migration warning (roles): %v", err)
		}
	}
	seedRoles()

	if shouldMigrate {
		// Migrate models individually so a failure on one doesn't block others.
		// Order matters for FK-carrying tables (accounts before ledgers etc).
		steps := []struct {
			name  string
			model any
		}{
			{"users", &models.User{}},
			{"refresh_tokens", &models.RefreshToken{}},
			{"projects", &models.Project{}},
			{"fiscal_years", &models.FiscalYear{}},
			{"accounts", &models.Account{}},
			{"ledger_entries", &models.LedgerEntry{}},
			{"transactions", &models.Transaction{}},
			{"journal_documents", &models.JournalDocument{}},
			{"document_lines", &models.DocumentLine{}},
			{"installment_plans", &models.InstallmentPlan{}},
			{"installments", &models.Installment{}},
			{"payments", &models.Payment{}},
			{"penalties", &models.Penalty{}},
		}
		for _, s := range steps {
			if err := db.AutoMigrate(s.model); err != nil {
				log.Printf("migration warning (%s): %v", s.name, err)
			}
		}
	}

	// Ensure uniqueness guards exist on tables that may predate the model tags
	if shouldMigrate {
		if err := ensureUniqueIndexes(); err != nil {
			log.Printf("warning: ensuring unique indexes failed: %v", err)
		}
	}
	seedDB()
}

// ensureUniqueIndexes adds the ledger and penalty uniqueness guards if they are
// missing. One ledger row per (project, account) and one live penalty row per
// installment are hard invariants of the engine.
func ensureUniqueIndexes() error {
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_project_account ON ledger_entries(project_id, account_id)`).Error; err != nil {
		return err
	}
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_penalties_installment ON penalties(installment_id)`).Error
}

func seedRoles() {
	roles := []models.Role{{Name: "administrator", Description: "full access"}, {Name: "user", Description: "regular user"}}
	for _, r := range roles {
		var cnt int64
		db.Model(&models.Role{}).Where("name = ?", r.Name).Count(&cnt)
		if cnt == 0 {
			db.Create(&r)
		}
	}
}

func seedDB() {
	seedRoles()

	// Check if admin user exists
	var count int64
	db.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	if count == 0 {
		// find administrator role id
		var role models.Role
		if err := db.Where("name = ?", "administrator").First(&role).Error; err != nil {
			log.Printf("failed to find administrator role: %v", err)
		}
		// Seed admin user
		rid := role.ID
		admin := models.User{
			Username: "admin",
			RoleID:   &rid,
		}
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		admin.HashedPassword = hashedPassword
		db.Create(&admin)
		log.Println("Seeded admin user: username=admin, password=admin123")
	}
}
