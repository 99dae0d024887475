package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRepositoryTestDB opens an in-memory database and creates the schema
// with raw DDL for SQLite compatibility.
func setupRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	statements := []string{
		`CREATE TABLE agencies (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			name TEXT NOT NULL,
			closed_won_stage_id TEXT
		)`,
		`CREATE TABLE collaborators (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			agency_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			commission_percentage REAL NOT NULL DEFAULT 0,
			commission_base TEXT NOT NULL DEFAULT 'sale_value',
			status TEXT NOT NULL DEFAULT 'active'
		)`,
		`CREATE TABLE stages (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			agency_id TEXT NOT NULL,
			name TEXT NOT NULL,
			color TEXT,
			is_closed INTEGER NOT NULL DEFAULT 0,
			is_lost INTEGER NOT NULL DEFAULT 0,
			sort_order INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE proposals (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			agency_id TEXT NOT NULL,
			client_id TEXT,
			collaborator_id TEXT,
			created_by TEXT NOT NULL,
			stage_id TEXT NOT NULL,
			title TEXT NOT NULL,
			discount_percent REAL NOT NULL DEFAULT 0,
			notes TEXT,
			number INTEGER NOT NULL
		)`,
		`CREATE TABLE service_items (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			proposal_id TEXT NOT NULL,
			type TEXT NOT NULL,
			description TEXT,
			value REAL NOT NULL DEFAULT 0,
			commission_type TEXT NOT NULL DEFAULT 'percentage',
			commission_value REAL NOT NULL DEFAULT 0,
			details TEXT,
			start_date DATETIME,
			end_date DATETIME,
			calendar_date DATETIME
		)`,
		`CREATE TABLE financial_transactions (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			agency_id TEXT NOT NULL,
			proposal_id TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT 'income',
			status TEXT NOT NULL DEFAULT 'pending',
			description TEXT,
			total_value REAL NOT NULL DEFAULT 0,
			profit_value REAL NOT NULL DEFAULT 0,
			launch_date DATETIME NOT NULL
		)`,
		`CREATE TABLE commission_records (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			collaborator_id TEXT NOT NULL,
			proposal_id TEXT NOT NULL,
			sale_value REAL NOT NULL DEFAULT 0,
			profit_value REAL NOT NULL DEFAULT 0,
			commission_percentage REAL NOT NULL DEFAULT 0,
			commission_base TEXT NOT NULL,
			commission_amount REAL NOT NULL DEFAULT 0,
			period_month INTEGER NOT NULL,
			period_year INTEGER NOT NULL
		)`,
		`CREATE TABLE proposal_histories (
			id TEXT PRIMARY KEY,
			proposal_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			action TEXT NOT NULL,
			description TEXT,
			old_value TEXT,
			new_value TEXT,
			created_at DATETIME NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}
	}

	return db
}
