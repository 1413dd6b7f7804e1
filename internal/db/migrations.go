package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS contracts (
		id SERIAL PRIMARY KEY,
		vehicle_id VARCHAR(24) NOT NULL,
		customer_id VARCHAR(24) NOT NULL,
		sign_datetime TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		loc_begin_datetime TIMESTAMPTZ NOT NULL,
		loc_end_datetime TIMESTAMPTZ NOT NULL,
		loc_returning_datetime TIMESTAMPTZ,
		price NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_customer_id ON contracts (customer_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_vehicle_id ON contracts (vehicle_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_loc_end ON contracts (loc_end_datetime);`,
	`CREATE TABLE IF NOT EXISTS billings (
		id SERIAL PRIMARY KEY,
		contract_id INTEGER NOT NULL REFERENCES contracts(id),
		amount NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_billings_contract_id ON billings (contract_id);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
