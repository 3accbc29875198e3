package db

import (
	"fmt"

	"gorm.io/gorm"
)

var postgresStatements = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		jurisdiction TEXT NOT NULL DEFAULT '',
		business_activity TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_clients_email ON clients (email);`,
	`CREATE TABLE IF NOT EXISTS quotations (
		id BIGSERIAL PRIMARY KEY,
		client_id BIGINT NOT NULL REFERENCES clients(id),
		quotation_no VARCHAR(32) NOT NULL,
		date DATE NOT NULL,
		valid_till DATE NOT NULL,
		jurisdiction TEXT NOT NULL DEFAULT '',
		business_activity TEXT NOT NULL DEFAULT '',
		service_key VARCHAR(64),
		sub_total NUMERIC(18,2) NOT NULL DEFAULT 0,
		vat_total NUMERIC(18,2) NOT NULL DEFAULT 0,
		grand_total NUMERIC(18,2) NOT NULL DEFAULT 0,
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		remarks TEXT NOT NULL DEFAULT '',
		pdf_path TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_quotations_no ON quotations (quotation_no);`,
	`CREATE INDEX IF NOT EXISTS idx_quotations_client_id ON quotations (client_id);`,
	`CREATE INDEX IF NOT EXISTS idx_quotations_status ON quotations (status);`,
	`CREATE TABLE IF NOT EXISTS quotation_items (
		id BIGSERIAL PRIMARY KEY,
		quotation_id BIGINT NOT NULL REFERENCES quotations(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		description TEXT NOT NULL,
		quantity NUMERIC(18,3) NOT NULL,
		rate NUMERIC(18,2) NOT NULL,
		vat_percent NUMERIC(5,2) NOT NULL DEFAULT 0,
		amount NUMERIC(18,2) NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_quotation_items_quotation_id ON quotation_items (quotation_id, position);`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id BIGSERIAL PRIMARY KEY,
		client_id BIGINT NOT NULL REFERENCES clients(id),
		quotation_id BIGINT NOT NULL REFERENCES quotations(id),
		invoice_no VARCHAR(32) NOT NULL,
		date DATE NOT NULL,
		due_date DATE NOT NULL,
		amount NUMERIC(18,2) NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'unpaid',
		pdf_path TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_invoices_no ON invoices (invoice_no);`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_client_id ON invoices (client_id);`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_quotation_id ON invoices (quotation_id);`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_status ON invoices (status);`,
	`CREATE TABLE IF NOT EXISTS document_sequences (
		doc_type VARCHAR(16) NOT NULL,
		epoch INTEGER NOT NULL,
		last_value BIGINT NOT NULL,
		PRIMARY KEY (doc_type, epoch)
	);`,
}

var sqliteStatements = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		jurisdiction TEXT NOT NULL DEFAULT '',
		business_activity TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_clients_email ON clients (email);`,
	`CREATE TABLE IF NOT EXISTS quotations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id INTEGER NOT NULL REFERENCES clients(id),
		quotation_no TEXT NOT NULL,
		date DATE NOT NULL,
		valid_till DATE NOT NULL,
		jurisdiction TEXT NOT NULL DEFAULT '',
		business_activity TEXT NOT NULL DEFAULT '',
		service_key TEXT,
		sub_total NUMERIC NOT NULL DEFAULT 0,
		vat_total NUMERIC NOT NULL DEFAULT 0,
		grand_total NUMERIC NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'pending',
		remarks TEXT NOT NULL DEFAULT '',
		pdf_path TEXT,
		created_at DATETIME NOT NULL
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_quotations_no ON quotations (quotation_no);`,
	`CREATE INDEX IF NOT EXISTS idx_quotations_client_id ON quotations (client_id);`,
	`CREATE INDEX IF NOT EXISTS idx_quotations_status ON quotations (status);`,
	`CREATE TABLE IF NOT EXISTS quotation_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		quotation_id INTEGER NOT NULL REFERENCES quotations(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		description TEXT NOT NULL,
		quantity NUMERIC NOT NULL,
		rate NUMERIC NOT NULL,
		vat_percent NUMERIC NOT NULL DEFAULT 0,
		amount NUMERIC NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_quotation_items_quotation_id ON quotation_items (quotation_id, position);`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id INTEGER NOT NULL REFERENCES clients(id),
		quotation_id INTEGER NOT NULL REFERENCES quotations(id),
		invoice_no TEXT NOT NULL,
		date DATE NOT NULL,
		due_date DATE NOT NULL,
		amount NUMERIC NOT NULL,
		status TEXT NOT NULL DEFAULT 'unpaid',
		pdf_path TEXT,
		created_at DATETIME NOT NULL
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_invoices_no ON invoices (invoice_no);`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_client_id ON invoices (client_id);`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_quotation_id ON invoices (quotation_id);`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_status ON invoices (status);`,
	`CREATE TABLE IF NOT EXISTS document_sequences (
		doc_type TEXT NOT NULL,
		epoch INTEGER NOT NULL,
		last_value INTEGER NOT NULL,
		PRIMARY KEY (doc_type, epoch)
	);`,
}

// Migrate applies the schema for the connected dialect. Every statement is
// idempotent, so it runs on each start.
func Migrate(db *gorm.DB) error {
	statements := postgresStatements
	if db.Dialector.Name() == "sqlite" {
		statements = sqliteStatements
	}
	for i, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
