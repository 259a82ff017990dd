package infra

import (
	"fmt"

	"github.com/layebamba/Fadj-MA/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that
// GORM cannot express (sequences, partial indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true, // map unique violations to gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.User{},
		&model.MedicineGroup{},
		&model.Supplier{},
		&model.Medicine{},
		&model.Client{},
		&model.Sale{},
		&model.SaleItem{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}

	return db, nil
}

// applySchemaPatches runs idempotent DDL statements that AutoMigrate cannot
// fully handle on its own. Each statement uses IF NOT EXISTS semantics so
// re-running on an already-patched DB is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// Sale numbers are drawn from a sequence so two concurrent sales can
		// never be assigned the same number.
		{"create sale number sequence",
			`CREATE SEQUENCE IF NOT EXISTS sales_sale_number_seq START 1`},
		// Partial index backing the expiring_soon / expired catalog queries.
		{"create medicines expiration index", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_medicines_expiration') THEN
    CREATE INDEX idx_medicines_expiration
        ON medicines (expiration_date)
        WHERE expiration_date IS NOT NULL;
  END IF;
END $$`},
		// Index for the per-day sale listings (DATE(created_at) filters).
		{"create sales created_at date index", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_sales_created_at_date') THEN
    CREATE INDEX idx_sales_created_at_date ON sales ((DATE(created_at)));
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
