package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/diewo77/invoicing-api/internal/models"
)

// migration is one named, idempotent schema unit. apply brings the schema
// forward, revert undoes exactly this unit. Units carry no dependency graph;
// order in the slice is execution order.
type migration struct {
	name   string
	apply  func(tx *gorm.DB) error
	revert func(tx *gorm.DB) error
}

func migrations() []migration {
	return []migration{
		{
			name:   "002_create_products_table",
			apply:  func(tx *gorm.DB) error { return tx.AutoMigrate(&models.Product{}) },
			revert: func(tx *gorm.DB) error { return tx.Migrator().DropTable(&models.Product{}) },
		},
		{
			name:   "003_create_clients_table",
			apply:  func(tx *gorm.DB) error { return tx.AutoMigrate(&models.Client{}) },
			revert: func(tx *gorm.DB) error { return tx.Migrator().DropTable(&models.Client{}) },
		},
		{
			name:   "004_create_invoices_table",
			apply:  func(tx *gorm.DB) error { return tx.AutoMigrate(&models.Invoice{}) },
			revert: func(tx *gorm.DB) error { return tx.Migrator().DropTable(&models.Invoice{}) },
		},
		{
			name:   "005_create_invoice_items_table",
			apply:  func(tx *gorm.DB) error { return tx.AutoMigrate(&models.InvoiceItem{}) },
			revert: func(tx *gorm.DB) error { return tx.Migrator().DropTable(&models.InvoiceItem{}) },
		},
		{
			name:  "006_seed_products_and_clients",
			apply: seedCatalog,
			revert: func(tx *gorm.DB) error {
				if err := tx.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
					return err
				}
				return tx.Where("1 = 1").Delete(&models.Client{}).Error
			},
		},
	}
}

// Migrate applies every pending unit, one transaction per unit. A unit whose
// name is already in the `_migrations` ledger is skipped. When seed is false
// the catalog seed unit is left out entirely so it stays pending rather than
// being marked applied.
func Migrate(db *gorm.DB, seed bool) error {
	// The ledger has to exist before it can be consulted, so its creation is
	// not itself ledgered.
	if err := db.AutoMigrate(&models.SchemaMigration{}); err != nil {
		return fmt.Errorf("create migration ledger: %w", err)
	}
	for _, m := range migrations() {
		if !seed && m.name == "006_seed_products_and_clients" {
			continue
		}
		applied, err := isApplied(db, m.name)
		if err != nil {
			return err
		}
		if applied {
			log.Debug().Str("migration", m.name).Msg("already applied, skipping")
			continue
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := m.apply(tx); err != nil {
				return err
			}
			return tx.Create(&models.SchemaMigration{Name: m.name, AppliedAt: time.Now()}).Error
		})
		if err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
		log.Info().Str("migration", m.name).Msg("applied")
	}
	return nil
}

// Downgrade reverses a single named unit: its revert runs and its ledger row
// is removed in one transaction. Prior units stay applied.
func Downgrade(db *gorm.DB, name string) error {
	for _, m := range migrations() {
		if m.name != name {
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.revert(tx); err != nil {
				return err
			}
			return tx.Where("name = ?", name).Delete(&models.SchemaMigration{}).Error
		})
		if err != nil {
			return fmt.Errorf("downgrade %s: %w", name, err)
		}
		log.Info().Str("migration", name).Msg("reverted")
		return nil
	}
	return fmt.Errorf("unknown migration: %s", name)
}

func isApplied(db *gorm.DB, name string) (bool, error) {
	var count int64
	if err := db.Model(&models.SchemaMigration{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func seedCatalog(tx *gorm.DB) error {
	products := []models.Product{
		{Name: "Web Development", Price: 5000.00},
		{Name: "Mobile App Development", Price: 8000.00},
		{Name: "UI/UX Design", Price: 2500.00},
		{Name: "Cloud Infrastructure Setup", Price: 3500.00},
		{Name: "Database Design & Optimization", Price: 2000.00},
		{Name: "Technical Consulting", Price: 150.00},
		{Name: "Quality Assurance Testing", Price: 1500.00},
		{Name: "Maintenance & Support", Price: 1000.00},
	}
	if err := tx.Create(&products).Error; err != nil {
		return err
	}
	clients := []models.Client{
		{Name: "Acme Corporation", Address: "123 Business Ave, New York, NY 10001", CompanyRegistrationNo: "ACM-2024-001"},
		{Name: "TechStart Inc.", Address: "456 Innovation Blvd, San Francisco, CA 94105", CompanyRegistrationNo: "TECH-2024-002"},
		{Name: "Global Solutions Ltd.", Address: "789 Commerce Street, London, UK SW1A 1AA", CompanyRegistrationNo: "GLOB-2024-003"},
		{Name: "Bright Ventures LLC", Address: "321 Enterprise Way, Austin, TX 78701", CompanyRegistrationNo: "BRIT-2024-004"},
		{Name: "Coastal Trading Co.", Address: "654 Harbor Road, Miami, FL 33101", CompanyRegistrationNo: "COAST-2024-005"},
	}
	return tx.Create(&clients).Error
}
