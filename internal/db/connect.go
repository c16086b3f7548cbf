package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options controls how the database connection is opened.
type Options struct {
	DSN   string
	Debug bool // log SQL statements
	Seed  bool // insert catalog seed data during migration
}

// Connect opens the database behind the DSN. Postgres-shaped DSNs use the
// postgres driver; everything else is opened as sqlite, which is also the
// default engine.
func Connect(opts Options) (*gorm.DB, error) {
	dsn := NormalizeDSN(opts.DSN)
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is empty")
	}
	logLevel := logger.Silent
	if opts.Debug {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var dialector gorm.Dialector
	if IsPostgresDSN(dsn) {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}
	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}
	return db, nil
}

// ConnectAndMigrate opens the database and brings the schema up to date.
func ConnectAndMigrate(opts Options) (*gorm.DB, error) {
	db, err := Connect(opts)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db, opts.Seed); err != nil {
		return nil, err
	}
	// sanity check: ensure required core tables exist
	for _, table := range []string{"products", "clients", "invoices", "invoice_items"} {
		if !db.Migrator().HasTable(table) {
			return nil, fmt.Errorf("missing table after migration: %s", table)
		}
	}
	return db, nil
}
