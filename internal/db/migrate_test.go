package db

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/invoicing-api/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	return conn
}

func TestMigrateCreatesSchemaAndLedger(t *testing.T) {
	conn := openTestDB(t)
	require.NoError(t, Migrate(conn, true))

	for _, table := range []string{"_migrations", "products", "clients", "invoices", "invoice_items"} {
		require.True(t, conn.Migrator().HasTable(table), "missing table %s", table)
	}

	var names []string
	require.NoError(t, conn.Model(&models.SchemaMigration{}).Order("id").Pluck("name", &names).Error)
	require.Equal(t, []string{
		"002_create_products_table",
		"003_create_clients_table",
		"004_create_invoices_table",
		"005_create_invoice_items_table",
		"006_seed_products_and_clients",
	}, names)

	var productCount, clientCount int64
	require.NoError(t, conn.Model(&models.Product{}).Count(&productCount).Error)
	require.NoError(t, conn.Model(&models.Client{}).Count(&clientCount).Error)
	require.EqualValues(t, 8, productCount)
	require.EqualValues(t, 5, clientCount)
}

func TestMigrateIsIdempotent(t *testing.T) {
	conn := openTestDB(t)
	require.NoError(t, Migrate(conn, true))
	require.NoError(t, Migrate(conn, true))

	// Seed rows must not be duplicated by the rerun.
	var productCount, ledgerCount int64
	require.NoError(t, conn.Model(&models.Product{}).Count(&productCount).Error)
	require.NoError(t, conn.Model(&models.SchemaMigration{}).Count(&ledgerCount).Error)
	require.EqualValues(t, 8, productCount)
	require.EqualValues(t, 5, ledgerCount)
}

func TestMigrateWithoutSeedLeavesSeedPending(t *testing.T) {
	conn := openTestDB(t)
	require.NoError(t, Migrate(conn, false))

	var productCount int64
	require.NoError(t, conn.Model(&models.Product{}).Count(&productCount).Error)
	require.Zero(t, productCount)

	var ledgerCount int64
	require.NoError(t, conn.Model(&models.SchemaMigration{}).Where("name = ?", "006_seed_products_and_clients").Count(&ledgerCount).Error)
	require.Zero(t, ledgerCount)

	// The unit stays pending: a later seeded run applies it.
	require.NoError(t, Migrate(conn, true))
	require.NoError(t, conn.Model(&models.Product{}).Count(&productCount).Error)
	require.EqualValues(t, 8, productCount)
}

func TestDowngradeRevertsSingleUnit(t *testing.T) {
	conn := openTestDB(t)
	require.NoError(t, Migrate(conn, true))

	require.NoError(t, Downgrade(conn, "006_seed_products_and_clients"))
	var productCount int64
	require.NoError(t, conn.Model(&models.Product{}).Count(&productCount).Error)
	require.Zero(t, productCount)

	// Only the named unit's ledger row is gone; the schema units stay.
	var ledgerCount int64
	require.NoError(t, conn.Model(&models.SchemaMigration{}).Count(&ledgerCount).Error)
	require.EqualValues(t, 4, ledgerCount)
	require.True(t, conn.Migrator().HasTable("invoices"))

	require.Error(t, Downgrade(conn, "042_no_such_unit"))
}

func TestDowngradeThenMigrateReapplies(t *testing.T) {
	conn := openTestDB(t)
	require.NoError(t, Migrate(conn, true))

	require.NoError(t, Downgrade(conn, "005_create_invoice_items_table"))
	require.False(t, conn.Migrator().HasTable("invoice_items"))

	require.NoError(t, Migrate(conn, true))
	require.True(t, conn.Migrator().HasTable("invoice_items"))
}
