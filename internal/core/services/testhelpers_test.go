package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pharmatrack/internal/adapters/persistence/models"
	"pharmatrack/internal/config"
)

var testAlerts = config.AlertConfig{
	LowStockThreshold: 10,
	ExpiryHorizonDays: 90,
}

// newTestDB opens a fresh in-memory database. A single connection is
// forced so every goroutine in a test sees the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))

	return db
}

func createDrug(t *testing.T, db *gorm.DB, name string, quantity int, sellingPrice float64, expiry time.Time) *models.Drug {
	t.Helper()

	drug := &models.Drug{
		Name:         name,
		Category:     "Tablet",
		BatchNo:      "B-001",
		Manufacturer: "Acme Pharma",
		Quantity:     quantity,
		CostPrice:    sellingPrice / 2,
		SellingPrice: sellingPrice,
		ExpiryDate:   expiry,
	}
	require.NoError(t, db.Create(drug).Error)

	return drug
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
