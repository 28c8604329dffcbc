package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmatrack/internal/adapters/persistence/repositories"
)

func TestAlertCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewAlertService(repositories.NewDrugRepository(db), testAlerts)
	ctx := context.Background()

	today := dateOnly(time.Now())

	// Expiry boundaries around today and the 90 day horizon
	createDrug(t, db, "Expired Yesterday", 50, 1.00, today.AddDate(0, 0, -1))
	createDrug(t, db, "Expires Today", 50, 1.00, today)
	createDrug(t, db, "Expires Tomorrow", 50, 1.00, today.AddDate(0, 0, 1))
	createDrug(t, db, "Expires At Horizon", 50, 1.00, today.AddDate(0, 0, 90))
	createDrug(t, db, "Expires Past Horizon", 50, 1.00, today.AddDate(0, 0, 91))

	// Stock boundaries around the threshold of 10
	createDrug(t, db, "Low Stock Nine", 9, 1.00, today.AddDate(1, 0, 0))
	createDrug(t, db, "Stock At Threshold", 10, 1.00, today.AddDate(1, 0, 0))

	counts, err := svc.Counts(ctx, today)
	require.NoError(t, err)

	// A drug expiring exactly today is expired, not expiring soon;
	// one expiring exactly at the horizon still counts as soon
	assert.Equal(t, int64(2), counts.Expired)
	assert.Equal(t, int64(2), counts.ExpiringSoon)

	// quantity < 10 is low stock, 10 itself is not
	assert.Equal(t, int64(1), counts.LowStock)
}

func TestAlertCounts_Empty(t *testing.T) {
	db := newTestDB(t)
	svc := NewAlertService(repositories.NewDrugRepository(db), testAlerts)

	counts, err := svc.Counts(context.Background(), time.Now())
	require.NoError(t, err)

	assert.Zero(t, counts.LowStock)
	assert.Zero(t, counts.ExpiringSoon)
	assert.Zero(t, counts.Expired)
}

func TestAlertConfigAccessors(t *testing.T) {
	db := newTestDB(t)
	svc := NewAlertService(repositories.NewDrugRepository(db), testAlerts)

	assert.Equal(t, 10, svc.LowStockThreshold())
	assert.Equal(t, 90, svc.ExpiryHorizonDays())
}
