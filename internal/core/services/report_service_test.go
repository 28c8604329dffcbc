package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pharmatrack/internal/adapters/persistence/models"
	"pharmatrack/internal/adapters/persistence/repositories"
)

func newReportService(db *gorm.DB) *ReportService {
	return NewReportService(repositories.NewDrugRepository(db), repositories.NewSaleRepository(db), testAlerts)
}

func createSale(t *testing.T, db *gorm.DB, drugID uint, qty int, unitPrice float64, saleDate time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.Sale{
		DrugID:     drugID,
		Quantity:   qty,
		UnitPrice:  unitPrice,
		TotalPrice: float64(qty) * unitPrice,
		StaffName:  "admin",
		SaleDate:   saleDate,
	}).Error)
}

func TestStockReport(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)

	future := time.Now().AddDate(1, 0, 0)
	createDrug(t, db, "Zinc 50mg", 10, 1.00, future)
	createDrug(t, db, "Aspirin 75mg", 10, 1.00, future)

	report, err := svc.Stock(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Drugs, 2)
	assert.Equal(t, "Aspirin 75mg", report.Drugs[0].Name)
	assert.Equal(t, "Zinc 50mg", report.Drugs[1].Name)
}

func TestExpiryReport(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)

	today := dateOnly(time.Now())
	createDrug(t, db, "Long Expired", 10, 1.00, today.AddDate(0, 0, -30))
	createDrug(t, db, "Expires Today", 10, 1.00, today)
	createDrug(t, db, "Expires Soon", 10, 1.00, today.AddDate(0, 0, 45))
	createDrug(t, db, "Far Future", 10, 1.00, today.AddDate(1, 0, 0))

	report, err := svc.Expiry(context.Background(), today)
	require.NoError(t, err)

	require.Len(t, report.Expired, 2)
	require.Len(t, report.ExpiringSoon, 1)
	assert.Equal(t, "Expires Soon", report.ExpiringSoon[0].Name)
	assert.Equal(t, 90, report.HorizonDays)

	// Expired drugs come oldest expiry first
	assert.Equal(t, "Long Expired", report.Expired[0].Name)
}

func TestSalesReport_Windows(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	ctx := context.Background()

	drug := createDrug(t, db, "Paracetamol 500mg", 100, 1.00, time.Now().AddDate(1, 0, 0))

	now := time.Now()
	createSale(t, db, drug.ID, 2, 1.00, now)
	createSale(t, db, drug.ID, 1, 1.00, now.AddDate(0, 0, -3))
	createSale(t, db, drug.ID, 5, 1.00, now.AddDate(0, 0, -20))
	createSale(t, db, drug.ID, 4, 1.00, now.AddDate(0, 0, -60))

	daily, err := svc.Sales(ctx, PeriodDaily, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), daily.TotalCount)
	assert.InDelta(t, 2.00, daily.TotalRevenue, 0.001)

	weekly, err := svc.Sales(ctx, PeriodWeekly, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), weekly.TotalCount)
	assert.InDelta(t, 3.00, weekly.TotalRevenue, 0.001)

	monthly, err := svc.Sales(ctx, PeriodMonthly, now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), monthly.TotalCount)
	assert.InDelta(t, 8.00, monthly.TotalRevenue, 0.001)
	assert.Len(t, monthly.Sales, 3)

	// Newest first
	assert.Equal(t, 2, monthly.Sales[0].Quantity)
	assert.Equal(t, 1, monthly.Sales[1].Quantity)
	assert.Equal(t, 5, monthly.Sales[2].Quantity)
}

func TestSalesReport_EmptyWindow(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)

	report, err := svc.Sales(context.Background(), PeriodDaily, time.Now())
	require.NoError(t, err)

	assert.Zero(t, report.TotalCount)
	assert.Zero(t, report.TotalRevenue)
	assert.Empty(t, report.Sales)
}

func TestSalesReport_UnknownPeriod(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)

	_, err := svc.Sales(context.Background(), "yearly", time.Now())
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}

func TestSalesReport_SnapshotPrices(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	ctx := context.Background()

	drug := createDrug(t, db, "Ibuprofen 200mg", 100, 2.50, time.Now().AddDate(1, 0, 0))
	createSale(t, db, drug.ID, 2, 2.50, time.Now())

	// A later price change must not alter reported revenue
	require.NoError(t, db.Model(&models.Drug{}).Where("id = ?", drug.ID).Update("selling_price", 99.0).Error)

	report, err := svc.Sales(ctx, PeriodDaily, time.Now())
	require.NoError(t, err)
	assert.InDelta(t, 5.00, report.TotalRevenue, 0.001)
}
