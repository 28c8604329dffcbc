package services

import (
	"context"
	"time"

	"pharmatrack/internal/adapters/persistence/models"
	"pharmatrack/internal/adapters/persistence/repositories"
)

// DashboardService aggregates inventory and sales statistics for the
// landing view. Read-only.
type DashboardService struct {
	drugRepo     repositories.DrugRepository
	saleRepo     repositories.SaleRepository
	userRepo     repositories.UserRepository
	alertService *AlertService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	drugRepo repositories.DrugRepository,
	saleRepo repositories.SaleRepository,
	userRepo repositories.UserRepository,
	alertService *AlertService,
) *DashboardService {
	return &DashboardService{
		drugRepo:     drugRepo,
		saleRepo:     saleRepo,
		userRepo:     userRepo,
		alertService: alertService,
	}
}

// DashboardData represents dashboard statistics
type DashboardData struct {
	TotalDrugs    int64 `json:"total_drugs"`
	TotalUsers    int64 `json:"total_users"`
	LowStockDrugs int64 `json:"low_stock_drugs"`
	ExpiringSoon  int64 `json:"expiring_soon"`
	ExpiredDrugs  int64 `json:"expired_drugs"`

	SalesToday   int64   `json:"sales_today"`
	RevenueToday float64 `json:"revenue_today"`

	RecentSales []*models.Sale `json:"recent_sales"`
}

const recentSalesLimit = 5

// Get returns dashboard statistics as of now
func (s *DashboardService) Get(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{}
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var err error
	if data.TotalDrugs, err = s.drugRepo.Count(ctx); err != nil {
		return nil, err
	}
	if data.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}

	counts, err := s.alertService.Counts(ctx, startOfDay)
	if err != nil {
		return nil, err
	}
	data.LowStockDrugs = counts.LowStock
	data.ExpiringSoon = counts.ExpiringSoon
	data.ExpiredDrugs = counts.Expired

	salesToday, revenueToday, err := s.saleRepo.WindowTotals(ctx, startOfDay, startOfDay.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	data.SalesToday = salesToday
	data.RevenueToday = revenueToday

	if data.RecentSales, err = s.saleRepo.Recent(ctx, recentSalesLimit); err != nil {
		return nil, err
	}

	return data, nil
}
