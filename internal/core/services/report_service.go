package services

import (
	"context"
	"errors"
	"time"

	"pharmatrack/internal/adapters/persistence/models"
	"pharmatrack/internal/adapters/persistence/repositories"
	"pharmatrack/internal/config"
)

// Report periods
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

var ErrUnknownPeriod = errors.New("unknown report period")

// ReportService composes read-only reports from the drug table and
// the sale ledger. Snapshot prices on sale rows are reported as
// recorded, never recomputed from current drug prices.
type ReportService struct {
	drugRepo repositories.DrugRepository
	saleRepo repositories.SaleRepository
	alerts   config.AlertConfig
}

// NewReportService creates a new report service
func NewReportService(
	drugRepo repositories.DrugRepository,
	saleRepo repositories.SaleRepository,
	alerts config.AlertConfig,
) *ReportService {
	return &ReportService{
		drugRepo: drugRepo,
		saleRepo: saleRepo,
		alerts:   alerts,
	}
}

// StockReport represents the stock report payload
type StockReport struct {
	Drugs []*models.Drug `json:"drugs"`
}

// ExpiryReport represents the expiry report payload
type ExpiryReport struct {
	Expired      []*models.Drug `json:"expired"`
	ExpiringSoon []*models.Drug `json:"expiring_soon"`
	HorizonDays  int            `json:"horizon_days"`
}

// SalesReport represents the sales report payload
type SalesReport struct {
	Period       string         `json:"period"`
	StartDate    time.Time      `json:"start_date"`
	Sales        []*models.Sale `json:"sales"`
	TotalCount   int64          `json:"total_count"`
	TotalRevenue float64        `json:"total_revenue"`
}

// Stock returns all drugs ordered by name
func (s *ReportService) Stock(ctx context.Context) (*StockReport, error) {
	drugs, err := s.drugRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &StockReport{Drugs: drugs}, nil
}

// Expiry partitions drugs into expired and expiring-soon as of the
// given date. A drug expiring exactly on that date is expired.
func (s *ReportService) Expiry(ctx context.Context, asOf time.Time) (*ExpiryReport, error) {
	expired, err := s.drugRepo.ListExpired(ctx, asOf)
	if err != nil {
		return nil, err
	}

	expiringSoon, err := s.drugRepo.ListExpiringSoon(ctx, asOf, s.alerts.ExpiryHorizonDays)
	if err != nil {
		return nil, err
	}

	return &ExpiryReport{
		Expired:      expired,
		ExpiringSoon: expiringSoon,
		HorizonDays:  s.alerts.ExpiryHorizonDays,
	}, nil
}

// Sales returns sales in the period's window ending now, newest first.
// daily covers today's calendar date only, weekly the last 7 days,
// monthly the last 30 days; the window start is inclusive.
func (s *ReportService) Sales(ctx context.Context, period string, asOf time.Time) (*SalesReport, error) {
	startOfDay := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())

	var from time.Time
	switch period {
	case PeriodDaily:
		from = startOfDay
	case PeriodWeekly:
		from = startOfDay.AddDate(0, 0, -7)
	case PeriodMonthly:
		from = startOfDay.AddDate(0, 0, -30)
	default:
		return nil, ErrUnknownPeriod
	}

	// Daily reports stop at midnight so tomorrow's sales never leak in;
	// longer windows run through the current moment.
	to := startOfDay.AddDate(0, 0, 1)

	sales, err := s.saleRepo.ListWindow(ctx, from, to)
	if err != nil {
		return nil, err
	}

	count, revenue, err := s.saleRepo.WindowTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &SalesReport{
		Period:       period,
		StartDate:    from,
		Sales:        sales,
		TotalCount:   count,
		TotalRevenue: revenue,
	}, nil
}
