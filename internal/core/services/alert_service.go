package services

import (
	"context"
	"time"

	"pharmatrack/internal/adapters/persistence/repositories"
	"pharmatrack/internal/config"
)

// AlertService derives low-stock and expiry classifications from the
// drug table and the current date. It never mutates state.
//
// One expiry horizon (config, default 90 days) is applied everywhere:
// dashboard, alert counts, drug filters and the expiry report.
type AlertService struct {
	drugRepo repositories.DrugRepository
	alerts   config.AlertConfig
}

// NewAlertService creates a new alert service
func NewAlertService(drugRepo repositories.DrugRepository, alerts config.AlertConfig) *AlertService {
	return &AlertService{
		drugRepo: drugRepo,
		alerts:   alerts,
	}
}

// AlertCounts represents stock and expiry alert counters
type AlertCounts struct {
	LowStock     int64 `json:"low_stock"`
	ExpiringSoon int64 `json:"expiring_soon"`
	Expired      int64 `json:"expired"`
}

// Counts returns alert counters as of the given date. A drug expiring
// exactly on that date counts as expired, not expiring soon.
func (s *AlertService) Counts(ctx context.Context, asOf time.Time) (*AlertCounts, error) {
	counts := &AlertCounts{}

	var err error
	if counts.LowStock, err = s.drugRepo.CountLowStock(ctx, s.alerts.LowStockThreshold); err != nil {
		return nil, err
	}
	if counts.Expired, err = s.drugRepo.CountExpired(ctx, asOf); err != nil {
		return nil, err
	}
	if counts.ExpiringSoon, err = s.drugRepo.CountExpiringSoon(ctx, asOf, s.alerts.ExpiryHorizonDays); err != nil {
		return nil, err
	}

	return counts, nil
}

// LowStockThreshold exposes the configured threshold
func (s *AlertService) LowStockThreshold() int {
	return s.alerts.LowStockThreshold
}

// ExpiryHorizonDays exposes the configured horizon
func (s *AlertService) ExpiryHorizonDays() int {
	return s.alerts.ExpiryHorizonDays
}
