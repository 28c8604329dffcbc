package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"pharmatrack/internal/adapters/persistence/models"
)

// saleRepository implements SaleRepository interface
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

// List lists sales with pagination, newest first
func (r *saleRepository) List(ctx context.Context, offset, limit int) ([]*models.Sale, int64, error) {
	var sales []*models.Sale
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Sale{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Drug").
		Order("sale_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&sales).Error
	if err != nil {
		return nil, 0, err
	}

	return sales, total, nil
}

// ListWindow lists sales with sale_date in [from, to), newest first
func (r *saleRepository) ListWindow(ctx context.Context, from, to time.Time) ([]*models.Sale, error) {
	var sales []*models.Sale
	err := r.db.WithContext(ctx).
		Preload("Drug").
		Where("sale_date >= ? AND sale_date < ?", from, to).
		Order("sale_date DESC").
		Find(&sales).Error
	return sales, err
}

// Recent lists the most recent sales
func (r *saleRepository) Recent(ctx context.Context, limit int) ([]*models.Sale, error) {
	var sales []*models.Sale
	err := r.db.WithContext(ctx).
		Preload("Drug").
		Order("sale_date DESC").
		Limit(limit).
		Find(&sales).Error
	return sales, err
}

// WindowTotals returns sale count and revenue for sale_date in [from, to)
func (r *saleRepository) WindowTotals(ctx context.Context, from, to time.Time) (int64, float64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Sale{}).
		Where("sale_date >= ? AND sale_date < ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, 0, err
	}

	var revenue float64
	err = r.db.WithContext(ctx).
		Model(&models.Sale{}).
		Where("sale_date >= ? AND sale_date < ?", from, to).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&revenue).Error
	if err != nil {
		return 0, 0, err
	}

	return count, revenue, nil
}
