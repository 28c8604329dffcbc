package repositories

import (
	"context"

	"gorm.io/gorm"

	"pharmatrack/internal/adapters/persistence/models"
)

// purchaseRepository implements PurchaseRepository interface
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

// List lists purchases with pagination, newest first
func (r *purchaseRepository) List(ctx context.Context, offset, limit int) ([]*models.Purchase, int64, error) {
	var purchases []*models.Purchase
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Purchase{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Drug").
		Order("purchase_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&purchases).Error
	if err != nil {
		return nil, 0, err
	}

	return purchases, total, nil
}
