package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"pharmatrack/internal/adapters/persistence/models"
)

// drugRepository implements DrugRepository interface
type drugRepository struct {
	db *gorm.DB
}

// NewDrugRepository creates a new drug repository
func NewDrugRepository(db *gorm.DB) DrugRepository {
	return &drugRepository{db: db}
}

// Create creates a new drug
func (r *drugRepository) Create(ctx context.Context, drug *models.Drug) error {
	return r.db.WithContext(ctx).Create(drug).Error
}

// GetByID gets a drug by ID
func (r *drugRepository) GetByID(ctx context.Context, id uint) (*models.Drug, error) {
	var drug models.Drug
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&drug).Error
	if err != nil {
		return nil, err
	}
	return &drug, nil
}

// Update updates a drug
func (r *drugRepository) Update(ctx context.Context, drug *models.Drug) error {
	return r.db.WithContext(ctx).Save(drug).Error
}

// Delete deletes a drug
func (r *drugRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Drug{}, id).Error
}

// List lists drugs matching the filter, ordered by name
func (r *drugRepository) List(ctx context.Context, filter *DrugFilter) ([]*models.Drug, error) {
	query := r.db.WithContext(ctx).Model(&models.Drug{})

	if filter != nil {
		if filter.Search != "" {
			query = query.Where("name LIKE ?", "%"+filter.Search+"%")
		}
		if filter.Category != "" {
			query = query.Where("category = ?", filter.Category)
		}
		switch filter.ExpiryFilter {
		case ExpiryFilterExpired:
			query = query.Where("expiry_date <= ?", filter.Today)
		case ExpiryFilterExpiringSoon:
			soonDate := filter.Today.AddDate(0, 0, filter.ExpiryHorizonDays)
			query = query.Where("expiry_date > ? AND expiry_date <= ?", filter.Today, soonDate)
		}
		if filter.StockFilter == StockFilterLowStock {
			query = query.Where("quantity < ?", filter.LowStockThreshold)
		}
	}

	var drugs []*models.Drug
	err := query.Order("name ASC").Find(&drugs).Error
	return drugs, err
}

// ListInStock lists drugs with quantity above zero, ordered by name
func (r *drugRepository) ListInStock(ctx context.Context) ([]*models.Drug, error) {
	var drugs []*models.Drug
	err := r.db.WithContext(ctx).
		Where("quantity > 0").
		Order("name ASC").
		Find(&drugs).Error
	return drugs, err
}

// ListExpired lists drugs whose expiry date has passed (inclusive of today)
func (r *drugRepository) ListExpired(ctx context.Context, today time.Time) ([]*models.Drug, error) {
	var drugs []*models.Drug
	err := r.db.WithContext(ctx).
		Where("expiry_date <= ?", today).
		Order("expiry_date ASC").
		Find(&drugs).Error
	return drugs, err
}

// ListExpiringSoon lists drugs expiring within the horizon, excluding already expired
func (r *drugRepository) ListExpiringSoon(ctx context.Context, today time.Time, horizonDays int) ([]*models.Drug, error) {
	soonDate := today.AddDate(0, 0, horizonDays)

	var drugs []*models.Drug
	err := r.db.WithContext(ctx).
		Where("expiry_date > ? AND expiry_date <= ?", today, soonDate).
		Order("expiry_date ASC").
		Find(&drugs).Error
	return drugs, err
}

// Search finds drugs by name fragment, returning lightweight results
func (r *drugRepository) Search(ctx context.Context, query string, limit int) ([]*models.DrugSearchResult, error) {
	var results []*models.DrugSearchResult
	err := r.db.WithContext(ctx).
		Model(&models.Drug{}).
		Select("id", "name", "quantity", "selling_price").
		Where("name LIKE ?", "%"+query+"%").
		Order("name ASC").
		Limit(limit).
		Find(&results).Error
	return results, err
}

// Categories returns distinct non-empty category names
func (r *drugRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&models.Drug{}).
		Distinct("category").
		Where("category <> ''").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

// Count counts all drugs
func (r *drugRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Drug{}).Count(&count).Error
	return count, err
}

// CountLowStock counts drugs below the stock threshold
func (r *drugRepository) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Drug{}).
		Where("quantity < ?", threshold).
		Count(&count).Error
	return count, err
}

// CountExpired counts drugs whose expiry date has passed (inclusive of today)
func (r *drugRepository) CountExpired(ctx context.Context, today time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Drug{}).
		Where("expiry_date <= ?", today).
		Count(&count).Error
	return count, err
}

// CountExpiringSoon counts drugs expiring within the horizon, excluding already expired
func (r *drugRepository) CountExpiringSoon(ctx context.Context, today time.Time, horizonDays int) (int64, error) {
	soonDate := today.AddDate(0, 0, horizonDays)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Drug{}).
		Where("expiry_date > ? AND expiry_date <= ?", today, soonDate).
		Count(&count).Error
	return count, err
}

// HasTransactions reports whether any sale or purchase references the drug
func (r *drugRepository) HasTransactions(ctx context.Context, drugID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Sale{}).
		Where("drug_id = ?", drugID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	err = r.db.WithContext(ctx).
		Model(&models.Purchase{}).
		Where("drug_id = ?", drugID).
		Count(&count).Error
	return count > 0, err
}
