package repositories

import (
	"context"

	"gorm.io/gorm"

	"pharmatrack/internal/adapters/persistence/models"
)

// supplierRepository implements SupplierRepository interface
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

// Create creates a new supplier
func (r *supplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

// GetByID gets a supplier by ID
func (r *supplierRepository) GetByID(ctx context.Context, id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&supplier).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// Update updates a supplier
func (r *supplierRepository) Update(ctx context.Context, supplier *models.Supplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

// Delete deletes a supplier
func (r *supplierRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Supplier{}, id).Error
}

// List lists all suppliers ordered by name
func (r *supplierRepository) List(ctx context.Context) ([]*models.Supplier, error) {
	var suppliers []*models.Supplier
	err := r.db.WithContext(ctx).Order("name ASC").Find(&suppliers).Error
	return suppliers, err
}
