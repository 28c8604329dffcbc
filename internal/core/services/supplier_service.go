package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pharmatrack/internal/adapters/persistence/models"
	"pharmatrack/internal/adapters/persistence/repositories"
	"pharmatrack/internal/core/domain"
)

// SupplierService handles the supplier directory. Purchases reference
// suppliers by free-text name, so deleting a supplier never breaks
// purchase history.
type SupplierService struct {
	supplierRepo repositories.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repositories.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// SupplierInput represents create/update supplier input
type SupplierInput struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, input *SupplierInput) (*models.Supplier, error) {
	if input.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	supplier := &models.Supplier{
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Phone:         input.Phone,
		Email:         input.Email,
		Address:       input.Address,
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// GetByID gets a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, id uint) (*models.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, err
	}
	return supplier, nil
}

// Update updates a supplier
func (s *SupplierService) Update(ctx context.Context, id uint, input *SupplierInput) (*models.Supplier, error) {
	if input.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	supplier, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	supplier.Name = input.Name
	supplier.ContactPerson = input.ContactPerson
	supplier.Phone = input.Phone
	supplier.Email = input.Email
	supplier.Address = input.Address

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// Delete deletes a supplier
func (s *SupplierService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, id)
}

// List lists all suppliers
func (s *SupplierService) List(ctx context.Context) ([]*models.Supplier, error) {
	return s.supplierRepo.List(ctx)
}
