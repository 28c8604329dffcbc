package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"pharmatrack/internal/adapters/persistence/models"
	"pharmatrack/internal/adapters/persistence/repositories"
	"pharmatrack/internal/config"
	"pharmatrack/internal/core/domain"
)

// DrugService handles drug catalog business logic. Stock quantities
// are only mutated here on create/update by an admin; sales and
// purchases go through InventoryService.
type DrugService struct {
	drugRepo repositories.DrugRepository
	alerts   config.AlertConfig
}

// NewDrugService creates a new drug service
func NewDrugService(drugRepo repositories.DrugRepository, alerts config.AlertConfig) *DrugService {
	return &DrugService{
		drugRepo: drugRepo,
		alerts:   alerts,
	}
}

// DrugInput represents create/update drug input
type DrugInput struct {
	Name         string  `json:"name" validate:"required"`
	Category     string  `json:"category" validate:"required"`
	BatchNo      string  `json:"batch_no"`
	Manufacturer string  `json:"manufacturer"`
	Quantity     int     `json:"quantity"`
	CostPrice    float64 `json:"cost_price"`
	SellingPrice float64 `json:"selling_price"`
	ExpiryDate   string  `json:"expiry_date"` // YYYY-MM-DD
}

// ListDrugsInput represents drug listing filters
type ListDrugsInput struct {
	Search       string
	Category     string
	ExpiryFilter string
	StockFilter  string
}

func (s *DrugService) validate(input *DrugInput) (time.Time, error) {
	if input.Name == "" || input.Category == "" {
		return time.Time{}, domain.ErrInvalidInput
	}
	if input.Quantity < 0 || input.CostPrice < 0 || input.SellingPrice < 0 {
		return time.Time{}, domain.ErrInvalidInput
	}

	expiry, err := time.Parse("2006-01-02", input.ExpiryDate)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}

	return expiry, nil
}

// Create creates a new drug
func (s *DrugService) Create(ctx context.Context, input *DrugInput) (*models.Drug, error) {
	expiry, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	batchNo := input.BatchNo
	if batchNo == "" {
		batchNo = "N/A"
	}
	manufacturer := input.Manufacturer
	if manufacturer == "" {
		manufacturer = "Unknown"
	}

	drug := &models.Drug{
		Name:         input.Name,
		Category:     input.Category,
		BatchNo:      batchNo,
		Manufacturer: manufacturer,
		Quantity:     input.Quantity,
		CostPrice:    input.CostPrice,
		SellingPrice: input.SellingPrice,
		ExpiryDate:   expiry,
	}

	if err := s.drugRepo.Create(ctx, drug); err != nil {
		return nil, err
	}

	return drug, nil
}

// GetByID gets a drug by ID
func (s *DrugService) GetByID(ctx context.Context, id uint) (*models.Drug, error) {
	drug, err := s.drugRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDrugNotFound
		}
		return nil, err
	}
	return drug, nil
}

// Update updates a drug
func (s *DrugService) Update(ctx context.Context, id uint, input *DrugInput) (*models.Drug, error) {
	expiry, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	drug, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	drug.Name = input.Name
	drug.Category = input.Category
	drug.BatchNo = input.BatchNo
	drug.Manufacturer = input.Manufacturer
	drug.Quantity = input.Quantity
	drug.CostPrice = input.CostPrice
	drug.SellingPrice = input.SellingPrice
	drug.ExpiryDate = expiry

	if err := s.drugRepo.Update(ctx, drug); err != nil {
		return nil, err
	}

	return drug, nil
}

// Delete deletes a drug. Drugs referenced by sale or purchase history
// cannot be deleted, so historical reports stay resolvable.
func (s *DrugService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.drugRepo.HasTransactions(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrDrugInUse
	}

	return s.drugRepo.Delete(ctx, id)
}

// List lists drugs matching the filters, ordered by name
func (s *DrugService) List(ctx context.Context, input *ListDrugsInput) ([]*models.Drug, error) {
	filter := &repositories.DrugFilter{
		Search:            input.Search,
		Category:          input.Category,
		ExpiryFilter:      input.ExpiryFilter,
		StockFilter:       input.StockFilter,
		Today:             today(),
		ExpiryHorizonDays: s.alerts.ExpiryHorizonDays,
		LowStockThreshold: s.alerts.LowStockThreshold,
	}
	return s.drugRepo.List(ctx, filter)
}

// ListSellable lists drugs with stock on hand
func (s *DrugService) ListSellable(ctx context.Context) ([]*models.Drug, error) {
	return s.drugRepo.ListInStock(ctx)
}

// Search finds drugs by name fragment for quick lookups
func (s *DrugService) Search(ctx context.Context, query string, limit int) ([]*models.DrugSearchResult, error) {
	if limit < 1 || limit > 10 {
		limit = 10
	}
	return s.drugRepo.Search(ctx, query, limit)
}

// Categories returns distinct category names
func (s *DrugService) Categories(ctx context.Context) ([]string, error) {
	return s.drugRepo.Categories(ctx)
}

// today returns the current calendar date at midnight local time
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
