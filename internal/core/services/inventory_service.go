package services

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"pharmatrack/internal/adapters/persistence/models"
	"pharmatrack/internal/adapters/persistence/repositories"
	"pharmatrack/internal/core/domain"
	"pharmatrack/internal/pkg/pagination"
)

// InventoryService is the only component that mutates drug stock.
// Every ledger operation commits the quantity change and its
// transaction record as a single database transaction.
type InventoryService struct {
	db           *gorm.DB
	saleRepo     repositories.SaleRepository
	purchaseRepo repositories.PurchaseRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	db *gorm.DB,
	saleRepo repositories.SaleRepository,
	purchaseRepo repositories.PurchaseRepository,
) *InventoryService {
	return &InventoryService{
		db:           db,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
	}
}

// RecordSaleInput represents record sale input
type RecordSaleInput struct {
	DrugID    uint   `json:"drug_id"`
	Quantity  int    `json:"quantity"`
	StaffName string `json:"staff_name"`
}

// RecordPurchaseInput represents record purchase input
type RecordPurchaseInput struct {
	DrugID       uint    `json:"drug_id"`
	Quantity     int     `json:"quantity"`
	CostPrice    float64 `json:"cost_price"`
	SupplierName string  `json:"supplier_name"`
	BatchNo      string  `json:"batch_no"`
}

// RecordSale decrements drug stock and appends an immutable sale row.
// The unit price is snapshotted from the drug's current selling price
// inside the same transaction; later price edits never touch the sale.
func (s *InventoryService) RecordSale(ctx context.Context, input *RecordSaleInput) (*models.Sale, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.StaffName == "" {
		return nil, domain.ErrInvalidInput
	}

	var sale *models.Sale

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var drug models.Drug
		if err := tx.Where("id = ?", input.DrugID).First(&drug).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrDrugNotFound
			}
			return err
		}

		// Guarded decrement: the WHERE clause re-checks stock at write
		// time, so two concurrent sales cannot both pass the check.
		res := tx.Model(&models.Drug{}).
			Where("id = ? AND quantity >= ?", input.DrugID, input.Quantity).
			Update("quantity", gorm.Expr("quantity - ?", input.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInsufficientStock
		}

		sale = &models.Sale{
			DrugID:     drug.ID,
			Quantity:   input.Quantity,
			UnitPrice:  drug.SellingPrice,
			TotalPrice: float64(input.Quantity) * drug.SellingPrice,
			StaffName:  input.StaffName,
			SaleDate:   time.Now(),
		}
		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("sale recorded: drug=%d qty=%d staff=%s total=%.2f",
		sale.DrugID, sale.Quantity, sale.StaffName, sale.TotalPrice)

	return sale, nil
}

// RecordPurchase increments drug stock and appends an immutable purchase
// row. The drug keeps latest-cost accounting: its cost price and batch
// number are overwritten with the values of this purchase.
func (s *InventoryService) RecordPurchase(ctx context.Context, input *RecordPurchaseInput) (*models.Purchase, error) {
	if input.Quantity <= 0 || input.CostPrice <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var purchase *models.Purchase

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var drug models.Drug
		if err := tx.Where("id = ?", input.DrugID).First(&drug).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrDrugNotFound
			}
			return err
		}

		res := tx.Model(&models.Drug{}).
			Where("id = ?", input.DrugID).
			Updates(map[string]interface{}{
				"quantity":   gorm.Expr("quantity + ?", input.Quantity),
				"cost_price": input.CostPrice,
				"batch_no":   input.BatchNo,
			})
		if res.Error != nil {
			return res.Error
		}

		purchase = &models.Purchase{
			DrugID:       drug.ID,
			Quantity:     input.Quantity,
			CostPrice:    input.CostPrice,
			TotalCost:    float64(input.Quantity) * input.CostPrice,
			SupplierName: input.SupplierName,
			BatchNo:      input.BatchNo,
			PurchaseDate: time.Now(),
		}
		if err := tx.Create(purchase).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("purchase recorded: drug=%d qty=%d supplier=%s total=%.2f",
		purchase.DrugID, purchase.Quantity, purchase.SupplierName, purchase.TotalCost)

	return purchase, nil
}

// ListSales lists sale records, newest first
func (s *InventoryService) ListSales(ctx context.Context, params *pagination.Params) ([]*models.Sale, int64, error) {
	return s.saleRepo.List(ctx, params.Offset, params.Limit)
}

// ListPurchases lists purchase records, newest first
func (s *InventoryService) ListPurchases(ctx context.Context, params *pagination.Params) ([]*models.Purchase, int64, error) {
	return s.purchaseRepo.List(ctx, params.Offset, params.Limit)
}
