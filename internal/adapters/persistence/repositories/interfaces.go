package repositories

import (
	"context"
	"time"

	"pharmatrack/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// ExpiryFilter values accepted by DrugFilter
const (
	ExpiryFilterExpired      = "expired"
	ExpiryFilterExpiringSoon = "expiring_soon"
)

// StockFilter values accepted by DrugFilter
const (
	StockFilterLowStock = "low_stock"
)

// DrugFilter narrows drug listings. Zero values mean "no filter".
type DrugFilter struct {
	Search            string
	Category          string
	ExpiryFilter      string
	StockFilter       string
	Today             time.Time
	ExpiryHorizonDays int
	LowStockThreshold int
}

// DrugRepository defines drug repository interface
type DrugRepository interface {
	Create(ctx context.Context, drug *models.Drug) error
	GetByID(ctx context.Context, id uint) (*models.Drug, error)
	Update(ctx context.Context, drug *models.Drug) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *DrugFilter) ([]*models.Drug, error)
	ListInStock(ctx context.Context) ([]*models.Drug, error)
	ListExpired(ctx context.Context, today time.Time) ([]*models.Drug, error)
	ListExpiringSoon(ctx context.Context, today time.Time, horizonDays int) ([]*models.Drug, error)
	Search(ctx context.Context, query string, limit int) ([]*models.DrugSearchResult, error)
	Categories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context, threshold int) (int64, error)
	CountExpired(ctx context.Context, today time.Time) (int64, error)
	CountExpiringSoon(ctx context.Context, today time.Time, horizonDays int) (int64, error)
	HasTransactions(ctx context.Context, drugID uint) (bool, error)
}

// SaleRepository defines sale repository interface.
// Sale rows are append-only.
type SaleRepository interface {
	List(ctx context.Context, offset, limit int) ([]*models.Sale, int64, error)
	ListWindow(ctx context.Context, from, to time.Time) ([]*models.Sale, error)
	Recent(ctx context.Context, limit int) ([]*models.Sale, error)
	WindowTotals(ctx context.Context, from, to time.Time) (count int64, revenue float64, err error)
}

// PurchaseRepository defines purchase repository interface.
// Purchase rows are append-only.
type PurchaseRepository interface {
	List(ctx context.Context, offset, limit int) ([]*models.Purchase, int64, error)
}

// SupplierRepository defines supplier repository interface
type SupplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	GetByID(ctx context.Context, id uint) (*models.Supplier, error)
	Update(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Supplier, error)
}
