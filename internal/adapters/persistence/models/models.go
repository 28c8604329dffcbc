package models

import (
	"time"

	"gorm.io/gorm"

	"pharmatrack/internal/core/domain"
)

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;not null;default:'pharmacist'" json:"role"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// DomainRole returns the user's role as a domain type
func (u *User) DomainRole() domain.Role {
	return domain.Role(u.Role)
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Inventory Tables
// ============================================================

// Drug represents drugs table. BatchNo and CostPrice always reflect
// the most recent purchase (current-batch-only semantics).
type Drug struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null;index" json:"name"`
	Category     string    `gorm:"size:50;not null;index" json:"category"`
	BatchNo      string    `gorm:"size:50;not null" json:"batch_no"`
	Manufacturer string    `gorm:"size:100;not null" json:"manufacturer"`
	Quantity     int       `gorm:"not null;default:0" json:"quantity"`
	CostPrice    float64   `gorm:"type:decimal(10,2);not null" json:"cost_price"`
	SellingPrice float64   `gorm:"type:decimal(10,2);not null" json:"selling_price"`
	ExpiryDate   time.Time `gorm:"type:date;not null;index" json:"expiry_date"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Drug) TableName() string {
	return "drugs"
}

// DrugSearchResult DTO for the quick-search endpoint
type DrugSearchResult struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	SellingPrice float64 `json:"selling_price"`
}

// Sale represents sales table. Rows are immutable: unit_price and
// total_price are snapshots taken when the sale is recorded and must
// never be recomputed from the drug's current prices.
type Sale struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	DrugID     uint      `gorm:"not null;index" json:"drug_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitPrice  float64   `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalPrice float64   `gorm:"type:decimal(12,2);not null" json:"total_price"`
	StaffName  string    `gorm:"size:100;not null" json:"staff_name"`
	SaleDate   time.Time `gorm:"not null;index" json:"sale_date"`

	Drug *Drug `gorm:"foreignKey:DrugID" json:"drug,omitempty"`
}

func (Sale) TableName() string {
	return "sales"
}

// Purchase represents purchases table. Rows are immutable: cost_price
// and total_cost are snapshots taken when the purchase is recorded.
type Purchase struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	DrugID       uint      `gorm:"not null;index" json:"drug_id"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	CostPrice    float64   `gorm:"type:decimal(10,2);not null" json:"cost_price"`
	TotalCost    float64   `gorm:"type:decimal(12,2);not null" json:"total_cost"`
	SupplierName string    `gorm:"size:100;not null" json:"supplier_name"`
	BatchNo      string    `gorm:"size:50;not null" json:"batch_no"`
	PurchaseDate time.Time `gorm:"not null;index" json:"purchase_date"`

	Drug *Drug `gorm:"foreignKey:DrugID" json:"drug,omitempty"`
}

func (Purchase) TableName() string {
	return "purchases"
}

// Supplier represents suppliers table. Purchases reference suppliers
// by name only, not by key.
type Supplier struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	ContactPerson string    `gorm:"size:100" json:"contact_person"`
	Phone         string    `gorm:"size:20" json:"phone"`
	Email         string    `gorm:"size:100" json:"email"`
	Address       string    `gorm:"type:text" json:"address"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Drug{},
		&Sale{},
		&Purchase{},
		&Supplier{},
	)
}
