package config

import (
	"log"
	"time"

	"gorm.io/gorm"

	"pharmatrack/internal/adapters/persistence/models"
	"pharmatrack/internal/core/domain"
	"pharmatrack/internal/pkg/password"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders. Default credentials are insecure
// development defaults and must be rotated before real use.
func (s *Seeder) Run() error {
	log.Println("running database seeders...")

	if err := s.seedUser("admin", "admin123", domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.seedUser("pharmacist", "pharma123", domain.RolePharmacist); err != nil {
		return err
	}
	if err := s.seedSampleDrugs(); err != nil {
		return err
	}

	log.Println("database seeding completed")
	return nil
}

// seedUser creates a default account if the username is free
func (s *Seeder) seedUser(username, plaintext string, role domain.Role) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := password.Hash(plaintext)
	if err != nil {
		return err
	}

	user := &models.User{
		Username: username,
		Password: hashed,
		Role:     role.String(),
		IsActive: true,
	}

	if err := s.db.Create(user).Error; err != nil {
		return err
	}

	log.Printf("seeded default %s account: %s", role, username)
	return nil
}

// seedSampleDrugs creates sample stock for a fresh deployment
func (s *Seeder) seedSampleDrugs() error {
	var count int64
	if err := s.db.Model(&models.Drug{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	date := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	}

	drugs := []models.Drug{
		{
			Name:         "Paracetamol 500mg",
			Category:     "Analgesic",
			BatchNo:      "BATCH001",
			Manufacturer: "Pharma Inc",
			Quantity:     100,
			CostPrice:    0.50,
			SellingPrice: 1.00,
			ExpiryDate:   date(2025, time.December, 31),
		},
		{
			Name:         "Amoxicillin 250mg",
			Category:     "Antibiotic",
			BatchNo:      "BATCH002",
			Manufacturer: "Med Labs",
			Quantity:     15,
			CostPrice:    1.20,
			SellingPrice: 2.50,
			ExpiryDate:   date(2024, time.June, 30),
		},
		{
			Name:         "Vitamin C 100mg",
			Category:     "Supplement",
			BatchNo:      "BATCH003",
			Manufacturer: "Health Plus",
			Quantity:     5,
			CostPrice:    0.30,
			SellingPrice: 0.75,
			ExpiryDate:   date(2023, time.December, 15),
		},
	}

	if err := s.db.Create(&drugs).Error; err != nil {
		return err
	}

	log.Printf("seeded %d sample drugs", len(drugs))
	return nil
}
