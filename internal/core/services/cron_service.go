package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"pharmatrack/internal/adapters/persistence/repositories"
	"pharmatrack/internal/config"
)

// CronService runs the daily expiry scan (08:30) that writes alert
// counters to the log, and a nightly cleanup of expired refresh tokens.
type CronService struct {
	cron         *cron.Cron
	alertService *AlertService
	tokenRepo    repositories.RefreshTokenRepository
}

// NewCronService creates a new cron service
func NewCronService(db *gorm.DB, alerts config.AlertConfig) *CronService {
	drugRepo := repositories.NewDrugRepository(db)

	return &CronService{
		cron:         cron.New(),
		alertService: NewAlertService(drugRepo, alerts),
		tokenRepo:    repositories.NewRefreshTokenRepository(db),
	}
}

// Start registers and starts the scheduled jobs
func (s *CronService) Start() {
	_, err := s.cron.AddFunc("30 8 * * *", s.runExpiryScan)
	if err != nil {
		log.Printf("failed to schedule expiry scan: %v", err)
	}

	_, err = s.cron.AddFunc("0 3 * * *", s.runTokenCleanup)
	if err != nil {
		log.Printf("failed to schedule token cleanup: %v", err)
	}

	s.cron.Start()
	log.Println("cron service started")
}

// Stop stops the scheduler, waiting for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("cron service stopped")
}

func (s *CronService) runExpiryScan() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	asOf := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	counts, err := s.alertService.Counts(ctx, asOf)
	if err != nil {
		log.Printf("expiry scan failed: %v", err)
		return
	}

	log.Printf("expiry scan: expired=%d expiring_soon=%d low_stock=%d",
		counts.Expired, counts.ExpiringSoon, counts.LowStock)
}

func (s *CronService) runTokenCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.tokenRepo.DeleteExpired(ctx); err != nil {
		log.Printf("refresh token cleanup failed: %v", err)
	}
}
