package services

import (
	"time"

	"github.com/frctlprdx/community-sub000/internal/models"
	"github.com/frctlprdx/community-sub000/pkg/logger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// RetentionService prunes old login-history rows on a daily schedule.
type RetentionService struct {
	db            *gorm.DB
	retentionDays int
	scheduler     *cron.Cron
}

func NewRetentionService(db *gorm.DB, retentionDays int) *RetentionService {
	return &RetentionService{db: db, retentionDays: retentionDays}
}

// StartScheduler runs a sweep immediately and then every night. A retention
// of 0 days disables the sweeper.
func (s *RetentionService) StartScheduler() {
	if s.retentionDays <= 0 {
		logger.Info().Msg("login-history retention disabled")
		return
	}

	s.sweep()

	s.scheduler = cron.New()
	s.scheduler.AddFunc("0 3 * * *", s.sweep)
	s.scheduler.Start()
	logger.Info().Int("retention_days", s.retentionDays).Msg("login-history retention scheduler started")
}

func (s *RetentionService) StopScheduler() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *RetentionService) sweep() {
	deleted, err := s.CleanupOldLogins(s.retentionDays)
	if err != nil {
		logger.Error().Err(err).Msg("login-history cleanup failed")
		return
	}
	if deleted > 0 {
		logger.Info().Int64("deleted", deleted).Int("retention_days", s.retentionDays).Msg("login-history cleanup")
	}
}

// CleanupOldLogins deletes login rows older than retentionDays and returns
// the number of rows removed.
func (s *RetentionService) CleanupOldLogins(retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result := s.db.Where("login_at < ?", cutoff).Delete(&models.LoginHistory{})
	return result.RowsAffected, result.Error
}
