package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/dto"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/repositories"
)

const dashboardCacheKey = "analytics:dashboard"

type AnalyticsServiceInterface interface {
	GetDashboard(ctx context.Context) (*dto.DashboardDTO, error)
	GetEquipmentHealthTrends(ctx context.Context) ([]dto.EquipmentHealthTrendDTO, error)
	GetTechnicianPerformance(ctx context.Context) ([]dto.TechnicianPerformanceDTO, error)
	GetBreakdownWarnings(ctx context.Context) ([]dto.BreakdownWarningDTO, error)
}

type AnalyticsService struct {
	analyticsRepo repositories.AnalyticsRepositoryInterface
	cacheRepo     repositories.CacheRepositoryInterface
	cacheTTL      time.Duration
	logger        *zap.Logger
	now           func() time.Time
}

func NewAnalyticsService(
	analyticsRepo repositories.AnalyticsRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) AnalyticsServiceInterface {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		cacheRepo:     cacheRepo,
		cacheTTL:      cacheTTL,
		logger:        logger,
		now:           time.Now,
	}
}

// GetDashboard serves the aggregate view from cache when fresh, rebuilding it
// from the database otherwise. Cache failures degrade to a direct read.
func (s *AnalyticsService) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	if cached, err := s.cacheRepo.Get(ctx, dashboardCacheKey); err == nil {
		var dashboard dto.DashboardDTO
		if err := json.Unmarshal(cached, &dashboard); err == nil {
			return &dashboard, nil
		}
		s.logger.Warn("discarding malformed dashboard cache entry")
	} else if !errors.Is(err, repositories.ErrCacheMiss) {
		s.logger.Warn("dashboard cache read failed", zap.Error(err))
	}

	dashboard, err := s.buildDashboard(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(dashboard); err == nil {
		if err := s.cacheRepo.Set(ctx, dashboardCacheKey, encoded, s.cacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	return dashboard, nil
}

func (s *AnalyticsService) buildDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	equipmentStats, err := s.analyticsRepo.GetEquipmentStats(ctx)
	if err != nil {
		return nil, err
	}
	requestStats, err := s.analyticsRepo.GetRequestStats(ctx)
	if err != nil {
		return nil, err
	}
	teamStats, err := s.analyticsRepo.GetTeamStats(ctx)
	if err != nil {
		return nil, err
	}
	recentActivity, err := s.analyticsRepo.GetRecentActivity(ctx, 10)
	if err != nil {
		return nil, err
	}
	warnings, err := s.GetBreakdownWarnings(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardDTO{
		Equipment:         equipmentStats,
		Requests:          requestStats,
		Teams:             teamStats,
		RecentActivity:    recentActivity,
		BreakdownWarnings: warnings,
	}, nil
}

func (s *AnalyticsService) GetEquipmentHealthTrends(ctx context.Context) ([]dto.EquipmentHealthTrendDTO, error) {
	return s.analyticsRepo.GetEquipmentHealthTrends(ctx)
}

func (s *AnalyticsService) GetTechnicianPerformance(ctx context.Context) ([]dto.TechnicianPerformanceDTO, error) {
	return s.analyticsRepo.GetTechnicianPerformance(ctx)
}

func (s *AnalyticsService) GetBreakdownWarnings(ctx context.Context) ([]dto.BreakdownWarningDTO, error) {
	since := s.now().AddDate(0, 0, -breakdownWindowDays)
	warnings, err := s.analyticsRepo.GetBreakdownCounts(ctx, since, breakdownThreshold)
	if err != nil {
		return nil, err
	}

	for i := range warnings {
		warnings[i].Message = fmt.Sprintf("%s has %d breakdowns in the last 30 days. Consider scrapping.",
			warnings[i].EquipmentName, warnings[i].BreakdownCount)
	}
	return warnings, nil
}
