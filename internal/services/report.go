package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/repositories"
)

type ReportServiceInterface interface {
	GetMaintenanceReport(ctx context.Context, filter entities.ReportFilter) ([]entities.ReportItem, uint64, error)
}

type ReportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{reportRepo: reportRepo, logger: logger}
}

// GetMaintenanceReport loads filtered request rows and prices each one with
// the flat cost model.
func (s *ReportService) GetMaintenanceReport(ctx context.Context, filter entities.ReportFilter) ([]entities.ReportItem, uint64, error) {
	items, total, err := s.reportRepo.GetReportItems(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	for i := range items {
		items[i].Cost = RequestCost(items[i].Type, items[i].Duration)
	}
	return items, total, nil
}
