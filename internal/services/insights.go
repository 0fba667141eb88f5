package services

import (
	"context"
	"time"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/dto"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/repositories"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/constants"
	apperrors "github.com/Ruban-raj-143/gearguard-maintenance/pkg/errors"
)

// InsightsService wraps the pure calculators with the data loads they need.
type InsightsServiceInterface interface {
	GetRiskLevel(ctx context.Context, equipmentID uint64) (*dto.RiskResultDTO, error)
	GetFailurePrediction(ctx context.Context, equipmentID uint64) (*dto.FailurePredictionDTO, error)
	SuggestTechnician(ctx context.Context, equipmentID, teamID uint64) (*dto.TechnicianSuggestionDTO, error)
	ComputePriority(ctx context.Context, equipmentID uint64, requestType string) (*dto.PriorityResponseDTO, error)
	GetCostAnalysis(ctx context.Context, equipmentID uint64) (*dto.CostAnalysisDTO, error)
	GetSustainability(ctx context.Context, equipmentID uint64) (*dto.SustainabilityDTO, error)
}

type InsightsService struct {
	equipmentRepo  repositories.EquipmentRepositoryInterface
	requestRepo    repositories.RequestRepositoryInterface
	technicianRepo repositories.TechnicianRepositoryInterface
	priority       PriorityServiceInterface
	matcher        MatcherServiceInterface
	risk           RiskServiceInterface
	cost           CostServiceInterface
	sustainability SustainabilityServiceInterface
	now            func() time.Time
}

func NewInsightsService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	technicianRepo repositories.TechnicianRepositoryInterface,
	priority PriorityServiceInterface,
	matcher MatcherServiceInterface,
	risk RiskServiceInterface,
	cost CostServiceInterface,
	sustainability SustainabilityServiceInterface,
) InsightsServiceInterface {
	return &InsightsService{
		equipmentRepo:  equipmentRepo,
		requestRepo:    requestRepo,
		technicianRepo: technicianRepo,
		priority:       priority,
		matcher:        matcher,
		risk:           risk,
		cost:           cost,
		sustainability: sustainability,
		now:            time.Now,
	}
}

func (s *InsightsService) loadEquipmentWithRequests(ctx context.Context, equipmentID uint64) (*entities.Equipment, []entities.MaintenanceRequest, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, equipmentID)
	if err != nil {
		return nil, nil, err
	}
	requests, err := s.requestRepo.ListByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, nil, err
	}
	return equipment, requests, nil
}

func (s *InsightsService) GetRiskLevel(ctx context.Context, equipmentID uint64) (*dto.RiskResultDTO, error) {
	equipment, requests, err := s.loadEquipmentWithRequests(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	result := s.risk.CalculateRiskLevel(equipment, requests, s.now())
	return &dto.RiskResultDTO{
		EquipmentID: equipmentID,
		Level:       result.Level,
		Confidence:  result.Confidence,
		Score:       result.Score,
		Reasons:     result.Reasons,
	}, nil
}

func (s *InsightsService) GetFailurePrediction(ctx context.Context, equipmentID uint64) (*dto.FailurePredictionDTO, error) {
	equipment, requests, err := s.loadEquipmentWithRequests(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	prediction := s.risk.PredictNextFailure(equipment, requests, s.now())
	return &dto.FailurePredictionDTO{
		EquipmentID:     equipmentID,
		PredictedDate:   prediction.PredictedDate.Format(healthDateLayout),
		DaysToFailure:   prediction.DaysToFailure,
		Confidence:      prediction.Confidence,
		Recommendations: prediction.Recommendations,
	}, nil
}

func (s *InsightsService) SuggestTechnician(ctx context.Context, equipmentID, teamID uint64) (*dto.TechnicianSuggestionDTO, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	team, err := s.technicianRepo.GetTechniciansByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	match := s.matcher.SuggestTechnician(equipment, team)
	if match == nil {
		return nil, apperrors.NewNotFoundError("no technicians available in team %d", teamID)
	}
	return &dto.TechnicianSuggestionDTO{
		Technician:    *technicianToResponse(&match.Technician),
		SkillScore:    match.SkillScore,
		WorkloadScore: match.WorkloadScore,
		TotalScore:    match.TotalScore,
		MatchedSkills: match.MatchedSkills,
	}, nil
}

func (s *InsightsService) ComputePriority(ctx context.Context, equipmentID uint64, requestType string) (*dto.PriorityResponseDTO, error) {
	if !constants.IsValidType(requestType) {
		return nil, apperrors.NewValidationError("type must be Corrective or Preventive")
	}
	equipment, err := s.equipmentRepo.FindEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	return &dto.PriorityResponseDTO{
		EquipmentID: equipmentID,
		RequestType: requestType,
		Priority:    s.priority.CalculatePriority(equipment, requestType, s.now()),
	}, nil
}

func (s *InsightsService) GetCostAnalysis(ctx context.Context, equipmentID uint64) (*dto.CostAnalysisDTO, error) {
	equipment, requests, err := s.loadEquipmentWithRequests(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	analysis := s.cost.AnalyzeCosts(equipment, requests, s.now())
	return &dto.CostAnalysisDTO{
		EquipmentID:             equipmentID,
		TotalMaintenanceCost:    analysis.TotalMaintenanceCost,
		CorrectiveCost:          analysis.CorrectiveCost,
		PreventiveCost:          analysis.PreventiveCost,
		TotalDowntimeHours:      analysis.TotalDowntimeHours,
		DowntimeCost:            analysis.DowntimeCost,
		EstimatedCurrentValue:   analysis.EstimatedCurrentValue,
		MaintenanceToValueRatio: analysis.MaintenanceToValueRatio,
		ShouldReplace:           analysis.ShouldReplace,
		Recommendation:          analysis.Recommendation,
	}, nil
}

func (s *InsightsService) GetSustainability(ctx context.Context, equipmentID uint64) (*dto.SustainabilityDTO, error) {
	equipment, requests, err := s.loadEquipmentWithRequests(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	report := s.sustainability.Assess(equipment, requests, s.now())
	return &dto.SustainabilityDTO{
		EquipmentID: equipmentID,
		Energy: dto.EnergyMetricsDTO{
			CurrentConsumption:     report.Energy.CurrentConsumption,
			OptimalConsumption:     report.Energy.OptimalConsumption,
			PotentialSavings:       report.Energy.PotentialSavings,
			EfficiencyRating:       report.Energy.EfficiencyRating,
			AnnualCost:             report.Energy.AnnualCost,
			PotentialAnnualSavings: report.Energy.PotentialAnnualSavings,
		},
		Carbon: dto.CarbonMetricsDTO{
			CurrentEmissions:  report.Carbon.CurrentEmissions,
			OptimalEmissions:  report.Carbon.OptimalEmissions,
			EmissionReduction: report.Carbon.EmissionReduction,
		},
		Waste: dto.WasteMetricsDTO{
			PartsWaste:         report.Waste.PartsWaste,
			OilWaste:           report.Waste.OilWaste,
			MetalWaste:         report.Waste.MetalWaste,
			TotalWaste:         report.Waste.TotalWaste,
			RecyclingPotential: report.Waste.RecyclingPotential,
		},
		Grade: report.Grade,
	}, nil
}
