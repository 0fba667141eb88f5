package services

import (
	"fmt"
	"math"
	"time"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/constants"
)

// Flat-rate cost model. Rates are USD per hour; the base value is a stand-in
// until per-unit purchase prices are tracked.
const (
	correctiveHourlyRate = 150.0
	preventiveHourlyRate = 75.0
	downtimeHourlyRate   = 200.0
	equipmentBaseValue   = 50000.0
	defaultDurationHours = 2.0
)

// CostAnalysis summarizes maintenance spend against the unit's residual value.
type CostAnalysis struct {
	TotalMaintenanceCost    float64
	CorrectiveCost          float64
	PreventiveCost          float64
	TotalDowntimeHours      float64
	DowntimeCost            float64
	EstimatedCurrentValue   float64
	MaintenanceToValueRatio float64
	ShouldReplace           bool
	Recommendation          string
}

type CostServiceInterface interface {
	AnalyzeCosts(equipment *entities.Equipment, requests []entities.MaintenanceRequest, now time.Time) CostAnalysis
}

type CostService struct{}

func NewCostService() CostServiceInterface {
	return &CostService{}
}

// RequestCost prices a single request from its type and duration. A missing
// duration falls back to two hours.
func RequestCost(requestType string, duration float64) float64 {
	if duration <= 0 {
		duration = defaultDurationHours
	}
	if requestType == constants.TypeCorrective {
		return duration * correctiveHourlyRate
	}
	return duration * preventiveHourlyRate
}

func (s *CostService) AnalyzeCosts(equipment *entities.Equipment, requests []entities.MaintenanceRequest, now time.Time) CostAnalysis {
	var analysis CostAnalysis

	for _, req := range requests {
		duration := req.Duration
		if duration <= 0 {
			duration = defaultDurationHours
		}
		cost := RequestCost(req.Type, req.Duration)
		analysis.TotalMaintenanceCost += cost
		analysis.TotalDowntimeHours += duration
		if req.Type == constants.TypeCorrective {
			analysis.CorrectiveCost += cost
		} else {
			analysis.PreventiveCost += cost
		}
	}
	analysis.DowntimeCost = analysis.TotalDowntimeHours * downtimeHourlyRate

	age := equipment.AgeYears(now)
	depreciation := float64(age) * 0.1
	if depreciation > 0.8 {
		depreciation = 0.8
	}
	analysis.EstimatedCurrentValue = equipmentBaseValue * (1 - depreciation)
	analysis.MaintenanceToValueRatio = analysis.TotalMaintenanceCost / analysis.EstimatedCurrentValue
	analysis.ShouldReplace = analysis.MaintenanceToValueRatio > 0.6

	if analysis.ShouldReplace {
		analysis.Recommendation = fmt.Sprintf(
			"Replacement recommended - Maintenance cost (%d%%) exceeds 60%% of current value",
			int(math.Round(analysis.MaintenanceToValueRatio*100)))
	} else {
		analysis.Recommendation = "Continue maintenance - Cost effective"
	}

	return analysis
}
