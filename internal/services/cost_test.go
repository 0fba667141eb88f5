package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/constants"
)

var costNow = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func TestRequestCost(t *testing.T) {
	assert.InDelta(t, 450.0, RequestCost(constants.TypeCorrective, 3), 0.001)
	assert.InDelta(t, 225.0, RequestCost(constants.TypePreventive, 3), 0.001)

	// Zero duration falls back to two hours.
	assert.InDelta(t, 300.0, RequestCost(constants.TypeCorrective, 0), 0.001)
	assert.InDelta(t, 150.0, RequestCost(constants.TypePreventive, 0), 0.001)
}

func TestAnalyzeCosts(t *testing.T) {
	svc := NewCostService()
	equipment := &entities.Equipment{
		PurchaseDate: costNow.AddDate(-3, 0, 0),
	}

	requests := []entities.MaintenanceRequest{
		{Type: constants.TypeCorrective, Duration: 4},
		{Type: constants.TypePreventive, Duration: 2},
	}

	analysis := svc.AnalyzeCosts(equipment, requests, costNow)

	assert.InDelta(t, 600.0, analysis.CorrectiveCost, 0.001)
	assert.InDelta(t, 150.0, analysis.PreventiveCost, 0.001)
	assert.InDelta(t, 750.0, analysis.TotalMaintenanceCost, 0.001)
	assert.InDelta(t, 6.0, analysis.TotalDowntimeHours, 0.001)
	assert.InDelta(t, 1200.0, analysis.DowntimeCost, 0.001)

	// 3 years at 10% per year off the $50k base.
	assert.InDelta(t, 35000.0, analysis.EstimatedCurrentValue, 0.001)
	assert.False(t, analysis.ShouldReplace)
	assert.Equal(t, "Continue maintenance - Cost effective", analysis.Recommendation)
}

func TestAnalyzeCostsDepreciationFloor(t *testing.T) {
	svc := NewCostService()
	equipment := &entities.Equipment{
		PurchaseDate: costNow.AddDate(-20, 0, 0),
	}

	analysis := svc.AnalyzeCosts(equipment, nil, costNow)
	// Depreciation caps at 80%, leaving 20% residual value.
	assert.InDelta(t, 10000.0, analysis.EstimatedCurrentValue, 0.001)
}

func TestAnalyzeCostsReplacementThreshold(t *testing.T) {
	svc := NewCostService()
	equipment := &entities.Equipment{
		PurchaseDate: costNow.AddDate(-20, 0, 0),
	}

	// 50 corrective repairs at 2h each: $15,000 against a $10,000 value.
	var requests []entities.MaintenanceRequest
	for i := 0; i < 50; i++ {
		requests = append(requests, entities.MaintenanceRequest{Type: constants.TypeCorrective, Duration: 2})
	}

	analysis := svc.AnalyzeCosts(equipment, requests, costNow)
	assert.True(t, analysis.ShouldReplace)
	assert.Greater(t, analysis.MaintenanceToValueRatio, 0.6)
	assert.Contains(t, analysis.Recommendation, "Replacement recommended")
}
