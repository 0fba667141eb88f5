package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/constants"
)

var sustNow = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func TestBaseConsumption(t *testing.T) {
	assert.InDelta(t, 500.0, baseConsumption("Application Server Rack"), 0.001)
	assert.InDelta(t, 800.0, baseConsumption("CNC Milling Machine"), 0.001)
	assert.InDelta(t, 1200.0, baseConsumption("Chiller Unit CH-2"), 0.001)
	assert.InDelta(t, 2000.0, baseConsumption("Diesel Generator"), 0.001)
	assert.InDelta(t, 100.0, baseConsumption("Forklift"), 0.001)
}

func TestAssessHealthyNewEquipment(t *testing.T) {
	svc := NewSustainabilityService()
	equipment := &entities.Equipment{
		Name:         "Application Server Rack",
		HealthScore:  95,
		IsUsable:     true,
		PurchaseDate: sustNow.AddDate(-1, 0, 0),
	}

	report := svc.Assess(equipment, nil, sustNow)

	// No multipliers apply: consumption stays at the category base.
	assert.Equal(t, 500, report.Energy.CurrentConsumption)
	assert.Equal(t, 400, report.Energy.OptimalConsumption)
	assert.Equal(t, 100, report.Energy.PotentialSavings)
	assert.Equal(t, 5, report.Energy.EfficiencyRating)
	assert.Equal(t, 720, report.Energy.AnnualCost)

	assert.Equal(t, 200, report.Carbon.CurrentEmissions)
	assert.Equal(t, 160, report.Carbon.OptimalEmissions)

	assert.Zero(t, report.Waste.TotalWaste)
	assert.Equal(t, "A", report.Grade)
}

func TestAssessDegradedOldEquipment(t *testing.T) {
	svc := NewSustainabilityService()
	equipment := &entities.Equipment{
		Name:         "Diesel Generator DG-500",
		HealthScore:  30,
		IsUsable:     true,
		PurchaseDate: sustNow.AddDate(-7, 0, 0),
	}

	requests := []entities.MaintenanceRequest{
		{Type: constants.TypeCorrective, Status: constants.StatusRepaired},
		{Type: constants.TypeCorrective, Status: constants.StatusRepaired},
	}

	report := svc.Assess(equipment, requests, sustNow)

	// 2000 base × 1.5 health × 1.3 age.
	assert.Equal(t, 3900, report.Energy.CurrentConsumption)
	assert.Equal(t, 1600, report.Energy.OptimalConsumption)
	assert.Equal(t, 2, report.Energy.EfficiencyRating)

	assert.InDelta(t, 5.0, report.Waste.PartsWaste, 0.001)
	assert.InDelta(t, 2.4, report.Waste.OilWaste, 0.001)
	assert.InDelta(t, 1.6, report.Waste.MetalWaste, 0.001)
	assert.InDelta(t, 0.9*1.6+0.3*5.0, report.Waste.RecyclingPotential, 0.001)

	// (2×20 + 30 + 80) / 3 = 50 → D.
	assert.Equal(t, "D", report.Grade)
}

func TestAssessScrappedEquipmentIsOneStar(t *testing.T) {
	svc := NewSustainabilityService()
	equipment := &entities.Equipment{
		Name:         "Chiller Unit",
		HealthScore:  0,
		IsUsable:     false,
		PurchaseDate: sustNow.AddDate(-2, 0, 0),
	}

	report := svc.Assess(equipment, nil, sustNow)
	assert.Equal(t, 1, report.Energy.EfficiencyRating)
	assert.Equal(t, "F", report.Grade)
}
