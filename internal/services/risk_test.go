package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/constants"
)

var riskNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func healthyEquipment() *entities.Equipment {
	return &entities.Equipment{
		ID:             1,
		Name:           "CNC Milling Machine",
		HealthScore:    100,
		PurchaseDate:   riskNow.AddDate(-1, 0, 0),
		WarrantyExpiry: riskNow.AddDate(2, 0, 0),
		IsUsable:       true,
	}
}

func correctiveAt(created time.Time) entities.MaintenanceRequest {
	req := entities.MaintenanceRequest{Type: constants.TypeCorrective, Status: constants.StatusNew}
	req.CreatedAt = created
	return req
}

func TestBuildHealthHistory(t *testing.T) {
	equipment := healthyEquipment()

	requests := []entities.MaintenanceRequest{
		correctiveAt(riskNow.AddDate(0, -3, 0)),
		correctiveAt(riskNow.AddDate(0, -2, 0)),
	}
	preventive := entities.MaintenanceRequest{Type: constants.TypePreventive, Status: constants.StatusRepaired}
	preventive.CreatedAt = riskNow.AddDate(0, -1, 0)
	requests = append(requests, preventive)

	points := BuildHealthHistory(equipment, requests)
	assert.Len(t, points, 4)
	assert.Equal(t, 100, points[0].Health)
	assert.Equal(t, 90, points[1].Health)
	assert.Equal(t, 80, points[2].Health)
	assert.Equal(t, 85, points[3].Health)
}

func TestBuildHealthHistoryClamps(t *testing.T) {
	equipment := healthyEquipment()

	var requests []entities.MaintenanceRequest
	for i := 0; i < 12; i++ {
		requests = append(requests, correctiveAt(riskNow.AddDate(0, 0, -120+i)))
	}

	points := BuildHealthHistory(equipment, requests)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.Health, 0)
		assert.LessOrEqual(t, p.Health, 100)
	}
	assert.Equal(t, 0, points[len(points)-1].Health)
}

func TestBuildHealthHistoryDeterministic(t *testing.T) {
	equipment := healthyEquipment()
	requests := []entities.MaintenanceRequest{
		correctiveAt(riskNow.AddDate(0, -2, 0)),
		correctiveAt(riskNow.AddDate(0, -1, 0)),
	}

	first := BuildHealthHistory(equipment, requests)
	second := BuildHealthHistory(equipment, requests)
	assert.Equal(t, first, second)
}

func TestHealthDeclineRate(t *testing.T) {
	assert.Zero(t, HealthDeclineRate(nil))
	assert.Zero(t, HealthDeclineRate([]HealthPoint{{Date: riskNow, Health: 100}}))

	// Same-day points: no time elapsed, rate undefined, reported as zero.
	assert.Zero(t, HealthDeclineRate([]HealthPoint{
		{Date: riskNow, Health: 100},
		{Date: riskNow, Health: 80},
	}))

	// 20 points lost over 30 days is a rate of 20/month.
	rate := HealthDeclineRate([]HealthPoint{
		{Date: riskNow.AddDate(0, 0, -30), Health: 100},
		{Date: riskNow, Health: 80},
	})
	assert.InDelta(t, 20.0, rate, 0.001)
}

func TestCalculateRiskLevelNoHistory(t *testing.T) {
	svc := NewRiskService()
	result := svc.CalculateRiskLevel(healthyEquipment(), nil, riskNow)

	// The only factor for pristine equipment is the missing preventive history.
	assert.Equal(t, 20, result.Score)
	assert.Equal(t, constants.PriorityLow, result.Level)
	assert.Equal(t, []string{"No preventive maintenance history"}, result.Reasons)
	assert.Equal(t, 20, result.Confidence)
}

func TestCalculateRiskLevelCriticalHealth(t *testing.T) {
	svc := NewRiskService()
	equipment := healthyEquipment()
	equipment.HealthScore = 35

	result := svc.CalculateRiskLevel(equipment, nil, riskNow)
	assert.Contains(t, result.Reasons, "Critical health score below 40%")
	assert.GreaterOrEqual(t, result.Score, 40)
}

func TestCalculateRiskLevelFrequentBreakdowns(t *testing.T) {
	svc := NewRiskService()
	equipment := healthyEquipment()

	requests := []entities.MaintenanceRequest{
		correctiveAt(riskNow.AddDate(0, 0, -30)),
		correctiveAt(riskNow.AddDate(0, 0, -20)),
		correctiveAt(riskNow.AddDate(0, 0, -10)),
	}

	result := svc.CalculateRiskLevel(equipment, requests, riskNow)
	assert.Contains(t, result.Reasons, "3 breakdowns in last 60 days")
}

func TestCalculateRiskLevelWarrantyExpired(t *testing.T) {
	svc := NewRiskService()
	equipment := healthyEquipment()
	equipment.WarrantyExpiry = riskNow.AddDate(-1, 0, 0)

	result := svc.CalculateRiskLevel(equipment, nil, riskNow)
	assert.Contains(t, result.Reasons, "Warranty expired - higher failure risk")
}

func TestCalculateRiskLevelStalePreventive(t *testing.T) {
	svc := NewRiskService()
	equipment := healthyEquipment()

	preventive := entities.MaintenanceRequest{Type: constants.TypePreventive, Status: constants.StatusRepaired}
	preventive.CreatedAt = riskNow.AddDate(0, 0, -120)

	result := svc.CalculateRiskLevel(equipment, []entities.MaintenanceRequest{preventive}, riskNow)
	assert.Contains(t, result.Reasons, "No preventive maintenance in 90+ days")
	assert.NotContains(t, result.Reasons, "No preventive maintenance history")
}

func TestPredictNextFailureHorizons(t *testing.T) {
	svc := NewRiskService()

	low := svc.PredictNextFailure(healthyEquipment(), nil, riskNow)
	assert.Equal(t, 180, low.DaysToFailure)
	assert.Equal(t, riskNow.AddDate(0, 0, 180), low.PredictedDate)
	assert.Contains(t, low.Recommendations, "Continue regular maintenance schedule")

	critical := healthyEquipment()
	critical.HealthScore = 30
	critical.WarrantyExpiry = riskNow.AddDate(-1, 0, 0)
	requests := []entities.MaintenanceRequest{
		correctiveAt(riskNow.AddDate(0, 0, -25)),
		correctiveAt(riskNow.AddDate(0, 0, -15)),
		correctiveAt(riskNow.AddDate(0, 0, -5)),
	}

	high := svc.PredictNextFailure(critical, requests, riskNow)
	assert.Equal(t, 30, high.DaysToFailure)
	assert.Contains(t, high.Recommendations, "Schedule immediate inspection")
	assert.Contains(t, high.Recommendations, "Consider major overhaul or replacement")
}
