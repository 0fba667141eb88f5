package services

import (
	"fmt"
	"time"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/constants"
)

// HealthPoint is one step of the replayed health curve.
type HealthPoint struct {
	Date   time.Time
	Health int
}

// RiskResult is the aggregate breakdown-risk assessment for one unit.
type RiskResult struct {
	Level      string
	Confidence int
	Score      int
	Reasons    []string
}

// FailurePrediction projects the next expected failure from the risk level.
type FailurePrediction struct {
	PredictedDate   time.Time
	DaysToFailure   int
	Confidence      int
	Recommendations []string
}

type RiskServiceInterface interface {
	CalculateRiskLevel(equipment *entities.Equipment, requests []entities.MaintenanceRequest, now time.Time) RiskResult
	PredictNextFailure(equipment *entities.Equipment, requests []entities.MaintenanceRequest, now time.Time) FailurePrediction
}

type RiskService struct{}

func NewRiskService() RiskServiceInterface {
	return &RiskService{}
}

// BuildHealthHistory replays the request log over the purchase-date baseline
// of 100. Every request contributes a point: corrective work costs 10,
// completed preventive work restores 5, both clamped to [0,100]. Requests
// must be in chronological order.
func BuildHealthHistory(equipment *entities.Equipment, requests []entities.MaintenanceRequest) []HealthPoint {
	points := []HealthPoint{{Date: equipment.PurchaseDate, Health: 100}}
	health := 100

	for _, req := range requests {
		switch {
		case req.Type == constants.TypeCorrective:
			health -= 10
			if health < 0 {
				health = 0
			}
		case req.Type == constants.TypePreventive && req.Status == constants.StatusRepaired:
			health += 5
			if health > 100 {
				health = 100
			}
		}
		points = append(points, HealthPoint{Date: req.CreatedAt, Health: health})
	}
	return points
}

// HealthDeclineRate estimates points lost per 30 days over the last three
// samples of the curve. Zero when the curve is too short or flat in time.
func HealthDeclineRate(points []HealthPoint) float64 {
	if len(points) < 2 {
		return 0
	}
	recent := points
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}

	first := recent[0]
	last := recent[len(recent)-1]
	days := last.Date.Sub(first.Date).Hours() / 24
	if days == 0 {
		return 0
	}
	return float64(first.Health-last.Health) / days * 30
}

// CalculateRiskLevel accumulates risk points from health, breakdown
// frequency, decline trend, warranty state and preventive-maintenance
// recency. The reasons list keeps the order the factors are evaluated in.
func (s *RiskService) CalculateRiskLevel(equipment *entities.Equipment, requests []entities.MaintenanceRequest, now time.Time) RiskResult {
	score := 0
	reasons := []string{}

	if equipment.HealthScore < 40 {
		score += 40
		reasons = append(reasons, "Critical health score below 40%")
	} else if equipment.HealthScore < 60 {
		score += 20
		reasons = append(reasons, "Health score declining")
	}

	recentBreakdowns := 0
	cutoff := now.AddDate(0, 0, -60)
	for _, req := range requests {
		if req.Type == constants.TypeCorrective && req.CreatedAt.After(cutoff) {
			recentBreakdowns++
		}
	}
	if recentBreakdowns >= 3 {
		score += 35
		reasons = append(reasons, fmt.Sprintf("%d breakdowns in last 60 days", recentBreakdowns))
	} else if recentBreakdowns == 2 {
		score += 20
		reasons = append(reasons, fmt.Sprintf("%d breakdowns in last 60 days", recentBreakdowns))
	}

	declineRate := HealthDeclineRate(BuildHealthHistory(equipment, requests))
	if declineRate > 20 {
		score += 25
		reasons = append(reasons, "Rapid health decline detected")
	} else if declineRate > 10 {
		score += 15
		reasons = append(reasons, "Moderate health decline")
	}

	if equipment.WarrantyExpired(now) {
		score += 10
		reasons = append(reasons, "Warranty expired - higher failure risk")
	}

	var lastPreventive *entities.MaintenanceRequest
	for i := range requests {
		req := &requests[i]
		if req.Type == constants.TypePreventive && req.Status == constants.StatusRepaired {
			if lastPreventive == nil || req.CreatedAt.After(lastPreventive.CreatedAt) {
				lastPreventive = req
			}
		}
	}
	if lastPreventive == nil {
		score += 20
		reasons = append(reasons, "No preventive maintenance history")
	} else if now.Sub(lastPreventive.CreatedAt).Hours() > 90*24 {
		score += 15
		reasons = append(reasons, "No preventive maintenance in 90+ days")
	}

	confidence := score
	if confidence > 100 {
		confidence = 100
	}

	level := constants.PriorityLow
	if score >= 70 {
		level = constants.PriorityHigh
	} else if score >= 40 {
		level = constants.PriorityMedium
	}

	return RiskResult{Level: level, Confidence: confidence, Score: score, Reasons: reasons}
}

// PredictNextFailure turns the risk level into an expected-failure horizon
// with maintenance recommendations.
func (s *RiskService) PredictNextFailure(equipment *entities.Equipment, requests []entities.MaintenanceRequest, now time.Time) FailurePrediction {
	risk := s.CalculateRiskLevel(equipment, requests, now)

	var days int
	var recommendations []string
	switch risk.Level {
	case constants.PriorityHigh:
		days = 30
		recommendations = []string{
			"Schedule immediate inspection",
			"Consider replacement planning",
			"Increase preventive maintenance frequency",
		}
	case constants.PriorityMedium:
		days = 90
		recommendations = []string{
			"Schedule preventive maintenance within 2 weeks",
			"Monitor closely for warning signs",
		}
	default:
		days = 180
		recommendations = []string{
			"Continue regular maintenance schedule",
			"Monitor health score trends",
		}
	}

	if equipment.HealthScore < 50 {
		recommendations = append(recommendations, "Consider major overhaul or replacement")
	}

	return FailurePrediction{
		PredictedDate:   now.AddDate(0, 0, days),
		DaysToFailure:   days,
		Confidence:      risk.Confidence,
		Recommendations: recommendations,
	}
}
