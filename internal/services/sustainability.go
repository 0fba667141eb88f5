package services

import (
	"math"
	"strings"
	"time"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/constants"
)

// Environmental model constants. Base consumption is kWh per month by
// equipment category; cost and carbon factors are flat rates.
const (
	electricityRatePerKWh = 0.12
	carbonKgPerKWh        = 0.4

	partsWastePerRepairKg = 2.5
	oilWastePerRepairL    = 1.2
	metalWastePerRepairKg = 0.8
)

var baseConsumptionRules = []struct {
	Keyword string
	KWh     float64
}{
	{"server", 500},
	{"cnc", 800},
	{"chiller", 1200},
	{"generator", 2000},
}

const defaultConsumptionKWh = 100

// EnergyMetrics estimates monthly consumption against an optimal target.
type EnergyMetrics struct {
	CurrentConsumption     int
	OptimalConsumption     int
	PotentialSavings       int
	EfficiencyRating       int
	AnnualCost             int
	PotentialAnnualSavings int
}

type CarbonMetrics struct {
	CurrentEmissions  int
	OptimalEmissions  int
	EmissionReduction int
}

type WasteMetrics struct {
	PartsWaste         float64
	OilWaste           float64
	MetalWaste         float64
	TotalWaste         float64
	RecyclingPotential float64
}

type SustainabilityReport struct {
	Energy EnergyMetrics
	Carbon CarbonMetrics
	Waste  WasteMetrics
	Grade  string
}

type SustainabilityServiceInterface interface {
	Assess(equipment *entities.Equipment, requests []entities.MaintenanceRequest, now time.Time) SustainabilityReport
}

type SustainabilityService struct{}

func NewSustainabilityService() SustainabilityServiceInterface {
	return &SustainabilityService{}
}

func baseConsumption(equipmentName string) float64 {
	name := strings.ToLower(equipmentName)
	for _, rule := range baseConsumptionRules {
		if strings.Contains(name, rule.Keyword) {
			return rule.KWh
		}
	}
	return defaultConsumptionKWh
}

// efficiencyStars rates the unit 1-5 from its health score. Unusable
// equipment is always a single star.
func efficiencyStars(equipment *entities.Equipment) int {
	if !equipment.IsUsable {
		return 1
	}
	switch {
	case equipment.HealthScore >= 80:
		return 5
	case equipment.HealthScore >= 60:
		return 4
	case equipment.HealthScore >= 40:
		return 3
	case equipment.HealthScore >= 20:
		return 2
	default:
		return 1
	}
}

// Assess derives energy, carbon and waste metrics from the unit's condition
// and repair history, then folds them into an A-F grade.
func (s *SustainabilityService) Assess(equipment *entities.Equipment, requests []entities.MaintenanceRequest, now time.Time) SustainabilityReport {
	base := baseConsumption(equipment.Name)

	healthMultiplier := 1.0
	if equipment.HealthScore < 40 {
		healthMultiplier = 1.5
	} else if equipment.HealthScore < 70 {
		healthMultiplier = 1.2
	}

	ageMultiplier := 1.0
	age := equipment.AgeYears(now)
	if age > 5 {
		ageMultiplier = 1.3
	} else if age > 3 {
		ageMultiplier = 1.1
	}

	current := base * healthMultiplier * ageMultiplier
	optimal := base * 0.8
	savings := current - optimal
	if savings < 0 {
		savings = 0
	}

	energy := EnergyMetrics{
		CurrentConsumption:     int(math.Round(current)),
		OptimalConsumption:     int(math.Round(optimal)),
		PotentialSavings:       int(math.Round(savings)),
		EfficiencyRating:       efficiencyStars(equipment),
		AnnualCost:             int(math.Round(current * 12 * electricityRatePerKWh)),
		PotentialAnnualSavings: int(math.Round(savings * 12 * electricityRatePerKWh)),
	}

	carbon := CarbonMetrics{
		CurrentEmissions:  int(math.Round(current * carbonKgPerKWh)),
		OptimalEmissions:  int(math.Round(optimal * carbonKgPerKWh)),
		EmissionReduction: int(math.Round(savings * carbonKgPerKWh)),
	}

	repairs := 0
	for _, req := range requests {
		if req.Type == constants.TypeCorrective {
			repairs++
		}
	}
	waste := WasteMetrics{
		PartsWaste: float64(repairs) * partsWastePerRepairKg,
		OilWaste:   float64(repairs) * oilWastePerRepairL,
		MetalWaste: float64(repairs) * metalWastePerRepairKg,
	}
	waste.TotalWaste = waste.PartsWaste + waste.MetalWaste
	waste.RecyclingPotential = 0.9*waste.MetalWaste + 0.3*waste.PartsWaste

	return SustainabilityReport{
		Energy: energy,
		Carbon: carbon,
		Waste:  waste,
		Grade:  sustainabilityGrade(energy.EfficiencyRating, equipment.HealthScore, waste.RecyclingPotential),
	}
}

func sustainabilityGrade(stars, health int, recyclingPotential float64) string {
	wasteScore := 60
	if recyclingPotential > 2 {
		wasteScore = 80
	}
	score := (stars*20 + health + wasteScore) / 3

	switch {
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}
