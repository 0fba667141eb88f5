package services

import (
	"time"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/constants"
)

type PriorityServiceInterface interface {
	CalculatePriority(equipment *entities.Equipment, requestType string, now time.Time) string
}

type PriorityService struct{}

func NewPriorityService() PriorityServiceInterface {
	return &PriorityService{}
}

// CalculatePriority derives the default priority for a new request. Equipment
// in critical health or out of warranty always goes High; otherwise corrective
// work outranks preventive.
func (s *PriorityService) CalculatePriority(equipment *entities.Equipment, requestType string, now time.Time) string {
	if equipment.HealthScore < 40 || equipment.WarrantyExpired(now) {
		return constants.PriorityHigh
	}
	if requestType == constants.TypeCorrective {
		return constants.PriorityMedium
	}
	return constants.PriorityLow
}
