package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/constants"
)

func TestCalculatePriority(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	validWarranty := now.AddDate(1, 0, 0)
	expiredWarranty := now.AddDate(-1, 0, 0)

	svc := NewPriorityService()

	tests := []struct {
		name        string
		health      int
		warranty    time.Time
		requestType string
		want        string
	}{
		{"critical health preventive", 35, validWarranty, constants.TypePreventive, constants.PriorityHigh},
		{"critical health corrective", 38, validWarranty, constants.TypeCorrective, constants.PriorityHigh},
		{"expired warranty", 90, expiredWarranty, constants.TypePreventive, constants.PriorityHigh},
		{"healthy corrective", 90, validWarranty, constants.TypeCorrective, constants.PriorityMedium},
		{"healthy preventive", 90, validWarranty, constants.TypePreventive, constants.PriorityLow},
		{"boundary health 40", 40, validWarranty, constants.TypePreventive, constants.PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			equipment := &entities.Equipment{
				HealthScore:    tt.health,
				WarrantyExpiry: tt.warranty,
			}
			assert.Equal(t, tt.want, svc.CalculatePriority(equipment, tt.requestType, now))
		})
	}
}
