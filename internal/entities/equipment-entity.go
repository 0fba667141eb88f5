package entities

import (
	"time"

	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/types"
)

type Equipment struct {
	ID             uint64    `json:"id"`
	Name           string    `json:"name"`
	SerialNumber   string    `json:"serial_number"`
	PurchaseDate   time.Time `json:"purchase_date"`
	WarrantyExpiry time.Time `json:"warranty_expiry"`
	Location       string    `json:"location"`
	Department     string    `json:"department"`
	AssignedTeamID uint64    `json:"assigned_team_id"`
	HealthScore    int       `json:"health_score"`
	IsUsable       bool      `json:"is_usable"`

	types.BaseEntity

	// Joined data, not columns.
	Team *Team `json:"team,omitempty" db:"-"`
}

// WarrantyExpired reports whether the warranty had lapsed at the given moment.
func (e *Equipment) WarrantyExpired(now time.Time) bool {
	return e.WarrantyExpiry.Before(now)
}

// Age in whole calendar years, the way depreciation is counted.
func (e *Equipment) AgeYears(now time.Time) int {
	return now.Year() - e.PurchaseDate.Year()
}
