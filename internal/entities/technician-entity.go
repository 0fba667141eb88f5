package entities

import (
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/types"
)

type Technician struct {
	ID             uint64   `json:"id"`
	Name           string   `json:"name"`
	TeamID         uint64   `json:"team_id"`
	Avatar         string   `json:"avatar"`
	Skills         []string `json:"skills"`
	ActiveRequests int      `json:"active_requests"`

	types.BaseEntity

	// Joined data, not columns.
	Team *Team `json:"team,omitempty" db:"-"`
}
