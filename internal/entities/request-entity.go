package entities

import (
	"time"

	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/types"
)

type MaintenanceRequest struct {
	ID                   uint64     `json:"id"`
	Subject              string     `json:"subject"`
	EquipmentID          uint64     `json:"equipment_id"`
	Type                 string     `json:"type"`
	ScheduledDate        time.Time  `json:"scheduled_date"`
	Duration             float64    `json:"duration"`
	AssignedTechnicianID *uint64    `json:"assigned_technician_id"`
	Priority             string     `json:"priority"`
	Status               string     `json:"status"`
	Notes                string     `json:"notes"`
	CompletedAt          *time.Time `json:"completed_at"`

	types.BaseEntity

	// Joined data, not columns.
	Equipment  *Equipment  `json:"equipment,omitempty" db:"-"`
	Technician *Technician `json:"technician,omitempty" db:"-"`
}
