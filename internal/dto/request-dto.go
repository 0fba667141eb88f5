package dto

type CreateRequestDTO struct {
	Subject              string  `json:"subject" validate:"required,min=3,max=255"`
	EquipmentID          uint64  `json:"equipment_id" validate:"required,gt=0"`
	Type                 string  `json:"type" validate:"required,oneof=Corrective Preventive"`
	ScheduledDate        string  `json:"scheduled_date" validate:"required"`
	Duration             float64 `json:"duration" validate:"gte=0"`
	AssignedTechnicianID *uint64 `json:"assigned_technician_id,omitempty" validate:"omitempty,gt=0"`
	Priority             string  `json:"priority,omitempty" validate:"omitempty,oneof=Low Medium High"`
	Notes                string  `json:"notes,omitempty"`
}

// UpdateRequestDTO enumerates every updatable field. A nil pointer means
// "leave unchanged"; unknown JSON fields are rejected at bind time.
type UpdateRequestDTO struct {
	Subject              *string  `json:"subject,omitempty" validate:"omitempty,min=3,max=255"`
	Type                 *string  `json:"type,omitempty" validate:"omitempty,oneof=Corrective Preventive"`
	ScheduledDate        *string  `json:"scheduled_date,omitempty"`
	Duration             *float64 `json:"duration,omitempty" validate:"omitempty,gte=0"`
	AssignedTechnicianID *uint64  `json:"assigned_technician_id,omitempty" validate:"omitempty,gt=0"`
	Priority             *string  `json:"priority,omitempty" validate:"omitempty,oneof=Low Medium High"`
	Status               *string  `json:"status,omitempty" validate:"omitempty,oneof=New 'In Progress' Repaired Scrap"`
	Notes                *string  `json:"notes,omitempty"`
}

type RequestResponseDTO struct {
	ID                   uint64  `json:"id"`
	Subject              string  `json:"subject"`
	EquipmentID          uint64  `json:"equipment_id"`
	EquipmentName        string  `json:"equipment_name"`
	EquipmentLocation    string  `json:"equipment_location"`
	EquipmentHealth      int     `json:"equipment_health"`
	Type                 string  `json:"type"`
	ScheduledDate        string  `json:"scheduled_date"`
	Duration             float64 `json:"duration"`
	AssignedTechnicianID *uint64 `json:"assigned_technician_id"`
	TechnicianName       *string `json:"technician_name,omitempty"`
	TeamName             *string `json:"team_name,omitempty"`
	Priority             string  `json:"priority"`
	Status               string  `json:"status"`
	Notes                string  `json:"notes"`
	CreatedAt            string  `json:"created_at"`
	UpdatedAt            string  `json:"updated_at"`
	CompletedAt          *string `json:"completed_at,omitempty"`
}

type RequestListResponseDTO struct {
	List       []RequestResponseDTO `json:"list"`
	TotalCount uint64               `json:"total_count"`
}
