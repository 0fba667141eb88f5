package dto

type CreateEquipmentDTO struct {
	Name           string `json:"name" validate:"required,min=2,max=255"`
	SerialNumber   string `json:"serial_number" validate:"required,min=3,max=64"`
	PurchaseDate   string `json:"purchase_date" validate:"required"`
	WarrantyExpiry string `json:"warranty_expiry" validate:"required"`
	Location       string `json:"location" validate:"required"`
	Department     string `json:"department" validate:"required"`
	AssignedTeamID uint64 `json:"assigned_team_id" validate:"required,gt=0"`
}

type UpdateEquipmentDTO struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Location       *string `json:"location,omitempty"`
	Department     *string `json:"department,omitempty"`
	AssignedTeamID *uint64 `json:"assigned_team_id,omitempty" validate:"omitempty,gt=0"`
	WarrantyExpiry *string `json:"warranty_expiry,omitempty"`
}

type EquipmentResponseDTO struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	SerialNumber   string `json:"serial_number"`
	PurchaseDate   string `json:"purchase_date"`
	WarrantyExpiry string `json:"warranty_expiry"`
	Location       string `json:"location"`
	Department     string `json:"department"`
	AssignedTeamID uint64 `json:"assigned_team_id"`
	TeamName       string `json:"team_name,omitempty"`
	HealthScore    int    `json:"health_score"`
	IsUsable       bool   `json:"is_usable"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

type HealthHistoryResponseDTO struct {
	EquipmentID  uint64  `json:"equipment_id"`
	HealthScore  int     `json:"health_score"`
	ChangeReason string  `json:"change_reason"`
	RequestID    *uint64 `json:"request_id,omitempty"`
	CreatedAt    string  `json:"created_at"`
}
