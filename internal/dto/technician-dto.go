package dto

type CreateTechnicianDTO struct {
	Name   string   `json:"name" validate:"required,min=2,max=255"`
	TeamID uint64   `json:"team_id" validate:"required,gt=0"`
	Avatar string   `json:"avatar,omitempty"`
	Skills []string `json:"skills,omitempty" validate:"omitempty,dive,min=1"`
}

type UpdateTechnicianDTO struct {
	Name   *string   `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	TeamID *uint64   `json:"team_id,omitempty" validate:"omitempty,gt=0"`
	Avatar *string   `json:"avatar,omitempty"`
	Skills *[]string `json:"skills,omitempty" validate:"omitempty,dive,min=1"`
}

type TechnicianResponseDTO struct {
	ID             uint64   `json:"id"`
	Name           string   `json:"name"`
	TeamID         uint64   `json:"team_id"`
	TeamName       string   `json:"team_name,omitempty"`
	Avatar         string   `json:"avatar"`
	Skills         []string `json:"skills"`
	ActiveRequests int      `json:"active_requests"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}
