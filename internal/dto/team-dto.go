package dto

type CreateTeamDTO struct {
	Name           string `json:"name" validate:"required,min=2,max=255"`
	Specialization string `json:"specialization" validate:"required,min=2,max=255"`
}

type UpdateTeamDTO struct {
	// Teams are referenced by equipment and technicians; only rename is allowed.
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
}

type TeamResponseDTO struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}
