package services

import (
	"context"
	"time"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/dto"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/repositories"
)

type TechnicianServiceInterface interface {
	GetTechnicians(ctx context.Context) ([]dto.TechnicianResponseDTO, error)
	GetTechniciansByTeam(ctx context.Context, teamID uint64) ([]dto.TechnicianResponseDTO, error)
	FindTechnician(ctx context.Context, id uint64) (*dto.TechnicianResponseDTO, error)
	CreateTechnician(ctx context.Context, payload dto.CreateTechnicianDTO) (*dto.TechnicianResponseDTO, error)
	UpdateTechnician(ctx context.Context, id uint64, payload dto.UpdateTechnicianDTO) (*dto.TechnicianResponseDTO, error)
	DeleteTechnician(ctx context.Context, id uint64) error
}

type TechnicianService struct {
	technicianRepo repositories.TechnicianRepositoryInterface
	teamRepo       repositories.TeamRepositoryInterface
}

func NewTechnicianService(
	technicianRepo repositories.TechnicianRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
) TechnicianServiceInterface {
	return &TechnicianService{technicianRepo: technicianRepo, teamRepo: teamRepo}
}

func (s *TechnicianService) GetTechnicians(ctx context.Context) ([]dto.TechnicianResponseDTO, error) {
	technicians, err := s.technicianRepo.GetTechnicians(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]dto.TechnicianResponseDTO, 0, len(technicians))
	for i := range technicians {
		list = append(list, *technicianToResponse(&technicians[i]))
	}
	return list, nil
}

func (s *TechnicianService) GetTechniciansByTeam(ctx context.Context, teamID uint64) ([]dto.TechnicianResponseDTO, error) {
	if _, err := s.teamRepo.FindTeam(ctx, teamID); err != nil {
		return nil, err
	}

	technicians, err := s.technicianRepo.GetTechniciansByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	list := make([]dto.TechnicianResponseDTO, 0, len(technicians))
	for i := range technicians {
		list = append(list, *technicianToResponse(&technicians[i]))
	}
	return list, nil
}

func (s *TechnicianService) FindTechnician(ctx context.Context, id uint64) (*dto.TechnicianResponseDTO, error) {
	technician, err := s.technicianRepo.FindTechnician(ctx, id)
	if err != nil {
		return nil, err
	}
	return technicianToResponse(technician), nil
}

func (s *TechnicianService) CreateTechnician(ctx context.Context, payload dto.CreateTechnicianDTO) (*dto.TechnicianResponseDTO, error) {
	if _, err := s.teamRepo.FindTeam(ctx, payload.TeamID); err != nil {
		return nil, err
	}

	technician, err := s.technicianRepo.CreateTechnician(ctx, payload)
	if err != nil {
		return nil, err
	}
	return technicianToResponse(technician), nil
}

func (s *TechnicianService) UpdateTechnician(ctx context.Context, id uint64, payload dto.UpdateTechnicianDTO) (*dto.TechnicianResponseDTO, error) {
	if payload.TeamID != nil {
		if _, err := s.teamRepo.FindTeam(ctx, *payload.TeamID); err != nil {
			return nil, err
		}
	}

	if err := s.technicianRepo.UpdateTechnician(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.FindTechnician(ctx, id)
}

func (s *TechnicianService) DeleteTechnician(ctx context.Context, id uint64) error {
	return s.technicianRepo.DeleteTechnician(ctx, id)
}

func technicianToResponse(technician *entities.Technician) *dto.TechnicianResponseDTO {
	resp := &dto.TechnicianResponseDTO{
		ID:             technician.ID,
		Name:           technician.Name,
		TeamID:         technician.TeamID,
		Avatar:         technician.Avatar,
		Skills:         technician.Skills,
		ActiveRequests: technician.ActiveRequests,
		CreatedAt:      technician.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      technician.UpdatedAt.Format(time.RFC3339),
	}
	if technician.Team != nil {
		resp.TeamName = technician.Team.Name
	}
	return resp
}
