package services

import (
	"context"
	"time"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/dto"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/repositories"
)

type TeamServiceInterface interface {
	GetTeams(ctx context.Context) ([]dto.TeamResponseDTO, error)
	FindTeam(ctx context.Context, id uint64) (*dto.TeamResponseDTO, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamResponseDTO, error)
	UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) (*dto.TeamResponseDTO, error)
}

type TeamService struct {
	teamRepo repositories.TeamRepositoryInterface
}

func NewTeamService(teamRepo repositories.TeamRepositoryInterface) TeamServiceInterface {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]dto.TeamResponseDTO, error) {
	teams, err := s.teamRepo.GetTeams(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]dto.TeamResponseDTO, 0, len(teams))
	for i := range teams {
		list = append(list, *teamToResponse(&teams[i]))
	}
	return list, nil
}

func (s *TeamService) FindTeam(ctx context.Context, id uint64) (*dto.TeamResponseDTO, error) {
	team, err := s.teamRepo.FindTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	return teamToResponse(team), nil
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*dto.TeamResponseDTO, error) {
	team, err := s.teamRepo.CreateTeam(ctx, payload)
	if err != nil {
		return nil, err
	}
	return teamToResponse(team), nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) (*dto.TeamResponseDTO, error) {
	if payload.Name != nil {
		if err := s.teamRepo.RenameTeam(ctx, id, *payload.Name); err != nil {
			return nil, err
		}
	}
	return s.FindTeam(ctx, id)
}

func teamToResponse(team *entities.Team) *dto.TeamResponseDTO {
	return &dto.TeamResponseDTO{
		ID:             team.ID,
		Name:           team.Name,
		Specialization: team.Specialization,
		CreatedAt:      team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      team.UpdatedAt.Format(time.RFC3339),
	}
}
