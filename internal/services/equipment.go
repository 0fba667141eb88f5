package services

import (
	"context"
	"time"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/dto"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/repositories"
)

type EquipmentServiceInterface interface {
	GetEquipment(ctx context.Context) ([]dto.EquipmentResponseDTO, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentResponseDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentResponseDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentResponseDTO, error)
	GetHealthHistory(ctx context.Context, id uint64) ([]dto.HealthHistoryResponseDTO, error)
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	historyRepo   repositories.HealthHistoryRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	historyRepo repositories.HealthHistoryRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		historyRepo:   historyRepo,
		teamRepo:      teamRepo,
	}
}

func (s *EquipmentService) GetEquipment(ctx context.Context) ([]dto.EquipmentResponseDTO, error) {
	equipment, err := s.equipmentRepo.GetEquipment(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]dto.EquipmentResponseDTO, 0, len(equipment))
	for i := range equipment {
		list = append(list, *equipmentToResponse(&equipment[i]))
	}
	return list, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentResponseDTO, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	return equipmentToResponse(equipment), nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentResponseDTO, error) {
	purchaseDate, err := parseDate(payload.PurchaseDate, "purchase_date")
	if err != nil {
		return nil, err
	}
	warrantyExpiry, err := parseDate(payload.WarrantyExpiry, "warranty_expiry")
	if err != nil {
		return nil, err
	}

	if _, err := s.teamRepo.FindTeam(ctx, payload.AssignedTeamID); err != nil {
		return nil, err
	}

	equipment, err := s.equipmentRepo.CreateEquipment(ctx, repositories.CreateEquipmentParams{
		Name:           payload.Name,
		SerialNumber:   payload.SerialNumber,
		PurchaseDate:   purchaseDate,
		WarrantyExpiry: warrantyExpiry,
		Location:       payload.Location,
		Department:     payload.Department,
		AssignedTeamID: payload.AssignedTeamID,
	})
	if err != nil {
		return nil, err
	}
	return equipmentToResponse(equipment), nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentResponseDTO, error) {
	params := repositories.UpdateEquipmentParams{
		Name:           payload.Name,
		Location:       payload.Location,
		Department:     payload.Department,
		AssignedTeamID: payload.AssignedTeamID,
	}
	if payload.WarrantyExpiry != nil {
		warrantyExpiry, err := parseDate(*payload.WarrantyExpiry, "warranty_expiry")
		if err != nil {
			return nil, err
		}
		params.WarrantyExpiry = &warrantyExpiry
	}
	if payload.AssignedTeamID != nil {
		if _, err := s.teamRepo.FindTeam(ctx, *payload.AssignedTeamID); err != nil {
			return nil, err
		}
	}

	if err := s.equipmentRepo.UpdateEquipment(ctx, id, params); err != nil {
		return nil, err
	}
	return s.FindEquipment(ctx, id)
}

func (s *EquipmentService) GetHealthHistory(ctx context.Context, id uint64) ([]dto.HealthHistoryResponseDTO, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, id); err != nil {
		return nil, err
	}

	entries, err := s.historyRepo.ListByEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	list := make([]dto.HealthHistoryResponseDTO, 0, len(entries))
	for _, entry := range entries {
		list = append(list, dto.HealthHistoryResponseDTO{
			EquipmentID:  entry.EquipmentID,
			HealthScore:  entry.HealthScore,
			ChangeReason: entry.ChangeReason,
			RequestID:    entry.RequestID,
			CreatedAt:    entry.CreatedAt.Format(time.RFC3339),
		})
	}
	return list, nil
}

func equipmentToResponse(equipment *entities.Equipment) *dto.EquipmentResponseDTO {
	resp := &dto.EquipmentResponseDTO{
		ID:             equipment.ID,
		Name:           equipment.Name,
		SerialNumber:   equipment.SerialNumber,
		PurchaseDate:   equipment.PurchaseDate.Format(healthDateLayout),
		WarrantyExpiry: equipment.WarrantyExpiry.Format(healthDateLayout),
		Location:       equipment.Location,
		Department:     equipment.Department,
		AssignedTeamID: equipment.AssignedTeamID,
		HealthScore:    equipment.HealthScore,
		IsUsable:       equipment.IsUsable,
		CreatedAt:      equipment.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      equipment.UpdatedAt.Format(time.RFC3339),
	}
	if equipment.Team != nil {
		resp.TeamName = equipment.Team.Name
	}
	return resp
}
