package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/dto"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/events"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/repositories"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/constants"
	apperrors "github.com/Ruban-raj-143/gearguard-maintenance/pkg/errors"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/eventbus"
)

const healthDateLayout = "2006-01-02"

// breakdownWindowDays is the rolling window for the breakdown warning.
const breakdownWindowDays = 30

// breakdownThreshold is the corrective-request count that raises the warning.
const breakdownThreshold = 3

type RequestServiceInterface interface {
	GetRequests(ctx context.Context, limit, offset uint64) (dto.RequestListResponseDTO, error)
	FindRequest(ctx context.Context, id uint64) (*dto.RequestResponseDTO, error)
	ListByEquipment(ctx context.Context, equipmentID uint64) ([]dto.RequestResponseDTO, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.RequestResponseDTO, error)
	UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) (*dto.RequestResponseDTO, error)
	DeleteRequest(ctx context.Context, id uint64) error
}

// RequestService is the lifecycle engine: every status change runs its full
// side-effect set (technician counter, equipment health, history log,
// completion timestamp) inside one transaction.
type RequestService struct {
	txManager       repositories.TxManagerInterface
	requestRepo     repositories.RequestRepositoryInterface
	equipmentRepo   repositories.EquipmentRepositoryInterface
	technicianRepo  repositories.TechnicianRepositoryInterface
	historyRepo     repositories.HealthHistoryRepositoryInterface
	priorityService PriorityServiceInterface
	bus             *eventbus.Bus
	logger          *zap.Logger
	now             func() time.Time
}

func NewRequestService(
	txManager repositories.TxManagerInterface,
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	technicianRepo repositories.TechnicianRepositoryInterface,
	historyRepo repositories.HealthHistoryRepositoryInterface,
	priorityService PriorityServiceInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		txManager:       txManager,
		requestRepo:     requestRepo,
		equipmentRepo:   equipmentRepo,
		technicianRepo:  technicianRepo,
		historyRepo:     historyRepo,
		priorityService: priorityService,
		bus:             bus,
		logger:          logger,
		now:             time.Now,
	}
}

func (s *RequestService) GetRequests(ctx context.Context, limit, offset uint64) (dto.RequestListResponseDTO, error) {
	if limit == 0 || limit > 100 {
		limit = 50
	}
	requests, total, err := s.requestRepo.GetRequests(ctx, limit, offset)
	if err != nil {
		return dto.RequestListResponseDTO{}, err
	}

	list := make([]dto.RequestResponseDTO, 0, len(requests))
	for i := range requests {
		list = append(list, *requestToResponse(&requests[i]))
	}
	return dto.RequestListResponseDTO{List: list, TotalCount: total}, nil
}

func (s *RequestService) FindRequest(ctx context.Context, id uint64) (*dto.RequestResponseDTO, error) {
	request, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	return requestToResponse(request), nil
}

func (s *RequestService) ListByEquipment(ctx context.Context, equipmentID uint64) ([]dto.RequestResponseDTO, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, equipmentID); err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.ListByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	list := make([]dto.RequestResponseDTO, 0, len(requests))
	for i := range requests {
		list = append(list, *requestToResponse(&requests[i]))
	}
	return list, nil
}

func (s *RequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.RequestResponseDTO, error) {
	scheduledDate, err := parseDate(payload.ScheduledDate, "scheduled_date")
	if err != nil {
		return nil, err
	}

	now := s.now()
	var requestID uint64
	var priority string

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		equipment, err := s.equipmentRepo.FindEquipmentInTx(ctx, tx, payload.EquipmentID)
		if err != nil {
			return err
		}

		if payload.AssignedTechnicianID != nil {
			if _, err := s.technicianRepo.FindTechnicianInTx(ctx, tx, *payload.AssignedTechnicianID); err != nil {
				return err
			}
		}

		priority = payload.Priority
		if priority == "" {
			priority = s.priorityService.CalculatePriority(equipment, payload.Type, now)
		}

		requestID, err = s.requestRepo.CreateRequestInTx(ctx, tx, repositories.CreateRequestParams{
			Subject:              payload.Subject,
			EquipmentID:          payload.EquipmentID,
			Type:                 payload.Type,
			ScheduledDate:        scheduledDate,
			Duration:             payload.Duration,
			AssignedTechnicianID: payload.AssignedTechnicianID,
			Priority:             priority,
			Notes:                payload.Notes,
		})
		if err != nil {
			return err
		}

		if payload.AssignedTechnicianID != nil {
			if err := s.technicianRepo.AdjustActiveRequestsInTx(ctx, tx, *payload.AssignedTechnicianID, 1); err != nil {
				return err
			}
		}

		if payload.Type == constants.TypeCorrective {
			health, err := s.equipmentRepo.ApplyHealthDeltaInTx(ctx, tx, payload.EquipmentID, -10)
			if err != nil {
				return err
			}
			return s.historyRepo.AppendInTx(ctx, tx, entities.HealthHistoryEntry{
				EquipmentID:  payload.EquipmentID,
				HealthScore:  health,
				ChangeReason: constants.HealthReasonCorrectiveCreated,
				RequestID:    &requestID,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.RequestCreatedEvent{
		RequestID:   requestID,
		EquipmentID: payload.EquipmentID,
		Type:        payload.Type,
		Priority:    priority,
	})
	s.checkBreakdownWarning(ctx, payload.EquipmentID)

	return s.FindRequest(ctx, requestID)
}

func (s *RequestService) UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) (*dto.RequestResponseDTO, error) {
	params := repositories.UpdateRequestParams{
		Subject:              payload.Subject,
		Type:                 payload.Type,
		Duration:             payload.Duration,
		AssignedTechnicianID: payload.AssignedTechnicianID,
		Priority:             payload.Priority,
		Status:               payload.Status,
		Notes:                payload.Notes,
	}
	if payload.ScheduledDate != nil {
		scheduledDate, err := parseDate(*payload.ScheduledDate, "scheduled_date")
		if err != nil {
			return nil, err
		}
		params.ScheduledDate = &scheduledDate
	}

	now := s.now()
	var completed *events.RequestCompletedEvent
	var scrapped *events.EquipmentScrappedEvent

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		old, err := s.requestRepo.FindRequestForUpdateInTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if payload.AssignedTechnicianID != nil {
			if _, err := s.technicianRepo.FindTechnicianInTx(ctx, tx, *payload.AssignedTechnicianID); err != nil {
				return err
			}
		}

		if err := s.requestRepo.UpdateRequestInTx(ctx, tx, id, params); err != nil {
			return err
		}

		// Side effects fire only on an actual status change, never on a
		// repeated target status.
		if payload.Status == nil || *payload.Status == old.Status {
			return nil
		}
		newStatus := *payload.Status

		if err := s.applyTransition(ctx, tx, old, newStatus, now); err != nil {
			return err
		}

		if constants.IsTerminalStatus(newStatus) {
			completed = &events.RequestCompletedEvent{
				RequestID:   id,
				EquipmentID: old.EquipmentID,
				Type:        old.Type,
				Status:      newStatus,
			}
		}
		if newStatus == constants.StatusScrap {
			scrapped = &events.EquipmentScrappedEvent{RequestID: id, EquipmentID: old.EquipmentID}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if completed != nil {
		s.bus.Publish(ctx, *completed)
	}
	if scrapped != nil {
		s.bus.Publish(ctx, *scrapped)
	}

	return s.FindRequest(ctx, id)
}

// applyTransition runs the side-effect table for an old→new status change.
// The decision is keyed on the request's state as committed before this
// update: the record that held the technician and type.
func (s *RequestService) applyTransition(ctx context.Context, tx pgx.Tx, old *entities.MaintenanceRequest, newStatus string, now time.Time) error {
	leavingActive := (old.Status == constants.StatusNew || old.Status == constants.StatusInProgress) &&
		constants.IsTerminalStatus(newStatus)
	if leavingActive && old.AssignedTechnicianID != nil {
		if err := s.technicianRepo.AdjustActiveRequestsInTx(ctx, tx, *old.AssignedTechnicianID, -1); err != nil {
			return err
		}
	}

	if newStatus == constants.StatusRepaired && old.Type == constants.TypePreventive {
		health, err := s.equipmentRepo.ApplyHealthDeltaInTx(ctx, tx, old.EquipmentID, 5)
		if err != nil {
			return err
		}
		if err := s.historyRepo.AppendInTx(ctx, tx, entities.HealthHistoryEntry{
			EquipmentID:  old.EquipmentID,
			HealthScore:  health,
			ChangeReason: constants.HealthReasonPreventiveComplete,
			RequestID:    &old.ID,
		}); err != nil {
			return err
		}
	}

	if newStatus == constants.StatusScrap {
		if err := s.equipmentRepo.ScrapInTx(ctx, tx, old.EquipmentID); err != nil {
			return err
		}
		if err := s.historyRepo.AppendInTx(ctx, tx, entities.HealthHistoryEntry{
			EquipmentID:  old.EquipmentID,
			HealthScore:  0,
			ChangeReason: constants.HealthReasonScrapped,
			RequestID:    &old.ID,
		}); err != nil {
			return err
		}
	}

	if constants.IsTerminalStatus(newStatus) {
		if err := s.requestRepo.SetCompletedAtInTx(ctx, tx, old.ID, now); err != nil {
			return err
		}
	}
	return nil
}

// DeleteRequest removes the record and, when it was still active, releases
// its technician slot.
func (s *RequestService) DeleteRequest(ctx context.Context, id uint64) error {
	return s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		old, err := s.requestRepo.FindRequestForUpdateInTx(ctx, tx, id)
		if err != nil {
			return err
		}

		active := old.Status == constants.StatusNew || old.Status == constants.StatusInProgress
		if active && old.AssignedTechnicianID != nil {
			if err := s.technicianRepo.AdjustActiveRequestsInTx(ctx, tx, *old.AssignedTechnicianID, -1); err != nil {
				return err
			}
		}
		return s.requestRepo.DeleteRequestInTx(ctx, tx, id)
	})
}

// checkBreakdownWarning raises the rolling-window warning after a create
// commits. Failures here only log; the request itself already succeeded.
func (s *RequestService) checkBreakdownWarning(ctx context.Context, equipmentID uint64) {
	since := s.now().AddDate(0, 0, -breakdownWindowDays)
	count, err := s.requestRepo.CountRecentCorrective(ctx, equipmentID, since)
	if err != nil {
		s.logger.Warn("breakdown warning check failed",
			zap.Uint64("equipment_id", equipmentID), zap.Error(err))
		return
	}
	if count < breakdownThreshold {
		return
	}

	equipment, err := s.equipmentRepo.FindEquipment(ctx, equipmentID)
	if err != nil {
		s.logger.Warn("breakdown warning check failed",
			zap.Uint64("equipment_id", equipmentID), zap.Error(err))
		return
	}
	s.bus.Publish(ctx, events.BreakdownWarningEvent{
		EquipmentID:    equipmentID,
		EquipmentName:  equipment.Name,
		BreakdownCount: count,
	})
}

func parseDate(value, field string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(healthDateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("%s must be an RFC3339 or YYYY-MM-DD date", field)
	}
	return t, nil
}

func requestToResponse(request *entities.MaintenanceRequest) *dto.RequestResponseDTO {
	resp := &dto.RequestResponseDTO{
		ID:                   request.ID,
		Subject:              request.Subject,
		EquipmentID:          request.EquipmentID,
		Type:                 request.Type,
		ScheduledDate:        request.ScheduledDate.Format(time.RFC3339),
		Duration:             request.Duration,
		AssignedTechnicianID: request.AssignedTechnicianID,
		Priority:             request.Priority,
		Status:               request.Status,
		Notes:                request.Notes,
		CreatedAt:            request.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            request.UpdatedAt.Format(time.RFC3339),
	}
	if request.CompletedAt != nil {
		completedAt := request.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completedAt
	}
	if request.Equipment != nil {
		resp.EquipmentName = request.Equipment.Name
		resp.EquipmentLocation = request.Equipment.Location
		resp.EquipmentHealth = request.Equipment.HealthScore
	}
	if request.Technician != nil {
		resp.TechnicianName = &request.Technician.Name
		if request.Technician.Team != nil {
			resp.TeamName = &request.Technician.Team.Name
		}
	}
	return resp
}
