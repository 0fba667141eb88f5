package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/dto"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/repositories"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/constants"
	apperrors "github.com/Ruban-raj-143/gearguard-maintenance/pkg/errors"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/eventbus"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/utils"
)

// In-memory store standing in for the repositories. The tx argument is
// ignored: the fake tx manager runs the callback directly, so each service
// call still behaves as one atomic unit from the test's point of view.
type fakeStore struct {
	equipment   map[uint64]*entities.Equipment
	technicians map[uint64]*entities.Technician
	requests    map[uint64]*entities.MaintenanceRequest
	history     []entities.HealthHistoryEntry
	nextID      uint64
	now         time.Time
}

func newFakeStore(now time.Time) *fakeStore {
	return &fakeStore{
		equipment:   make(map[uint64]*entities.Equipment),
		technicians: make(map[uint64]*entities.Technician),
		requests:    make(map[uint64]*entities.MaintenanceRequest),
		nextID:      1,
		now:         now,
	}
}

func (s *fakeStore) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

// --- equipment repository ---

func (s *fakeStore) GetEquipment(ctx context.Context) ([]entities.Equipment, error) {
	var out []entities.Equipment
	for _, eq := range s.equipment {
		out = append(out, *eq)
	}
	return out, nil
}

func (s *fakeStore) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	eq, ok := s.equipment[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("equipment %d not found", id)
	}
	clone := *eq
	return &clone, nil
}

func (s *fakeStore) FindEquipmentInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error) {
	return s.FindEquipment(ctx, id)
}

func (s *fakeStore) CreateEquipment(ctx context.Context, params repositories.CreateEquipmentParams) (*entities.Equipment, error) {
	panic("not used in lifecycle tests")
}

func (s *fakeStore) UpdateEquipment(ctx context.Context, id uint64, params repositories.UpdateEquipmentParams) error {
	panic("not used in lifecycle tests")
}

func (s *fakeStore) ApplyHealthDeltaInTx(ctx context.Context, tx pgx.Tx, id uint64, delta int) (int, error) {
	eq, ok := s.equipment[id]
	if !ok {
		return 0, apperrors.NewNotFoundError("equipment %d not found", id)
	}
	eq.HealthScore += delta
	if eq.HealthScore < 0 {
		eq.HealthScore = 0
	}
	if eq.HealthScore > 100 {
		eq.HealthScore = 100
	}
	return eq.HealthScore, nil
}

func (s *fakeStore) ScrapInTx(ctx context.Context, tx pgx.Tx, id uint64) error {
	eq, ok := s.equipment[id]
	if !ok {
		return apperrors.NewNotFoundError("equipment %d not found", id)
	}
	eq.HealthScore = 0
	eq.IsUsable = false
	return nil
}

// --- technician repository ---

func (s *fakeStore) GetTechnicians(ctx context.Context) ([]entities.Technician, error) {
	var out []entities.Technician
	for _, tech := range s.technicians {
		out = append(out, *tech)
	}
	return out, nil
}

func (s *fakeStore) GetTechniciansByTeam(ctx context.Context, teamID uint64) ([]entities.Technician, error) {
	var out []entities.Technician
	for _, tech := range s.technicians {
		if tech.TeamID == teamID {
			out = append(out, *tech)
		}
	}
	return out, nil
}

func (s *fakeStore) FindTechnician(ctx context.Context, id uint64) (*entities.Technician, error) {
	tech, ok := s.technicians[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("technician %d not found", id)
	}
	clone := *tech
	return &clone, nil
}

func (s *fakeStore) FindTechnicianInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Technician, error) {
	return s.FindTechnician(ctx, id)
}

func (s *fakeStore) CreateTechnician(ctx context.Context, payload dto.CreateTechnicianDTO) (*entities.Technician, error) {
	panic("not used in lifecycle tests")
}

func (s *fakeStore) UpdateTechnician(ctx context.Context, id uint64, payload dto.UpdateTechnicianDTO) error {
	panic("not used in lifecycle tests")
}

func (s *fakeStore) DeleteTechnician(ctx context.Context, id uint64) error {
	panic("not used in lifecycle tests")
}

func (s *fakeStore) AdjustActiveRequestsInTx(ctx context.Context, tx pgx.Tx, id uint64, delta int) error {
	tech, ok := s.technicians[id]
	if !ok {
		return apperrors.NewNotFoundError("technician %d not found", id)
	}
	tech.ActiveRequests += delta
	if tech.ActiveRequests < 0 {
		tech.ActiveRequests = 0
	}
	return nil
}

// --- request repository ---

func (s *fakeStore) GetRequests(ctx context.Context, limit, offset uint64) ([]entities.MaintenanceRequest, uint64, error) {
	var out []entities.MaintenanceRequest
	for _, req := range s.requests {
		out = append(out, *req)
	}
	return out, uint64(len(out)), nil
}

func (s *fakeStore) FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	req, ok := s.requests[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("maintenance request %d not found", id)
	}
	clone := *req
	return &clone, nil
}

func (s *fakeStore) ListByEquipment(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceRequest, error) {
	var out []entities.MaintenanceRequest
	for _, req := range s.requests {
		if req.EquipmentID == equipmentID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (s *fakeStore) CountRecentCorrective(ctx context.Context, equipmentID uint64, since time.Time) (int, error) {
	count := 0
	for _, req := range s.requests {
		if req.EquipmentID == equipmentID && req.Type == constants.TypeCorrective && req.CreatedAt.After(since) {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) CreateRequestInTx(ctx context.Context, tx pgx.Tx, params repositories.CreateRequestParams) (uint64, error) {
	id := s.nextID
	s.nextID++

	req := &entities.MaintenanceRequest{
		ID:                   id,
		Subject:              params.Subject,
		EquipmentID:          params.EquipmentID,
		Type:                 params.Type,
		ScheduledDate:        params.ScheduledDate,
		Duration:             params.Duration,
		AssignedTechnicianID: params.AssignedTechnicianID,
		Priority:             params.Priority,
		Status:               constants.StatusNew,
		Notes:                params.Notes,
	}
	req.CreatedAt = s.now
	req.UpdatedAt = s.now
	s.requests[id] = req
	return id, nil
}

func (s *fakeStore) FindRequestForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.MaintenanceRequest, error) {
	return s.FindRequest(ctx, id)
}

func (s *fakeStore) UpdateRequestInTx(ctx context.Context, tx pgx.Tx, id uint64, params repositories.UpdateRequestParams) error {
	req, ok := s.requests[id]
	if !ok {
		return apperrors.NewNotFoundError("maintenance request %d not found", id)
	}
	if params.Subject != nil {
		req.Subject = *params.Subject
	}
	if params.Type != nil {
		req.Type = *params.Type
	}
	if params.ScheduledDate != nil {
		req.ScheduledDate = *params.ScheduledDate
	}
	if params.Duration != nil {
		req.Duration = *params.Duration
	}
	if params.AssignedTechnicianID != nil {
		req.AssignedTechnicianID = params.AssignedTechnicianID
	}
	if params.Priority != nil {
		req.Priority = *params.Priority
	}
	if params.Status != nil {
		req.Status = *params.Status
	}
	if params.Notes != nil {
		req.Notes = *params.Notes
	}
	req.UpdatedAt = s.now
	return nil
}

func (s *fakeStore) SetCompletedAtInTx(ctx context.Context, tx pgx.Tx, id uint64, completedAt time.Time) error {
	req, ok := s.requests[id]
	if !ok {
		return apperrors.NewNotFoundError("maintenance request %d not found", id)
	}
	req.CompletedAt = &completedAt
	return nil
}

func (s *fakeStore) DeleteRequestInTx(ctx context.Context, tx pgx.Tx, id uint64) error {
	if _, ok := s.requests[id]; !ok {
		return apperrors.NewNotFoundError("maintenance request %d not found", id)
	}
	delete(s.requests, id)
	// History rows outlive the request; the schema detaches them with
	// ON DELETE SET NULL on request_id.
	for i := range s.history {
		if s.history[i].RequestID != nil && *s.history[i].RequestID == id {
			s.history[i].RequestID = nil
		}
	}
	return nil
}

// fakeHistoryRepo is separate from fakeStore because its ListByEquipment
// would collide with the request repository's on one receiver.
type fakeHistoryRepo struct {
	store *fakeStore
}

func (r *fakeHistoryRepo) AppendInTx(ctx context.Context, tx pgx.Tx, entry entities.HealthHistoryEntry) error {
	entry.CreatedAt = r.store.now
	r.store.history = append(r.store.history, entry)
	return nil
}

func (r *fakeHistoryRepo) ListByEquipment(ctx context.Context, equipmentID uint64) ([]entities.HealthHistoryEntry, error) {
	var out []entities.HealthHistoryEntry
	for _, entry := range r.store.history {
		if entry.EquipmentID == equipmentID {
			out = append(out, entry)
		}
	}
	return out, nil
}

var engineNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func newEngine(t *testing.T) (*RequestService, *fakeStore) {
	t.Helper()
	store := newFakeStore(engineNow)

	store.equipment[1] = &entities.Equipment{
		ID:             1,
		Name:           "CNC Milling Machine",
		HealthScore:    100,
		IsUsable:       true,
		PurchaseDate:   engineNow.AddDate(-2, 0, 0),
		WarrantyExpiry: engineNow.AddDate(1, 0, 0),
	}
	store.technicians[7] = &entities.Technician{ID: 7, Name: "Marta", ActiveRequests: 0}

	logger := zap.NewNop()
	svc := NewRequestService(store, store, store, store, &fakeHistoryRepo{store: store},
		NewPriorityService(), eventbus.New(logger), logger)

	engine, ok := svc.(*RequestService)
	require.True(t, ok)
	engine.now = func() time.Time { return engineNow }
	return engine, store
}

func createPayload(requestType string) dto.CreateRequestDTO {
	return dto.CreateRequestDTO{
		Subject:              "Spindle vibration",
		EquipmentID:          1,
		Type:                 requestType,
		ScheduledDate:        "2026-06-02",
		Duration:             2,
		AssignedTechnicianID: utils.Ptr(uint64(7)),
	}
}

func TestCreateCorrectiveRequest(t *testing.T) {
	engine, store := newEngine(t)

	resp, err := engine.CreateRequest(context.Background(), createPayload(constants.TypeCorrective))
	require.NoError(t, err)

	assert.Equal(t, constants.StatusNew, resp.Status)
	assert.Equal(t, 90, store.equipment[1].HealthScore)
	assert.Equal(t, 1, store.technicians[7].ActiveRequests)

	require.Len(t, store.history, 1)
	assert.Equal(t, constants.HealthReasonCorrectiveCreated, store.history[0].ChangeReason)
	assert.Equal(t, 90, store.history[0].HealthScore)
}

func TestCreatePreventiveRequestLeavesHealthAlone(t *testing.T) {
	engine, store := newEngine(t)

	_, err := engine.CreateRequest(context.Background(), createPayload(constants.TypePreventive))
	require.NoError(t, err)

	assert.Equal(t, 100, store.equipment[1].HealthScore)
	assert.Empty(t, store.history)
	assert.Equal(t, 1, store.technicians[7].ActiveRequests)
}

func TestCreateRequestDefaultsPriority(t *testing.T) {
	engine, store := newEngine(t)

	resp, err := engine.CreateRequest(context.Background(), createPayload(constants.TypeCorrective))
	require.NoError(t, err)
	assert.Equal(t, constants.PriorityMedium, resp.Priority)

	store.equipment[1].HealthScore = 35
	resp, err = engine.CreateRequest(context.Background(), createPayload(constants.TypePreventive))
	require.NoError(t, err)
	assert.Equal(t, constants.PriorityHigh, resp.Priority)
}

func TestCreateRequestKeepsCallerPriority(t *testing.T) {
	engine, _ := newEngine(t)

	payload := createPayload(constants.TypeCorrective)
	payload.Priority = constants.PriorityLow

	resp, err := engine.CreateRequest(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, constants.PriorityLow, resp.Priority)
}

func TestCreateRequestUnknownEquipment(t *testing.T) {
	engine, _ := newEngine(t)

	payload := createPayload(constants.TypeCorrective)
	payload.EquipmentID = 99

	_, err := engine.CreateRequest(context.Background(), payload)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCreateRequestRejectsBadDate(t *testing.T) {
	engine, _ := newEngine(t)

	payload := createPayload(constants.TypeCorrective)
	payload.ScheduledDate = "tomorrow"

	_, err := engine.CreateRequest(context.Background(), payload)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCompletePreventiveRestoresHealth(t *testing.T) {
	engine, store := newEngine(t)
	store.equipment[1].HealthScore = 90

	resp, err := engine.CreateRequest(context.Background(), createPayload(constants.TypePreventive))
	require.NoError(t, err)

	updated, err := engine.UpdateRequest(context.Background(), resp.ID,
		dto.UpdateRequestDTO{Status: utils.Ptr(constants.StatusRepaired)})
	require.NoError(t, err)

	assert.Equal(t, 95, store.equipment[1].HealthScore)
	assert.Equal(t, 0, store.technicians[7].ActiveRequests)
	require.NotNil(t, updated.CompletedAt)

	require.Len(t, store.history, 1)
	assert.Equal(t, constants.HealthReasonPreventiveComplete, store.history[0].ChangeReason)
}

func TestCompletePreventiveCapsAtHundred(t *testing.T) {
	engine, store := newEngine(t)
	store.equipment[1].HealthScore = 98

	resp, err := engine.CreateRequest(context.Background(), createPayload(constants.TypePreventive))
	require.NoError(t, err)

	_, err = engine.UpdateRequest(context.Background(), resp.ID,
		dto.UpdateRequestDTO{Status: utils.Ptr(constants.StatusRepaired)})
	require.NoError(t, err)

	assert.Equal(t, 100, store.equipment[1].HealthScore)
}

func TestScrapZeroesEquipment(t *testing.T) {
	engine, store := newEngine(t)

	resp, err := engine.CreateRequest(context.Background(), createPayload(constants.TypeCorrective))
	require.NoError(t, err)

	updated, err := engine.UpdateRequest(context.Background(), resp.ID,
		dto.UpdateRequestDTO{Status: utils.Ptr(constants.StatusScrap)})
	require.NoError(t, err)

	assert.Equal(t, 0, store.equipment[1].HealthScore)
	assert.False(t, store.equipment[1].IsUsable)
	assert.Equal(t, 0, store.technicians[7].ActiveRequests)
	require.NotNil(t, updated.CompletedAt)

	// Corrective create wrote one entry, scrap wrote the second.
	require.Len(t, store.history, 2)
	assert.Equal(t, constants.HealthReasonScrapped, store.history[1].ChangeReason)
	assert.Equal(t, 0, store.history[1].HealthScore)
}

func TestRepeatedStatusIsIdempotent(t *testing.T) {
	engine, store := newEngine(t)

	resp, err := engine.CreateRequest(context.Background(), createPayload(constants.TypePreventive))
	require.NoError(t, err)

	_, err = engine.UpdateRequest(context.Background(), resp.ID,
		dto.UpdateRequestDTO{Status: utils.Ptr(constants.StatusRepaired)})
	require.NoError(t, err)
	healthAfterFirst := store.equipment[1].HealthScore

	_, err = engine.UpdateRequest(context.Background(), resp.ID,
		dto.UpdateRequestDTO{Status: utils.Ptr(constants.StatusRepaired)})
	require.NoError(t, err)

	assert.Equal(t, healthAfterFirst, store.equipment[1].HealthScore)
	assert.Len(t, store.history, 1)
	assert.Equal(t, 0, store.technicians[7].ActiveRequests)
}

func TestNonStatusUpdateHasNoSideEffects(t *testing.T) {
	engine, store := newEngine(t)

	resp, err := engine.CreateRequest(context.Background(), createPayload(constants.TypeCorrective))
	require.NoError(t, err)
	healthBefore := store.equipment[1].HealthScore

	_, err = engine.UpdateRequest(context.Background(), resp.ID,
		dto.UpdateRequestDTO{Notes: utils.Ptr("ordering spare bearing")})
	require.NoError(t, err)

	assert.Equal(t, healthBefore, store.equipment[1].HealthScore)
	assert.Equal(t, 1, store.technicians[7].ActiveRequests)
	assert.Len(t, store.history, 1)
}

func TestDeleteActiveRequestReleasesTechnician(t *testing.T) {
	engine, store := newEngine(t)

	resp, err := engine.CreateRequest(context.Background(), createPayload(constants.TypePreventive))
	require.NoError(t, err)
	assert.Equal(t, 1, store.technicians[7].ActiveRequests)

	require.NoError(t, engine.DeleteRequest(context.Background(), resp.ID))
	assert.Equal(t, 0, store.technicians[7].ActiveRequests)
	assert.Empty(t, store.requests)
}

func TestDeleteCompletedRequestLeavesCounter(t *testing.T) {
	engine, store := newEngine(t)

	resp, err := engine.CreateRequest(context.Background(), createPayload(constants.TypePreventive))
	require.NoError(t, err)

	_, err = engine.UpdateRequest(context.Background(), resp.ID,
		dto.UpdateRequestDTO{Status: utils.Ptr(constants.StatusRepaired)})
	require.NoError(t, err)
	assert.Equal(t, 0, store.technicians[7].ActiveRequests)

	require.NoError(t, engine.DeleteRequest(context.Background(), resp.ID))
	assert.Equal(t, 0, store.technicians[7].ActiveRequests)
}

func TestDeleteCorrectiveRequestKeepsHistory(t *testing.T) {
	engine, store := newEngine(t)

	resp, err := engine.CreateRequest(context.Background(), createPayload(constants.TypeCorrective))
	require.NoError(t, err)
	require.Len(t, store.history, 1)
	require.NotNil(t, store.history[0].RequestID)

	require.NoError(t, engine.DeleteRequest(context.Background(), resp.ID))
	assert.Empty(t, store.requests)

	// The audit trail survives the request, with the reference detached.
	require.Len(t, store.history, 1)
	assert.Nil(t, store.history[0].RequestID)
	assert.Equal(t, constants.HealthReasonCorrectiveCreated, store.history[0].ChangeReason)
}

func TestDeleteUnknownRequest(t *testing.T) {
	engine, _ := newEngine(t)
	err := engine.DeleteRequest(context.Background(), 42)
	assert.True(t, apperrors.IsNotFound(err))
}

// Counter invariant across a mixed sequence of creates, completions and
// deletes: active_requests tracks the open assignments exactly and never
// dips below zero.
func TestActiveRequestCounterInvariant(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	first, err := engine.CreateRequest(ctx, createPayload(constants.TypeCorrective))
	require.NoError(t, err)
	second, err := engine.CreateRequest(ctx, createPayload(constants.TypePreventive))
	require.NoError(t, err)
	third, err := engine.CreateRequest(ctx, createPayload(constants.TypeCorrective))
	require.NoError(t, err)
	assert.Equal(t, 3, store.technicians[7].ActiveRequests)

	_, err = engine.UpdateRequest(ctx, first.ID, dto.UpdateRequestDTO{Status: utils.Ptr(constants.StatusInProgress)})
	require.NoError(t, err)
	assert.Equal(t, 3, store.technicians[7].ActiveRequests)

	_, err = engine.UpdateRequest(ctx, first.ID, dto.UpdateRequestDTO{Status: utils.Ptr(constants.StatusRepaired)})
	require.NoError(t, err)
	require.NoError(t, engine.DeleteRequest(ctx, second.ID))
	_, err = engine.UpdateRequest(ctx, third.ID, dto.UpdateRequestDTO{Status: utils.Ptr(constants.StatusScrap)})
	require.NoError(t, err)

	assert.Equal(t, 0, store.technicians[7].ActiveRequests)

	count := 0
	for _, req := range store.requests {
		if req.AssignedTechnicianID != nil && *req.AssignedTechnicianID == 7 &&
			(req.Status == constants.StatusNew || req.Status == constants.StatusInProgress) {
			count++
		}
	}
	assert.Equal(t, count, store.technicians[7].ActiveRequests)
}

func TestHealthNeverLeavesRange(t *testing.T) {
	engine, store := newEngine(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		_, err := engine.CreateRequest(ctx, createPayload(constants.TypeCorrective))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, store.equipment[1].HealthScore, 0)
	}
	assert.Equal(t, 0, store.equipment[1].HealthScore)
}
