package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
	apperrors "github.com/Ruban-raj-143/gearguard-maintenance/pkg/errors"
)

type CreateRequestParams struct {
	Subject              string
	EquipmentID          uint64
	Type                 string
	ScheduledDate        time.Time
	Duration             float64
	AssignedTechnicianID *uint64
	Priority             string
	Notes                string
}

type UpdateRequestParams struct {
	Subject              *string
	Type                 *string
	ScheduledDate        *time.Time
	Duration             *float64
	AssignedTechnicianID *uint64
	Priority             *string
	Status               *string
	Notes                *string
}

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context, limit, offset uint64) ([]entities.MaintenanceRequest, uint64, error)
	FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error)
	ListByEquipment(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceRequest, error)
	CountRecentCorrective(ctx context.Context, equipmentID uint64, since time.Time) (int, error)

	CreateRequestInTx(ctx context.Context, tx pgx.Tx, params CreateRequestParams) (uint64, error)
	FindRequestForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.MaintenanceRequest, error)
	UpdateRequestInTx(ctx context.Context, tx pgx.Tx, id uint64, params UpdateRequestParams) error
	SetCompletedAtInTx(ctx context.Context, tx pgx.Tx, id uint64, completedAt time.Time) error
	DeleteRequestInTx(ctx context.Context, tx pgx.Tx, id uint64) error
}

type RequestRepository struct {
	storage *pgxpool.Pool
}

func NewRequestRepository(storage *pgxpool.Pool) RequestRepositoryInterface {
	return &RequestRepository{storage: storage}
}

const requestSelect = `
	SELECT r.id, r.subject, r.equipment_id, r.type, r.scheduled_date, r.duration,
	       r.assigned_technician_id, r.priority, r.status, r.notes,
	       r.created_at, r.updated_at, r.completed_at,
	       e.name, e.location, e.health_score,
	       t.name, t.avatar, tm.name
	FROM maintenance_requests r
	LEFT JOIN equipment e ON r.equipment_id = e.id
	LEFT JOIN technicians t ON r.assigned_technician_id = t.id
	LEFT JOIN teams tm ON t.team_id = tm.id`

func scanRequest(row pgx.Row) (*entities.MaintenanceRequest, error) {
	var req entities.MaintenanceRequest
	var eqName, eqLocation *string
	var eqHealth *int
	var techName, techAvatar, teamName *string

	err := row.Scan(&req.ID, &req.Subject, &req.EquipmentID, &req.Type, &req.ScheduledDate,
		&req.Duration, &req.AssignedTechnicianID, &req.Priority, &req.Status, &req.Notes,
		&req.CreatedAt, &req.UpdatedAt, &req.CompletedAt,
		&eqName, &eqLocation, &eqHealth,
		&techName, &techAvatar, &teamName)
	if err != nil {
		return nil, err
	}

	if eqName != nil {
		req.Equipment = &entities.Equipment{ID: req.EquipmentID, Name: *eqName}
		if eqLocation != nil {
			req.Equipment.Location = *eqLocation
		}
		if eqHealth != nil {
			req.Equipment.HealthScore = *eqHealth
		}
	}
	if req.AssignedTechnicianID != nil && techName != nil {
		req.Technician = &entities.Technician{ID: *req.AssignedTechnicianID, Name: *techName}
		if techAvatar != nil {
			req.Technician.Avatar = *techAvatar
		}
		if teamName != nil {
			req.Technician.Team = &entities.Team{Name: *teamName}
		}
	}
	return &req, nil
}

func (r *RequestRepository) GetRequests(ctx context.Context, limit, offset uint64) ([]entities.MaintenanceRequest, uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM maintenance_requests`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count requests: %w", err)
	}

	rows, err := r.storage.Query(ctx,
		requestSelect+` ORDER BY r.created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	requests := make([]entities.MaintenanceRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan request: %w", err)
		}
		requests = append(requests, *req)
	}
	return requests, total, rows.Err()
}

func (r *RequestRepository) FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	req, err := scanRequest(r.storage.QueryRow(ctx, requestSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("maintenance request %d not found", id)
		}
		return nil, fmt.Errorf("find request: %w", err)
	}
	return req, nil
}

func (r *RequestRepository) ListByEquipment(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceRequest, error) {
	rows, err := r.storage.Query(ctx,
		requestSelect+` WHERE r.equipment_id = $1 ORDER BY r.created_at ASC`, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("list requests by equipment: %w", err)
	}
	defer rows.Close()

	requests := make([]entities.MaintenanceRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func (r *RequestRepository) CountRecentCorrective(ctx context.Context, equipmentID uint64, since time.Time) (int, error) {
	var count int
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(*) FROM maintenance_requests
		 WHERE equipment_id = $1 AND type = 'Corrective' AND created_at > $2`,
		equipmentID, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count recent corrective requests: %w", err)
	}
	return count, nil
}

func (r *RequestRepository) CreateRequestInTx(ctx context.Context, tx pgx.Tx, params CreateRequestParams) (uint64, error) {
	var id uint64
	err := tx.QueryRow(ctx,
		`INSERT INTO maintenance_requests
		 (subject, equipment_id, type, scheduled_date, duration, assigned_technician_id, priority, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		params.Subject, params.EquipmentID, params.Type, params.ScheduledDate,
		params.Duration, params.AssignedTechnicianID, params.Priority, params.Notes).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	return id, nil
}

// FindRequestForUpdateInTx locks the row so the side-effect decision is made
// against the committed state.
func (r *RequestRepository) FindRequestForUpdateInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.MaintenanceRequest, error) {
	var req entities.MaintenanceRequest
	err := tx.QueryRow(ctx,
		`SELECT id, subject, equipment_id, type, scheduled_date, duration,
		        assigned_technician_id, priority, status, notes, created_at, updated_at, completed_at
		 FROM maintenance_requests WHERE id = $1 FOR UPDATE`, id).
		Scan(&req.ID, &req.Subject, &req.EquipmentID, &req.Type, &req.ScheduledDate,
			&req.Duration, &req.AssignedTechnicianID, &req.Priority, &req.Status, &req.Notes,
			&req.CreatedAt, &req.UpdatedAt, &req.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("maintenance request %d not found", id)
		}
		return nil, fmt.Errorf("find request for update: %w", err)
	}
	return &req, nil
}

func (r *RequestRepository) UpdateRequestInTx(ctx context.Context, tx pgx.Tx, id uint64, params UpdateRequestParams) error {
	builder := sq.Update("maintenance_requests").Set("updated_at", sq.Expr("now()"))
	changed := false

	set := func(col string, val any) {
		builder = builder.Set(col, val)
		changed = true
	}

	if params.Subject != nil {
		set("subject", *params.Subject)
	}
	if params.Type != nil {
		set("type", *params.Type)
	}
	if params.ScheduledDate != nil {
		set("scheduled_date", *params.ScheduledDate)
	}
	if params.Duration != nil {
		set("duration", *params.Duration)
	}
	if params.AssignedTechnicianID != nil {
		set("assigned_technician_id", *params.AssignedTechnicianID)
	}
	if params.Priority != nil {
		set("priority", *params.Priority)
	}
	if params.Status != nil {
		set("status", *params.Status)
	}
	if params.Notes != nil {
		set("notes", *params.Notes)
	}
	if !changed {
		return nil
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("build request update: %w", err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("maintenance request %d not found", id)
	}
	return nil
}

func (r *RequestRepository) SetCompletedAtInTx(ctx context.Context, tx pgx.Tx, id uint64, completedAt time.Time) error {
	_, err := tx.Exec(ctx,
		`UPDATE maintenance_requests SET completed_at = $1 WHERE id = $2`, completedAt, id)
	if err != nil {
		return fmt.Errorf("set completed_at: %w", err)
	}
	return nil
}

func (r *RequestRepository) DeleteRequestInTx(ctx context.Context, tx pgx.Tx, id uint64) error {
	tag, err := tx.Exec(ctx, `DELETE FROM maintenance_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("maintenance request %d not found", id)
	}
	return nil
}
