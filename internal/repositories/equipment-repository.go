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

type CreateEquipmentParams struct {
	Name           string
	SerialNumber   string
	PurchaseDate   time.Time
	WarrantyExpiry time.Time
	Location       string
	Department     string
	AssignedTeamID uint64
}

type UpdateEquipmentParams struct {
	Name           *string
	Location       *string
	Department     *string
	AssignedTeamID *uint64
	WarrantyExpiry *time.Time
}

type EquipmentRepositoryInterface interface {
	GetEquipment(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	FindEquipmentInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, params CreateEquipmentParams) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, params UpdateEquipmentParams) error
	// ApplyHealthDeltaInTx shifts the health score by delta clamped to
	// [0,100] and returns the resulting score.
	ApplyHealthDeltaInTx(ctx context.Context, tx pgx.Tx, id uint64, delta int) (int, error)
	// ScrapInTx zeroes the health score and marks the unit unusable.
	ScrapInTx(ctx context.Context, tx pgx.Tx, id uint64) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

const equipmentSelect = `
	SELECT e.id, e.name, e.serial_number, e.purchase_date, e.warranty_expiry,
	       e.location, e.department, e.assigned_team_id, e.health_score, e.is_usable,
	       e.created_at, e.updated_at, tm.name
	FROM equipment e
	LEFT JOIN teams tm ON e.assigned_team_id = tm.id`

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var teamName *string
	err := row.Scan(&e.ID, &e.Name, &e.SerialNumber, &e.PurchaseDate, &e.WarrantyExpiry,
		&e.Location, &e.Department, &e.AssignedTeamID, &e.HealthScore, &e.IsUsable,
		&e.CreatedAt, &e.UpdatedAt, &teamName)
	if err != nil {
		return nil, err
	}
	if teamName != nil {
		e.Team = &entities.Team{ID: e.AssignedTeamID, Name: *teamName}
	}
	return &e, nil
}

func (r *EquipmentRepository) GetEquipment(ctx context.Context) ([]entities.Equipment, error) {
	rows, err := r.storage.Query(ctx, equipmentSelect+` ORDER BY e.name`)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()

	items := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		items = append(items, *e)
	}
	return items, rows.Err()
}

func (r *EquipmentRepository) findWith(ctx context.Context, q querier, id uint64) (*entities.Equipment, error) {
	e, err := scanEquipment(q.QueryRow(ctx, equipmentSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("equipment %d not found", id)
		}
		return nil, fmt.Errorf("find equipment: %w", err)
	}
	return e, nil
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return r.findWith(ctx, r.storage, id)
}

func (r *EquipmentRepository) FindEquipmentInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error) {
	return r.findWith(ctx, tx, id)
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, params CreateEquipmentParams) (*entities.Equipment, error) {
	var id uint64
	err := r.storage.QueryRow(ctx,
		`INSERT INTO equipment (name, serial_number, purchase_date, warranty_expiry, location, department, assigned_team_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		params.Name, params.SerialNumber, params.PurchaseDate, params.WarrantyExpiry,
		params.Location, params.Department, params.AssignedTeamID).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("serial number '%s' is already registered", params.SerialNumber)
		}
		return nil, fmt.Errorf("create equipment: %w", err)
	}
	return r.FindEquipment(ctx, id)
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, params UpdateEquipmentParams) error {
	builder := sq.Update("equipment").Set("updated_at", sq.Expr("now()"))
	changed := false

	if params.Name != nil {
		builder = builder.Set("name", *params.Name)
		changed = true
	}
	if params.Location != nil {
		builder = builder.Set("location", *params.Location)
		changed = true
	}
	if params.Department != nil {
		builder = builder.Set("department", *params.Department)
		changed = true
	}
	if params.AssignedTeamID != nil {
		builder = builder.Set("assigned_team_id", *params.AssignedTeamID)
		changed = true
	}
	if params.WarrantyExpiry != nil {
		builder = builder.Set("warranty_expiry", *params.WarrantyExpiry)
		changed = true
	}
	if !changed {
		return nil
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("build equipment update: %w", err)
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update equipment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("equipment %d not found", id)
	}
	return nil
}

func (r *EquipmentRepository) ApplyHealthDeltaInTx(ctx context.Context, tx pgx.Tx, id uint64, delta int) (int, error) {
	var health int
	err := tx.QueryRow(ctx,
		`UPDATE equipment
		 SET health_score = LEAST(GREATEST(health_score + $1, 0), 100), updated_at = now()
		 WHERE id = $2
		 RETURNING health_score`, delta, id).Scan(&health)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewNotFoundError("equipment %d not found", id)
		}
		return 0, fmt.Errorf("apply health delta: %w", err)
	}
	return health, nil
}

func (r *EquipmentRepository) ScrapInTx(ctx context.Context, tx pgx.Tx, id uint64) error {
	tag, err := tx.Exec(ctx,
		`UPDATE equipment SET health_score = 0, is_usable = FALSE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("scrap equipment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("equipment %d not found", id)
	}
	return nil
}
