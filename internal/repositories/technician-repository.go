package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/dto"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
	apperrors "github.com/Ruban-raj-143/gearguard-maintenance/pkg/errors"
)

type TechnicianRepositoryInterface interface {
	GetTechnicians(ctx context.Context) ([]entities.Technician, error)
	GetTechniciansByTeam(ctx context.Context, teamID uint64) ([]entities.Technician, error)
	FindTechnician(ctx context.Context, id uint64) (*entities.Technician, error)
	FindTechnicianInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Technician, error)
	CreateTechnician(ctx context.Context, payload dto.CreateTechnicianDTO) (*entities.Technician, error)
	UpdateTechnician(ctx context.Context, id uint64, payload dto.UpdateTechnicianDTO) error
	DeleteTechnician(ctx context.Context, id uint64) error
	// AdjustActiveRequestsInTx shifts the active-request counter by delta,
	// clamped at zero.
	AdjustActiveRequestsInTx(ctx context.Context, tx pgx.Tx, id uint64, delta int) error
}

type TechnicianRepository struct {
	storage *pgxpool.Pool
}

func NewTechnicianRepository(storage *pgxpool.Pool) TechnicianRepositoryInterface {
	return &TechnicianRepository{storage: storage}
}

const technicianSelect = `
	SELECT t.id, t.name, t.team_id, t.avatar, t.skills, t.active_requests,
	       t.created_at, t.updated_at, tm.name, tm.specialization
	FROM technicians t
	LEFT JOIN teams tm ON t.team_id = tm.id`

func scanTechnician(row pgx.Row) (*entities.Technician, error) {
	var t entities.Technician
	var skillsJSON []byte
	var teamName, teamSpec *string
	err := row.Scan(&t.ID, &t.Name, &t.TeamID, &t.Avatar, &skillsJSON, &t.ActiveRequests,
		&t.CreatedAt, &t.UpdatedAt, &teamName, &teamSpec)
	if err != nil {
		return nil, err
	}
	if len(skillsJSON) > 0 {
		if err := json.Unmarshal(skillsJSON, &t.Skills); err != nil {
			return nil, fmt.Errorf("decode technician skills: %w", err)
		}
	}
	if t.Skills == nil {
		t.Skills = []string{}
	}
	if teamName != nil {
		t.Team = &entities.Team{ID: t.TeamID, Name: *teamName}
		if teamSpec != nil {
			t.Team.Specialization = *teamSpec
		}
	}
	return &t, nil
}

func (r *TechnicianRepository) queryTechnicians(ctx context.Context, query string, args ...any) ([]entities.Technician, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list technicians: %w", err)
	}
	defer rows.Close()

	technicians := make([]entities.Technician, 0)
	for rows.Next() {
		t, err := scanTechnician(rows)
		if err != nil {
			return nil, fmt.Errorf("scan technician: %w", err)
		}
		technicians = append(technicians, *t)
	}
	return technicians, rows.Err()
}

func (r *TechnicianRepository) GetTechnicians(ctx context.Context) ([]entities.Technician, error) {
	return r.queryTechnicians(ctx, technicianSelect+` ORDER BY t.name`)
}

func (r *TechnicianRepository) GetTechniciansByTeam(ctx context.Context, teamID uint64) ([]entities.Technician, error) {
	return r.queryTechnicians(ctx,
		technicianSelect+` WHERE t.team_id = $1 ORDER BY t.active_requests ASC, t.name`, teamID)
}

func (r *TechnicianRepository) FindTechnician(ctx context.Context, id uint64) (*entities.Technician, error) {
	t, err := scanTechnician(r.storage.QueryRow(ctx, technicianSelect+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("technician %d not found", id)
		}
		return nil, fmt.Errorf("find technician: %w", err)
	}
	return t, nil
}

func (r *TechnicianRepository) FindTechnicianInTx(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Technician, error) {
	t, err := scanTechnician(tx.QueryRow(ctx, technicianSelect+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("technician %d not found", id)
		}
		return nil, fmt.Errorf("find technician: %w", err)
	}
	return t, nil
}

func (r *TechnicianRepository) CreateTechnician(ctx context.Context, payload dto.CreateTechnicianDTO) (*entities.Technician, error) {
	skills := payload.Skills
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return nil, fmt.Errorf("encode technician skills: %w", err)
	}

	avatar := payload.Avatar
	if avatar == "" {
		avatar = "👨‍🔧"
	}

	var id uint64
	err = r.storage.QueryRow(ctx,
		`INSERT INTO technicians (name, team_id, avatar, skills) VALUES ($1, $2, $3, $4) RETURNING id`,
		payload.Name, payload.TeamID, avatar, skillsJSON).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create technician: %w", err)
	}
	return r.FindTechnician(ctx, id)
}

func (r *TechnicianRepository) UpdateTechnician(ctx context.Context, id uint64, payload dto.UpdateTechnicianDTO) error {
	builder := sq.Update("technicians").Set("updated_at", sq.Expr("now()"))
	changed := false

	if payload.Name != nil {
		builder = builder.Set("name", *payload.Name)
		changed = true
	}
	if payload.TeamID != nil {
		builder = builder.Set("team_id", *payload.TeamID)
		changed = true
	}
	if payload.Avatar != nil {
		builder = builder.Set("avatar", *payload.Avatar)
		changed = true
	}
	if payload.Skills != nil {
		skillsJSON, err := json.Marshal(*payload.Skills)
		if err != nil {
			return fmt.Errorf("encode technician skills: %w", err)
		}
		builder = builder.Set("skills", skillsJSON)
		changed = true
	}
	if !changed {
		return nil
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("build technician update: %w", err)
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update technician: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("technician %d not found", id)
	}
	return nil
}

func (r *TechnicianRepository) DeleteTechnician(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, `DELETE FROM technicians WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewConflictError("technician %d still has maintenance requests assigned", id)
		}
		return fmt.Errorf("delete technician: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("technician %d not found", id)
	}
	return nil
}

func (r *TechnicianRepository) AdjustActiveRequestsInTx(ctx context.Context, tx pgx.Tx, id uint64, delta int) error {
	tag, err := tx.Exec(ctx,
		`UPDATE technicians
		 SET active_requests = GREATEST(active_requests + $1, 0), updated_at = now()
		 WHERE id = $2`, delta, id)
	if err != nil {
		return fmt.Errorf("adjust technician workload: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("technician %d not found", id)
	}
	return nil
}
