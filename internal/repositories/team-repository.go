package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/dto"
	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
	apperrors "github.com/Ruban-raj-143/gearguard-maintenance/pkg/errors"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context) ([]entities.Team, error)
	FindTeam(ctx context.Context, id uint64) (*entities.Team, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.Team, error)
	RenameTeam(ctx context.Context, id uint64, name string) error
}

type TeamRepository struct {
	storage *pgxpool.Pool
}

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &TeamRepository{storage: storage}
}

func (r *TeamRepository) GetTeams(ctx context.Context) ([]entities.Team, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, name, specialization, created_at, updated_at FROM teams ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Specialization, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) FindTeam(ctx context.Context, id uint64) (*entities.Team, error) {
	var t entities.Team
	err := r.storage.QueryRow(ctx,
		`SELECT id, name, specialization, created_at, updated_at FROM teams WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.Specialization, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("team %d not found", id)
		}
		return nil, fmt.Errorf("find team: %w", err)
	}
	return &t, nil
}

func (r *TeamRepository) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.Team, error) {
	var t entities.Team
	err := r.storage.QueryRow(ctx,
		`INSERT INTO teams (name, specialization) VALUES ($1, $2)
		 RETURNING id, name, specialization, created_at, updated_at`,
		payload.Name, payload.Specialization).
		Scan(&t.ID, &t.Name, &t.Specialization, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("team name '%s' is already taken", payload.Name)
		}
		return nil, fmt.Errorf("create team: %w", err)
	}
	return &t, nil
}

func (r *TeamRepository) RenameTeam(ctx context.Context, id uint64, name string) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE teams SET name = $1, updated_at = now() WHERE id = $2`, name, id)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("team name '%s' is already taken", name)
		}
		return fmt.Errorf("rename team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("team %d not found", id)
	}
	return nil
}
