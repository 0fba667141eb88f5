package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
)

type HealthHistoryRepositoryInterface interface {
	AppendInTx(ctx context.Context, tx pgx.Tx, entry entities.HealthHistoryEntry) error
	ListByEquipment(ctx context.Context, equipmentID uint64) ([]entities.HealthHistoryEntry, error)
}

type HealthHistoryRepository struct {
	storage *pgxpool.Pool
}

func NewHealthHistoryRepository(storage *pgxpool.Pool) HealthHistoryRepositoryInterface {
	return &HealthHistoryRepository{storage: storage}
}

func (r *HealthHistoryRepository) AppendInTx(ctx context.Context, tx pgx.Tx, entry entities.HealthHistoryEntry) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO equipment_health_history (equipment_id, health_score, change_reason, request_id)
		 VALUES ($1, $2, $3, $4)`,
		entry.EquipmentID, entry.HealthScore, entry.ChangeReason, entry.RequestID)
	if err != nil {
		return fmt.Errorf("append health history: %w", err)
	}
	return nil
}

func (r *HealthHistoryRepository) ListByEquipment(ctx context.Context, equipmentID uint64) ([]entities.HealthHistoryEntry, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT id, equipment_id, health_score, change_reason, request_id, created_at
		 FROM equipment_health_history
		 WHERE equipment_id = $1
		 ORDER BY created_at ASC`, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("list health history: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.HealthHistoryEntry, 0)
	for rows.Next() {
		var entry entities.HealthHistoryEntry
		if err := rows.Scan(&entry.ID, &entry.EquipmentID, &entry.HealthScore,
			&entry.ChangeReason, &entry.RequestID, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan health history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
