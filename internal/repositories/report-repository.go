package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
)

type ReportRepositoryInterface interface {
	GetReportItems(ctx context.Context, filter entities.ReportFilter) ([]entities.ReportItem, uint64, error)
}

type ReportRepository struct {
	storage *pgxpool.Pool
}

func NewReportRepository(storage *pgxpool.Pool) ReportRepositoryInterface {
	return &ReportRepository{storage: storage}
}

func reportWhere(builder sq.SelectBuilder, filter entities.ReportFilter) sq.SelectBuilder {
	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"r.created_at": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"r.created_at": *filter.DateTo})
	}
	if len(filter.Types) > 0 {
		builder = builder.Where(sq.Eq{"r.type": filter.Types})
	}
	if len(filter.Statuses) > 0 {
		builder = builder.Where(sq.Eq{"r.status": filter.Statuses})
	}
	return builder
}

func (r *ReportRepository) GetReportItems(ctx context.Context, filter entities.ReportFilter) ([]entities.ReportItem, uint64, error) {
	countQuery, countArgs, err := reportWhere(
		sq.Select("COUNT(*)").From("maintenance_requests r"), filter).
		PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build report count: %w", err)
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count report rows: %w", err)
	}

	builder := reportWhere(sq.Select(
		"r.id", "r.subject",
		"COALESCE(e.name, '')", "COALESCE(e.serial_number, '')",
		"r.type", "r.priority", "r.status",
		"t.name", "r.duration",
		"r.scheduled_date", "r.created_at", "r.completed_at").
		From("maintenance_requests r").
		LeftJoin("equipment e ON r.equipment_id = e.id").
		LeftJoin("technicians t ON r.assigned_technician_id = t.id").
		OrderBy("r.created_at DESC"), filter)

	if filter.PerPage > 0 {
		builder = builder.Limit(uint64(filter.PerPage))
		if filter.Page > 1 {
			builder = builder.Offset(uint64((filter.Page - 1) * filter.PerPage))
		}
	}

	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build report query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list report rows: %w", err)
	}
	defer rows.Close()

	items := make([]entities.ReportItem, 0)
	for rows.Next() {
		var item entities.ReportItem
		if err := rows.Scan(&item.RequestID, &item.Subject, &item.EquipmentName,
			&item.SerialNumber, &item.Type, &item.Priority, &item.Status,
			&item.TechnicianName, &item.Duration,
			&item.ScheduledDate, &item.CreatedAt, &item.CompletedAt); err != nil {
			return nil, 0, fmt.Errorf("scan report row: %w", err)
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}
