package repositories

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/dto"
)

type AnalyticsRepositoryInterface interface {
	GetEquipmentStats(ctx context.Context) (dto.EquipmentStatsDTO, error)
	GetRequestStats(ctx context.Context) (dto.RequestStatsDTO, error)
	GetTeamStats(ctx context.Context) ([]dto.TeamStatsDTO, error)
	GetRecentActivity(ctx context.Context, limit uint64) ([]dto.ActivityItemDTO, error)
	GetBreakdownCounts(ctx context.Context, since time.Time, threshold int) ([]dto.BreakdownWarningDTO, error)
	GetEquipmentHealthTrends(ctx context.Context) ([]dto.EquipmentHealthTrendDTO, error)
	GetTechnicianPerformance(ctx context.Context) ([]dto.TechnicianPerformanceDTO, error)
}

type AnalyticsRepository struct {
	storage *pgxpool.Pool
}

func NewAnalyticsRepository(storage *pgxpool.Pool) AnalyticsRepositoryInterface {
	return &AnalyticsRepository{storage: storage}
}

func (r *AnalyticsRepository) GetEquipmentStats(ctx context.Context) (dto.EquipmentStatsDTO, error) {
	var stats dto.EquipmentStatsDTO
	err := r.storage.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_usable AND health_score >= 80),
		       COUNT(*) FILTER (WHERE is_usable AND health_score >= 40 AND health_score < 80),
		       COUNT(*) FILTER (WHERE is_usable AND health_score < 40),
		       COUNT(*) FILTER (WHERE NOT is_usable),
		       COALESCE(AVG(health_score) FILTER (WHERE is_usable), 0)
		FROM equipment`).
		Scan(&stats.TotalEquipment, &stats.HealthyEquipment, &stats.WarningEquipment,
			&stats.CriticalEquipment, &stats.ScrappedEquipment, &stats.AvgHealthScore)
	if err != nil {
		return stats, fmt.Errorf("equipment stats: %w", err)
	}
	return stats, nil
}

func (r *AnalyticsRepository) GetRequestStats(ctx context.Context) (dto.RequestStatsDTO, error) {
	var stats dto.RequestStatsDTO
	err := r.storage.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'New'),
		       COUNT(*) FILTER (WHERE status = 'In Progress'),
		       COUNT(*) FILTER (WHERE status = 'Repaired'),
		       COUNT(*) FILTER (WHERE status = 'Scrap'),
		       COUNT(*) FILTER (WHERE type = 'Corrective'),
		       COUNT(*) FILTER (WHERE type = 'Preventive')
		FROM maintenance_requests`).
		Scan(&stats.TotalRequests, &stats.NewRequests, &stats.InProgressRequests,
			&stats.CompletedRequests, &stats.ScrappedRequests,
			&stats.CorrectiveRequests, &stats.PreventiveRequests)
	if err != nil {
		return stats, fmt.Errorf("request stats: %w", err)
	}
	return stats, nil
}

func (r *AnalyticsRepository) GetTeamStats(ctx context.Context) ([]dto.TeamStatsDTO, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT tm.name, tm.specialization,
		       (SELECT COUNT(*) FROM technicians t WHERE t.team_id = tm.id),
		       (SELECT COUNT(*) FROM equipment e WHERE e.assigned_team_id = tm.id),
		       (SELECT COALESCE(SUM(t.active_requests), 0) FROM technicians t WHERE t.team_id = tm.id)
		FROM teams tm
		ORDER BY tm.name`)
	if err != nil {
		return nil, fmt.Errorf("team stats: %w", err)
	}
	defer rows.Close()

	stats := make([]dto.TeamStatsDTO, 0)
	for rows.Next() {
		var ts dto.TeamStatsDTO
		if err := rows.Scan(&ts.Name, &ts.Specialization, &ts.TechnicianCount,
			&ts.EquipmentCount, &ts.ActiveRequests); err != nil {
			return nil, fmt.Errorf("scan team stats: %w", err)
		}
		stats = append(stats, ts)
	}
	return stats, rows.Err()
}

func (r *AnalyticsRepository) GetRecentActivity(ctx context.Context, limit uint64) ([]dto.ActivityItemDTO, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT r.id, r.subject, r.type, r.status, r.priority,
		       COALESCE(e.name, ''), t.name, r.created_at
		FROM maintenance_requests r
		LEFT JOIN equipment e ON r.equipment_id = e.id
		LEFT JOIN technicians t ON r.assigned_technician_id = t.id
		ORDER BY r.created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	defer rows.Close()

	items := make([]dto.ActivityItemDTO, 0)
	for rows.Next() {
		var item dto.ActivityItemDTO
		var createdAt time.Time
		if err := rows.Scan(&item.RequestID, &item.Subject, &item.Type, &item.Status,
			&item.Priority, &item.EquipmentName, &item.TechnicianName, &createdAt); err != nil {
			return nil, fmt.Errorf("scan activity item: %w", err)
		}
		item.CreatedAt = createdAt.Format(time.RFC3339)
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetBreakdownCounts returns equipment whose corrective request count since
// the given moment reaches the threshold. Message is filled by the service.
func (r *AnalyticsRepository) GetBreakdownCounts(ctx context.Context, since time.Time, threshold int) ([]dto.BreakdownWarningDTO, error) {
	query, args, err := sq.Select("e.id", "e.name", "e.health_score", "COUNT(r.id)").
		From("equipment e").
		Join("maintenance_requests r ON r.equipment_id = e.id").
		Where(sq.Eq{"r.type": "Corrective"}).
		Where(sq.Gt{"r.created_at": since}).
		GroupBy("e.id", "e.name", "e.health_score").
		Having("COUNT(r.id) >= ?", threshold).
		OrderBy("COUNT(r.id) DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build breakdown query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("breakdown counts: %w", err)
	}
	defer rows.Close()

	warnings := make([]dto.BreakdownWarningDTO, 0)
	for rows.Next() {
		var w dto.BreakdownWarningDTO
		if err := rows.Scan(&w.EquipmentID, &w.EquipmentName, &w.HealthScore, &w.BreakdownCount); err != nil {
			return nil, fmt.Errorf("scan breakdown warning: %w", err)
		}
		warnings = append(warnings, w)
	}
	return warnings, rows.Err()
}

func (r *AnalyticsRepository) GetEquipmentHealthTrends(ctx context.Context) ([]dto.EquipmentHealthTrendDTO, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT e.id, e.name, e.health_score, e.purchase_date, e.warranty_expiry,
		       COUNT(r.id),
		       COUNT(r.id) FILTER (WHERE r.type = 'Corrective'),
		       COUNT(r.id) FILTER (WHERE r.type = 'Preventive')
		FROM equipment e
		LEFT JOIN maintenance_requests r ON r.equipment_id = e.id
		GROUP BY e.id, e.name, e.health_score, e.purchase_date, e.warranty_expiry
		ORDER BY e.health_score ASC`)
	if err != nil {
		return nil, fmt.Errorf("equipment health trends: %w", err)
	}
	defer rows.Close()

	trends := make([]dto.EquipmentHealthTrendDTO, 0)
	for rows.Next() {
		var trend dto.EquipmentHealthTrendDTO
		var purchaseDate, warrantyExpiry time.Time
		if err := rows.Scan(&trend.EquipmentID, &trend.Name, &trend.HealthScore,
			&purchaseDate, &warrantyExpiry, &trend.TotalRequests,
			&trend.BreakdownCount, &trend.MaintenanceCount); err != nil {
			return nil, fmt.Errorf("scan health trend: %w", err)
		}
		trend.PurchaseDate = purchaseDate.Format("2006-01-02")
		trend.WarrantyExpiry = warrantyExpiry.Format("2006-01-02")
		trends = append(trends, trend)
	}
	return trends, rows.Err()
}

func (r *AnalyticsRepository) GetTechnicianPerformance(ctx context.Context) ([]dto.TechnicianPerformanceDTO, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT t.id, t.name, t.avatar, COALESCE(tm.name, ''), t.active_requests,
		       COUNT(r.id) FILTER (WHERE r.status = 'Repaired'),
		       COUNT(r.id) FILTER (WHERE r.status = 'Repaired' AND r.type = 'Corrective'),
		       COUNT(r.id) FILTER (WHERE r.status = 'Repaired' AND r.type = 'Preventive'),
		       COALESCE(AVG(r.duration) FILTER (WHERE r.status = 'Repaired'), 0)
		FROM technicians t
		LEFT JOIN teams tm ON t.team_id = tm.id
		LEFT JOIN maintenance_requests r ON r.assigned_technician_id = t.id
		GROUP BY t.id, t.name, t.avatar, tm.name, t.active_requests
		ORDER BY COUNT(r.id) FILTER (WHERE r.status = 'Repaired') DESC`)
	if err != nil {
		return nil, fmt.Errorf("technician performance: %w", err)
	}
	defer rows.Close()

	perf := make([]dto.TechnicianPerformanceDTO, 0)
	for rows.Next() {
		var p dto.TechnicianPerformanceDTO
		if err := rows.Scan(&p.TechnicianID, &p.Name, &p.Avatar, &p.TeamName,
			&p.ActiveRequests, &p.TotalCompleted, &p.CorrectiveCompleted,
			&p.PreventiveCompleted, &p.AvgDuration); err != nil {
			return nil, fmt.Errorf("scan technician performance: %w", err)
		}
		perf = append(perf, p)
	}
	return perf, rows.Err()
}
