package entities

import "time"

// HealthHistoryEntry is an append-only audit record written whenever the
// lifecycle engine mutates an equipment's health score.
type HealthHistoryEntry struct {
	ID           uint64    `json:"id"`
	EquipmentID  uint64    `json:"equipment_id"`
	HealthScore  int       `json:"health_score"`
	ChangeReason string    `json:"change_reason"`
	RequestID    *uint64   `json:"request_id"`
	CreatedAt    time.Time `json:"created_at"`
}
