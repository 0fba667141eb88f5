package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type ReportFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Types    []string
	Statuses []string
	Page     int
	PerPage  int
}

// ReportItem is one row of the maintenance report export.
type ReportItem struct {
	RequestID      uint64      `json:"request_id"`
	Subject        string      `json:"subject"`
	EquipmentName  string      `json:"equipment_name"`
	SerialNumber   string      `json:"serial_number"`
	Type           string      `json:"type"`
	Priority       string      `json:"priority"`
	Status         string      `json:"status"`
	TechnicianName null.String `json:"technician_name"`
	Duration       float64     `json:"duration"`
	Cost           float64     `json:"cost"`
	ScheduledDate  time.Time   `json:"scheduled_date"`
	CreatedAt      time.Time   `json:"created_at"`
	CompletedAt    null.Time   `json:"completed_at"`
}
