package dto

type EquipmentStatsDTO struct {
	TotalEquipment    int     `json:"total_equipment"`
	HealthyEquipment  int     `json:"healthy_equipment"`
	WarningEquipment  int     `json:"warning_equipment"`
	CriticalEquipment int     `json:"critical_equipment"`
	ScrappedEquipment int     `json:"scrapped_equipment"`
	AvgHealthScore    float64 `json:"avg_health_score"`
}

type RequestStatsDTO struct {
	TotalRequests      int `json:"total_requests"`
	NewRequests        int `json:"new_requests"`
	InProgressRequests int `json:"in_progress_requests"`
	CompletedRequests  int `json:"completed_requests"`
	ScrappedRequests   int `json:"scrapped_requests"`
	CorrectiveRequests int `json:"corrective_requests"`
	PreventiveRequests int `json:"preventive_requests"`
}

type TeamStatsDTO struct {
	Name            string `json:"name"`
	Specialization  string `json:"specialization"`
	TechnicianCount int    `json:"technician_count"`
	EquipmentCount  int    `json:"equipment_count"`
	ActiveRequests  int    `json:"active_requests"`
}

type ActivityItemDTO struct {
	RequestID      uint64  `json:"request_id"`
	Subject        string  `json:"subject"`
	Type           string  `json:"type"`
	Status         string  `json:"status"`
	Priority       string  `json:"priority"`
	EquipmentName  string  `json:"equipment_name"`
	TechnicianName *string `json:"technician_name,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

// BreakdownWarningDTO flags equipment with 3+ corrective requests inside a
// rolling 30-day window.
type BreakdownWarningDTO struct {
	EquipmentID    uint64 `json:"equipment_id"`
	EquipmentName  string `json:"equipment_name"`
	HealthScore    int    `json:"health_score"`
	BreakdownCount int    `json:"breakdown_count"`
	Message        string `json:"message"`
}

type DashboardDTO struct {
	Equipment         EquipmentStatsDTO     `json:"equipment"`
	Requests          RequestStatsDTO       `json:"requests"`
	Teams             []TeamStatsDTO        `json:"teams"`
	RecentActivity    []ActivityItemDTO     `json:"recent_activity"`
	BreakdownWarnings []BreakdownWarningDTO `json:"breakdown_warnings"`
}

type EquipmentHealthTrendDTO struct {
	EquipmentID      uint64 `json:"equipment_id"`
	Name             string `json:"name"`
	HealthScore      int    `json:"health_score"`
	PurchaseDate     string `json:"purchase_date"`
	WarrantyExpiry   string `json:"warranty_expiry"`
	TotalRequests    int    `json:"total_requests"`
	BreakdownCount   int    `json:"breakdown_count"`
	MaintenanceCount int    `json:"maintenance_count"`
}

type TechnicianPerformanceDTO struct {
	TechnicianID        uint64  `json:"technician_id"`
	Name                string  `json:"name"`
	Avatar              string  `json:"avatar"`
	TeamName            string  `json:"team_name"`
	ActiveRequests      int     `json:"active_requests"`
	TotalCompleted      int     `json:"total_completed"`
	CorrectiveCompleted int     `json:"corrective_completed"`
	PreventiveCompleted int     `json:"preventive_completed"`
	AvgDuration         float64 `json:"avg_duration"`
}
