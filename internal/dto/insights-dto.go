package dto

// RiskResultDTO is the §smart-features risk assessment for one equipment unit.
type RiskResultDTO struct {
	EquipmentID uint64   `json:"equipment_id"`
	Level       string   `json:"level"`
	Confidence  int      `json:"confidence"`
	Score       int      `json:"score"`
	Reasons     []string `json:"reasons"`
}

type FailurePredictionDTO struct {
	EquipmentID     uint64   `json:"equipment_id"`
	PredictedDate   string   `json:"predicted_date"`
	DaysToFailure   int      `json:"days_to_failure"`
	Confidence      int      `json:"confidence"`
	Recommendations []string `json:"recommendations"`
}

type TechnicianSuggestionDTO struct {
	Technician    TechnicianResponseDTO `json:"technician"`
	SkillScore    float64               `json:"skill_score"`
	WorkloadScore float64               `json:"workload_score"`
	TotalScore    float64               `json:"total_score"`
	MatchedSkills []string              `json:"matched_skills"`
}

type PriorityResponseDTO struct {
	EquipmentID uint64 `json:"equipment_id"`
	RequestType string `json:"request_type"`
	Priority    string `json:"priority"`
}

type CostAnalysisDTO struct {
	EquipmentID             uint64  `json:"equipment_id"`
	TotalMaintenanceCost    float64 `json:"total_maintenance_cost"`
	CorrectiveCost          float64 `json:"corrective_cost"`
	PreventiveCost          float64 `json:"preventive_cost"`
	TotalDowntimeHours      float64 `json:"total_downtime_hours"`
	DowntimeCost            float64 `json:"downtime_cost"`
	EstimatedCurrentValue   float64 `json:"estimated_current_value"`
	MaintenanceToValueRatio float64 `json:"maintenance_to_value_ratio"`
	ShouldReplace           bool    `json:"should_replace"`
	Recommendation          string  `json:"recommendation"`
}

type EnergyMetricsDTO struct {
	CurrentConsumption     int `json:"current_consumption_kwh"`
	OptimalConsumption     int `json:"optimal_consumption_kwh"`
	PotentialSavings       int `json:"potential_savings_kwh"`
	EfficiencyRating       int `json:"efficiency_rating"`
	AnnualCost             int `json:"annual_cost_usd"`
	PotentialAnnualSavings int `json:"potential_annual_savings_usd"`
}

type CarbonMetricsDTO struct {
	CurrentEmissions  int `json:"current_emissions_kg"`
	OptimalEmissions  int `json:"optimal_emissions_kg"`
	EmissionReduction int `json:"emission_reduction_kg"`
}

type WasteMetricsDTO struct {
	PartsWaste         float64 `json:"parts_waste_kg"`
	OilWaste           float64 `json:"oil_waste_l"`
	MetalWaste         float64 `json:"metal_waste_kg"`
	TotalWaste         float64 `json:"total_waste_kg"`
	RecyclingPotential float64 `json:"recycling_potential_kg"`
}

type SustainabilityDTO struct {
	EquipmentID uint64           `json:"equipment_id"`
	Energy      EnergyMetricsDTO `json:"energy"`
	Carbon      CarbonMetricsDTO `json:"carbon"`
	Waste       WasteMetricsDTO  `json:"waste"`
	Grade       string           `json:"grade"`
}
