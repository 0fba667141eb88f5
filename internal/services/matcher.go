package services

import (
	"strings"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
)

// skillRule maps an equipment-name keyword to the skills the job calls for.
// The table is ordered; the first keyword contained in the equipment name
// wins.
type skillRule struct {
	Keyword string
	Skills  []string
}

var skillRules = []skillRule{
	{"cnc", []string{"mechanical", "electrical", "plc", "cnc_programming"}},
	{"server", []string{"networking", "software", "hardware", "cybersecurity"}},
	{"database", []string{"software", "database", "system_administration"}},
	{"hydraulic", []string{"hydraulics", "mechanical", "pressure_systems"}},
	{"generator", []string{"electrical", "engine", "fuel_systems", "power_systems"}},
	{"pc", []string{"software", "hardware", "networking"}},
	{"workstation", []string{"software", "hardware", "networking"}},
	{"conveyor", []string{"mechanical", "electrical", "automation", "conveyor_systems"}},
	{"chiller", []string{"refrigeration", "electrical", "plumbing", "hvac"}},
	{"network", []string{"networking", "cybersecurity", "hardware"}},
	{"welding", []string{"welding", "robotics", "automation", "quality_control"}},
	{"ups", []string{"electrical", "power_systems", "battery_systems"}},
	{"injection", []string{"mechanical", "hydraulics", "plc", "quality_control"}},
	{"molding", []string{"mechanical", "hydraulics", "plc", "quality_control"}},
	{"air", []string{"mechanical", "pneumatics", "electrical"}},
	{"compressor", []string{"mechanical", "pneumatics", "electrical"}},
	{"forklift", []string{"mechanical", "hydraulics", "diesel_engines", "heavy_machinery"}},
	{"transformer", []string{"electrical", "power_systems", "high_voltage", "transformers"}},
	{"firewall", []string{"networking", "cybersecurity", "firewall_management", "penetration_testing"}},
	{"packaging", []string{"mechanical", "pneumatics", "packaging", "automation"}},
	{"hvac", []string{"hvac", "electrical", "refrigeration", "building_automation"}},
}

// RequiredSkills returns the skills implied by the equipment name, or nil when
// no keyword matches.
func RequiredSkills(equipmentName string) []string {
	name := strings.ToLower(equipmentName)
	for _, rule := range skillRules {
		if strings.Contains(name, rule.Keyword) {
			return rule.Skills
		}
	}
	return nil
}

// TechnicianMatch scores one candidate against the required skill set.
type TechnicianMatch struct {
	Technician    entities.Technician
	SkillScore    float64
	WorkloadScore float64
	TotalScore    float64
	MatchedSkills []string
}

type MatcherServiceInterface interface {
	SuggestTechnician(equipment *entities.Equipment, team []entities.Technician) *TechnicianMatch
}

type MatcherService struct{}

func NewMatcherService() MatcherServiceInterface {
	return &MatcherService{}
}

// SuggestTechnician picks the best candidate from the team by a weighted mix
// of skill coverage (70%) and current workload (30%). With equal totals the
// earlier candidate keeps the slot. An empty team yields nil.
func (s *MatcherService) SuggestTechnician(equipment *entities.Equipment, team []entities.Technician) *TechnicianMatch {
	if len(team) == 0 {
		return nil
	}

	required := RequiredSkills(equipment.Name)

	var best *TechnicianMatch
	for _, tech := range team {
		match := scoreTechnician(tech, required)
		if best == nil || match.TotalScore > best.TotalScore {
			best = &match
		}
	}
	return best
}

func scoreTechnician(tech entities.Technician, required []string) TechnicianMatch {
	match := TechnicianMatch{Technician: tech, MatchedSkills: []string{}}

	if len(required) == 0 {
		match.SkillScore = 50
	} else {
		owned := make(map[string]bool, len(tech.Skills))
		for _, skill := range tech.Skills {
			owned[strings.ToLower(skill)] = true
		}
		for _, skill := range required {
			if owned[skill] {
				match.MatchedSkills = append(match.MatchedSkills, skill)
			}
		}
		match.SkillScore = float64(len(match.MatchedSkills)) / float64(len(required)) * 100
	}

	match.WorkloadScore = float64(100 - tech.ActiveRequests*20)
	if match.WorkloadScore < 0 {
		match.WorkloadScore = 0
	}

	match.TotalScore = 0.7*match.SkillScore + 0.3*match.WorkloadScore
	return match
}
