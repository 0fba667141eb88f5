package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ruban-raj-143/gearguard-maintenance/internal/entities"
)

func TestRequiredSkills(t *testing.T) {
	assert.Equal(t, []string{"mechanical", "electrical", "plc", "cnc_programming"},
		RequiredSkills("CNC Milling Machine #1"))
	assert.Equal(t, []string{"networking", "software", "hardware", "cybersecurity"},
		RequiredSkills("application SERVER rack"))
	assert.Nil(t, RequiredSkills("Coffee Machine"))

	// Ordered table: "Server" outranks "Database" in "Database Server".
	assert.Equal(t, []string{"networking", "software", "hardware", "cybersecurity"},
		RequiredSkills("Database Server DB-01"))
}

func TestSuggestTechnicianPrefersSkillMatch(t *testing.T) {
	svc := NewMatcherService()
	equipment := &entities.Equipment{Name: "Hydraulic Press HP-200"}

	skilled := entities.Technician{ID: 1, Name: "A", Skills: []string{"hydraulics", "mechanical", "pressure_systems"}}
	unskilled := entities.Technician{ID: 2, Name: "B", Skills: []string{"software", "networking"}}

	match := svc.SuggestTechnician(equipment, []entities.Technician{unskilled, skilled})
	require.NotNil(t, match)
	assert.Equal(t, uint64(1), match.Technician.ID)
	assert.InDelta(t, 100.0, match.SkillScore, 0.001)
	assert.ElementsMatch(t, []string{"hydraulics", "mechanical", "pressure_systems"}, match.MatchedSkills)
}

func TestSuggestTechnicianWorkloadTieBreak(t *testing.T) {
	svc := NewMatcherService()
	equipment := &entities.Equipment{Name: "Forklift FL-3"}

	busy := entities.Technician{ID: 1, Name: "Busy", Skills: []string{"mechanical", "hydraulics", "diesel_engines", "heavy_machinery"}, ActiveRequests: 4}
	free := entities.Technician{ID: 2, Name: "Free", Skills: []string{"mechanical", "hydraulics", "diesel_engines", "heavy_machinery"}, ActiveRequests: 0}

	match := svc.SuggestTechnician(equipment, []entities.Technician{busy, free})
	require.NotNil(t, match)
	assert.Equal(t, uint64(2), match.Technician.ID)
}

func TestSuggestTechnicianNoRequiredSkills(t *testing.T) {
	svc := NewMatcherService()
	equipment := &entities.Equipment{Name: "Coffee Machine"}

	tech := entities.Technician{ID: 1, Name: "Anyone", Skills: []string{"plumbing"}}
	match := svc.SuggestTechnician(equipment, []entities.Technician{tech})
	require.NotNil(t, match)
	assert.InDelta(t, 50.0, match.SkillScore, 0.001)
	assert.InDelta(t, 0.7*50+0.3*100, match.TotalScore, 0.001)
}

func TestSuggestTechnicianEmptyTeam(t *testing.T) {
	svc := NewMatcherService()
	assert.Nil(t, svc.SuggestTechnician(&entities.Equipment{Name: "CNC"}, nil))
}

func TestSuggestTechnicianFirstMaxWins(t *testing.T) {
	svc := NewMatcherService()
	equipment := &entities.Equipment{Name: "Coffee Machine"}

	first := entities.Technician{ID: 1, Name: "First"}
	second := entities.Technician{ID: 2, Name: "Second"}

	match := svc.SuggestTechnician(equipment, []entities.Technician{first, second})
	require.NotNil(t, match)
	assert.Equal(t, uint64(1), match.Technician.ID)
}
