package seeders

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var demoTechnicians = []struct {
	Name   string
	Team   string
	Skills []string
}{
	{"Alexey Morozov", "Mechanical Maintenance", []string{"hydraulics", "mechanical", "welding", "fabrication"}},
	{"Ines Farouk", "Mechanical Maintenance", []string{"mechanical", "pneumatics", "fabrication", "quality_control"}},
	{"Daler Rahimov", "Mechanical Maintenance", []string{"mechanical", "hydraulics", "heavy_machinery", "diesel_engines"}},
	{"Marta Kowalska", "Electrical Maintenance", []string{"electrical", "plc", "motor_repair", "instrumentation"}},
	{"Jonas Berg", "Electrical Maintenance", []string{"electrical", "instrumentation", "calibration", "automation"}},
	{"Parviz Nazarov", "Electrical Maintenance", []string{"electrical", "power_systems", "transformers", "high_voltage"}},
	{"Chen Wei", "IT Infrastructure", []string{"networking", "software", "hardware", "database"}},
	{"Sofia Petrova", "IT Infrastructure", []string{"software", "database", "system_administration", "virtualization"}},
	{"Omar Haddad", "IT Infrastructure", []string{"networking", "cybersecurity", "firewall_management", "penetration_testing"}},
	{"Elena Vasquez", "Facilities", []string{"hvac", "electrical", "refrigeration", "building_automation"}},
	{"Tomas Novak", "Facilities", []string{"refrigeration", "electrical", "plumbing", "hvac"}},
}

func seedTechnicians(ctx context.Context, db *pgxpool.Pool) error {
	for _, tech := range demoTechnicians {
		skills, err := json.Marshal(tech.Skills)
		if err != nil {
			return fmt.Errorf("marshal skills for %q: %w", tech.Name, err)
		}

		_, err = db.Exec(ctx,
			`INSERT INTO technicians (name, team_id, avatar, skills)
			 SELECT $1, t.id, '', $2 FROM teams t
			 WHERE t.name = $3
			   AND NOT EXISTS (SELECT 1 FROM technicians x WHERE x.name = $1)`,
			tech.Name, skills, tech.Team)
		if err != nil {
			return fmt.Errorf("insert technician %q: %w", tech.Name, err)
		}
	}
	return nil
}
