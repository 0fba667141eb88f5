package seeders

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var demoTeams = []struct {
	Name           string
	Specialization string
}{
	{"Mechanical Maintenance", "Heavy machinery and hydraulics"},
	{"Electrical Maintenance", "Power systems and automation"},
	{"IT Infrastructure", "Servers, networks and workstations"},
	{"Facilities", "HVAC, chillers and building systems"},
}

func seedTeams(ctx context.Context, db *pgxpool.Pool) error {
	for _, team := range demoTeams {
		_, err := db.Exec(ctx,
			`INSERT INTO teams (name, specialization) VALUES ($1, $2)
			 ON CONFLICT (name) DO NOTHING`,
			team.Name, team.Specialization)
		if err != nil {
			return fmt.Errorf("insert team %q: %w", team.Name, err)
		}
	}
	return nil
}
