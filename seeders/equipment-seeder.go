package seeders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var demoEquipment = []struct {
	Name       string
	Team       string
	Location   string
	Department string
	AgeYears   int
	Warranty   int // years of warranty from purchase
}{
	{"CNC Milling Machine #1", "Mechanical Maintenance", "Shop Floor A", "Production", 4, 3},
	{"Hydraulic Press HP-200", "Mechanical Maintenance", "Shop Floor A", "Production", 6, 5},
	{"Forklift FL-3", "Mechanical Maintenance", "Warehouse", "Logistics", 3, 2},
	{"Diesel Generator DG-500", "Electrical Maintenance", "Power House", "Facilities", 7, 5},
	{"Distribution Transformer T-11", "Electrical Maintenance", "Power House", "Facilities", 9, 10},
	{"UPS Bank B", "Electrical Maintenance", "Server Room", "IT", 2, 3},
	{"Application Server Rack 2", "IT Infrastructure", "Server Room", "IT", 1, 3},
	{"Database Server DB-01", "IT Infrastructure", "Server Room", "IT", 3, 3},
	{"Core Network Switch", "IT Infrastructure", "Server Room", "IT", 2, 5},
	{"Perimeter Firewall FW-1", "IT Infrastructure", "Server Room", "IT", 1, 3},
	{"Chiller Unit CH-2", "Facilities", "Roof", "Facilities", 5, 5},
	{"HVAC Air Handler 4", "Facilities", "Roof", "Facilities", 8, 5},
}

func seedEquipment(ctx context.Context, db *pgxpool.Pool) error {
	now := time.Now()
	for _, eq := range demoEquipment {
		serial := serialFor(eq.Name)
		purchase := now.AddDate(-eq.AgeYears, 0, 0)
		warranty := purchase.AddDate(eq.Warranty, 0, 0)

		_, err := db.Exec(ctx,
			`INSERT INTO equipment (name, serial_number, purchase_date, warranty_expiry,
			                        location, department, assigned_team_id)
			 SELECT $1, $2, $3, $4, $5, $6, t.id FROM teams t
			 WHERE t.name = $7
			   AND NOT EXISTS (SELECT 1 FROM equipment x WHERE x.name = $1)`,
			eq.Name, serial, purchase, warranty, eq.Location, eq.Department, eq.Team)
		if err != nil {
			return fmt.Errorf("insert equipment %q: %w", eq.Name, err)
		}
	}
	return nil
}

// serialFor builds a readable unique serial from the name plus a random tail.
func serialFor(name string) string {
	prefix := strings.ToUpper(strings.ReplaceAll(name, " ", ""))
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return prefix + "-" + uuid.NewString()[:8]
}
