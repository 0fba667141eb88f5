package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAll populates a fresh database with demo data: teams, technicians with
// skill sets, equipment and the default admin account. Every seeder is
// idempotent (ON CONFLICT DO NOTHING), reruns are safe.
func SeedAll(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding demo data...")

	if err := seedTeams(ctx, db); err != nil {
		log.Fatalf("seed teams: %v", err)
	}
	if err := seedTechnicians(ctx, db); err != nil {
		log.Fatalf("seed technicians: %v", err)
	}
	if err := seedEquipment(ctx, db); err != nil {
		log.Fatalf("seed equipment: %v", err)
	}
	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("seed admin user: %v", err)
	}

	log.Println("seeding complete")
}
