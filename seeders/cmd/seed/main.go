package main

import (
	"log"

	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/config"
	"github.com/Ruban-raj-143/gearguard-maintenance/pkg/database/postgresql"
	"github.com/Ruban-raj-143/gearguard-maintenance/seeders"
)

func main() {
	cfg := config.New()

	if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	seeders.SeedAll(db)
}
