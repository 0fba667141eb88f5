package seeders

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const defaultAdminEmail = "admin@gearguard.local"

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
		log.Println("ADMIN_PASSWORD not set, using default password 'changeme'")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (email, name, password_hash) VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO NOTHING`,
		defaultAdminEmail, "Administrator", string(hash))
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}
	return nil
}
