package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/velomir/auto-shop-scheduler/internal/utils"
)

// SeedAdmin creates the initial ADMIN account when no user with the given
// email exists. Skips silently when the account is already present.
func SeedAdmin(ctx context.Context, db *sql.DB, email, password string, bcryptCost int) error {
	var n int
	if err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE email=?", email).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		log.Println("admin account already exists, seeding skipped")
		return nil
	}
	hash, err := utils.HashPassword(password, bcryptCost)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, role) VALUES (?,?,?)",
		email, hash, "ADMIN"); err != nil {
		return err
	}
	log.Printf("seeded admin account %s", email)
	return nil
}
