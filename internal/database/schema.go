package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// statements that build the shop schema. Order matters because of the
// foreign keys.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		phone VARCHAR(32),
		email VARCHAR(120),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id INT AUTO_INCREMENT PRIMARY KEY,
		customer_id INT NOT NULL,
		make VARCHAR(80) NOT NULL,
		model VARCHAR(80) NOT NULL,
		year INT,
		vin VARCHAR(32),
		plate VARCHAR(32),
		FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS service_types (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		duration_minutes INT NOT NULL,
		base_price DECIMAL(10,2) NOT NULL DEFAULT 0.00
	)`,
	`CREATE TABLE IF NOT EXISTS technicians (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		skill_level ENUM('junior','mid','senior') DEFAULT 'mid'
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id INT AUTO_INCREMENT PRIMARY KEY,
		customer_id INT NOT NULL,
		vehicle_id INT NOT NULL,
		service_type_id INT NOT NULL,
		technician_id INT,
		start_time DATETIME NOT NULL,
		end_time DATETIME NOT NULL,
		status ENUM('scheduled','in_progress','completed','canceled') DEFAULT 'scheduled',
		notes TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE CASCADE,
		FOREIGN KEY (vehicle_id) REFERENCES vehicles(id) ON DELETE CASCADE,
		FOREIGN KEY (service_type_id) REFERENCES service_types(id),
		FOREIGN KEY (technician_id) REFERENCES technicians(id)
	)`,
	`CREATE TABLE IF NOT EXISTS status_history (
		id INT AUTO_INCREMENT PRIMARY KEY,
		appointment_id INT NOT NULL,
		status ENUM('scheduled','in_progress','completed','canceled') NOT NULL,
		changed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (appointment_id) REFERENCES appointments(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(120) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role ENUM('ADMIN','STAFF') NOT NULL DEFAULT 'STAFF',
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		token_hash CHAR(64) NOT NULL,
		expires_at DATETIME NOT NULL,
		revoked_at DATETIME,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_refresh_token_hash (token_hash),
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
}

// EnsureSchema creates all tables and the appointment indexes if they are
// missing. Safe to run on every deploy.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	if err := ensureIndex(ctx, db, "appointments", "idx_appt_start", "start_time"); err != nil {
		return err
	}
	return ensureIndex(ctx, db, "appointments", "idx_appt_status", "status")
}

// ensureIndex creates the index only when it does not already exist. MySQL
// has no CREATE INDEX IF NOT EXISTS, so we probe SHOW INDEX first.
func ensureIndex(ctx context.Context, db *sql.DB, table, index, column string) error {
	rows, err := db.QueryContext(ctx,
		fmt.Sprintf("SHOW INDEX FROM %s WHERE Key_name = ?", table), index)
	if err != nil {
		return fmt.Errorf("schema: probe index %s: %w", index, err)
	}
	exists := rows.Next()
	if err := rows.Close(); err != nil {
		return err
	}
	if exists {
		return nil
	}
	if _, err := db.ExecContext(ctx,
		fmt.Sprintf("CREATE INDEX %s ON %s(%s)", index, table, column)); err != nil {
		return fmt.Errorf("schema: create index %s: %w", index, err)
	}
	log.Printf("created index %s on %s(%s)", index, table, column)
	return nil
}

// SeedCatalog inserts the default service types and technicians when their
// tables are empty. It never touches existing rows.
func SeedCatalog(ctx context.Context, db *sql.DB) error {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM service_types").Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		_, err := db.ExecContext(ctx, `INSERT INTO service_types (name, duration_minutes, base_price) VALUES
			('Oil Change', 30, 49.99),
			('Brake Inspection', 45, 59.99),
			('Full Service', 120, 199.99)`)
		if err != nil {
			return err
		}
		log.Println("seeded default service types")
	}
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM technicians").Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		_, err := db.ExecContext(ctx, `INSERT INTO technicians (name, skill_level) VALUES
			('Alex Johnson', 'senior'),
			('Priya Singh', 'mid'),
			('Diego Martinez', 'junior')`)
		if err != nil {
			return err
		}
		log.Println("seeded default technicians")
	}
	return nil
}
