package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(32) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY,
		vehicle_id VARCHAR(64) NOT NULL UNIQUE,
		model VARCHAR(255) NOT NULL,
		license_plate VARCHAR(32) NOT NULL UNIQUE,
		max_capacity DOUBLE PRECISION NOT NULL,
		odometer DOUBLE PRECISION NOT NULL DEFAULT 0,
		status VARCHAR(16) NOT NULL DEFAULT 'Available',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS drivers (
		id UUID PRIMARY KEY,
		driver_id VARCHAR(64) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL,
		license_type VARCHAR(32) NOT NULL,
		license_expiry DATE NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'On Duty',
		safety_score DOUBLE PRECISION NOT NULL DEFAULT 100,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	// Trip references are plain columns so the trip history survives vehicle
	// or driver deletion.
	`CREATE TABLE IF NOT EXISTS trips (
		id UUID PRIMARY KEY,
		trip_id VARCHAR(64) NOT NULL UNIQUE,
		vehicle_id UUID NOT NULL,
		driver_id UUID NOT NULL,
		cargo_weight DOUBLE PRECISION NOT NULL,
		start_location VARCHAR(255) NOT NULL,
		end_location VARCHAR(255) NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'Draft',
		dispatched_at TIMESTAMPTZ,
		completed_at TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_vehicle_id ON trips (vehicle_id);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_status ON trips (status);`,
	`CREATE TABLE IF NOT EXISTS maintenance_logs (
		id UUID PRIMARY KEY,
		vehicle_id UUID NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
		service_type VARCHAR(64) NOT NULL,
		date DATE NOT NULL,
		notes TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id UUID PRIMARY KEY,
		vehicle_id UUID NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
		liters DOUBLE PRECISION NOT NULL,
		cost DOUBLE PRECISION NOT NULL,
		date DATE NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_vehicle_id ON expenses (vehicle_id);`,
}

// Migrate runs the schema statements in order. Statements are idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrationStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
