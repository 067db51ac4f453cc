package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if needed and applies column-level
// updates for existing installs.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username VARCHAR(100) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS calendars (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(100) NOT NULL,
			description TEXT,
			color VARCHAR(7) NOT NULL DEFAULT '#3788d8',
			api_key VARCHAR(64) UNIQUE NOT NULL,
			is_default BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS shift_templates (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(100) NOT NULL,
			start_time VARCHAR(5) NOT NULL,
			end_time VARCHAR(5) NOT NULL,
			color VARCHAR(7) NOT NULL DEFAULT '#3788d8',
			description TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS shifts (
			id UUID PRIMARY KEY,
			calendar_id UUID NOT NULL REFERENCES calendars(id) ON DELETE CASCADE,
			template_id UUID,
			title VARCHAR(200) NOT NULL,
			shift_date DATE NOT NULL,
			start_time VARCHAR(5) NOT NULL,
			end_time VARCHAR(5) NOT NULL,
			color VARCHAR(7) NOT NULL DEFAULT '#3788d8',
			position INTEGER NOT NULL CHECK (position IN (0, 1)),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS day_notes (
			id UUID PRIMARY KEY,
			calendar_id UUID NOT NULL REFERENCES calendars(id) ON DELETE CASCADE,
			note_date DATE NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range tables {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Failed to create table: %v", err)
			return err
		}
	}

	migrations := []string{
		// Backstop for the transactional capacity check: a day group can
		// never hold two shifts at the same position.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_shifts_day_position
			ON shifts(calendar_id, shift_date, position)`,
		`CREATE INDEX IF NOT EXISTS idx_shifts_calendar_date ON shifts(calendar_id, shift_date)`,
		`CREATE INDEX IF NOT EXISTS idx_day_notes_calendar_date ON day_notes(calendar_id, note_date)`,
		`CREATE INDEX IF NOT EXISTS idx_calendars_user_id ON calendars(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_shift_templates_user_id ON shift_templates(user_id)`,
		// Rendering hint added after the initial day_notes schema.
		`ALTER TABLE day_notes ADD COLUMN IF NOT EXISTS position VARCHAR(10) NOT NULL DEFAULT 'top'`,
		// The per-shift notes column predates day_notes; drop it so the
		// note entity is the single source of truth for descriptions.
		`ALTER TABLE shifts DROP COLUMN IF EXISTS notes`,
	}

	for _, q := range migrations {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Failed to run migration: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
