package database

import (
	"context"

	"campus-recommender/core/logger"
)

var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(120) NOT NULL,
		email VARCHAR(200) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL DEFAULT '',
		role VARCHAR(20) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title VARCHAR(200) NOT NULL,
		slug VARCHAR(220) NOT NULL,
		description TEXT NOT NULL,
		start_datetime TIMESTAMPTZ NOT NULL,
		end_datetime TIMESTAMPTZ NOT NULL,
		location VARCHAR(200) NOT NULL,
		poster_url TEXT,
		created_by UUID NOT NULL REFERENCES users(id),
		ai_event_type VARCHAR(80),
		ai_keywords TEXT,
		ai_summary TEXT,
		embedding_json TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_start ON events (start_datetime ASC)`,

	`CREATE TABLE IF NOT EXISTS student_profiles (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL UNIQUE REFERENCES users(id),
		interests TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS availability_slots (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		profile_id UUID NOT NULL REFERENCES student_profiles(id) ON DELETE CASCADE,
		day_of_week VARCHAR(3) NOT NULL,
		start_time TIME NOT NULL,
		end_time TIME NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uniq_slot UNIQUE (profile_id, day_of_week, start_time, end_time)
	)`,

	`CREATE TABLE IF NOT EXISTS saved_events (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id),
		event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uniq_saved_event UNIQUE (user_id, event_id)
	)`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id),
		title VARCHAR(200) NOT NULL,
		message TEXT NOT NULL,
		type VARCHAR(40) NOT NULL,
		data JSONB,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications (user_id, created_at DESC)`,
}

// Migrate applies the idempotent schema statements in order
func (d *Database) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if err := d.ExecContext(ctx, stmt); err != nil {
			logger.Error("Database:Migrate", "error", err, "statement", stmt[:40])
			return err
		}
	}
	logger.Info("Database schema up to date")
	return nil
}
