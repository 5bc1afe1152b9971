package database

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates required tables if they do not exist.
// financial_data has no UNIQUE on user_id: one-profile-per-user is
// enforced by the upsert path, matching the original schema.
func EnsureSchema(pool *pgxpool.Pool) {
	if pool == nil {
		return
	}
	ctx := context.Background()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            full_name TEXT NOT NULL,
            email TEXT NOT NULL UNIQUE,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE TABLE IF NOT EXISTS financial_data (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            salary NUMERIC NOT NULL DEFAULT 0,
            rent NUMERIC NOT NULL DEFAULT 0,
            food NUMERIC NOT NULL DEFAULT 0,
            travel NUMERIC NOT NULL DEFAULT 0,
            others NUMERIC NOT NULL DEFAULT 0,
            savings_goal NUMERIC NOT NULL DEFAULT 0,
            job_type TEXT,
            city TEXT,
            area TEXT,
            rent_budget NUMERIC NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE INDEX IF NOT EXISTS financial_data_user_id_idx ON financial_data(user_id)`,
	}

	for _, s := range stmts {
		if _, err := pool.Exec(ctx, s); err != nil {
			log.Printf("schema ensure error: %v in stmt: %s", err, s)
		}
	}
}
