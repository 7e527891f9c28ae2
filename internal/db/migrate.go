package db

import (
	"context"
	"fmt"
)

// schema is applied at startup. The unique pair indexes on matches and
// interviews back the idempotency invariants: two concurrent requests can
// both pass the existence pre-check, but only one insert commits.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS jobs (
    id                  UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    owner_id            UUID NOT NULL REFERENCES users(id),
    title               TEXT NOT NULL,
    summary             TEXT,
    skills              TEXT,
    experience_required TEXT,
    education_required  TEXT,
    responsibilities    TEXT,
    created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS jobs_owner_idx ON jobs (owner_id);

CREATE TABLE IF NOT EXISTS candidates (
    id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    owner_id       UUID NOT NULL REFERENCES users(id),
    name           TEXT NOT NULL,
    email          TEXT NOT NULL,
    phone          TEXT,
    skills         TEXT,
    education      TEXT,
    experience     TEXT,
    certifications TEXT,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS candidates_owner_idx ON candidates (owner_id);

CREATE TABLE IF NOT EXISTS matches (
    id                 UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    owner_id           UUID NOT NULL REFERENCES users(id),
    job_id             UUID NOT NULL REFERENCES jobs(id),
    job_title          TEXT NOT NULL,
    candidate_id       UUID NOT NULL REFERENCES candidates(id),
    candidate_name     TEXT NOT NULL,
    match_score        DOUBLE PRECISION NOT NULL,
    reasoning          TEXT NOT NULL,
    missing_skills     TEXT,
    missing_experience TEXT,
    missing_education  TEXT,
    created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS matches_owner_pair_idx
    ON matches (owner_id, job_id, candidate_id);

CREATE TABLE IF NOT EXISTS interviews (
    id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    owner_id       UUID NOT NULL REFERENCES users(id),
    candidate_id   UUID NOT NULL REFERENCES candidates(id),
    candidate_name TEXT NOT NULL,
    job_id         UUID NOT NULL REFERENCES jobs(id),
    job_title      TEXT NOT NULL,
    interview_time TIMESTAMPTZ NOT NULL,
    format         TEXT NOT NULL,
    invite_email   TEXT NOT NULL,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS interviews_owner_pair_idx
    ON interviews (owner_id, job_id, candidate_id);
`

// Migrate creates the schema if it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
