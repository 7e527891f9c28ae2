package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const matchColumns = `id, owner_id, job_id, job_title, candidate_id, candidate_name,
	match_score, reasoning, missing_skills, missing_experience, missing_education, created_at`

func scanMatch(row pgx.Row) (*Match, error) {
	var m Match
	err := row.Scan(&m.ID, &m.OwnerID, &m.JobID, &m.JobTitle, &m.CandidateID,
		&m.CandidateName, &m.MatchScore, &m.Reasoning, &m.MissingSkills,
		&m.MissingExperience, &m.MissingEducation, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateMatch inserts a match and returns the stored row. Returns
// ErrDuplicate when a match already exists for this (owner, job,
// candidate) tuple; the unique index is the authoritative dedup signal.
func (db *DB) CreateMatch(ctx context.Context, match *Match) (*Match, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO matches (owner_id, job_id, job_title, candidate_id, candidate_name,
		                      match_score, reasoning, missing_skills, missing_experience,
		                      missing_education)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+matchColumns,
		match.OwnerID, match.JobID, match.JobTitle, match.CandidateID, match.CandidateName,
		match.MatchScore, match.Reasoning, match.MissingSkills, match.MissingExperience,
		match.MissingEducation,
	)
	created, err := scanMatch(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return created, nil
}

// GetMatchByPair retrieves the match for an (owner, job, candidate)
// tuple. Returns nil when none exists.
func (db *DB) GetMatchByPair(ctx context.Context, ownerID, jobID, candidateID uuid.UUID) (*Match, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+matchColumns+` FROM matches
		 WHERE owner_id = $1 AND job_id = $2 AND candidate_id = $3`,
		ownerID, jobID, candidateID,
	)
	match, err := scanMatch(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

// ListMatches returns the owner's matches, newest first.
func (db *DB) ListMatches(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]Match, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+matchColumns+` FROM matches
		 WHERE owner_id = $1
		 ORDER BY created_at DESC
		 OFFSET $2 LIMIT $3`,
		ownerID, offset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	return collectMatches(rows)
}

// ListMatchesByJob returns the owner's matches for one job, best first.
func (db *DB) ListMatchesByJob(ctx context.Context, ownerID, jobID uuid.UUID) ([]Match, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+matchColumns+` FROM matches
		 WHERE owner_id = $1 AND job_id = $2
		 ORDER BY match_score DESC`,
		ownerID, jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for job: %w", err)
	}
	defer rows.Close()

	return collectMatches(rows)
}

func collectMatches(rows pgx.Rows) ([]Match, error) {
	var matches []Match
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, *match)
	}
	return matches, rows.Err()
}
